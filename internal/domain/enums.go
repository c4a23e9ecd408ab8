package domain

// AnnotationStatus is the publishing state of an annotation.
type AnnotationStatus string

const (
	AnnotationStatusPending   AnnotationStatus = "pending"
	AnnotationStatusApproved  AnnotationStatus = "approved"
	AnnotationStatusRejected  AnnotationStatus = "rejected"
	AnnotationStatusPublished AnnotationStatus = "published"
)

func (s AnnotationStatus) String() string { return string(s) }

func (s AnnotationStatus) IsValid() bool {
	switch s {
	case AnnotationStatusPending, AnnotationStatusApproved, AnnotationStatusRejected, AnnotationStatusPublished:
		return true
	}
	return false
}

// CanTransition reports whether s may move to next. published -> approved is
// only allowed when allowUnpublish is set.
func (s AnnotationStatus) CanTransition(next AnnotationStatus, allowUnpublish bool) bool {
	switch s {
	case AnnotationStatusPending:
		return next == AnnotationStatusApproved || next == AnnotationStatusRejected
	case AnnotationStatusApproved:
		return next == AnnotationStatusPublished
	case AnnotationStatusPublished:
		return allowUnpublish && next == AnnotationStatusApproved
	}
	return false
}

// AnnotationSource records who produced the bounding box.
type AnnotationSource string

const (
	AnnotationSourceAI     AnnotationSource = "ai"
	AnnotationSourceManual AnnotationSource = "manual"
)

func (s AnnotationSource) String() string { return string(s) }

func (s AnnotationSource) IsValid() bool {
	return s == AnnotationSourceAI || s == AnnotationSourceManual
}

// FeedbackType is the kind of admin/user feedback on an annotation.
type FeedbackType string

const (
	FeedbackApprove     FeedbackType = "approve"
	FeedbackReject      FeedbackType = "reject"
	FeedbackPositionFix FeedbackType = "position_fix"
)

func (f FeedbackType) String() string { return string(f) }

func (f FeedbackType) IsValid() bool {
	switch f {
	case FeedbackApprove, FeedbackReject, FeedbackPositionFix:
		return true
	}
	return false
}

// ContentKind identifies what a cached generation payload contains.
type ContentKind string

const (
	ContentKindExercise           ContentKind = "exercise"
	ContentKindAnnotationProposal ContentKind = "annotation_proposal"
)

func (k ContentKind) String() string { return string(k) }

// ExerciseKind is the shape of a generated exercise.
type ExerciseKind string

const (
	ExerciseMultipleChoice ExerciseKind = "multiple_choice"
	ExerciseFillBlank      ExerciseKind = "fill_blank"
	ExerciseTermMatching   ExerciseKind = "term_matching"
)

func (k ExerciseKind) String() string { return string(k) }

func (k ExerciseKind) IsValid() bool {
	switch k {
	case ExerciseMultipleChoice, ExerciseFillBlank, ExerciseTermMatching:
		return true
	}
	return false
}

// UserRole represents the authorization level of a caller.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
