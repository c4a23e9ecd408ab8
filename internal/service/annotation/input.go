package annotation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/exercise"
)

// MaxBatchSize bounds publish and unpublish batches.
const MaxBatchSize = 500

// PublishInput holds the parameters for publishing approved annotations.
type PublishInput struct {
	AnnotationIDs     []uuid.UUID
	ModuleID          *string
	GenerateExercises bool
}

// Validate checks all fields and collects all errors.
func (i *PublishInput) Validate() error {
	errs := validateIDs(i.AnnotationIDs)
	if i.ModuleID != nil {
		m := strings.TrimSpace(*i.ModuleID)
		if m == "" || len(m) > 100 {
			errs = append(errs, domain.FieldError{Field: "module_id", Message: "must be 1 to 100 characters"})
		}
		i.ModuleID = &m
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UnpublishInput holds the ids to move back to approved.
type UnpublishInput struct {
	AnnotationIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *UnpublishInput) Validate() error {
	if errs := validateIDs(i.AnnotationIDs); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateIDs(ids []uuid.UUID) []domain.FieldError {
	var errs []domain.FieldError
	if len(ids) == 0 || len(ids) > MaxBatchSize {
		errs = append(errs, domain.FieldError{Field: "annotation_ids", Message: "must contain 1 to " + strconv.Itoa(MaxBatchSize) + " ids"})
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "annotation_ids", Message: "must not contain empty ids"})
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, domain.FieldError{Field: "annotation_ids", Message: "duplicate id " + id.String()})
			continue
		}
		seen[id] = struct{}{}
	}
	return errs
}

// FeedbackMetadata carries the optional payload of a feedback event.
type FeedbackMetadata struct {
	// Box is the corrected bounding box; required for position_fix.
	Box    *domain.BoundingBox
	Reason string
}

// FeedbackInput is one approve/reject/position_fix event.
type FeedbackInput struct {
	AnnotationID uuid.UUID
	Type         domain.FeedbackType
	Metadata     *FeedbackMetadata
}

// Validate checks all fields and collects all errors.
func (i *FeedbackInput) Validate() error {
	var errs []domain.FieldError

	if i.AnnotationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "annotation_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be approve, reject, or position_fix"})
	}
	if i.Type == domain.FeedbackPositionFix {
		if i.Metadata == nil || i.Metadata.Box == nil {
			errs = append(errs, domain.FieldError{Field: "metadata.box", Message: "required for position_fix"})
		} else {
			var ve *domain.ValidationError
			if err := i.Metadata.Box.Validate("metadata.box"); errors.As(err, &ve) {
				errs = append(errs, ve.Errors...)
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// IngestInput asks for generated proposals to be stored as pending annotations.
type IngestInput struct {
	exercise.ProposeInput
	ModuleID *string
}

// ListInput filters the admin listing.
type ListInput struct {
	Status    *domain.AnnotationStatus
	SpeciesID *string
	ModuleID  *string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be pending, approved, rejected, or published"})
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and " + strconv.Itoa(maxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
