package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// BoxDims is the number of components in a bounding-box correction vector
// (dx, dy, dw, dh).
const BoxDims = 4

// BoundingBox is a region in normalized image coordinates (all values in [0,1]).
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Validate checks that the box lies inside the unit square and has a positive area.
func (b BoundingBox) Validate(field string) error {
	var errs []FieldError
	components := []struct {
		name string
		v    float64
	}{{"x", b.X}, {"y", b.Y}, {"width", b.Width}, {"height", b.Height}}
	for _, c := range components {
		if math.IsNaN(c.v) || c.v < 0 || c.v > 1 {
			errs = append(errs, FieldError{Field: field + "." + c.name, Message: "must be within [0, 1]"})
		}
	}
	if b.Width <= 0 || b.Height <= 0 {
		errs = append(errs, FieldError{Field: field, Message: "must have a positive area"})
	}
	if b.X+b.Width > 1+1e-9 || b.Y+b.Height > 1+1e-9 {
		errs = append(errs, FieldError{Field: field, Message: "must fit inside the image"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Correction returns the vector that moves b onto corrected.
func (b BoundingBox) Correction(corrected BoundingBox) []float64 {
	return []float64{
		corrected.X - b.X,
		corrected.Y - b.Y,
		corrected.Width - b.Width,
		corrected.Height - b.Height,
	}
}

// MinBoxSide is the smallest width or height a shifted box keeps.
const MinBoxSide = 0.01

// Shift applies a correction vector scaled by weight. The result always
// passes Validate: sides stay within [MinBoxSide, 1] and the origin is
// clamped so the box fits inside the image. Non-finite deltas leave b as is.
func (b BoundingBox) Shift(delta []float64, weight float64) BoundingBox {
	if len(delta) < BoxDims {
		return b
	}
	for _, d := range delta[:BoxDims] {
		if math.IsNaN(d*weight) || math.IsInf(d*weight, 0) {
			return b
		}
	}
	w := clamp(b.Width+delta[2]*weight, MinBoxSide, 1)
	h := clamp(b.Height+delta[3]*weight, MinBoxSide, 1)
	return BoundingBox{
		X:      clamp(b.X+delta[0]*weight, 0, 1-w),
		Y:      clamp(b.Y+delta[1]*weight, 0, 1-h),
		Width:  w,
		Height: h,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Annotation is a labelled region on a species image. Only published
// annotations become reviewable terms.
type Annotation struct {
	ID          uuid.UUID
	ImageID     string
	SpeciesID   string
	FeatureType string
	Box         BoundingBox
	Labels      TermLabels
	Status      AnnotationStatus
	Source      AnnotationSource
	ModuleID    *string
	ReviewedAt  *time.Time
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AnnotationFilter narrows admin listings.
type AnnotationFilter struct {
	Status    *AnnotationStatus
	SpeciesID *string
	ModuleID  *string
	Limit     int
	Offset    int
}

// BatchItemStatus is the outcome of one id in a publish batch.
type BatchItemStatus string

const (
	BatchItemPublished   BatchItemStatus = "published"
	BatchItemUnpublished BatchItemStatus = "unpublished"
	BatchItemFailed      BatchItemStatus = "failed"
	// BatchItemSkipped marks valid items that were not committed because
	// another item in the same batch failed.
	BatchItemSkipped BatchItemStatus = "skipped"
)

// BatchItem reports the outcome for a single annotation in a batch.
type BatchItem struct {
	AnnotationID uuid.UUID
	Status       BatchItemStatus
	Reason       string
	TermID       *uuid.UUID
}

// BatchResult is returned by publish and unpublish. A batch commits all
// items or none.
type BatchResult struct {
	// Published counts applied items.
	Published int
	Failed    int
	Items     []BatchItem
	// WarmupScheduled is true when exercise generation was dispatched.
	WarmupScheduled bool
}

// Committed reports whether the batch was applied.
func (r *BatchResult) Committed() bool {
	return r.Failed == 0 && r.Published > 0
}
