package domain

import (
	"time"

	"github.com/google/uuid"
)

// TermLabels is the canonical label pair of a term (e.g. "pico" / "beak").
type TermLabels struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Term is a reviewable vocabulary unit created when an annotation is published.
type Term struct {
	ID           uuid.UUID
	AnnotationID uuid.UUID
	SpeciesID    string
	FeatureType  string
	Labels       TermLabels
	ModuleID     *string
	Seq          int64
	CreatedAt    time.Time
	RetiredAt    *time.Time
}

// IsActive reports whether the term can still be scheduled.
func (t *Term) IsActive() bool {
	return t.RetiredAt == nil
}
