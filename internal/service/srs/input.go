package srs

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// MaxResponseTimeMs bounds a single review's response time (10 minutes).
const MaxResponseTimeMs = 600_000

// GetDueInput holds the parameters for fetching due terms.
type GetDueInput struct {
	UserID uuid.UUID
	// Limit of 0 means the configured default.
	Limit int
}

// Validate checks all fields and collects all errors.
func (i *GetDueInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and " + strconv.Itoa(maxLimit)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ReviewInput is one review event from the exercise-delivery collaborator.
type ReviewInput struct {
	UserID         uuid.UUID
	TermID         uuid.UUID
	Correct        bool
	Quality        int
	ResponseTimeMs *int
}

// Validate checks all fields and collects all errors.
func (i *ReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.TermID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "term_id", Message: "required"})
	}
	if i.Quality < 0 || i.Quality > 5 {
		errs = append(errs, domain.FieldError{Field: "quality", Message: "must be between 0 and 5"})
	}
	if i.ResponseTimeMs != nil && *i.ResponseTimeMs < 0 {
		errs = append(errs, domain.FieldError{Field: "response_time_ms", Message: "must be non-negative"})
	}
	if i.ResponseTimeMs != nil && *i.ResponseTimeMs > MaxResponseTimeMs {
		errs = append(errs, domain.FieldError{Field: "response_time_ms", Message: "max 10 minutes"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DiscoverInput holds the parameters for lazily starting new terms.
type DiscoverInput struct {
	UserID   uuid.UUID
	ModuleID *string
	Limit    int
}

// Validate checks all fields and collects all errors.
func (i *DiscoverInput) Validate(maxLimit int) error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.ModuleID != nil && strings.TrimSpace(*i.ModuleID) == "" {
		errs = append(errs, domain.FieldError{Field: "module_id", Message: "must not be blank"})
	}
	if i.Limit < 0 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and " + strconv.Itoa(maxLimit)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
