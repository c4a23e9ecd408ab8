package exercise

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// MaxFeatureTypes bounds one proposal request.
const MaxFeatureTypes = 20

// ExerciseInput identifies the exercise to serve.
type ExerciseInput struct {
	TermID uuid.UUID
	Kind   domain.ExerciseKind
}

// Validate checks all fields and collects all errors.
func (i *ExerciseInput) Validate() error {
	var errs []domain.FieldError

	if i.TermID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "term_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be multiple_choice, fill_blank, or term_matching"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ProposeInput asks for bounding-box proposals on one image.
type ProposeInput struct {
	ImageID      string
	ImageURL     string
	SpeciesID    string
	FeatureTypes []string
}

// Validate checks all fields and collects all errors. It also canonicalizes
// species and feature type keys in place.
func (i *ProposeInput) Validate() error {
	var errs []domain.FieldError

	i.ImageID = strings.TrimSpace(i.ImageID)
	i.SpeciesID = domain.NormalizeKey(i.SpeciesID)

	if i.ImageID == "" {
		errs = append(errs, domain.FieldError{Field: "image_id", Message: "required"})
	}
	if i.SpeciesID == "" {
		errs = append(errs, domain.FieldError{Field: "species_id", Message: "required"})
	}
	if len(i.FeatureTypes) == 0 || len(i.FeatureTypes) > MaxFeatureTypes {
		errs = append(errs, domain.FieldError{Field: "feature_types", Message: "must contain 1 to " + strconv.Itoa(MaxFeatureTypes) + " items"})
	}

	seen := make(map[string]struct{}, len(i.FeatureTypes))
	types := make([]string, 0, len(i.FeatureTypes))
	for _, ft := range i.FeatureTypes {
		key := domain.NormalizeKey(ft)
		if key == "" {
			errs = append(errs, domain.FieldError{Field: "feature_types", Message: "must not contain empty values"})
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		types = append(types, key)
	}
	i.FeatureTypes = types

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
