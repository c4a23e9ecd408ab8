package gencache

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// BlankMarker is the placeholder fill-in-the-blank prompts must contain.
const BlankMarker = "___"

// MatchPair is one row of a term matching exercise.
type MatchPair struct {
	Source string `json:"source" validate:"required,max=200"`
	Target string `json:"target" validate:"required,max=200"`
}

// Exercise is the payload schema for generated exercises.
type Exercise struct {
	Kind        domain.ExerciseKind `json:"kind" validate:"required,oneof=multiple_choice fill_blank term_matching"`
	TermID      string              `json:"term_id" validate:"required,uuid"`
	Prompt      string              `json:"prompt" validate:"required,max=1000"`
	Options     []string            `json:"options,omitempty" validate:"omitempty,min=2,max=8,unique,dive,required,max=200"`
	Answer      string              `json:"answer,omitempty" validate:"max=200"`
	Pairs       []MatchPair         `json:"pairs,omitempty" validate:"omitempty,min=2,max=12,dive"`
	Explanation string              `json:"explanation,omitempty" validate:"max=2000"`
}

// AnnotationProposal is one suggested bounding box.
type AnnotationProposal struct {
	FeatureType string             `json:"feature_type" validate:"required,max=100"`
	Box         domain.BoundingBox `json:"box"`
	Labels      domain.TermLabels  `json:"labels"`
	Confidence  float64            `json:"confidence" validate:"gte=0,lte=1"`
}

// AnnotationProposalSet is the payload schema for generated annotation proposals.
type AnnotationProposalSet struct {
	ImageID   string               `json:"image_id" validate:"required,max=200"`
	SpeciesID string               `json:"species_id" validate:"required,max=200"`
	Proposals []AnnotationProposal `json:"proposals" validate:"required,min=1,max=50,dive"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeExercise parses and validates an exercise payload.
func DecodeExercise(payload json.RawMessage) (*Exercise, error) {
	var ex Exercise
	if err := decodePayload(payload, &ex); err != nil {
		return nil, err
	}
	if err := structErrors(validate.Struct(&ex)); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	switch ex.Kind {
	case domain.ExerciseMultipleChoice:
		if len(ex.Options) < 2 {
			errs = append(errs, domain.FieldError{Field: "options", Message: "multiple choice needs at least 2 options"})
		}
		if !slices.Contains(ex.Options, ex.Answer) {
			errs = append(errs, domain.FieldError{Field: "answer", Message: "must be one of the options"})
		}
	case domain.ExerciseFillBlank:
		if !strings.Contains(ex.Prompt, BlankMarker) {
			errs = append(errs, domain.FieldError{Field: "prompt", Message: "must contain " + BlankMarker})
		}
		if strings.TrimSpace(ex.Answer) == "" {
			errs = append(errs, domain.FieldError{Field: "answer", Message: "required"})
		}
	case domain.ExerciseTermMatching:
		if len(ex.Pairs) < 2 {
			errs = append(errs, domain.FieldError{Field: "pairs", Message: "term matching needs at least 2 pairs"})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return &ex, nil
}

// ValidateExercise is a ValidateFunc for exercise payloads.
func ValidateExercise(payload json.RawMessage) error {
	_, err := DecodeExercise(payload)
	return err
}

// DecodeProposals parses and validates an annotation proposal payload.
// minSide is the smallest accepted box width/height; callers widen it with
// the feature's positional tolerance.
func DecodeProposals(payload json.RawMessage, minSide float64) (*AnnotationProposalSet, error) {
	var set AnnotationProposalSet
	if err := decodePayload(payload, &set); err != nil {
		return nil, err
	}
	if err := structErrors(validate.Struct(&set)); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	for i, p := range set.Proposals {
		field := fmt.Sprintf("proposals[%d]", i)
		var ve *domain.ValidationError
		if err := p.Box.Validate(field + ".box"); errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
		if p.Box.Width < minSide || p.Box.Height < minSide {
			errs = append(errs, domain.FieldError{Field: field + ".box", Message: fmt.Sprintf("sides must be at least %.3f", minSide)})
		}
		if strings.TrimSpace(p.Labels.Source) == "" || strings.TrimSpace(p.Labels.Target) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".labels", Message: "source and target are required"})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return &set, nil
}

// ProposalValidator returns a ValidateFunc bound to minSide.
func ProposalValidator(minSide float64) ValidateFunc {
	return func(payload json.RawMessage) error {
		_, err := DecodeProposals(payload, minSide)
		return err
	}
}

func decodePayload(payload json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return domain.NewValidationError("payload", "empty")
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return domain.NewValidationError("payload", "invalid JSON: "+err.Error())
	}
	return nil
}

func structErrors(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("payload", err.Error())
	}
	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out = append(out, domain.FieldError{Field: field, Message: msg})
	}
	return domain.NewValidationErrors(out)
}
