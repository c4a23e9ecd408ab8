package exercise

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/gencache"
)

// Exercise is a served exercise together with its cache provenance.
type Exercise struct {
	*gencache.Exercise
	Key    string
	Cached bool
}

// GetExercise returns the exercise for a term, generating it at most once
// per distinct (term, kind, model, prompt version).
func (s *Service) GetExercise(ctx context.Context, in ExerciseInput) (*Exercise, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	term, err := s.terms.GetByID(ctx, in.TermID)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}
	if !term.IsActive() {
		return nil, fmt.Errorf("term %s retired: %w", term.ID, domain.ErrNotFound)
	}

	key := gencache.Key(gencache.KeySpec{
		Kind: domain.ContentKindExercise,
		Descriptor: map[string]any{
			"term_id":      term.ID.String(),
			"source":       term.Labels.Source,
			"target":       term.Labels.Target,
			"feature_type": term.FeatureType,
			"species_id":   term.SpeciesID,
		},
		Params:  map[string]any{"exercise_kind": string(in.Kind)},
		Model:   s.gen.Model(),
		Version: s.params.PromptVersion,
	})

	est := s.estimate(ctx, term.FeatureType, term.SpeciesID)
	prompt := exercisePrompt(term, in.Kind, est, s.params.MinBiasConfidence)

	res, err := s.cache.GetOrGenerate(ctx, key,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.gen.Generate(ctx, prompt)
		},
		exerciseValidator(in.Kind),
		gencache.WithKind(domain.ContentKindExercise),
		gencache.WithModelTag(s.gen.Model()),
	)
	if err != nil {
		return nil, err
	}

	ex, err := gencache.DecodeExercise(res.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode cached exercise %s: %w", key, err)
	}
	// The model echoes the id; the authoritative one is ours.
	ex.TermID = term.ID.String()

	s.log.DebugContext(ctx, "exercise served",
		slog.String("term_id", term.ID.String()),
		slog.String("kind", in.Kind.String()),
		slog.Bool("cached", res.Hit))

	return &Exercise{Exercise: ex, Key: key, Cached: res.Hit}, nil
}

// exerciseValidator checks the schema and that the model answered with the
// requested kind.
func exerciseValidator(kind domain.ExerciseKind) gencache.ValidateFunc {
	return func(payload json.RawMessage) error {
		ex, err := gencache.DecodeExercise(payload)
		if err != nil {
			return err
		}
		if ex.Kind != kind {
			return domain.NewValidationError("kind", "expected "+kind.String())
		}
		return nil
	}
}
