package exercise

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/provider"
	"github.com/heartmarshall/adaptive-engine/internal/service/gencache"
)

//go:generate moq -out content_cache_mock_test.go -pkg exercise . contentCache
//go:generate moq -out generator_mock_test.go -pkg exercise . generator
//go:generate moq -out estimator_mock_test.go -pkg exercise . estimator
//go:generate moq -out term_repo_mock_test.go -pkg exercise . termRepo

type contentCache interface {
	GetOrGenerate(ctx context.Context, key string, gen gencache.GenerateFunc, validate gencache.ValidateFunc, opts ...gencache.Option) (gencache.Result, error)
}

type generator interface {
	Generate(ctx context.Context, p provider.Prompt) (json.RawMessage, error)
	Model() string
}

type estimator interface {
	GetEstimate(ctx context.Context, featureType, speciesID string) (*domain.Estimate, error)
}

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
}

// Params tunes prompt construction.
type Params struct {
	// PromptVersion is part of every cache key; bump it when prompts change.
	PromptVersion int
	// MinBiasConfidence gates the use of feature estimates.
	MinBiasConfidence float64
	// MinProposalSide is the smallest accepted proposal box side before
	// tolerance widening.
	MinProposalSide float64
}

// DefaultParams returns the production defaults.
func DefaultParams() Params {
	return Params{
		PromptVersion:     1,
		MinBiasConfidence: 0.3,
		MinProposalSide:   0.02,
	}
}

// Service produces exercises and annotation proposals through the
// generation cache.
type Service struct {
	cache     contentCache
	gen       generator
	estimates estimator
	terms     termRepo
	log       *slog.Logger
	params    Params
}

// NewService creates an exercise service.
func NewService(log *slog.Logger, cache contentCache, gen generator, estimates estimator, terms termRepo, params Params) *Service {
	return &Service{
		cache:     cache,
		gen:       gen,
		estimates: estimates,
		terms:     terms,
		log:       log.With("service", "exercise"),
		params:    params,
	}
}

// estimate returns the feature estimate or nil. Statistics only bias
// prompts, so a read failure never blocks generation.
func (s *Service) estimate(ctx context.Context, featureType, speciesID string) *domain.Estimate {
	est, err := s.estimates.GetEstimate(ctx, featureType, speciesID)
	if err != nil {
		s.log.WarnContext(ctx, "feature estimate unavailable",
			slog.String("feature_type", featureType),
			slog.String("species_id", speciesID),
			slog.String("error", err.Error()))
		return nil
	}
	return est
}
