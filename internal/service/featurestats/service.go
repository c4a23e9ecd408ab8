package featurestats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

//go:generate moq -out stat_repo_mock_test.go -pkg featurestats . statRepo
//go:generate moq -out tx_manager_mock_test.go -pkg featurestats . txManager

type statRepo interface {
	Get(ctx context.Context, key domain.FeatureKey) (*domain.FeatureStatistic, error)
	EnsureExists(ctx context.Context, key domain.FeatureKey) error
	GetForUpdate(ctx context.Context, key domain.FeatureKey) (*domain.FeatureStatistic, error)
	Save(ctx context.Context, stat *domain.FeatureStatistic) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service maintains online per-(feature type, species) statistics.
type Service struct {
	stats  statRepo
	tx     txManager
	log    *slog.Logger
	params Params
}

// NewService creates a feature statistics service.
func NewService(log *slog.Logger, stats statRepo, tx txManager, params Params) *Service {
	return &Service{
		stats:  stats,
		tx:     tx,
		log:    log.With("service", "featurestats"),
		params: params,
	}
}

// Observe folds one positional sample into the running estimate.
func (s *Service) Observe(ctx context.Context, featureType, speciesID string, sample []float64) (*domain.Estimate, error) {
	key, err := newKey(featureType, speciesID)
	if err != nil {
		return nil, err
	}
	if len(sample) != domain.BoxDims {
		return nil, domain.NewValidationError("sample", fmt.Sprintf("must have %d components", domain.BoxDims))
	}

	return s.update(ctx, key, func(stat domain.FeatureStatistic) (domain.FeatureStatistic, error) {
		pos, err := ObserveVector(stat.Position, sample)
		if err != nil {
			return stat, err
		}
		stat.Position = pos
		return stat, nil
	})
}

// RecordFeedback applies an approve/reject/position_fix event.
func (s *Service) RecordFeedback(ctx context.Context, ev domain.FeedbackEvent) (*domain.Estimate, error) {
	key, err := newKey(ev.Key.FeatureType, ev.Key.SpeciesID)
	if err != nil {
		return nil, err
	}
	if !ev.Type.IsValid() {
		return nil, domain.NewValidationError("type", "must be approve, reject, or position_fix")
	}
	ev.Key = key

	est, err := s.update(ctx, key, func(stat domain.FeatureStatistic) (domain.FeatureStatistic, error) {
		return ApplyFeedback(stat, ev, s.params)
	})
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "feedback recorded",
		slog.String("feature_type", key.FeatureType),
		slog.String("species_id", key.SpeciesID),
		slog.String("type", ev.Type.String()),
		slog.Float64("confidence", est.Confidence),
	)
	return est, nil
}

// GetEstimate is a pure read. Unknown keys yield a zero-confidence estimate.
func (s *Service) GetEstimate(ctx context.Context, featureType, speciesID string) (*domain.Estimate, error) {
	key, err := newKey(featureType, speciesID)
	if err != nil {
		return nil, err
	}

	stat, err := s.stats.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			est := EmptyEstimate(key)
			return &est, nil
		}
		return nil, fmt.Errorf("get feature statistic: %w", err)
	}

	est := EstimateFrom(*stat, s.params)
	return &est, nil
}

// update serializes read-modify-write on one key through a row lock.
func (s *Service) update(
	ctx context.Context,
	key domain.FeatureKey,
	apply func(domain.FeatureStatistic) (domain.FeatureStatistic, error),
) (*domain.Estimate, error) {
	var est domain.Estimate

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.stats.EnsureExists(txCtx, key); err != nil {
			return fmt.Errorf("ensure feature statistic: %w", err)
		}
		current, err := s.stats.GetForUpdate(txCtx, key)
		if err != nil {
			return fmt.Errorf("lock feature statistic: %w", err)
		}

		next, err := apply(*current)
		if err != nil {
			return err
		}
		if err := s.stats.Save(txCtx, &next); err != nil {
			return fmt.Errorf("save feature statistic: %w", err)
		}
		est = EstimateFrom(next, s.params)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &est, nil
}

func newKey(featureType, speciesID string) (domain.FeatureKey, error) {
	var errs []domain.FieldError

	key := domain.FeatureKey{
		FeatureType: domain.NormalizeKey(featureType),
		SpeciesID:   strings.TrimSpace(speciesID),
	}
	if key.FeatureType == "" {
		errs = append(errs, domain.FieldError{Field: "feature_type", Message: "required"})
	}
	if key.SpeciesID == "" {
		errs = append(errs, domain.FieldError{Field: "species_id", Message: "required"})
	}

	if len(errs) > 0 {
		return key, domain.NewValidationErrors(errs)
	}
	return key, nil
}
