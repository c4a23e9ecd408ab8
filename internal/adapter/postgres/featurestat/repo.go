// Package featurestat persists the running feature statistics in PostgreSQL.
// Only the Welford aggregates are stored, never raw samples.
package featurestat

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/adaptive-engine/internal/adapter/postgres"
	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// Repo provides feature_statistics persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feature statistics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const selectSQL = `
SELECT feature_type, species_id, position_count, position_mean, position_m2,
       occurrence_count, occurrence_mean, occurrence_m2,
       approvals, rejections, confidence_adjust, updated_at
FROM feature_statistics
WHERE feature_type = $1 AND species_id = $2`

const ensureExistsSQL = `
INSERT INTO feature_statistics (feature_type, species_id)
VALUES ($1, $2)
ON CONFLICT (feature_type, species_id) DO NOTHING`

const saveSQL = `
UPDATE feature_statistics
SET position_count = $3, position_mean = $4, position_m2 = $5,
    occurrence_count = $6, occurrence_mean = $7, occurrence_m2 = $8,
    approvals = $9, rejections = $10, confidence_adjust = $11, updated_at = $12
WHERE feature_type = $1 AND species_id = $2`

// Get returns the statistics row for key.
func (r *Repo) Get(ctx context.Context, key domain.FeatureKey) (*domain.FeatureStatistic, error) {
	return r.getOne(ctx, selectSQL, key)
}

// GetForUpdate returns the statistics row locked until the surrounding
// transaction ends, serializing concurrent updates of the same key.
func (r *Repo) GetForUpdate(ctx context.Context, key domain.FeatureKey) (*domain.FeatureStatistic, error) {
	return r.getOne(ctx, selectSQL+"\nFOR UPDATE", key)
}

func (r *Repo) getOne(ctx context.Context, query string, key domain.FeatureKey) (*domain.FeatureStatistic, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanStatistic(querier.QueryRow(ctx, query, key.FeatureType, key.SpeciesID))
	if err != nil {
		return nil, postgres.MapError(err, "feature_statistic", keyID(key))
	}
	return &s, nil
}

// EnsureExists creates an empty row for key if none exists.
func (r *Repo) EnsureExists(ctx context.Context, key domain.FeatureKey) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, ensureExistsSQL, key.FeatureType, key.SpeciesID); err != nil {
		return postgres.MapError(err, "feature_statistic", keyID(key))
	}
	return nil
}

// Save overwrites the aggregates of an existing row.
func (r *Repo) Save(ctx context.Context, s *domain.FeatureStatistic) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, saveSQL,
		s.Key.FeatureType, s.Key.SpeciesID,
		s.Position.Count, s.Position.Mean, s.Position.M2,
		s.Occurrence.Count, s.Occurrence.Mean, s.Occurrence.M2,
		s.Approvals, s.Rejections, s.ConfidenceAdjust, s.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "feature_statistic", keyID(s.Key))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("feature_statistic %s: %w", keyID(s.Key), domain.ErrNotFound)
	}
	return nil
}

func scanStatistic(row pgx.Row) (domain.FeatureStatistic, error) {
	var s domain.FeatureStatistic
	err := row.Scan(
		&s.Key.FeatureType, &s.Key.SpeciesID,
		&s.Position.Count, &s.Position.Mean, &s.Position.M2,
		&s.Occurrence.Count, &s.Occurrence.Mean, &s.Occurrence.M2,
		&s.Approvals, &s.Rejections, &s.ConfidenceAdjust, &s.UpdatedAt,
	)
	return s, err
}

func keyID(k domain.FeatureKey) string {
	return k.FeatureType + "/" + k.SpeciesID
}
