// Package term implements the Term repository using PostgreSQL.
// Fixed queries are raw SQL; filtered and multi-row statements go through squirrel.
package term

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/adaptive-engine/internal/adapter/postgres"
	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new term repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var columns = []string{
	"t.id", "t.annotation_id", "t.species_id", "t.feature_type", "t.label_source", "t.label_target",
	"t.module_id", "t.seq", "t.created_at", "t.retired_at",
}

const returning = `RETURNING id, annotation_id, species_id, feature_type, label_source, label_target,
          module_id, seq, created_at, retired_at`

const getByIDSQL = `
SELECT t.id, t.annotation_id, t.species_id, t.feature_type, t.label_source, t.label_target,
       t.module_id, t.seq, t.created_at, t.retired_at
FROM terms t
WHERE t.id = $1`

const retireByAnnotationsSQL = `
UPDATE terms SET retired_at = $2
WHERE annotation_id = ANY($1::uuid[]) AND retired_at IS NULL`

// Republishing an annotation revives its existing term so learner
// progress keeps pointing at the same id.
const upsertSuffix = `ON CONFLICT (annotation_id) DO UPDATE
SET label_source = EXCLUDED.label_source,
    label_target = EXCLUDED.label_target,
    module_id    = EXCLUDED.module_id,
    retired_at   = NULL
` + returning

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a term by primary key, including retired terms.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTerm(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "term", id.String())
	}
	return &t, nil
}

// ListUndiscovered returns active terms the user has no progress row for,
// oldest first. A non-nil moduleID restricts the result to that module.
func (r *Repo) ListUndiscovered(ctx context.Context, userID uuid.UUID, moduleID *string, limit int) ([]domain.Term, error) {
	b := postgres.Builder.
		Select(columns...).
		From("terms t").
		Where(sq.Eq{"t.retired_at": nil}).
		Where("NOT EXISTS (SELECT 1 FROM user_term_progress p WHERE p.term_id = t.id AND p.user_id = ?)", userID).
		OrderBy("t.seq ASC").
		Limit(uint64(limit))
	if moduleID != nil {
		b = b.Where(sq.Eq{"t.module_id": *moduleID})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list undiscovered query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list undiscovered terms: %w", err)
	}
	defer rows.Close()

	terms, err := scanTerms(rows)
	if err != nil {
		return nil, fmt.Errorf("list undiscovered terms: %w", err)
	}
	return terms, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpsertForAnnotations inserts one term per annotation. An annotation that
// already owns a term gets it back with retired_at cleared and labels and
// module refreshed; the stored id and seq are kept.
func (r *Repo) UpsertForAnnotations(ctx context.Context, terms []domain.Term) ([]domain.Term, error) {
	if len(terms) == 0 {
		return []domain.Term{}, nil
	}

	b := postgres.Builder.
		Insert("terms").
		Columns("id", "annotation_id", "species_id", "feature_type", "label_source", "label_target", "module_id", "created_at").
		Suffix(upsertSuffix)
	for _, t := range terms {
		b = b.Values(t.ID, t.AnnotationID, t.SpeciesID, t.FeatureType, t.Labels.Source, t.Labels.Target, t.ModuleID, t.CreatedAt)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build upsert terms query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "term", "batch")
	}
	defer rows.Close()

	out, err := scanTerms(rows)
	if err != nil {
		return nil, postgres.MapError(err, "term", "batch")
	}
	return out, nil
}

// RetireByAnnotations marks the active terms of the given annotations as
// retired. Progress rows are kept.
func (r *Repo) RetireByAnnotations(ctx context.Context, annotationIDs []uuid.UUID, at time.Time) (int64, error) {
	if len(annotationIDs) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := querier.Exec(ctx, retireByAnnotationsSQL, annotationIDs, at)
	if err != nil {
		return 0, fmt.Errorf("retire terms: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTerm(row pgx.Row) (domain.Term, error) {
	var t domain.Term
	err := row.Scan(&t.ID, &t.AnnotationID, &t.SpeciesID, &t.FeatureType, &t.Labels.Source, &t.Labels.Target,
		&t.ModuleID, &t.Seq, &t.CreatedAt, &t.RetiredAt)
	return t, err
}

func scanTerms(rows pgx.Rows) ([]domain.Term, error) {
	var terms []domain.Term
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if terms == nil {
		terms = []domain.Term{}
	}
	return terms, nil
}
