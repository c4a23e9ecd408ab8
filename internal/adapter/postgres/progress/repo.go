// Package progress implements the per-user SM-2 progress repository using PostgreSQL.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/adaptive-engine/internal/adapter/postgres"
	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// Repo provides user_term_progress persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new progress repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const progressColumns = `
p.user_id, p.term_id, p.repetitions, p.ease_factor, p.interval_days, p.next_review_at,
p.mastery_level, p.current_streak, p.longest_streak, p.times_correct, p.times_incorrect,
p.last_reviewed_at, p.created_at, p.updated_at`

const getSQL = `SELECT` + progressColumns + `
FROM user_term_progress p
WHERE p.user_id = $1 AND p.term_id = $2`

const getForUpdateSQL = getSQL + `
FOR UPDATE`

const ensureExistsSQL = `
INSERT INTO user_term_progress (user_id, term_id, repetitions, ease_factor, interval_days, next_review_at,
                                mastery_level, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id, term_id) DO NOTHING`

const updateSQL = `
UPDATE user_term_progress p
SET repetitions = $3, ease_factor = $4, interval_days = $5, next_review_at = $6,
    mastery_level = $7, current_streak = $8, longest_streak = $9,
    times_correct = $10, times_incorrect = $11, last_reviewed_at = $12, updated_at = $13
WHERE p.user_id = $1 AND p.term_id = $2
RETURNING` + progressColumns

// Due rows come most overdue first, then least mastered, then in term
// creation order so ties are stable across calls.
const getDueSQL = `
SELECT` + progressColumns + `,
       t.id, t.annotation_id, t.species_id, t.feature_type, t.label_source, t.label_target,
       t.module_id, t.seq, t.created_at, t.retired_at,
       floor(extract(epoch FROM ($2::timestamptz - p.next_review_at)) / 86400)::int AS days_overdue
FROM user_term_progress p
JOIN terms t ON t.id = p.term_id
WHERE p.user_id = $1
  AND t.retired_at IS NULL
  AND p.next_review_at <= $2
ORDER BY days_overdue DESC, p.mastery_level ASC, t.seq ASC
LIMIT $3`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the progress row for (user, term).
func (r *Repo) Get(ctx context.Context, userID, termID uuid.UUID) (*domain.UserTermProgress, error) {
	return r.getOne(ctx, getSQL, userID, termID)
}

// GetForUpdate returns the progress row locked until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, userID, termID uuid.UUID) (*domain.UserTermProgress, error) {
	return r.getOne(ctx, getForUpdateSQL, userID, termID)
}

func (r *Repo) getOne(ctx context.Context, query string, userID, termID uuid.UUID) (*domain.UserTermProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProgress(querier.QueryRow(ctx, query, userID, termID))
	if err != nil {
		return nil, postgres.MapError(err, "progress", progressID(userID, termID))
	}
	return &p, nil
}

// GetDue returns up to limit progress rows due at now, joined with their
// active terms.
func (r *Repo) GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.DueTerm, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getDueSQL, userID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("get due terms: %w", err)
	}
	defer rows.Close()

	var out []domain.DueTerm
	for rows.Next() {
		var (
			d        domain.DueTerm
			overdue  int
			moduleID *string
		)
		p := &d.Progress
		t := &d.Term
		if err := rows.Scan(
			&p.UserID, &p.TermID, &p.Repetitions, &p.EaseFactor, &p.IntervalDays, &p.NextReviewAt,
			&p.MasteryLevel, &p.CurrentStreak, &p.LongestStreak, &p.TimesCorrect, &p.TimesIncorrect,
			&p.LastReviewedAt, &p.CreatedAt, &p.UpdatedAt,
			&t.ID, &t.AnnotationID, &t.SpeciesID, &t.FeatureType, &t.Labels.Source, &t.Labels.Target,
			&moduleID, &t.Seq, &t.CreatedAt, &t.RetiredAt,
			&overdue,
		); err != nil {
			return nil, fmt.Errorf("scan due term: %w", err)
		}
		t.ModuleID = moduleID
		d.DaysOverdue = max(overdue, 0)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due terms: %w", err)
	}

	if out == nil {
		out = []domain.DueTerm{}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// EnsureExists inserts p unless a row for (user, term) already exists.
// An unknown term maps to domain.ErrNotFound.
func (r *Repo) EnsureExists(ctx context.Context, p domain.UserTermProgress) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, ensureExistsSQL,
		p.UserID, p.TermID, p.Repetitions, p.EaseFactor, p.IntervalDays, p.NextReviewAt,
		p.MasteryLevel, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "progress", progressID(p.UserID, p.TermID))
	}
	return nil
}

// Update writes the review state of p and returns the stored row.
func (r *Repo) Update(ctx context.Context, p *domain.UserTermProgress) (*domain.UserTermProgress, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanProgress(querier.QueryRow(ctx, updateSQL,
		p.UserID, p.TermID, p.Repetitions, p.EaseFactor, p.IntervalDays, p.NextReviewAt,
		p.MasteryLevel, p.CurrentStreak, p.LongestStreak, p.TimesCorrect, p.TimesIncorrect,
		p.LastReviewedAt, p.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "progress", progressID(p.UserID, p.TermID))
	}
	return &out, nil
}

// CreateBatch inserts initial rows, skipping pairs that already exist.
func (r *Repo) CreateBatch(ctx context.Context, rows []domain.UserTermProgress) error {
	if len(rows) == 0 {
		return nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, p := range rows {
		batch.Queue(ensureExistsSQL,
			p.UserID, p.TermID, p.Repetitions, p.EaseFactor, p.IntervalDays, p.NextReviewAt,
			p.MasteryLevel, p.CreatedAt, p.UpdatedAt,
		)
	}

	br := querier.SendBatch(ctx, batch)
	defer br.Close()

	for _, p := range rows {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "progress", progressID(p.UserID, p.TermID))
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanProgress(row pgx.Row) (domain.UserTermProgress, error) {
	var p domain.UserTermProgress
	err := row.Scan(
		&p.UserID, &p.TermID, &p.Repetitions, &p.EaseFactor, &p.IntervalDays, &p.NextReviewAt,
		&p.MasteryLevel, &p.CurrentStreak, &p.LongestStreak, &p.TimesCorrect, &p.TimesIncorrect,
		&p.LastReviewedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func progressID(userID, termID uuid.UUID) string {
	return userID.String() + "/" + termID.String()
}
