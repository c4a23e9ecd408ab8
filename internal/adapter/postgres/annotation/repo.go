// Package annotation implements the Annotation repository using PostgreSQL.
package annotation

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

// Repo provides annotation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new annotation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

var columns = []string{
	"id", "image_id", "species_id", "feature_type", "box_x", "box_y", "box_width", "box_height",
	"label_source", "label_target", "status", "source", "module_id", "reviewed_at", "published_at",
	"created_at", "updated_at",
}

const selectColumns = `id, image_id, species_id, feature_type, box_x, box_y, box_width, box_height,
       label_source, label_target, status, source, module_id, reviewed_at, published_at,
       created_at, updated_at`

const getByIDSQL = `SELECT ` + selectColumns + ` FROM annotations WHERE id = $1`

const getForUpdateSQL = getByIDSQL + ` FOR UPDATE`

// Rows are locked in id order so concurrent batches cannot deadlock.
const lockManySQL = `SELECT ` + selectColumns + `
FROM annotations
WHERE id = ANY($1::uuid[])
ORDER BY id
FOR UPDATE`

const updateSQL = `
UPDATE annotations
SET box_x = $2, box_y = $3, box_width = $4, box_height = $5,
    label_source = $6, label_target = $7, status = $8, source = $9,
    module_id = $10, reviewed_at = $11, published_at = $12, updated_at = $13
WHERE id = $1
RETURNING ` + selectColumns

const setPublishedSQL = `
UPDATE annotations
SET status = 'published', published_at = $3, updated_at = $3,
    module_id = COALESCE($2, module_id)
WHERE id = ANY($1::uuid[])`

const setUnpublishedSQL = `
UPDATE annotations
SET status = 'approved', published_at = NULL, updated_at = $2
WHERE id = ANY($1::uuid[])`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an annotation by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Annotation, error) {
	return r.getOne(ctx, getByIDSQL, id)
}

// GetForUpdate returns an annotation locked until the surrounding transaction ends.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Annotation, error) {
	return r.getOne(ctx, getForUpdateSQL, id)
}

func (r *Repo) getOne(ctx context.Context, query string, id uuid.UUID) (*domain.Annotation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a, err := scanAnnotation(querier.QueryRow(ctx, query, id))
	if err != nil {
		return nil, postgres.MapError(err, "annotation", id.String())
	}
	return &a, nil
}

// LockMany returns the existing annotations among ids, locked FOR UPDATE.
// Unknown ids are simply absent from the result.
func (r *Repo) LockMany(ctx context.Context, ids []uuid.UUID) ([]domain.Annotation, error) {
	if len(ids) == 0 {
		return []domain.Annotation{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, lockManySQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "annotation", "batch")
	}
	defer rows.Close()

	out, err := scanAnnotations(rows)
	if err != nil {
		return nil, postgres.MapError(err, "annotation", "batch")
	}
	return out, nil
}

// List returns annotations matching the filter, newest first, and the total
// number of matches ignoring limit and offset.
func (r *Repo) List(ctx context.Context, filter domain.AnnotationFilter) ([]domain.Annotation, int, error) {
	where := sq.And{}
	if filter.Status != nil {
		where = append(where, sq.Eq{"status": string(*filter.Status)})
	}
	if filter.SpeciesID != nil {
		where = append(where, sq.Eq{"species_id": *filter.SpeciesID})
	}
	if filter.ModuleID != nil {
		where = append(where, sq.Eq{"module_id": *filter.ModuleID})
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	countQuery, countArgs, err := postgres.Builder.Select("count(*)").From("annotations").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count annotations query: %w", err)
	}
	var total int
	if err := querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count annotations: %w", err)
	}

	query, args, err := postgres.Builder.
		Select(columns...).
		From("annotations").
		Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list annotations query: %w", err)
	}

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list annotations: %w", err)
	}
	defer rows.Close()

	items, err := scanAnnotations(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list annotations: %w", err)
	}
	return items, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBatch inserts annotations in one statement and returns them as stored.
func (r *Repo) CreateBatch(ctx context.Context, items []domain.Annotation) ([]domain.Annotation, error) {
	if len(items) == 0 {
		return []domain.Annotation{}, nil
	}

	b := postgres.Builder.
		Insert("annotations").
		Columns(columns...).
		Suffix("RETURNING " + selectColumns)
	for _, a := range items {
		b = b.Values(
			a.ID, a.ImageID, a.SpeciesID, a.FeatureType, a.Box.X, a.Box.Y, a.Box.Width, a.Box.Height,
			a.Labels.Source, a.Labels.Target, string(a.Status), string(a.Source), a.ModuleID,
			a.ReviewedAt, a.PublishedAt, a.CreatedAt, a.UpdatedAt,
		)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create annotations query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "annotation", "batch")
	}
	defer rows.Close()

	out, err := scanAnnotations(rows)
	if err != nil {
		return nil, postgres.MapError(err, "annotation", "batch")
	}
	return out, nil
}

// Update writes every mutable column of a and returns the stored row.
func (r *Repo) Update(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	out, err := scanAnnotation(querier.QueryRow(ctx, updateSQL,
		a.ID, a.Box.X, a.Box.Y, a.Box.Width, a.Box.Height,
		a.Labels.Source, a.Labels.Target, string(a.Status), string(a.Source),
		a.ModuleID, a.ReviewedAt, a.PublishedAt, a.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "annotation", a.ID.String())
	}
	return &out, nil
}

// SetPublished marks the annotations published. A non-nil moduleID replaces
// the stored module.
func (r *Repo) SetPublished(ctx context.Context, ids []uuid.UUID, moduleID *string, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setPublishedSQL, ids, moduleID, at)
	if err != nil {
		return postgres.MapError(err, "annotation", "batch")
	}
	if int(tag.RowsAffected()) != len(ids) {
		return fmt.Errorf("annotation batch: published %d of %d: %w", tag.RowsAffected(), len(ids), domain.ErrNotFound)
	}
	return nil
}

// SetUnpublished moves the annotations back to approved.
func (r *Repo) SetUnpublished(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setUnpublishedSQL, ids, at)
	if err != nil {
		return postgres.MapError(err, "annotation", "batch")
	}
	if int(tag.RowsAffected()) != len(ids) {
		return fmt.Errorf("annotation batch: unpublished %d of %d: %w", tag.RowsAffected(), len(ids), domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanAnnotation(row pgx.Row) (domain.Annotation, error) {
	var (
		a              domain.Annotation
		status, source string
	)
	err := row.Scan(
		&a.ID, &a.ImageID, &a.SpeciesID, &a.FeatureType, &a.Box.X, &a.Box.Y, &a.Box.Width, &a.Box.Height,
		&a.Labels.Source, &a.Labels.Target, &status, &source, &a.ModuleID, &a.ReviewedAt, &a.PublishedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	a.Status = domain.AnnotationStatus(status)
	a.Source = domain.AnnotationSource(source)
	return a, err
}

func scanAnnotations(rows pgx.Rows) ([]domain.Annotation, error) {
	var items []domain.Annotation
	for rows.Next() {
		a, err := scanAnnotation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []domain.Annotation{}
	}
	return items, nil
}
