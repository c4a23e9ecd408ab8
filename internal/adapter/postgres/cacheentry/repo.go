// Package cacheentry implements the generation cache store on PostgreSQL.
// It is the durable backend shared by all instances of the service.
package cacheentry

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/adaptive-engine/internal/adapter/postgres"
	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// Repo stores cache entries in the cache_entries table.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new cache entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT key, kind, payload, model_tag, created_at, expires_at, hit_count, last_hit_at
FROM cache_entries
WHERE key = $1 AND expires_at > now()`

// A regenerated payload replaces the old one and resets the hit counters.
const putSQL = `
INSERT INTO cache_entries (key, kind, payload, model_tag, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (key) DO UPDATE
SET kind = EXCLUDED.kind,
    payload = EXCLUDED.payload,
    model_tag = EXCLUDED.model_tag,
    created_at = EXCLUDED.created_at,
    expires_at = EXCLUDED.expires_at,
    hit_count = 0,
    last_hit_at = NULL`

const deleteSQL = `DELETE FROM cache_entries WHERE key = $1`

const recordHitSQL = `
UPDATE cache_entries SET hit_count = hit_count + 1, last_hit_at = $2
WHERE key = $1`

const deleteExpiredSQL = `DELETE FROM cache_entries WHERE expires_at <= $1`

// Get returns a fresh entry or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		e    domain.CacheEntry
		kind string
	)
	err := querier.QueryRow(ctx, getSQL, key).Scan(
		&e.Key, &kind, &e.Payload, &e.ModelTag, &e.CreatedAt, &e.ExpiresAt, &e.HitCount, &e.LastHitAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "cache_entry", key)
	}
	e.Kind = domain.ContentKind(kind)
	return &e, nil
}

// Put inserts or replaces the entry stored under entry.Key.
func (r *Repo) Put(ctx context.Context, entry *domain.CacheEntry) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, putSQL,
		entry.Key, string(entry.Kind), []byte(entry.Payload), entry.ModelTag, entry.CreatedAt, entry.ExpiresAt,
	)
	if err != nil {
		return postgres.MapError(err, "cache_entry", entry.Key)
	}
	return nil
}

// Delete removes the entry; a missing key is domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, key string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, key)
	if err != nil {
		return postgres.MapError(err, "cache_entry", key)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cache_entry %s: %w", key, domain.ErrNotFound)
	}
	return nil
}

// RecordHit bumps the hit counter. Missing keys are ignored.
func (r *Repo) RecordHit(ctx context.Context, key string, at time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, recordHitSQL, key, at); err != nil {
		return postgres.MapError(err, "cache_entry", key)
	}
	return nil
}

// DeleteExpired removes entries whose TTL has passed at now and returns how many.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteExpiredSQL, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired cache entries: %w", err)
	}
	return tag.RowsAffected(), nil
}

