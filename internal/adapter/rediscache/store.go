// Package rediscache implements the generation cache store on Redis.
// Each entry is a hash that Redis expires at the entry's ExpiresAt, so
// DeleteExpired has nothing left to remove.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

const (
	fieldKind      = "kind"
	fieldPayload   = "payload"
	fieldModelTag  = "model_tag"
	fieldCreatedAt = "created_at"
	fieldExpiresAt = "expires_at"
	fieldHitCount  = "hit_count"
	fieldLastHitAt = "last_hit_at"
)

// Store keeps cache entries in Redis under a common key prefix.
type Store struct {
	rdb    goredis.UniversalClient
	prefix string
}

// New creates a store. prefix namespaces keys, e.g. "gencache:".
func New(rdb goredis.UniversalClient, prefix string) *Store {
	return &Store{rdb: rdb, prefix: prefix}
}

// Connect opens a client for addr and verifies it with PING.
func Connect(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func (s *Store) key(k string) string { return s.prefix + k }

// Get returns a fresh entry or domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	fields, err := s.rdb.HGetAll(ctx, s.key(key)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache_entry %s: %w", key, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("cache_entry %s: %w", key, domain.ErrNotFound)
	}

	e, err := decode(key, fields)
	if err != nil {
		return nil, fmt.Errorf("cache_entry %s: %w", key, err)
	}
	if !e.IsFresh(time.Now()) {
		return nil, fmt.Errorf("cache_entry %s: %w", key, domain.ErrNotFound)
	}
	return e, nil
}

// Put replaces the entry and sets its expiry. Entries already past their
// expiry are not stored.
func (s *Store) Put(ctx context.Context, entry *domain.CacheEntry) error {
	k := s.key(entry.Key)

	_, err := s.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.HSet(ctx, k,
			fieldKind, string(entry.Kind),
			fieldPayload, []byte(entry.Payload),
			fieldModelTag, entry.ModelTag,
			fieldCreatedAt, entry.CreatedAt.UTC().Format(time.RFC3339Nano),
			fieldExpiresAt, entry.ExpiresAt.UTC().Format(time.RFC3339Nano),
			fieldHitCount, 0,
		)
		pipe.PExpireAt(ctx, k, entry.ExpiresAt)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache_entry %s: %w", entry.Key, err)
	}
	return nil
}

// Delete removes the entry; a missing key is domain.ErrNotFound.
func (s *Store) Delete(ctx context.Context, key string) error {
	n, err := s.rdb.Del(ctx, s.key(key)).Result()
	if err != nil {
		return fmt.Errorf("cache_entry %s: %w", key, err)
	}
	if n == 0 {
		return fmt.Errorf("cache_entry %s: %w", key, domain.ErrNotFound)
	}
	return nil
}

// recordHit only touches keys that still exist so a hit racing an expiry
// does not resurrect a partial hash.
var recordHit = goredis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
  redis.call("HINCRBY", KEYS[1], "hit_count", 1)
  redis.call("HSET", KEYS[1], "last_hit_at", ARGV[1])
  return 1
end
return 0`)

// RecordHit bumps the hit counter. Missing keys are ignored.
func (s *Store) RecordHit(ctx context.Context, key string, at time.Time) error {
	err := recordHit.Run(ctx, s.rdb, []string{s.key(key)}, at.UTC().Format(time.RFC3339Nano)).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("cache_entry %s: %w", key, err)
	}
	return nil
}

// DeleteExpired is a no-op: Redis evicts entries at their expiry.
func (s *Store) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func decode(key string, fields map[string]string) (*domain.CacheEntry, error) {
	e := &domain.CacheEntry{
		Key:      key,
		Kind:     domain.ContentKind(fields[fieldKind]),
		Payload:  []byte(fields[fieldPayload]),
		ModelTag: fields[fieldModelTag],
	}

	var err error
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, fields[fieldCreatedAt]); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if e.ExpiresAt, err = time.Parse(time.RFC3339Nano, fields[fieldExpiresAt]); err != nil {
		return nil, fmt.Errorf("parse expires_at: %w", err)
	}
	if v := fields[fieldHitCount]; v != "" {
		if e.HitCount, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, fmt.Errorf("parse hit_count: %w", err)
		}
	}
	if v := fields[fieldLastHitAt]; v != "" {
		at, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("parse last_hit_at: %w", err)
		}
		e.LastHitAt = &at
	}
	return e, nil
}
