package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/adaptive-engine/internal/adapter/postgres/cacheentry"
	"github.com/heartmarshall/adaptive-engine/internal/adapter/rediscache"
	"github.com/heartmarshall/adaptive-engine/internal/config"
	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/gencache"
)

// cacheStore is the persistence contract of the generation cache.
type cacheStore interface {
	Get(ctx context.Context, key string) (*domain.CacheEntry, error)
	Put(ctx context.Context, entry *domain.CacheEntry) error
	Delete(ctx context.Context, key string) error
	RecordHit(ctx context.Context, key string, at time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// cacheBackend is the selected store plus its health check and cleanup.
type cacheBackend struct {
	store cacheStore
	ping  func(ctx context.Context) error
	close func()
}

func newCacheBackend(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, log *slog.Logger) (*cacheBackend, error) {
	switch cfg.Cache.Backend {
	case "postgres":
		return &cacheBackend{store: cacheentry.New(pool), close: func() {}}, nil
	case "redis":
		rdb, err := rediscache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("generation cache uses redis", slog.String("addr", cfg.Redis.Addr))
		return &cacheBackend{
			store: rediscache.New(rdb, cfg.Redis.KeyPrefix),
			ping:  func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			close: func() { _ = rdb.Close() },
		}, nil
	case "memory":
		log.Warn("generation cache is in-process memory; entries are lost on restart")
		return &cacheBackend{store: gencache.NewMemoryStore(), close: func() {}}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
