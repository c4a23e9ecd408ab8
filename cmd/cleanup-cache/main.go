// Command cleanup-cache removes expired generation cache entries from
// PostgreSQL. It is intended to be invoked by an external cron job when the
// in-process sweeper is disabled. The redis backend expires keys natively
// and needs no cleanup.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/adaptive-engine/internal/adapter/postgres"
	"github.com/heartmarshall/adaptive-engine/internal/adapter/postgres/cacheentry"
	"github.com/heartmarshall/adaptive-engine/internal/app"
	"github.com/heartmarshall/adaptive-engine/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Cache.Backend != "postgres" {
		logger.Info("cache backend keeps no expired rows, nothing to do",
			slog.String("backend", cfg.Cache.Backend))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	deleted, err := cacheentry.New(pool).DeleteExpired(ctx, now)
	if err != nil {
		logger.Error("delete expired cache entries failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", now),
		)
		os.Exit(1)
	}

	logger.Info("expired cache entries deleted",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", now),
	)
}
