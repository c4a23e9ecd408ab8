package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/adaptive-engine/internal/adapter/postgres"
	annotationrepo "github.com/heartmarshall/adaptive-engine/internal/adapter/postgres/annotation"
	"github.com/heartmarshall/adaptive-engine/internal/adapter/postgres/featurestat"
	"github.com/heartmarshall/adaptive-engine/internal/adapter/postgres/progress"
	"github.com/heartmarshall/adaptive-engine/internal/adapter/postgres/term"
	"github.com/heartmarshall/adaptive-engine/internal/auth"
	"github.com/heartmarshall/adaptive-engine/internal/config"
	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/annotation"
	"github.com/heartmarshall/adaptive-engine/internal/service/exercise"
	"github.com/heartmarshall/adaptive-engine/internal/service/featurestats"
	"github.com/heartmarshall/adaptive-engine/internal/service/gencache"
	"github.com/heartmarshall/adaptive-engine/internal/service/srs"
	"github.com/heartmarshall/adaptive-engine/internal/transport/middleware"
	"github.com/heartmarshall/adaptive-engine/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database and cache backend, wires services and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("cache_backend", cfg.Cache.Backend),
		slog.String("generator", cfg.Generator.Provider),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	backend, err := newCacheBackend(ctx, cfg, pool, logger)
	if err != nil {
		return err
	}
	defer backend.close()

	gen, err := newGenerator(cfg.Generator, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	stack := buildStack(cfg, logger, pool, backend.store, gen, limiter)
	if backend.ping != nil {
		stack.health.WithComponent("cache", rest.PingFunc(backend.ping))
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      stack.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Background jobs
	if cfg.Sweeper.Enabled {
		sweeper := NewSweeper(stack.cache, cfg.Sweeper.Interval, logger)
		if err := sweeper.Start(); err != nil {
			return err
		}
		defer sweeper.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", slog.String("error", err.Error()))
	}
	if err := stack.annotations.Wait(shutdownCtx); err != nil {
		logger.Warn("exercise warm-ups still running at shutdown", slog.String("error", err.Error()))
	}

	logger.Info("stopped")
	return nil
}

// wiring is the wired service graph behind the HTTP handler.
type wiring struct {
	handler     http.Handler
	health      *rest.HealthHandler
	cache       *gencache.Cache
	annotations *annotation.Service
}

// buildStack wires repositories, services and HTTP handlers on top of
// already connected infrastructure.
func buildStack(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	store cacheStore,
	gen generator,
	limiter *middleware.RateLimiter,
) *wiring {
	// Repositories
	txm := postgres.NewTxManager(pool)
	progressRepo := progress.New(pool)
	termRepo := term.New(pool)
	annotationRepo := annotationrepo.New(pool)
	statRepo := featurestat.New(pool)

	// Services
	srsSvc := srs.NewService(logger, progressRepo, termRepo, txm, cfg.SRS.Domain())

	statsSvc := featurestats.NewService(logger, statRepo, txm, featurestats.Params{
		SaturationCount: cfg.Stats.SaturationCount,
		ApproveNudge:    cfg.Stats.ApproveNudge,
		RejectNudge:     cfg.Stats.RejectNudge,
		MinAdjust:       cfg.Stats.MinAdjust,
		MaxAdjust:       cfg.Stats.MaxAdjust,
	})

	cacheCfg := gencache.DefaultConfig()
	cacheCfg.TTL = cfg.Cache.TTL
	cacheCfg.GenerationTimeout = cfg.Cache.GenerationTimeout
	cacheCfg.MaxAttempts = cfg.Cache.MaxAttempts
	cacheCfg.InitialBackoff = cfg.Cache.InitialBackoff
	cacheCfg.MaxBackoff = cfg.Cache.MaxBackoff
	cache := gencache.New(logger, store, cacheCfg)

	exerciseParams := exercise.DefaultParams()
	exerciseParams.PromptVersion = cfg.Cache.PromptVersion
	exerciseParams.MinBiasConfidence = cfg.Stats.MinBiasConfidence
	exerciseSvc := exercise.NewService(logger, cache, gen, statsSvc, termRepo, exerciseParams)

	annotationSvc := newAnnotationService(cfg, logger, annotationRepo, termRepo, statsSvc, exerciseSvc, txm)

	// HTTP
	health := rest.NewHealthHandler(pool, BuildVersion())

	mux := rest.NewRouter(rest.Handlers{
		Health:     health,
		Study:      rest.NewStudyHandler(srsSvc, logger),
		Content:    rest.NewContentHandler(exerciseSvc, logger),
		Admin:      rest.NewAdminHandler(cache, statsSvc, logger),
		Annotation: rest.NewAnnotationHandler(annotationSvc, logger),
	}, limiter.Limit("generation", cfg.Server.GenerationRateLimit))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)),
	)(mux)

	return &wiring{
		handler:     handler,
		health:      health,
		cache:       cache,
		annotations: annotationSvc,
	}
}

// newAnnotationService wires warm-up and proposal generation only when a
// generator is configured; otherwise publishing skips warm-up and proposal
// ingestion answers "content unavailable".
func newAnnotationService(
	cfg *config.Config,
	logger *slog.Logger,
	annotations *annotationrepo.Repo,
	terms *term.Repo,
	stats *featurestats.Service,
	exercises *exercise.Service,
	txm *postgres.TxManager,
) *annotation.Service {
	kinds := make([]domain.ExerciseKind, 0, len(cfg.Publishing.WarmupKinds))
	for _, k := range cfg.Publishing.WarmupKinds {
		kinds = append(kinds, domain.ExerciseKind(k))
	}
	params := annotation.Params{
		AllowUnpublish:    cfg.Publishing.AllowUnpublish,
		WarmupKinds:       kinds,
		WarmupConcurrency: cfg.Publishing.WarmupConcurrency,
		DefaultListLimit:  cfg.Publishing.DefaultListLimit,
		MaxListLimit:      cfg.Publishing.MaxListLimit,
	}

	if !cfg.Generator.Enabled() {
		return annotation.NewService(logger, annotations, terms, stats, nil, nil, txm, params)
	}
	return annotation.NewService(logger, annotations, terms, stats, exercises, exercises, txm, params)
}
