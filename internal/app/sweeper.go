package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

type expiredSweeper interface {
	Sweep(ctx context.Context) (int64, error)
}

// Sweeper periodically removes expired generation cache entries. Reads
// already ignore expired rows, so a missed run only costs storage.
type Sweeper struct {
	scheduler *gocron.Scheduler
	cache     expiredSweeper
	interval  time.Duration
	timeout   time.Duration
	log       *slog.Logger
}

// NewSweeper creates a Sweeper. Call Start to schedule it.
func NewSweeper(cache expiredSweeper, interval time.Duration, log *slog.Logger) *Sweeper {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Sweeper{
		scheduler: s,
		cache:     cache,
		interval:  interval,
		timeout:   interval / 2,
		log:       log.With("job", "cache_sweeper"),
	}
}

// Start schedules the job and runs it once immediately.
func (s *Sweeper) Start() error {
	if _, err := s.scheduler.Every(s.interval).Do(s.run); err != nil {
		return fmt.Errorf("schedule cache sweeper: %w", err)
	}
	s.scheduler.StartAsync()
	s.log.Info("cache sweeper started", slog.Duration("interval", s.interval))
	return nil
}

// Stop terminates the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	s.scheduler.Stop()
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	n, err := s.cache.Sweep(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "sweep expired cache entries", slog.String("error", err.Error()))
		return
	}
	s.log.InfoContext(ctx, "expired cache entries swept",
		slog.Int64("deleted", n),
		slog.Duration("took", time.Since(start)))
}
