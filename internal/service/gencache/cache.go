package gencache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// GenerateFunc produces a raw payload. It is called with a context that is
// detached from the requesting caller and bounded by the generation timeout.
type GenerateFunc func(ctx context.Context) (json.RawMessage, error)

// ValidateFunc checks a payload before it is trusted and cached.
type ValidateFunc func(payload json.RawMessage) error

type store interface {
	Get(ctx context.Context, key string) (*domain.CacheEntry, error)
	Put(ctx context.Context, entry *domain.CacheEntry) error
	Delete(ctx context.Context, key string) error
	RecordHit(ctx context.Context, key string, at time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Config controls TTL, timeouts and the retry schedule.
type Config struct {
	TTL               time.Duration
	GenerationTimeout time.Duration
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	Multiplier        float64
	Jitter            float64
}

// DefaultConfig returns production defaults.
func DefaultConfig() Config {
	return Config{
		TTL:               domain.DefaultCacheTTL,
		GenerationTimeout: 60 * time.Second,
		MaxAttempts:       3,
		InitialBackoff:    500 * time.Millisecond,
		MaxBackoff:        8 * time.Second,
		Multiplier:        2,
		Jitter:            0.1,
	}
}

// Result is what GetOrGenerate hands back to callers.
type Result struct {
	Payload json.RawMessage
	Hit     bool
}

// Stats is a snapshot of cache effectiveness counters.
type Stats struct {
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	Generations int64 `json:"generations"`
	Failures    int64 `json:"failures"`
	Coalesced   int64 `json:"coalesced"`
	InFlight    int   `json:"in_flight"`
}

// call is the in-progress future for one key. payload and err are written
// once before done is closed.
type call struct {
	done    chan struct{}
	payload json.RawMessage
	err     error

	// stale is set by Invalidate while the call is in flight; the result is
	// still handed to waiters but never stored.
	stale atomic.Bool
}

type outcome struct {
	payload json.RawMessage
	err     error
}

// Cache is a content-addressable generation cache with one in-flight
// generation per key.
type Cache struct {
	store store
	cfg   Config
	log   *slog.Logger
	now   func() time.Time

	mu       sync.Mutex
	inflight map[string]*call

	hits        atomic.Int64
	misses      atomic.Int64
	generations atomic.Int64
	failures    atomic.Int64
	coalesced   atomic.Int64
}

// New creates a Cache over the given store.
func New(log *slog.Logger, s store, cfg Config) *Cache {
	def := DefaultConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = def.TTL
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = def.GenerationTimeout
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = def.InitialBackoff
	}
	if cfg.MaxBackoff < cfg.InitialBackoff {
		cfg.MaxBackoff = cfg.InitialBackoff
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = def.Multiplier
	}
	return &Cache{
		store:    s,
		cfg:      cfg,
		log:      log.With("service", "gencache"),
		now:      time.Now,
		inflight: make(map[string]*call),
	}
}

// Option customizes the entry stored by a single GetOrGenerate call.
type Option func(*entryOptions)

type entryOptions struct {
	kind     domain.ContentKind
	modelTag string
	ttl      time.Duration
}

// WithKind records the payload kind on the stored entry.
func WithKind(k domain.ContentKind) Option { return func(o *entryOptions) { o.kind = k } }

// WithModelTag records which model produced the payload.
func WithModelTag(tag string) Option { return func(o *entryOptions) { o.modelTag = tag } }

// WithTTL overrides the configured TTL for this entry.
func WithTTL(ttl time.Duration) Option { return func(o *entryOptions) { o.ttl = ttl } }

// GetOrGenerate returns the cached payload for key, or generates, validates
// and caches it. Concurrent callers for the same key share one generation.
// Callers that give up (ctx done) do not cancel the shared generation.
func (c *Cache) GetOrGenerate(ctx context.Context, key string, gen GenerateFunc, validate ValidateFunc, opts ...Option) (Result, error) {
	if key == "" {
		return Result{}, domain.NewValidationError("key", "required")
	}

	if entry, ok := c.lookup(ctx, key); ok {
		c.hits.Add(1)
		if err := c.store.RecordHit(ctx, key, c.now()); err != nil {
			c.log.WarnContext(ctx, "record cache hit", slog.String("key", key), slog.String("error", err.Error()))
		}
		return Result{Payload: entry.Payload, Hit: true}, nil
	}
	c.misses.Add(1)

	eo := entryOptions{ttl: c.cfg.TTL}
	for _, o := range opts {
		o(&eo)
	}

	c.mu.Lock()
	cl, joined := c.inflight[key]
	if joined {
		c.coalesced.Add(1)
	} else {
		cl = &call{done: make(chan struct{})}
		c.inflight[key] = cl
		go c.run(context.WithoutCancel(ctx), key, cl, gen, validate, eo)
	}
	c.mu.Unlock()

	select {
	case <-cl.done:
		if cl.err != nil {
			return Result{}, cl.err
		}
		return Result{Payload: cl.payload}, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Invalidate removes key from the store. A generation already in flight for
// key still answers its waiters but its payload is not stored.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	if key == "" {
		return domain.NewValidationError("key", "required")
	}
	c.mu.Lock()
	cl, inFlight := c.inflight[key]
	if inFlight {
		cl.stale.Store(true)
	}
	c.mu.Unlock()

	if err := c.store.Delete(ctx, key); err != nil {
		if inFlight && errors.Is(err, domain.ErrNotFound) {
			c.log.InfoContext(ctx, "in-flight generation invalidated", slog.String("key", key))
			return nil
		}
		return fmt.Errorf("invalidate %s: %w", key, err)
	}
	c.log.InfoContext(ctx, "cache entry invalidated", slog.String("key", key))
	return nil
}

// Sweep deletes entries whose TTL has passed.
func (c *Cache) Sweep(ctx context.Context) (int64, error) {
	n, err := c.store.DeleteExpired(ctx, c.now())
	if err != nil {
		return 0, fmt.Errorf("delete expired entries: %w", err)
	}
	return n, nil
}

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	inFlight := len(c.inflight)
	c.mu.Unlock()

	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Generations: c.generations.Load(),
		Failures:    c.failures.Load(),
		Coalesced:   c.coalesced.Load(),
		InFlight:    inFlight,
	}
}

// lookup treats store errors as a miss so an unhealthy store degrades to
// uncached generation instead of failing requests.
func (c *Cache) lookup(ctx context.Context, key string) (*domain.CacheEntry, bool) {
	entry, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			c.log.WarnContext(ctx, "cache lookup failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	if !entry.IsFresh(c.now()) {
		return nil, false
	}
	return entry, true
}

// run is the leader for key. The in-flight marker is released when the
// generation finishes, panics or exceeds GenerationTimeout, whichever comes
// first. A generator that ignores its context is abandoned on timeout and its
// late result is dropped.
func (c *Cache) run(parent context.Context, key string, cl *call, gen GenerateFunc, validate ValidateFunc, eo entryOptions) {
	ctx, cancel := context.WithTimeout(parent, c.cfg.GenerationTimeout)
	defer cancel()

	defer func() {
		c.mu.Lock()
		if c.inflight[key] == cl {
			delete(c.inflight, key)
		}
		c.mu.Unlock()
		close(cl.done)
	}()

	// Another leader may have finished between our lookup and taking the marker.
	if entry, ok := c.lookup(ctx, key); ok {
		cl.payload = entry.Payload
		return
	}

	res := make(chan outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				c.log.ErrorContext(ctx, "generator panicked", slog.String("key", key), slog.Any("panic", r))
				res <- outcome{err: fmt.Errorf("%w: %w: generator panic: %v", domain.ErrContentUnavailable, domain.ErrExternalService, r)}
			}
		}()
		payload, err := c.generate(ctx, key, gen, validate)
		res <- outcome{payload: payload, err: err}
	}()

	var out outcome
	select {
	case out = <-res:
	case <-ctx.Done():
		out.err = fmt.Errorf("%w: %w: generation exceeded %s: %w",
			domain.ErrContentUnavailable, domain.ErrExternalService, c.cfg.GenerationTimeout, ctx.Err())
	}

	if out.err != nil {
		c.failures.Add(1)
		cl.err = out.err
		c.log.WarnContext(ctx, "generation failed", slog.String("key", key), slog.String("error", out.err.Error()))
		return
	}
	cl.payload = out.payload

	if cl.stale.Load() {
		c.log.InfoContext(ctx, "generated payload discarded after invalidation", slog.String("key", key))
		return
	}

	// The store write must not be cut short by the generation deadline.
	storeCtx := context.WithoutCancel(ctx)
	now := c.now()
	entry := &domain.CacheEntry{
		Key:       key,
		Kind:      eo.kind,
		Payload:   out.payload,
		ModelTag:  eo.modelTag,
		CreatedAt: now,
		ExpiresAt: now.Add(eo.ttl),
	}
	if err := c.store.Put(storeCtx, entry); err != nil {
		c.log.ErrorContext(ctx, "store generated payload", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	// Invalidate may have run between the check above and Put.
	if cl.stale.Load() {
		if err := c.store.Delete(storeCtx, key); err != nil && !errors.Is(err, domain.ErrNotFound) {
			c.log.ErrorContext(ctx, "drop invalidated payload", slog.String("key", key), slog.String("error", err.Error()))
		}
	}
}

// generate runs gen with bounded retries. Rate limits, timeouts and errors
// that declare themselves non-retryable stop the loop immediately.
func (c *Cache) generate(ctx context.Context, key string, gen GenerateFunc, validate ValidateFunc) (json.RawMessage, error) {
	var payload json.RawMessage
	attempt := 0

	op := func() error {
		attempt++
		c.generations.Add(1)

		out, err := gen(ctx)
		if err != nil {
			if !isRetryable(err) {
				return backoff.Permanent(err)
			}
			c.log.DebugContext(ctx, "generation attempt failed",
				slog.String("key", key), slog.Int("attempt", attempt), slog.String("error", err.Error()))
			return err
		}
		if validate != nil {
			if err := validate(out); err != nil {
				c.log.DebugContext(ctx, "generated payload rejected",
					slog.String("key", key), slog.Int("attempt", attempt), slog.String("error", err.Error()))
				return err
			}
		}
		payload = out
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(c.backoff(), ctx))
	if err == nil {
		return payload, nil
	}

	switch {
	case errors.Is(err, domain.ErrRateLimited):
		return nil, fmt.Errorf("generate %s: %w", key, err)
	case errors.Is(err, domain.ErrValidation):
		return nil, fmt.Errorf("%w: %w", domain.ErrContentUnavailable, err)
	case errors.Is(err, domain.ErrExternalService):
		return nil, fmt.Errorf("%w: %w", domain.ErrContentUnavailable, err)
	default:
		return nil, fmt.Errorf("%w: %w: %v", domain.ErrContentUnavailable, domain.ErrExternalService, err)
	}
}

func (c *Cache) backoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.InitialBackoff
	b.MaxInterval = c.cfg.MaxBackoff
	b.Multiplier = c.cfg.Multiplier
	b.RandomizationFactor = c.cfg.Jitter
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, uint64(c.cfg.MaxAttempts-1))
}

// isRetryable follows the convention of errors declaring IsRetryable();
// otherwise everything except rate limits and context expiry is retried.
func isRetryable(err error) bool {
	if errors.Is(err, domain.ErrRateLimited) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	var r interface{ IsRetryable() bool }
	if errors.As(err, &r) {
		return r.IsRetryable()
	}
	return true
}
