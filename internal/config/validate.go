package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}
	if err := c.Cache.validate(); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if c.Cache.Backend == "redis" && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required for the redis cache backend")
	}
	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if err := c.Stats.validate(); err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	if err := c.Publishing.validate(); err != nil {
		return fmt.Errorf("publishing: %w", err)
	}
	if c.Sweeper.Enabled && c.Sweeper.Interval <= 0 {
		return fmt.Errorf("sweeper: interval must be > 0 (got %v)", c.Sweeper.Interval)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.MinEaseFactor <= 0 {
		return fmt.Errorf("min_ease_factor must be > 0 (got %v)", s.MinEaseFactor)
	}
	if s.DefaultEaseFactor < s.MinEaseFactor {
		return fmt.Errorf("default_ease_factor must be >= min_ease_factor (got %v < %v)", s.DefaultEaseFactor, s.MinEaseFactor)
	}
	if s.MaxIntervalDays <= 0 {
		return fmt.Errorf("max_interval_days must be > 0 (got %d)", s.MaxIntervalDays)
	}
	if s.DefaultDueLimit <= 0 || s.DefaultDueLimit > s.MaxDueLimit {
		return fmt.Errorf("default_due_limit must be in [1, max_due_limit] (got %d, max %d)", s.DefaultDueLimit, s.MaxDueLimit)
	}
	return nil
}

// Domain returns the scheduler parameters in domain form.
func (s SRSConfig) Domain() domain.SRSConfig {
	return domain.SRSConfig{
		DefaultEaseFactor: s.DefaultEaseFactor,
		MinEaseFactor:     s.MinEaseFactor,
		MaxIntervalDays:   s.MaxIntervalDays,
		DefaultDueLimit:   s.DefaultDueLimit,
		MaxDueLimit:       s.MaxDueLimit,
	}
}

func (c *CacheConfig) validate() error {
	switch c.Backend {
	case "postgres", "redis", "memory":
	default:
		return fmt.Errorf("backend must be one of postgres, redis, memory (got %q)", c.Backend)
	}
	if c.TTL <= 0 {
		return fmt.Errorf("ttl must be > 0 (got %v)", c.TTL)
	}
	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("generation_timeout must be > 0 (got %v)", c.GenerationTimeout)
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", c.MaxAttempts)
	}
	if c.MaxBackoff < c.InitialBackoff {
		return fmt.Errorf("max_backoff must be >= initial_backoff (got %v < %v)", c.MaxBackoff, c.InitialBackoff)
	}
	if c.PromptVersion < 1 {
		return fmt.Errorf("prompt_version must be >= 1 (got %d)", c.PromptVersion)
	}
	return nil
}

func (g *GeneratorConfig) validate() error {
	switch g.Provider {
	case "":
		return nil
	case "anthropic", "openai":
	default:
		return fmt.Errorf("provider must be anthropic, openai or empty (got %q)", g.Provider)
	}
	if g.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %s", g.Provider)
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	return nil
}

func (s *StatsConfig) validate() error {
	if s.SaturationCount < 1 {
		return fmt.Errorf("saturation_count must be >= 1 (got %d)", s.SaturationCount)
	}
	if s.MinAdjust > 0 || s.MaxAdjust < 0 {
		return fmt.Errorf("adjust bounds must satisfy min_adjust <= 0 <= max_adjust (got %v, %v)", s.MinAdjust, s.MaxAdjust)
	}
	if s.MinBiasConfidence < 0 || s.MinBiasConfidence > 1 {
		return fmt.Errorf("min_bias_confidence must be within [0, 1] (got %v)", s.MinBiasConfidence)
	}
	return nil
}

func (p *PublishingConfig) validate() error {
	kinds, err := ParseWarmupKinds(p.WarmupKindsRaw)
	if err != nil {
		return fmt.Errorf("warmup_kinds: %w", err)
	}
	p.WarmupKinds = kinds

	if p.WarmupConcurrency < 1 {
		return fmt.Errorf("warmup_concurrency must be >= 1 (got %d)", p.WarmupConcurrency)
	}
	if p.DefaultListLimit < 1 || p.DefaultListLimit > p.MaxListLimit {
		return fmt.Errorf("default_list_limit must be in [1, max_list_limit] (got %d, max %d)", p.DefaultListLimit, p.MaxListLimit)
	}
	return nil
}

// ParseWarmupKinds parses a comma-separated list of exercise kinds
// (e.g. "multiple_choice,fill_blank"). An empty string disables warm-up.
func ParseWarmupKinds(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	kinds := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !domain.ExerciseKind(p).IsValid() {
			return nil, fmt.Errorf("unknown exercise kind %q", p)
		}
		kinds = append(kinds, p)
	}

	return kinds, nil
}
