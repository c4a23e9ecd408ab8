package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adaptive-engine/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/adaptive-engine/internal/adapter/provider/openai"
	"github.com/heartmarshall/adaptive-engine/internal/config"
	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/provider"
)

// generator is the structured-output backend shared by exercises and
// annotation proposals.
type generator interface {
	Generate(ctx context.Context, p provider.Prompt) (json.RawMessage, error)
	Model() string
}

// newGenerator builds the configured backend. With no provider configured
// it returns a backend that always fails permanently, so cache hits are
// still served and misses answer "content unavailable".
func newGenerator(cfg config.GeneratorConfig, log *slog.Logger) (generator, error) {
	switch cfg.Provider {
	case "":
		return disabledGenerator{}, nil
	case "anthropic":
		return anthropic.NewGenerator(log, anthropic.Config{
			APIKey:    cfg.APIKey,
			BaseURL:   cfg.BaseURL,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.Timeout,
		}), nil
	case "openai":
		return openai.NewGenerator(log, openai.Config{
			APIKey:    cfg.APIKey,
			BaseURL:   cfg.BaseURL,
			Model:     cfg.Model,
			MaxTokens: cfg.MaxTokens,
			Timeout:   cfg.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
	}
}

type disabledGenerator struct{}

func (disabledGenerator) Generate(context.Context, provider.Prompt) (json.RawMessage, error) {
	return nil, &provider.Error{
		Provider: "none",
		Err:      fmt.Errorf("%w: no generator configured", domain.ErrExternalService),
	}
}

func (disabledGenerator) Model() string { return "none" }
