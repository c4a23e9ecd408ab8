// Package anthropic implements the exercise generator on the Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/provider"
)

const providerName = "anthropic"

// Generator calls Claude and extracts the JSON object from its answer.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int
	log       *slog.Logger
}

// Config configures the Anthropic client.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// NewGenerator creates a Generator. SDK-level retries are disabled because
// the generation cache owns the retry policy.
func NewGenerator(log *slog.Logger, cfg Config) *Generator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &Generator{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
		log:       log.With("provider", providerName),
	}
}

// Model returns the configured model name; it is part of cache keys.
func (g *Generator) Model() string { return g.model }

// Generate sends one prompt and returns the JSON payload from the reply.
func (g *Generator) Generate(ctx context.Context, p provider.Prompt) (json.RawMessage, error) {
	maxTokens := p.MaxTokens
	if maxTokens <= 0 {
		maxTokens = g.maxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(p.User)),
		},
	}
	if p.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: p.System}}
	}

	start := time.Now()
	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		g.log.WarnContext(ctx, "messages request failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return nil, classify(err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		text.WriteString(block.Text)
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%s: empty response: %w", providerName, domain.ErrExternalService)
	}

	g.log.DebugContext(ctx, "messages request completed",
		slog.String("model", g.model),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
		slog.Duration("elapsed", time.Since(start)))

	return provider.ExtractJSON(text.String())
}

func classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return provider.Classify(providerName, apiErr.StatusCode, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return provider.Classify(providerName, 0, err)
}
