// Package openai implements the exercise generator on OpenAI-compatible
// chat completion endpoints.
package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/provider"
)

const providerName = "openai"

// Generator calls a chat completion endpoint in JSON mode.
type Generator struct {
	client    *openai.Client
	model     string
	maxTokens int
	log       *slog.Logger
}

// Config configures the OpenAI-compatible client.
type Config struct {
	APIKey string
	// BaseURL selects a compatible endpoint; empty keeps the public API.
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// NewGenerator creates a Generator.
func NewGenerator(log *slog.Logger, cfg Config) *Generator {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}
	if cfg.Timeout > 0 {
		clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2048
	}
	return &Generator{
		client:    openai.NewClientWithConfig(clientCfg),
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

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if p.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: p.System})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: p.User})

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     g.model,
		Messages:  messages,
		MaxTokens: maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		g.log.WarnContext(ctx, "chat completion failed",
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return nil, classify(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: no choices in response: %w", providerName, domain.ErrExternalService)
	}

	g.log.DebugContext(ctx, "chat completion completed",
		slog.String("model", g.model),
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens),
		slog.Duration("elapsed", time.Since(start)))

	return provider.ExtractJSON(resp.Choices[0].Message.Content)
}

func classify(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return provider.Classify(providerName, apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return provider.Classify(providerName, reqErr.HTTPStatusCode, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return provider.Classify(providerName, 0, err)
}
