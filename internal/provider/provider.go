// Package provider holds the types shared by generation backends.
package provider

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// Prompt is a single structured-output generation request.
type Prompt struct {
	System    string
	User      string
	MaxTokens int
}

// Error is a generation backend failure carrying its retry class.
type Error struct {
	Provider   string
	StatusCode int
	Retryable  bool
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsRetryable reports whether the call may succeed if repeated.
func (e *Error) IsRetryable() bool { return e.Retryable }

// Classify maps an HTTP status from a backend into the domain taxonomy.
// 429 becomes ErrRateLimited and is never retried internally; 5xx and
// transport failures are retryable external errors; other 4xx are permanent.
func Classify(providerName string, status int, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Provider: providerName, StatusCode: status, Err: fmt.Errorf("%w: %w", domain.ErrRateLimited, err)}
	case status >= 500 || status == 0 || status == http.StatusRequestTimeout:
		return &Error{Provider: providerName, StatusCode: status, Retryable: true, Err: fmt.Errorf("%w: %w", domain.ErrExternalService, err)}
	default:
		return &Error{Provider: providerName, StatusCode: status, Err: fmt.Errorf("%w: %w", domain.ErrExternalService, err)}
	}
}

// ExtractJSON pulls the outermost JSON object out of a model response that
// may wrap it in prose or code fences.
func ExtractJSON(text string) (json.RawMessage, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, domain.NewValidationError("payload", "no JSON object found in response")
	}
	raw := json.RawMessage(text[start : end+1])
	if !json.Valid(raw) {
		return nil, domain.NewValidationError("payload", "response does not contain valid JSON")
	}
	return raw, nil
}
