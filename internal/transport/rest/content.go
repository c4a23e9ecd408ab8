package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/exercise"
	"github.com/heartmarshall/adaptive-engine/internal/service/gencache"
	"github.com/heartmarshall/adaptive-engine/internal/transport/middleware"
)

//go:generate moq -out exercise_service_mock_test.go -pkg rest . exerciseService

type exerciseService interface {
	GetExercise(ctx context.Context, in exercise.ExerciseInput) (*exercise.Exercise, error)
}

// ContentHandler serves generated learning content.
type ContentHandler struct {
	svc exerciseService
	log *slog.Logger
}

// NewContentHandler creates a ContentHandler.
func NewContentHandler(svc exerciseService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{svc: svc, log: logger.With("handler", "content")}
}

type exerciseRequest struct {
	TermID uuid.UUID           `json:"term_id"`
	Kind   domain.ExerciseKind `json:"kind"`
}

type exerciseResponse struct {
	Exercise *gencache.Exercise `json:"exercise"`
	Key      string             `json:"key"`
	Cached   bool               `json:"cached"`
}

// Exercise returns the exercise for a term, generating it on first request.
// POST /content/exercises
func (h *ContentHandler) Exercise(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireUser(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	var req exerciseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	ex, err := h.svc.GetExercise(r.Context(), exercise.ExerciseInput{TermID: req.TermID, Kind: req.Kind})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, exerciseResponse{Exercise: ex.Exercise, Key: ex.Key, Cached: ex.Cached})
}
