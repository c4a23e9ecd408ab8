package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/srs"
	"github.com/heartmarshall/adaptive-engine/pkg/ctxutil"
)

//go:generate moq -out srs_service_mock_test.go -pkg rest . srsService

type srsService interface {
	GetDueTerms(ctx context.Context, input srs.GetDueInput) ([]domain.DueTerm, error)
	DiscoverTerms(ctx context.Context, input srs.DiscoverInput) ([]domain.DueTerm, error)
	RecordReview(ctx context.Context, input srs.ReviewInput) (*domain.UserTermProgress, error)
	GetProgress(ctx context.Context, userID, termID uuid.UUID) (*domain.UserTermProgress, error)
}

// StudyHandler serves the learner review loop.
type StudyHandler struct {
	svc srsService
	log *slog.Logger
}

// NewStudyHandler creates a StudyHandler.
func NewStudyHandler(svc srsService, logger *slog.Logger) *StudyHandler {
	return &StudyHandler{svc: svc, log: logger.With("handler", "study")}
}

type discoverRequest struct {
	ModuleID *string `json:"module_id"`
	Limit    int     `json:"limit"`
}

type reviewRequest struct {
	TermID         uuid.UUID `json:"term_id"`
	Correct        bool      `json:"correct"`
	Quality        int       `json:"quality"`
	ResponseTimeMs *int      `json:"response_time_ms"`
}

// Due returns the caller's due terms, most overdue first.
// GET /study/due?limit=20
func (h *StudyHandler) Due(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items, err := h.svc.GetDueTerms(r.Context(), srs.GetDueInput{UserID: userID, Limit: limit})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDueTermsResponse(items))
}

// Discover starts progress for terms the caller has never seen.
// POST /study/discover
func (h *StudyHandler) Discover(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req discoverRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	items, err := h.svc.DiscoverTerms(r.Context(), srs.DiscoverInput{
		UserID:   userID,
		ModuleID: req.ModuleID,
		Limit:    req.Limit,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDueTermsResponse(items))
}

// Review records one review and returns the updated schedule.
// POST /study/reviews
func (h *StudyHandler) Review(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	progress, err := h.svc.RecordReview(r.Context(), srs.ReviewInput{
		UserID:         userID,
		TermID:         req.TermID,
		Correct:        req.Correct,
		Quality:        req.Quality,
		ResponseTimeMs: req.ResponseTimeMs,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(*progress))
}

// Progress returns the caller's progress on one term.
// GET /study/progress/{termId}
func (h *StudyHandler) Progress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	termID, err := uuid.Parse(r.PathValue("termId"))
	if err != nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("term_id", "must be a UUID"))
		return
	}

	progress, err := h.svc.GetProgress(r.Context(), userID, termID)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toProgressResponse(*progress))
}

func (h *StudyHandler) requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}
