package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/gencache"
	"github.com/heartmarshall/adaptive-engine/internal/transport/middleware"
)

//go:generate moq -out cache_admin_mock_test.go -pkg rest . cacheAdmin
//go:generate moq -out feature_stats_mock_test.go -pkg rest . featureStats

type cacheAdmin interface {
	Invalidate(ctx context.Context, key string) error
	Stats() gencache.Stats
}

type featureStats interface {
	GetEstimate(ctx context.Context, featureType, speciesID string) (*domain.Estimate, error)
	Observe(ctx context.Context, featureType, speciesID string, sample []float64) (*domain.Estimate, error)
}

// AdminHandler serves operator endpoints for the generation cache and
// feature statistics.
type AdminHandler struct {
	cache    cacheAdmin
	features featureStats
	log      *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(cache cacheAdmin, features featureStats, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		cache:    cache,
		features: features,
		log:      logger.With("handler", "admin"),
	}
}

type observeRequest struct {
	Sample []float64 `json:"sample"`
}

// InvalidateCache removes one cache entry.
// DELETE /admin/cache/{key}
func (h *AdminHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	if err := h.cache.Invalidate(r.Context(), r.PathValue("key")); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CacheStats returns cache effectiveness counters for this process.
// GET /admin/cache/stats
func (h *AdminHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	writeJSON(w, http.StatusOK, h.cache.Stats())
}

// Estimate returns the current estimate for (feature type, species).
// GET /admin/features/{featureType}/{speciesId}/estimate
func (h *AdminHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	est, err := h.features.GetEstimate(r.Context(), r.PathValue("featureType"), r.PathValue("speciesId"))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEstimateResponse(*est))
}

// Observe folds one positional sample into the statistics.
// POST /admin/features/{featureType}/{speciesId}/observations
func (h *AdminHandler) Observe(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req observeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	est, err := h.features.Observe(r.Context(), r.PathValue("featureType"), r.PathValue("speciesId"), req.Sample)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEstimateResponse(*est))
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return false
	}
	return true
}
