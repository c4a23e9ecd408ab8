package rest

import (
	"net/http"

	"github.com/heartmarshall/adaptive-engine/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health     *HealthHandler
	Study      *StudyHandler
	Content    *ContentHandler
	Admin      *AdminHandler
	Annotation *AnnotationHandler
}

// NewRouter registers all routes. generationLimit wraps the endpoint that
// can trigger a generation call; pass nil to leave it unlimited.
func NewRouter(h Handlers, generationLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /study/due", h.Study.Due)
	mux.HandleFunc("POST /study/discover", h.Study.Discover)
	mux.HandleFunc("POST /study/reviews", h.Study.Review)
	mux.HandleFunc("GET /study/progress/{termId}", h.Study.Progress)

	mux.Handle("POST /content/exercises", middleware.Wrap(h.Content.Exercise, generationLimit))

	mux.HandleFunc("GET /admin/cache/stats", h.Admin.CacheStats)
	mux.HandleFunc("DELETE /admin/cache/{key}", h.Admin.InvalidateCache)
	mux.HandleFunc("GET /admin/features/{featureType}/{speciesId}/estimate", h.Admin.Estimate)
	mux.HandleFunc("POST /admin/features/{featureType}/{speciesId}/observations", h.Admin.Observe)

	mux.HandleFunc("GET /admin/annotations", h.Annotation.List)
	mux.HandleFunc("GET /admin/annotations/{id}", h.Annotation.Get)
	mux.HandleFunc("POST /admin/annotations/publish", h.Annotation.Publish)
	mux.HandleFunc("POST /admin/annotations/unpublish", h.Annotation.Unpublish)
	mux.HandleFunc("POST /admin/annotations/feedback", h.Annotation.Feedback)
	mux.HandleFunc("POST /admin/annotations/proposals", h.Annotation.Proposals)
	mux.HandleFunc("POST /admin/annotations/{id}/approve", h.Annotation.Approve)
	mux.HandleFunc("POST /admin/annotations/{id}/reject", h.Annotation.Reject)

	return mux
}
