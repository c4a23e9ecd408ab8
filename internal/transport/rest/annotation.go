package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/annotation"
	"github.com/heartmarshall/adaptive-engine/internal/service/exercise"
	"github.com/heartmarshall/adaptive-engine/internal/transport/middleware"
)

//go:generate moq -out annotation_service_mock_test.go -pkg rest . annotationService

type annotationService interface {
	Publish(ctx context.Context, input annotation.PublishInput) (*domain.BatchResult, error)
	Unpublish(ctx context.Context, input annotation.UnpublishInput) (*domain.BatchResult, error)
	Approve(ctx context.Context, id uuid.UUID) (*domain.Annotation, error)
	Reject(ctx context.Context, id uuid.UUID) (*domain.Annotation, error)
	SubmitFeedback(ctx context.Context, input annotation.FeedbackInput) (*domain.Annotation, error)
	IngestProposals(ctx context.Context, input annotation.IngestInput) ([]domain.Annotation, error)
	List(ctx context.Context, input annotation.ListInput) ([]domain.Annotation, int, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Annotation, error)
}

// AnnotationHandler serves the annotation review and publishing workflow.
// Every endpoint requires the admin role.
type AnnotationHandler struct {
	svc annotationService
	log *slog.Logger
}

// NewAnnotationHandler creates an AnnotationHandler.
func NewAnnotationHandler(svc annotationService, logger *slog.Logger) *AnnotationHandler {
	return &AnnotationHandler{svc: svc, log: logger.With("handler", "annotation")}
}

type publishRequest struct {
	AnnotationIDs     []uuid.UUID `json:"annotation_ids"`
	ModuleID          *string     `json:"module_id"`
	GenerateExercises bool        `json:"generate_exercises"`
}

type unpublishRequest struct {
	AnnotationIDs []uuid.UUID `json:"annotation_ids"`
}

type feedbackMetadata struct {
	Box    *domain.BoundingBox `json:"box"`
	Reason string              `json:"reason"`
}

type feedbackRequest struct {
	AnnotationID uuid.UUID           `json:"annotation_id"`
	Type         domain.FeedbackType `json:"type"`
	Metadata     *feedbackMetadata   `json:"metadata"`
}

type proposalsRequest struct {
	ImageID      string   `json:"image_id"`
	ImageURL     string   `json:"image_url"`
	SpeciesID    string   `json:"species_id"`
	FeatureTypes []string `json:"feature_types"`
	ModuleID     *string  `json:"module_id"`
}

type annotationListResponse struct {
	Items []annotationResponse `json:"items"`
	Total int                  `json:"total"`
}

// Publish moves approved annotations to published in one batch.
// POST /admin/annotations/publish
func (h *AnnotationHandler) Publish(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req publishRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Publish(r.Context(), annotation.PublishInput{
		AnnotationIDs:     req.AnnotationIDs,
		ModuleID:          req.ModuleID,
		GenerateExercises: req.GenerateExercises,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, batchStatus(result), toBatchResponse(result))
}

// Unpublish moves published annotations back to approved.
// POST /admin/annotations/unpublish
func (h *AnnotationHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req unpublishRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Unpublish(r.Context(), annotation.UnpublishInput{AnnotationIDs: req.AnnotationIDs})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, batchStatus(result), toBatchResponse(result))
}

// Approve moves a pending annotation to approved.
// POST /admin/annotations/{id}/approve
func (h *AnnotationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Approve)
}

// Reject moves a pending annotation to rejected.
// POST /admin/annotations/{id}/reject
func (h *AnnotationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Reject)
}

// Feedback applies an approve, reject or position_fix event.
// POST /admin/annotations/feedback
func (h *AnnotationHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req feedbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	input := annotation.FeedbackInput{AnnotationID: req.AnnotationID, Type: req.Type}
	if req.Metadata != nil {
		input.Metadata = &annotation.FeedbackMetadata{Box: req.Metadata.Box, Reason: req.Metadata.Reason}
	}

	updated, err := h.svc.SubmitFeedback(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnnotationResponse(*updated))
}

// Proposals generates bounding boxes for an image and stores them as
// pending annotations.
// POST /admin/annotations/proposals
func (h *AnnotationHandler) Proposals(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req proposalsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	created, err := h.svc.IngestProposals(r.Context(), annotation.IngestInput{
		ProposeInput: exercise.ProposeInput{
			ImageID:      req.ImageID,
			ImageURL:     req.ImageURL,
			SpeciesID:    req.SpeciesID,
			FeatureTypes: req.FeatureTypes,
		},
		ModuleID: req.ModuleID,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAnnotationsResponse(created))
}

// List returns annotations filtered by status, species and module.
// GET /admin/annotations?status=approved&species_id=&module_id=&limit=50&offset=0
func (h *AnnotationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	input := annotation.ListInput{
		SpeciesID: queryString(r, "species_id"),
		ModuleID:  queryString(r, "module_id"),
		Limit:     limit,
		Offset:    offset,
	}
	if s := queryString(r, "status"); s != nil {
		status := domain.AnnotationStatus(*s)
		input.Status = &status
	}

	items, total, err := h.svc.List(r.Context(), input)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, annotationListResponse{Items: toAnnotationsResponse(items), Total: total})
}

// Get returns one annotation.
// GET /admin/annotations/{id}
func (h *AnnotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.byID(w, r, h.svc.Get)
}

func (h *AnnotationHandler) byID(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id uuid.UUID) (*domain.Annotation, error),
) {
	if !h.requireAdmin(w, r) {
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, h.log, domain.NewValidationError("id", "must be a UUID"))
		return
	}

	a, err := fn(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAnnotationResponse(*a))
}

func (h *AnnotationHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeDomainError(w, r, h.log, err)
		return false
	}
	return true
}

// batchStatus answers 409 for a rejected batch so clients do not mistake
// the per-item report for success.
func batchStatus(r *domain.BatchResult) int {
	if r.Committed() {
		return http.StatusOK
	}
	return http.StatusConflict
}
