package annotation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// Approve moves a pending annotation to approved and counts the approval
// for its feature statistics.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) (*domain.Annotation, error) {
	return s.SubmitFeedback(ctx, FeedbackInput{AnnotationID: id, Type: domain.FeedbackApprove})
}

// Reject moves a pending annotation to rejected.
func (s *Service) Reject(ctx context.Context, id uuid.UUID) (*domain.Annotation, error) {
	return s.SubmitFeedback(ctx, FeedbackInput{AnnotationID: id, Type: domain.FeedbackReject})
}

// SubmitFeedback applies one feedback event to the annotation and then to
// the statistics of its (feature type, species).
func (s *Service) SubmitFeedback(ctx context.Context, input FeedbackInput) (*domain.Annotation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated    *domain.Annotation
		correction []float64
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.annotations.GetForUpdate(txCtx, input.AnnotationID)
		if err != nil {
			return fmt.Errorf("lock annotation: %w", err)
		}

		next := *current
		now := s.now()

		switch input.Type {
		case domain.FeedbackApprove, domain.FeedbackReject:
			to := domain.AnnotationStatusApproved
			if input.Type == domain.FeedbackReject {
				to = domain.AnnotationStatusRejected
			}
			if !current.Status.CanTransition(to, s.params.AllowUnpublish) {
				return domain.NewTransitionError("annotation", current.ID.String(), current.Status.String(), to.String())
			}
			next.Status = to
			next.ReviewedAt = &now

		case domain.FeedbackPositionFix:
			if current.Status == domain.AnnotationStatusRejected {
				return domain.NewTransitionError("annotation", current.ID.String(), current.Status.String(), "corrected")
			}
			correction = current.Box.Correction(*input.Metadata.Box)
			next.Box = *input.Metadata.Box
			next.Source = domain.AnnotationSourceManual
		}

		next.UpdatedAt = now
		updated, err = s.annotations.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update annotation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.recordFeedback(ctx, updated, input.Type, correction)

	s.log.InfoContext(ctx, "annotation feedback applied",
		slog.String("annotation_id", updated.ID.String()),
		slog.String("type", input.Type.String()),
		slog.String("status", updated.Status.String()))

	return updated, nil
}

// Get returns one annotation.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Annotation, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	a, err := s.annotations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get annotation: %w", err)
	}
	return a, nil
}
