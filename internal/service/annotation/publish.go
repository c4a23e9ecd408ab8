package annotation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/exercise"
)

// Publish moves a batch of approved annotations to published and creates
// their terms. The batch is all-or-nothing: when any id is unknown or not
// approved, nothing is written and the result lists every item's outcome
// without returning an error.
func (s *Service) Publish(ctx context.Context, input PublishInput) (*domain.BatchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		result *domain.BatchResult
		terms  []domain.Term
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.annotations.LockMany(txCtx, input.AnnotationIDs)
		if err != nil {
			return fmt.Errorf("lock annotations: %w", err)
		}

		result = checkBatch(input.AnnotationIDs, locked, domain.AnnotationStatusPublished, s.params.AllowUnpublish, domain.BatchItemPublished)
		if result.Failed > 0 {
			return nil
		}

		now := s.now()
		if err := s.annotations.SetPublished(txCtx, input.AnnotationIDs, input.ModuleID, now); err != nil {
			return fmt.Errorf("publish annotations: %w", err)
		}

		byID := indexByID(locked)
		newTerms := make([]domain.Term, 0, len(input.AnnotationIDs))
		for _, id := range input.AnnotationIDs {
			a := byID[id]
			moduleID := a.ModuleID
			if input.ModuleID != nil {
				moduleID = input.ModuleID
			}
			newTerms = append(newTerms, domain.Term{
				ID:           uuid.New(),
				AnnotationID: a.ID,
				SpeciesID:    a.SpeciesID,
				FeatureType:  a.FeatureType,
				Labels:       a.Labels,
				ModuleID:     moduleID,
				CreatedAt:    now,
			})
		}

		terms, err = s.terms.UpsertForAnnotations(txCtx, newTerms)
		if err != nil {
			return fmt.Errorf("create terms: %w", err)
		}

		termByAnnotation := make(map[uuid.UUID]uuid.UUID, len(terms))
		for _, t := range terms {
			termByAnnotation[t.AnnotationID] = t.ID
		}
		for i := range result.Items {
			if termID, ok := termByAnnotation[result.Items[i].AnnotationID]; ok {
				result.Items[i].TermID = &termID
			}
		}
		result.Published = len(result.Items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Committed() {
		s.log.InfoContext(ctx, "publish batch rejected",
			slog.Int("requested", len(input.AnnotationIDs)),
			slog.Int("failed", result.Failed))
		return result, nil
	}

	if input.GenerateExercises && s.warmer != nil && len(s.params.WarmupKinds) > 0 {
		s.dispatchWarmup(ctx, terms)
		result.WarmupScheduled = true
	}

	s.log.InfoContext(ctx, "publish batch committed",
		slog.Int("published", result.Published),
		slog.Bool("warmup", result.WarmupScheduled))

	return result, nil
}

// Unpublish moves published annotations back to approved and retires their
// terms. Existing learner progress is kept. It is only available when
// AllowUnpublish is set; otherwise every item fails as an invalid transition.
func (s *Service) Unpublish(ctx context.Context, input UnpublishInput) (*domain.BatchResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *domain.BatchResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		locked, err := s.annotations.LockMany(txCtx, input.AnnotationIDs)
		if err != nil {
			return fmt.Errorf("lock annotations: %w", err)
		}

		result = checkBatch(input.AnnotationIDs, locked, domain.AnnotationStatusApproved, s.params.AllowUnpublish, domain.BatchItemUnpublished)
		if result.Failed > 0 {
			return nil
		}

		now := s.now()
		if err := s.annotations.SetUnpublished(txCtx, input.AnnotationIDs, now); err != nil {
			return fmt.Errorf("unpublish annotations: %w", err)
		}
		if _, err := s.terms.RetireByAnnotations(txCtx, input.AnnotationIDs, now); err != nil {
			return fmt.Errorf("retire terms: %w", err)
		}
		result.Published = len(result.Items)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "unpublish batch processed",
		slog.Int("requested", len(input.AnnotationIDs)),
		slog.Int("failed", result.Failed),
		slog.Bool("committed", result.Committed()))

	return result, nil
}

// checkBatch validates that every requested id exists and may move to the
// target status. Items that pass get ok; when anything fails they are
// downgraded to skipped.
func checkBatch(
	ids []uuid.UUID,
	locked []domain.Annotation,
	to domain.AnnotationStatus,
	allowUnpublish bool,
	ok domain.BatchItemStatus,
) *domain.BatchResult {
	byID := indexByID(locked)
	result := &domain.BatchResult{Items: make([]domain.BatchItem, 0, len(ids))}

	for _, id := range ids {
		a, found := byID[id]
		switch {
		case !found:
			result.Items = append(result.Items, domain.BatchItem{AnnotationID: id, Status: domain.BatchItemFailed, Reason: "not found"})
			result.Failed++
		case !a.Status.CanTransition(to, allowUnpublish):
			result.Items = append(result.Items, domain.BatchItem{
				AnnotationID: id,
				Status:       domain.BatchItemFailed,
				Reason:       fmt.Sprintf("cannot move from %s to %s", a.Status, to),
			})
			result.Failed++
		default:
			result.Items = append(result.Items, domain.BatchItem{AnnotationID: id, Status: ok})
		}
	}

	if result.Failed > 0 {
		for i := range result.Items {
			if result.Items[i].Status != domain.BatchItemFailed {
				result.Items[i].Status = domain.BatchItemSkipped
				result.Items[i].Reason = "batch rejected"
			}
		}
	}
	return result
}

func indexByID(items []domain.Annotation) map[uuid.UUID]*domain.Annotation {
	out := make(map[uuid.UUID]*domain.Annotation, len(items))
	for i := range items {
		out[items[i].ID] = &items[i]
	}
	return out
}

// dispatchWarmup generates exercises for freshly published terms in the
// background. It runs detached from the request so the publish response
// never waits on generation; failures are only logged because the next
// learner request generates on demand.
func (s *Service) dispatchWarmup(ctx context.Context, terms []domain.Term) {
	bg := context.WithoutCancel(ctx)
	s.warmups.Add(1)

	go func() {
		defer s.warmups.Done()

		g, gctx := errgroup.WithContext(bg)
		g.SetLimit(s.params.WarmupConcurrency)

		for _, t := range terms {
			for _, kind := range s.params.WarmupKinds {
				in := exercise.ExerciseInput{TermID: t.ID, Kind: kind}
				g.Go(func() error {
					if _, err := s.warmer.GetExercise(gctx, in); err != nil {
						s.log.WarnContext(gctx, "exercise warm-up failed",
							slog.String("term_id", in.TermID.String()),
							slog.String("kind", in.Kind.String()),
							slog.String("error", err.Error()))
					}
					return nil
				})
			}
		}

		_ = g.Wait()
		s.log.DebugContext(bg, "exercise warm-up finished", slog.Int("terms", len(terms)))
	}()
}
