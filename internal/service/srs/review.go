package srs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// RecordReview applies one review atomically. The progress row is created
// with defaults on first use and locked for the read-modify-write, so
// concurrent reviews of the same (user, term) pair are serialized.
func (s *Service) RecordReview(ctx context.Context, input ReviewInput) (*domain.UserTermProgress, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.UserTermProgress

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		term, err := s.terms.GetByID(txCtx, input.TermID)
		if err != nil {
			return fmt.Errorf("get term: %w", err)
		}
		if !term.IsActive() {
			return fmt.Errorf("term %s retired: %w", term.ID, domain.ErrNotFound)
		}

		now := s.now()
		initial := domain.NewUserTermProgress(input.UserID, input.TermID, now)
		initial.EaseFactor = s.defaultEase()
		if err := s.progress.EnsureExists(txCtx, initial); err != nil {
			return fmt.Errorf("ensure progress: %w", err)
		}

		current, err := s.progress.GetForUpdate(txCtx, input.UserID, input.TermID)
		if err != nil {
			return fmt.Errorf("lock progress: %w", err)
		}

		next := ApplyReview(*current, input.Quality, input.Correct, now, s.cfg)

		updated, err = s.progress.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review recorded",
		slog.String("user_id", input.UserID.String()),
		slog.String("term_id", input.TermID.String()),
		slog.Int("quality", input.Quality),
		slog.Int("interval_days", updated.IntervalDays),
		slog.Int("mastery", updated.MasteryLevel),
	)

	return updated, nil
}

// GetProgress returns the stored progress for one (user, term) pair.
func (s *Service) GetProgress(ctx context.Context, userID, termID uuid.UUID) (*domain.UserTermProgress, error) {
	if userID == uuid.Nil || termID == uuid.Nil {
		return nil, domain.NewValidationError("term_id", "required")
	}
	p, err := s.progress.Get(ctx, userID, termID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return p, nil
}

func (s *Service) defaultEase() float64 {
	if s.cfg.DefaultEaseFactor >= domain.MinEaseFactor {
		return s.cfg.DefaultEaseFactor
	}
	return domain.DefaultEaseFactor
}
