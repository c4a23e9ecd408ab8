package srs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// DiscoverTerms starts scheduling published terms the user has not seen yet.
// Publishing never creates progress rows; this is where they first appear.
// New rows are due immediately and are returned in term creation order.
func (s *Service) DiscoverTerms(ctx context.Context, input DiscoverInput) ([]domain.DueTerm, error) {
	if err := input.Validate(s.cfg.MaxDueLimit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultDueLimit
	}

	var discovered []domain.DueTerm

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		terms, err := s.terms.ListUndiscovered(txCtx, input.UserID, input.ModuleID, limit)
		if err != nil {
			return fmt.Errorf("list undiscovered terms: %w", err)
		}
		if len(terms) == 0 {
			return nil
		}

		now := s.now()
		rows := make([]domain.UserTermProgress, 0, len(terms))
		discovered = make([]domain.DueTerm, 0, len(terms))
		for _, term := range terms {
			p := domain.NewUserTermProgress(input.UserID, term.ID, now)
			p.EaseFactor = s.defaultEase()
			rows = append(rows, p)
			discovered = append(discovered, domain.DueTerm{Term: term, Progress: p})
		}

		if err := s.progress.CreateBatch(txCtx, rows); err != nil {
			return fmt.Errorf("create progress rows: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(discovered) > 0 {
		s.log.InfoContext(ctx, "terms discovered",
			slog.String("user_id", input.UserID.String()),
			slog.Int("count", len(discovered)),
		)
	}
	return discovered, nil
}
