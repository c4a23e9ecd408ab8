package srs

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// GetDueTerms returns the user's due terms, most overdue first, then lowest
// mastery, then term creation order. A row scheduled in the future is never
// returned even if the store hands one back.
func (s *Service) GetDueTerms(ctx context.Context, input GetDueInput) ([]domain.DueTerm, error) {
	if err := input.Validate(s.cfg.MaxDueLimit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultDueLimit
	}
	now := s.now()

	rows, err := s.progress.GetDue(ctx, input.UserID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("get due terms: %w", err)
	}

	due := make([]domain.DueTerm, 0, len(rows))
	for _, row := range rows {
		if !row.Progress.IsDue(now) {
			s.log.WarnContext(ctx, "store returned a term that is not due",
				slog.String("user_id", input.UserID.String()),
				slog.String("term_id", row.Term.ID.String()),
			)
			continue
		}
		if !row.Term.IsActive() {
			continue
		}
		row.DaysOverdue = row.Progress.DaysOverdue(now)
		due = append(due, row)
	}

	sortDue(due)
	if len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func sortDue(due []domain.DueTerm) {
	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if a.DaysOverdue != b.DaysOverdue {
			return a.DaysOverdue > b.DaysOverdue
		}
		if a.Progress.MasteryLevel != b.Progress.MasteryLevel {
			return a.Progress.MasteryLevel < b.Progress.MasteryLevel
		}
		return a.Term.Seq < b.Term.Seq
	})
}
