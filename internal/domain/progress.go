package domain

import (
	"time"

	"github.com/google/uuid"
)

// Defaults for a freshly discovered (user, term) pair.
const (
	DefaultEaseFactor   = 2.5
	MinEaseFactor       = 1.3
	DefaultIntervalDays = 1
	MaxMasteryLevel     = 100
)

// UserTermProgress is the SM-2 review state of one term for one user.
// Rows are created on first discovery, mutated only by reviews and never deleted.
type UserTermProgress struct {
	UserID         uuid.UUID
	TermID         uuid.UUID
	Repetitions    int
	EaseFactor     float64
	IntervalDays   int
	NextReviewAt   time.Time
	MasteryLevel   int
	CurrentStreak  int
	LongestStreak  int
	TimesCorrect   int
	TimesIncorrect int
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUserTermProgress returns the initial state for a (user, term) pair.
// The term is due immediately.
func NewUserTermProgress(userID, termID uuid.UUID, now time.Time) UserTermProgress {
	return UserTermProgress{
		UserID:       userID,
		TermID:       termID,
		Repetitions:  0,
		EaseFactor:   DefaultEaseFactor,
		IntervalDays: DefaultIntervalDays,
		NextReviewAt: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsDue returns true if the term needs review at the given time.
func (p *UserTermProgress) IsDue(now time.Time) bool {
	return !p.NextReviewAt.After(now)
}

// DaysOverdue returns the number of whole days the review is late.
// Zero for reviews that are due today or not yet due.
func (p *UserTermProgress) DaysOverdue(now time.Time) int {
	if p.NextReviewAt.After(now) {
		return 0
	}
	return int(now.Sub(p.NextReviewAt) / (24 * time.Hour))
}

// DueTerm pairs a due progress row with its term.
type DueTerm struct {
	Term        Term
	Progress    UserTermProgress
	DaysOverdue int
}

// SRSConfig holds SM-2 parameters (pure domain type).
type SRSConfig struct {
	DefaultEaseFactor float64
	MinEaseFactor     float64
	MaxIntervalDays   int
	DefaultDueLimit   int
	MaxDueLimit       int
}
