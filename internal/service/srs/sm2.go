package srs

import (
	"math"
	"time"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// PassingQuality is the lowest quality that counts as successful recall.
const PassingQuality = 3

// ReviewState is the subset of progress that SM-2 reads and writes.
type ReviewState struct {
	Repetitions  int
	EaseFactor   float64
	IntervalDays int
	NextReviewAt time.Time
}

// CalculateNextReview is a pure function. No DB, no context, no logger.
//
// Failed recall (quality < 3) resets repetitions and the interval and lowers
// ease by 0.2. Successful recall grows the interval 1 -> 6 -> interval*ease
// (using the ease before this review) and adjusts ease by the SM-2 formula.
// Ease never drops below cfg.MinEaseFactor.
func CalculateNextReview(quality int, state ReviewState, now time.Time, cfg domain.SRSConfig) ReviewState {
	minEase := cfg.MinEaseFactor
	if minEase < domain.MinEaseFactor {
		minEase = domain.MinEaseFactor
	}
	ease := state.EaseFactor
	if ease <= 0 {
		ease = domain.DefaultEaseFactor
	}

	var next ReviewState
	if quality < PassingQuality {
		next.Repetitions = 0
		next.IntervalDays = 1
		next.EaseFactor = math.Max(minEase, ease-0.2)
	} else {
		next.Repetitions = state.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(math.Round(float64(max(state.IntervalDays, 1)) * ease))
		}
		q := float64(5 - quality)
		next.EaseFactor = math.Max(minEase, ease+(0.1-q*(0.08+q*0.02)))
	}

	if cfg.MaxIntervalDays > 0 && next.IntervalDays > cfg.MaxIntervalDays {
		next.IntervalDays = cfg.MaxIntervalDays
	}
	next.IntervalDays = max(next.IntervalDays, 1)
	next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
	return next
}

// UpdateMastery adds quality*5 on success and subtracts 10 on failure,
// keeping the result within [0, 100].
func UpdateMastery(mastery, quality int) int {
	if quality >= PassingQuality {
		return min(domain.MaxMasteryLevel, mastery+quality*5)
	}
	return max(0, mastery-10)
}

// UpdateStreaks returns the new (current, longest) streak pair.
func UpdateStreaks(current, longest, quality int) (int, int) {
	if quality >= PassingQuality {
		current++
		return current, max(longest, current)
	}
	return 0, longest
}

// ApplyReview returns p with one review folded in.
func ApplyReview(p domain.UserTermProgress, quality int, correct bool, now time.Time, cfg domain.SRSConfig) domain.UserTermProgress {
	next := CalculateNextReview(quality, ReviewState{
		Repetitions:  p.Repetitions,
		EaseFactor:   p.EaseFactor,
		IntervalDays: p.IntervalDays,
		NextReviewAt: p.NextReviewAt,
	}, now, cfg)

	p.Repetitions = next.Repetitions
	p.EaseFactor = next.EaseFactor
	p.IntervalDays = next.IntervalDays
	p.NextReviewAt = next.NextReviewAt
	p.MasteryLevel = UpdateMastery(p.MasteryLevel, quality)
	p.CurrentStreak, p.LongestStreak = UpdateStreaks(p.CurrentStreak, p.LongestStreak, quality)
	if correct {
		p.TimesCorrect++
	} else {
		p.TimesIncorrect++
	}
	reviewed := now
	p.LastReviewedAt = &reviewed
	p.UpdatedAt = now
	return p
}
