package featurestats

import (
	"fmt"
	"math"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// Params tunes confidence derivation and feedback nudges.
type Params struct {
	// SaturationCount is the observation count at which base confidence reaches 1.
	SaturationCount int
	ApproveNudge    float64
	RejectNudge     float64
	MinAdjust       float64
	MaxAdjust       float64
}

// DefaultParams returns the production defaults.
func DefaultParams() Params {
	return Params{
		SaturationCount: 10,
		ApproveNudge:    0.01,
		RejectNudge:     -0.05,
		MinAdjust:       -0.3,
		MaxAdjust:       0.05,
	}
}

// ObserveScalar folds x into r using Welford's update.
func ObserveScalar(r domain.RunningScalar, x float64) domain.RunningScalar {
	r.Count++
	delta := x - r.Mean
	r.Mean += delta / float64(r.Count)
	delta2 := x - r.Mean
	r.M2 += delta * delta2
	return r
}

// ObserveVector folds sample into r component-wise. The input is not mutated.
func ObserveVector(r domain.RunningVector, sample []float64) (domain.RunningVector, error) {
	dims := len(sample)
	if dims == 0 {
		return r, domain.NewValidationError("sample", "must not be empty")
	}
	if r.Count > 0 && len(r.Mean) != dims {
		return r, domain.NewValidationError("sample", fmt.Sprintf("expected %d components, got %d", len(r.Mean), dims))
	}
	for _, v := range sample {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return r, domain.NewValidationError("sample", "must be finite")
		}
	}

	out := domain.RunningVector{
		Count: r.Count + 1,
		Mean:  make([]float64, dims),
		M2:    make([]float64, dims),
	}
	copy(out.Mean, r.Mean)
	copy(out.M2, r.M2)

	n := float64(out.Count)
	for i, x := range sample {
		delta := x - out.Mean[i]
		out.Mean[i] += delta / n
		delta2 := x - out.Mean[i]
		out.M2[i] += delta * delta2
	}
	return out, nil
}

// Confidence derives confidence from the observation count plus the feedback
// adjustment. Below SaturationCount observations the result stays under 1
// as long as MaxAdjust is smaller than one step of the base ramp.
func Confidence(count int64, adjust float64, p Params) float64 {
	sat := p.SaturationCount
	if sat <= 0 {
		sat = 10
	}
	base := math.Min(1, float64(count)/float64(sat))
	c := base + clamp(adjust, p.MinAdjust, p.MaxAdjust)
	if count < int64(sat) {
		// keep the ramp honest regardless of nudges
		c = math.Min(c, math.Nextafter(1, 0))
	}
	return clamp(c, 0, 1)
}

// ApplyFeedback returns stat updated with one feedback event.
func ApplyFeedback(stat domain.FeatureStatistic, ev domain.FeedbackEvent, p Params) (domain.FeatureStatistic, error) {
	switch ev.Type {
	case domain.FeedbackApprove:
		stat.Approvals++
		stat.Occurrence = ObserveScalar(stat.Occurrence, 1)
		stat.ConfidenceAdjust = clamp(stat.ConfidenceAdjust+p.ApproveNudge, p.MinAdjust, p.MaxAdjust)
	case domain.FeedbackReject:
		stat.Rejections++
		stat.Occurrence = ObserveScalar(stat.Occurrence, 0)
		stat.ConfidenceAdjust = clamp(stat.ConfidenceAdjust+p.RejectNudge, p.MinAdjust, p.MaxAdjust)
	case domain.FeedbackPositionFix:
		if len(ev.Correction) != domain.BoxDims {
			return stat, domain.NewValidationError("correction", fmt.Sprintf("must have %d components", domain.BoxDims))
		}
		pos, err := ObserveVector(stat.Position, ev.Correction)
		if err != nil {
			return stat, err
		}
		stat.Position = pos
	default:
		return stat, domain.NewValidationError("type", "must be approve, reject, or position_fix")
	}
	return stat, nil
}

// EstimateFrom derives the read model from a stored statistic.
func EstimateFrom(stat domain.FeatureStatistic, p Params) domain.Estimate {
	mean := make([]float64, domain.BoxDims)
	copy(mean, stat.Position.Mean)
	variance := make([]float64, domain.BoxDims)
	copy(variance, stat.Position.Variance())

	return domain.Estimate{
		Key:            stat.Key,
		Count:          stat.Position.Count,
		Mean:           mean,
		Variance:       variance,
		Confidence:     Confidence(stat.Position.Count, stat.ConfidenceAdjust, p),
		OccurrenceRate: stat.Occurrence.Mean,
		Approvals:      stat.Approvals,
		Rejections:     stat.Rejections,
	}
}

// EmptyEstimate is returned when a key has never been observed.
func EmptyEstimate(key domain.FeatureKey) domain.Estimate {
	return domain.Estimate{
		Key:      key,
		Mean:     make([]float64, domain.BoxDims),
		Variance: make([]float64, domain.BoxDims),
	}
}

// BiasHint returns the mean correction when the estimate is trustworthy
// enough to steer generation.
func BiasHint(e domain.Estimate, minConfidence float64) ([]float64, bool) {
	if e.Count == 0 || e.Confidence < minConfidence || len(e.Mean) != domain.BoxDims {
		return nil, false
	}
	out := make([]float64, domain.BoxDims)
	copy(out, e.Mean)
	return out, true
}

// Tolerance is the largest positional standard deviation, used to widen
// proposal validation thresholds for noisy features.
func Tolerance(e domain.Estimate) float64 {
	var maxStd float64
	for _, v := range e.Variance {
		if v > 0 {
			maxStd = math.Max(maxStd, math.Sqrt(v))
		}
	}
	return maxStd
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
