package domain

import "time"

// RunningScalar is a Welford accumulator for a single value.
type RunningScalar struct {
	Count int64
	Mean  float64
	M2    float64
}

// Variance is the population variance; 0 until two samples are seen.
func (r RunningScalar) Variance() float64 {
	if r.Count < 2 {
		return 0
	}
	return r.M2 / float64(r.Count)
}

// RunningVector is a component-wise Welford accumulator.
type RunningVector struct {
	Count int64
	Mean  []float64
	M2    []float64
}

// Variance is the component-wise population variance.
func (r RunningVector) Variance() []float64 {
	out := make([]float64, len(r.M2))
	if r.Count < 2 {
		return out
	}
	for i, m2 := range r.M2 {
		out[i] = m2 / float64(r.Count)
	}
	return out
}

// FeatureKey identifies a statistics row.
type FeatureKey struct {
	FeatureType string
	SpeciesID   string
}

// FeatureStatistic holds the online estimates for one (feature type, species).
// Only running aggregates are kept, never raw samples.
type FeatureStatistic struct {
	Key              FeatureKey
	Position         RunningVector
	Occurrence       RunningScalar
	Approvals        int64
	Rejections       int64
	ConfidenceAdjust float64
	UpdatedAt        time.Time
}

// Estimate is the read model served to prompt construction and validation.
// Consumers treat it as a bias hint, never as ground truth.
type Estimate struct {
	Key            FeatureKey
	Count          int64
	Mean           []float64
	Variance       []float64
	Confidence     float64
	OccurrenceRate float64
	Approvals      int64
	Rejections     int64
}

// FeedbackEvent is a single approve/reject/position_fix signal routed to the
// statistics engine.
type FeedbackEvent struct {
	Key  FeatureKey
	Type FeedbackType
	// Correction is the (dx, dy, dw, dh) vector, set for position_fix only.
	Correction []float64
}
