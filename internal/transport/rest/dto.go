package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

type termResponse struct {
	ID           uuid.UUID         `json:"id"`
	AnnotationID uuid.UUID         `json:"annotation_id"`
	SpeciesID    string            `json:"species_id"`
	FeatureType  string            `json:"feature_type"`
	Labels       domain.TermLabels `json:"labels"`
	ModuleID     *string           `json:"module_id,omitempty"`
}

type progressResponse struct {
	TermID         uuid.UUID  `json:"term_id"`
	Repetitions    int        `json:"repetitions"`
	EaseFactor     float64    `json:"ease_factor"`
	IntervalDays   int        `json:"interval_days"`
	NextReviewAt   time.Time  `json:"next_review_at"`
	MasteryLevel   int        `json:"mastery_level"`
	CurrentStreak  int        `json:"current_streak"`
	LongestStreak  int        `json:"longest_streak"`
	TimesCorrect   int        `json:"times_correct"`
	TimesIncorrect int        `json:"times_incorrect"`
	LastReviewedAt *time.Time `json:"last_reviewed_at,omitempty"`
}

type dueTermResponse struct {
	Term        termResponse     `json:"term"`
	Progress    progressResponse `json:"progress"`
	DaysOverdue int              `json:"days_overdue"`
}

type annotationResponse struct {
	ID          uuid.UUID          `json:"id"`
	ImageID     string             `json:"image_id"`
	SpeciesID   string             `json:"species_id"`
	FeatureType string             `json:"feature_type"`
	Box         domain.BoundingBox `json:"box"`
	Labels      domain.TermLabels  `json:"labels"`
	Status      string             `json:"status"`
	Source      string             `json:"source"`
	ModuleID    *string            `json:"module_id,omitempty"`
	ReviewedAt  *time.Time         `json:"reviewed_at,omitempty"`
	PublishedAt *time.Time         `json:"published_at,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type batchItemResponse struct {
	AnnotationID uuid.UUID  `json:"annotation_id"`
	Status       string     `json:"status"`
	Reason       string     `json:"reason,omitempty"`
	TermID       *uuid.UUID `json:"term_id,omitempty"`
}

type batchResponse struct {
	Committed       bool                `json:"committed"`
	Published       int                 `json:"published"`
	Failed          int                 `json:"failed"`
	WarmupScheduled bool                `json:"warmup_scheduled"`
	Items           []batchItemResponse `json:"items"`
}

type estimateResponse struct {
	FeatureType    string    `json:"feature_type"`
	SpeciesID      string    `json:"species_id"`
	Count          int64     `json:"count"`
	Mean           []float64 `json:"mean"`
	Variance       []float64 `json:"variance"`
	Confidence     float64   `json:"confidence"`
	OccurrenceRate float64   `json:"occurrence_rate"`
	Approvals      int64     `json:"approvals"`
	Rejections     int64     `json:"rejections"`
}

func toTermResponse(t domain.Term) termResponse {
	return termResponse{
		ID:           t.ID,
		AnnotationID: t.AnnotationID,
		SpeciesID:    t.SpeciesID,
		FeatureType:  t.FeatureType,
		Labels:       t.Labels,
		ModuleID:     t.ModuleID,
	}
}

func toProgressResponse(p domain.UserTermProgress) progressResponse {
	return progressResponse{
		TermID:         p.TermID,
		Repetitions:    p.Repetitions,
		EaseFactor:     p.EaseFactor,
		IntervalDays:   p.IntervalDays,
		NextReviewAt:   p.NextReviewAt,
		MasteryLevel:   p.MasteryLevel,
		CurrentStreak:  p.CurrentStreak,
		LongestStreak:  p.LongestStreak,
		TimesCorrect:   p.TimesCorrect,
		TimesIncorrect: p.TimesIncorrect,
		LastReviewedAt: p.LastReviewedAt,
	}
}

func toDueTermsResponse(items []domain.DueTerm) []dueTermResponse {
	out := make([]dueTermResponse, 0, len(items))
	for _, d := range items {
		out = append(out, dueTermResponse{
			Term:        toTermResponse(d.Term),
			Progress:    toProgressResponse(d.Progress),
			DaysOverdue: d.DaysOverdue,
		})
	}
	return out
}

func toAnnotationResponse(a domain.Annotation) annotationResponse {
	return annotationResponse{
		ID:          a.ID,
		ImageID:     a.ImageID,
		SpeciesID:   a.SpeciesID,
		FeatureType: a.FeatureType,
		Box:         a.Box,
		Labels:      a.Labels,
		Status:      a.Status.String(),
		Source:      a.Source.String(),
		ModuleID:    a.ModuleID,
		ReviewedAt:  a.ReviewedAt,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func toAnnotationsResponse(items []domain.Annotation) []annotationResponse {
	out := make([]annotationResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAnnotationResponse(a))
	}
	return out
}

func toBatchResponse(r *domain.BatchResult) batchResponse {
	resp := batchResponse{
		Committed:       r.Committed(),
		Published:       r.Published,
		Failed:          r.Failed,
		WarmupScheduled: r.WarmupScheduled,
		Items:           make([]batchItemResponse, 0, len(r.Items)),
	}
	for _, it := range r.Items {
		resp.Items = append(resp.Items, batchItemResponse{
			AnnotationID: it.AnnotationID,
			Status:       string(it.Status),
			Reason:       it.Reason,
			TermID:       it.TermID,
		})
	}
	return resp
}

func toEstimateResponse(e domain.Estimate) estimateResponse {
	return estimateResponse{
		FeatureType:    e.Key.FeatureType,
		SpeciesID:      e.Key.SpeciesID,
		Count:          e.Count,
		Mean:           e.Mean,
		Variance:       e.Variance,
		Confidence:     e.Confidence,
		OccurrenceRate: e.OccurrenceRate,
		Approvals:      e.Approvals,
		Rejections:     e.Rejections,
	}
}
