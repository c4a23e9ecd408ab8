package annotation

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/exercise"
)

//go:generate moq -out annotation_repo_mock_test.go -pkg annotation . annotationRepo
//go:generate moq -out term_repo_mock_test.go -pkg annotation . termRepo
//go:generate moq -out stats_recorder_mock_test.go -pkg annotation . statsRecorder
//go:generate moq -out warmer_mock_test.go -pkg annotation . warmer
//go:generate moq -out proposer_mock_test.go -pkg annotation . proposer
//go:generate moq -out tx_manager_mock_test.go -pkg annotation . txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type annotationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Annotation, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Annotation, error)
	// LockMany returns the rows that exist among ids, locked FOR UPDATE.
	LockMany(ctx context.Context, ids []uuid.UUID) ([]domain.Annotation, error)
	Update(ctx context.Context, a *domain.Annotation) (*domain.Annotation, error)
	SetPublished(ctx context.Context, ids []uuid.UUID, moduleID *string, at time.Time) error
	SetUnpublished(ctx context.Context, ids []uuid.UUID, at time.Time) error
	CreateBatch(ctx context.Context, items []domain.Annotation) ([]domain.Annotation, error)
	List(ctx context.Context, filter domain.AnnotationFilter) ([]domain.Annotation, int, error)
}

type termRepo interface {
	// UpsertForAnnotations inserts one term per annotation, reviving a
	// retired term when the annotation is published again.
	UpsertForAnnotations(ctx context.Context, terms []domain.Term) ([]domain.Term, error)
	RetireByAnnotations(ctx context.Context, annotationIDs []uuid.UUID, at time.Time) (int64, error)
}

type statsRecorder interface {
	RecordFeedback(ctx context.Context, ev domain.FeedbackEvent) (*domain.Estimate, error)
}

type warmer interface {
	GetExercise(ctx context.Context, in exercise.ExerciseInput) (*exercise.Exercise, error)
}

type proposer interface {
	ProposeAnnotations(ctx context.Context, in exercise.ProposeInput) (*exercise.Proposals, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Params configures publishing behavior.
type Params struct {
	// AllowUnpublish enables published -> approved. Off by default, which
	// keeps published content immutable.
	AllowUnpublish bool
	// WarmupKinds are the exercise kinds generated after a publish.
	WarmupKinds []domain.ExerciseKind
	// WarmupConcurrency bounds concurrent warm-up generations.
	WarmupConcurrency int
	DefaultListLimit  int
	MaxListLimit      int
}

// DefaultParams returns the production defaults.
func DefaultParams() Params {
	return Params{
		WarmupKinds:       []domain.ExerciseKind{domain.ExerciseMultipleChoice, domain.ExerciseFillBlank},
		WarmupConcurrency: 4,
		DefaultListLimit:  50,
		MaxListLimit:      200,
	}
}

// Service drives annotations through review and publishing.
type Service struct {
	annotations annotationRepo
	terms       termRepo
	stats       statsRecorder
	warmer      warmer
	proposer    proposer
	tx          txManager
	log         *slog.Logger
	params      Params
	now         func() time.Time

	warmups sync.WaitGroup
}

// NewService creates an annotation service. warmer and proposer may be nil
// when no generator is configured.
func NewService(
	log *slog.Logger,
	annotations annotationRepo,
	terms termRepo,
	stats statsRecorder,
	warmer warmer,
	proposer proposer,
	tx txManager,
	params Params,
) *Service {
	if params.WarmupConcurrency <= 0 {
		params.WarmupConcurrency = 1
	}
	if params.DefaultListLimit <= 0 {
		params.DefaultListLimit = 50
	}
	if params.MaxListLimit <= 0 {
		params.MaxListLimit = 200
	}
	return &Service{
		annotations: annotations,
		terms:       terms,
		stats:       stats,
		warmer:      warmer,
		proposer:    proposer,
		tx:          tx,
		log:         log.With("service", "annotation"),
		params:      params,
		now:         time.Now,
	}
}

// Wait blocks until dispatched warm-ups finish or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.warmups.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// recordFeedback forwards a signal to the statistics engine. Statistics
// only bias generation, so a failure here is logged and not surfaced.
func (s *Service) recordFeedback(ctx context.Context, a *domain.Annotation, typ domain.FeedbackType, correction []float64) {
	if s.stats == nil {
		return
	}
	_, err := s.stats.RecordFeedback(ctx, domain.FeedbackEvent{
		Key:        domain.FeatureKey{FeatureType: a.FeatureType, SpeciesID: a.SpeciesID},
		Type:       typ,
		Correction: correction,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "record feature feedback",
			slog.String("annotation_id", a.ID.String()),
			slog.String("type", typ.String()),
			slog.String("error", err.Error()))
	}
}
