package srs

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

//go:generate moq -out progress_repo_mock_test.go -pkg srs . progressRepo
//go:generate moq -out term_repo_mock_test.go -pkg srs . termRepo
//go:generate moq -out tx_manager_mock_test.go -pkg srs . txManager

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type progressRepo interface {
	Get(ctx context.Context, userID, termID uuid.UUID) (*domain.UserTermProgress, error)
	// EnsureExists inserts p unless a row for (user, term) is already present.
	EnsureExists(ctx context.Context, p domain.UserTermProgress) error
	GetForUpdate(ctx context.Context, userID, termID uuid.UUID) (*domain.UserTermProgress, error)
	Update(ctx context.Context, p *domain.UserTermProgress) (*domain.UserTermProgress, error)
	GetDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]domain.DueTerm, error)
	CreateBatch(ctx context.Context, rows []domain.UserTermProgress) error
}

type termRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Term, error)
	ListUndiscovered(ctx context.Context, userID uuid.UUID, moduleID *string, limit int) ([]domain.Term, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service schedules term reviews with SM-2.
type Service struct {
	progress progressRepo
	terms    termRepo
	tx       txManager
	log      *slog.Logger
	cfg      domain.SRSConfig
	now      func() time.Time
}

// NewService creates a new scheduler service.
func NewService(
	log *slog.Logger,
	progress progressRepo,
	terms termRepo,
	tx txManager,
	cfg domain.SRSConfig,
) *Service {
	if cfg.DefaultDueLimit <= 0 {
		cfg.DefaultDueLimit = 20
	}
	if cfg.MaxDueLimit <= 0 {
		cfg.MaxDueLimit = 200
	}
	return &Service{
		progress: progress,
		terms:    terms,
		tx:       tx,
		log:      log.With("service", "srs"),
		cfg:      cfg,
		now:      time.Now,
	}
}
