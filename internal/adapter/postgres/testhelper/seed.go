package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAnnotation inserts an annotation with the given status. Species and
// feature type are unique per call so tests never share statistics rows.
func SeedAnnotation(t *testing.T, pool *pgxpool.Pool, status domain.AnnotationStatus) domain.Annotation {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	a := domain.Annotation{
		ID:          uuid.New(),
		ImageID:     "img-" + suffix,
		SpeciesID:   "species_" + suffix,
		FeatureType: "beak",
		Box:         domain.BoundingBox{X: 0.1, Y: 0.2, Width: 0.3, Height: 0.4},
		Labels:      domain.TermLabels{Source: "pico " + suffix, Target: "beak " + suffix},
		Status:      status,
		Source:      domain.AnnotationSourceManual,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO annotations (id, image_id, species_id, feature_type, box_x, box_y, box_width, box_height,
		                          label_source, label_target, status, source, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		a.ID, a.ImageID, a.SpeciesID, a.FeatureType, a.Box.X, a.Box.Y, a.Box.Width, a.Box.Height,
		a.Labels.Source, a.Labels.Target, string(a.Status), string(a.Source), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAnnotation insert: %v", err)
	}

	return a
}

// SeedTerm inserts a published annotation and its active term.
func SeedTerm(t *testing.T, pool *pgxpool.Pool, moduleID *string) domain.Term {
	t.Helper()
	ctx := context.Background()

	a := SeedAnnotation(t, pool, domain.AnnotationStatusPublished)
	term := domain.Term{
		ID:           uuid.New(),
		AnnotationID: a.ID,
		SpeciesID:    a.SpeciesID,
		FeatureType:  a.FeatureType,
		Labels:       a.Labels,
		ModuleID:     moduleID,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO terms (id, annotation_id, species_id, feature_type, label_source, label_target, module_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING seq`,
		term.ID, term.AnnotationID, term.SpeciesID, term.FeatureType,
		term.Labels.Source, term.Labels.Target, term.ModuleID, term.CreatedAt,
	).Scan(&term.Seq)
	if err != nil {
		t.Fatalf("testhelper: SeedTerm insert: %v", err)
	}

	return term
}

// SeedProgress inserts a progress row for (userID, term) due at nextReviewAt.
func SeedProgress(t *testing.T, pool *pgxpool.Pool, userID, termID uuid.UUID, nextReviewAt time.Time, mastery int) domain.UserTermProgress {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.NewUserTermProgress(userID, termID, now)
	p.NextReviewAt = nextReviewAt.UTC().Truncate(time.Microsecond)
	p.MasteryLevel = mastery

	_, err := pool.Exec(ctx,
		`INSERT INTO user_term_progress (user_id, term_id, repetitions, ease_factor, interval_days, next_review_at,
		                                 mastery_level, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.UserID, p.TermID, p.Repetitions, p.EaseFactor, p.IntervalDays, p.NextReviewAt,
		p.MasteryLevel, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProgress insert: %v", err)
	}

	return p
}
