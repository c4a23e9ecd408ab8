package annotation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
)

// IngestProposals generates bounding-box proposals for an image and stores
// them as pending annotations awaiting review.
func (s *Service) IngestProposals(ctx context.Context, input IngestInput) ([]domain.Annotation, error) {
	if s.proposer == nil {
		return nil, fmt.Errorf("annotation proposals: no generator configured: %w", domain.ErrContentUnavailable)
	}
	if input.ModuleID != nil && *input.ModuleID == "" {
		return nil, domain.NewValidationError("module_id", "must not be empty")
	}

	proposals, err := s.proposer.ProposeAnnotations(ctx, input.ProposeInput)
	if err != nil {
		return nil, err
	}
	if len(proposals.Items) == 0 {
		return []domain.Annotation{}, nil
	}

	now := s.now()
	items := make([]domain.Annotation, 0, len(proposals.Items))
	for _, p := range proposals.Items {
		items = append(items, domain.Annotation{
			ID:          uuid.New(),
			ImageID:     proposals.ImageID,
			SpeciesID:   proposals.SpeciesID,
			FeatureType: p.FeatureType,
			Box:         p.Box,
			Labels: domain.TermLabels{
				Source: domain.NormalizeText(p.Labels.Source),
				Target: domain.NormalizeText(p.Labels.Target),
			},
			Status:    domain.AnnotationStatusPending,
			Source:    domain.AnnotationSourceAI,
			ModuleID:  input.ModuleID,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	created, err := s.annotations.CreateBatch(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("create annotations: %w", err)
	}

	s.log.InfoContext(ctx, "annotation proposals ingested",
		slog.String("image_id", proposals.ImageID),
		slog.String("species_id", proposals.SpeciesID),
		slog.Int("count", len(created)),
		slog.Bool("cached", proposals.Cached))

	return created, nil
}

// List returns annotations matching the filter plus the total count.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Annotation, int, error) {
	if err := input.Validate(s.params.MaxListLimit); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.params.DefaultListLimit
	}

	items, total, err := s.annotations.List(ctx, domain.AnnotationFilter{
		Status:    input.Status,
		SpeciesID: input.SpeciesID,
		ModuleID:  input.ModuleID,
		Limit:     limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("list annotations: %w", err)
	}
	return items, total, nil
}
