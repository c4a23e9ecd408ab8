package exercise

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/service/featurestats"
	"github.com/heartmarshall/adaptive-engine/internal/service/gencache"
)

// Proposals is a validated set of bounding-box suggestions for one image.
type Proposals struct {
	ImageID   string
	SpeciesID string
	Items     []gencache.AnnotationProposal
	Key       string
	Cached    bool
}

// ProposeAnnotations asks the generator for bounding boxes of the requested
// features. Feature estimates steer the prompt, relax the minimum box size
// for noisy features, and shift the returned boxes by the learned mean
// correction. The cached payload stays unadjusted so later feedback applies
// to it on the next read.
func (s *Service) ProposeAnnotations(ctx context.Context, in ProposeInput) (*Proposals, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	hints := make(map[string][]float64, len(in.FeatureTypes))
	weights := make(map[string]float64, len(in.FeatureTypes))
	var tolerance float64
	for _, ft := range in.FeatureTypes {
		est := s.estimate(ctx, ft, in.SpeciesID)
		if est == nil {
			continue
		}
		if h, ok := featurestats.BiasHint(*est, s.params.MinBiasConfidence); ok {
			hints[ft] = h
			weights[ft] = est.Confidence
			tolerance = math.Max(tolerance, featurestats.Tolerance(*est))
		}
	}
	minSide := math.Max(0, s.params.MinProposalSide-tolerance)

	key := gencache.Key(gencache.KeySpec{
		Kind: domain.ContentKindAnnotationProposal,
		Descriptor: map[string]any{
			"image_id":   in.ImageID,
			"species_id": in.SpeciesID,
		},
		Params:  map[string]any{"feature_types": gencache.StringSet(in.FeatureTypes)},
		Model:   s.gen.Model(),
		Version: s.params.PromptVersion,
	})

	prompt := proposalPrompt(in, hints)
	res, err := s.cache.GetOrGenerate(ctx, key,
		func(ctx context.Context) (json.RawMessage, error) {
			return s.gen.Generate(ctx, prompt)
		},
		gencache.ProposalValidator(minSide),
		gencache.WithKind(domain.ContentKindAnnotationProposal),
		gencache.WithModelTag(s.gen.Model()),
	)
	if err != nil {
		return nil, err
	}

	// A cached payload was validated against the threshold in force when it
	// was generated, so only decode here.
	set, err := gencache.DecodeProposals(res.Payload, 0)
	if err != nil {
		return nil, fmt.Errorf("decode cached proposals %s: %w", key, err)
	}

	requested := make(map[string]struct{}, len(in.FeatureTypes))
	for _, ft := range in.FeatureTypes {
		requested[ft] = struct{}{}
	}

	out := &Proposals{
		ImageID:   in.ImageID,
		SpeciesID: in.SpeciesID,
		Items:     make([]gencache.AnnotationProposal, 0, len(set.Proposals)),
		Key:       key,
		Cached:    res.Hit,
	}
	for _, p := range set.Proposals {
		p.FeatureType = domain.NormalizeKey(p.FeatureType)
		if _, ok := requested[p.FeatureType]; !ok {
			s.log.DebugContext(ctx, "dropping unrequested proposal",
				slog.String("image_id", in.ImageID),
				slog.String("feature_type", p.FeatureType))
			continue
		}
		if h, ok := hints[p.FeatureType]; ok {
			p.Box = p.Box.Shift(h, weights[p.FeatureType])
		}
		out.Items = append(out.Items, p)
	}

	s.log.DebugContext(ctx, "annotation proposals served",
		slog.String("image_id", in.ImageID),
		slog.Int("count", len(out.Items)),
		slog.Bool("cached", res.Hit))

	return out, nil
}
