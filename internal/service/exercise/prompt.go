package exercise

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/adaptive-engine/internal/domain"
	"github.com/heartmarshall/adaptive-engine/internal/provider"
	"github.com/heartmarshall/adaptive-engine/internal/service/gencache"
)

const systemPrompt = `You write short vocabulary exercises for a language learning app about animal anatomy.
Answer with a single JSON object and nothing else.`

func exercisePrompt(term *domain.Term, kind domain.ExerciseKind, est *domain.Estimate, minConfidence float64) provider.Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Create one %s exercise for the term %q (translation %q).\n", kind, term.Labels.Source, term.Labels.Target)
	fmt.Fprintf(&b, "The term names the %q feature of species %q.\n", term.FeatureType, term.SpeciesID)

	switch kind {
	case domain.ExerciseMultipleChoice:
		b.WriteString(`Provide 3 to 5 "options" including the correct "answer" verbatim. Distractors must be other body parts.` + "\n")
	case domain.ExerciseFillBlank:
		fmt.Fprintf(&b, "Write a sentence in the \"prompt\" with the term replaced by %s and put the term in \"answer\".\n", gencache.BlankMarker)
	case domain.ExerciseTermMatching:
		b.WriteString(`Provide 3 to 6 "pairs" of {"source","target"} labels; one pair must be the term itself.` + "\n")
	}

	if est != nil && est.OccurrenceRate > 0 && est.Confidence >= minConfidence {
		fmt.Fprintf(&b, "Reviewers confirm this feature is visible in about %.0f%% of images; mention it only if typical.\n", est.OccurrenceRate*100)
	}

	fmt.Fprintf(&b, `Schema: {"kind":"%s","term_id":"%s","prompt":string,"options":[string],"answer":string,"pairs":[{"source":string,"target":string}],"explanation":string}`,
		kind, term.ID)

	return provider.Prompt{System: systemPrompt, User: b.String()}
}

func proposalPrompt(in ProposeInput, hints map[string][]float64) provider.Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, "Locate anatomical features on image %q of species %q.\n", in.ImageID, in.SpeciesID)
	if in.ImageURL != "" {
		fmt.Fprintf(&b, "Image URL: %s\n", in.ImageURL)
	}
	fmt.Fprintf(&b, "Features to locate: %s.\n", strings.Join(in.FeatureTypes, ", "))
	b.WriteString("Boxes use normalized coordinates: x, y, width, height all within [0,1].\n")

	for _, ft := range in.FeatureTypes {
		h, ok := hints[ft]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "Reviewers usually correct %q boxes by dx=%.3f dy=%.3f dw=%.3f dh=%.3f; account for that.\n",
			ft, h[0], h[1], h[2], h[3])
	}

	fmt.Fprintf(&b, `Schema: {"image_id":"%s","species_id":"%s","proposals":[{"feature_type":string,"box":{"x":n,"y":n,"width":n,"height":n},"labels":{"source":string,"target":string},"confidence":n}]}`,
		in.ImageID, in.SpeciesID)

	return provider.Prompt{System: systemPrompt, User: b.String(), MaxTokens: 4096}
}
