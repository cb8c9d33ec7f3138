package diagnosis

import (
	"context"
	"strings"

	"ai-health-be/internal/constant"
	"ai-health-be/internal/pkg/logger"
)

// Source tags where a candidate disease came from. A new Candidate is
// produced at every reconciliation step; candidates are never mutated.
type Source string

const (
	SourceLocalML          Source = "local_ml"
	SourceLocalMLConfirmed Source = "local_ml-confirmed"
	SourceInference        Source = "inference_provider"
	SourceMappingStore     Source = "mapping_store"
	SourceArbitrated       Source = "arbitrated"
	SourceFallback         Source = "fallback"
)

// UnknownCondition is the terminal fallback when every source came up empty.
const UnknownCondition = "Unknown condition"

type Candidate struct {
	Name   string
	Source Source
}

// Mapping is one symptom-list-to-disease row of the static mapping store.
type Mapping struct {
	Disease  string
	Symptoms []string
}

type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) string
}

type MappingSource interface {
	Mappings(ctx context.Context) []Mapping
}

// Predictor reconciles the local ML classifier's label with the inference
// provider's own prediction, arbitrating disagreements through the provider
// and degrading through the mapping store down to UnknownCondition.
type Predictor struct {
	gen      TextGenerator
	mappings MappingSource
	log      logger.ILogger
}

func NewPredictor(gen TextGenerator, mappings MappingSource, log logger.ILogger) *Predictor {
	return &Predictor{gen: gen, mappings: mappings, log: log}
}

// Predict returns the reconciled disease candidate for the symptoms.
// mlLabel may be empty when the local classifier had nothing to say.
func (p *Predictor) Predict(ctx context.Context, symptoms []string, mlLabel string) Candidate {
	providerLabel := p.gen.GenerateText(ctx, constant.PredictDiseasePrompt(symptoms))

	switch {
	case mlLabel != "" && providerLabel != "":
		if strings.EqualFold(mlLabel, providerLabel) {
			return Candidate{Name: mlLabel, Source: SourceLocalMLConfirmed}
		}
		arbitrated := p.gen.GenerateText(ctx, constant.ArbitrationPrompt(symptoms, mlLabel, providerLabel))
		if arbitrated == "" {
			// Arbitration unavailable: trust the provider's own label.
			return Candidate{Name: providerLabel, Source: SourceInference}
		}
		return Candidate{Name: arbitrated, Source: SourceArbitrated}

	case mlLabel != "":
		return Candidate{Name: mlLabel, Source: SourceLocalML}

	case providerLabel != "":
		return Candidate{Name: providerLabel, Source: SourceInference}
	}

	if name := p.predictFromMappings(ctx, symptoms); name != "" {
		return Candidate{Name: name, Source: SourceMappingStore}
	}

	if name := p.gen.GenerateText(ctx, constant.GenericConditionPrompt(symptoms)); name != "" {
		return Candidate{Name: name, Source: SourceInference}
	}

	p.log.Warn("diagnosis", "all prediction sources empty", map[string]interface{}{"symptoms": symptoms})
	return Candidate{Name: UnknownCondition, Source: SourceFallback}
}

// predictFromMappings scores every mapping row by how many input symptoms
// match its symptom list and returns the best-scoring disease. Ties keep the
// first-listed row: rows arrive ordered by primary key, which makes the
// tie-break deterministic.
func (p *Predictor) predictFromMappings(ctx context.Context, symptoms []string) string {
	best := ""
	bestScore := 0.0

	for _, mapping := range p.mappings.Mappings(ctx) {
		if mapping.Disease == "" || len(mapping.Symptoms) == 0 {
			continue
		}

		matches := 0
		for _, input := range symptoms {
			if matchesAny(input, mapping.Symptoms) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		denom := len(symptoms)
		if len(mapping.Symptoms) > denom {
			denom = len(mapping.Symptoms)
		}
		score := float64(matches) * (1 + float64(matches)/float64(denom))

		if score > bestScore {
			bestScore = score
			best = mapping.Disease
		}
	}
	return best
}

// matchesAny accepts an exact match, substring containment either direction,
// or at least half of the mapping symptom's words overlapping the input.
func matchesAny(input string, mappingSymptoms []string) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return false
	}
	inputWords := strings.Fields(input)

	for _, ms := range mappingSymptoms {
		ms = strings.ToLower(strings.TrimSpace(ms))
		if ms == "" {
			continue
		}
		if ms == input || strings.Contains(ms, input) || strings.Contains(input, ms) {
			return true
		}

		msWords := strings.Fields(ms)
		if len(msWords) == 0 {
			continue
		}
		matches := 0
		for _, mw := range msWords {
			for _, iw := range inputWords {
				if strings.Contains(iw, mw) || strings.Contains(mw, iw) {
					matches++
					break
				}
			}
		}
		if float64(matches)/float64(len(msWords)) >= 0.5 {
			return true
		}
	}
	return false
}
