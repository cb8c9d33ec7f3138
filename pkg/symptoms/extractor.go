package symptoms

import (
	"context"
	"regexp"
	"strings"

	"ai-health-be/internal/constant"
	"ai-health-be/internal/pkg/logger"
)

// MaxSymptoms caps the extracted set; everything past the first 10 unique
// tokens is noise for the downstream predictors.
const MaxSymptoms = 10

// Sentinel is substituted by callers when extraction yields nothing at all.
// The pipeline never proceeds with zero symptoms.
const Sentinel = "general symptom"

// TextGenerator is the inference-provider operation the extractor needs.
// An empty return means the provider is unavailable and the stage is skipped.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) string
}

// VocabularySource exposes the mapping store's full symptom vocabulary.
type VocabularySource interface {
	SymptomVocabulary(ctx context.Context) []string
}

var (
	reSplitAnd    = regexp.MustCompile(`(?i),| and `)
	reEdgeNonAZ   = regexp.MustCompile(`^[^a-z]+|[^a-z]+$`)
	reFillerStart = regexp.MustCompile(`^(i am having|i have|having|pain in)\s+`)
	reStandalone  = regexp.MustCompile(`\b(my|the)\b`)
	reSpaces      = regexp.MustCompile(`\s+`)
)

// Extractor turns free text into a normalized, deduplicated symptom list.
// Stage 1 is lexical splitting, stage 2 asks the inference provider, stage 3
// scans the mapping vocabulary but only when the first two stages found
// nothing. Earlier-stage results always survive deduplication.
type Extractor struct {
	gen   TextGenerator
	vocab VocabularySource
	log   logger.ILogger
}

func NewExtractor(gen TextGenerator, vocab VocabularySource, log logger.ILogger) *Extractor {
	return &Extractor{gen: gen, vocab: vocab, log: log}
}

// Extract never fails; on total miss it returns an empty slice and the caller
// substitutes Sentinel.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var extracted []string
	found := make(map[string]bool)
	textLower := strings.ToLower(strings.TrimSpace(text))

	add := func(symptom string) {
		if symptom == "" || found[symptom] {
			return
		}
		extracted = append(extracted, symptom)
		found[symptom] = true
	}

	// Stage 1: lexical split on commas and "and".
	for _, part := range reSplitAnd.Split(text, -1) {
		cleaned := strings.ToLower(strings.TrimSpace(part))
		cleaned = strings.TrimSpace(reEdgeNonAZ.ReplaceAllString(cleaned, ""))
		if len(cleaned) > 2 {
			add(cleaned)
		}
	}

	// Stage 2: inference-provider extraction. Fragments echoing the prompt
	// vocabulary ("symptom", "condition") are discarded.
	if response := e.gen.GenerateText(ctx, constant.SymptomExtractionPrompt(text)); response != "" {
		for _, fragment := range strings.FieldsFunc(response, func(r rune) bool {
			return r == ',' || r == '\n' || r == ';'
		}) {
			symptom := strings.ToLower(strings.TrimSpace(fragment))
			if len(symptom) > 2 && !strings.Contains(symptom, "symptom") && !strings.Contains(symptom, "condition") {
				add(symptom)
			}
		}
	}

	// Stage 3: mapping-store vocabulary scan, only when nothing was found.
	if len(extracted) == 0 {
		e.log.Debug("symptoms", "lexical and provider stages empty, scanning mapping vocabulary", nil)
		textWords := strings.Fields(textLower)
		for _, vocabSymptom := range e.vocab.SymptomVocabulary(ctx) {
			vocabSymptom = strings.ToLower(strings.TrimSpace(vocabSymptom))
			if vocabSymptom == "" {
				continue
			}
			if strings.Contains(textLower, vocabSymptom) {
				add(vocabSymptom)
				continue
			}
			if wordOverlap(vocabSymptom, textWords) >= 0.5 {
				add(vocabSymptom)
			}
		}
	}

	normalized := Normalize(extracted)
	if len(normalized) > MaxSymptoms {
		normalized = normalized[:MaxSymptoms]
	}
	return normalized
}

// wordOverlap returns the fraction of the vocabulary symptom's words that
// fuzzy-match (substring containment either direction) a word of the input.
func wordOverlap(vocabSymptom string, textWords []string) float64 {
	vocabWords := strings.Fields(vocabSymptom)
	if len(vocabWords) == 0 {
		return 0
	}

	matches := 0
	for _, vw := range vocabWords {
		for _, tw := range textWords {
			if strings.Contains(tw, vw) || strings.Contains(vw, tw) {
				matches++
				break
			}
		}
	}
	return float64(matches) / float64(len(vocabWords))
}

// Normalize strips filler phrases and articles, collapses whitespace, and
// drops duplicates and empties while preserving order.
func Normalize(symptoms []string) []string {
	var out []string
	seen := make(map[string]bool)

	for _, s := range symptoms {
		s = strings.ToLower(s)
		s = reFillerStart.ReplaceAllString(s, "")
		s = reStandalone.ReplaceAllString(s, "")
		s = strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))

		if s == "" || seen[s] {
			continue
		}
		out = append(out, s)
		seen[s] = true
	}
	return out
}
