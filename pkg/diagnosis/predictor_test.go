package diagnosis

import (
	"context"
	"strings"
	"testing"

	"ai-health-be/internal/pkg/logger"
)

// scriptedGenerator answers prompts by keyword so a single fake can serve the
// prediction, arbitration and generic-condition calls of one Predict run.
type scriptedGenerator struct {
	predictAnswer   string
	arbitrateAnswer string
	genericAnswer   string
	arbitrations    int
}

func (s *scriptedGenerator) GenerateText(_ context.Context, prompt string) string {
	switch {
	case strings.Contains(prompt, "more medically probable"):
		s.arbitrations++
		return s.arbitrateAnswer
	case strings.Contains(prompt, "most likely medical condition"):
		return s.genericAnswer
	default:
		return s.predictAnswer
	}
}

type staticMappings struct {
	rows []Mapping
}

func (s *staticMappings) Mappings(_ context.Context) []Mapping {
	return s.rows
}

func newTestPredictor(gen *scriptedGenerator, rows []Mapping) *Predictor {
	return NewPredictor(gen, &staticMappings{rows: rows}, logger.NewNopLogger())
}

func TestPredictAgreement(t *testing.T) {
	gen := &scriptedGenerator{predictAnswer: "Dengue"}
	p := newTestPredictor(gen, nil)

	got := p.Predict(context.Background(), []string{"fever", "rash"}, "dengue")

	if got.Name != "dengue" || got.Source != SourceLocalMLConfirmed {
		t.Errorf("Predict() = %+v, want ML label confirmed", got)
	}
	if gen.arbitrations != 0 {
		t.Errorf("arbitrations = %d, want 0 when labels agree", gen.arbitrations)
	}
}

func TestPredictDisagreementArbitrates(t *testing.T) {
	gen := &scriptedGenerator{predictAnswer: "Malaria", arbitrateAnswer: "Dengue"}
	p := newTestPredictor(gen, nil)

	got := p.Predict(context.Background(), []string{"fever", "chills"}, "Typhoid")

	if got.Name != "Dengue" || got.Source != SourceArbitrated {
		t.Errorf("Predict() = %+v, want arbitrated Dengue", got)
	}
	if gen.arbitrations != 1 {
		t.Errorf("arbitrations = %d, want exactly 1 on disagreement", gen.arbitrations)
	}
}

func TestPredictArbitrationUnavailable(t *testing.T) {
	gen := &scriptedGenerator{predictAnswer: "Malaria"}
	p := newTestPredictor(gen, nil)

	got := p.Predict(context.Background(), []string{"fever"}, "Typhoid")

	if got.Name != "Malaria" || got.Source != SourceInference {
		t.Errorf("Predict() = %+v, want provider label when arbitration is empty", got)
	}
}

func TestPredictOnlyMLLabel(t *testing.T) {
	p := newTestPredictor(&scriptedGenerator{}, nil)

	got := p.Predict(context.Background(), []string{"fever"}, "Flu")

	if got.Name != "Flu" || got.Source != SourceLocalML {
		t.Errorf("Predict() = %+v, want the ML label alone", got)
	}
}

func TestPredictOnlyProviderLabel(t *testing.T) {
	gen := &scriptedGenerator{predictAnswer: "Migraine"}
	p := newTestPredictor(gen, nil)

	got := p.Predict(context.Background(), []string{"headache"}, "")

	if got.Name != "Migraine" || got.Source != SourceInference {
		t.Errorf("Predict() = %+v, want the provider label alone", got)
	}
}

func TestPredictMappingStoreFallback(t *testing.T) {
	rows := []Mapping{
		{Disease: "Common Cold", Symptoms: []string{"cough", "runny nose", "sneezing"}},
		{Disease: "Gastritis", Symptoms: []string{"stomach pain", "nausea"}},
	}
	p := newTestPredictor(&scriptedGenerator{}, rows)

	got := p.Predict(context.Background(), []string{"stomach pain", "nausea"}, "")

	if got.Name != "Gastritis" || got.Source != SourceMappingStore {
		t.Errorf("Predict() = %+v, want the mapping-store disease", got)
	}
}

func TestPredictMappingScoringPrefersFullerMatch(t *testing.T) {
	// Both rows match twice, but the smaller row's match ratio is higher.
	rows := []Mapping{
		{Disease: "Broad", Symptoms: []string{"fever", "cough", "rash", "nausea"}},
		{Disease: "Narrow", Symptoms: []string{"fever", "cough"}},
	}
	p := newTestPredictor(&scriptedGenerator{}, rows)

	got := p.Predict(context.Background(), []string{"fever", "cough"}, "")

	if got.Name != "Narrow" {
		t.Errorf("Predict() = %+v, want the fuller-ratio mapping to win", got)
	}
}

func TestPredictMappingTieKeepsFirstRow(t *testing.T) {
	rows := []Mapping{
		{Disease: "First", Symptoms: []string{"fever", "cough"}},
		{Disease: "Second", Symptoms: []string{"fever", "cough"}},
	}
	p := newTestPredictor(&scriptedGenerator{}, rows)

	got := p.Predict(context.Background(), []string{"fever", "cough"}, "")

	if got.Name != "First" {
		t.Errorf("Predict() = %+v, want the first-listed row on a tie", got)
	}
}

func TestPredictGenericQueryFallback(t *testing.T) {
	gen := &scriptedGenerator{genericAnswer: "Viral Infection"}
	p := newTestPredictor(gen, nil)

	got := p.Predict(context.Background(), []string{"zzz"}, "")

	if got.Name != "Viral Infection" || got.Source != SourceInference {
		t.Errorf("Predict() = %+v, want the generic-query answer", got)
	}
}

func TestPredictUnknownCondition(t *testing.T) {
	p := newTestPredictor(&scriptedGenerator{}, nil)

	got := p.Predict(context.Background(), []string{"zzz"}, "")

	if got.Name != UnknownCondition || got.Source != SourceFallback {
		t.Errorf("Predict() = %+v, want %q fallback", got, UnknownCondition)
	}
}
