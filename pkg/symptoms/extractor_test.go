package symptoms

import (
	"context"
	"strings"
	"testing"

	"ai-health-be/internal/pkg/logger"
)

type fakeGenerator struct {
	response string
	calls    int
}

func (f *fakeGenerator) GenerateText(_ context.Context, _ string) string {
	f.calls++
	return f.response
}

type fakeVocabulary struct {
	vocab []string
	calls int
}

func (f *fakeVocabulary) SymptomVocabulary(_ context.Context) []string {
	f.calls++
	return f.vocab
}

func newTestExtractor(gen *fakeGenerator, vocab *fakeVocabulary) *Extractor {
	return NewExtractor(gen, vocab, logger.NewNopLogger())
}

func TestExtractLexicalSplit(t *testing.T) {
	ex := newTestExtractor(&fakeGenerator{}, &fakeVocabulary{})

	got := ex.Extract(context.Background(), "I have fever, headache and sore throat")

	want := []string{"fever", "headache", "sore throat"}
	if len(got) != len(want) {
		t.Fatalf("Extract() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Extract() = %v, want %v", got, want)
		}
	}
}

func TestExtractMergesProviderResults(t *testing.T) {
	gen := &fakeGenerator{response: "fever, chills, body ache"}
	ex := newTestExtractor(gen, &fakeVocabulary{})

	got := ex.Extract(context.Background(), "fever and chills")

	if gen.calls != 1 {
		t.Errorf("provider calls = %d, want 1", gen.calls)
	}
	joined := strings.Join(got, "|")
	for _, want := range []string{"fever", "chills", "body ache"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Extract() = %v, missing %q", got, want)
		}
	}
	// Lexical results come first and duplicates from the provider collapse.
	if got[0] != "fever" || got[1] != "chills" {
		t.Errorf("Extract() = %v, want lexical results to lead", got)
	}
}

func TestExtractFiltersPromptEchoes(t *testing.T) {
	gen := &fakeGenerator{response: "no symptoms found, unknown condition, xy"}
	ex := newTestExtractor(gen, &fakeVocabulary{})

	got := ex.Extract(context.Background(), "ow")
	if len(got) != 0 {
		t.Errorf("Extract() = %v, want prompt-echo fragments filtered out", got)
	}
}

func TestExtractVocabularyFallback(t *testing.T) {
	vocab := &fakeVocabulary{vocab: []string{"stomach pain", "nausea", "rash"}}
	ex := newTestExtractor(&fakeGenerator{}, vocab)

	// Lexical tokens are all too short and the provider returns nothing, so
	// only the fuzzy vocabulary scan can produce a match.
	got := ex.Extract(context.Background(), "na, ea")

	if vocab.calls != 1 {
		t.Fatalf("vocabulary calls = %d, want 1", vocab.calls)
	}
	found := false
	for _, s := range got {
		if s == "nausea" {
			found = true
		}
	}
	if !found {
		t.Errorf("Extract() = %v, want vocabulary match %q", got, "nausea")
	}
}

func TestExtractVocabularySkippedWhenEarlierStagesHit(t *testing.T) {
	vocab := &fakeVocabulary{vocab: []string{"fever"}}
	ex := newTestExtractor(&fakeGenerator{}, vocab)

	ex.Extract(context.Background(), "fever, headache")
	if vocab.calls != 0 {
		t.Errorf("vocabulary calls = %d, want 0 when earlier stages found symptoms", vocab.calls)
	}
}

func TestExtractCapAndShape(t *testing.T) {
	gen := &fakeGenerator{response: "aaa, bbb, ccc, ddd, eee, fff, ggg, hhh, iii, jjj, kkk, lll"}
	ex := newTestExtractor(gen, &fakeVocabulary{})

	got := ex.Extract(context.Background(), "Fever, Headache, Nausea")

	if len(got) > MaxSymptoms {
		t.Fatalf("len = %d, want at most %d", len(got), MaxSymptoms)
	}
	seen := make(map[string]bool)
	for _, s := range got {
		if s != strings.ToLower(s) {
			t.Errorf("symptom %q is not lowercase", s)
		}
		if seen[s] {
			t.Errorf("duplicate symptom %q", s)
		}
		seen[s] = true
	}
}

func TestExtractEmptyInput(t *testing.T) {
	gen := &fakeGenerator{}
	ex := newTestExtractor(gen, &fakeVocabulary{})

	if got := ex.Extract(context.Background(), "   "); len(got) != 0 {
		t.Errorf("Extract() = %v, want empty for blank input", got)
	}
	if gen.calls != 0 {
		t.Errorf("provider calls = %d, want 0 for blank input", gen.calls)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "filler prefixes",
			in:   []string{"i am having fever", "i have headache", "having chills", "pain in chest"},
			want: []string{"fever", "headache", "chills", "chest"},
		},
		{
			name: "standalone articles",
			in:   []string{"pain in my back", "the rash"},
			want: []string{"back", "rash"},
		},
		{
			name: "dedupe preserves first occurrence",
			in:   []string{"fever", "i have fever", "FEVER", "cough"},
			want: []string{"fever", "cough"},
		},
		{
			name: "drops empties",
			in:   []string{"", "the", "fever"},
			want: []string{"fever"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("Normalize() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Normalize() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}
