package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-health-be/internal/pkg/logger"
)

func candidateBody(text string) string {
	body, _ := json.Marshal(generateResponse{
		Candidates: []*generateCandidate{{
			Content: &generateContent{Parts: []*generatePart{{Text: text}}},
		}},
	})
	return string(body)
}

func newTestClient(t *testing.T, keys []string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(keys, "test-model", logger.NewNopLogger())
	client.baseURL = srv.URL
	return client
}

func TestGenerateTextSuccess(t *testing.T) {
	var gotKey, gotPath string
	client := newTestClient(t, []string{"key-1"}, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		gotPath = r.URL.Path

		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(candidateBody("**Flu** is likely.")))
	})

	got := client.GenerateText(context.Background(), "diagnose this")
	if got != "Flu is likely." {
		t.Errorf("GenerateText() = %q, want markdown-cleaned text", got)
	}
	if gotKey != "key-1" {
		t.Errorf("api key header = %q, want %q", gotKey, "key-1")
	}
	if want := "/v1/models/test-model:generateContent"; gotPath != want {
		t.Errorf("path = %q, want %q", gotPath, want)
	}
}

func TestGenerateRotatesKeyOnServerError(t *testing.T) {
	var keys []string
	client := newTestClient(t, []string{"key-1", "key-2"}, func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("x-goog-api-key"))
		if len(keys) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(candidateBody("ok")))
	})

	if got := client.GenerateText(context.Background(), "p"); got != "ok" {
		t.Fatalf("GenerateText() = %q, want %q", got, "ok")
	}
	if len(keys) != 2 || keys[0] != "key-1" || keys[1] != "key-2" {
		t.Errorf("keys used = %v, want rotation to key-2 on retry", keys)
	}
}

func TestGenerateAbortsOnClientError(t *testing.T) {
	attempts := 0
	client := newTestClient(t, []string{"key-1", "key-2"}, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid argument"}`))
	})

	if got := client.GenerateText(context.Background(), "p"); got != "" {
		t.Errorf("GenerateText() = %q, want empty on permanent error", got)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1: non-429 4xx must not retry", attempts)
	}
}

func TestGenerateExhaustsAttempts(t *testing.T) {
	attempts := 0
	client := newTestClient(t, []string{"key-1"}, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	})

	if got := client.GenerateText(context.Background(), "p"); got != "" {
		t.Errorf("GenerateText() = %q, want empty after exhausting retries", got)
	}
	if attempts != maxAttempts {
		t.Errorf("attempts = %d, want %d", attempts, maxAttempts)
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	client := newTestClient(t, []string{"key-1"}, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := client.GenerateText(ctx, "p"); got != "" {
		t.Errorf("GenerateText() = %q, want empty with cancelled context", got)
	}
}

func TestGenerateNoKeys(t *testing.T) {
	client := NewClient(nil, "", logger.NewNopLogger())
	if got := client.GenerateText(context.Background(), "p"); got != "" {
		t.Errorf("GenerateText() = %q, want empty with no keys", got)
	}
}

func TestGenerateVisionSendsInlineData(t *testing.T) {
	client := newTestClient(t, []string{"key-1"}, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		parts := req.Contents[0].Parts
		if len(parts) != 2 || parts[1].InlineData == nil {
			t.Fatalf("want text part plus inline image part, got %d parts", len(parts))
		}
		if parts[1].InlineData.MimeType != "image/png" {
			t.Errorf("mime type = %q, want image/png", parts[1].InlineData.MimeType)
		}
		if parts[1].InlineData.Data == "" {
			t.Error("inline data is empty, want base64 payload")
		}
		w.Write([]byte(candidateBody("redness, swelling")))
	})

	got := client.GenerateVision(context.Background(), "describe", []byte{0x89, 0x50}, "image/png")
	if !strings.Contains(got, "redness") {
		t.Errorf("GenerateVision() = %q, want response text", got)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	client := newTestClient(t, []string{"key-1"}, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})

	if got := client.GenerateText(context.Background(), "p"); got != "" {
		t.Errorf("GenerateText() = %q, want empty for empty candidates", got)
	}
}
