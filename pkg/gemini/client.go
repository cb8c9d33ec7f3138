package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-health-be/internal/pkg/logger"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"

	requestTimeout = 30 * time.Second
	maxAttempts    = 3
)

type generatePart struct {
	Text       string          `json:"text,omitempty"`
	InlineData *generateInline `json:"inline_data,omitempty"`
}

type generateInline struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContent struct {
	Parts []*generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []*generateContent `json:"contents"`
}

type generateCandidate struct {
	Content *generateContent `json:"content"`
}

type generateResponse struct {
	Candidates []*generateCandidate `json:"candidates"`
}

// Client calls the Gemini generateContent API through a rotating key pool.
// Both operations degrade to an empty string when every attempt fails; callers
// treat "no text" as a normal outcome and fall back, never as an error.
type Client struct {
	pool    *KeyPool
	http    *http.Client
	baseURL string
	model   string
	log     logger.ILogger
}

func NewClient(keys []string, model string, log logger.ILogger) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		pool:    NewKeyPool(keys),
		http:    &http.Client{Timeout: requestTimeout},
		baseURL: defaultBaseURL,
		model:   model,
		log:     log,
	}
}

// GenerateText sends a text-only prompt and returns the cleaned response
// text, or "" when all retries are exhausted.
func (c *Client) GenerateText(ctx context.Context, prompt string) string {
	parts := []*generatePart{{Text: prompt}}

	text, err := c.generate(ctx, parts)
	if err != nil {
		c.log.Warn("gemini", "text generation failed", map[string]interface{}{"error": err.Error()})
		return ""
	}
	return CleanMarkdown(text)
}

// GenerateVision sends a prompt plus inline image bytes and returns the
// cleaned response text, or "" when all retries are exhausted.
func (c *Client) GenerateVision(ctx context.Context, prompt string, image []byte, mimeType string) string {
	parts := []*generatePart{
		{Text: prompt},
		{InlineData: &generateInline{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}

	text, err := c.generate(ctx, parts)
	if err != nil {
		c.log.Warn("gemini", "vision generation failed", map[string]interface{}{"error": err.Error()})
		return ""
	}
	return CleanMarkdown(text)
}

// generate runs one logical call: up to maxAttempts attempts, each against a
// freshly rotated key. A non-rate-limit 4xx aborts immediately; 429, 5xx and
// network failures back off exponentially before the next attempt.
func (c *Client) generate(ctx context.Context, parts []*generatePart) (string, error) {
	if c.pool.Size() == 0 {
		return "", fmt.Errorf("no api keys configured")
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []*generateContent{{Parts: parts}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1/models/%s:generateContent", c.baseURL, c.model)

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cred := c.pool.next(time.Now())

		text, status, err := c.doRequest(ctx, url, cred, payload)
		if err == nil {
			cred.recordSuccess(time.Now())
			return text, nil
		}

		lastErr = err
		cred.recordFailure(status, time.Now())

		// Permanent request error: retrying with another key cannot fix it.
		if status >= 400 && status < 500 && status != 429 {
			return "", err
		}

		if attempt < maxAttempts-1 {
			backoff := time.Duration(1000*(1<<attempt)) * time.Millisecond
			if backoff > 10*time.Second {
				backoff = 10 * time.Second
			}
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return "", lastErr
}

func (c *Client) doRequest(ctx context.Context, url string, cred *credential, payload []byte) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("x-goog-api-key", cred.key)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", res.StatusCode, err
	}

	if res.StatusCode != http.StatusOK {
		return "", res.StatusCode, fmt.Errorf("status error, got status %d with response body %s", res.StatusCode, string(body))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", res.StatusCode, err
	}
	if len(parsed.Candidates) == 0 || parsed.Candidates[0].Content == nil || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", res.StatusCode, fmt.Errorf("empty candidate response")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, res.StatusCode, nil
}
