package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/KirkDiggler/fridaynight/internal/providers"
)

// Config controls how the client reaches the Gemini API.
type Config struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// Client asks a Gemini model for short pieces of text.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient httpDoer
}

// NewClient constructs a Gemini client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		model:      resolveModel(cfg.Model),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Name identifies the provider in logs.
func (c *Client) Name() string {
	return providerName
}

// Generate sends prompt as a single user turn and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	req, err := c.buildRequest(ctx, prompt)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		status, message := readError(resp.Body)
		return "", &providers.RateLimitError{
			Provider:   providerName,
			Model:      c.model,
			StatusCode: resp.StatusCode,
			Status:     status,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Message:    message,
		}
	}
	if resp.StatusCode != http.StatusOK {
		_, message := readError(resp.Body)
		return "", fmt.Errorf("gemini: unexpected status %d: %s", resp.StatusCode, message)
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("gemini: failed to decode response: %w", err)
	}
	return firstText(payload), nil
}

func (c *Client) buildRequest(ctx context.Context, prompt string) (*http.Request, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/v1beta/models/" + url.PathEscape(c.model) + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}
	return req, nil
}

// readError pulls status and message out of a Google error envelope,
// falling back to the raw body when it is not one.
func readError(r io.Reader) (string, string) {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))

	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Status, envelope.Error.Message
	}
	return "", strings.TrimSpace(string(body))
}

func firstText(payload generateResponse) string {
	if len(payload.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range payload.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String())
}
