package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/fridaynight/internal/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func clientWith(rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    "https://example.test/",
		APIKey:     "secret",
		Model:      "flash",
		HTTPClient: &http.Client{Transport: rt},
	})
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestGenerateSendsPromptAndReadsText(t *testing.T) {
	var captured generateRequest
	client := clientWith(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/v1beta/models/flash:generateContent", req.URL.Path)
		assert.Equal(t, "secret", req.Header.Get(apiKeyHeader))
		assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(req.Body).Decode(&captured))

		return response(http.StatusOK, `{
			"candidates": [
				{"content": {"parts": [{"text": "Westside "}, {"text": "stuns Central! "}]}, "finishReason": "STOP"},
				{"content": {"parts": [{"text": "ignored"}]}}
			]
		}`), nil
	})

	text, err := client.Generate(context.Background(), "Write a headline")
	require.NoError(t, err)

	assert.Equal(t, "Westside stuns Central!", text)
	require.Len(t, captured.Contents, 1)
	assert.Equal(t, "user", captured.Contents[0].Role)
	assert.Equal(t, "Write a headline", captured.Contents[0].Parts[0].Text)
}

func TestGenerateNoCandidatesReturnsEmpty(t *testing.T) {
	client := clientWith(func(req *http.Request) (*http.Response, error) {
		return response(http.StatusOK, `{"candidates": []}`), nil
	})

	text, err := client.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenerateRateLimited(t *testing.T) {
	client := clientWith(func(req *http.Request) (*http.Response, error) {
		resp := response(http.StatusTooManyRequests, "quota exceeded")
		resp.Header.Set("Retry-After", "7")
		return resp, nil
	})

	_, err := client.Generate(context.Background(), "prompt")

	rlErr, ok := providers.AsRateLimitError(err)
	require.True(t, ok)
	assert.Equal(t, providerName, rlErr.Provider)
	assert.Equal(t, http.StatusTooManyRequests, rlErr.StatusCode)
	assert.Equal(t, 7*time.Second, rlErr.RetryAfter)
	assert.Equal(t, "quota exceeded", rlErr.Message)
	assert.Empty(t, rlErr.Status)
}

func TestGenerateRateLimitedEnvelope(t *testing.T) {
	client := clientWith(func(req *http.Request) (*http.Response, error) {
		return response(http.StatusTooManyRequests, `{"error": {
			"code": 429,
			"message": "Resource has been exhausted (e.g. check quota).",
			"status": "RESOURCE_EXHAUSTED"
		}}`), nil
	})

	_, err := client.Generate(context.Background(), "prompt")

	rlErr, ok := providers.AsRateLimitError(err)
	require.True(t, ok)
	assert.Equal(t, "RESOURCE_EXHAUSTED", rlErr.Status)
	assert.Equal(t, "Resource has been exhausted (e.g. check quota).", rlErr.Message)
	assert.Equal(t, "flash", rlErr.Model)
	assert.Zero(t, rlErr.RetryAfter)
}

func TestGenerateUnexpectedStatus(t *testing.T) {
	client := clientWith(func(req *http.Request) (*http.Response, error) {
		return response(http.StatusInternalServerError, "oops"), nil
	})

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
	_, ok := providers.AsRateLimitError(err)
	assert.False(t, ok)
}

func TestGenerateBadJSON(t *testing.T) {
	client := clientWith(func(req *http.Request) (*http.Response, error) {
		return response(http.StatusOK, "{"), nil
	})

	_, err := client.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestGenerateTransportError(t *testing.T) {
	client := clientWith(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial failed")
	})

	_, err := client.Generate(context.Background(), "prompt")
	assert.ErrorContains(t, err, "dial failed")
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient(Config{})
	assert.Equal(t, defaultBaseURL, client.baseURL)
	assert.Equal(t, defaultModel, client.model)
	assert.NotNil(t, client.httpClient)
	assert.Equal(t, "gemini", client.Name())
}

func TestParseRetryAfter(t *testing.T) {
	assert.Equal(t, 3*time.Second, parseRetryAfter("3"))
	assert.Zero(t, parseRetryAfter(""))
	assert.Zero(t, parseRetryAfter("Wed, 21 Oct 2015 07:28:00 GMT"))
	assert.Zero(t, parseRetryAfter("-4"))
}
