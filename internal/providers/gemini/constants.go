package gemini

import "time"

const (
	providerName       = "gemini"
	defaultBaseURL     = "https://generativelanguage.googleapis.com"
	defaultModel       = "gemini-2.0-flash"
	defaultHTTPTimeout = 10 * time.Second
	apiKeyHeader       = "x-goog-api-key"
	maxErrorBody       = 512
)
