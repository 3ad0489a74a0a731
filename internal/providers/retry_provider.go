package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/fridaynight/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingGenerator wraps a Generator with retry/backoff behavior.
type retryingGenerator struct {
	inner       Generator
	logger      *slog.Logger
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingGenerator wraps the given generator with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingGenerator(inner Generator, logger *slog.Logger, name string, maxAttempts int, backoff time.Duration) Generator {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingGenerator{
		inner:       inner,
		logger:      logger,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		text, err := r.inner.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		logGenerateError(ctx, r.logger, r.name, "generate retry", err,
			logging.FieldAttempt, attempt, "max_attempts", r.maxAttempts)

		delay := r.backoffFn(attempt)
		if rlErr, ok := AsRateLimitError(err); ok {
			delay = rlErr.Delay(delay)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	logGenerateError(ctx, r.logger, r.name, "generate failed", lastErr, "attempts", r.maxAttempts)
	return "", lastErr
}
