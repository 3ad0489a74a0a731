package providers

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// RateLimitError is a text model turning a prompt away for quota or rate
// reasons. Headlines wait it out or fall back.
type RateLimitError struct {
	Provider string
	Model    string

	StatusCode int

	// Status is the provider's own code, such as RESOURCE_EXHAUSTED
	Status string

	// RetryAfter is zero when the provider gave no hint
	RetryAfter time.Duration

	Message string
}

func (e *RateLimitError) Error() string {
	var b strings.Builder
	if e.Provider != "" {
		b.WriteString(e.Provider)
	} else {
		b.WriteString("text provider")
	}
	if e.Model != "" {
		fmt.Fprintf(&b, " model %s", e.Model)
	}
	b.WriteString(" is rate limited")
	if e.Status != "" {
		fmt.Fprintf(&b, " (%s)", e.Status)
	} else if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.RetryAfter > 0 {
		fmt.Fprintf(&b, ", retry after %s", e.RetryAfter)
	}
	return b.String()
}

// Delay is how long to wait before the next attempt: the provider's hint
// when it asks for longer than backoff.
func (e *RateLimitError) Delay(backoff time.Duration) time.Duration {
	return max(backoff, e.RetryAfter)
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
