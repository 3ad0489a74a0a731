package providers

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/fridaynight/internal/logging"
)

// logGenerateError records a failed generation against the provider. Rate
// limited calls also carry the model and the upstream status.
func logGenerateError(ctx context.Context, fallback *slog.Logger, provider, msg string, err error, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args, logging.FieldProvider, provider, logging.FieldError, err)
	if rlErr, ok := AsRateLimitError(err); ok {
		args = append(args, "model", rlErr.Model, "rate_limit_status", rlErr.Status)
	}
	logger.WarnContext(ctx, msg, args...)
}
