package providers

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/fridaynight/internal/providers Generator

import "context"

// Generator turns a prompt into generated text.
// An empty string with a nil error means the model had nothing to say.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
