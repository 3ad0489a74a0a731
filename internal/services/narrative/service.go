package narrative

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/fridaynight/internal/logging"
	"github.com/KirkDiggler/fridaynight/internal/metrics"
	"github.com/KirkDiggler/fridaynight/internal/providers"
)

const (
	// FallbackFailed is used when the generator returns an error
	FallbackFailed = "The stadium is packed and the band is playing."

	// FallbackEmpty is used when the generator returns no text
	FallbackEmpty = "The lights are shining bright on the gridiron."

	kindGame   = "game"
	kindTeaser = "teaser"
)

type service struct {
	generator providers.Generator
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// New creates a new narrative service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return &service{
		generator: cfg.Generator,
		logger:    cfg.Logger,
		metrics:   cfg.Metrics,
	}, nil
}

func (s *service) GetGameHeadline(ctx context.Context, input *GetGameHeadlineInput) (*GetGameHeadlineOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	prompt := fmt.Sprintf("Write a one-sentence high school sports headline about this result: %s. "+
		"Be dramatic and focus on the school atmosphere.", input.Result)
	headline, generated := s.write(ctx, kindGame, prompt)

	return &GetGameHeadlineOutput{
		Headline:  headline,
		Generated: generated,
	}, nil
}

func (s *service) GetSeasonTeaser(ctx context.Context, input *GetSeasonTeaserInput) (*GetSeasonTeaserOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	team := strings.TrimSpace(input.TeamName + " " + input.Mascot)
	prompt := fmt.Sprintf("Write a one-sentence teaser for the upcoming high school football season for %s.", team)
	headline, generated := s.write(ctx, kindTeaser, prompt)

	return &GetSeasonTeaserOutput{
		Headline:  headline,
		Generated: generated,
	}, nil
}

// write asks the generator for text and falls back to a fixed line on any failure.
func (s *service) write(ctx context.Context, kind, prompt string) (string, bool) {
	if s.generator == nil {
		s.metrics.RecordNarrative(kind, false)
		return FallbackFailed, false
	}

	logger := logging.FromContext(ctx, s.logger)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logging.Warn(logger, "headline generation failed", "kind", kind, logging.FieldError, err)
		s.metrics.RecordNarrative(kind, false)
		return FallbackFailed, false
	}

	text = strings.TrimSpace(text)
	if text == "" {
		s.metrics.RecordNarrative(kind, false)
		return FallbackEmpty, false
	}

	s.metrics.RecordNarrative(kind, true)
	return text, true
}
