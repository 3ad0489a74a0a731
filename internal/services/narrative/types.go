package narrative

import (
	"log/slog"

	"github.com/KirkDiggler/fridaynight/internal/metrics"
	"github.com/KirkDiggler/fridaynight/internal/providers"
)

// Config holds the dependencies of the narrative service
type Config struct {
	// Generator writes the text; nil means every headline is a fallback
	Generator providers.Generator

	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

type GetGameHeadlineInput struct {
	// Result is a plain description of the game, such as "Westside 28 - 14 Central"
	Result string
}

type GetGameHeadlineOutput struct {
	Headline string

	// Generated is false when a fallback line was used
	Generated bool
}

type GetSeasonTeaserInput struct {
	TeamName string
	Mascot   string
}

type GetSeasonTeaserOutput struct {
	Headline  string
	Generated bool
}
