package season

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/fridaynight/internal/common/clock"
	"github.com/KirkDiggler/fridaynight/internal/common/uuid"
	"github.com/KirkDiggler/fridaynight/internal/engine"
	"github.com/KirkDiggler/fridaynight/internal/metrics"
	"github.com/KirkDiggler/fridaynight/internal/models"
	"github.com/KirkDiggler/fridaynight/internal/repositories/league"
	"github.com/KirkDiggler/fridaynight/internal/services/narrative"
)

const (
	defaultNarrativeTimeout = 8 * time.Second

	newsWelcome     = "Welcome to the season Coach! The community is excited for Friday night."
	newsNewSeason   = "Welcome to the new season, Coach! Your squad is ready to work."
	newsSeasonOver  = "Season is over. Congratulations on your effort!"
	newsWeekPattern = "Week %d complete. Your team record updated."
)

// Config holds the dependencies of the season service
type Config struct {
	Engine        *engine.Engine
	Repository    league.Repository
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Narrative writes headlines in the background; nil skips them
	Narrative narrative.Service

	// NarrativeTimeout bounds each headline
	NarrativeTimeout time.Duration

	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

type CreateLeagueInput struct {
	// LeagueID is usually the Discord channel ID; empty generates one
	LeagueID string
}

type CreateLeagueOutput struct {
	League *models.League
}

type GetLeagueInput struct {
	LeagueID string
}

type GetLeagueOutput struct {
	League *models.League
}

type AdvanceWeekInput struct {
	LeagueID string
}

type AdvanceWeekOutput struct {
	League *models.League

	// Week is the week that was just played
	Week int

	// Results are the games played this week
	Results []models.Game

	// UserGame is the user team's game, nil on a bye
	UserGame *models.Game

	// SeasonOver is true when this was the final week
	SeasonOver bool
}

type AdvanceSeasonInput struct {
	LeagueID string
}

type AdvanceSeasonOutput struct {
	League *models.League

	// Signed are the prospects who joined the user team
	Signed []models.Player

	// Graduated is how many seniors left the user team
	Graduated int
}

type SpendRecruitingPointsInput struct {
	LeagueID   string
	ProspectID string
	Points     int
}

type SpendRecruitingPointsOutput struct {
	Prospect        models.Prospect
	RemainingPoints int
}

type GetStandingsInput struct {
	LeagueID string
}

type GetStandingsOutput struct {
	Season models.SeasonState

	// Teams are ordered by wins, then fewest losses, then name
	Teams []models.Team
}

type AbandonLeagueInput struct {
	LeagueID string
}

type AbandonLeagueOutput struct {
}
