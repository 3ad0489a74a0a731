package season

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fridaynight/internal/services/season Service

import "context"

// Service runs leagues through their seasons. Every transition reads the
// whole league, builds a replacement and stores it.
type Service interface {
	// CreateLeague generates a new world and starts week one
	CreateLeague(ctx context.Context, input *CreateLeagueInput) (*CreateLeagueOutput, error)

	// GetLeague returns the current state of a league
	GetLeague(ctx context.Context, input *GetLeagueInput) (*GetLeagueOutput, error)

	// AdvanceWeek simulates the current week's games
	AdvanceWeek(ctx context.Context, input *AdvanceWeekInput) (*AdvanceWeekOutput, error)

	// AdvanceSeason runs the offseason and starts the next regular season
	AdvanceSeason(ctx context.Context, input *AdvanceSeasonInput) (*AdvanceSeasonOutput, error)

	// SpendRecruitingPoints raises a prospect's interest in the user team
	SpendRecruitingPoints(ctx context.Context, input *SpendRecruitingPointsInput) (*SpendRecruitingPointsOutput, error)

	// GetStandings returns teams ordered by record
	GetStandings(ctx context.Context, input *GetStandingsInput) (*GetStandingsOutput, error)

	// AbandonLeague deletes a league
	AbandonLeague(ctx context.Context, input *AbandonLeagueInput) (*AbandonLeagueOutput, error)

	// Close waits for headlines still being written
	Close()
}
