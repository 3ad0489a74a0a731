package narrative

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/fridaynight/internal/services/narrative Service

import "context"

// Service writes the one-line headlines shown in the league news feed.
// It always returns a headline; when the model fails a fixed line is used.
type Service interface {
	// GetGameHeadline writes a headline about a finished game
	GetGameHeadline(ctx context.Context, input *GetGameHeadlineInput) (*GetGameHeadlineOutput, error)

	// GetSeasonTeaser writes a teaser for the user team's upcoming season
	GetSeasonTeaser(ctx context.Context, input *GetSeasonTeaserInput) (*GetSeasonTeaserOutput, error)
}
