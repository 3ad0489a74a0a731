package league

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/fridaynight/internal/repositories/league Repository

import (
	"context"

	"github.com/KirkDiggler/fridaynight/internal/models"
)

// Repository defines the interface for league storage
type Repository interface {
	// SaveLeague stores a league when its Version matches the stored one
	// (zero for a league that does not exist yet) and advances Version.
	// A mismatch returns ErrVersionConflict and stores nothing.
	SaveLeague(ctx context.Context, input *SaveLeagueInput) error

	// GetLeague retrieves a league by ID
	GetLeague(ctx context.Context, input *GetLeagueInput) (*models.League, error)

	// DeleteLeague removes a league
	DeleteLeague(ctx context.Context, input *DeleteLeagueInput) error

	// AppendNews adds an item to the front of a league's news feed and
	// advances the stored Version
	AppendNews(ctx context.Context, input *AppendNewsInput) error
}
