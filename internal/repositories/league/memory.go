package league

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/fridaynight/internal/models"
)

var (
	// ErrLeagueNotFound is returned when a league is not found
	ErrLeagueNotFound = errors.New("league not found")

	// ErrVersionConflict is returned when a save was built from a stale copy
	ErrVersionConflict = errors.New("league was changed by another writer")
)

// maxNewsItems bounds the feed; older items fall off the end.
const maxNewsItems = 50

// memoryRepository keeps leagues for the life of the process
type memoryRepository struct {
	mu      sync.RWMutex
	leagues map[string]*models.League
}

// NewMemory creates an in-memory league repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		leagues: make(map[string]*models.League),
	}
}

// SaveLeague stores a copy so later changes by the caller are not seen.
// On success input.League.Version holds the stored version.
func (r *memoryRepository) SaveLeague(ctx context.Context, input *SaveLeagueInput) error {
	if input == nil || input.League == nil {
		return errors.New("input and league cannot be nil")
	}
	if input.League.ID == "" {
		return errors.New("league ID cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var storedVersion int64
	if stored, ok := r.leagues[input.League.ID]; ok {
		storedVersion = stored.Version
	}
	if input.League.Version != storedVersion {
		return ErrVersionConflict
	}

	input.League.Version++
	r.leagues[input.League.ID] = input.League.Clone()
	return nil
}

// GetLeague returns a copy of the stored league
func (r *memoryRepository) GetLeague(ctx context.Context, input *GetLeagueInput) (*models.League, error) {
	if input == nil || input.LeagueID == "" {
		return nil, errors.New("input and league ID cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.leagues[input.LeagueID]
	if !ok {
		return nil, ErrLeagueNotFound
	}
	return stored.Clone(), nil
}

func (r *memoryRepository) DeleteLeague(ctx context.Context, input *DeleteLeagueInput) error {
	if input == nil || input.LeagueID == "" {
		return errors.New("input and league ID cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.leagues[input.LeagueID]; !ok {
		return ErrLeagueNotFound
	}
	delete(r.leagues, input.LeagueID)
	return nil
}

// AppendNews edits the stored league in place so a headline written after a
// transition does not overwrite that transition.
func (r *memoryRepository) AppendNews(ctx context.Context, input *AppendNewsInput) error {
	if input == nil || input.LeagueID == "" {
		return errors.New("input and league ID cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.leagues[input.LeagueID]
	if !ok {
		return ErrLeagueNotFound
	}

	stored.News = prependNews(stored.News, input.Item)
	stored.Version++
	return nil
}

// prependNews puts item first and drops whatever falls past maxNewsItems
func prependNews(news []models.NewsItem, item models.NewsItem) []models.NewsItem {
	out := make([]models.NewsItem, 0, len(news)+1)
	out = append(out, item)
	out = append(out, news...)
	if len(out) > maxNewsItems {
		out = out[:maxNewsItems]
	}
	return out
}
