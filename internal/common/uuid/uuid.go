package uuid

import (
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/fridaynight/internal/common/uuid UUID

// UUID hands out identifiers for players, teams, games, prospects and news
type UUID interface {
	NewUUID() string
}

// DefaultUUID returns full random UUIDs
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID
func (d *DefaultUUID) NewUUID() string {
	return uuid.New().String()
}

// shortLength is long enough to stay unique inside one league
const shortLength = 8

// ShortUUID returns the first characters of a random UUID.
// Coaches type prospect IDs into chat commands, so they need to be short.
type ShortUUID struct{}

func NewShort() *ShortUUID {
	return &ShortUUID{}
}

// NewUUID returns a new short identifier
func (s *ShortUUID) NewUUID() string {
	id := strings.ReplaceAll(uuid.New().String(), "-", "")
	return id[:shortLength]
}
