package engine

import (
	"github.com/KirkDiggler/fridaynight/internal/common/uuid"
	"github.com/KirkDiggler/fridaynight/internal/dice"
)

const (
	minRating = 0
	maxRating = 99

	// DefaultUnitRating stands in for a unit with no players
	DefaultUnitRating = 40
)

// Config holds configuration for the engine
type Config struct {
	// Variant is the rule set. Defaults to the manager variant.
	Variant *Variant

	// Roller is the random source every draw goes through
	Roller dice.Roller

	// UUIDGenerator hands out entity IDs
	UUIDGenerator uuid.UUID
}

// Engine is the season simulation core. It holds no league state; every
// method takes plain data and returns new values.
type Engine struct {
	variant *Variant
	roller  dice.Roller
	ids     uuid.UUID
}

// New creates a new engine
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	variant := cfg.Variant
	if variant == nil {
		variant = VariantManager()
	}
	if err := variant.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		variant: variant.Clone(),
		roller:  cfg.Roller,
		ids:     cfg.UUIDGenerator,
	}, nil
}

// Variant returns a copy of the rules the engine runs
func (e *Engine) Variant() *Variant {
	return e.variant.Clone()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func pick[T any](r dice.Roller, items []T) T {
	return items[r.Intn(len(items))]
}
