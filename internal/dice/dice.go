package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/fridaynight/internal/dice Roller

// Roller is the random source every generator and simulator draws from
type Roller interface {
	// Intn returns a value in [0, n)
	Intn(n int) int

	// Between returns a value in [min, max], inclusive on both ends
	Between(min, max int) int

	// Float64 returns a value in [0.0, 1.0)
	Float64() float64

	// Shuffle permutes n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// SeededRoller provides dice rolling functionality on top of math/rand
type SeededRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for deterministic replay
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *SeededRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &SeededRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a value in [0, n). A non-positive n yields 0.
func (r *SeededRoller) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.random.Intn(n)
}

// Between returns a value in [min, max]. Swapped bounds are tolerated.
func (r *SeededRoller) Between(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.random.Intn(max-min+1)
}

// Float64 returns a value in [0.0, 1.0)
func (r *SeededRoller) Float64() float64 {
	return r.random.Float64()
}

// Shuffle permutes n elements using swap
func (r *SeededRoller) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	r.random.Shuffle(n, swap)
}
