package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/colorcubes/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a uniform value in [1, sides]
	Roll(sides int) int

	// RollN returns count independent uniform values in [1, sides]
	RollN(count, sides int) []int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

type roller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &roller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *roller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// RollN generates count independent rolls
func (r *roller) RollN(count, sides int) []int {
	values := make([]int, count)
	for i := range values {
		values[i] = r.Roll(sides)
	}
	return values
}
