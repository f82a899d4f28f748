package passcode

import (
	"math/rand"
	"strings"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/colorcubes/internal/common/passcode Generator

// Generator produces short room passcodes
type Generator interface {
	Generate() string
}

// Length is the number of characters in a passcode
const Length = 6

// alphabet matches what players can type from a shared screen: uppercase
// letters and digits
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Config for the passcode generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

type generator struct {
	random *rand.Rand
}

// New creates a new alphanumeric passcode generator
func New(cfg *Config) *generator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &generator{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Generate returns a new uppercase passcode. Uniqueness is the caller's
// responsibility; the registry retries on collision.
func (g *generator) Generate() string {
	var sb strings.Builder
	sb.Grow(Length)
	for i := 0; i < Length; i++ {
		sb.WriteByte(alphabet[g.random.Intn(len(alphabet))])
	}
	return sb.String()
}

// Normalize upper-cases and trims a player-typed passcode
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
