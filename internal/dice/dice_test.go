package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollStaysInRange(t *testing.T) {
	r := New(&Config{Seed: 1})

	for i := 0; i < 1000; i++ {
		v := r.Roll(6)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestRollDefaultsToSixSides(t *testing.T) {
	r := New(&Config{Seed: 1})

	v := r.Roll(0)
	assert.GreaterOrEqual(t, v, 1)
	assert.LessOrEqual(t, v, 6)
}

func TestRollNCount(t *testing.T) {
	r := New(&Config{Seed: 99})

	values := r.RollN(3, 6)
	assert.Len(t, values, 3)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
	}
}

func TestSeededRollsAreReproducible(t *testing.T) {
	a := New(&Config{Seed: 5})
	b := New(&Config{Seed: 5})

	assert.Equal(t, a.RollN(10, 6), b.RollN(10, 6))
}
