package passcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	gen := New(&Config{Seed: 42})

	for i := 0; i < 100; i++ {
		code := gen.Generate()
		assert.Len(t, code, Length)
		for _, r := range code {
			assert.Contains(t, alphabet, string(r))
		}
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "AB12CD", Normalize("  ab12cd "))
	assert.Equal(t, "XYZ999", Normalize("xyz999"))
}
