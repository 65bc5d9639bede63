// Package random provides the uniform random source used for weight
// initialization and training-order shuffling.
//
// The source is an owned instance threaded through construction rather than a
// process-wide singleton, so tests can fix a seed and concurrent users can
// give each network its own generator.
package random

import (
	"math/rand"
	"time"
)

// Source produces uniform random integers and floats.
type Source interface {
	// IntN returns a uniform random integer in [0, n). n must be positive.
	IntN(n int) int

	// Float64 returns a uniform random float in [min, max). Returns min when
	// min >= max.
	Float64(min, max float64) float64
}

// Generator is a math/rand backed Source.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator with the given seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewTime creates a Generator seeded from the current time.
func NewTime() *Generator {
	return New(time.Now().UnixNano())
}

// IntN returns a uniform random integer in [0, n).
func (g *Generator) IntN(n int) int {
	return g.rng.Intn(n)
}

// Float64 returns a uniform random float in [min, max), or min when the
// range is degenerate.
func (g *Generator) Float64(min, max float64) float64 {
	if min >= max {
		return min
	}
	return g.rng.Float64()*(max-min) + min
}

// StartVal returns a random starting value for weights and biases, drawn
// uniformly from [0, 1).
func StartVal(src Source) float64 {
	return src.Float64(0.0, 1.0)
}
