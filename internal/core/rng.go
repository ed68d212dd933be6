package core

import (
	"math/rand/v2"
	"time"
)

// Rand is the randomness every variant draws from. Production code wires a
// clock-seeded RNG; tests inject fixed seeds.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewClockRNG seeds an RNG from the wall clock.
func NewClockRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// IntN returns a value in [0, n). n <= 0 yields 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Chance reports true with probability p.
func Chance(r Rand, p float64) bool {
	return r.Float64() < p
}

// Jitter returns a uniform offset in [-amount, amount).
func Jitter(r Rand, amount float64) float64 {
	return r.Float64()*2*amount - amount
}

// FillRandom sets every visible cell alive with probability p.
func FillRandom(r Rand, g *Grid, p float64) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			var v uint8
			if Chance(r, p) {
				v = 1
			}
			g.Set(x, y, v)
		}
	}
}
