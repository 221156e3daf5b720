// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wheel

import (
	"math"
	"math/rand/v2"
)

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
}

// StdRNG delegates to math/rand/v2 (auto-seeded).
type StdRNG struct{}

func (StdRNG) Float64() float64 { return rand.Float64() }

// WeightedRandomIndex picks an index with probability proportional to its
// weight using cumulative inversion. Negative weights count as zero; when
// nothing is positive the pick is uniform. Returns -1 for no weights.
func WeightedRandomIndex(weights []float64, rng RNG) int {
	n := len(weights)
	if n == 0 {
		return -1
	}

	sum := 0.0
	for _, w := range weights {
		sum += math.Max(0, w)
	}
	if sum <= 0 {
		return min(n-1, int(math.Floor(rng.Float64()*float64(n))))
	}

	r := rng.Float64() * sum
	for i, w := range weights {
		r -= math.Max(0, w)
		if r <= 0 {
			return i
		}
	}

	// rounding left r marginally above zero
	return n - 1
}
