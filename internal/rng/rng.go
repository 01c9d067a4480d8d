// Package rng supplies the random stream consumed by the floor-plan
// generator. Anything with a Float64 method returning values in [0,1) can
// drive generation, including *math/rand.Rand.
package rng

import "math"

// Source yields successive floats in [0,1).
type Source interface {
	Float64() float64
}

// Func adapts a plain function to a Source.
type Func func() float64

// Float64 calls f.
func (f Func) Float64() float64 { return f() }

// Seeded is a mulberry32 stream: a 32-bit state advanced by a fixed
// increment and mixed into a float. Two Seeded values built from the same
// seed produce identical sequences.
type Seeded struct {
	state uint32
}

// NewSeeded returns a stream seeded with seed.
func NewSeeded(seed uint32) *Seeded {
	return &Seeded{state: seed}
}

// Float64 returns the next value in [0,1).
func (s *Seeded) Float64() float64 {
	s.state += 0x6D2B79F5
	t := s.state
	t = (t ^ t>>15) * (t | 1)
	t ^= t + (t^t>>7)*(t|61)
	return float64(t^t>>14) / 4294967296.0
}

// Range returns a value uniformly drawn from [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + src.Float64()*(hi-lo)
}

// Intn returns an int in [0, n). It returns 0 when n <= 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// IntRange returns an int in [lo, hi], both ends inclusive.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + Intn(src, hi-lo+1)
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Angle returns a direction in [0, 2π).
func Angle(src Source) float64 {
	return src.Float64() * 2 * math.Pi
}

// Shuffle permutes the first n elements via swap using Fisher-Yates,
// consuming one draw per swap.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := Intn(src, i+1)
		swap(i, j)
	}
}
