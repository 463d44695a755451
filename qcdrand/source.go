// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qcdrand

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source is a stream of uniform pseudo-random reals and integers backed
// by a 32-bit Mersenne Twister (gonum.org/v1/gonum/mathext/prng.MT19937).
// A Source is not safe for concurrent use: callers that update the gauge
// field from multiple goroutines must serialise access to a shared
// Source, or give each goroutine its own Source seeded independently.
type Source struct {
	mt  *prng.MT19937
	rnd *rand.Rand
}

// NewSource returns a Source seeded with the default seed used by MT19937
// (5489, matching the reference Mersenne Twister implementation) until
// Seed is called.
func NewSource() *Source {
	mt := prng.NewMT19937()
	return &Source{mt: mt, rnd: rand.New(mt)}
}

// Seed reseeds the stream. Only the lower 32 bits of seed are used, per
// MT19937's seeding algorithm.
func (s *Source) Seed(seed uint64) {
	s.mt.Seed(seed)
}

// GenerateReal returns a sample from the uniform distribution on [lo, hi).
// GenerateReal panics if hi <= lo.
func (s *Source) GenerateReal(lo, hi float64) float64 {
	if hi <= lo {
		panic("qcdrand: invalid range")
	}
	return lo + (hi-lo)*s.rnd.Float64()
}

// GenerateInt returns a sample from the half-open uniform integer
// distribution on [lo, hi). GenerateInt panics if hi <= lo.
func (s *Source) GenerateInt(lo, hi int) int {
	if hi <= lo {
		panic("qcdrand: invalid range")
	}
	return lo + s.rnd.IntN(hi-lo)
}

// global is the default process-wide Source, provided for convenience.
// Components that need reproducibility under parallelism should hold
// their own explicit *Source instead of relying on this one.
var global = NewSource()

// Global returns the default process-wide Source.
func Global() *Source { return global }
