// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// Uniform draws integers uniformly at random.
type Uniform interface {
	// Uint64Inclusive returns a number in [0, n].
	Uint64Inclusive(n uint64) uint64
}

// NewUniform returns a clock seeded sampler. It is safe for concurrent use.
func NewUniform() Uniform {
	return newRNG()
}

// NewDeterministicUniform returns a sampler whose draws are fully determined
// by [source].
func NewDeterministicUniform(source Source) Uniform {
	return &rng{rng: source}
}
