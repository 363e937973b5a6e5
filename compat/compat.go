// Package compat bridges slump entropy sources into the math/rand API, for
// call sites written against *rand.Rand or rand.Source that should draw from
// a CSPRNG instead of a seeded PRNG. Seeding is accepted and ignored so the
// bridge stays a drop-in replacement.
package compat

import (
	"encoding/binary"
	"math/rand"

	"pkt.systems/slump/entropy"
)

// NewSource adapts src into a rand.Source64. A nil src uses the system
// CSPRNG. The adapter keeps no state; it is safe for concurrent use whenever
// src is, though note that *rand.Rand itself is not.
func NewSource(src entropy.Source) rand.Source64 {
	if src == nil {
		src = entropy.System()
	}
	return source{src: src}
}

// New returns a *rand.Rand drawing from src (the system CSPRNG when nil).
func New(src entropy.Source) *rand.Rand {
	return rand.New(NewSource(src))
}

type source struct {
	src entropy.Source
}

// Seed is a silent no-op: the underlying generator cannot be repositioned.
func (s source) Seed(seed int64) {}

func (s source) Int63() int64 {
	return int64(s.Uint64() &^ (1 << 63))
}

func (s source) Uint64() uint64 {
	var b [8]byte
	if err := s.src.Fill(b[:]); err != nil {
		// rand.Source has no error path. A failing entropy source must not
		// degrade into biased output, so it is fatal here.
		panic(err)
	}
	return binary.BigEndian.Uint64(b[:])
}
