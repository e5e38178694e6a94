// Package random implements secondary.SequenceSource over math/rand/v2.
package random

import (
	"math/rand/v2"

	"github.com/ssg/trid"
)

// Source draws sequence numbers uniformly from [trid.SequenceMin, trid.SequenceMax).
// A seeded Source is not safe for concurrent use.
type Source struct {
	rng *rand.Rand // nil means the global generator
}

// NewSource returns a Source backed by the runtime's global generator.
func NewSource() *Source {
	return &Source{}
}

// NewSeededSource returns a Source that yields the same sequence for the same seed.
func NewSeededSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Next returns the next sequence number.
func (s *Source) Next() int {
	const n = trid.SequenceMax - trid.SequenceMin
	if s.rng == nil {
		return trid.SequenceMin + rand.IntN(n)
	}
	return trid.SequenceMin + s.rng.IntN(n)
}
