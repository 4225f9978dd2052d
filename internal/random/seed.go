// Package random provides the seeded source used for card draws.
//
// A zero seed asks for a fresh one from crypto/rand, so unseeded sessions do
// not repeat each other while a fixed seed reproduces a session exactly.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// New returns a PCG-backed source for seed. A zero seed is replaced with one
// from NewSeed; the seed actually used is returned alongside the source.
func New(seed uint64) (*rand.Rand, uint64, error) {
	if seed == 0 {
		s, err := NewSeed()
		if err != nil {
			return nil, 0, err
		}
		seed = s
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed, nil
}
