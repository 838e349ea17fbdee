// Package xoshiro implements the xoshiro/xoroshiro family of pseudorandom
// number generators designed by David Blackman and Sebastiano Vigna, together
// with the SplitMix64 generator used to seed them.
//
// The generators are fast, keep between 64 and 512 bits of state and have
// strong statistical quality, but they are not cryptographically secure:
// their output can be reconstructed from a few samples. Xoshiro256StarStar is
// the recommended general-purpose member of the family; the "+" variants are
// slightly faster and intended for floating-point derivation, which discards
// their weaker low bits.
//
// Every generator implements math/rand.Source64 and io.Reader. Instances are
// not safe for concurrent use; for parallel work give each goroutine its own
// instance seeded identically and call Jump a distinct number of times per
// instance to move each one to a disjoint subsequence of the same stream.
package xoshiro

import (
	"encoding/binary"
	"errors"
)

// ErrInvalidSeed is returned by the FromSeed constructors when the seed bytes
// decode to an all-zero state. The zero state is a fixed point of every
// generator in the family and would produce nothing but zeros.
var ErrInvalidSeed = errors.New("xoshiro: seed must not be all zero")

const maxInt63 = (1 << 63) - 1

func readState64(s []uint64, seed []byte) error {
	var nonzero bool
	for i := range s {
		s[i] = binary.LittleEndian.Uint64(seed[8*i:])
		nonzero = nonzero || s[i] != 0
	}
	if !nonzero {
		return ErrInvalidSeed
	}
	return nil
}

func readState32(s []uint32, seed []byte) error {
	var nonzero bool
	for i := range s {
		s[i] = binary.LittleEndian.Uint32(seed[4*i:])
		nonzero = nonzero || s[i] != 0
	}
	if !nonzero {
		return ErrInvalidSeed
	}
	return nil
}

func expandSeed64(s []uint64, seed uint64) {
	rng := NewSplitMix64(seed)
	for i := range s {
		s[i] = rng.Uint64()
	}
}

func expandSeed32(s []uint32, seed uint64) {
	rng := NewSplitMix64(seed)
	for i := range s {
		s[i] = uint32(rng.Uint64())
	}
}

func fillBytes64(p []byte, next func() uint64) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, next())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], next())
		copy(p, tail[:])
	}
}

func fillBytes32(p []byte, next func() uint32) {
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, next())
		p = p[4:]
	}
	if len(p) > 0 {
		var tail [4]byte
		binary.LittleEndian.PutUint32(tail[:], next())
		copy(p, tail[:])
	}
}
