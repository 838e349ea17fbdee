package xoshiro

import "math/bits"

// The state updates below are shared between the "+" and "**" variants of
// each family shape; the scrambler is the only thing that differs. All
// updates have period 2^(state bits)-1 over nonzero states.

func updateXoroshiro128(s *[2]uint64) {
	s1 := s[1] ^ s[0]
	s[0] = bits.RotateLeft64(s[0], 24) ^ s1 ^ (s1 << 16)
	s[1] = bits.RotateLeft64(s1, 37)
}

func updateXoroshiro64(s *[2]uint32) {
	s1 := s[1] ^ s[0]
	s[0] = bits.RotateLeft32(s[0], 26) ^ s1 ^ (s1 << 9)
	s[1] = bits.RotateLeft32(s1, 13)
}

func updateXoshiro128(s *[4]uint32) {
	t := s[1] << 9

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft32(s[3], 11)
}

func updateXoshiro256(s *[4]uint64) {
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t

	s[3] = bits.RotateLeft64(s[3], 45)
}

func updateXoshiro512(s *[8]uint64) {
	t := s[1] << 11

	s[2] ^= s[0]
	s[5] ^= s[1]
	s[1] ^= s[2]
	s[7] ^= s[3]
	s[3] ^= s[4]
	s[4] ^= s[5]
	s[0] ^= s[6]
	s[6] ^= s[7]

	s[6] ^= t

	s[7] = bits.RotateLeft64(s[7], 21)
}

func starStar64(x uint64) uint64 {
	return bits.RotateLeft64(x*5, 7) * 9
}

func starStar32(x uint32) uint32 {
	return bits.RotateLeft32(x*5, 7) * 9
}

// xoroshiro64** uses the golden-ratio multiplier instead of 5/9.
func starStarPhi32(x uint32) uint32 {
	return bits.RotateLeft32(x*0x9E3779BB, 5) * 5
}
