package xoshiro

// Xoroshiro64Star is the xoroshiro64* generator: two 32-bit words of state,
// period 2^64-1. The smallest member of the family; an alternative to
// Xoshiro128Plus with half the state. No jump polynomial is published for the
// 64-bit-state family, so it has no Jump.
type Xoroshiro64Star struct {
	s [2]uint32
}

// NewXoroshiro64Star seeds a generator from a 64-bit value using SplitMix64.
func NewXoroshiro64Star(seed uint64) *Xoroshiro64Star {
	var rng Xoroshiro64Star
	expandSeed32(rng.s[:], seed)
	return &rng
}

// NewXoroshiro64StarFromSeed adopts the 8 seed bytes as generator state in
// little-endian word order. Returns ErrInvalidSeed if the seed is all zero.
func NewXoroshiro64StarFromSeed(seed [8]byte) (*Xoroshiro64Star, error) {
	var rng Xoroshiro64Star
	if err := readState32(rng.s[:], seed[:]); err != nil {
		return nil, err
	}
	return &rng, nil
}

func (rng *Xoroshiro64Star) Uint32() uint32 {
	r := rng.s[0] * 0x9E3779BB
	updateXoroshiro64(&rng.s)
	return r
}

// Uint64 pairs two consecutive 32-bit draws, the first in the low half.
func (rng *Xoroshiro64Star) Uint64() uint64 {
	lo := rng.Uint32()
	hi := rng.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// FillBytes fills p with successive 32-bit draws in little-endian order,
// truncating the last draw if len(p) is not a multiple of 4.
func (rng *Xoroshiro64Star) FillBytes(p []byte) {
	fillBytes32(p, rng.Uint32)
}

// Read fills p like FillBytes. It never fails.
func (rng *Xoroshiro64Star) Read(p []byte) (int, error) {
	fillBytes32(p, rng.Uint32)
	return len(p), nil
}

func (rng *Xoroshiro64Star) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *Xoroshiro64Star) Seed(seed int64) {
	expandSeed32(rng.s[:], uint64(seed))
}
