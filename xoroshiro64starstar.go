package xoshiro

// Xoroshiro64StarStar is the xoroshiro64** generator: two 32-bit words of
// state, period 2^64-1. An alternative to Xoshiro128StarStar with half the
// state. No jump polynomial is published for the 64-bit-state family, so it
// has no Jump.
type Xoroshiro64StarStar struct {
	s [2]uint32
}

// NewXoroshiro64StarStar seeds a generator from a 64-bit value using
// SplitMix64.
func NewXoroshiro64StarStar(seed uint64) *Xoroshiro64StarStar {
	var rng Xoroshiro64StarStar
	expandSeed32(rng.s[:], seed)
	return &rng
}

// NewXoroshiro64StarStarFromSeed adopts the 8 seed bytes as generator state
// in little-endian word order. Returns ErrInvalidSeed if the seed is all
// zero.
func NewXoroshiro64StarStarFromSeed(seed [8]byte) (*Xoroshiro64StarStar, error) {
	var rng Xoroshiro64StarStar
	if err := readState32(rng.s[:], seed[:]); err != nil {
		return nil, err
	}
	return &rng, nil
}

func (rng *Xoroshiro64StarStar) Uint32() uint32 {
	r := starStarPhi32(rng.s[0])
	updateXoroshiro64(&rng.s)
	return r
}

// Uint64 pairs two consecutive 32-bit draws, the first in the low half.
func (rng *Xoroshiro64StarStar) Uint64() uint64 {
	lo := rng.Uint32()
	hi := rng.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// FillBytes fills p with successive 32-bit draws in little-endian order,
// truncating the last draw if len(p) is not a multiple of 4.
func (rng *Xoroshiro64StarStar) FillBytes(p []byte) {
	fillBytes32(p, rng.Uint32)
}

// Read fills p like FillBytes. It never fails.
func (rng *Xoroshiro64StarStar) Read(p []byte) (int, error) {
	fillBytes32(p, rng.Uint32)
	return len(p), nil
}

func (rng *Xoroshiro64StarStar) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *Xoroshiro64StarStar) Seed(seed int64) {
	expandSeed32(rng.s[:], uint64(seed))
}
