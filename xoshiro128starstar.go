package xoshiro

// Xoshiro128StarStar is the 32-bit-word xoshiro128** generator: four 32-bit
// words of state, period 2^128-1. Recommended for all purposes on 32-bit
// targets.
type Xoshiro128StarStar struct {
	s [4]uint32
}

// NewXoshiro128StarStar seeds a generator from a 64-bit value using
// SplitMix64.
func NewXoshiro128StarStar(seed uint64) *Xoshiro128StarStar {
	var rng Xoshiro128StarStar
	expandSeed32(rng.s[:], seed)
	return &rng
}

// NewXoshiro128StarStarFromSeed adopts the 16 seed bytes as generator state
// in little-endian word order. Returns ErrInvalidSeed if the seed is all
// zero.
func NewXoshiro128StarStarFromSeed(seed [16]byte) (*Xoshiro128StarStar, error) {
	var rng Xoshiro128StarStar
	if err := readState32(rng.s[:], seed[:]); err != nil {
		return nil, err
	}
	return &rng, nil
}

func (rng *Xoshiro128StarStar) Uint32() uint32 {
	r := starStar32(rng.s[0])
	updateXoshiro128(&rng.s)
	return r
}

// Uint64 pairs two consecutive 32-bit draws, the first in the low half.
func (rng *Xoshiro128StarStar) Uint64() uint64 {
	lo := rng.Uint32()
	hi := rng.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// FillBytes fills p with successive 32-bit draws in little-endian order,
// truncating the last draw if len(p) is not a multiple of 4.
func (rng *Xoshiro128StarStar) FillBytes(p []byte) {
	fillBytes32(p, rng.Uint32)
}

// Read fills p like FillBytes. It never fails.
func (rng *Xoshiro128StarStar) Read(p []byte) (int, error) {
	fillBytes32(p, rng.Uint32)
	return len(p), nil
}

// Jump advances the generator by 2^64 calls to Uint32.
func (rng *Xoshiro128StarStar) Jump() {
	jump32(rng.s[:], jumpXoshiro128[:], func() { updateXoshiro128(&rng.s) })
}

func (rng *Xoshiro128StarStar) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *Xoshiro128StarStar) Seed(seed int64) {
	expandSeed32(rng.s[:], uint64(seed))
}
