package xoshiro

// Xoshiro128Plus is the 32-bit-word xoshiro128+ generator: four 32-bit words
// of state, period 2^128-1. Recommended for generating 32-bit floating-point
// numbers; the lowest output bits have low linear complexity.
type Xoshiro128Plus struct {
	s [4]uint32
}

// NewXoshiro128Plus seeds a generator from a 64-bit value using SplitMix64.
func NewXoshiro128Plus(seed uint64) *Xoshiro128Plus {
	var rng Xoshiro128Plus
	expandSeed32(rng.s[:], seed)
	return &rng
}

// NewXoshiro128PlusFromSeed adopts the 16 seed bytes as generator state in
// little-endian word order. Returns ErrInvalidSeed if the seed is all zero.
func NewXoshiro128PlusFromSeed(seed [16]byte) (*Xoshiro128Plus, error) {
	var rng Xoshiro128Plus
	if err := readState32(rng.s[:], seed[:]); err != nil {
		return nil, err
	}
	return &rng, nil
}

func (rng *Xoshiro128Plus) Uint32() uint32 {
	r := rng.s[0] + rng.s[3]
	updateXoshiro128(&rng.s)
	return r
}

// Uint64 pairs two consecutive 32-bit draws, the first in the low half.
func (rng *Xoshiro128Plus) Uint64() uint64 {
	lo := rng.Uint32()
	hi := rng.Uint32()
	return uint64(hi)<<32 | uint64(lo)
}

// FillBytes fills p with successive 32-bit draws in little-endian order,
// truncating the last draw if len(p) is not a multiple of 4.
func (rng *Xoshiro128Plus) FillBytes(p []byte) {
	fillBytes32(p, rng.Uint32)
}

// Read fills p like FillBytes. It never fails.
func (rng *Xoshiro128Plus) Read(p []byte) (int, error) {
	fillBytes32(p, rng.Uint32)
	return len(p), nil
}

// Jump advances the generator by 2^64 calls to Uint32.
func (rng *Xoshiro128Plus) Jump() {
	jump32(rng.s[:], jumpXoshiro128[:], func() { updateXoshiro128(&rng.s) })
}

func (rng *Xoshiro128Plus) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *Xoshiro128Plus) Seed(seed int64) {
	expandSeed32(rng.s[:], uint64(seed))
}
