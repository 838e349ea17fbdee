package xoshiro

// Xoroshiro128StarStar is the xoroshiro128** generator: two 64-bit words of
// state, period 2^128-1. The ** scrambler removes the low-bit weakness of
// Xoroshiro128Plus at a small speed cost.
type Xoroshiro128StarStar struct {
	s [2]uint64
}

// NewXoroshiro128StarStar seeds a generator from a 64-bit value using
// SplitMix64.
func NewXoroshiro128StarStar(seed uint64) *Xoroshiro128StarStar {
	var rng Xoroshiro128StarStar
	expandSeed64(rng.s[:], seed)
	return &rng
}

// NewXoroshiro128StarStarFromSeed adopts the 16 seed bytes as generator state
// in little-endian word order. Returns ErrInvalidSeed if the seed is all
// zero.
func NewXoroshiro128StarStarFromSeed(seed [16]byte) (*Xoroshiro128StarStar, error) {
	var rng Xoroshiro128StarStar
	if err := readState64(rng.s[:], seed[:]); err != nil {
		return nil, err
	}
	return &rng, nil
}

func (rng *Xoroshiro128StarStar) Uint64() uint64 {
	r := starStar64(rng.s[0])
	updateXoroshiro128(&rng.s)
	return r
}

func (rng *Xoroshiro128StarStar) Uint32() uint32 {
	return uint32(rng.Uint64())
}

// FillBytes fills p with successive 64-bit draws in little-endian order,
// truncating the last draw if len(p) is not a multiple of 8.
func (rng *Xoroshiro128StarStar) FillBytes(p []byte) {
	fillBytes64(p, rng.Uint64)
}

// Read fills p like FillBytes. It never fails.
func (rng *Xoroshiro128StarStar) Read(p []byte) (int, error) {
	fillBytes64(p, rng.Uint64)
	return len(p), nil
}

// Jump advances the generator by 2^64 calls to Uint64.
func (rng *Xoroshiro128StarStar) Jump() {
	jump64(rng.s[:], jumpXoroshiro128[:], func() { updateXoroshiro128(&rng.s) })
}

func (rng *Xoroshiro128StarStar) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *Xoroshiro128StarStar) Seed(seed int64) {
	expandSeed64(rng.s[:], uint64(seed))
}
