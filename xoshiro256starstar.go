package xoshiro

// Xoshiro256StarStar is the xoshiro256** generator: four 64-bit words of
// state, period 2^256-1. Recommended for all purposes; the state space is
// large enough for any parallel application.
type Xoshiro256StarStar struct {
	s [4]uint64
}

// NewXoshiro256StarStar seeds a generator from a 64-bit value using
// SplitMix64.
func NewXoshiro256StarStar(seed uint64) *Xoshiro256StarStar {
	var rng Xoshiro256StarStar
	expandSeed64(rng.s[:], seed)
	return &rng
}

// NewXoshiro256StarStarFromSeed adopts the 32 seed bytes as generator state
// in little-endian word order. Returns ErrInvalidSeed if the seed is all
// zero.
func NewXoshiro256StarStarFromSeed(seed [32]byte) (*Xoshiro256StarStar, error) {
	var rng Xoshiro256StarStar
	if err := readState64(rng.s[:], seed[:]); err != nil {
		return nil, err
	}
	return &rng, nil
}

func (rng *Xoshiro256StarStar) Uint64() uint64 {
	r := starStar64(rng.s[1])
	updateXoshiro256(&rng.s)
	return r
}

func (rng *Xoshiro256StarStar) Uint32() uint32 {
	return uint32(rng.Uint64())
}

// FillBytes fills p with successive 64-bit draws in little-endian order,
// truncating the last draw if len(p) is not a multiple of 8.
func (rng *Xoshiro256StarStar) FillBytes(p []byte) {
	fillBytes64(p, rng.Uint64)
}

// Read fills p like FillBytes. It never fails.
func (rng *Xoshiro256StarStar) Read(p []byte) (int, error) {
	fillBytes64(p, rng.Uint64)
	return len(p), nil
}

// Jump advances the generator by 2^128 calls to Uint64.
func (rng *Xoshiro256StarStar) Jump() {
	jump64(rng.s[:], jumpXoshiro256[:], func() { updateXoshiro256(&rng.s) })
}

func (rng *Xoshiro256StarStar) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *Xoshiro256StarStar) Seed(seed int64) {
	expandSeed64(rng.s[:], uint64(seed))
}
