package xoshiro

// Xoshiro512StarStar is the xoshiro512** generator: eight 64-bit words of
// state, period 2^512-1. An alternative to Xoshiro256StarStar for callers
// wanting more state at the same speed.
type Xoshiro512StarStar struct {
	s [8]uint64
}

// NewXoshiro512StarStar seeds a generator from a 64-bit value using
// SplitMix64.
func NewXoshiro512StarStar(seed uint64) *Xoshiro512StarStar {
	var rng Xoshiro512StarStar
	expandSeed64(rng.s[:], seed)
	return &rng
}

// NewXoshiro512StarStarFromSeed adopts the 64 seed bytes as generator state
// in little-endian word order. Returns ErrInvalidSeed if the seed is all
// zero.
func NewXoshiro512StarStarFromSeed(seed [64]byte) (*Xoshiro512StarStar, error) {
	var rng Xoshiro512StarStar
	if err := readState64(rng.s[:], seed[:]); err != nil {
		return nil, err
	}
	return &rng, nil
}

func (rng *Xoshiro512StarStar) Uint64() uint64 {
	r := starStar64(rng.s[1])
	updateXoshiro512(&rng.s)
	return r
}

func (rng *Xoshiro512StarStar) Uint32() uint32 {
	return uint32(rng.Uint64())
}

// FillBytes fills p with successive 64-bit draws in little-endian order,
// truncating the last draw if len(p) is not a multiple of 8.
func (rng *Xoshiro512StarStar) FillBytes(p []byte) {
	fillBytes64(p, rng.Uint64)
}

// Read fills p like FillBytes. It never fails.
func (rng *Xoshiro512StarStar) Read(p []byte) (int, error) {
	fillBytes64(p, rng.Uint64)
	return len(p), nil
}

// Jump advances the generator by 2^256 calls to Uint64.
func (rng *Xoshiro512StarStar) Jump() {
	jump64(rng.s[:], jumpXoshiro512[:], func() { updateXoshiro512(&rng.s) })
}

func (rng *Xoshiro512StarStar) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *Xoshiro512StarStar) Seed(seed int64) {
	expandSeed64(rng.s[:], uint64(seed))
}
