package xoshiro

// Xoshiro256Plus is the xoshiro256+ generator: four 64-bit words of state,
// period 2^256-1. About 15% faster than Xoshiro256StarStar, with low linear
// complexity in the lowest output bits; intended for floating-point
// derivation.
type Xoshiro256Plus struct {
	s [4]uint64
}

// NewXoshiro256Plus seeds a generator from a 64-bit value using SplitMix64.
func NewXoshiro256Plus(seed uint64) *Xoshiro256Plus {
	var rng Xoshiro256Plus
	expandSeed64(rng.s[:], seed)
	return &rng
}

// NewXoshiro256PlusFromSeed adopts the 32 seed bytes as generator state in
// little-endian word order. Returns ErrInvalidSeed if the seed is all zero.
func NewXoshiro256PlusFromSeed(seed [32]byte) (*Xoshiro256Plus, error) {
	var rng Xoshiro256Plus
	if err := readState64(rng.s[:], seed[:]); err != nil {
		return nil, err
	}
	return &rng, nil
}

func (rng *Xoshiro256Plus) Uint64() uint64 {
	r := rng.s[0] + rng.s[3]
	updateXoshiro256(&rng.s)
	return r
}

// Uint32 returns the high half of a 64-bit draw; the low bits of the "+"
// scrambler have linear dependencies.
func (rng *Xoshiro256Plus) Uint32() uint32 {
	return uint32(rng.Uint64() >> 32)
}

// FillBytes fills p with successive 64-bit draws in little-endian order,
// truncating the last draw if len(p) is not a multiple of 8.
func (rng *Xoshiro256Plus) FillBytes(p []byte) {
	fillBytes64(p, rng.Uint64)
}

// Read fills p like FillBytes. It never fails.
func (rng *Xoshiro256Plus) Read(p []byte) (int, error) {
	fillBytes64(p, rng.Uint64)
	return len(p), nil
}

// Jump advances the generator by 2^128 calls to Uint64.
func (rng *Xoshiro256Plus) Jump() {
	jump64(rng.s[:], jumpXoshiro256[:], func() { updateXoshiro256(&rng.s) })
}

func (rng *Xoshiro256Plus) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *Xoshiro256Plus) Seed(seed int64) {
	expandSeed64(rng.s[:], uint64(seed))
}
