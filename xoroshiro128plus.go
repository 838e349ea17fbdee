package xoshiro

// Xoroshiro128Plus is the xoroshiro128+ generator: two 64-bit words of state,
// period 2^128-1. It is the fastest member of the family, at the cost of low
// linear complexity in the lowest output bits; use it for deriving
// floating-point values, which discard those bits.
type Xoroshiro128Plus struct {
	s [2]uint64
}

// NewXoroshiro128Plus seeds a generator from a 64-bit value using SplitMix64.
func NewXoroshiro128Plus(seed uint64) *Xoroshiro128Plus {
	var rng Xoroshiro128Plus
	expandSeed64(rng.s[:], seed)
	return &rng
}

// NewXoroshiro128PlusFromSeed adopts the 16 seed bytes as generator state in
// little-endian word order. Returns ErrInvalidSeed if the seed is all zero.
func NewXoroshiro128PlusFromSeed(seed [16]byte) (*Xoroshiro128Plus, error) {
	var rng Xoroshiro128Plus
	if err := readState64(rng.s[:], seed[:]); err != nil {
		return nil, err
	}
	return &rng, nil
}

func (rng *Xoroshiro128Plus) Uint64() uint64 {
	r := rng.s[0] + rng.s[1]
	updateXoroshiro128(&rng.s)
	return r
}

// Uint32 returns the high half of a 64-bit draw; the low bits of the "+"
// scrambler have linear dependencies.
func (rng *Xoroshiro128Plus) Uint32() uint32 {
	return uint32(rng.Uint64() >> 32)
}

// FillBytes fills p with successive 64-bit draws in little-endian order,
// truncating the last draw if len(p) is not a multiple of 8.
func (rng *Xoroshiro128Plus) FillBytes(p []byte) {
	fillBytes64(p, rng.Uint64)
}

// Read fills p like FillBytes. It never fails.
func (rng *Xoroshiro128Plus) Read(p []byte) (int, error) {
	fillBytes64(p, rng.Uint64)
	return len(p), nil
}

// Jump advances the generator by 2^64 calls to Uint64. Seeding a set of
// instances identically and jumping the k-th instance k times yields 2^64
// non-overlapping subsequences for parallel use.
func (rng *Xoroshiro128Plus) Jump() {
	jump64(rng.s[:], jumpXoroshiro128[:], func() { updateXoroshiro128(&rng.s) })
}

func (rng *Xoroshiro128Plus) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *Xoroshiro128Plus) Seed(seed int64) {
	expandSeed64(rng.s[:], uint64(seed))
}
