package xoshiro

// Xoshiro512Plus is the xoshiro512+ generator: eight 64-bit words of state,
// period 2^512-1. Same speed as Xoshiro256Plus with twice the state, and the
// same low linear complexity in the lowest output bits.
type Xoshiro512Plus struct {
	s [8]uint64
}

// NewXoshiro512Plus seeds a generator from a 64-bit value using SplitMix64.
func NewXoshiro512Plus(seed uint64) *Xoshiro512Plus {
	var rng Xoshiro512Plus
	expandSeed64(rng.s[:], seed)
	return &rng
}

// NewXoshiro512PlusFromSeed adopts the 64 seed bytes as generator state in
// little-endian word order. Returns ErrInvalidSeed if the seed is all zero.
func NewXoshiro512PlusFromSeed(seed [64]byte) (*Xoshiro512Plus, error) {
	var rng Xoshiro512Plus
	if err := readState64(rng.s[:], seed[:]); err != nil {
		return nil, err
	}
	return &rng, nil
}

func (rng *Xoshiro512Plus) Uint64() uint64 {
	r := rng.s[0] + rng.s[2]
	updateXoshiro512(&rng.s)
	return r
}

// Uint32 returns the high half of a 64-bit draw; the low bits of the "+"
// scrambler have linear dependencies.
func (rng *Xoshiro512Plus) Uint32() uint32 {
	return uint32(rng.Uint64() >> 32)
}

// FillBytes fills p with successive 64-bit draws in little-endian order,
// truncating the last draw if len(p) is not a multiple of 8.
func (rng *Xoshiro512Plus) FillBytes(p []byte) {
	fillBytes64(p, rng.Uint64)
}

// Read fills p like FillBytes. It never fails.
func (rng *Xoshiro512Plus) Read(p []byte) (int, error) {
	fillBytes64(p, rng.Uint64)
	return len(p), nil
}

// Jump advances the generator by 2^256 calls to Uint64.
func (rng *Xoshiro512Plus) Jump() {
	jump64(rng.s[:], jumpXoshiro512[:], func() { updateXoshiro512(&rng.s) })
}

func (rng *Xoshiro512Plus) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *Xoshiro512Plus) Seed(seed int64) {
	expandSeed64(rng.s[:], uint64(seed))
}
