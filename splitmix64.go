package xoshiro

// SplitMix64 is the mixing generator recommended for seeding the rest of the
// family from a single 64-bit value. Every counter value is valid, including
// zero, so construction never fails.
type SplitMix64 struct {
	counter uint64
}

// NewSplitMix64 creates a SplitMix64 starting from the given counter value.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{counter: seed}
}

// Uint64 advances the counter by the golden-ratio increment and returns its
// avalanche mix. The mix is a bijection on 64-bit words.
func (rng *SplitMix64) Uint64() uint64 {
	rng.counter += 0x9e3779b97f4a7c15
	z := rng.counter
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

func (rng *SplitMix64) Int63() int64 {
	return int64(rng.Uint64() & maxInt63)
}

func (rng *SplitMix64) Seed(seed int64) {
	rng.counter = uint64(seed)
}
