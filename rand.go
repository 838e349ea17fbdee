package xoshiro

import "math/rand"

// NewRand returns a math/rand generator backed by Xoshiro256StarStar, the
// recommended general-purpose member of the family.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(NewXoshiro256StarStar(seed))
}
