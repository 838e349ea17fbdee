package xoshiro

import "testing"

// Expected values produced with the reference implementation at
// https://prng.di.unimi.it/xoshiro128plus.c.
func TestXoshiro128PlusReference(t *testing.T) {
	rng, err := NewXoshiro128PlusFromSeed(leSeed16x32(1, 2, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	checkUint32s(t, rng.Uint32, []uint32{
		5, 12295, 25178119, 27286542, 39879690, 1140358681,
		3276312097, 4110231701, 399823256, 2144435200,
	})
}

func TestXoshiro128PlusJump(t *testing.T) {
	rng, err := NewXoshiro128PlusFromSeed(leSeed16x32(1, 2, 3, 4))
	if err != nil {
		t.Fatal(err)
	}
	rng.Jump()
	checkUint32s(t, rng.Uint32, []uint32{
		2887920503, 1583871485, 1223031203, 350630958,
	})
}

func TestXoshiro128PlusJumpCommutesWithStep(t *testing.T) {
	for steps := 0; steps < 5; steps++ {
		a := NewXoshiro128Plus(42)
		b := NewXoshiro128Plus(42)
		for i := 0; i < steps; i++ {
			a.Uint32()
		}
		a.Jump()
		b.Jump()
		for i := 0; i < steps; i++ {
			b.Uint32()
		}
		checkSameUint32s(t, a.Uint32, b.Uint32, 8)
	}
}

func BenchmarkXoshiro128Plus(b *testing.B) {
	rng := NewXoshiro128Plus(1)
	for i := 0; i < b.N; i++ {
		_ = rng.Uint32()
	}
}
