package xoshiro

import (
	"bytes"
	"encoding/binary"
	"io"
	"math/rand"
	"testing"
)

var (
	_ rand.Source64 = (*SplitMix64)(nil)
	_ rand.Source64 = (*Xoroshiro128Plus)(nil)
	_ rand.Source64 = (*Xoroshiro128StarStar)(nil)
	_ rand.Source64 = (*Xoshiro256Plus)(nil)
	_ rand.Source64 = (*Xoshiro256StarStar)(nil)
	_ rand.Source64 = (*Xoshiro512Plus)(nil)
	_ rand.Source64 = (*Xoshiro512StarStar)(nil)
	_ rand.Source64 = (*Xoshiro128Plus)(nil)
	_ rand.Source64 = (*Xoshiro128StarStar)(nil)
	_ rand.Source64 = (*Xoroshiro64Star)(nil)
	_ rand.Source64 = (*Xoroshiro64StarStar)(nil)

	_ io.Reader = (*Xoshiro256StarStar)(nil)
	_ io.Reader = (*Xoroshiro64Star)(nil)
)

func checkUint64s(t *testing.T, next func() uint64, expected []uint64) {
	t.Helper()
	for i, want := range expected {
		if got := next(); got != want {
			t.Fatalf("draw %d: got %d, want %d", i, got, want)
		}
	}
}

func checkUint32s(t *testing.T, next func() uint32, expected []uint32) {
	t.Helper()
	for i, want := range expected {
		if got := next(); got != want {
			t.Fatalf("draw %d: got %d, want %d", i, got, want)
		}
	}
}

func checkSameUint64s(t *testing.T, a, b func() uint64, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		x, y := a(), b()
		if x != y {
			t.Fatalf("draw %d: sequences diverge: %d != %d", i, x, y)
		}
	}
}

func checkSameUint32s(t *testing.T, a, b func() uint32, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		x, y := a(), b()
		if x != y {
			t.Fatalf("draw %d: sequences diverge: %d != %d", i, x, y)
		}
	}
}

func leSeed16(w0, w1 uint64) (seed [16]byte) {
	binary.LittleEndian.PutUint64(seed[0:], w0)
	binary.LittleEndian.PutUint64(seed[8:], w1)
	return
}

func leSeed32(w0, w1, w2, w3 uint64) (seed [32]byte) {
	binary.LittleEndian.PutUint64(seed[0:], w0)
	binary.LittleEndian.PutUint64(seed[8:], w1)
	binary.LittleEndian.PutUint64(seed[16:], w2)
	binary.LittleEndian.PutUint64(seed[24:], w3)
	return
}

func leSeed64(words ...uint64) (seed [64]byte) {
	for i, w := range words {
		binary.LittleEndian.PutUint64(seed[8*i:], w)
	}
	return
}

func leSeed16x32(w0, w1, w2, w3 uint32) (seed [16]byte) {
	binary.LittleEndian.PutUint32(seed[0:], w0)
	binary.LittleEndian.PutUint32(seed[4:], w1)
	binary.LittleEndian.PutUint32(seed[8:], w2)
	binary.LittleEndian.PutUint32(seed[12:], w3)
	return
}

func leSeed8x32(w0, w1 uint32) (seed [8]byte) {
	binary.LittleEndian.PutUint32(seed[0:], w0)
	binary.LittleEndian.PutUint32(seed[4:], w1)
	return
}

func checkZeroSeedRejected(t *testing.T, name string, err error) {
	t.Helper()
	if err != ErrInvalidSeed {
		t.Errorf("%s: all-zero seed: got %v, want ErrInvalidSeed", name, err)
	}
}

func TestZeroSeedRejected(t *testing.T) {
	_, err := NewXoroshiro128PlusFromSeed([16]byte{})
	checkZeroSeedRejected(t, "xoroshiro128+", err)
	_, err = NewXoroshiro128StarStarFromSeed([16]byte{})
	checkZeroSeedRejected(t, "xoroshiro128**", err)
	_, err = NewXoshiro256PlusFromSeed([32]byte{})
	checkZeroSeedRejected(t, "xoshiro256+", err)
	_, err = NewXoshiro256StarStarFromSeed([32]byte{})
	checkZeroSeedRejected(t, "xoshiro256**", err)
	_, err = NewXoshiro512PlusFromSeed([64]byte{})
	checkZeroSeedRejected(t, "xoshiro512+", err)
	_, err = NewXoshiro512StarStarFromSeed([64]byte{})
	checkZeroSeedRejected(t, "xoshiro512**", err)
	_, err = NewXoshiro128PlusFromSeed([16]byte{})
	checkZeroSeedRejected(t, "xoshiro128+", err)
	_, err = NewXoshiro128StarStarFromSeed([16]byte{})
	checkZeroSeedRejected(t, "xoshiro128**", err)
	_, err = NewXoroshiro64StarFromSeed([8]byte{})
	checkZeroSeedRejected(t, "xoroshiro64*", err)
	_, err = NewXoroshiro64StarStarFromSeed([8]byte{})
	checkZeroSeedRejected(t, "xoroshiro64**", err)
}

func TestSingleSetBitSeedAccepted(t *testing.T) {
	var seed [32]byte
	seed[31] = 0x80
	rng, err := NewXoshiro256PlusFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	if rng.s != [4]uint64{0, 0, 0, 1 << 63} {
		t.Fatalf("unexpected state %x", rng.s)
	}
}

func TestConstructionDeterminism(t *testing.T) {
	a, b := NewXoshiro256StarStar(7), NewXoshiro256StarStar(7)
	checkSameUint64s(t, a.Uint64, b.Uint64, 100)

	seed := leSeed16(0xdeadbeef, 0xfeedface)
	c, err := NewXoroshiro128PlusFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewXoroshiro128PlusFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	checkSameUint64s(t, c.Uint64, d.Uint64, 100)

	e, f := NewXoroshiro64StarStar(999), NewXoroshiro64StarStar(999)
	checkSameUint32s(t, e.Uint32, f.Uint32, 100)
}

func TestReseedMatchesFreshGenerator(t *testing.T) {
	rng := NewXoshiro256Plus(1)
	rng.Uint64()
	rng.Seed(9)
	fresh := NewXoshiro256Plus(9)
	checkSameUint64s(t, rng.Uint64, fresh.Uint64, 32)
}

func TestFillBytesMatchesDraws64(t *testing.T) {
	a := NewXoroshiro128StarStar(99)
	b := NewXoroshiro128StarStar(99)

	got := make([]byte, 24)
	a.FillBytes(got)
	want := make([]byte, 24)
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint64(want[8*i:], b.Uint64())
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("whole-word fill mismatch:\n got %x\nwant %x", got, want)
	}

	// Ragged length: the tail costs exactly one extra draw.
	got = make([]byte, 13)
	a.FillBytes(got)
	want = make([]byte, 16)
	binary.LittleEndian.PutUint64(want[0:], b.Uint64())
	binary.LittleEndian.PutUint64(want[8:], b.Uint64())
	if !bytes.Equal(got, want[:13]) {
		t.Fatalf("ragged fill mismatch:\n got %x\nwant %x", got, want[:13])
	}
	if a.Uint64() != b.Uint64() {
		t.Fatal("generators out of sync after ragged fill")
	}
}

func TestFillBytesMatchesDraws32(t *testing.T) {
	a := NewXoroshiro64Star(123)
	b := NewXoroshiro64Star(123)

	got := make([]byte, 12)
	a.FillBytes(got)
	want := make([]byte, 12)
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(want[4*i:], b.Uint32())
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("whole-word fill mismatch:\n got %x\nwant %x", got, want)
	}

	got = make([]byte, 10)
	a.FillBytes(got)
	want = make([]byte, 12)
	for i := 0; i < 3; i++ {
		binary.LittleEndian.PutUint32(want[4*i:], b.Uint32())
	}
	if !bytes.Equal(got, want[:10]) {
		t.Fatalf("ragged fill mismatch:\n got %x\nwant %x", got, want[:10])
	}
	if a.Uint32() != b.Uint32() {
		t.Fatal("generators out of sync after ragged fill")
	}
}

func TestReadNeverFails(t *testing.T) {
	a := NewXoshiro512StarStar(5)
	b := NewXoshiro512StarStar(5)

	got := make([]byte, 31)
	n, err := a.Read(got)
	if n != len(got) || err != nil {
		t.Fatalf("Read: got (%d, %v), want (%d, nil)", n, err, len(got))
	}
	want := make([]byte, 31)
	b.FillBytes(want)
	if !bytes.Equal(got, want) {
		t.Fatal("Read and FillBytes disagree")
	}
}

func TestUint64PairsUint32Draws(t *testing.T) {
	a := NewXoshiro128StarStar(77)
	b := NewXoshiro128StarStar(77)
	for i := 0; i < 32; i++ {
		lo := b.Uint32()
		hi := b.Uint32()
		want := uint64(hi)<<32 | uint64(lo)
		if got := a.Uint64(); got != want {
			t.Fatalf("draw %d: got %d, want %d", i, got, want)
		}
	}
}
