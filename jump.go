package xoshiro

// Jump polynomials from the reference implementations at
// https://prng.di.unimi.it/. Each encodes a fixed, astronomically large step
// count in the generator's characteristic polynomial, so a jump costs one
// single-step advance per state bit instead of one per skipped draw.

var jumpXoroshiro128 = [2]uint64{0xdf900294d8f554a5, 0x170865df4b3201fc}

var jumpXoshiro256 = [4]uint64{
	0x180ec6d33cfd0aba, 0xd5a61266f0c9392c,
	0xa9582618e03fc9aa, 0x39abdc4529b1661c,
}

var jumpXoshiro512 = [8]uint64{
	0x33ed89b6e7a353f9, 0x760083d7955323be,
	0x2837f2fbb5f22fae, 0x4b8c5674d309511c,
	0xb11ac47a7ba28c25, 0xf1be7667092bcc1c,
	0x53851efdb6df0aaf, 0x1ebbc8b23eaf25db,
}

var jumpXoshiro128 = [4]uint32{0x8764000b, 0xf542d2d3, 0x6fa035c3, 0x77f2db5b}

func jump64(s []uint64, poly []uint64, step func()) {
	var acc [8]uint64
	for _, j := range poly {
		for b := 0; b < 64; b++ {
			if j&(1<<b) != 0 {
				for i := range s {
					acc[i] ^= s[i]
				}
			}
			step()
		}
	}
	copy(s, acc[:])
}

func jump32(s []uint32, poly []uint32, step func()) {
	var acc [4]uint32
	for _, j := range poly {
		for b := 0; b < 32; b++ {
			if j&(1<<b) != 0 {
				for i := range s {
					acc[i] ^= s[i]
				}
			}
			step()
		}
	}
	copy(s, acc[:])
}
