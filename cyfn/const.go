package cyfn

import (
	"math/bits"
)

// This file generates the substitution and round-constant tables. They are
// initialized once and never written afterwards, so unsynchronized concurrent
// reads are safe.

// https://csrc.nist.gov/publications/fips/fips197/fips-197.pdf

// sbox FIPS-197 Figure 7. S-box substitution values generation
var sbox = func() (sbox [256]byte) {
	var p, q uint8 = 1, 1
	for {
		/* multiply p by 3 */
		if p&0x80 != 0 {
			p ^= (p << 1) ^ 0x1b
		} else {
			p ^= p << 1
		}

		/* divide q by 3 (equals multiplication by 0xf6) */
		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		/* compute the affine transformation */
		xformed := q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^ bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4)
		sbox[p] = xformed ^ 0x63

		if p == 1 {
			break
		}
	}

	/* 0 is a special case since it has no inverse */
	sbox[0] = 0x63
	return sbox
}()

// rsbox FIPS-197 Figure 14. Inverse S-box, derived by inverting sbox.
var rsbox = func() (rsbox [256]byte) {
	for i := range sbox {
		rsbox[sbox[i]] = byte(i)
	}
	return rsbox
}()

// Powers of x mod poly in GF(2). powx[i/Nk-1] is the round constant consumed
// when expanding word i of the key schedule.
var powx = [10]byte{
	0x01,
	0x02,
	0x04,
	0x08,
	0x10,
	0x20,
	0x40,
	0x80,
	0x1b,
	0x36,
}
