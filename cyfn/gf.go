package cyfn

// AES is based on the behavior of binary polynomials (polynomials over GF(2))
// modulo the irreducible polynomial x⁸ + x⁴ + x³ + x + 1. Addition is binary
// xor; reducing mod poly is a xor with the low bits of poly every time a
// 0x100 bit appears.

// xtime multiplies b by x ({02}) in GF(2^8).
func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1b
	}
	return b << 1
}

// gmul multiplies a by a small constant c via repeated xtime. Only the low
// five bits of c are consulted, which covers the inverse column-mix
// coefficients {09}, {0b}, {0d}, {0e}; it is not a general GF multiplier.
func gmul(a, c byte) byte {
	var p byte
	for i := 0; i < 5; i++ {
		if c>>i&1 != 0 {
			p ^= a
		}
		a = xtime(a)
	}
	return p
}
