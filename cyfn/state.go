package cyfn

// state holds one block during the round transforms as a 4x4 byte matrix.
// state[c][r] is row r of column c, matching the FIPS-197 column-major
// layout of the flat 16-byte block: byte i maps to column i/4, row i%4.
type state [nb][4]byte

func (s *state) load(src []byte) {
	for c := 0; c < nb; c++ {
		for r := 0; r < 4; r++ {
			s[c][r] = src[c*4+r]
		}
	}
}

func (s *state) store(dst []byte) {
	for c := 0; c < nb; c++ {
		for r := 0; r < 4; r++ {
			dst[c*4+r] = s[c][r]
		}
	}
}

// addRoundKey xors the state with round key `round` of the schedule.
func (s *state) addRoundKey(round int, roundKey []byte) {
	k := roundKey[round*BlockSize:]
	for c := 0; c < nb; c++ {
		for r := 0; r < 4; r++ {
			s[c][r] ^= k[c*4+r]
		}
	}
}

func (s *state) subBytes() {
	for c := range s {
		for r := range s[c] {
			s[c][r] = sbox[s[c][r]]
		}
	}
}

func (s *state) invSubBytes() {
	for c := range s {
		for r := range s[c] {
			s[c][r] = rsbox[s[c][r]]
		}
	}
}

// shiftRows rotates row r left by r columns.
func (s *state) shiftRows() {
	s[0][1], s[1][1], s[2][1], s[3][1] = s[1][1], s[2][1], s[3][1], s[0][1]
	s[0][2], s[1][2], s[2][2], s[3][2] = s[2][2], s[3][2], s[0][2], s[1][2]
	s[0][3], s[1][3], s[2][3], s[3][3] = s[3][3], s[0][3], s[1][3], s[2][3]
}

// invShiftRows rotates row r right by r columns.
func (s *state) invShiftRows() {
	s[0][1], s[1][1], s[2][1], s[3][1] = s[3][1], s[0][1], s[1][1], s[2][1]
	s[0][2], s[1][2], s[2][2], s[3][2] = s[2][2], s[3][2], s[0][2], s[1][2]
	s[0][3], s[1][3], s[2][3], s[3][3] = s[1][3], s[2][3], s[3][3], s[0][3]
}

// mixColumns multiplies each column by the fixed polynomial
// {03}x³ + {01}x² + {01}x + {02} over GF(2^8).
func (s *state) mixColumns() {
	for c := range s {
		a0, a1, a2, a3 := s[c][0], s[c][1], s[c][2], s[c][3]
		all := a0 ^ a1 ^ a2 ^ a3
		s[c][0] = a0 ^ all ^ xtime(a0^a1)
		s[c][1] = a1 ^ all ^ xtime(a1^a2)
		s[c][2] = a2 ^ all ^ xtime(a2^a3)
		s[c][3] = a3 ^ all ^ xtime(a3^a0)
	}
}

// invMixColumns multiplies each column by the inverse polynomial with
// coefficients {0e}, {0b}, {0d}, {09}.
func (s *state) invMixColumns() {
	for c := range s {
		a0, a1, a2, a3 := s[c][0], s[c][1], s[c][2], s[c][3]
		s[c][0] = gmul(a0, 0x0e) ^ gmul(a1, 0x0b) ^ gmul(a2, 0x0d) ^ gmul(a3, 0x09)
		s[c][1] = gmul(a0, 0x09) ^ gmul(a1, 0x0e) ^ gmul(a2, 0x0b) ^ gmul(a3, 0x0d)
		s[c][2] = gmul(a0, 0x0d) ^ gmul(a1, 0x09) ^ gmul(a2, 0x0e) ^ gmul(a3, 0x0b)
		s[c][3] = gmul(a0, 0x0b) ^ gmul(a1, 0x0d) ^ gmul(a2, 0x09) ^ gmul(a3, 0x0e)
	}
}

// cipher runs the forward round sequence over one block in place.
// len(buf) must be BlockSize.
func cipher(buf, roundKey []byte, nr int) {
	var s state
	s.load(buf)

	s.addRoundKey(0, roundKey)
	for round := 1; round < nr; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(round, roundKey)
	}
	// the last round skips the column mix
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(nr, roundKey)

	s.store(buf)
}

// invCipher runs the inverse round sequence over one block in place.
// Only the ECB and CBC decrypt paths reach it; CTR never does, its keystream
// is always produced with cipher.
func invCipher(buf, roundKey []byte, nr int) {
	var s state
	s.load(buf)

	s.addRoundKey(nr, roundKey)
	for round := nr - 1; round > 0; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(round, roundKey)
		s.invMixColumns()
	}
	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(0, roundKey)

	s.store(buf)
}
