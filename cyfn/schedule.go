package cyfn

// expandKey fills roundKey with the FIPS-197 key schedule for key.
// len(roundKey) must be v.scheduleSize() and len(key) must be v.KeySize().
// The expansion is a pure function of the key: identical keys always produce
// identical schedules.
func expandKey(roundKey, key []byte, v Variant) {
	nk := v.nk()
	nr := v.Rounds()

	// the first Nk words are the key itself
	copy(roundKey[:nk*4], key)

	var tmp [4]byte
	for i := nk; i < nb*(nr+1); i++ {
		copy(tmp[:], roundKey[(i-1)*4:i*4])

		if i%nk == 0 {
			// RotWord
			tmp[0], tmp[1], tmp[2], tmp[3] = tmp[1], tmp[2], tmp[3], tmp[0]
			// SubWord
			tmp[0] = sbox[tmp[0]]
			tmp[1] = sbox[tmp[1]]
			tmp[2] = sbox[tmp[2]]
			tmp[3] = sbox[tmp[3]]
			tmp[0] ^= powx[i/nk-1]
		} else if nk > 6 && i%nk == 4 {
			// AES-256 only: SubWord without rotation or round constant
			tmp[0] = sbox[tmp[0]]
			tmp[1] = sbox[tmp[1]]
			tmp[2] = sbox[tmp[2]]
			tmp[3] = sbox[tmp[3]]
		}

		j := (i - nk) * 4
		roundKey[i*4+0] = roundKey[j+0] ^ tmp[0]
		roundKey[i*4+1] = roundKey[j+1] ^ tmp[1]
		roundKey[i*4+2] = roundKey[j+2] ^ tmp[2]
		roundKey[i*4+3] = roundKey[j+3] ^ tmp[3]
	}
}
