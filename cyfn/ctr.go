package cyfn

import (
	"lukechampine.com/uint128"

	"github.com/scribblefs/cyfn/types"
)

// XcryptCTR applies the CTR keystream to buf in place. Encryption and
// decryption are the same operation and buf may be any length.
//
// The chaining value is the counter: each keystream block is the counter
// ciphered under the context key, after which the counter increments as a
// big-endian 128-bit integer, wrapping at 2^128. Partial keystream blocks
// are discarded between calls. A (key, counter) pair must never repeat; the
// engine does not detect reuse.
func (ctx *Context) XcryptCTR(buf []byte) error {
	if !ctx.hasIV {
		return ErrNoIV
	}

	roundKey := ctx.schedule()
	nr := ctx.variant.Rounds()

	var keystream types.Block
	bi := BlockSize
	for i := range buf {
		if bi == BlockSize {
			keystream = ctx.iv
			cipher(keystream[:], roundKey, nr)

			ctr := uint128.FromBytesBE(ctx.iv[:]).AddWrap64(1)
			ctr.PutBytesBE(ctx.iv[:])
			bi = 0
		}
		buf[i] ^= keystream[bi]
		bi++
	}
	return nil
}
