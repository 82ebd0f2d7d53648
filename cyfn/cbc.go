package cyfn

import (
	"fmt"

	"github.com/scribblefs/cyfn/types"
)

// EncryptCBC ciphers buf in place in CBC mode. len(buf) must be a multiple
// of BlockSize; the engine performs no padding. The chaining value persists
// across calls, so a long stream may be fed in several block-aligned pieces
// and matches a single whole-buffer call.
func (ctx *Context) EncryptCBC(buf []byte) error {
	if !ctx.hasIV {
		return ErrNoIV
	}
	if len(buf)%BlockSize != 0 {
		return fmt.Errorf("%w: got %d bytes", ErrBlockSize, len(buf))
	}

	roundKey := ctx.schedule()
	nr := ctx.variant.Rounds()

	for i := 0; i < len(buf); i += BlockSize {
		block := buf[i : i+BlockSize]
		for j := range ctx.iv {
			block[j] ^= ctx.iv[j]
		}
		cipher(block, roundKey, nr)
		copy(ctx.iv[:], block)
	}
	return nil
}

// DecryptCBC deciphers buf in place in CBC mode under the same length and
// chaining rules as EncryptCBC.
func (ctx *Context) DecryptCBC(buf []byte) error {
	if !ctx.hasIV {
		return ErrNoIV
	}
	if len(buf)%BlockSize != 0 {
		return fmt.Errorf("%w: got %d bytes", ErrBlockSize, len(buf))
	}

	roundKey := ctx.schedule()
	nr := ctx.variant.Rounds()

	// the next chaining value is this ciphertext block, saved before the
	// in-place transform destroys it
	var saved types.Block
	for i := 0; i < len(buf); i += BlockSize {
		block := buf[i : i+BlockSize]
		copy(saved[:], block)
		invCipher(block, roundKey, nr)
		for j := range ctx.iv {
			block[j] ^= ctx.iv[j]
		}
		ctx.iv = saved
	}
	return nil
}
