package cyfn

import "fmt"

// EncryptECB ciphers exactly one block in place. ECB applies no chaining and
// no padding; identical plaintext blocks produce identical ciphertext blocks.
func (ctx *Context) EncryptECB(block []byte) error {
	if len(block) != BlockSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBlockSize, len(block), BlockSize)
	}
	cipher(block, ctx.schedule(), ctx.variant.Rounds())
	return nil
}

// DecryptECB deciphers exactly one block in place.
func (ctx *Context) DecryptECB(block []byte) error {
	if len(block) != BlockSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrBlockSize, len(block), BlockSize)
	}
	invCipher(block, ctx.schedule(), ctx.variant.Rounds())
	return nil
}
