// Package cyfn implements the AES/Rijndael block cipher from first
// principles, with runtime key-size selection (128/192/256) and the ECB, CBC
// and CTR modes of operation.
//
// Outputs are verified against the FIPS-197 and NIST SP 800-38A test
// vectors. The package deliberately stops at the raw primitive: no padding,
// no authentication, no key management.
package cyfn

import (
	"fmt"

	"github.com/scribblefs/cyfn/types"
)

// Context holds the expanded round keys for one key plus the chaining value
// consumed by the streaming modes. Build one with NewContext or
// NewContextWithIV; the schedule is immutable afterwards.
//
// A Context is not safe for concurrent use: CBC and CTR advance the chaining
// value in place, so concurrent mode calls on one context are a data race.
// Use one context per stream, or serialize calls.
type Context struct {
	roundKey [maxScheduleSize]byte
	iv       types.Block
	variant  Variant
	hasIV    bool
}

// NewContext expands key into a fresh context. The variant follows from the
// key length. ECB is usable immediately; CBC and CTR additionally need an IV
// via NewContextWithIV or SetIV.
func NewContext(key []byte) (*Context, error) {
	v, err := VariantForKey(key)
	if err != nil {
		return nil, err
	}

	ctx := &Context{variant: v}
	expandKey(ctx.roundKey[:v.scheduleSize()], key, v)
	return ctx, nil
}

// NewContextWithIV expands key and installs the initial chaining value.
func NewContextWithIV(key, iv []byte) (*Context, error) {
	ctx, err := NewContext(key)
	if err != nil {
		return nil, err
	}
	if err = ctx.SetIV(iv); err != nil {
		return nil, err
	}
	return ctx, nil
}

// SetIV replaces the chaining value: the initialization vector for CBC, the
// initial counter for CTR. A (key, IV) pair must never be reused for
// encryption; the engine does not detect reuse, it only sizes the IV.
func (ctx *Context) SetIV(iv []byte) error {
	if len(iv) != BlockSize {
		return fmt.Errorf("%w: %d bytes", ErrIVSize, len(iv))
	}
	copy(ctx.iv[:], iv)
	ctx.hasIV = true
	return nil
}

// Variant reports the key size this context was built for.
func (ctx *Context) Variant() Variant {
	return ctx.variant
}

// IV returns the current chaining value. After streaming calls it reflects
// the advanced state, not the value originally set.
func (ctx *Context) IV() types.Block {
	return ctx.iv
}

func (ctx *Context) schedule() []byte {
	return ctx.roundKey[:ctx.variant.scheduleSize()]
}
