package cyfn

import "fmt"

// BlockSize is the cipher block size in bytes, fixed for every variant.
const BlockSize = 16

// nb is the block width in 4-byte words.
const nb = 4

// maxScheduleSize is the AES-256 expanded key size. Smaller variants use a
// prefix of the schedule buffer.
const maxScheduleSize = nb * (14 + 1) * 4

// Variant selects the AES key size. The round count and the expanded key
// schedule size follow from it; the block size does not change.
type Variant int

const (
	AES128 Variant = iota
	AES192
	AES256
)

func (v Variant) String() string {
	switch v {
	case AES128:
		return "AES-128"
	case AES192:
		return "AES-192"
	case AES256:
		return "AES-256"
	default:
		return fmt.Sprintf("unknown variant %d", int(v))
	}
}

// KeySize returns the raw key length in bytes.
func (v Variant) KeySize() int {
	switch v {
	case AES192:
		return 24
	case AES256:
		return 32
	default:
		return 16
	}
}

// nk is the key length in 4-byte words.
func (v Variant) nk() int {
	return v.KeySize() / 4
}

// Rounds returns the round count Nr.
func (v Variant) Rounds() int {
	switch v {
	case AES192:
		return 12
	case AES256:
		return 14
	default:
		return 10
	}
}

// scheduleSize is the expanded key schedule length in bytes: one block per
// round plus the initial whitening key.
func (v Variant) scheduleSize() int {
	return nb * (v.Rounds() + 1) * 4
}

// VariantForKey maps a raw key length to its variant. A schedule is only
// ever built for the variant matching the key that produced it, so mixing
// key sizes within one context cannot happen.
func VariantForKey(key []byte) (Variant, error) {
	switch len(key) {
	case 16:
		return AES128, nil
	case 24:
		return AES192, nil
	case 32:
		return AES256, nil
	default:
		return 0, fmt.Errorf("%w: %d bytes", ErrKeySize, len(key))
	}
}
