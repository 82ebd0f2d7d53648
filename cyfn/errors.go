package cyfn

import "errors"

var (
	// ErrKeySize is returned when a key is not 16, 24 or 32 bytes.
	ErrKeySize = errors.New("invalid key size")
	// ErrIVSize is returned when an IV or counter is not one block wide.
	ErrIVSize = errors.New("invalid iv size")
	// ErrBlockSize is returned when an input buffer is not block aligned.
	ErrBlockSize = errors.New("input is not block aligned")
	// ErrNoIV is returned when a chaining mode runs on a context whose IV or
	// counter was never set.
	ErrNoIV = errors.New("iv not set")
)
