package types

import (
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

// BlockSize is the width of one cipher block in bytes.
const BlockSize = 16

// Block is one 16-byte cipher block. It doubles as the chaining value of the
// streaming modes: an initialization vector for CBC, a counter for CTR.
//
//nolint:recvcheck
type Block [BlockSize]byte

var ZeroBlock Block

func (b Block) MarshalJSON() ([]byte, error) {
	var buf [BlockSize*2 + 2]byte
	buf[0] = '"'
	buf[BlockSize*2+1] = '"'
	fasthex.Encode(buf[1:], b[:])
	return buf[:], nil
}

func MustBlockFromString(s string) Block {
	if b, err := BlockFromString(s); err != nil {
		panic(err)
	} else {
		return b
	}
}

func BlockFromString(s string) (Block, error) {
	var b Block
	if buf, err := fasthex.DecodeString(s); err != nil {
		return b, err
	} else {
		if len(buf) != BlockSize {
			return b, errors.New("wrong size")
		}
		copy(b[:], buf)
		return b, nil
	}
}

func BlockFromBytes(buf []byte) (b Block) {
	if len(buf) != BlockSize {
		return
	}
	copy(b[:], buf)
	return
}

func (b Block) Slice() []byte {
	return b[:]
}

func (b Block) String() string {
	return fasthex.EncodeToString(b[:])
}

func (b *Block) UnmarshalJSON(buf []byte) error {
	if len(buf) == 0 || len(buf) == 2 {
		return nil
	}

	if len(buf) != BlockSize*2+2 {
		return errors.New("wrong block size")
	}

	if _, err := fasthex.Decode(b[:], buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}

//nolint:recvcheck
type Bytes []byte

func MustBytesFromString(s string) Bytes {
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return buf
}

func (b Bytes) MarshalJSON() ([]byte, error) {
	buf := make([]byte, len(b)*2+2)
	buf[0] = '"'
	buf[len(buf)-1] = '"'
	fasthex.Encode(buf[1:], b)
	return buf, nil
}

func (b Bytes) String() string {
	return fasthex.EncodeToString(b)
}

func (b *Bytes) UnmarshalJSON(buf []byte) error {
	if len(buf) < 2 || (len(buf)%2) != 0 || buf[0] != '"' || buf[len(buf)-1] != '"' {
		return errors.New("invalid bytes")
	}

	*b = make(Bytes, (len(buf)-2)/2)

	if _, err := fasthex.Decode(*b, buf[1:len(buf)-1]); err != nil {
		return err
	}

	return nil
}
