package cyfn_test

import (
	"bytes"
	"crypto/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scribblefs/cyfn/cyfn"
	"github.com/scribblefs/cyfn/types"
	"github.com/scribblefs/cyfn/utils"
)

type modeVector struct {
	Name       string      `json:"name"`
	Mode       string      `json:"mode"`
	Key        types.Bytes `json:"key"`
	IV         types.Bytes `json:"iv,omitempty"`
	Plaintext  types.Bytes `json:"plaintext"`
	Ciphertext types.Bytes `json:"ciphertext"`
}

func loadModeVectors(t *testing.T) []modeVector {
	t.Helper()
	buf, err := os.ReadFile("testdata/nist_sp800_38a.json")
	require.NoError(t, err)

	var vectors []modeVector
	require.NoError(t, utils.UnmarshalJSON(buf, &vectors))
	require.NotEmpty(t, vectors)
	return vectors
}

// TestModeVectors checks all three modes at all three key sizes against the
// NIST SP 800-38A multi-block examples, in both directions.
func TestModeVectors(t *testing.T) {
	for _, v := range loadModeVectors(t) {
		t.Run(v.Name, func(t *testing.T) {
			encrypt := func() *cyfn.Context {
				var ctx *cyfn.Context
				var err error
				if v.IV == nil {
					ctx, err = cyfn.NewContext(v.Key)
				} else {
					ctx, err = cyfn.NewContextWithIV(v.Key, v.IV)
				}
				require.NoError(t, err)
				return ctx
			}

			buf := bytes.Clone(v.Plaintext)
			ctx := encrypt()
			switch v.Mode {
			case "ecb":
				for i := 0; i < len(buf); i += cyfn.BlockSize {
					require.NoError(t, ctx.EncryptECB(buf[i:i+cyfn.BlockSize]))
				}
			case "cbc":
				require.NoError(t, ctx.EncryptCBC(buf))
			case "ctr":
				require.NoError(t, ctx.XcryptCTR(buf))
			default:
				t.Fatalf("unknown mode %q", v.Mode)
			}
			require.Equal(t, v.Ciphertext.String(), types.Bytes(buf).String())

			ctx = encrypt()
			switch v.Mode {
			case "ecb":
				for i := 0; i < len(buf); i += cyfn.BlockSize {
					require.NoError(t, ctx.DecryptECB(buf[i:i+cyfn.BlockSize]))
				}
			case "cbc":
				require.NoError(t, ctx.DecryptCBC(buf))
			case "ctr":
				require.NoError(t, ctx.XcryptCTR(buf))
			}
			require.Equal(t, v.Plaintext.String(), types.Bytes(buf).String())
		})
	}
}

func TestCBCRoundTrip(t *testing.T) {
	for _, keySize := range []int{16, 24, 32} {
		key := make([]byte, keySize)
		iv := make([]byte, cyfn.BlockSize)
		plaintext := make([]byte, 8*cyfn.BlockSize)
		_, err := rand.Read(key)
		require.NoError(t, err)
		_, err = rand.Read(iv)
		require.NoError(t, err)
		_, err = rand.Read(plaintext)
		require.NoError(t, err)

		buf := bytes.Clone(plaintext)
		enc, err := cyfn.NewContextWithIV(key, iv)
		require.NoError(t, err)
		require.NoError(t, enc.EncryptCBC(buf))
		require.NotEqual(t, plaintext, buf)

		dec, err := cyfn.NewContextWithIV(key, iv)
		require.NoError(t, err)
		require.NoError(t, dec.DecryptCBC(buf))
		require.Equal(t, plaintext, buf)
	}
}

// TestCBCStreaming feeds a stream in block-aligned pieces and expects the
// same output as a single whole-buffer call: the chaining value persists on
// the context between calls.
func TestCBCStreaming(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, cyfn.BlockSize)
	plaintext := make([]byte, 6*cyfn.BlockSize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	_, err = rand.Read(iv)
	require.NoError(t, err)
	_, err = rand.Read(plaintext)
	require.NoError(t, err)

	whole := bytes.Clone(plaintext)
	ctx, err := cyfn.NewContextWithIV(key, iv)
	require.NoError(t, err)
	require.NoError(t, ctx.EncryptCBC(whole))

	pieces := bytes.Clone(plaintext)
	ctx, err = cyfn.NewContextWithIV(key, iv)
	require.NoError(t, err)
	require.NoError(t, ctx.EncryptCBC(pieces[:2*cyfn.BlockSize]))
	require.NoError(t, ctx.EncryptCBC(pieces[2*cyfn.BlockSize:]))

	require.Equal(t, whole, pieces)
}

// TestCTRSymmetry applies the keystream twice with the counter reset in
// between, which must return the original buffer. The length is deliberately
// not block aligned.
func TestCTRSymmetry(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, cyfn.BlockSize)
	plaintext := make([]byte, 3*cyfn.BlockSize+7)
	_, err := rand.Read(key)
	require.NoError(t, err)
	_, err = rand.Read(iv)
	require.NoError(t, err)
	_, err = rand.Read(plaintext)
	require.NoError(t, err)

	buf := bytes.Clone(plaintext)
	ctx, err := cyfn.NewContextWithIV(key, iv)
	require.NoError(t, err)
	require.NoError(t, ctx.XcryptCTR(buf))
	require.NotEqual(t, plaintext, buf)

	require.NoError(t, ctx.SetIV(iv))
	require.NoError(t, ctx.XcryptCTR(buf))
	require.Equal(t, plaintext, buf)
}

// TestCTRCounterWrap increments an all-0xFF counter and expects the carry to
// propagate through every byte, wrapping to all zero.
func TestCTRCounterWrap(t *testing.T) {
	key := make([]byte, 16)
	_, err := rand.Read(key)
	require.NoError(t, err)

	iv := bytes.Repeat([]byte{0xff}, cyfn.BlockSize)
	ctx, err := cyfn.NewContextWithIV(key, iv)
	require.NoError(t, err)

	buf := make([]byte, cyfn.BlockSize)
	require.NoError(t, ctx.XcryptCTR(buf))
	require.Equal(t, types.ZeroBlock, ctx.IV())

	require.NoError(t, ctx.XcryptCTR(buf))
	want := types.Block{}
	want[cyfn.BlockSize-1] = 1
	require.Equal(t, want, ctx.IV())
}

func TestECBKnownBlock(t *testing.T) {
	// single-block example quoted throughout SP 800-38A
	key := types.MustBytesFromString("2b7e151628aed2a6abf7158809cf4f3c")
	block := types.MustBytesFromString("6bc1bee22e409f96e93d7e117393172a")

	ctx, err := cyfn.NewContext(key)
	require.NoError(t, err)
	require.Equal(t, cyfn.AES128, ctx.Variant())

	require.NoError(t, ctx.EncryptECB(block))
	require.Equal(t, "3ad77bb40d7a3660a89ecaf32466ef97", block.String())

	require.NoError(t, ctx.DecryptECB(block))
	require.Equal(t, "6bc1bee22e409f96e93d7e117393172a", block.String())
}

func BenchmarkXcryptCTR(b *testing.B) {
	key := make([]byte, 32)
	iv := make([]byte, cyfn.BlockSize)
	ctx, err := cyfn.NewContextWithIV(key, iv)
	if err != nil {
		b.Fatal(err)
	}

	buf := make([]byte, 64*1024)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ctx.XcryptCTR(buf)
	}
}
