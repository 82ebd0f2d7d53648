package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	fasthex "github.com/tmthrgd/go-hex"
	"golang.org/x/sync/errgroup"

	"github.com/scribblefs/cyfn/cyfn"
	"github.com/scribblefs/cyfn/utils"
)

var (
	flagKey      string
	flagMode     string
	flagParallel int
	flagExt      string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "cyfn",
	Short: "Encrypt or decrypt files with the cyfn AES engine",
	Long: `cyfn encrypts and decrypts files with a from-scratch AES implementation
in CTR or CBC mode. The key size (128/192/256) follows from the key length.

A fresh random IV is generated per file on encryption and stored as the
first block of the output. CBC input must be block aligned; the tool does
not pad. CTR handles any length.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			utils.GlobalLogLevel |= utils.LogLevelDebug
		}
	},
}

var encryptCmd = &cobra.Command{
	Use:     "encrypt [flags] files...",
	Aliases: []string{"enc"},
	Short:   "Encrypt files",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return processFiles(args, false)
	},
}

var decryptCmd = &cobra.Command{
	Use:     "decrypt [flags] files...",
	Aliases: []string{"dec"},
	Short:   "Decrypt files",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return processFiles(args, true)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagKey, "key", "k", "", "Key, hex encoded (16, 24 or 32 bytes)")
	rootCmd.PersistentFlags().StringVarP(&flagMode, "mode", "m", "ctr", "Mode of operation: ctr or cbc")
	rootCmd.PersistentFlags().IntVarP(&flagParallel, "parallel", "j", runtime.NumCPU(), "Number of files processed in parallel")
	rootCmd.PersistentFlags().StringVar(&flagExt, "ext", ".cyfn", "Suffix appended to encrypted files")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug output")
	_ = rootCmd.MarkPersistentFlagRequired("key")

	rootCmd.AddCommand(encryptCmd, decryptCmd)
}

func processFiles(files []string, decrypt bool) error {
	key, err := fasthex.DecodeString(flagKey)
	if err != nil {
		return fmt.Errorf("decoding key: %w", err)
	}
	if flagMode != "ctr" && flagMode != "cbc" {
		return fmt.Errorf("unknown mode %q", flagMode)
	}

	// contexts are single-stream, so each file gets its own
	var g errgroup.Group
	g.SetLimit(flagParallel)
	for _, name := range files {
		name := name
		g.Go(func() error {
			if err := processFile(name, key, decrypt); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func processFile(name string, key []byte, decrypt bool) error {
	buf, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	var iv, payload []byte
	if decrypt {
		if len(buf) < cyfn.BlockSize {
			return fmt.Errorf("file shorter than the leading iv block")
		}
		iv, payload = buf[:cyfn.BlockSize], buf[cyfn.BlockSize:]
	} else {
		iv = make([]byte, cyfn.BlockSize)
		if _, err = rand.Read(iv); err != nil {
			return err
		}
		payload = buf
	}

	ctx, err := cyfn.NewContextWithIV(key, iv)
	if err != nil {
		return err
	}
	utils.Debugf("cyfn", "%s: %s %s, iv %s", name, ctx.Variant(), flagMode, fasthex.EncodeToString(iv))

	switch {
	case flagMode == "ctr":
		err = ctx.XcryptCTR(payload)
	case decrypt:
		err = ctx.DecryptCBC(payload)
	default:
		err = ctx.EncryptCBC(payload)
	}
	if err != nil {
		return err
	}

	var out string
	if decrypt {
		out = strings.TrimSuffix(name, flagExt)
		if out == name {
			out = name + ".plain"
		}
	} else {
		out = name + flagExt
		payload = append(iv, payload...)
	}

	if err = os.WriteFile(out, payload, 0o600); err != nil {
		return err
	}
	utils.Logf("cyfn", "%s -> %s", name, out)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		utils.Error(err)
		os.Exit(1)
	}
}
