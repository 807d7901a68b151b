package main

import (
	"crypto/rand"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	golay "github.com/Venemo/golay-fast"
	"github.com/Venemo/golay-fast/bit"
)

func newBitsCmd() *cobra.Command {
	var flip []int
	cmd := &cobra.Command{
		Use:   "bits [codeword]",
		Short: "Show the bit layout of a codeword, or of a random one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var codeword uint32
			if len(args) == 1 {
				var err error
				if codeword, err = parseWord(args[0], 24); err != nil {
					return err
				}
			} else {
				var raw = make([]byte, 2)
				if _, err := rand.Read(raw); err != nil {
					return errors.Wrap(err, "can't read random bits")
				}
				codeword = golay.Encode(uint16(bit.NewBits(raw)[:12].Word()))
			}

			bits := bit.FromWord(codeword, 24)
			for _, pos := range flip {
				if pos < 0 || pos > 23 {
					return errors.Errorf("can't flip bit %d of a 24-bit codeword", pos)
				}
				bits[23-pos].Flip()
			}
			if len(flip) > 0 {
				codeword = bits.Word()
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "codeword = %06x\n", codeword)
			fmt.Fprintf(out, "bytes    = % x\n", bits.Bytes())
			for i, b := range bits {
				half, pos := "data", 23-i-12
				if i >= 12 {
					half, pos = "parity", 23-i
				}
				fmt.Fprintf(out, "bit %2d: %d %-6s %2d\n", 23-i, b, half, pos)
			}
			fmt.Fprintf(out, "data   = %s\n", bits[:12].String())
			fmt.Fprintf(out, "parity = %s\n", bits[12:].String())
			fmt.Fprintf(out, "syndrome = %s\n", bit.FromWord(uint32(golay.Syndrome(codeword)), 12).String())
			if len(flip) > 0 {
				if message := golay.Decode(codeword); message == golay.ErrorResult {
					fmt.Fprintln(out, "decoded  = uncorrectable")
				} else {
					fmt.Fprintf(out, "decoded  = %03x\n", message)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&flip, "flip", nil, "flip these bit positions (0 is the parity LSB) before showing the codeword")
	return cmd
}
