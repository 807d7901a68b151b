package main

import (
	"fmt"
	"math/bits"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	golay "github.com/Venemo/golay-fast"
	"github.com/Venemo/golay-fast/bit"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <message>...",
		Short: "Encode 12-bit messages to 24-bit codewords",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				message, err := parseWord(arg, 12)
				if err != nil {
					return err
				}
				codeword := golay.Encode(uint16(message))
				fmt.Fprintf(cmd.OutOrStdout(), "%03x -> %06x %s\n", message, codeword, bit.Format(codeword, 24, " "))
			}
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <codeword>...",
		Short: "Decode 24-bit codewords, correcting up to 3 bit errors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int
			for _, arg := range args {
				codeword, err := parseWord(arg, 24)
				if err != nil {
					return err
				}
				message, err := golay.DecodeChecked(codeword)
				if err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%06x -> uncorrectable\n", codeword)
					failed++
					continue
				}
				corrected := codeword ^ golay.Encode(message)
				fmt.Fprintf(cmd.OutOrStdout(), "%06x -> %03x (%d bits corrected)\n", codeword, message, bits.OnesCount32(corrected))
			}
			if failed > 0 {
				return errors.Wrapf(golay.ErrUncorrectable, "%d of %d codewords", failed, len(args))
			}
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <codeword>...",
		Short: "Check codewords without correcting them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var invalid int
			for _, arg := range args {
				codeword, err := parseWord(arg, 24)
				if err != nil {
					return err
				}
				if err := golay.Check(codeword); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%06x: %v\n", codeword, err)
					invalid++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%06x: ok\n", codeword)
			}
			if invalid > 0 {
				return errors.Errorf("%d of %d codewords invalid", invalid, len(args))
			}
			return nil
		},
	}
}
