package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	golay "github.com/Venemo/golay-fast"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "golay",
		Short:         "Systematic Golay(24, 12, 8) encoder and decoder",
		Version:       golay.PackageID,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newCheckCmd(),
		newBitsCmd(),
		newSweepCmd(),
	)
	return root
}

// parseWord parses a decimal, 0x hexadecimal or 0b binary number of at most
// the given number of bits.
func parseWord(s string, width int) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid value %q", s)
	}
	if v >= 1<<uint(width) {
		return 0, errors.Errorf("value %q exceeds %d bits", s, width)
	}
	return uint32(v), nil
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrln("golay:", err)
		os.Exit(1)
	}
}
