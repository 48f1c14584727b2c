package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "msp430dis",
		Short: "Disassemble, assemble and emulate MSP430 jump instructions",
	}

	c.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Output extra information")

	c.AddCommand(
		disasmCmd(),
		decodeCmd(),
		asmCmd(),
		emulateCmd(),
	)

	return c
}

var flagVerbose bool

func printlnVerbose(out io.Writer, args ...interface{}) {
	if !flagVerbose {
		return
	}

	fmt.Fprintln(out, args...)
}
