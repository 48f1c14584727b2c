package main

import (
	"fmt"
	"os"

	"github.com/dylandreimerink/gomsp430/msp430"
	"github.com/spf13/cobra"
)

var flagOutput string

func asmCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "asm {assembly file}",
		Short: "Assemble jump instructions into a little-endian MSP430 binary",
		Args:  cobra.ExactArgs(1),
		RunE:  assemble,
	}

	f := c.Flags()
	f.StringVarP(&flagOutput, "output", "o", "", "Path of the binary to write, hex words are printed if not set")

	return c
}

func assemble(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open assembly: %w", err)
	}
	defer file.Close()

	insts, err := msp430.AssemblyToInstructions(args[0], file)
	if err != nil {
		return err
	}

	if flagOutput == "" {
		raw, err := msp430.Encode(insts)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, r := range raw {
			fmt.Fprintf(out, "%04x\n", uint16(r))
		}

		return nil
	}

	b, err := msp430.EncodeBytes(insts)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	err = os.WriteFile(flagOutput, b, 0644)
	if err != nil {
		return fmt.Errorf("write binary: %w", err)
	}

	printlnVerbose(cmd.ErrOrStderr(), "Wrote", len(b), "bytes to", flagOutput)

	return nil
}
