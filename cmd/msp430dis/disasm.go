package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dylandreimerink/gomsp430/msp430"
	"github.com/spf13/cobra"
)

var (
	flagBase    uint16
	flagTargets bool
)

func disasmCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "disasm {binary file}",
		Short: "Print a listing of a little-endian MSP430 binary",
		Args:  cobra.ExactArgs(1),
		RunE:  disassemble,
	}

	f := c.Flags()
	f.Uint16Var(&flagBase, "base", 0xC000, "Address of the first word in the binary")
	f.BoolVar(&flagTargets, "targets", false, "Append the absolute target address to every jump")

	return c
}

func disassemble(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	contents, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read binary: %w", err)
	}

	insts, err := msp430.DecodeBytes(contents)
	if err != nil {
		return fmt.Errorf("decode '%s': %w", args[0], err)
	}

	printlnVerbose(cmd.ErrOrStderr(), "Decoded", len(insts), "words from", args[0])

	out := cmd.OutOrStdout()
	for i, inst := range insts {
		addr := flagBase + uint16(i*2)
		fmt.Fprintln(out, listingLine(addr, inst, flagTargets))
	}

	return nil
}

// listingLine renders "addr: word  instruction" with an optional jump target comment
func listingLine(addr uint16, inst msp430.Instruction, targets bool) string {
	raw, err := inst.Raw()
	if err != nil {
		// decoded instructions always fit, this only happens for hand built ones
		return fmt.Sprintf("%04x: ????  %s", addr, inst)
	}

	line := fmt.Sprintf("%04x: %04x  %s", addr, uint16(raw), inst)
	if jxx, ok := inst.(msp430.Jxx); ok && targets {
		line += fmt.Sprintf(" ; -> 0x%04x", msp430.Target(jxx, addr))
	}

	return line
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode {hex word}...",
		Short: "Decode and print individual instruction words",
		Args:  cobra.MinimumNArgs(1),
		RunE:  decodeWords,
	}
}

func decodeWords(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	out := cmd.OutOrStdout()
	for _, arg := range args {
		word, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(arg), "0x"), 16, 16)
		if err != nil {
			return fmt.Errorf("'%s' is not a 16-bit hex word: %w", arg, err)
		}

		fmt.Fprintln(out, msp430.DecodeWord(msp430.RawInstruction(word)))
	}

	return nil
}
