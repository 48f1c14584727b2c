package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dylandreimerink/gomsp430/emulator"
	"github.com/dylandreimerink/gomsp430/msp430"
	"github.com/spf13/cobra"
)

var (
	flagEmuBase  uint16
	flagSR       string
	flagMaxSteps int
)

func emulateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "emulate {binary file}",
		Short: "Follow the jumps of a little-endian MSP430 binary for a fixed set of status flags",
		Args:  cobra.ExactArgs(1),
		RunE:  emulate,
	}

	defaults := emulator.DefaultVMSettings()

	f := c.Flags()
	f.Uint16Var(&flagEmuBase, "base", defaults.BaseAddress, "Address of the first word in the binary")
	f.StringVar(&flagSR, "sr", "", "Status flags which are set, any of: c, z, n, v")
	f.IntVar(&flagMaxSteps, "max-steps", defaults.MaxSteps, "Maximum number of instructions to execute, 0 for no limit")

	return c
}

func emulate(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	sr, err := emulator.ParseStatusRegister(flagSR)
	if err != nil {
		return err
	}

	contents, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read binary: %w", err)
	}

	insts, err := msp430.DecodeBytes(contents)
	if err != nil {
		return fmt.Errorf("decode '%s': %w", args[0], err)
	}

	vm, err := emulator.NewVM(emulator.VMSettings{
		BaseAddress: flagEmuBase,
		InitialSR:   sr,
		MaxSteps:    flagMaxSteps,
	})
	if err != nil {
		return fmt.Errorf("new vm: %w", err)
	}

	if err = vm.AddProgram(insts); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	out := cmd.OutOrStdout()
	if flagVerbose {
		vm.Trace = out
	}

	err = vm.RunContext(ctx)

	var vmErr *emulator.VMError
	if errors.As(err, &vmErr) {
		fmt.Fprint(out, vmErr.VMSnapshot.String())
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprint(out, vm.String())

	return nil
}
