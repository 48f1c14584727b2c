package emulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dylandreimerink/gomsp430/msp430"
)

// VM is a virtual machine which can follow the control flow of MSP430 jump code.
type VM struct {
	settings VMSettings

	Registers Registers
	// Number of instructions executed since the last reset
	Steps int

	Program []Instruction

	// If set, every instruction is written to Trace with its address before it is executed
	Trace io.Writer
}

var errOddBaseAddress = errors.New("base address must be word aligned")

func NewVM(settings VMSettings) (*VM, error) {
	if settings.BaseAddress%2 != 0 {
		return nil, fmt.Errorf("%#04x: %w", settings.BaseAddress, errOddBaseAddress)
	}
	if settings.MaxSteps < 0 {
		return nil, fmt.Errorf("max steps can't be negative, got %d", settings.MaxSteps)
	}

	vm := &VM{
		settings: settings,
	}

	// Reset will make the VM ready to start execution of a program
	vm.Reset()

	return vm, nil
}

// AddProgram translates the instructions and appends them to the program memory of the VM
func (vm *VM) AddProgram(prog []msp430.Instruction) error {
	vmProg, err := Translate(prog)
	if err != nil {
		return fmt.Errorf("translate: %w", err)
	}

	vm.Program = append(vm.Program, vmProg...)

	return nil
}

func (vm *VM) AddRawProgram(prog []msp430.RawInstruction) error {
	err := vm.AddProgram(msp430.Decode(prog))
	if err != nil {
		return fmt.Errorf("add program: %w", err)
	}

	return nil
}

// Address returns the byte address of the instruction at the given index
func (vm *VM) Address(pc int) uint16 {
	return vm.settings.BaseAddress + uint16(pc*2)
}

func (vm *VM) Run() error {
	return vm.RunContext(context.Background())
}

var (
	errInvalidProgramCount = errors.New("program counter points to non-existent instruction, bad jump")
	errStepLimit           = errors.New("step limit reached")
)

func (vm *VM) RunContext(ctx context.Context) error {
	for {
		stop, err := vm.Step()
		if err != nil {
			return err
		}
		if stop {
			break
		}

		// If context was canceled or deadline exceeded, stop execution
		if err = ctx.Err(); err != nil {
			return vm.err(err)
		}
	}

	return nil
}

// Step executes a single instruction, allowing us to "step" through the program. Execution stops without error
// when the program falls through its last instruction or reaches a jump to itself (jmp $), the usual way to halt.
func (vm *VM) Step() (stop bool, err error) {
	if vm.Registers.PC < 0 || vm.Registers.PC >= len(vm.Program) {
		return true, vm.err(errInvalidProgramCount)
	}

	inst := vm.Program[vm.Registers.PC]
	// Store the program count of the current instruction
	pc := vm.Registers.PC
	if vm.Trace != nil {
		fmt.Fprintf(vm.Trace, "%04x: %s\n", vm.Address(pc), inst)
	}

	err = inst.Execute(vm)
	if err != nil {
		return true, vm.err(err)
	}

	// Increment the program counter
	vm.Registers.PC++
	vm.Steps++

	if vm.Registers.PC == pc {
		return true, nil
	}

	if vm.Registers.PC == len(vm.Program) {
		return true, nil
	}

	if vm.Registers.PC < 0 || vm.Registers.PC > len(vm.Program) {
		// reset PC so it points to the offending instruction.
		vm.Registers.PC = pc

		return true, vm.err(errInvalidProgramCount)
	}

	if vm.settings.MaxSteps > 0 && vm.Steps >= vm.settings.MaxSteps {
		return true, vm.err(errStepLimit)
	}

	return false, nil
}

func (vm *VM) err(err error) *VMError {
	return &VMError{
		VMSnapshot: vm.Clone(),
		Original:   err,
	}
}

// Clone clones the whole VM, this includes the current state of the VM. This feature can be used to create snapshots
// of the VM.
func (vm *VM) Clone() *VM {
	clone := &VM{
		settings:  vm.settings,
		Registers: vm.Registers.Clone(),
		Steps:     vm.Steps,
		Program:   make([]Instruction, len(vm.Program)),
	}

	for i := range clone.Program {
		clone.Program[i] = vm.Program[i].Clone()
	}

	return clone
}

func (vm *VM) Reset() {
	vm.Registers.PC = 0
	vm.Registers.SR = vm.settings.InitialSR
	vm.Steps = 0
}

func (vm *VM) String() string {
	var sb strings.Builder
	sb.WriteString("Registers:\n")

	r := vm.Registers
	if r.PC >= 0 && r.PC < len(vm.Program) {
		sb.WriteString(fmt.Sprintf(" PC: %#04x -> %s\n", vm.Address(r.PC), vm.Program[r.PC].String()))
	} else {
		sb.WriteString(fmt.Sprintf(" PC: %#04x\n", vm.Address(r.PC)))
	}
	sb.WriteString(fmt.Sprintf(" SR: %s\n", r.SR))
	sb.WriteString(fmt.Sprintf(" steps: %d\n", vm.Steps))

	return sb.String()
}

// A VMError is thrown by the VM and contain a copy of the state of the VM at the time of the error
type VMError struct {
	VMSnapshot *VM
	Original   error
}

func (e *VMError) Error() string {
	return fmt.Sprintf("vm error: %s", e.Original)
}

func (e *VMError) Unwrap() error {
	return e.Original
}

type VMSettings struct {
	// BaseAddress is the byte address of the first instruction, used when displaying the program counter
	BaseAddress uint16
	// InitialSR is the value of the status register after a reset
	InitialSR StatusRegister
	// MaxSteps is the maximum number of instructions to execute before giving up, 0 means no limit
	MaxSteps int
}

// DefaultVMSettings returns good default settings for the VM, code is loaded at the start of the typical flash
// region and execution is bounded so endless loops are reported.
func DefaultVMSettings() VMSettings {
	return VMSettings{
		BaseAddress: 0xC000,
		MaxSteps:    1 << 16,
	}
}
