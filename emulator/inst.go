package emulator

import (
	"fmt"

	"github.com/dylandreimerink/gomsp430/msp430"
)

// Instruction represents an MSP430 instruction, as apposed to the msp430.Instruction interface, these
// instructions can actually be executed by an emulator VM.
type Instruction interface {
	msp430.Instruction

	Clone() Instruction
	Execute(vm *VM) error
}

// Translate translates the instructions of the msp430 package and embeds them into instructions defined
// by the emulator package. The emulator instructions contain the logic to actually execute them.
func Translate(prog []msp430.Instruction) ([]Instruction, error) {
	vmProg := make([]Instruction, len(prog))

	for i, intInst := range prog {
		var newInst Instruction

		switch inst := intInst.(type) {
		case msp430.Jnz:
			newInst = &Jnz{Jnz: inst}
		case msp430.Jz:
			newInst = &Jz{Jz: inst}
		case msp430.Jlo:
			newInst = &Jlo{Jlo: inst}
		case msp430.Jc:
			newInst = &Jc{Jc: inst}
		case msp430.Jn:
			newInst = &Jn{Jn: inst}
		case msp430.Jge:
			newInst = &Jge{Jge: inst}
		case msp430.Jl:
			newInst = &Jl{Jl: inst}
		case msp430.Jmp:
			newInst = &Jmp{Jmp: inst}
		case msp430.Word:
			newInst = &Word{Word: inst}
		default:
			return nil, fmt.Errorf("can't translate instruction at %d of type %T", i, inst)
		}

		vmProg[i] = newInst
	}

	return vmProg, nil
}

// jump moves the program counter by the offset of the instruction, the VM adds the inherent +1 after execution
func jump(vm *VM, j msp430.Jxx) {
	vm.Registers.PC += int(j.Offset())
}
