package emulator

import (
	"github.com/dylandreimerink/gomsp430/msp430"
)

var _ Instruction = (*Jge)(nil)

type Jge struct {
	msp430.Jge
}

func (i *Jge) Clone() Instruction {
	c := *i
	return &c
}

func (i *Jge) Execute(vm *VM) error {
	if vm.Registers.SR.Has(FlagN) == vm.Registers.SR.Has(FlagV) {
		jump(vm, i.Jge)
	}

	return nil
}
