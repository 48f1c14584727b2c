package emulator

import (
	"github.com/dylandreimerink/gomsp430/msp430"
)

var _ Instruction = (*Jz)(nil)

type Jz struct {
	msp430.Jz
}

func (i *Jz) Clone() Instruction {
	c := *i
	return &c
}

func (i *Jz) Execute(vm *VM) error {
	if vm.Registers.SR.Has(FlagZ) {
		jump(vm, i.Jz)
	}

	return nil
}
