package emulator

import (
	"github.com/dylandreimerink/gomsp430/msp430"
)

var _ Instruction = (*Jnz)(nil)

type Jnz struct {
	msp430.Jnz
}

func (i *Jnz) Clone() Instruction {
	c := *i
	return &c
}

func (i *Jnz) Execute(vm *VM) error {
	if !vm.Registers.SR.Has(FlagZ) {
		jump(vm, i.Jnz)
	}

	return nil
}
