package emulator

import (
	"github.com/dylandreimerink/gomsp430/msp430"
)

var _ Instruction = (*Jlo)(nil)

type Jlo struct {
	msp430.Jlo
}

func (i *Jlo) Clone() Instruction {
	c := *i
	return &c
}

func (i *Jlo) Execute(vm *VM) error {
	if !vm.Registers.SR.Has(FlagC) {
		jump(vm, i.Jlo)
	}

	return nil
}
