package emulator

import (
	"github.com/dylandreimerink/gomsp430/msp430"
)

var _ Instruction = (*Jc)(nil)

type Jc struct {
	msp430.Jc
}

func (i *Jc) Clone() Instruction {
	c := *i
	return &c
}

func (i *Jc) Execute(vm *VM) error {
	if vm.Registers.SR.Has(FlagC) {
		jump(vm, i.Jc)
	}

	return nil
}
