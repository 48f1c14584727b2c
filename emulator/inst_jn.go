package emulator

import (
	"github.com/dylandreimerink/gomsp430/msp430"
)

var _ Instruction = (*Jn)(nil)

type Jn struct {
	msp430.Jn
}

func (i *Jn) Clone() Instruction {
	c := *i
	return &c
}

func (i *Jn) Execute(vm *VM) error {
	if vm.Registers.SR.Has(FlagN) {
		jump(vm, i.Jn)
	}

	return nil
}
