package emulator

import (
	"github.com/dylandreimerink/gomsp430/msp430"
)

var _ Instruction = (*Jl)(nil)

type Jl struct {
	msp430.Jl
}

func (i *Jl) Clone() Instruction {
	c := *i
	return &c
}

func (i *Jl) Execute(vm *VM) error {
	if vm.Registers.SR.Has(FlagN) != vm.Registers.SR.Has(FlagV) {
		jump(vm, i.Jl)
	}

	return nil
}
