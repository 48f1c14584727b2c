package emulator

import (
	"github.com/dylandreimerink/gomsp430/msp430"
)

var _ Instruction = (*Jmp)(nil)

type Jmp struct {
	msp430.Jmp
}

func (i *Jmp) Clone() Instruction {
	c := *i
	return &c
}

func (i *Jmp) Execute(vm *VM) error {
	jump(vm, i.Jmp)
	return nil
}
