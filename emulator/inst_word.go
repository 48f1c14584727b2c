package emulator

import (
	"errors"

	"github.com/dylandreimerink/gomsp430/msp430"
)

var _ Instruction = (*Word)(nil)

// Word is an instruction word outside of the jump family, the emulator can't execute it.
type Word struct {
	msp430.Word
}

var errDataWord = errors.New("can't execute non-jump instruction word")

func (i *Word) Clone() Instruction {
	c := *i
	return &c
}

func (i *Word) Execute(vm *VM) error {
	return errDataWord
}
