package msp430

import (
	"encoding/binary"
	"fmt"
)

// DecodeWord decodes a single instruction word. Jump instructions are returned as their Jxx type, all other words
// are returned as a Word since this package only interprets the jump format.
func DecodeWord(raw RawInstruction) Instruction {
	if raw&JumpOpcodeMask != JumpOpcode {
		return Word(raw)
	}

	cond := Condition((raw & JumpConditionMask) >> jumpConditionShift)
	off := FixJumpOffset(uint16(raw & JumpOffsetMask))

	// The condition is masked to 3 bits, so it is always valid
	inst, _ := NewJump(cond, off)
	return inst
}

// Decode decodes a slice of raw instructions into interpreted instructions
func Decode(rawIns []RawInstruction) []Instruction {
	instructions := make([]Instruction, 0, len(rawIns))
	for _, raw := range rawIns {
		instructions = append(instructions, DecodeWord(raw))
	}

	return instructions
}

// DecodeBytes decodes little-endian program memory into instructions
func DecodeBytes(b []byte) ([]Instruction, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("%d bytes: %w", len(b), ErrOddLength)
	}

	rawIns := make([]RawInstruction, len(b)/2)
	for i := range rawIns {
		rawIns[i] = RawInstruction(binary.LittleEndian.Uint16(b[i*2:]))
	}

	return Decode(rawIns), nil
}
