package msp430

import (
	"errors"
	"fmt"
)

// Instruction is any MSP430 instruction this package can render and turn back into a raw word.
type Instruction interface {
	fmt.Stringer
	Size() int
	Raw() (RawInstruction, error)
}

// Jxx is implemented by all relative jump instructions, it gives uniform access to the mnemonic and the
// sign extended offset regardless of the jump condition.
type Jxx interface {
	Instruction
	Mnemonic() string
	Offset() int16
}

// A RawInstruction is a single 16-bit MSP430 instruction word as it is stored in program memory.
type RawInstruction uint16

// JumpSize is the size in bytes of every jump instruction, the offset is part of the instruction word
const JumpSize = 2

const (
	// JumpOpcode is the value of the top 3 bits of every jump instruction
	JumpOpcode RawInstruction = 0x2000
	// JumpOpcodeMask selects the top 3 bits of an instruction word
	JumpOpcodeMask RawInstruction = 0xE000
	// JumpConditionMask selects the 3 condition bits of a jump instruction
	JumpConditionMask RawInstruction = 0x1C00
	// JumpOffsetMask selects the 10-bit offset field of a jump instruction
	JumpOffsetMask RawInstruction = 0x03FF

	jumpConditionShift = 10
)

const (
	// MinJumpOffset is the smallest offset which fits in the 10-bit offset field
	MinJumpOffset = -512
	// MaxJumpOffset is the largest offset which fits in the 10-bit offset field
	MaxJumpOffset = 511
)

// FixJumpOffset sign extends the 10-bit two's complement offset field of a jump instruction. Bit 9 is the sign
// bit, bits 10-15 are expected to be zero but are not checked.
func FixJumpOffset(offset uint16) int16 {
	if offset&0x200 != 0 {
		return int16(offset | 0xFC00)
	}

	return int16(offset)
}

// Condition is the 3-bit condition field of a jump instruction (bits 10-12).
type Condition uint8

const (
	// CondNZ jump if not zero / not equal
	CondNZ Condition = iota
	// CondZ jump if zero / equal
	CondZ
	// CondLO jump if lower (carry clear)
	CondLO
	// CondC jump if carry set / higher or same
	CondC
	// CondN jump if negative
	CondN
	// CondGE jump if greater or equal (signed)
	CondGE
	// CondL jump if less (signed)
	CondL
	// CondAlways jump unconditionally
	CondAlways
	// condMax is an invalid condition, it is used for enumeration over conditions.
	condMax
)

var conditionMnemonics = [...]string{
	CondNZ:     "jnz",
	CondZ:      "jz",
	CondLO:     "jlo",
	CondC:      "jc",
	CondN:      "jn",
	CondGE:     "jge",
	CondL:      "jl",
	CondAlways: "jmp",
}

func (c Condition) String() string {
	if c < condMax {
		return conditionMnemonics[c]
	}

	return "invalid"
}

var (
	// ErrInvalidCondition is returned when a condition outside of the 3-bit field is used
	ErrInvalidCondition = errors.New("invalid jump condition")
	// ErrOffsetRange is returned when encoding a jump whose offset does not fit the 10-bit field
	ErrOffsetRange = errors.New("jump offset out of range")
	// ErrOddLength is returned when decoding a byte slice which does not contain a whole number of words
	ErrOddLength = errors.New("odd number of bytes, instructions are 16-bit words")
)

// NewJump returns the jump instruction for the given condition with the given offset.
func NewJump(cond Condition, offset int16) (Jxx, error) {
	switch cond {
	case CondNZ:
		return NewJnz(offset), nil
	case CondZ:
		return NewJz(offset), nil
	case CondLO:
		return NewJlo(offset), nil
	case CondC:
		return NewJc(offset), nil
	case CondN:
		return NewJn(offset), nil
	case CondGE:
		return NewJge(offset), nil
	case CondL:
		return NewJl(offset), nil
	case CondAlways:
		return NewJmp(offset), nil
	}

	return nil, fmt.Errorf("%w: %d", ErrInvalidCondition, cond)
}

// Target returns the absolute address a jump at addr lands on when taken. The offset counts words relative to
// the address after the jump instruction. The result wraps around the 16-bit address space.
func Target(ins Jxx, addr uint16) uint16 {
	return addr + uint16(ins.Size()) + uint16(ins.Offset())*2
}

// formatJump renders "<mnemonic> #<sign>0x<hex>". The sign and magnitude are formatted separately since %x on
// a negative number in a wider unsigned type would show the two's complement pattern (0xfffa instead of -0x6).
func formatJump(mnemonic string, offset int16) string {
	// widen first, -(-32768) does not fit in an int16
	off := int32(offset)
	if off < 0 {
		return fmt.Sprintf("%s #-%#x", mnemonic, -off)
	}

	return fmt.Sprintf("%s #%#x", mnemonic, off)
}

// encodeJump builds the raw instruction word of a jump with the given condition and offset.
func encodeJump(cond Condition, mnemonic string, offset int16) (RawInstruction, error) {
	if offset < MinJumpOffset || offset > MaxJumpOffset {
		return 0, fmt.Errorf("%s #%d: %w, must be between %d and %d",
			mnemonic, offset, ErrOffsetRange, MinJumpOffset, MaxJumpOffset)
	}

	return JumpOpcode |
		RawInstruction(cond)<<jumpConditionShift |
		RawInstruction(uint16(offset))&JumpOffsetMask, nil
}

var _ Instruction = Word(0)

// Word does not exist in the MSP430 jump family, it is a filler this package uses for any instruction word which
// is not a jump, so decoded programs keep one entry per word and jump offsets stay easy to follow.
type Word RawInstruction

func (w Word) String() string {
	return fmt.Sprintf(".word 0x%04x", uint16(w))
}

func (w Word) Size() int {
	return 2
}

func (w Word) Raw() (RawInstruction, error) {
	return RawInstruction(w), nil
}
