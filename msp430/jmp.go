package msp430

var _ Jxx = Jmp{}

// Jmp jumps unconditionally.
type Jmp struct {
	offset int16
}

func NewJmp(offset int16) Jmp {
	return Jmp{offset: offset}
}

func (j Jmp) Mnemonic() string {
	return "jmp"
}

func (j Jmp) Offset() int16 {
	return j.offset
}

func (j Jmp) Size() int {
	return JumpSize
}

func (j Jmp) Raw() (RawInstruction, error) {
	return encodeJump(CondAlways, j.Mnemonic(), j.offset)
}

func (j Jmp) String() string {
	return formatJump(j.Mnemonic(), j.offset)
}
