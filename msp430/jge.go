package msp430

var _ Jxx = Jge{}

// Jge jumps if the negative and overflow flags are equal (signed greater or equal).
type Jge struct {
	offset int16
}

func NewJge(offset int16) Jge {
	return Jge{offset: offset}
}

func (j Jge) Mnemonic() string {
	return "jge"
}

func (j Jge) Offset() int16 {
	return j.offset
}

func (j Jge) Size() int {
	return JumpSize
}

func (j Jge) Raw() (RawInstruction, error) {
	return encodeJump(CondGE, j.Mnemonic(), j.offset)
}

func (j Jge) String() string {
	return formatJump(j.Mnemonic(), j.offset)
}
