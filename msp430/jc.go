package msp430

var _ Jxx = Jc{}

// Jc jumps if the carry flag is set, also known as jhs.
type Jc struct {
	offset int16
}

func NewJc(offset int16) Jc {
	return Jc{offset: offset}
}

func (j Jc) Mnemonic() string {
	return "jc"
}

func (j Jc) Offset() int16 {
	return j.offset
}

func (j Jc) Size() int {
	return JumpSize
}

func (j Jc) Raw() (RawInstruction, error) {
	return encodeJump(CondC, j.Mnemonic(), j.offset)
}

func (j Jc) String() string {
	return formatJump(j.Mnemonic(), j.offset)
}
