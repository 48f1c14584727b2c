package msp430

var _ Jxx = Jz{}

// Jz jumps if the zero flag is set, also known as jeq.
type Jz struct {
	offset int16
}

func NewJz(offset int16) Jz {
	return Jz{offset: offset}
}

func (j Jz) Mnemonic() string {
	return "jz"
}

func (j Jz) Offset() int16 {
	return j.offset
}

func (j Jz) Size() int {
	return JumpSize
}

func (j Jz) Raw() (RawInstruction, error) {
	return encodeJump(CondZ, j.Mnemonic(), j.offset)
}

func (j Jz) String() string {
	return formatJump(j.Mnemonic(), j.offset)
}
