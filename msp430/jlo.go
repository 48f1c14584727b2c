package msp430

var _ Jxx = Jlo{}

// Jlo jumps if the carry flag is clear, also known as jnc.
type Jlo struct {
	offset int16
}

func NewJlo(offset int16) Jlo {
	return Jlo{offset: offset}
}

func (j Jlo) Mnemonic() string {
	return "jlo"
}

func (j Jlo) Offset() int16 {
	return j.offset
}

func (j Jlo) Size() int {
	return JumpSize
}

func (j Jlo) Raw() (RawInstruction, error) {
	return encodeJump(CondLO, j.Mnemonic(), j.offset)
}

func (j Jlo) String() string {
	return formatJump(j.Mnemonic(), j.offset)
}
