package msp430

var _ Jxx = Jnz{}

// Jnz jumps if the zero flag is clear, also known as jne.
type Jnz struct {
	offset int16
}

func NewJnz(offset int16) Jnz {
	return Jnz{offset: offset}
}

func (j Jnz) Mnemonic() string {
	return "jnz"
}

func (j Jnz) Offset() int16 {
	return j.offset
}

func (j Jnz) Size() int {
	return JumpSize
}

func (j Jnz) Raw() (RawInstruction, error) {
	return encodeJump(CondNZ, j.Mnemonic(), j.offset)
}

func (j Jnz) String() string {
	return formatJump(j.Mnemonic(), j.offset)
}
