package msp430

var _ Jxx = Jn{}

// Jn jumps if the negative flag is set.
type Jn struct {
	offset int16
}

func NewJn(offset int16) Jn {
	return Jn{offset: offset}
}

func (j Jn) Mnemonic() string {
	return "jn"
}

func (j Jn) Offset() int16 {
	return j.offset
}

func (j Jn) Size() int {
	return JumpSize
}

func (j Jn) Raw() (RawInstruction, error) {
	return encodeJump(CondN, j.Mnemonic(), j.offset)
}

func (j Jn) String() string {
	return formatJump(j.Mnemonic(), j.offset)
}
