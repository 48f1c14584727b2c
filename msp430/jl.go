package msp430

var _ Jxx = Jl{}

// Jl jumps if the negative and overflow flags differ (signed less than).
type Jl struct {
	offset int16
}

func NewJl(offset int16) Jl {
	return Jl{offset: offset}
}

func (j Jl) Mnemonic() string {
	return "jl"
}

func (j Jl) Offset() int16 {
	return j.offset
}

func (j Jl) Size() int {
	return JumpSize
}

func (j Jl) Raw() (RawInstruction, error) {
	return encodeJump(CondL, j.Mnemonic(), j.offset)
}

func (j Jl) String() string {
	return formatJump(j.Mnemonic(), j.offset)
}
