package msp430

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestFixJumpOffset(t *testing.T) {
	tests := []struct {
		raw  uint16
		want int16
	}{
		{raw: 0x000, want: 0},
		{raw: 0x001, want: 1},
		{raw: 0x1FF, want: 511},
		{raw: 0x200, want: -512},
		{raw: 0x3FA, want: -6},
		{raw: 0x3FF, want: -1},
	}

	for _, test := range tests {
		if got := FixJumpOffset(test.raw); got != test.want {
			t.Errorf("FixJumpOffset(%#x) = %d, want %d", test.raw, got, test.want)
		}
	}
}

func TestFixJumpOffsetFullField(t *testing.T) {
	for raw := uint16(0); raw <= 0x3FF; raw++ {
		got := FixJumpOffset(raw)
		if raw&0x200 == 0 {
			if int(got) != int(raw) || got < 0 || got > 511 {
				t.Fatalf("FixJumpOffset(%#x) = %d, want %d", raw, got, raw)
			}
			continue
		}

		if int(got) != int(raw)-1024 || got >= 0 {
			t.Fatalf("FixJumpOffset(%#x) = %d, want %d", raw, got, int(raw)-1024)
		}
	}
}

// Bits 10-15 are not part of the field, the result must still be deterministic.
func TestFixJumpOffsetStrayBits(t *testing.T) {
	if got := FixJumpOffset(0xFFFF); got != -1 {
		t.Errorf("FixJumpOffset(0xffff) = %d, want -1", got)
	}
	if got := FixJumpOffset(0x0400); got != 0x400 {
		t.Errorf("FixJumpOffset(0x0400) = %d, want %d", got, 0x400)
	}
	if got := FixJumpOffset(0x8001); got != math.MinInt16+1 {
		t.Errorf("FixJumpOffset(0x8001) = %d, want %d", got, math.MinInt16+1)
	}
}

var constructors = []struct {
	mnemonic string
	cond     Condition
	new      func(int16) Jxx
}{
	{"jnz", CondNZ, func(o int16) Jxx { return NewJnz(o) }},
	{"jz", CondZ, func(o int16) Jxx { return NewJz(o) }},
	{"jlo", CondLO, func(o int16) Jxx { return NewJlo(o) }},
	{"jc", CondC, func(o int16) Jxx { return NewJc(o) }},
	{"jn", CondN, func(o int16) Jxx { return NewJn(o) }},
	{"jge", CondGE, func(o int16) Jxx { return NewJge(o) }},
	{"jl", CondL, func(o int16) Jxx { return NewJl(o) }},
	{"jmp", CondAlways, func(o int16) Jxx { return NewJmp(o) }},
}

func TestJxx(t *testing.T) {
	offsets := []int16{math.MinInt16, -513, -512, -6, -1, 0, 1, 6, 511, 512, math.MaxInt16}

	for _, c := range constructors {
		t.Run(c.mnemonic, func(t *testing.T) {
			for _, off := range offsets {
				j := c.new(off)
				if j.Offset() != off {
					t.Errorf("Offset() = %d, want %d", j.Offset(), off)
				}
				if j.Size() != 2 {
					t.Errorf("Size() = %d, want 2", j.Size())
				}
				if j.Mnemonic() != c.mnemonic {
					t.Errorf("Mnemonic() = %q, want %q", j.Mnemonic(), c.mnemonic)
				}
			}

			if c.new(5) != c.new(5) {
				t.Error("equal instructions do not compare equal")
			}
			if c.new(5) == c.new(6) {
				t.Error("different offsets compare equal")
			}

			viaCond, err := NewJump(c.cond, 42)
			if err != nil {
				t.Fatal(err)
			}
			if viaCond != c.new(42) {
				t.Errorf("NewJump(%s) = %v", c.cond, viaCond)
			}
			if c.cond.String() != c.mnemonic {
				t.Errorf("Condition.String() = %q, want %q", c.cond.String(), c.mnemonic)
			}
		})
	}
}

func TestVariantsAreDistinct(t *testing.T) {
	if Instruction(NewJz(1)) == Instruction(NewJnz(1)) {
		t.Error("jz and jnz with the same offset compare equal")
	}
}

func TestNewJumpInvalidCondition(t *testing.T) {
	_, err := NewJump(Condition(8), 0)
	if !errors.Is(err, ErrInvalidCondition) {
		t.Fatalf("expected ErrInvalidCondition, got %v", err)
	}
	if Condition(8).String() != "invalid" {
		t.Errorf("got %q", Condition(8).String())
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		inst Instruction
		want string
	}{
		{inst: NewJc(-6), want: "jc #-0x6"},
		{inst: NewJc(6), want: "jc #0x6"},
		{inst: NewJmp(0), want: "jmp #0x0"},
		{inst: NewJnz(-512), want: "jnz #-0x200"},
		{inst: NewJz(511), want: "jz #0x1ff"},
		{inst: NewJlo(0x2a), want: "jlo #0x2a"},
		{inst: NewJn(-1), want: "jn #-0x1"},
		{inst: NewJge(-255), want: "jge #-0xff"},
		{inst: NewJl(math.MaxInt16), want: "jl #0x7fff"},
		{inst: NewJl(math.MinInt16), want: "jl #-0x8000"},
		{inst: Word(0x4031), want: ".word 0x4031"},
		{inst: Word(0x12), want: ".word 0x0012"},
	}

	for _, test := range tests {
		if got := test.inst.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}

	if got := NewJc(-6).String(); got == "jc #0xfffa" {
		t.Error("negative offset rendered as two's complement")
	}
}

// Every offset renders as sign and magnitude, never as the 16-bit two's complement pattern.
func TestStringAllOffsets(t *testing.T) {
	for o := int32(math.MinInt16); o <= math.MaxInt16; o++ {
		want := "jc #0x" + strconv.FormatInt(int64(o), 16)
		if o < 0 {
			want = "jc #-0x" + strconv.FormatInt(int64(-o), 16)
		}

		if got := NewJc(int16(o)).String(); got != want {
			t.Fatalf("offset %d: got %q, want %q", o, got, want)
		}
	}
}

func TestTarget(t *testing.T) {
	tests := []struct {
		inst Jxx
		addr uint16
		want uint16
	}{
		{inst: NewJmp(0), addr: 0xC000, want: 0xC002},
		{inst: NewJmp(-1), addr: 0xC000, want: 0xC000},
		{inst: NewJnz(-6), addr: 0xC010, want: 0xC006},
		{inst: NewJz(511), addr: 0xC000, want: 0xC400},
		{inst: NewJc(-512), addr: 0x0100, want: 0xFD02},
	}

	for _, test := range tests {
		if got := Target(test.inst, test.addr); got != test.want {
			t.Errorf("Target(%v, %#x) = %#x, want %#x", test.inst, test.addr, got, test.want)
		}
	}
}
