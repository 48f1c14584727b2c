package emulator

import (
	"fmt"
	"strings"
)

// StatusRegister holds the MSP430 status flags (R2/SR). Only the flags used by the jump conditions are modeled.
type StatusRegister uint16

const (
	// FlagC carry
	FlagC StatusRegister = 0x0001
	// FlagZ zero
	FlagZ StatusRegister = 0x0002
	// FlagN negative
	FlagN StatusRegister = 0x0004
	// FlagV overflow
	FlagV StatusRegister = 0x0100
)

var flagLetters = []struct {
	flag   StatusRegister
	letter byte
}{
	{FlagV, 'v'},
	{FlagN, 'n'},
	{FlagZ, 'z'},
	{FlagC, 'c'},
}

// Has returns true if all given flags are set
func (sr StatusRegister) Has(flags StatusRegister) bool {
	return sr&flags == flags
}

// String renders the flags as "vnzc", set flags are upper case.
func (sr StatusRegister) String() string {
	var sb strings.Builder
	for _, fl := range flagLetters {
		if sr.Has(fl.flag) {
			sb.WriteByte(fl.letter - 'a' + 'A')
			continue
		}
		sb.WriteByte(fl.letter)
	}

	return sb.String()
}

// ParseStatusRegister parses a set of flag letters like "zc" or "NV", letters are case insensitive.
func ParseStatusRegister(s string) (StatusRegister, error) {
	var sr StatusRegister
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'c':
			sr |= FlagC
		case 'z':
			sr |= FlagZ
		case 'n':
			sr |= FlagN
		case 'v':
			sr |= FlagV
		default:
			return 0, fmt.Errorf("'%c' is not a valid flag, pick from: c, z, n, v", r)
		}
	}

	return sr, nil
}

// Registers the registers of the MSP430 VM
type Registers struct {
	// Program counter, the index of the next instruction to execute. Every instruction is one 16-bit word so the
	// byte address is BaseAddress + 2*PC.
	PC int
	// Status register
	SR StatusRegister
}

func (r *Registers) Clone() Registers {
	return Registers{
		PC: r.PC,
		SR: r.SR,
	}
}
