package msp430

import (
	"encoding/binary"
	"fmt"
)

// MustEncode does the same as Encode but rather than returning an error it will panic
func MustEncode(ins []Instruction) []RawInstruction {
	raw, err := Encode(ins)
	if err != nil {
		panic(err)
	}

	return raw
}

// Encode turns a slice of instructions into raw instructions
func Encode(ins []Instruction) ([]RawInstruction, error) {
	instructions := make([]RawInstruction, 0, len(ins))
	for i, instruction := range ins {
		raw, err := instruction.Raw()
		if err != nil {
			return nil, fmt.Errorf("%d: %w", i, err)
		}

		instructions = append(instructions, raw)
	}

	return instructions, nil
}

// EncodeBytes turns a slice of instructions into little-endian program memory
func EncodeBytes(ins []Instruction) ([]byte, error) {
	raw, err := Encode(ins)
	if err != nil {
		return nil, err
	}

	b := make([]byte, len(raw)*2)
	for i, r := range raw {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(r))
	}

	return b, nil
}
