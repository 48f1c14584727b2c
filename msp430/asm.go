package msp430

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/alecthomas/participle/v2/lexer/stateful"
)

var (
	msp430Lexer = stateful.MustSimple([]stateful.Rule{
		{Name: "Comment", Pattern: `;[^\n]*`, Action: nil},
		{Name: "Number", Pattern: `0[xX][0-9a-fA-F]+|0[bB][01]+|\d+`, Action: nil},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},
		{Name: "LabelEnd", Pattern: `:`, Action: nil},
		{Name: "Punct", Pattern: `[-+#.,$]`, Action: nil},
		{Name: "Whitespace", Pattern: `[ \t\r]+`, Action: nil},
		{Name: "Newline", Pattern: `\n`, Action: nil},
	})
	msp430Parser = participle.MustBuild(&asmFile{},
		participle.Lexer(msp430Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(4),
	)
)

// AssemblyToInstructions takes in a reader and the name of the file which is used in error messages. The contents
// are parsed as MSP430 assembly consisting of jump instructions, labels and .word directives. Jumps accept either
// an immediate word offset in the same format String() produces (jnz #-0x6) or a label.
func AssemblyToInstructions(filename string, reader io.Reader) ([]Instruction, error) {
	ast := &asmFile{}
	err := msp430Parser.Parse(filename, reader, ast)
	if err != nil {
		return nil, fmt.Errorf("error while parsing: %w", err)
	}

	ctx := assembleContext{
		Labels: make(map[string]int),
	}

	instCnt := 0
	lastLine := 0
	for _, entry := range ast.Entries {
		if pos, ok := entry.statementPos(); ok {
			if pos.Line == lastLine {
				return nil, fmt.Errorf("%s: only one instruction per line is allowed", pos)
			}
			lastLine = pos.Line
		}

		if entry.Label != "" {
			if _, found := ctx.Labels[entry.Label]; found {
				return nil, fmt.Errorf("duplicate label '%s' found, labels must be unique", entry.Label)
			}

			ctx.Labels[entry.Label] = instCnt
			continue
		}

		if entry.Directive != nil || entry.Instruction != nil {
			instCnt++
		}
	}

	instructions := make([]Instruction, 0, instCnt)
	for _, entry := range ast.Entries {
		if entry.Directive != nil {
			inst, err := entry.Directive.ToInst()
			if err != nil {
				return nil, err
			}

			instructions = append(instructions, inst)
		}

		if entry.Instruction != nil {
			inst, err := entry.Instruction.ToInst(len(instructions), &ctx)
			if err != nil {
				return nil, err
			}

			instructions = append(instructions, inst)
		}
	}

	return instructions, nil
}

type assembleContext struct {
	Labels map[string]int
}

type asmFile struct {
	Entries []*entry `parser:"@@*"`
}

type entry struct {
	Label       string         `parser:"( @Ident LabelEnd"`
	Directive   *wordDirective `parser:"| @@"`
	Instruction *instruction   `parser:"| @@ )? Newline*"`
}

// statementPos returns the position of the instruction or directive of the entry, labels are not statements
func (e *entry) statementPos() (lexer.Position, bool) {
	if e.Directive != nil {
		return e.Directive.Pos, true
	}
	if e.Instruction != nil {
		return e.Instruction.Pos, true
	}

	return lexer.Position{}, false
}

// asmNumber accepts decimal, 0x hex and 0b binary numbers with an optional sign
type asmNumber int64

func (n *asmNumber) Capture(values []string) error {
	str := strings.Join(values, "")

	// ParseInt with base 0 would read 010 as octal
	digits := strings.TrimLeft(str, "+-")
	if len(digits) > 1 && digits[0] == '0' && !strings.ContainsAny(digits[1:2], "xXbB") {
		return fmt.Errorf("'%s' has a leading zero, use 0x for hex or drop the zero for decimal", str)
	}

	i, err := strconv.ParseInt(str, 0, 64)
	if err != nil {
		return fmt.Errorf("'%s' is not a valid 64-bit number", str)
	}

	*n = asmNumber(i)

	return nil
}

type wordDirective struct {
	Pos lexer.Position

	Value asmNumber `parser:"'.' 'word' @(('+'|'-')? Number)"`
}

func (d *wordDirective) ToInst() (Instruction, error) {
	if d.Value < math.MinInt16 || d.Value > math.MaxUint16 {
		return nil, fmt.Errorf("%s: .word value %d does not fit in 16 bits", d.Pos, d.Value)
	}

	return Word(uint16(d.Value)), nil
}

type immediate struct {
	Value asmNumber `parser:"'#' @(('+'|'-')? Number)"`
}

type instruction struct {
	Pos lexer.Position

	Mnemonic string     `parser:"@('jnz'|'jne'|'jz'|'jeq'|'jlo'|'jnc'|'jc'|'jhs'|'jn'|'jge'|'jl'|'jmp')"`
	Imm      *immediate `parser:"( @@"`
	Label    *string    `parser:"| @Ident )"`
}

// mnemonicConditions maps every accepted mnemonic, including the aliases, to its condition
var mnemonicConditions = map[string]Condition{
	"jnz": CondNZ,
	"jne": CondNZ,
	"jz":  CondZ,
	"jeq": CondZ,
	"jlo": CondLO,
	"jnc": CondLO,
	"jc":  CondC,
	"jhs": CondC,
	"jn":  CondN,
	"jge": CondGE,
	"jl":  CondL,
	"jmp": CondAlways,
}

func (i *instruction) ToInst(index int, ctx *assembleContext) (Instruction, error) {
	cond, found := mnemonicConditions[i.Mnemonic]
	if !found {
		return nil, fmt.Errorf("%s: unknown mnemonic '%s'", i.Pos, i.Mnemonic)
	}

	var offset int64
	if i.Label != nil {
		target, found := ctx.Labels[*i.Label]
		if !found {
			return nil, fmt.Errorf("%s: invalid label '%s' at instruction %d", i.Pos, *i.Label, index)
		}

		// Get diff between current instruction and the target, -1 since a offset of 0 will jump
		// to the next instruction (inherent pc+2)
		offset = int64(target-index) - 1
	}

	if i.Imm != nil {
		offset = int64(i.Imm.Value)
	}

	if offset < math.MinInt16 || offset > math.MaxInt16 {
		return nil, fmt.Errorf("%s: offset %d does not fit in 16 bits", i.Pos, offset)
	}

	return NewJump(cond, int16(offset))
}
