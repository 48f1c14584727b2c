package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dylandreimerink/gomsp430/emulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	return executeContext(t, context.Background(), args...)
}

func executeContext(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	c := rootCmd()
	c.SetArgs(args)
	c.SetOut(&out)
	c.SetErr(&bytes.Buffer{})

	err := c.ExecuteContext(ctx)
	return out.String(), err
}

func assembleFile(t *testing.T, src string) string {
	t.Helper()

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "prog.s")
	bin := filepath.Join(dir, "prog.bin")
	require.NoError(t, os.WriteFile(srcPath, []byte(src), 0644))

	_, err := execute(t, "asm", srcPath, "-o", bin)
	require.NoError(t, err)

	return bin
}

const program = `start:
	jz skip
	.word 0x4031
skip:
	jc start
	jmp #-0x1
`

func TestAssembleDisassemble(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.s")
	bin := filepath.Join(dir, "prog.bin")
	require.NoError(t, os.WriteFile(src, []byte(program), 0644))

	out, err := execute(t, "asm", src)
	require.NoError(t, err)
	assert.Equal(t, "2401\n4031\n2ffd\n3fff\n", out)

	_, err = execute(t, "asm", src, "-o", bin)
	require.NoError(t, err)

	contents, err := os.ReadFile(bin)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x24, 0x31, 0x40, 0xfd, 0x2f, 0xff, 0x3f}, contents)

	out, err = execute(t, "disasm", "--targets", bin)
	require.NoError(t, err)
	assert.Equal(t, "c000: 2401  jz #0x1 ; -> 0xc004\n"+
		"c002: 4031  .word 0x4031\n"+
		"c004: 2ffd  jc #-0x3 ; -> 0xc000\n"+
		"c006: 3fff  jmp #-0x1 ; -> 0xc006\n", out)

	out, err = execute(t, "disasm", "--base", "0x100", bin)
	require.NoError(t, err)
	assert.Contains(t, out, "0106: 3fff  jmp #-0x1\n")
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "decode", "2ffa", "0x2406", "3C00", "4031")
	require.NoError(t, err)
	assert.Equal(t, "jc #-0x6\njz #0x6\njmp #0x0\n.word 0x4031\n", out)

	_, err = execute(t, "decode", "10000")
	assert.Error(t, err)
}

func TestEmulate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.s")
	bin := filepath.Join(dir, "prog.bin")
	require.NoError(t, os.WriteFile(src, []byte(program), 0644))
	_, err := execute(t, "asm", src, "-o", bin)
	require.NoError(t, err)

	out, err := execute(t, "emulate", "--sr", "z", bin)
	require.NoError(t, err)
	assert.Contains(t, out, "PC: 0xc006 -> jmp #-0x1")
	assert.Contains(t, out, "SR: vnZc")

	// Without the zero flag the data word is executed
	out, err = execute(t, "emulate", bin)
	assert.Error(t, err)
	assert.Contains(t, out, "PC: 0xc002 -> .word 0x4031")

	// Zero and carry loop forever between the first and third word
	_, err = execute(t, "emulate", "--sr", "zc", "--max-steps", "100", bin)
	assert.Error(t, err)

	_, err = execute(t, "emulate", "--sr", "q", bin)
	assert.Error(t, err)
}

func TestEmulateVerbose(t *testing.T) {
	bin := assembleFile(t, program)

	out, err := execute(t, "emulate", "-v", "--sr", "z", bin)
	require.NoError(t, err)
	assert.Equal(t, "c000: jz #0x1\n"+
		"c004: jc #-0x3\n"+
		"c006: jmp #-0x1\n"+
		"Registers:\n"+
		" PC: 0xc006 -> jmp #-0x1\n"+
		" SR: vnZc\n"+
		" steps: 3\n", out)
}

func TestEmulateCanceled(t *testing.T) {
	bin := assembleFile(t, "jmp #0x0\njmp #-0x2\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, args := range [][]string{
		{"emulate", bin},
		{"emulate", "-v", bin},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, err := executeContext(t, ctx, args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, context.Canceled))

			var vmErr *emulator.VMError
			assert.True(t, errors.As(err, &vmErr))
			assert.Contains(t, out, "PC: 0xc002 -> jmp #-0x2")
			assert.Contains(t, out, " steps: 1\n")
		})
	}
}
