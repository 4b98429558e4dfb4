package verification

import (
	"errors"
	"testing"

	"github.com/JRHeaton/j8/internal/arch/chip8"
	"github.com/JRHeaton/j8/internal/disasm"
	"github.com/JRHeaton/j8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var testProgram = []byte{
	0x6A, 0x07, // ld v10, 07
	0x8A, 0xB4, // add v10, v11
	0xFF, 0xFF, // data
	0xF3, 0x33, // ld B, v3
	0x12, 0x00, // jmp 200
}

func disassemble(t *testing.T, rom []byte) []disasm.Line {
	t.Helper()

	s := machine.New()
	assert.NoError(t, s.LoadProgram(rom))
	lines, err := disasm.Disassemble(s, machine.ProgramStart, machine.ProgramStart+len(rom))
	assert.NoError(t, err)
	return lines
}

func TestVerifyOutput(t *testing.T) {
	logger := log.NewTestLogger(t)
	lines := disassemble(t, testProgram)

	assert.NoError(t, VerifyOutput(logger, testProgram, lines))
}

// newMismatchLogger returns a logger that accepts the error records written
// for every mismatching offset.
func newMismatchLogger() *log.Logger {
	return log.NewWithConfig(log.DefaultConfig())
}

func TestVerifyOutput_Mismatch(t *testing.T) {
	logger := newMismatchLogger()
	lines := disassemble(t, testProgram)
	lines[1].Instruction = chip8.DecodeWord(0x8AB5)

	err := VerifyOutput(logger, testProgram, lines)
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.ErrorContains(t, err, "1 offset mismatches")
}

func TestVerifyOutput_Length(t *testing.T) {
	logger := newMismatchLogger()
	lines := disassemble(t, testProgram)

	err := VerifyOutput(logger, testProgram, lines[:2])
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.ErrorContains(t, err, "mismatched lengths")
}
