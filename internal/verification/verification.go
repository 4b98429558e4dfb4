// Package verification verifies that a disassembly recreates the program
// bytes that it was generated from.
package verification

import (
	"errors"
	"fmt"

	"github.com/JRHeaton/j8/internal/arch/chip8"
	"github.com/JRHeaton/j8/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

// ErrMismatch is returned when the encoded disassembly differs from the input.
var ErrMismatch = errors.New("disassembly mismatch")

const maxReportedMismatches = 10

// VerifyOutput encodes all disassembled lines back into bytes and compares
// them with the input they were decoded from. Lines that do not decode to an
// instruction are written as data and encode to their input bytes.
func VerifyOutput(logger *log.Logger, input []byte, lines []disasm.Line) error {
	output := make([]byte, 0, len(lines)*chip8.OpcodeSize)
	for _, line := range lines {
		data, ok := line.Instruction.Bytes()
		if !ok {
			data = line.Data[:]
		}
		output = append(output, data...)
	}

	if err := checkBufferEqual(logger, lines, input, output); err != nil {
		return fmt.Errorf("program mismatch: %w", err)
	}

	crossCheck(logger, lines)
	return nil
}

func checkBufferEqual(logger *log.Logger, lines []disasm.Line, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: mismatched lengths, %d != %d", ErrMismatch, len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs <= maxReportedMismatches {
			logger.Error("Offset mismatch",
				log.Hex("address", lines[i/chip8.OpcodeSize].Address+uint16(i%chip8.OpcodeSize)),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d offset mismatches", ErrMismatch, diffs)
}

// crossCheck compares the decoded instructions against the opcode table of
// retrogolib and logs a warning for every disagreement.
func crossCheck(logger *log.Logger, lines []disasm.Line) {
	for _, line := range lines {
		ins, opcode, ok := chip8.CrossCheck(line.Data[0], line.Data[1])
		if ok {
			continue
		}

		var reference string
		if opcode.Instruction != nil {
			reference = opcode.Instruction.Name
		}
		logger.Warn("Instruction differs from reference opcode table",
			log.Hex("address", line.Address),
			log.String("instruction", ins.Name()),
			log.String("reference", reference))
	}
}
