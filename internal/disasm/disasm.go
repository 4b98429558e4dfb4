// Package disasm disassembles ranges of CHIP-8 machine memory.
package disasm

import (
	"errors"
	"fmt"
	"iter"

	"github.com/JRHeaton/j8/internal/arch/chip8"
	"github.com/JRHeaton/j8/internal/machine"
)

// ErrInvalidRange is returned for ranges that are outside of memory or that
// can not be covered in whole instruction steps.
var ErrInvalidRange = errors.New("invalid disassembly range")

// Line is a single disassembled instruction.
type Line struct {
	Address     uint16
	Data        [chip8.OpcodeSize]byte
	Instruction chip8.Instruction

	Label       string // label of the address, if it is referenced
	BranchingTo string // label of the referenced address, if any
}

// Code returns the mnemonic of the line, with a referenced address replaced
// by its label.
func (l Line) Code() string {
	if l.BranchingTo == "" {
		return l.Instruction.String()
	}

	switch l.Instruction.Kind {
	case chip8.Jump:
		return "jmp " + l.BranchingTo
	case chip8.Call:
		return "call " + l.BranchingTo
	case chip8.JumpV0:
		return "jmp v0, " + l.BranchingTo
	case chip8.LoadIndex:
		return "ld I, " + l.BranchingTo
	default:
		return l.Instruction.String()
	}
}

// ValidateRange checks that the half open range [start, end) is inside of
// memory and consists of whole instructions.
func ValidateRange(start, end int) error {
	switch {
	case start < 0 || start > end:
		return fmt.Errorf("%w: start %04x after end %04x", ErrInvalidRange, start, end)
	case end > machine.MemorySize:
		return fmt.Errorf("%w: end %04x exceeds memory size %04x", ErrInvalidRange, end, machine.MemorySize)
	case (end-start)%chip8.OpcodeSize != 0:
		return fmt.Errorf("%w: length %d is not a multiple of the instruction size", ErrInvalidRange, end-start)
	}
	return nil
}

// Range returns a lazy sequence of the instructions in the half open range
// [start, end), stepping 2 bytes at a time. The sequence reads the memory
// when it is iterated and can be iterated multiple times.
func Range(s *machine.State, start, end int) (iter.Seq2[uint16, chip8.Instruction], error) {
	if err := ValidateRange(start, end); err != nil {
		return nil, err
	}

	return func(yield func(uint16, chip8.Instruction) bool) {
		for address := start; address < end; address += chip8.OpcodeSize {
			ins := chip8.Decode(s.Memory[address], s.Memory[address+1])
			if !yield(uint16(address), ins) {
				return
			}
		}
	}, nil
}

// Disassemble decodes the half open range [start, end) and assigns labels
// to all addresses inside of the range that are referenced by jumps, calls,
// jump tables or index loads.
func Disassemble(s *machine.State, start, end int) ([]Line, error) {
	instructions, err := Range(s, start, end)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, (end-start)/chip8.OpcodeSize)
	for address, ins := range instructions {
		lines = append(lines, Line{
			Address:     address,
			Data:        [chip8.OpcodeSize]byte{s.Memory[address], s.Memory[address+1]},
			Instruction: ins,
		})
	}

	assignLabels(lines)
	return lines, nil
}
