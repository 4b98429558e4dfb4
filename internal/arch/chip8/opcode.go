package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Opcode encodes the instruction back into its 16 bit opcode word.
// It returns false for unknown instructions.
func (i Instruction) Opcode() (uint16, bool) {
	if i.IsUnknown() {
		return 0, false
	}
	op := opcodeByKind[i.Kind]
	operands := uint16(i.X&0xF)<<8 | uint16(i.NN)
	return op.value | operands&^op.mask, true
}

// Bytes returns the encoded instruction as big endian bytes.
func (i Instruction) Bytes() ([]byte, bool) {
	w, ok := i.Opcode()
	if !ok {
		return nil, false
	}
	return []byte{byte(w >> 8), byte(w)}, true
}

// LookupOpcode matches the opcode bytes against the retrogolib CHIP-8
// opcode tables.
func LookupOpcode(b1, b2 byte) (chip8.Opcode, bool) {
	w := uint16(b1)<<8 | uint16(b2)
	firstNibble := (w & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&w == op.Info.Value {
			return op, op.Instruction != nil
		}
	}
	return chip8.Opcode{}, false
}

// CrossCheck compares the decoding of the opcode bytes with the retrogolib
// opcode tables. It returns true if both agree on whether the opcode is known
// and on the mnemonic family.
func CrossCheck(b1, b2 byte) (Instruction, chip8.Opcode, bool) {
	ins := Decode(b1, b2)
	ref, found := LookupOpcode(b1, b2)
	own := ins.CPUInstruction()

	switch {
	case !found:
		return ins, ref, own == nil
	case own == nil:
		return ins, ref, false
	default:
		return ins, ref, own.Name == ref.Instruction.Name
	}
}
