package chip8

import "github.com/JRHeaton/j8/internal/machine"

// CHIP-8 memory layout constants.
const (
	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = machine.ProgramStart

	// MaxAddress is the highest valid address in CHIP-8 memory space (4KB total).
	MaxAddress = machine.MemorySize - 1
)

// OpcodeSize is the size of CHIP-8 instructions in bytes.
const OpcodeSize = 2

// Kind identifies the operation of an instruction.
type Kind uint8

// Instruction kinds, the comment lists the opcode pattern.
const (
	Unknown               Kind = iota
	Sys                        // 0NNN
	ClearScreen                // 00E0
	Return                     // 00EE
	Jump                       // 1NNN
	Call                       // 2NNN
	SkipEqualImmediate         // 3XNN
	SkipNotEqualImmediate      // 4XNN
	SkipEqualRegister          // 5XY0
	LoadImmediate              // 6XNN
	AddImmediate               // 7XNN
	LoadRegister               // 8XY0
	Or                         // 8XY1
	And                        // 8XY2
	Xor                        // 8XY3
	AddRegister                // 8XY4
	Sub                        // 8XY5
	ShiftRight                 // 8XY6
	SubN                       // 8XY7
	ShiftLeft                  // 8XYE
	SkipNotEqualRegister       // 9XY0
	LoadIndex                  // ANNN
	JumpV0                     // BNNN
	Random                     // CXNN
	Draw                       // DXYN
	SkipKeyPressed             // EX9E
	SkipKeyNotPressed          // EXA1
	LoadDelayTimer             // FX07
	WaitKey                    // FX0A
	SetDelayTimer              // FX15
	SetSoundTimer              // FX18
	AddIndex                   // FX1E
	LoadFont                   // FX29
	StoreBCD                   // FX33
	StoreRegisters             // FX55
	LoadRegisters              // FX65

	kindCount
)

// Instruction is a decoded CHIP-8 instruction. Which operand fields are
// meaningful depends on the Kind, all of them are always extracted from the
// opcode so that the instruction can be encoded again.
type Instruction struct {
	Kind Kind
	X    int    // first register index
	Y    int    // second register index
	N    byte   // 4 bit count
	NN   byte   // 8 bit immediate
	NNN  uint16 // 12 bit address
}

// opcode describes the bit pattern of one instruction kind.
type opcode struct {
	kind  Kind
	mask  uint16
	value uint16
}

// opcodes lists the opcode patterns grouped by the first nibble.
// Patterns are matched in order, the first match wins.
var opcodes = [16][]opcode{
	0x0: {
		{ClearScreen, 0xF0FF, 0x00E0},
		{Return, 0xF0FF, 0x00EE},
		{Sys, 0xF000, 0x0000},
	},
	0x1: {{Jump, 0xF000, 0x1000}},
	0x2: {{Call, 0xF000, 0x2000}},
	0x3: {{SkipEqualImmediate, 0xF000, 0x3000}},
	0x4: {{SkipNotEqualImmediate, 0xF000, 0x4000}},
	0x5: {{SkipEqualRegister, 0xF000, 0x5000}},
	0x6: {{LoadImmediate, 0xF000, 0x6000}},
	0x7: {{AddImmediate, 0xF000, 0x7000}},
	0x8: {
		{LoadRegister, 0xF00F, 0x8000},
		{Or, 0xF00F, 0x8001},
		{And, 0xF00F, 0x8002},
		{Xor, 0xF00F, 0x8003},
		{AddRegister, 0xF00F, 0x8004},
		{Sub, 0xF00F, 0x8005},
		{ShiftRight, 0xF00F, 0x8006},
		{SubN, 0xF00F, 0x8007},
		{ShiftLeft, 0xF00F, 0x800E},
	},
	0x9: {{SkipNotEqualRegister, 0xF000, 0x9000}},
	0xA: {{LoadIndex, 0xF000, 0xA000}},
	0xB: {{JumpV0, 0xF000, 0xB000}},
	0xC: {{Random, 0xF000, 0xC000}},
	0xD: {{Draw, 0xF000, 0xD000}},
	0xE: {
		{SkipKeyPressed, 0xF0FF, 0xE09E},
		{SkipKeyNotPressed, 0xF0FF, 0xE0A1},
	},
	0xF: {
		{LoadDelayTimer, 0xF0FF, 0xF007},
		{WaitKey, 0xF0FF, 0xF00A},
		{SetDelayTimer, 0xF0FF, 0xF015},
		{SetSoundTimer, 0xF0FF, 0xF018},
		{AddIndex, 0xF0FF, 0xF01E},
		{LoadFont, 0xF0FF, 0xF029},
		{StoreBCD, 0xF0FF, 0xF033},
		{StoreRegisters, 0xF0FF, 0xF055},
		{LoadRegisters, 0xF0FF, 0xF065},
	},
}

// opcodeByKind is the reverse lookup of opcodes used for encoding.
var opcodeByKind = func() [kindCount]opcode {
	var byKind [kindCount]opcode
	for _, family := range opcodes {
		for _, op := range family {
			byKind[op.kind] = op
		}
	}
	return byKind
}()

// Decode decodes the two opcode bytes read from memory into an instruction.
// It is a pure function, bytes that do not form a known opcode return an
// instruction of kind Unknown.
func Decode(b1, b2 byte) Instruction {
	w := uint16(b1)<<8 | uint16(b2)
	ins := Instruction{
		X:   extractRegisterX(w),
		Y:   extractRegisterY(w),
		N:   b2 & 0x0F,
		NN:  b2,
		NNN: w & 0x0FFF,
	}

	for _, op := range opcodes[w>>12] {
		if op.mask&w == op.value {
			ins.Kind = op.kind
			return ins
		}
	}
	return ins
}

// DecodeWord decodes a 16 bit opcode word.
func DecodeWord(w uint16) Instruction {
	return Decode(byte(w>>8), byte(w))
}

// extractRegisterX extracts the X register nibble from a CHIP-8 opcode.
func extractRegisterX(opcode uint16) int {
	return int(opcode&0x0F00) >> 8
}

// extractRegisterY extracts the Y register nibble from a CHIP-8 opcode.
func extractRegisterY(opcode uint16) int {
	return int(opcode&0x00F0) >> 4
}
