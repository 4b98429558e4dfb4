package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestInstruction_CPUInstruction(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected *chip8.Instruction
	}{
		{"clear screen", 0x00E0, chip8.ClsInst},
		{"return", 0x00EE, chip8.RetInst},
		{"jump", 0x1234, chip8.JpInst},
		{"indexed jump", 0xB234, chip8.JpInst},
		{"call", 0x2234, chip8.CallInst},
		{"load index", 0xA234, chip8.LdInst},
		{"add index", 0xF21E, chip8.AddInst},
		{"draw", 0xD235, chip8.DrwInst},
		{"skip key not pressed", 0xE2A1, chip8.SknpInst},
		{"sys", 0x0123, nil},
		{"unknown", 0xFFFF, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := DecodeWord(tt.opcode)
			assert.Equal(t, tt.expected, ins.CPUInstruction())
			if tt.expected == nil {
				assert.Equal(t, "", ins.Name())
			} else {
				assert.Equal(t, tt.expected.Name, ins.Name())
			}
		})
	}
}

func TestInstruction_CPUInstruction_AllKnownKinds(t *testing.T) {
	for kind := ClearScreen; kind < kindCount; kind++ {
		ins := Instruction{Kind: kind}
		assert.NotNil(t, ins.CPUInstruction(), "kind %d", kind)
	}
}

func TestInstruction_Classification(t *testing.T) {
	tests := []struct {
		name                        string
		opcode                      uint16
		isCall, isJump, isReturn    bool
		isSkip, reads, writes, unkn bool
	}{
		{name: "call", opcode: 0x2300, isCall: true},
		{name: "jump", opcode: 0x1300, isJump: true},
		{name: "indexed jump", opcode: 0xB300, isJump: true},
		{name: "return", opcode: 0x00EE, isReturn: true},
		{name: "se immediate", opcode: 0x3234, isSkip: true},
		{name: "sne immediate", opcode: 0x4234, isSkip: true},
		{name: "se register", opcode: 0x5230, isSkip: true},
		{name: "sne register", opcode: 0x9230, isSkip: true},
		{name: "skp", opcode: 0xE29E, isSkip: true},
		{name: "sknp", opcode: 0xE2A1, isSkip: true},
		{name: "draw", opcode: 0xD125, reads: true},
		{name: "load registers", opcode: 0xF365, reads: true},
		{name: "store registers", opcode: 0xF355, writes: true},
		{name: "store bcd", opcode: 0xF333, writes: true},
		{name: "load immediate", opcode: 0x6A07},
		{name: "unknown", opcode: 0xFFFF, unkn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := DecodeWord(tt.opcode)
			assert.Equal(t, tt.isCall, ins.IsCall())
			assert.Equal(t, tt.isJump, ins.IsJump())
			assert.Equal(t, tt.isReturn, ins.IsReturn())
			assert.Equal(t, tt.isSkip, ins.IsSkip())
			assert.Equal(t, tt.reads, ins.ReadsMemory())
			assert.Equal(t, tt.writes, ins.WritesMemory())
			assert.Equal(t, tt.unkn, ins.IsUnknown())
		})
	}
}

func TestInstruction_BranchTarget(t *testing.T) {
	tests := []struct {
		name     string
		opcode   uint16
		expected uint16
		valid    bool
	}{
		{"jump", 0x1234, 0x234, true},
		{"call", 0x2ABC, 0xABC, true},
		{"indexed jump", 0xB234, 0, false},
		{"load index", 0xA234, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := DecodeWord(tt.opcode).BranchTarget()
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.expected, target)
		})
	}
}

func TestInstruction_DataReference(t *testing.T) {
	address, ok := DecodeWord(0xA2F0).DataReference()
	assert.True(t, ok)
	assert.Equal(t, uint16(0x2F0), address)

	_, ok = DecodeWord(0x62F0).DataReference()
	assert.False(t, ok)
}
