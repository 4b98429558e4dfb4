package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestInstruction_Opcode(t *testing.T) {
	tests := []struct {
		name     string
		ins      Instruction
		expected uint16
		valid    bool
	}{
		{"jump", Instruction{Kind: Jump, X: 2, NN: 0x34}, 0x1234, true},
		{"load immediate", Instruction{Kind: LoadImmediate, X: 0xA, NN: 0x07}, 0x6A07, true},
		{"shift left keeps y", Instruction{Kind: ShiftLeft, X: 1, NN: 0x2E}, 0x812E, true},
		{"sub operation bits are forced", Instruction{Kind: Or, X: 1, NN: 0x2F}, 0x8121, true},
		{"wait key", Instruction{Kind: WaitKey, X: 3, NN: 0x0A}, 0xF30A, true},
		{"unknown", Instruction{Kind: Unknown}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opcode, ok := tt.ins.Opcode()
			assert.Equal(t, tt.valid, ok)
			assert.Equal(t, tt.expected, opcode)
		})
	}
}

func TestInstruction_Bytes(t *testing.T) {
	data, ok := DecodeWord(0xD125).Bytes()
	assert.True(t, ok)
	assert.Equal(t, []byte{0xD1, 0x25}, data)

	data, ok = DecodeWord(0xFFFF).Bytes()
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestLookupOpcode(t *testing.T) {
	tests := []struct {
		name     string
		b1, b2   byte
		expected *chip8.Instruction
	}{
		{"CLS", 0x00, 0xE0, chip8.ClsInst},
		{"JP", 0x12, 0x34, chip8.JpInst},
		{"CALL", 0x23, 0x00, chip8.CallInst},
		{"SE Vx, byte", 0x32, 0x34, chip8.SeInst},
		{"LD I, addr", 0xA2, 0x34, chip8.LdInst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := LookupOpcode(tt.b1, tt.b2)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, op.Instruction)
		})
	}

	_, ok := LookupOpcode(0xFF, 0xFF)
	assert.False(t, ok)
}

func TestCrossCheck(t *testing.T) {
	tests := []struct {
		name   string
		b1, b2 byte
		kind   Kind
	}{
		{"CLS", 0x00, 0xE0, ClearScreen},
		{"JP", 0x12, 0x34, Jump},
		{"CALL", 0x23, 0x00, Call},
		{"SE Vx, byte", 0x32, 0x34, SkipEqualImmediate},
		{"LD I, addr", 0xA2, 0x34, LoadIndex},
		{"unknown", 0xFF, 0xFF, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins, _, ok := CrossCheck(tt.b1, tt.b2)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, ins.Kind)
		})
	}
}
