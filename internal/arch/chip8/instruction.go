package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// cpuInstructions maps each kind to the shared retrogolib CHIP-8 instruction
// definition of its mnemonic family. Sys and Unknown have no definition.
var cpuInstructions = [kindCount]*chip8.Instruction{
	ClearScreen:           chip8.ClsInst,
	Return:                chip8.RetInst,
	Jump:                  chip8.JpInst,
	Call:                  chip8.CallInst,
	SkipEqualImmediate:    chip8.SeInst,
	SkipNotEqualImmediate: chip8.SneInst,
	SkipEqualRegister:     chip8.SeInst,
	LoadImmediate:         chip8.LdInst,
	AddImmediate:          chip8.AddInst,
	LoadRegister:          chip8.LdInst,
	Or:                    chip8.OrInst,
	And:                   chip8.AndInst,
	Xor:                   chip8.XorInst,
	AddRegister:           chip8.AddInst,
	Sub:                   chip8.SubInst,
	ShiftRight:            chip8.ShrInst,
	SubN:                  chip8.SubnInst,
	ShiftLeft:             chip8.ShlInst,
	SkipNotEqualRegister:  chip8.SneInst,
	LoadIndex:             chip8.LdInst,
	JumpV0:                chip8.JpInst,
	Random:                chip8.RndInst,
	Draw:                  chip8.DrwInst,
	SkipKeyPressed:        chip8.SkpInst,
	SkipKeyNotPressed:     chip8.SknpInst,
	LoadDelayTimer:        chip8.LdInst,
	WaitKey:               chip8.LdInst,
	SetDelayTimer:         chip8.LdInst,
	SetSoundTimer:         chip8.LdInst,
	AddIndex:              chip8.AddInst,
	LoadFont:              chip8.LdInst,
	StoreBCD:              chip8.LdInst,
	StoreRegisters:        chip8.LdInst,
	LoadRegisters:         chip8.LdInst,
}

// CPUInstruction returns the retrogolib instruction definition of the
// mnemonic family, or nil for Sys and Unknown.
func (i Instruction) CPUInstruction() *chip8.Instruction {
	if i.Kind >= kindCount {
		return nil
	}
	return cpuInstructions[i.Kind]
}

// Name returns the family name of the instruction.
func (i Instruction) Name() string {
	ins := i.CPUInstruction()
	if ins == nil {
		return ""
	}
	return ins.Name
}

// IsUnknown returns true if the instruction did not decode to a known opcode.
func (i Instruction) IsUnknown() bool {
	return i.Kind == Unknown || i.Kind >= kindCount
}

// IsCall returns true if the instruction is a call instruction.
func (i Instruction) IsCall() bool {
	return i.Kind == Call
}

// IsJump returns true if the instruction is a direct or indexed jump.
func (i Instruction) IsJump() bool {
	return i.Kind == Jump || i.Kind == JumpV0
}

// IsReturn returns true if the instruction is a return instruction.
func (i Instruction) IsReturn() bool {
	return i.Kind == Return
}

// IsSkip returns true if the instruction is a conditional skip instruction.
func (i Instruction) IsSkip() bool {
	ins := i.CPUInstruction()
	if ins == nil {
		return false
	}
	return chip8.SkipInstructions.Contains(ins.Name)
}

// ReadsMemory returns true if executing the instruction reads memory at I.
func (i Instruction) ReadsMemory() bool {
	return i.Kind == Draw || i.Kind == LoadRegisters
}

// WritesMemory returns true if executing the instruction writes memory at I.
func (i Instruction) WritesMemory() bool {
	return i.Kind == StoreBCD || i.Kind == StoreRegisters
}

// BranchTarget returns the target address of a direct jump or call.
// Indexed jumps depend on V0 and have no static target.
func (i Instruction) BranchTarget() (uint16, bool) {
	if i.Kind != Jump && i.Kind != Call {
		return 0, false
	}
	return i.NNN, true
}

// DataReference returns the address loaded into I by ld I, addr.
func (i Instruction) DataReference() (uint16, bool) {
	if i.Kind != LoadIndex {
		return 0, false
	}
	return i.NNN, true
}
