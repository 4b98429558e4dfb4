// Package options contains the program options.
package options

import (
	"github.com/retroenv/retrogolib/arch"
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	Output string `flag:"o" usage:"output .asm file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.ch8)"`
}

// Flags contains behavior options.
type Flags struct {
	System       string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
	Load         string `flag:"load" usage:"memory address to load the ROM at" default:"200"`
	Start        string `flag:"start" usage:"first address to disassemble (default: load address)"`
	End          string `flag:"end" usage:"address after the last disassembled byte (default: end of ROM)"`
	Run          int    `flag:"run" usage:"number of instructions to execute after disassembling"`
	AssembleTest bool   `flag:"verify" usage:"verify that the output recreates the input"`
	Debug        bool   `flag:"debug" usage:"enable debug logging"`
	Quiet        bool   `flag:"q" usage:"quiet mode"`
}

// EmulationFlags contains options that select between interpreter quirks.
type EmulationFlags struct {
	ShiftLeftMSB    bool `flag:"shl-msb" usage:"store the shifted out high bit in VF for shl"`
	SubtractXMinusY bool `flag:"sub-vx-vy" usage:"compute VX - VY for sub instead of VY - VX"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoHexComments bool `flag:"nohexcomments" usage:"omit hex opcode bytes in comments"`
	NoOffsets     bool `flag:"nooffsets" usage:"omit addresses in comments"`
	ZeroBytes     bool `flag:"z" usage:"include trailing zero bytes"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	EmulationFlags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	System arch.System // system type, only chip8 is supported

	LoadAddress uint16 // address that the ROM is loaded at
	Start       int    // first disassembled address, -1 for the load address
	End         int    // end of the disassembled range, -1 for the end of the ROM

	HexComments    bool
	OffsetComments bool
	ZeroBytes      bool
}

// AutoAddress marks a range boundary that is derived from the loaded ROM.
const AutoAddress = -1

// NewDisassembler returns a new options instance with default options.
func NewDisassembler(system string) Disassembler {
	return Disassembler{
		System:      arch.System(system),
		LoadAddress: 0x200,
		Start:       AutoAddress,
		End:         AutoAddress,

		HexComments:    true,
		OffsetComments: true,
	}
}
