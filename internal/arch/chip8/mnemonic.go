package chip8

import "fmt"

// UnknownMnemonic is rendered for instructions without a mnemonic.
const UnknownMnemonic = "<Unknown Instruction>"

// String returns the mnemonic of the instruction. Registers are rendered as
// v<index> in decimal, addresses and immediates as lower case hex with at
// least 2 digits and without prefix.
//
//nolint:cyclop // one case per instruction kind
func (i Instruction) String() string {
	switch i.Kind {
	case Sys:
		return "sys " + hex(i.NNN)
	case ClearScreen:
		return "cls"
	case Return:
		return "ret"
	case Jump:
		return "jmp " + hex(i.NNN)
	case Call:
		return "call " + hex(i.NNN)
	case SkipEqualImmediate:
		return fmt.Sprintf("se v%d, %s", i.X, hex8(i.NN))
	case SkipNotEqualImmediate:
		return fmt.Sprintf("sne v%d, %s", i.X, hex8(i.NN))
	case SkipEqualRegister:
		return fmt.Sprintf("se v%d, v%d", i.X, i.Y)
	case LoadImmediate:
		return fmt.Sprintf("ld v%d, %s", i.X, hex8(i.NN))
	case AddImmediate:
		return fmt.Sprintf("add v%d, %s", i.X, hex8(i.NN))
	case LoadRegister:
		return fmt.Sprintf("ld v%d, v%d", i.X, i.Y)
	case Or:
		return fmt.Sprintf("or v%d, v%d", i.X, i.Y)
	case And:
		return fmt.Sprintf("and v%d, v%d", i.X, i.Y)
	case Xor:
		return fmt.Sprintf("xor v%d, v%d", i.X, i.Y)
	case AddRegister:
		return fmt.Sprintf("add v%d, v%d", i.X, i.Y)
	case Sub:
		return fmt.Sprintf("sub v%d, v%d", i.X, i.Y)
	case ShiftRight:
		return fmt.Sprintf("shr v%d", i.X)
	case SubN:
		return fmt.Sprintf("subn v%d, v%d", i.X, i.Y)
	case ShiftLeft:
		return fmt.Sprintf("shl v%d", i.X)
	case SkipNotEqualRegister:
		return fmt.Sprintf("sne v%d, v%d", i.X, i.Y)
	case LoadIndex:
		return "ld I, " + hex(i.NNN)
	case JumpV0:
		return "jmp v0, " + hex(i.NNN)
	case Random:
		return fmt.Sprintf("rnd v%d, %s", i.X, hex8(i.NN))
	case Draw:
		return fmt.Sprintf("drw v%d, v%d, %s", i.X, i.Y, hex8(i.N))
	case SkipKeyPressed:
		return fmt.Sprintf("skp v%d", i.X)
	case SkipKeyNotPressed:
		return fmt.Sprintf("sknp v%d", i.X)
	case LoadDelayTimer:
		return fmt.Sprintf("ld v%d, [dt]", i.X)
	case WaitKey:
		return fmt.Sprintf("ld v%d, [key]", i.X)
	case SetDelayTimer:
		return fmt.Sprintf("ld [dt], v%d", i.X)
	case SetSoundTimer:
		return fmt.Sprintf("ld [st], v%d", i.X)
	case AddIndex:
		return fmt.Sprintf("add I, v%d", i.X)
	case LoadFont:
		return fmt.Sprintf("ld F, v%d", i.X)
	case StoreBCD:
		return fmt.Sprintf("ld B, v%d", i.X)
	case StoreRegisters:
		return fmt.Sprintf("ld [I], v%d", i.X)
	case LoadRegisters:
		return fmt.Sprintf("ld v%d, [I]", i.X)
	default:
		return UnknownMnemonic
	}
}

func hex(value uint16) string {
	return fmt.Sprintf("%02x", value)
}

func hex8(value byte) string {
	return hex(uint16(value))
}
