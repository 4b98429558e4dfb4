package chip8

import (
	"fmt"
	"math/rand/v2"

	"github.com/JRHeaton/j8/internal/machine"
)

// Display is the pixel display driven by cls and drw.
type Display interface {
	// Clear turns all pixels off.
	Clear()
	// Draw XORs the sprite rows onto the display at x, y and returns true
	// if any pixel was turned off.
	Draw(x, y byte, sprite []byte) bool
}

// Keypad provides blocking key input for ld vX, [key].
type Keypad interface {
	// WaitKey returns the next pressed key, or false if no key is pressed yet.
	WaitKey() (byte, bool)
}

// Font resolves the sprite address of a hex digit for ld F, vX.
type Font interface {
	DigitAddress(digit byte) uint16
}

// RandomSource provides the random bytes for rnd.
type RandomSource interface {
	Byte() byte
}

// Capabilities are the external collaborators used by instructions that
// interact with the presentation layer. All fields are optional.
type Capabilities struct {
	Display Display
	Keypad  Keypad
	Font    Font         // defaults to machine.StandardFont
	Random  RandomSource // defaults to math/rand/v2
}

// Config selects between behaviours that differ across CHIP-8 interpreters.
type Config struct {
	// ShiftLeftFlagMSB stores the shifted out high bit in VF for shl.
	// By default the low bit of the register is stored.
	ShiftLeftFlagMSB bool

	// SubtractXMinusY computes VX - VY for sub. By default sub computes
	// VY - VX like subn.
	SubtractXMinusY bool
}

type mathRandom struct{}

func (mathRandom) Byte() byte {
	return byte(rand.UintN(256))
}

// Executor applies instructions to a machine state.
type Executor struct {
	config Config
	caps   Capabilities
}

// NewExecutor returns a new executor using the given behaviour configuration
// and capabilities.
func NewExecutor(config Config, caps Capabilities) *Executor {
	if caps.Font == nil {
		caps.Font = machine.StandardFont{}
	}
	if caps.Random == nil {
		caps.Random = mathRandom{}
	}
	return &Executor{
		config: config,
		caps:   caps,
	}
}

// Execute applies the instruction to the state and advances the program
// counter. On error the program counter is left unchanged.
func (e *Executor) Execute(s *machine.State, ins Instruction) error {
	if err := checkRegisters(ins); err != nil {
		return fmt.Errorf("executing %s at %04x: %w", ins, s.PC, err)
	}

	next, err := e.apply(s, ins)
	if err != nil {
		return fmt.Errorf("executing %s at %04x: %w", ins, s.PC, err)
	}
	s.PC = next
	return nil
}

// apply executes the instruction and returns the new program counter.
//
//nolint:funlen,cyclop // one case per instruction kind
func (e *Executor) apply(s *machine.State, ins Instruction) (uint16, error) {
	v := &s.Registers
	x, y := ins.X, ins.Y
	next := s.PC + OpcodeSize

	switch ins.Kind {
	case ClearScreen:
		if e.caps.Display != nil {
			e.caps.Display.Clear()
		}

	case Return:
		address, err := s.Stack().Pop()
		if err != nil {
			return 0, err
		}
		next = address

	case Jump:
		next = ins.NNN

	case Call:
		if err := s.Stack().Push(next); err != nil {
			return 0, err
		}
		next = ins.NNN

	case SkipEqualImmediate:
		if v[x] == ins.NN {
			next += OpcodeSize
		}

	case SkipNotEqualImmediate:
		if v[x] != ins.NN {
			next += OpcodeSize
		}

	case SkipEqualRegister:
		if v[x] == v[y] {
			next += OpcodeSize
		}

	case LoadImmediate:
		v[x] = ins.NN

	case AddImmediate:
		v[x] += ins.NN

	case LoadRegister:
		v[x] = v[y]

	case Or:
		v[x] |= v[y]

	case And:
		v[x] &= v[y]

	case Xor:
		v[x] ^= v[y]

	case AddRegister:
		sum := uint16(v[x]) + uint16(v[y])
		v[x] = byte(sum)
		s.SetFlag(sum > 0xFF)

	case Sub:
		minuend, subtrahend := v[y], v[x]
		if e.config.SubtractXMinusY {
			minuend, subtrahend = v[x], v[y]
		}
		v[x] = minuend - subtrahend
		s.SetFlag(minuend >= subtrahend)

	case ShiftRight:
		v[machine.FlagRegister] = v[x] & 0x01
		v[x] >>= 1

	case SubN:
		s.SetFlag(v[y] >= v[x])
		v[x] = v[y] - v[x]

	case ShiftLeft:
		if e.config.ShiftLeftFlagMSB {
			v[machine.FlagRegister] = v[x] >> 7
		} else {
			v[machine.FlagRegister] = v[x] & 0x01
		}
		v[x] <<= 1

	case SkipNotEqualRegister:
		if v[x] != v[y] {
			next += OpcodeSize
		}

	case LoadIndex:
		s.I = ins.NNN

	case JumpV0:
		next = ins.NNN + uint16(v[0])

	case Random:
		v[x] = e.caps.Random.Byte() & ins.NN

	case Draw:
		if e.caps.Display == nil {
			break
		}
		sprite, err := s.Slice(s.I, int(ins.N))
		if err != nil {
			return 0, err
		}
		s.SetFlag(e.caps.Display.Draw(v[x], v[y], sprite))

	case SkipKeyPressed:
		if s.KeyDown(v[x]) {
			next += OpcodeSize
		}

	case SkipKeyNotPressed:
		if !s.KeyDown(v[x]) {
			next += OpcodeSize
		}

	case LoadDelayTimer:
		v[x] = s.DelayTimer

	case WaitKey:
		key, ok := e.waitKey(s)
		if !ok {
			next = s.PC // repeat until a key is pressed
			break
		}
		v[x] = key

	case SetDelayTimer:
		s.DelayTimer = v[x]

	case SetSoundTimer:
		s.SoundTimer = v[x]

	case AddIndex:
		s.I += uint16(v[x])

	case LoadFont:
		s.I = e.caps.Font.DigitAddress(v[x])

	case StoreBCD:
		mem, err := s.Slice(s.I, 3)
		if err != nil {
			return 0, err
		}
		mem[0] = v[x] / 100
		mem[1] = v[x] / 10 % 10
		mem[2] = v[x] % 10

	case StoreRegisters:
		mem, err := s.Slice(s.I, x+1)
		if err != nil {
			return 0, err
		}
		copy(mem, v[:x+1])

	case LoadRegisters:
		mem, err := s.Slice(s.I, x+1)
		if err != nil {
			return 0, err
		}
		copy(v[:x+1], mem)

	default: // Unknown, Sys
	}

	return next, nil
}

func (e *Executor) waitKey(s *machine.State) (byte, bool) {
	if e.caps.Keypad != nil {
		return e.caps.Keypad.WaitKey()
	}
	return s.FirstKeyDown()
}

// checkRegisters validates the register operands of hand built instructions,
// decoded instructions always use valid indices.
func checkRegisters(ins Instruction) error {
	if ins.X < 0 || ins.X >= machine.RegisterCount {
		return fmt.Errorf("register X %d: %w", ins.X, machine.ErrRegisterOutOfRange)
	}
	if ins.Y < 0 || ins.Y >= machine.RegisterCount {
		return fmt.Errorf("register Y %d: %w", ins.Y, machine.ErrRegisterOutOfRange)
	}
	return nil
}
