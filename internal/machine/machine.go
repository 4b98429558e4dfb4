// Package machine contains the mutable CHIP-8 machine state: registers,
// memory, call stack, key map and timers.
package machine

import (
	"errors"
	"fmt"
)

// CHIP-8 machine dimensions.
const (
	// ProgramStart is the address programs are loaded to and execution starts at.
	ProgramStart = 0x200
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000
	// RegisterCount is the number of general purpose registers V0-VF.
	RegisterCount = 16
	// FlagRegister is the index of VF, used as carry, borrow and collision flag.
	FlagRegister = 0xF
	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16
	// KeyCount is the number of keys on the hex keypad.
	KeyCount = 16
)

var (
	// ErrAddressOutOfRange is returned when a memory access is outside of memory.
	ErrAddressOutOfRange = errors.New("address out of range")
	// ErrRegisterOutOfRange is returned for register indices above VF.
	ErrRegisterOutOfRange = errors.New("register index out of range")
	// ErrCapacity is returned when data does not fit into memory at the requested address.
	ErrCapacity = errors.New("data exceeds memory capacity")
	// ErrStackOverflow is returned when a call is made with a full call stack.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned when returning from a subroutine with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
	// ErrKeyOutOfRange is returned for key numbers above 0xF.
	ErrKeyOutOfRange = errors.New("key out of range")
)

// State is the complete state of one emulated CHIP-8 machine.
// A State is owned by a single driver and is not safe for concurrent use.
type State struct {
	PC uint16 // program counter
	I  uint16 // index register

	Memory    [MemorySize]byte
	Registers [RegisterCount]byte

	DelayTimer byte
	SoundTimer byte

	stack    Stack
	keysDown map[byte]bool
}

// New returns a machine state initialized to its reset values.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset returns every field to its initial value: the program counter points
// to ProgramStart, registers, memory and timers are zeroed, the call stack
// and the key map are emptied.
func (s *State) Reset() {
	s.PC = ProgramStart
	s.I = 0
	clear(s.Memory[:])
	clear(s.Registers[:])
	s.DelayTimer = 0
	s.SoundTimer = 0
	s.stack.Clear()
	s.keysDown = map[byte]bool{}
}

// Register returns the value of register Vx.
func (s *State) Register(x int) (byte, error) {
	if x < 0 || x >= RegisterCount {
		return 0, fmt.Errorf("reading register %d: %w", x, ErrRegisterOutOfRange)
	}
	return s.Registers[x], nil
}

// SetRegister sets register Vx to value.
func (s *State) SetRegister(x int, value byte) error {
	if x < 0 || x >= RegisterCount {
		return fmt.Errorf("writing register %d: %w", x, ErrRegisterOutOfRange)
	}
	s.Registers[x] = value
	return nil
}

// SetFlag sets VF to 1 if set is true, otherwise to 0.
func (s *State) SetFlag(set bool) {
	if set {
		s.Registers[FlagRegister] = 1
		return
	}
	s.Registers[FlagRegister] = 0
}

// Stack returns the call stack of the machine.
func (s *State) Stack() *Stack {
	return &s.stack
}

// SetKey marks key as pressed or released.
func (s *State) SetKey(key byte, pressed bool) error {
	if key >= KeyCount {
		return fmt.Errorf("setting key %d: %w", key, ErrKeyOutOfRange)
	}
	if s.keysDown == nil {
		s.keysDown = map[byte]bool{}
	}
	s.keysDown[key] = pressed
	return nil
}

// KeyDown returns whether key is pressed. Keys that were never set and keys
// above 0xF are reported as not pressed.
func (s *State) KeyDown(key byte) bool {
	return s.keysDown[key]
}

// FirstKeyDown returns the lowest numbered pressed key.
func (s *State) FirstKeyDown() (byte, bool) {
	for key := range byte(KeyCount) {
		if s.keysDown[key] {
			return key, true
		}
	}
	return 0, false
}
