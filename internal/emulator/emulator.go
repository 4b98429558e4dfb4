// Package emulator implements the fetch, decode and execute loop that drives
// a CHIP-8 machine state.
package emulator

import (
	"context"
	"errors"
	"fmt"

	"github.com/JRHeaton/j8/internal/arch/chip8"
	"github.com/JRHeaton/j8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// ErrHalted is returned by Run when the program jumps to its own address,
// which is the common way for CHIP-8 programs to end.
var ErrHalted = errors.New("program halted")

// Emulator steps a machine state using an executor.
type Emulator struct {
	logger   *log.Logger
	state    *machine.State
	executor *chip8.Executor
}

// New returns a new emulator for the given state.
func New(logger *log.Logger, state *machine.State, executor *chip8.Executor) *Emulator {
	return &Emulator{
		logger:   logger,
		state:    state,
		executor: executor,
	}
}

// State returns the machine state that the emulator operates on.
func (e *Emulator) State() *machine.State {
	return e.state
}

// Step fetches the instruction at the program counter, decodes and executes
// it and returns the executed instruction.
func (e *Emulator) Step() (chip8.Instruction, error) {
	pc := e.state.PC
	b1, b2, err := e.state.ReadOpcode(pc)
	if err != nil {
		return chip8.Instruction{}, fmt.Errorf("reading instruction: %w", err)
	}

	ins := chip8.Decode(b1, b2)
	e.logger.Debug("Executing instruction",
		log.Hex("pc", pc),
		log.Hex("opcode", uint16(b1)<<8|uint16(b2)),
		log.String("mnemonic", ins.String()))

	if err := e.executor.Execute(e.state, ins); err != nil {
		return ins, err
	}
	return ins, nil
}

// Run executes up to maxSteps instructions and returns the number of executed
// instructions. A maxSteps value of 0 or less runs until the context is done,
// an error occurs or the program halts.
func (e *Emulator) Run(ctx context.Context, maxSteps int) (int, error) {
	var steps int
	for maxSteps <= 0 || steps < maxSteps {
		if err := ctx.Err(); err != nil {
			return steps, fmt.Errorf("running program: %w", err)
		}

		pc := e.state.PC
		ins, err := e.Step()
		if err != nil {
			return steps, err
		}
		steps++

		if ins.Kind == chip8.Jump && e.state.PC == pc {
			e.logger.Debug("Program halted", log.Hex("pc", pc), log.Int("steps", steps))
			return steps, ErrHalted
		}
	}
	return steps, nil
}

// TickTimers decrements the delay and sound timers if they are not zero.
// The host is expected to call it at 60 Hz.
func (e *Emulator) TickTimers() {
	if e.state.DelayTimer > 0 {
		e.state.DelayTimer--
	}
	if e.state.SoundTimer > 0 {
		e.state.SoundTimer--
	}
}

// SoundActive returns whether the sound timer is running and a tone should
// be played.
func (e *Emulator) SoundActive() bool {
	return e.state.SoundTimer > 0
}
