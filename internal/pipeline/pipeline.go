// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/JRHeaton/j8/internal/arch/chip8"
	"github.com/JRHeaton/j8/internal/config"
	"github.com/JRHeaton/j8/internal/detector"
	"github.com/JRHeaton/j8/internal/disasm"
	"github.com/JRHeaton/j8/internal/emulator"
	"github.com/JRHeaton/j8/internal/loader"
	"github.com/JRHeaton/j8/internal/machine"
	"github.com/JRHeaton/j8/internal/options"
	"github.com/JRHeaton/j8/internal/verification"
	"github.com/JRHeaton/j8/internal/writer"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Result contains the outcome of a pipeline execution.
type Result struct {
	State *machine.State
	Lines []disasm.Line
	Steps int // number of executed instructions
}

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler, output io.Writer) (*Result, error) {
	system, err := p.detector.Detect(opts)
	if err != nil {
		return nil, fmt.Errorf("detecting system: %w", err)
	}

	rom, err := p.loader.Load(opts)
	if err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	return p.ExecuteWithROM(ctx, rom, opts, disasmOpts, output, system)
}

// ExecuteWithROM runs the disassembly pipeline with a pre-loaded ROM.
// This is useful for testing and programmatic usage where the ROM is already in memory.
func (p *Pipeline) ExecuteWithROM(ctx context.Context, rom loader.ROM, opts options.Program,
	disasmOpts options.Disassembler, output io.Writer, system arch.System) (*Result, error) {

	disasmOpts.System = system

	state := machine.New()
	if err := (machine.StandardFont{}).Install(state); err != nil {
		return nil, fmt.Errorf("installing font: %w", err)
	}
	if err := state.Load(rom.Data, disasmOpts.LoadAddress); err != nil {
		return nil, fmt.Errorf("loading program into memory: %w", err)
	}

	start, end := disassemblyRange(disasmOpts, len(rom.Data))
	p.printInfo(opts, rom, start, end)

	lines, err := disasm.Disassemble(state, start, end)
	if err != nil {
		return nil, fmt.Errorf("disassembling: %w", err)
	}

	w := writer.New(output, writer.Options{
		HexComments:    disasmOpts.HexComments,
		OffsetComments: disasmOpts.OffsetComments,
		ZeroBytes:      disasmOpts.ZeroBytes,
	})
	header := writer.Header{
		Checksum:        rom.Checksum,
		CodeBaseAddress: disasmOpts.LoadAddress,
	}
	if err := w.Write(header, lines); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	result := &Result{
		State: state,
		Lines: lines,
	}

	if opts.AssembleTest {
		if err := verification.VerifyOutput(p.logger, state.Memory[start:end], lines); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	if opts.Run > 0 {
		steps, err := p.runProgram(ctx, opts, state, disasmOpts.LoadAddress)
		result.Steps = steps
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// runProgram executes the loaded program starting at the load address.
func (p *Pipeline) runProgram(ctx context.Context, opts options.Program, state *machine.State, entry uint16) (int, error) {
	state.PC = entry
	executor := chip8.NewExecutor(config.EmulatorConfig(opts), chip8.Capabilities{})
	emu := emulator.New(p.logger, state, executor)

	steps, err := emu.Run(ctx, opts.Run)
	switch {
	case errors.Is(err, emulator.ErrHalted):
		p.logger.Info("Program halted", log.Int("steps", steps), log.Hex("pc", state.PC))
		return steps, nil
	case err != nil:
		return steps, fmt.Errorf("running program: %w", err)
	}

	p.logger.Info("Program executed",
		log.Int("steps", steps),
		log.Hex("pc", state.PC),
		log.Hex("index", state.I))
	return steps, nil
}

// disassemblyRange returns the range to disassemble. Boundaries that are not
// set explicitly cover the loaded program, extended by one byte to a whole
// instruction if it fits into memory.
func disassemblyRange(opts options.Disassembler, size int) (int, int) {
	start := opts.Start
	if start == options.AutoAddress {
		start = int(opts.LoadAddress)
	}

	end := opts.End
	if end == options.AutoAddress {
		end = int(opts.LoadAddress) + size
		if end < start {
			end = start
		}
		if (end-start)%chip8.OpcodeSize != 0 {
			if end < machine.MemorySize {
				end++
			} else {
				end--
			}
		}
	}
	return start, end
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, rom loader.ROM, start, end int) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", len(rom.Data)),
		log.Hex("start", start),
		log.Hex("end", end),
	)
}
