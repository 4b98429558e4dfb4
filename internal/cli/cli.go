// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/JRHeaton/j8/internal/machine"
	"github.com/JRHeaton/j8/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	return parseArgs(os.Args[0], os.Args[1:], flag.ExitOnError)
}

func parseArgs(name string, arguments []string, handling flag.ErrorHandling) (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(name, handling)
	var opts options.Program
	readOptionFlags(flags, &opts)

	var outputFlags options.OutputFlags
	readOutputFlags(flags, &outputFlags)

	err := flags.Parse(arguments)
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Batch == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}
	opts.OutputFlags = outputFlags

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Batch == "" {
		opts.Input = args[0]
	}

	disasmOptions, err := createDisasmOptions(opts)
	if err != nil {
		return opts, options.Disassembler{}, err
	}
	if err := validateOptionCombinations(opts, disasmOptions); err != nil {
		return opts, options.Disassembler{}, err
	}

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: j8 [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// createDisasmOptions creates disassembler options based on program options
func createDisasmOptions(opts options.Program) (options.Disassembler, error) {
	disasmOptions := options.NewDisassembler(strings.ToLower(opts.System))
	disasmOptions.HexComments = !opts.NoHexComments
	disasmOptions.OffsetComments = !opts.NoOffsets
	disasmOptions.ZeroBytes = opts.ZeroBytes

	load, err := parseAddress("load", opts.Load, int(disasmOptions.LoadAddress))
	if err != nil {
		return disasmOptions, err
	}
	disasmOptions.LoadAddress = uint16(load)

	if disasmOptions.Start, err = parseAddress("start", opts.Start, options.AutoAddress); err != nil {
		return disasmOptions, err
	}
	if disasmOptions.End, err = parseAddress("end", opts.End, options.AutoAddress); err != nil {
		return disasmOptions, err
	}
	return disasmOptions, nil
}

// parseAddress parses a hex address with an optional 0x or $ prefix.
// Addresses may point one byte past the end of memory to express the end
// of a range.
func parseAddress(name, value string, defaultValue int) (int, error) {
	if value == "" {
		return defaultValue, nil
	}

	s := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(value), "0x"), "$")
	address, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, &UsageError{msg: fmt.Sprintf("invalid %s address '%s'", name, value)}
	}
	if address > machine.MemorySize {
		return 0, &UsageError{msg: fmt.Sprintf("%s address %04x exceeds memory size %04x", name, address, machine.MemorySize)}
	}
	return int(address), nil
}

// validateOptionCombinations checks for incompatible option combinations
func validateOptionCombinations(opts options.Program, disasmOpts options.Disassembler) error {
	if disasmOpts.Start != options.AutoAddress && disasmOpts.End != options.AutoAddress &&
		disasmOpts.Start > disasmOpts.End {
		return &UsageError{msg: fmt.Sprintf("start address %04x is after end address %04x", disasmOpts.Start, disasmOpts.End)}
	}
	if opts.Run < 0 {
		return &UsageError{msg: "number of instructions to run can not be negative"}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output .asm file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .asm file naming, for example *.ch8")
	flags.StringVar(&opts.System, "s", "", "system to disassemble for (chip8) - if not auto-detected from file extension")
	flags.StringVar(&opts.Load, "load", "", "hex memory address to load the ROM at (default 200)")
	flags.StringVar(&opts.Start, "start", "", "hex address of the first instruction to disassemble, defaults to the load address")
	flags.StringVar(&opts.End, "end", "", "hex address after the last byte to disassemble, defaults to the end of the ROM")
	flags.IntVar(&opts.Run, "run", 0, "number of instructions to execute after disassembling")
	flags.BoolVar(&opts.ShiftLeftMSB, "shl-msb", false, "store the shifted out high bit in VF for shl instead of the low bit")
	flags.BoolVar(&opts.SubtractXMinusY, "sub-vx-vy", false, "compute VX - VY for sub instead of VY - VX")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify that the generated output recreates the input")
}

func readOutputFlags(flags *flag.FlagSet, opts *options.OutputFlags) {
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output addresses in comments")
	flags.BoolVar(&opts.ZeroBytes, "z", false, "output the trailing zero bytes of the program")
}
