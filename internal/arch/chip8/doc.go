// Package chip8 implements the CHIP-8 instruction set: decoding of 2 byte
// opcodes into instructions, execution of instructions against a machine
// state and rendering of instructions as mnemonics.
//
// # Instruction Set
//
// All instructions are 2 bytes (16 bits) stored big endian. The top nibble
// of the first byte selects the opcode family, families 0, 8, E and F use
// the second byte or its low nibble to select the operation. Operands are
// extracted at fixed bit positions:
//
//	NNN: 12 bit address, low nibble of byte 1 and all of byte 2
//	X:   register index, low nibble of byte 1
//	Y:   register index, high nibble of byte 2
//	NN:  8 bit immediate, all of byte 2
//	N:   4 bit count, low nibble of byte 2
//
// Decoding never fails, opcodes that do not match a known pattern decode to
// an instruction of kind Unknown.
//
// # Execution
//
// Execution advances the program counter by 2 unless the instruction
// redirects control flow. Jumps, calls and returns set the program counter
// directly, satisfied skips advance it by 4. Instructions that need a
// display, keypad or font are executed through the Capabilities passed to
// NewExecutor, missing capabilities turn drawing into a no-op.
//
// # Usage Example
//
//	state := machine.New()
//	if err := state.LoadProgram(rom); err != nil {
//		return fmt.Errorf("loading program: %w", err)
//	}
//
//	b1, b2, err := state.ReadOpcode(state.PC)
//	if err != nil {
//		return err
//	}
//	ins := chip8.Decode(b1, b2)
//	fmt.Println(ins) // ld v10, 07
//
//	exec := chip8.NewExecutor(chip8.Config{}, chip8.Capabilities{})
//	if err := exec.Execute(state, ins); err != nil {
//		return fmt.Errorf("executing %s: %w", ins, err)
//	}
package chip8
