// Package writer writes disassembled CHIP-8 programs as assembly listings.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/JRHeaton/j8/internal/disasm"
)

// Options of the writer.
type Options struct {
	HexComments    bool // output the opcode bytes as comment
	OffsetComments bool // output the address of every line as comment
	ZeroBytes      bool // output trailing zero bytes
}

// Header contains the details written as comment at the start of the listing.
type Header struct {
	Checksum        uint32 // CRC32 checksum of the program
	CodeBaseAddress uint16
}

// Writer writes a listing of disassembled lines.
type Writer struct {
	options Options
	writer  io.Writer
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write writes the header and all lines.
func (w *Writer) Write(header Header, lines []disasm.Line) error {
	if err := w.writeHeader(header); err != nil {
		return err
	}

	lines = lines[:w.endIndex(lines)]
	for i, line := range lines {
		if err := w.writeLabel(i, line); err != nil {
			return err
		}
		if err := w.writeLine(line); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeHeader(header Header) error {
	if _, err := fmt.Fprintf(w.writer, "; CHIP-8 ROM Disassembly\n"); err != nil {
		return fmt.Errorf("writing header comment: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", header.Checksum); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Code base address: $%04X\n\n", header.CodeBaseAddress); err != nil {
		return fmt.Errorf("writing code base address: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, ".org $%03X\n\n", header.CodeBaseAddress); err != nil {
		return fmt.Errorf("writing org directive: %w", err)
	}
	return nil
}

func (w *Writer) writeLabel(index int, line disasm.Line) error {
	if line.Label == "" {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(w.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w.writer, "%s:\n", line.Label); err != nil {
		return fmt.Errorf("writing label %s: %w", line.Label, err)
	}
	return nil
}

// writeLine writes a code line, or a data line for words that do not decode
// to an instruction.
func (w *Writer) writeLine(line disasm.Line) error {
	var code string
	if line.Instruction.IsUnknown() {
		code = fmt.Sprintf("    .byte $%02X, $%02X", line.Data[0], line.Data[1])
	} else {
		code = "    " + line.Code()
	}

	comment := w.comment(line)
	if comment == "" {
		if _, err := fmt.Fprintf(w.writer, "%s\n", code); err != nil {
			return fmt.Errorf("writing code: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "%-32s ; %s\n", code, comment); err != nil {
		return fmt.Errorf("writing code with comment: %w", err)
	}
	return nil
}

func (w *Writer) comment(line disasm.Line) string {
	var parts []string
	if w.options.OffsetComments {
		parts = append(parts, fmt.Sprintf("$%04X", line.Address))
	}
	if w.options.HexComments {
		parts = append(parts, fmt.Sprintf("%02X %02X", line.Data[0], line.Data[1]))
	}
	return strings.Join(parts, "  ")
}

// endIndex returns the index after the last line that contains a non zero
// byte or a label.
func (w *Writer) endIndex(lines []disasm.Line) int {
	if w.options.ZeroBytes {
		return len(lines)
	}

	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		if line.Data[0] != 0 || line.Data[1] != 0 || line.Label != "" {
			return i + 1
		}
	}
	return 0
}
