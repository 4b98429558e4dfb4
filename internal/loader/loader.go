// Package loader handles ROM file loading operations.
package loader

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/JRHeaton/j8/internal/options"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

// ROM is a loaded program image.
type ROM struct {
	Data     []byte // program bytes, without padding
	Checksum uint32 // CRC32 checksum of the program bytes
}

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the input file of the options as raw program image.
func (l *Loader) Load(opts options.Program) (ROM, error) {
	data, err := os.ReadFile(opts.Input)
	if err != nil {
		return ROM{}, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}
	return l.LoadFromBytes(data)
}

// LoadFromBytes loads a raw program image from a byte buffer.
func (l *Loader) LoadFromBytes(data []byte) (ROM, error) {
	// the buffer is padded to a full bank, the program keeps its own length
	cart, err := cartridge.LoadBuffer(bytes.NewReader(data))
	if err != nil {
		return ROM{}, fmt.Errorf("loading program: %w", err)
	}
	program := cart.PRG[:len(data)]

	return ROM{
		Data:     program,
		Checksum: crc32.ChecksumIEEE(program),
	}, nil
}
