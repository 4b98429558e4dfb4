package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/JRHeaton/j8/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFile(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()

	input := filepath.Join(dir, "test.ch8")
	assert.NoError(t, os.WriteFile(input, []byte{0x6A, 0x07, 0x12, 0x00}, 0600))
	output := GenerateOutputFilename(input)

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: output},
		Flags:      options.Flags{Quiet: true, AssembleTest: true},
	}
	disasmOptions := options.NewDisassembler("")

	assert.NoError(t, ProcessFile(context.Background(), logger, opts, disasmOptions))

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "ld v10, 07")
	assert.Contains(t, string(data), "jmp Start")
}

func TestProcessFile_MissingInput(t *testing.T) {
	logger := log.NewTestLogger(t)
	dir := t.TempDir()

	opts := options.Program{
		Parameters: options.Parameters{
			Input:  filepath.Join(dir, "missing.ch8"),
			Output: filepath.Join(dir, "missing.asm"),
		},
		Flags: options.Flags{Quiet: true},
	}

	err := ProcessFile(context.Background(), logger, opts, options.NewDisassembler(""))
	assert.ErrorContains(t, err, "missing.ch8")
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ch8", "b.ch8", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0600))
	}

	opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.ch8")}}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	slices.Sort(files)
	assert.Equal(t, []string{filepath.Join(dir, "a.ch8"), filepath.Join(dir, "b.ch8")}, files)

	opts = &options.Program{Parameters: options.Parameters{Input: "pong.ch8"}}
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"pong.ch8"}, files)
}

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pong.ch8", "pong.asm"},
		{"roms/tetris.rom", "roms/tetris.asm"},
		{"game", "game.asm"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateOutputFilename(tt.input))
		})
	}
}

func TestPrintBanner(t *testing.T) {
	logger := log.NewTestLogger(t)
	PrintBanner(logger, options.Program{}, "1.0.0", "abcdef1234", "2026-10-18")
	PrintBanner(logger, options.Program{Flags: options.Flags{Quiet: true}}, "dev", "", "")
}
