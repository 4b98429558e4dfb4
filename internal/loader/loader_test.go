package loader

import (
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/JRHeaton/j8/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load CHIP8 file", func(t *testing.T) {
		data := []byte{0x6A, 0x07, 0x12, 0x00}
		tmpFile := createTempFile(t, data)

		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		rom, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, data, rom.Data)
		assert.Equal(t, crc32.ChecksumIEEE(data), rom.Checksum)
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		loader := New()
		opts := options.Program{
			Parameters: options.Parameters{Input: "/nonexistent/file.ch8"},
		}

		_, err := loader.Load(opts)
		assert.Error(t, err)
	})
}

func TestLoadFromBytes(t *testing.T) {
	t.Run("keeps program length", func(t *testing.T) {
		data := []byte{0x12, 0x34, 0x56}
		loader := New()

		rom, err := loader.LoadFromBytes(data)
		assert.NoError(t, err)
		assert.Len(t, rom.Data, 3)
		assert.Equal(t, data, rom.Data)
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "test.ch8")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
