package fileprocessor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "game.ch8")
	assert.NoError(t, os.WriteFile(input, []byte{0x00, 0xE0, 0x12, 0x00}, 0o600))

	opts := options.Program{
		Parameters: options.Parameters{
			Input:  input,
			Output: filepath.Join(dir, "game.lst"),
		},
	}

	err := ProcessFile(log.NewTestLogger(t), opts, options.NewListing())
	assert.NoError(t, err)

	data, err := os.ReadFile(opts.Output)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, options.DefaultPaddingLines+4)
	assert.Equal(t, "0x00  # CLS ", lines[options.DefaultPaddingLines])
	assert.Equal(t, "0x12  # JPI 0x200", lines[options.DefaultPaddingLines+2])
}

func TestProcessFile_Errors(t *testing.T) {
	dir := t.TempDir()

	opts := options.Program{
		Parameters: options.Parameters{
			Input:  filepath.Join(dir, "missing.ch8"),
			Output: filepath.Join(dir, "missing.lst"),
		},
	}
	err := ProcessFile(log.NewTestLogger(t), opts, options.NewListing())
	assert.ErrorContains(t, err, "missing.ch8")

	_, err = os.Stat(opts.Output)
	assert.True(t, os.IsNotExist(err))

	input := filepath.Join(dir, "game.ch8")
	assert.NoError(t, os.WriteFile(input, []byte{0x00, 0xE0}, 0o600))
	opts.Input = input
	opts.Output = filepath.Join(dir, "nonexistent", "out.lst")
	err = ProcessFile(log.NewTestLogger(t), opts, options.NewListing())
	assert.ErrorContains(t, err, "creating writer")
}

func TestProcessFile_LoadErrorKeepsOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "game.lst")
	assert.NoError(t, os.WriteFile(output, []byte("previous listing\n"), 0o600))

	opts := options.Program{
		Parameters: options.Parameters{
			Input:  filepath.Join(dir, "unreadable.ch8"),
			Output: output,
		},
	}
	err := ProcessFile(log.NewTestLogger(t), opts, options.NewListing())
	assert.ErrorContains(t, err, "loading ROM")

	data, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, "previous listing\n", string(data))
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.ch8", "b.ch8", "c.txt"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}

	opts := &options.Program{
		Parameters: options.Parameters{Batch: filepath.Join(dir, "*.ch8")},
	}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Len(t, files, 2)

	opts = &options.Program{
		Parameters: options.Parameters{Batch: filepath.Join(dir, "*.rom")},
	}
	_, err = GetFilesToProcess(opts)
	assert.True(t, errors.Is(err, ErrNoFilesMatched))

	opts = &options.Program{
		Parameters: options.Parameters{Input: "game.ch8"},
	}
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"game.ch8"}, files)
}

func TestGenerateOutputFilename(t *testing.T) {
	assert.Equal(t, "game.lst", GenerateOutputFilename("game.ch8"))
	assert.Equal(t, "dir/rom.lst", GenerateOutputFilename("dir/rom"))
}
