// Package loader handles ROM file loading operations.
package loader

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// wordSize is the size of a CHIP-8 instruction word in bytes.
const wordSize = 2

// ROM contains the instruction words of a loaded ROM file.
type ROM struct {
	Words    []uint16
	Trailing []byte // bytes after the last complete word, not decoded
}

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load loads a ROM file and splits it into big endian instruction words.
func (l *Loader) Load(path string) (*ROM, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	rom, err := l.LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("loading ROM %s: %w", path, err)
	}
	return rom, nil
}

// LoadReader reads all data of the reader and splits it into big endian
// instruction words.
func (l *Loader) LoadReader(reader io.Reader) (*ROM, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading data: %w", err)
	}
	return l.LoadFromBytes(data), nil
}

// LoadFromBytes splits the data into big endian instruction words. A trailing
// odd byte does not form a complete word and is dropped.
func (l *Loader) LoadFromBytes(data []byte) *ROM {
	count := len(data) / wordSize
	rom := &ROM{
		Words: make([]uint16, count),
	}
	for i := range rom.Words {
		rom.Words[i] = binary.BigEndian.Uint16(data[i*wordSize:])
	}
	if rest := data[count*wordSize:]; len(rest) > 0 {
		rom.Trailing = rest
	}
	return rom
}
