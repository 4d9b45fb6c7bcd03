// Package writer implements the listing output of a decoded program.
package writer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/retroenv/chip8disasm/internal/arch/chip8"
	"github.com/retroenv/chip8disasm/internal/options"
	"github.com/retroenv/chip8disasm/internal/program"
)

// paddingLine represents a reserved memory byte before the program load address.
const paddingLine = "0x00"

// Writer writes a listing that interleaves the raw bytes of every word with
// the mnemonic of the decoded instruction.
type Writer struct {
	app     *program.Program
	options options.Listing
	writer  *bufio.Writer
}

// New creates a new listing writer.
func New(app *program.Program, writer io.Writer, options options.Listing) *Writer {
	return &Writer{
		app:     app,
		options: options,
		writer:  bufio.NewWriter(writer),
	}
}

// Write writes the padding block followed by two lines for every program
// word, the high byte line carries the mnemonic as comment.
func (w *Writer) Write() error {
	if err := w.writePadding(); err != nil {
		return err
	}

	for i := range w.app.Offsets {
		if err := w.writeOffset(w.app.Offsets[i]); err != nil {
			return fmt.Errorf("writing offset $%04x: %w", w.app.Offsets[i].Address, err)
		}
	}

	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

func (w *Writer) writePadding() error {
	for range w.options.PaddingLines {
		if _, err := fmt.Fprintln(w.writer, paddingLine); err != nil {
			return fmt.Errorf("writing padding line: %w", err)
		}
	}
	return nil
}

func (w *Writer) writeOffset(offset program.Offset) error {
	nibbles := chip8.Nibbles(offset.Word)
	high := FormatByte(nibbles.High())
	low := FormatByte(nibbles.Low())

	if w.options.Comments && offset.IsType(program.CodeOffset) {
		if _, err := fmt.Fprintf(w.writer, "%s  # %s\n", high, offset.Instruction); err != nil {
			return fmt.Errorf("writing code line: %w", err)
		}
	} else {
		if _, err := fmt.Fprintln(w.writer, high); err != nil {
			return fmt.Errorf("writing data line: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w.writer, low); err != nil {
		return fmt.Errorf("writing data line: %w", err)
	}
	return nil
}

// FormatByte returns the byte as lowercase hex value with 0x prefix and 2 digits.
func FormatByte(b byte) string {
	return fmt.Sprintf("0x%02x", b)
}
