// Package program represents a decoded CHIP-8 program.
package program

import (
	"github.com/retroenv/chip8disasm/internal/arch/chip8"
)

// Offset defines the content of a word offset in a program that can represent data or code.
type Offset struct {
	Address     uint16 // memory address of the word when loaded by the interpreter
	Word        uint16 // raw instruction word
	Instruction chip8.Instruction

	Type OffsetType
}

// Program defines a CHIP-8 program that contains code or data words in stream order.
type Program struct {
	LoadAddress uint16
	Offsets     []Offset
	Trailing    []byte // bytes after the last complete word
}

// New creates a new program that is loaded at the CHIP-8 program start address.
func New() *Program {
	return &Program{
		LoadAddress: chip8.ProgramStart,
	}
}

// Add decodes the word and appends it as next offset of the program.
func (p *Program) Add(word uint16) *Offset {
	ins := chip8.Decode(word)
	offset := Offset{
		Address:     p.LoadAddress + uint16(len(p.Offsets))*2,
		Word:        word,
		Instruction: ins,
	}
	if ins.IsRaw() {
		offset.SetType(DataOffset)
	} else {
		offset.SetType(CodeOffset)
	}

	p.Offsets = append(p.Offsets, offset)
	return &p.Offsets[len(p.Offsets)-1]
}

// Stats returns the number of recognized instructions and raw data words.
func (p *Program) Stats() (code, data int) {
	for i := range p.Offsets {
		if p.Offsets[i].IsType(CodeOffset) {
			code++
		} else {
			data++
		}
	}
	return code, data
}
