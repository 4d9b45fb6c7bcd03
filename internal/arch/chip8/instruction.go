package chip8

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOperand is returned when an instruction is constructed with an
// operand outside of its value range.
var ErrInvalidOperand = errors.New("invalid operand")

const (
	maxRegister = 0xF
	maxData     = 0xFFFF
)

type operandFlags uint8

const (
	hasVx operandFlags = 1 << iota
	hasVy
	hasData
)

// Instruction represents a decoded CHIP-8 instruction word. All operands are
// optional, an instruction without opcode represents an unrecognized word
// and carries the raw word as data.
type Instruction struct {
	op    Opcode
	vx    uint8
	vy    uint8
	data  uint16
	flags operandFlags
}

// Operand sets an optional operand of an instruction.
type Operand func(ins *Instruction) error

// WithVx sets the first register operand.
func WithVx(register int) Operand {
	return func(ins *Instruction) error {
		if register < 0 || register > maxRegister {
			return fmt.Errorf("%w: register Vx %d", ErrInvalidOperand, register)
		}
		ins.vx = uint8(register)
		ins.flags |= hasVx
		return nil
	}
}

// WithVy sets the second register operand.
func WithVy(register int) Operand {
	return func(ins *Instruction) error {
		if register < 0 || register > maxRegister {
			return fmt.Errorf("%w: register Vy %d", ErrInvalidOperand, register)
		}
		ins.vy = uint8(register)
		ins.flags |= hasVy
		return nil
	}
}

// WithData sets the immediate operand, it has to be a non-negative value
// that fits into an instruction word.
func WithData(data int) Operand {
	return func(ins *Instruction) error {
		if data < 0 || data > maxData {
			return fmt.Errorf("%w: data %d", ErrInvalidOperand, data)
		}
		ins.data = uint16(data)
		ins.flags |= hasData
		return nil
	}
}

// NewInstruction returns a new instruction for the given opcode and operands.
// An opcode of 0 creates an instruction without opcode.
func NewInstruction(op Opcode, operands ...Operand) (Instruction, error) {
	if op != 0 && !op.Valid() {
		return Instruction{}, fmt.Errorf("%w: opcode %d", ErrInvalidOperand, op)
	}

	ins := Instruction{op: op}
	for _, operand := range operands {
		if err := operand(&ins); err != nil {
			return Instruction{}, err
		}
	}
	return ins, nil
}

// mustInstruction is like NewInstruction but panics on an invalid operand.
// The decoder only passes operands extracted from nibble fields, a failure
// indicates a bug in the decode table.
func mustInstruction(op Opcode, operands ...Operand) Instruction {
	ins, err := NewInstruction(op, operands...)
	if err != nil {
		panic(fmt.Sprintf("creating %s instruction: %s", op, err))
	}
	return ins
}

// Raw returns an instruction without opcode that carries the given word.
func Raw(word uint16) Instruction {
	return Instruction{
		data:  word,
		flags: hasData,
	}
}

// Op returns the opcode of the instruction and whether it is present.
func (i Instruction) Op() (Opcode, bool) {
	return i.op, i.op.Valid()
}

// IsRaw returns true if the instruction did not match any known pattern.
func (i Instruction) IsRaw() bool {
	return !i.op.Valid()
}

// Vx returns the first register operand and whether it is present.
func (i Instruction) Vx() (uint8, bool) {
	return i.vx, i.flags&hasVx != 0
}

// Vy returns the second register operand and whether it is present.
func (i Instruction) Vy() (uint8, bool) {
	return i.vy, i.flags&hasVy != 0
}

// Data returns the immediate operand and whether it is present.
func (i Instruction) Data() (uint16, bool) {
	return i.data, i.flags&hasData != 0
}

// JumpAddress returns the destination address of a CALL or JPI instruction.
func (i Instruction) JumpAddress() (uint16, bool) {
	switch i.op {
	case Call, Jpi:
		return i.data, true
	default:
		return 0, false
	}
}

// String returns the mnemonic form of the instruction. Every element is
// followed by a space, except for the immediate. An immediate of value 0
// is not rendered. Instructions without opcode return an empty string.
func (i Instruction) String() string {
	if !i.op.Valid() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(i.op.String())
	sb.WriteByte(' ')
	if i.flags&hasVx != 0 {
		fmt.Fprintf(&sb, "V%d ", i.vx)
	}
	if i.flags&hasVy != 0 {
		fmt.Fprintf(&sb, "V%d ", i.vy)
	}
	if i.flags&hasData != 0 && i.data != 0 {
		fmt.Fprintf(&sb, "0x%x", i.data)
	}
	return sb.String()
}
