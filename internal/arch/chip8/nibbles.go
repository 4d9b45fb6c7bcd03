package chip8

import "fmt"

// Nibbles is a read-only view of a 16 bit instruction word as four 4 bit fields.
type Nibbles uint16

// Nibble returns the 4 bit field at the given index, 0 being the most
// significant nibble. It panics if the index is outside of [0, 3].
func (n Nibbles) Nibble(index int) uint8 {
	if index < 0 || index > 3 {
		panic(fmt.Sprintf("nibble index %d out of range [0, 3]", index))
	}
	return uint8(n>>(4*(3-index))) & 0xF
}

// Family returns the most significant nibble that selects the instruction family.
func (n Nibbles) Family() uint8 {
	return n.Nibble(0)
}

// X returns the register nibble of the Vx operand.
func (n Nibbles) X() uint8 {
	return n.Nibble(1)
}

// Y returns the register nibble of the Vy operand.
func (n Nibbles) Y() uint8 {
	return n.Nibble(2)
}

// N returns the lowest nibble.
func (n Nibbles) N() uint8 {
	return n.Nibble(3)
}

// KK returns the low byte.
func (n Nibbles) KK() uint8 {
	return uint8(n)
}

// NNN returns the low 12 bits, used as address operand.
func (n Nibbles) NNN() uint16 {
	return uint16(n) & 0x0FFF
}

// High returns the high byte of the word.
func (n Nibbles) High() uint8 {
	return uint8(n >> 8)
}

// Low returns the low byte of the word.
func (n Nibbles) Low() uint8 {
	return uint8(n)
}
