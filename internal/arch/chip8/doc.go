// Package chip8 provides the CHIP-8 instruction model and decoder used by the listing generator.
//
// # Instruction Set
//
// CHIP-8 instructions are 16 bits wide and stored big endian:
//   - The most significant nibble selects the instruction family
//   - Families 8, E and F are further discriminated by the lowest nibble or the low byte
//   - Register operands are 4 bit indexes into V0-VF
//   - Immediates are 4 bit (DRW), 8 bit or 12 bit address values
//
// # Decoding
//
// Decode is a total function: every possible 16 bit word maps to an Instruction.
// Words that match no known pattern are returned as a raw instruction that has no
// opcode and carries the full word as its data, they are not treated as errors.
//
//	ins := chip8.Decode(0x6A02)
//	fmt.Println(ins) // LDI V10 0x2
//
// # Rendering
//
// The textual form of an instruction is the mnemonic followed by every present
// register operand and the immediate in hexadecimal. An immediate of 0 is not
// rendered, which keeps the output identical to existing listings.
//
// # Memory Constants
//
// The package defines key memory layout constants:
//   - ProgramStart (0x200): Where CHIP-8 programs begin execution
//   - MaxAddress (0xFFF): Highest valid memory address
package chip8

// CHIP-8 memory layout constants.
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space (4KB total).
	MaxAddress = 0xFFF
)
