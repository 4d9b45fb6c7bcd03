package chip8

// Opcode is the decoded operation tag of an instruction word.
// The zero value represents an absent opcode of an unrecognized word.
type Opcode uint8

// Opcodes of the CHIP-8 instruction set.
const (
	_ Opcode = iota

	Cls  // 00E0 clear screen
	Ret  // 00EE return from subroutine
	Jp   // jump, not produced by the decoder
	Jpi  // 1nnn jump to address
	Jpo  // Bnnn jump to address + V0
	Call // 2nnn call subroutine
	Se   // 5xy0 skip if Vx == Vy
	Sei  // 3xkk skip if Vx == kk
	Sne  // 9xy0 skip if Vx != Vy
	Snei // 4xkk skip if Vx != kk
	Sti  // Annn set I to address
	Ld   // 8xy0 Vx = Vy
	Ldi  // 6xkk Vx = kk
	Add  // 7xkk Vx += kk and 8xy4 Vx += Vy
	Addi // immediate add, not produced by the decoder
	Or   // 8xy1
	And  // 8xy2
	Xor  // 8xy3
	Sub  // 8xy5
	Shr  // 8xy6
	Subn // 8xy7
	Shl  // 8xyF
	Rnd  // Cxkk Vx = random & kk
	Drw  // Dxyn draw n byte sprite
	Skp  // Ex9E skip if key Vx is pressed
	Sknp // ExA1 skip if key Vx is not pressed

	LdVxDt // Fx07 Vx = delay timer
	LdVxK  // Fx0A wait for key press, store in Vx
	LdDtVx // Fx15 delay timer = Vx
	LdStVx // Fx18 sound timer = Vx
	AddIVx // Fx1E I += Vx
	LdFVx  // Fx29 I = glyph sprite address of Vx
	LdBVx  // Fx33 store BCD digits of Vx at I
	LdIVx  // Fx55 store V0..Vx at I
	LdVxI  // Fx65 load V0..Vx from I

	opcodeCount
)

// names maps every opcode to its mnemonic. Add and Addi share the
// mnemonic ADDI, listings generated by older tools depend on it.
var names = [opcodeCount]string{
	Cls:    "CLS",
	Ret:    "RET",
	Jp:     "JP",
	Jpi:    "JPI",
	Jpo:    "JPO",
	Call:   "CALL",
	Se:     "SE",
	Sei:    "SEI",
	Sne:    "SNE",
	Snei:   "SNEI",
	Sti:    "STI",
	Ld:     "LD",
	Ldi:    "LDI",
	Add:    "ADDI",
	Addi:   "ADDI",
	Or:     "OR",
	And:    "AND",
	Xor:    "XOR",
	Sub:    "SUB",
	Shr:    "SHR",
	Subn:   "SUBN",
	Shl:    "SHL",
	Rnd:    "RND",
	Drw:    "DRW",
	Skp:    "SKP",
	Sknp:   "SKNP",
	LdVxDt: "LDVDT",
	LdVxK:  "LDVK",
	LdDtVx: "LDDTV",
	LdStVx: "LDSTV",
	AddIVx: "ADDIV",
	LdFVx:  "LDFV",
	LdBVx:  "LDBV",
	LdIVx:  "LDIV",
	LdVxI:  "LDVI",
}

// Valid returns whether the opcode is a known operation tag.
func (o Opcode) Valid() bool {
	return o > 0 && o < opcodeCount
}

// String returns the mnemonic of the opcode or an empty string for an
// absent or unknown opcode.
func (o Opcode) String() string {
	if !o.Valid() {
		return ""
	}
	return names[o]
}
