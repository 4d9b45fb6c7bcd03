package chip8

// Decode decodes a 16 bit instruction word. Every word results in an
// instruction, words that do not match a known pattern are returned as
// raw instruction carrying the word as data.
func Decode(word uint16) Instruction {
	switch word {
	case 0x00E0:
		return mustInstruction(Cls)
	case 0x00EE:
		return mustInstruction(Ret)
	}

	n := Nibbles(word)
	x := WithVx(int(n.X()))
	y := WithVy(int(n.Y()))

	switch n.Family() {
	case 0x1:
		return mustInstruction(Jpi, WithData(int(n.NNN())))
	case 0x2:
		return mustInstruction(Call, WithData(int(n.NNN())))
	case 0x3:
		return mustInstruction(Sei, x, WithData(int(n.KK())))
	case 0x4:
		return mustInstruction(Snei, x, WithData(int(n.KK())))
	case 0x5:
		return mustInstruction(Se, x, y)
	case 0x6:
		return mustInstruction(Ldi, x, WithData(int(n.KK())))
	case 0x7:
		return mustInstruction(Add, x, WithData(int(n.KK())))
	case 0x8:
		if op, ok := decodeArithmetic(n.N()); ok {
			return mustInstruction(op, x, y)
		}
	case 0x9:
		return mustInstruction(Sne, x, y)
	case 0xA:
		return mustInstruction(Sti, WithData(int(n.NNN())))
	case 0xB:
		return mustInstruction(Jpo, WithData(int(n.NNN())))
	case 0xC:
		return mustInstruction(Rnd, x, WithData(int(n.KK())))
	case 0xD:
		return mustInstruction(Drw, x, y, WithData(int(n.N())))
	case 0xE:
		if op, ok := decodeKeySkip(n.KK()); ok {
			return mustInstruction(op, x)
		}
	case 0xF:
		if op, ok := decodeTransfer(n.KK()); ok {
			return mustInstruction(op, x)
		}
	}

	return Raw(word)
}

// decodeArithmetic returns the register to register operation of the 8xyN family.
func decodeArithmetic(n uint8) (Opcode, bool) {
	switch n {
	case 0x0:
		return Ld, true
	case 0x1:
		return Or, true
	case 0x2:
		return And, true
	case 0x3:
		return Xor, true
	case 0x4:
		return Add, true
	case 0x5:
		return Sub, true
	case 0x6:
		return Shr, true
	case 0x7:
		return Subn, true
	case 0xF:
		return Shl, true
	default:
		return 0, false
	}
}

// decodeKeySkip returns the key skip operation of the ExKK family.
func decodeKeySkip(kk uint8) (Opcode, bool) {
	switch kk {
	case 0x9E:
		return Skp, true
	case 0xA1:
		return Sknp, true
	default:
		return 0, false
	}
}

// decodeTransfer returns the timer, key and memory transfer operation of the FxKK family.
func decodeTransfer(kk uint8) (Opcode, bool) {
	switch kk {
	case 0x07:
		return LdVxDt, true
	case 0x0A:
		return LdVxK, true
	case 0x15:
		return LdDtVx, true
	case 0x18:
		return LdStVx, true
	case 0x1E:
		return AddIVx, true
	case 0x29:
		return LdFVx, true
	case 0x33:
		return LdBVx, true
	case 0x55:
		return LdIVx, true
	case 0x65:
		return LdVxI, true
	default:
		return 0, false
	}
}
