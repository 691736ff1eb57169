package cpu

// An OpCodeEntry associates a unique raw byte (0x00-0xFF) with the mnemonic,
// AddressingMode, encoded length and base cycle count of one of the 56
// legal 6502 instructions. There are 256 possible byte values, but only 151
// of them are legal opcodes; the remainder ("illegal"/undocumented opcodes)
// are out of scope for this toolkit.
//
// Multiple OpCodeEntry values may share the same Instruction, differing only
// in how the operand is located; that distinction is resolved once, up
// front, by AddressingMode, not by the Instruction body itself.
type OpCodeEntry struct {
	Mnemonic string
	Code     byte
	Mode     AddressingMode
	Length   byte // 1, 2, or 3; always Mode.Length()
	Cycles   byte // base cycle count; page-crossing penalties are out of scope

	// Instruction carries out the opcode's effect. With the sole exception
	// of branch/jump/return instructions, it never touches Registers.PC;
	// PC has already been advanced past the whole instruction by the time
	// Instruction runs (see Emulator.Step).
	Instruction func(e *Emulator, op Operand)
}

// Opcodes is the authoritative table, indexed by raw byte. It is immutable
// after package initialization and exhaustively enumerates every legal
// (mnemonic, mode) pair the 6502 supports.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html
// http://www.6502.org/tutorials/6502opcodes.html
var Opcodes = map[byte]OpCodeEntry{
	0x69: {Mnemonic: "ADC", Code: 0x69, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).adc},
	0x65: {Mnemonic: "ADC", Code: 0x65, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).adc},
	0x75: {Mnemonic: "ADC", Code: 0x75, Mode: ZeroPageX, Cycles: 4, Instruction: (*Emulator).adc},
	0x6D: {Mnemonic: "ADC", Code: 0x6D, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).adc},
	0x7D: {Mnemonic: "ADC", Code: 0x7D, Mode: AbsoluteX, Cycles: 4, Instruction: (*Emulator).adc},
	0x79: {Mnemonic: "ADC", Code: 0x79, Mode: AbsoluteY, Cycles: 4, Instruction: (*Emulator).adc},
	0x61: {Mnemonic: "ADC", Code: 0x61, Mode: IndirectX, Cycles: 6, Instruction: (*Emulator).adc},
	0x71: {Mnemonic: "ADC", Code: 0x71, Mode: IndirectY, Cycles: 5, Instruction: (*Emulator).adc},

	0x29: {Mnemonic: "AND", Code: 0x29, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).and},
	0x25: {Mnemonic: "AND", Code: 0x25, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).and},
	0x35: {Mnemonic: "AND", Code: 0x35, Mode: ZeroPageX, Cycles: 4, Instruction: (*Emulator).and},
	0x2D: {Mnemonic: "AND", Code: 0x2D, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).and},
	0x3D: {Mnemonic: "AND", Code: 0x3D, Mode: AbsoluteX, Cycles: 4, Instruction: (*Emulator).and},
	0x39: {Mnemonic: "AND", Code: 0x39, Mode: AbsoluteY, Cycles: 4, Instruction: (*Emulator).and},
	0x21: {Mnemonic: "AND", Code: 0x21, Mode: IndirectX, Cycles: 6, Instruction: (*Emulator).and},
	0x31: {Mnemonic: "AND", Code: 0x31, Mode: IndirectY, Cycles: 5, Instruction: (*Emulator).and},

	0x0A: {Mnemonic: "ASL", Code: 0x0A, Mode: Accumulator, Cycles: 2, Instruction: (*Emulator).asl},
	0x06: {Mnemonic: "ASL", Code: 0x06, Mode: ZeroPage, Cycles: 5, Instruction: (*Emulator).asl},
	0x16: {Mnemonic: "ASL", Code: 0x16, Mode: ZeroPageX, Cycles: 6, Instruction: (*Emulator).asl},
	0x0E: {Mnemonic: "ASL", Code: 0x0E, Mode: Absolute, Cycles: 6, Instruction: (*Emulator).asl},
	0x1E: {Mnemonic: "ASL", Code: 0x1E, Mode: AbsoluteX, Cycles: 7, Instruction: (*Emulator).asl},

	0x24: {Mnemonic: "BIT", Code: 0x24, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).bit},
	0x2C: {Mnemonic: "BIT", Code: 0x2C, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).bit},

	0x00: {Mnemonic: "BRK", Code: 0x00, Mode: Implied, Cycles: 7, Instruction: (*Emulator).brk},

	0xC9: {Mnemonic: "CMP", Code: 0xC9, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).cmp},
	0xC5: {Mnemonic: "CMP", Code: 0xC5, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).cmp},
	0xD5: {Mnemonic: "CMP", Code: 0xD5, Mode: ZeroPageX, Cycles: 4, Instruction: (*Emulator).cmp},
	0xCD: {Mnemonic: "CMP", Code: 0xCD, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).cmp},
	0xDD: {Mnemonic: "CMP", Code: 0xDD, Mode: AbsoluteX, Cycles: 4, Instruction: (*Emulator).cmp},
	0xD9: {Mnemonic: "CMP", Code: 0xD9, Mode: AbsoluteY, Cycles: 4, Instruction: (*Emulator).cmp},
	0xC1: {Mnemonic: "CMP", Code: 0xC1, Mode: IndirectX, Cycles: 6, Instruction: (*Emulator).cmp},
	0xD1: {Mnemonic: "CMP", Code: 0xD1, Mode: IndirectY, Cycles: 5, Instruction: (*Emulator).cmp},

	0xE0: {Mnemonic: "CPX", Code: 0xE0, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).cpx},
	0xE4: {Mnemonic: "CPX", Code: 0xE4, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).cpx},
	0xEC: {Mnemonic: "CPX", Code: 0xEC, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).cpx},

	0xC0: {Mnemonic: "CPY", Code: 0xC0, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).cpy},
	0xC4: {Mnemonic: "CPY", Code: 0xC4, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).cpy},
	0xCC: {Mnemonic: "CPY", Code: 0xCC, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).cpy},

	0xC6: {Mnemonic: "DEC", Code: 0xC6, Mode: ZeroPage, Cycles: 5, Instruction: (*Emulator).dec},
	0xD6: {Mnemonic: "DEC", Code: 0xD6, Mode: ZeroPageX, Cycles: 6, Instruction: (*Emulator).dec},
	0xCE: {Mnemonic: "DEC", Code: 0xCE, Mode: Absolute, Cycles: 6, Instruction: (*Emulator).dec},
	0xDE: {Mnemonic: "DEC", Code: 0xDE, Mode: AbsoluteX, Cycles: 7, Instruction: (*Emulator).dec},

	0x49: {Mnemonic: "EOR", Code: 0x49, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).eor},
	0x45: {Mnemonic: "EOR", Code: 0x45, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).eor},
	0x55: {Mnemonic: "EOR", Code: 0x55, Mode: ZeroPageX, Cycles: 4, Instruction: (*Emulator).eor},
	0x4D: {Mnemonic: "EOR", Code: 0x4D, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).eor},
	0x5D: {Mnemonic: "EOR", Code: 0x5D, Mode: AbsoluteX, Cycles: 4, Instruction: (*Emulator).eor},
	0x59: {Mnemonic: "EOR", Code: 0x59, Mode: AbsoluteY, Cycles: 4, Instruction: (*Emulator).eor},
	0x41: {Mnemonic: "EOR", Code: 0x41, Mode: IndirectX, Cycles: 6, Instruction: (*Emulator).eor},
	0x51: {Mnemonic: "EOR", Code: 0x51, Mode: IndirectY, Cycles: 5, Instruction: (*Emulator).eor},

	0xE6: {Mnemonic: "INC", Code: 0xE6, Mode: ZeroPage, Cycles: 5, Instruction: (*Emulator).inc},
	0xF6: {Mnemonic: "INC", Code: 0xF6, Mode: ZeroPageX, Cycles: 6, Instruction: (*Emulator).inc},
	0xEE: {Mnemonic: "INC", Code: 0xEE, Mode: Absolute, Cycles: 6, Instruction: (*Emulator).inc},
	0xFE: {Mnemonic: "INC", Code: 0xFE, Mode: AbsoluteX, Cycles: 7, Instruction: (*Emulator).inc},

	0x4C: {Mnemonic: "JMP", Code: 0x4C, Mode: Absolute, Cycles: 3, Instruction: (*Emulator).jmp},
	0x6C: {Mnemonic: "JMP", Code: 0x6C, Mode: Indirect, Cycles: 5, Instruction: (*Emulator).jmp},

	0x20: {Mnemonic: "JSR", Code: 0x20, Mode: Absolute, Cycles: 6, Instruction: (*Emulator).jsr},

	0xA9: {Mnemonic: "LDA", Code: 0xA9, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).lda},
	0xA5: {Mnemonic: "LDA", Code: 0xA5, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).lda},
	0xB5: {Mnemonic: "LDA", Code: 0xB5, Mode: ZeroPageX, Cycles: 4, Instruction: (*Emulator).lda},
	0xAD: {Mnemonic: "LDA", Code: 0xAD, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).lda},
	0xBD: {Mnemonic: "LDA", Code: 0xBD, Mode: AbsoluteX, Cycles: 4, Instruction: (*Emulator).lda},
	0xB9: {Mnemonic: "LDA", Code: 0xB9, Mode: AbsoluteY, Cycles: 4, Instruction: (*Emulator).lda},
	0xA1: {Mnemonic: "LDA", Code: 0xA1, Mode: IndirectX, Cycles: 6, Instruction: (*Emulator).lda},
	0xB1: {Mnemonic: "LDA", Code: 0xB1, Mode: IndirectY, Cycles: 5, Instruction: (*Emulator).lda},

	0xA2: {Mnemonic: "LDX", Code: 0xA2, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).ldx},
	0xA6: {Mnemonic: "LDX", Code: 0xA6, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).ldx},
	0xB6: {Mnemonic: "LDX", Code: 0xB6, Mode: ZeroPageY, Cycles: 4, Instruction: (*Emulator).ldx},
	0xAE: {Mnemonic: "LDX", Code: 0xAE, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).ldx},
	0xBE: {Mnemonic: "LDX", Code: 0xBE, Mode: AbsoluteY, Cycles: 4, Instruction: (*Emulator).ldx},

	0xA0: {Mnemonic: "LDY", Code: 0xA0, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).ldy},
	0xA4: {Mnemonic: "LDY", Code: 0xA4, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).ldy},
	0xB4: {Mnemonic: "LDY", Code: 0xB4, Mode: ZeroPageX, Cycles: 4, Instruction: (*Emulator).ldy},
	0xAC: {Mnemonic: "LDY", Code: 0xAC, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).ldy},
	0xBC: {Mnemonic: "LDY", Code: 0xBC, Mode: AbsoluteX, Cycles: 4, Instruction: (*Emulator).ldy},

	0x4A: {Mnemonic: "LSR", Code: 0x4A, Mode: Accumulator, Cycles: 2, Instruction: (*Emulator).lsr},
	0x46: {Mnemonic: "LSR", Code: 0x46, Mode: ZeroPage, Cycles: 5, Instruction: (*Emulator).lsr},
	0x56: {Mnemonic: "LSR", Code: 0x56, Mode: ZeroPageX, Cycles: 6, Instruction: (*Emulator).lsr},
	0x4E: {Mnemonic: "LSR", Code: 0x4E, Mode: Absolute, Cycles: 6, Instruction: (*Emulator).lsr},
	0x5E: {Mnemonic: "LSR", Code: 0x5E, Mode: AbsoluteX, Cycles: 7, Instruction: (*Emulator).lsr},

	0xEA: {Mnemonic: "NOP", Code: 0xEA, Mode: Implied, Cycles: 2, Instruction: (*Emulator).nop},

	0x09: {Mnemonic: "ORA", Code: 0x09, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).ora},
	0x05: {Mnemonic: "ORA", Code: 0x05, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).ora},
	0x15: {Mnemonic: "ORA", Code: 0x15, Mode: ZeroPageX, Cycles: 4, Instruction: (*Emulator).ora},
	0x0D: {Mnemonic: "ORA", Code: 0x0D, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).ora},
	0x1D: {Mnemonic: "ORA", Code: 0x1D, Mode: AbsoluteX, Cycles: 4, Instruction: (*Emulator).ora},
	0x19: {Mnemonic: "ORA", Code: 0x19, Mode: AbsoluteY, Cycles: 4, Instruction: (*Emulator).ora},
	0x01: {Mnemonic: "ORA", Code: 0x01, Mode: IndirectX, Cycles: 6, Instruction: (*Emulator).ora},
	0x11: {Mnemonic: "ORA", Code: 0x11, Mode: IndirectY, Cycles: 5, Instruction: (*Emulator).ora},

	0x2A: {Mnemonic: "ROL", Code: 0x2A, Mode: Accumulator, Cycles: 2, Instruction: (*Emulator).rol},
	0x26: {Mnemonic: "ROL", Code: 0x26, Mode: ZeroPage, Cycles: 5, Instruction: (*Emulator).rol},
	0x36: {Mnemonic: "ROL", Code: 0x36, Mode: ZeroPageX, Cycles: 6, Instruction: (*Emulator).rol},
	0x2E: {Mnemonic: "ROL", Code: 0x2E, Mode: Absolute, Cycles: 6, Instruction: (*Emulator).rol},
	0x3E: {Mnemonic: "ROL", Code: 0x3E, Mode: AbsoluteX, Cycles: 7, Instruction: (*Emulator).rol},

	0x6A: {Mnemonic: "ROR", Code: 0x6A, Mode: Accumulator, Cycles: 2, Instruction: (*Emulator).ror},
	0x66: {Mnemonic: "ROR", Code: 0x66, Mode: ZeroPage, Cycles: 5, Instruction: (*Emulator).ror},
	0x76: {Mnemonic: "ROR", Code: 0x76, Mode: ZeroPageX, Cycles: 6, Instruction: (*Emulator).ror},
	0x6E: {Mnemonic: "ROR", Code: 0x6E, Mode: Absolute, Cycles: 6, Instruction: (*Emulator).ror},
	0x7E: {Mnemonic: "ROR", Code: 0x7E, Mode: AbsoluteX, Cycles: 7, Instruction: (*Emulator).ror},

	0x40: {Mnemonic: "RTI", Code: 0x40, Mode: Implied, Cycles: 6, Instruction: (*Emulator).rti},
	0x60: {Mnemonic: "RTS", Code: 0x60, Mode: Implied, Cycles: 6, Instruction: (*Emulator).rts},

	0xE9: {Mnemonic: "SBC", Code: 0xE9, Mode: Immediate, Cycles: 2, Instruction: (*Emulator).sbc},
	0xE5: {Mnemonic: "SBC", Code: 0xE5, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).sbc},
	0xF5: {Mnemonic: "SBC", Code: 0xF5, Mode: ZeroPageX, Cycles: 4, Instruction: (*Emulator).sbc},
	0xED: {Mnemonic: "SBC", Code: 0xED, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).sbc},
	0xFD: {Mnemonic: "SBC", Code: 0xFD, Mode: AbsoluteX, Cycles: 4, Instruction: (*Emulator).sbc},
	0xF9: {Mnemonic: "SBC", Code: 0xF9, Mode: AbsoluteY, Cycles: 4, Instruction: (*Emulator).sbc},
	0xE1: {Mnemonic: "SBC", Code: 0xE1, Mode: IndirectX, Cycles: 6, Instruction: (*Emulator).sbc},
	0xF1: {Mnemonic: "SBC", Code: 0xF1, Mode: IndirectY, Cycles: 5, Instruction: (*Emulator).sbc},

	0x85: {Mnemonic: "STA", Code: 0x85, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).sta},
	0x95: {Mnemonic: "STA", Code: 0x95, Mode: ZeroPageX, Cycles: 4, Instruction: (*Emulator).sta},
	0x8D: {Mnemonic: "STA", Code: 0x8D, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).sta},
	0x9D: {Mnemonic: "STA", Code: 0x9D, Mode: AbsoluteX, Cycles: 5, Instruction: (*Emulator).sta},
	0x99: {Mnemonic: "STA", Code: 0x99, Mode: AbsoluteY, Cycles: 5, Instruction: (*Emulator).sta},
	0x81: {Mnemonic: "STA", Code: 0x81, Mode: IndirectX, Cycles: 6, Instruction: (*Emulator).sta},
	0x91: {Mnemonic: "STA", Code: 0x91, Mode: IndirectY, Cycles: 6, Instruction: (*Emulator).sta},

	0x86: {Mnemonic: "STX", Code: 0x86, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).stx},
	0x96: {Mnemonic: "STX", Code: 0x96, Mode: ZeroPageY, Cycles: 4, Instruction: (*Emulator).stx},
	0x8E: {Mnemonic: "STX", Code: 0x8E, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).stx},

	0x84: {Mnemonic: "STY", Code: 0x84, Mode: ZeroPage, Cycles: 3, Instruction: (*Emulator).sty},
	0x94: {Mnemonic: "STY", Code: 0x94, Mode: ZeroPageX, Cycles: 4, Instruction: (*Emulator).sty},
	0x8C: {Mnemonic: "STY", Code: 0x8C, Mode: Absolute, Cycles: 4, Instruction: (*Emulator).sty},

	// flag clear/set
	0x18: {Mnemonic: "CLC", Code: 0x18, Mode: Implied, Cycles: 2, Instruction: (*Emulator).clc},
	0x38: {Mnemonic: "SEC", Code: 0x38, Mode: Implied, Cycles: 2, Instruction: (*Emulator).sec},
	0x58: {Mnemonic: "CLI", Code: 0x58, Mode: Implied, Cycles: 2, Instruction: (*Emulator).cli},
	0x78: {Mnemonic: "SEI", Code: 0x78, Mode: Implied, Cycles: 2, Instruction: (*Emulator).sei},
	0xB8: {Mnemonic: "CLV", Code: 0xB8, Mode: Implied, Cycles: 2, Instruction: (*Emulator).clv},
	0xD8: {Mnemonic: "CLD", Code: 0xD8, Mode: Implied, Cycles: 2, Instruction: (*Emulator).cld},
	0xF8: {Mnemonic: "SED", Code: 0xF8, Mode: Implied, Cycles: 2, Instruction: (*Emulator).sed},

	// register transfers, increment/decrement
	0xAA: {Mnemonic: "TAX", Code: 0xAA, Mode: Implied, Cycles: 2, Instruction: (*Emulator).tax},
	0x8A: {Mnemonic: "TXA", Code: 0x8A, Mode: Implied, Cycles: 2, Instruction: (*Emulator).txa},
	0xCA: {Mnemonic: "DEX", Code: 0xCA, Mode: Implied, Cycles: 2, Instruction: (*Emulator).dex},
	0xE8: {Mnemonic: "INX", Code: 0xE8, Mode: Implied, Cycles: 2, Instruction: (*Emulator).inx},
	0xA8: {Mnemonic: "TAY", Code: 0xA8, Mode: Implied, Cycles: 2, Instruction: (*Emulator).tay},
	0x98: {Mnemonic: "TYA", Code: 0x98, Mode: Implied, Cycles: 2, Instruction: (*Emulator).tya},
	0x88: {Mnemonic: "DEY", Code: 0x88, Mode: Implied, Cycles: 2, Instruction: (*Emulator).dey},
	0xC8: {Mnemonic: "INY", Code: 0xC8, Mode: Implied, Cycles: 2, Instruction: (*Emulator).iny},

	// branches
	0x10: {Mnemonic: "BPL", Code: 0x10, Mode: Relative, Cycles: 2, Instruction: (*Emulator).bpl},
	0x30: {Mnemonic: "BMI", Code: 0x30, Mode: Relative, Cycles: 2, Instruction: (*Emulator).bmi},
	0x50: {Mnemonic: "BVC", Code: 0x50, Mode: Relative, Cycles: 2, Instruction: (*Emulator).bvc},
	0x70: {Mnemonic: "BVS", Code: 0x70, Mode: Relative, Cycles: 2, Instruction: (*Emulator).bvs},
	0x90: {Mnemonic: "BCC", Code: 0x90, Mode: Relative, Cycles: 2, Instruction: (*Emulator).bcc},
	0xB0: {Mnemonic: "BCS", Code: 0xB0, Mode: Relative, Cycles: 2, Instruction: (*Emulator).bcs},
	0xD0: {Mnemonic: "BNE", Code: 0xD0, Mode: Relative, Cycles: 2, Instruction: (*Emulator).bne},
	0xF0: {Mnemonic: "BEQ", Code: 0xF0, Mode: Relative, Cycles: 2, Instruction: (*Emulator).beq},

	// stack
	0x9A: {Mnemonic: "TXS", Code: 0x9A, Mode: Implied, Cycles: 2, Instruction: (*Emulator).txs},
	0xBA: {Mnemonic: "TSX", Code: 0xBA, Mode: Implied, Cycles: 2, Instruction: (*Emulator).tsx},
	0x48: {Mnemonic: "PHA", Code: 0x48, Mode: Implied, Cycles: 3, Instruction: (*Emulator).pha},
	0x68: {Mnemonic: "PLA", Code: 0x68, Mode: Implied, Cycles: 4, Instruction: (*Emulator).pla},
	0x08: {Mnemonic: "PHP", Code: 0x08, Mode: Implied, Cycles: 3, Instruction: (*Emulator).php},
	0x28: {Mnemonic: "PLP", Code: 0x28, Mode: Implied, Cycles: 4, Instruction: (*Emulator).plp},
}

// byMnemonicMode is built once at init from Opcodes, keyed by mnemonic and
// mode, for the parser's addressing-mode disambiguation (see
// 4.2.1 in the design docs) and for assembling an OpCode reference back into
// its raw byte.
var byMnemonicMode = make(map[string]map[AddressingMode]OpCodeEntry)

func init() {
	for code, entry := range Opcodes {
		entry.Code = code
		entry.Length = entry.Mode.Length()
		Opcodes[code] = entry

		if byMnemonicMode[entry.Mnemonic] == nil {
			byMnemonicMode[entry.Mnemonic] = make(map[AddressingMode]OpCodeEntry)
		}
		byMnemonicMode[entry.Mnemonic][entry.Mode] = entry
	}
}

// FromRawByte looks an entry up by its byte encoding, satisfying the
// table invariant from_raw_byte(entry.code) == entry.
func FromRawByte(b byte) (OpCodeEntry, bool) {
	e, ok := Opcodes[b]
	return e, ok
}

// Lookup finds the entry for a (mnemonic, mode) pair, used by the parser to
// validate an addressing mode it has already chosen by structural pattern.
func Lookup(mnemonic string, mode AddressingMode) (OpCodeEntry, bool) {
	byMode, ok := byMnemonicMode[mnemonic]
	if !ok {
		return OpCodeEntry{}, false
	}
	e, ok := byMode[mode]
	return e, ok
}

// IsMnemonic reports whether s names one of the 56 supported instructions,
// in any addressing mode.
func IsMnemonic(s string) bool {
	_, ok := byMnemonicMode[s]
	return ok
}
