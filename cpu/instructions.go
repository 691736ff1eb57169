package cpu

// Instruction bodies. Every opcode has exactly one of these, shared across
// all of its addressing-mode variants; the variant only changes how op was
// decoded, never what the instruction does with it.
//
// https://www.nesdev.org/obelisk-6502-guide/reference.html

// adc: A = A + M + C, with BCD correction when the Decimal flag is set.
// http://www.6502.org/tutorials/decimal_mode.html
func (e *Emulator) adc(op Operand) {
	carry := uint16(0)
	if e.Flags.Carry {
		carry = 1
	}

	a := e.Registers.A
	m := e.unwrapImmediate(op)
	signsMatch := a&0x80 == m&0x80

	result := uint16(a) + uint16(m) + carry

	if e.Flags.Decimal {
		if (uint16(a)&0x0F)+(uint16(m)&0x0F)+carry > 0x09 {
			result += 0x06
		}
		if result > 0x99 {
			result += 0x60
		}
	}

	e.Flags.Carry = result&0x100 == 0x100
	e.Flags.Zero = byte(result) == 0
	e.Flags.Negative = result&0x80 == 0x80
	e.Flags.Overflow = signsMatch && e.Flags.Negative != (a&0x80 == 0x80)

	e.Registers.A = byte(result)
}

// sbc: A = A - M - (1-C), the mirror of adc with an inverted borrow.
func (e *Emulator) sbc(op Operand) {
	borrow := int16(0)
	if !e.Flags.Carry {
		borrow = 1
	}

	a := e.Registers.A
	m := e.unwrapImmediate(op)
	signsMatch := a&0x80 == m&0x80

	result := int16(a) - int16(m) - borrow

	e.Flags.Zero = byte(result) == 0
	e.Flags.Negative = result&0x80 == 0x80
	e.Flags.Overflow = signsMatch && e.Flags.Negative != (a&0x80 == 0x80)

	if e.Flags.Decimal {
		if (int16(a)&0x0F)-borrow < int16(m)&0x0F {
			result -= 0x06
		}
		if uint16(result) > 0x99 {
			result -= 0x60
		}
	}

	e.Flags.Carry = uint16(result) < 0x100
	e.Registers.A = byte(result)
}

func (e *Emulator) and(op Operand) {
	e.Registers.A &= e.unwrapImmediate(op)
	e.Flags.setZN(e.Registers.A)
}

func (e *Emulator) ora(op Operand) {
	e.Registers.A |= e.unwrapImmediate(op)
	e.Flags.setZN(e.Registers.A)
}

func (e *Emulator) eor(op Operand) {
	e.Registers.A ^= e.unwrapImmediate(op)
	e.Flags.setZN(e.Registers.A)
}

// shiftOperand and writeShiftResult let asl/lsr/rol/ror share one body
// across both their Accumulator and memory addressing-mode variants.
func (e *Emulator) shiftOperand(op Operand) byte {
	if op.kind == opImplied {
		return e.Registers.A
	}
	return e.unwrapImmediate(op)
}

func (e *Emulator) writeShiftResult(op Operand, value byte) {
	if op.kind == opImplied {
		e.Registers.A = value
		return
	}
	e.Bus.Write(e.unwrapAddress(op), value)
}

// asl shifts left by one; Carry receives the bit shifted out of bit 7.
func (e *Emulator) asl(op Operand) {
	value := e.shiftOperand(op)
	e.Flags.Carry = value&0x80 == 0x80
	value <<= 1
	e.Flags.setZN(value)
	e.writeShiftResult(op, value)
}

// lsr shifts right by one; Carry receives the bit shifted out of bit 0.
func (e *Emulator) lsr(op Operand) {
	value := e.shiftOperand(op)
	e.Flags.Carry = value&0x01 == 0x01
	value >>= 1
	e.Flags.setZN(value)
	e.writeShiftResult(op, value)
}

// rol rotates left; the old Carry enters bit 0.
func (e *Emulator) rol(op Operand) {
	value := e.shiftOperand(op)
	oldCarry := e.Flags.Carry
	e.Flags.Carry = value&0x80 == 0x80
	value <<= 1
	if oldCarry {
		value |= 0x01
	}
	e.Flags.setZN(value)
	e.writeShiftResult(op, value)
}

// ror rotates right; the old Carry enters bit 7.
func (e *Emulator) ror(op Operand) {
	value := e.shiftOperand(op)
	oldCarry := e.Flags.Carry
	e.Flags.Carry = value&0x01 == 0x01
	value >>= 1
	if oldCarry {
		value |= 0x80
	}
	e.Flags.setZN(value)
	e.writeShiftResult(op, value)
}

// bit: Z comes from A&M, but N and V are copied straight from bits 7 and 6
// of M, never from the AND result.
func (e *Emulator) bit(op Operand) {
	m := e.unwrapImmediate(op)
	e.Flags.Zero = e.Registers.A&m == 0
	e.Flags.Overflow = m&0x40 == 0x40
	e.Flags.Negative = m&0x80 == 0x80
}

func (e *Emulator) relativeJump(offset byte) {
	if offset&0x80 == 0x80 {
		e.Registers.PC -= 0x100 - uint16(offset)
	} else {
		e.Registers.PC += uint16(offset)
	}
}

func (e *Emulator) bcc(op Operand) {
	if !e.Flags.Carry {
		e.relativeJump(e.unwrapImmediate(op))
	}
}

func (e *Emulator) bcs(op Operand) {
	if e.Flags.Carry {
		e.relativeJump(e.unwrapImmediate(op))
	}
}

func (e *Emulator) beq(op Operand) {
	if e.Flags.Zero {
		e.relativeJump(e.unwrapImmediate(op))
	}
}

func (e *Emulator) bne(op Operand) {
	if !e.Flags.Zero {
		e.relativeJump(e.unwrapImmediate(op))
	}
}

func (e *Emulator) bmi(op Operand) {
	if e.Flags.Negative {
		e.relativeJump(e.unwrapImmediate(op))
	}
}

func (e *Emulator) bpl(op Operand) {
	if !e.Flags.Negative {
		e.relativeJump(e.unwrapImmediate(op))
	}
}

func (e *Emulator) bvc(op Operand) {
	if !e.Flags.Overflow {
		e.relativeJump(e.unwrapImmediate(op))
	}
}

func (e *Emulator) bvs(op Operand) {
	if e.Flags.Overflow {
		e.relativeJump(e.unwrapImmediate(op))
	}
}

// brk pushes PC (16-bit) then the flags byte with Break set, then disables
// further IRQs. rti below pops only the flags, not PC -- an asymmetric
// stack frame reproduced unchanged from the source this emulator is
// verified against (see design notes on known bugs); canonical 6502
// hardware pushes and pops both.
func (e *Emulator) brk(op Operand) {
	e.pushWord(e.Registers.PC)
	e.Flags.Break = true
	e.push(e.Flags.Byte())
	e.Flags.InterruptDisable = true
}

// rti pops the flags (Break cleared, Unused set) but does not restore PC,
// the mirror image of the brk asymmetry above.
func (e *Emulator) rti(op Operand) {
	v, _ := e.pop()
	e.Flags.SetByte(v)
	e.Flags.Break = false
	e.Flags.Unused = true
}

func (e *Emulator) cmp(op Operand) { e.compare(op, e.Registers.A) }
func (e *Emulator) cpx(op Operand) { e.compare(op, e.Registers.X) }
func (e *Emulator) cpy(op Operand) { e.compare(op, e.Registers.Y) }

func (e *Emulator) compare(op Operand, reg byte) {
	m := e.unwrapImmediate(op)
	result := int16(reg) - int16(m)
	e.Flags.Carry = uint16(result) < 0x100
	e.Flags.Zero = byte(result) == 0
	e.Flags.Negative = result&0x80 == 0x80
}

// dec/inc and the register variants below rely on native byte wraparound;
// there is no bounds guard at 0x00/0xFF.
func (e *Emulator) dec(op Operand) {
	result := e.unwrapImmediate(op) - 1
	e.Bus.Write(e.unwrapAddress(op), result)
	e.Flags.setZN(result)
}

func (e *Emulator) inc(op Operand) {
	result := e.unwrapImmediate(op) + 1
	e.Bus.Write(e.unwrapAddress(op), result)
	e.Flags.setZN(result)
}

func (e *Emulator) dex(op Operand) { e.Registers.X--; e.Flags.setZN(e.Registers.X) }
func (e *Emulator) dey(op Operand) { e.Registers.Y--; e.Flags.setZN(e.Registers.Y) }
func (e *Emulator) inx(op Operand) { e.Registers.X++; e.Flags.setZN(e.Registers.X) }
func (e *Emulator) iny(op Operand) { e.Registers.Y++; e.Flags.setZN(e.Registers.Y) }

func (e *Emulator) lda(op Operand) {
	e.Registers.A = e.unwrapImmediate(op)
	e.Flags.setZN(e.Registers.A)
}

func (e *Emulator) ldx(op Operand) {
	e.Registers.X = e.unwrapImmediate(op)
	e.Flags.setZN(e.Registers.X)
}

func (e *Emulator) ldy(op Operand) {
	e.Registers.Y = e.unwrapImmediate(op)
	e.Flags.setZN(e.Registers.Y)
}

func (e *Emulator) sta(op Operand) { e.Bus.Write(e.unwrapAddress(op), e.Registers.A) }
func (e *Emulator) stx(op Operand) { e.Bus.Write(e.unwrapAddress(op), e.Registers.X) }
func (e *Emulator) sty(op Operand) { e.Bus.Write(e.unwrapAddress(op), e.Registers.Y) }

func (e *Emulator) jmp(op Operand) { e.Registers.PC = e.unwrapAddress(op) }

// jsr pushes the current PC, which by the time this body runs already
// points past the JSR instruction (see Emulator.Step's pre-advance), with
// no -1 correction. rts below pops directly into PC with no +1 correction
// either, so the pairing is non-canonical but self-consistent -- both sides
// reproduced unchanged from the source this emulator is verified against
// (see design notes on known bugs).
func (e *Emulator) jsr(op Operand) {
	addr := e.unwrapAddress(op)
	e.pushWord(e.Registers.PC)
	e.Registers.PC = addr
}

func (e *Emulator) rts(op Operand) {
	addr, _ := e.popWord()
	e.Registers.PC = addr
}

func (e *Emulator) nop(op Operand) {}

func (e *Emulator) clc(op Operand) { e.Flags.Carry = false }
func (e *Emulator) sec(op Operand) { e.Flags.Carry = true }
func (e *Emulator) cld(op Operand) { e.Flags.Decimal = false }
func (e *Emulator) sed(op Operand) { e.Flags.Decimal = true }
func (e *Emulator) cli(op Operand) { e.Flags.InterruptDisable = false }
func (e *Emulator) sei(op Operand) { e.Flags.InterruptDisable = true }
func (e *Emulator) clv(op Operand) { e.Flags.Overflow = false }

func (e *Emulator) tax(op Operand) { e.Registers.X = e.Registers.A; e.Flags.setZN(e.Registers.X) }
func (e *Emulator) tay(op Operand) { e.Registers.Y = e.Registers.A; e.Flags.setZN(e.Registers.Y) }
func (e *Emulator) txa(op Operand) { e.Registers.A = e.Registers.X; e.Flags.setZN(e.Registers.A) }
func (e *Emulator) tya(op Operand) { e.Registers.A = e.Registers.Y; e.Flags.setZN(e.Registers.A) }
func (e *Emulator) tsx(op Operand) { e.Registers.X = e.SP; e.Flags.setZN(e.Registers.X) }
func (e *Emulator) txs(op Operand) { e.SP = e.Registers.X }

func (e *Emulator) pha(op Operand) { e.push(e.Registers.A) }
func (e *Emulator) php(op Operand) { e.push(e.Flags.Byte()) }

func (e *Emulator) pla(op Operand) {
	v, _ := e.pop()
	e.Registers.A = v
	e.Flags.setZN(v)
}

func (e *Emulator) plp(op Operand) {
	v, _ := e.pop()
	e.Flags.SetByte(v)
}
