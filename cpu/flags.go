package cpu

import "m6502/mask"

// Flags are the 8 bits that make up the 6502 status register (the P
// register).
//
// 7654 3210
// NV_B DIZC
//
// https://www.nesdev.org/wiki/Status_flags
type Flags struct {
	Negative         bool // N, bit 7
	Overflow         bool // V, bit 6
	Unused           bool // bit 5; set by SetByte, never packed by Byte
	Break            bool // B, bit 4
	Decimal          bool // D, bit 3
	InterruptDisable bool // I, bit 2
	Zero             bool // Z, bit 1
	Carry            bool // C, bit 0
}

// defaultFlags matches the source toolkit's reset state: only the interrupt
// disable flag starts set.
func defaultFlags() Flags {
	return Flags{InterruptDisable: true}
}

// setBit ORs a single bit into b at pos (one of mask.I1..I8, 1-indexed from
// the MSB) when v is true, matching the P register's NV_B DIZC layout above.
func setBit(b byte, pos mask.Idx, v bool) byte {
	if !v {
		return b
	}
	return mask.Set(b, pos, 1)
}

// Byte packs Flags into the P register layout, via mask.Set at each of the
// eight 1-indexed-from-MSB bit positions. The unused bit (I3) never
// contributes to the packed byte, even when Unused is true in the struct;
// this matches the reference this emulator is checked against, which never
// ORs a bit in for it either, rather than the common real-hardware
// convention of always reading it back as 1.
func (f Flags) Byte() byte {
	var b byte
	b = setBit(b, mask.I1, f.Negative)
	b = setBit(b, mask.I2, f.Overflow)
	b = setBit(b, mask.I4, f.Break)
	b = setBit(b, mask.I5, f.Decimal)
	b = setBit(b, mask.I6, f.InterruptDisable)
	b = setBit(b, mask.I7, f.Zero)
	b = setBit(b, mask.I8, f.Carry)
	return b
}

// SetByte unpacks a P register byte (as popped from the stack by PLP/RTI)
// into Flags, via mask.IsSet at each bit position.
func (f *Flags) SetByte(b byte) {
	f.Negative = mask.IsSet(b, mask.I1)
	f.Overflow = mask.IsSet(b, mask.I2)
	f.Unused = true
	f.Break = mask.IsSet(b, mask.I4)
	f.Decimal = mask.IsSet(b, mask.I5)
	f.InterruptDisable = mask.IsSet(b, mask.I6)
	f.Zero = mask.IsSet(b, mask.I7)
	f.Carry = mask.IsSet(b, mask.I8)
}

// setZN sets Zero and Negative from an 8-bit result, the most common flag
// update shared by nearly every instruction.
func (f *Flags) setZN(result byte) {
	f.Zero = result == 0
	f.Negative = result&0x80 == 0x80
}
