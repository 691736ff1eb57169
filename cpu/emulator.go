// Package cpu implements the MOS 6502 instruction interpreter: operand
// decoding for all 13 addressing modes, the 56 opcodes' semantics (including
// BCD arithmetic), status-flag discipline, the stack, and vectored
// interrupts.
package cpu

import (
	"fmt"

	"m6502/mem"
)

// DefaultLoadAddress is where Load places a program when the caller supplies
// no address, leaving 48 kB of address space below it for zero page, stack,
// and general RAM.
const DefaultLoadAddress uint16 = 0xC000

// irqVector and nmiVector are the fixed little-endian pointers the 6502
// loads PC from on the corresponding interrupt. A hardware reset vector
// exists at 0xFFFC too, but this toolkit does not model the boot sequence
// (see Reset).
const (
	nmiVector uint16 = 0xFFFA
	irqVector uint16 = 0xFFFE
)

// An operandKind tags what an Operand actually holds.
type operandKind int

const (
	opImplied operandKind = iota
	opImmediate
	opMemory
)

// Operand is the value an instruction body operates on, already resolved
// from the raw opcode bytes by the addressing-mode decoder. It is one of
// three shapes: no operand at all (Implied/Accumulator), an immediate byte
// baked into the instruction stream (Immediate/Relative), or a memory
// address still to be dereferenced (every other mode).
type Operand struct {
	kind operandKind
	imm  byte
	addr uint16
}

// Emulator is a 6502 with its own private 64 kB Bus, register file, status
// flags and stack pointer. The caller constructs one, Loads a program into
// it, and then Steps it; no state is shared across Emulator instances.
type Emulator struct {
	Bus       *mem.Bus
	Registers Registers
	Flags     Flags
	SP        byte // 0..0xFF, descending; 0xFF means empty

	codeStart uint16
	codeSize  uint16
}

// New returns an Emulator with a freshly zeroed Bus and the source toolkit's
// reset-state flags (only InterruptDisable set, SP at the top of the stack
// page).
func New() *Emulator {
	return &Emulator{
		Bus:   mem.New(),
		Flags: defaultFlags(),
		SP:    0xFF,
	}
}

// Load copies code into the Bus starting at addr (DefaultLoadAddress if addr
// is nil), and records it as the current code segment for Finished/StepN.
// It does not move PC; call Reset for that. Fails if the segment would run
// past the end of the 64 kB address space.
func (e *Emulator) Load(code []byte, addr *uint16) error {
	a := DefaultLoadAddress
	if addr != nil {
		a = *addr
	}
	if err := e.Bus.Load(code, a); err != nil {
		return err
	}
	e.codeStart = a
	e.codeSize = uint16(len(code))
	return nil
}

// Reset points PC at the start of the most recently Loaded code segment.
// There is no modeled reset vector or boot sequence; this is a direct jump.
func (e *Emulator) Reset() {
	e.Registers.PC = e.codeStart
}

// Finished reports whether PC has stepped past the last loaded byte, the
// signal StepN uses to stop early.
func (e *Emulator) Finished() bool {
	return e.Registers.PC > e.codeStart+e.codeSize-1
}

// Step executes exactly one instruction and returns its base cycle count.
// Page-crossing penalties are out of scope (see the design Non-goals); the
// returned count is always the opcode's table value.
func (e *Emulator) Step() (byte, error) {
	raw := e.Bus.Read(e.Registers.PC)
	entry, ok := FromRawByte(raw)
	if !ok {
		return 0, fmt.Errorf("unknown_opcode: %#02x at %#04x", raw, e.Registers.PC)
	}

	opStart := e.Registers.PC + 1
	operand := e.decodeOperand(entry.Mode, opStart)

	// PC is advanced past the whole instruction *before* the body runs,
	// so JMP/JSR/branches overwrite it from an already-advanced state.
	e.Registers.PC += uint16(entry.Length)

	entry.Instruction(e, operand)

	return entry.Cycles, nil
}

// StepN runs Step up to n times, stopping early once Finished reports the
// program has run off the end of its loaded segment. It returns the total
// cycle count actually elapsed.
func (e *Emulator) StepN(n int) (int, error) {
	total := 0
	for i := 0; i < n; i++ {
		if e.Finished() {
			break
		}
		cycles, err := e.Step()
		if err != nil {
			return total, err
		}
		total += int(cycles)
	}
	return total, nil
}

// decodeOperand implements the per-mode rules: op_start is PC+1, read before
// PC is advanced past the instruction.
func (e *Emulator) decodeOperand(mode AddressingMode, opStart uint16) Operand {
	switch mode {
	case Implied, Accumulator:
		return Operand{kind: opImplied}

	case Immediate, Relative:
		return Operand{kind: opImmediate, imm: e.Bus.Read(opStart)}

	case ZeroPage:
		return Operand{kind: opMemory, addr: uint16(e.Bus.Read(opStart)) & 0xFF}

	case ZeroPageX:
		return Operand{kind: opMemory, addr: uint16(e.Registers.X+e.Bus.Read(opStart)) & 0xFF}

	case ZeroPageY:
		return Operand{kind: opMemory, addr: uint16(e.Registers.Y+e.Bus.Read(opStart)) & 0xFF}

	case Absolute:
		return Operand{kind: opMemory, addr: e.Bus.ReadWord(opStart)}

	case AbsoluteX:
		return Operand{kind: opMemory, addr: e.Bus.ReadWord(opStart) + uint16(e.Registers.X)}

	case AbsoluteY:
		return Operand{kind: opMemory, addr: e.Bus.ReadWord(opStart) + uint16(e.Registers.Y)}

	case Indirect:
		ptr := e.Bus.ReadWord(opStart)
		return Operand{kind: opMemory, addr: e.Bus.ReadWord(ptr)}

	case IndirectX:
		ptr := uint16(e.Registers.X+e.Bus.Read(opStart)) & 0xFF
		return Operand{kind: opMemory, addr: e.Bus.ReadWord(ptr)}

	case IndirectY:
		ptr := uint16(e.Bus.Read(opStart))
		return Operand{kind: opMemory, addr: e.Bus.ReadWord(ptr) + uint16(e.Registers.Y)}

	default:
		return Operand{kind: opImplied}
	}
}

// unwrapImmediate dereferences an Operand to a byte value: Immediate and
// Relative operands carry the byte directly, Memory operands are read
// through the Bus, and Implied contributes 0 (most callers that pass an
// Implied Operand here are accumulator-mode shift instructions, which read
// Registers.A separately instead).
func (e *Emulator) unwrapImmediate(op Operand) byte {
	switch op.kind {
	case opImmediate:
		return op.imm
	case opMemory:
		return e.Bus.Read(op.addr)
	default:
		return 0
	}
}

// unwrapAddress extracts the memory address from a Memory Operand. Callers
// only invoke this for modes that are guaranteed to have decoded to Memory
// (STA/STX/STY/JMP/JSR/INC/DEC and the read-modify-write shifts).
func (e *Emulator) unwrapAddress(op Operand) uint16 {
	return op.addr
}

// IRQ raises a maskable interrupt: ignored while InterruptDisable is set,
// otherwise pushes PC then the flags byte and vectors through irqVector.
func (e *Emulator) IRQ() error {
	if e.Flags.InterruptDisable {
		return nil
	}
	return e.interrupt(irqVector)
}

// NMI raises a non-maskable interrupt: identical to IRQ but always taken,
// and vectors through nmiVector.
func (e *Emulator) NMI() error {
	return e.interrupt(nmiVector)
}

func (e *Emulator) interrupt(vector uint16) error {
	if err := e.pushWord(e.Registers.PC); err != nil {
		return err
	}
	e.Flags.Break = false
	e.Flags.Unused = true
	if err := e.push(e.Flags.Byte()); err != nil {
		return err
	}
	e.Flags.InterruptDisable = true
	e.Registers.PC = e.Bus.ReadWord(vector)
	return nil
}
