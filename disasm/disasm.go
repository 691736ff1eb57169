// Package disasm renders a byte stream back into 6502 assembly text, one
// line per instruction, using the same opcode table the emulator runs on.
package disasm

import (
	"fmt"
	"strings"

	"m6502/cpu"
)

// Options controls the optional prefixes Disassemble adds to each line.
type Options struct {
	Offsets     bool // prefix each line with its address, e.g. "8000 "
	OpcodeBytes bool // prefix each line with its raw encoded bytes, e.g. "AD 00 44 "
}

// Disassemble renders bytes starting at address 0. It's a thin wrapper over
// DisassembleAt for callers that don't care where the code will ultimately
// be loaded.
func Disassemble(bytes []byte, opts Options) string {
	return DisassembleAt(bytes, 0, opts)
}

// DisassembleAt renders bytes as if they were loaded at base, so offset
// prefixes and relative-branch targets come out as real addresses. A byte
// that doesn't match a legal opcode, or an opcode whose operand runs past
// the end of bytes, renders as a single "???" line for that one byte and
// disassembly resumes at the next byte, so one bad byte doesn't swallow the
// rest of the stream.
func DisassembleAt(bytes []byte, base uint16, opts Options) string {
	var lines []string
	i := uint16(0)

	for int(i) < len(bytes) {
		addr := base + i
		raw := bytes[i]
		entry, ok := cpu.FromRawByte(raw)
		if !ok {
			lines = append(lines, formatUnknownLine(addr, raw, opts))
			i++
			continue
		}

		length := uint16(entry.Length)
		if int(i)+int(length) > len(bytes) {
			lines = append(lines, formatUnknownLine(addr, raw, opts))
			i++
			continue
		}

		operand := bytes[i+1 : i+length]
		lines = append(lines, formatLine(addr, entry, operand, opts))

		i += length
	}

	return strings.Join(lines, "\n")
}

func formatUnknownLine(addr uint16, raw byte, opts Options) string {
	var b strings.Builder

	if opts.Offsets {
		fmt.Fprintf(&b, "%04X ", addr)
	}
	if opts.OpcodeBytes {
		fmt.Fprintf(&b, "%02X ", raw)
	}
	b.WriteString("???")

	return b.String()
}

func formatLine(addr uint16, entry cpu.OpCodeEntry, operand []byte, opts Options) string {
	var b strings.Builder

	if opts.Offsets {
		fmt.Fprintf(&b, "%04X ", addr)
	}

	if opts.OpcodeBytes {
		fmt.Fprintf(&b, "%02X ", entry.Code)
		for _, ob := range operand {
			fmt.Fprintf(&b, "%02X ", ob)
		}
	}

	b.WriteString(entry.Mnemonic)

	if text := formatOperand(addr, entry, operand); text != "" {
		b.WriteString(" ")
		b.WriteString(text)
	}

	return b.String()
}

func formatOperand(addr uint16, entry cpu.OpCodeEntry, operand []byte) string {
	switch entry.Mode {
	case cpu.Implied, cpu.Accumulator:
		return ""

	case cpu.Immediate:
		return fmt.Sprintf("#$%02X", operand[0])

	case cpu.Relative:
		// offset is relative to the address just past this instruction.
		target := addr + uint16(entry.Length) + uint16(int16(int8(operand[0])))
		return fmt.Sprintf("$%04X", target)

	case cpu.ZeroPage:
		return fmt.Sprintf("$%02X", operand[0])
	case cpu.ZeroPageX:
		return fmt.Sprintf("$%02X,X", operand[0])
	case cpu.ZeroPageY:
		return fmt.Sprintf("$%02X,Y", operand[0])

	case cpu.Absolute:
		return fmt.Sprintf("$%04X", littleEndian(operand))
	case cpu.AbsoluteX:
		return fmt.Sprintf("$%04X,X", littleEndian(operand))
	case cpu.AbsoluteY:
		return fmt.Sprintf("$%04X,Y", littleEndian(operand))

	case cpu.Indirect:
		return fmt.Sprintf("($%04X)", littleEndian(operand))
	case cpu.IndirectX:
		return fmt.Sprintf("($%02X,X)", operand[0])
	case cpu.IndirectY:
		return fmt.Sprintf("($%02X),Y", operand[0])

	default:
		return ""
	}
}

func littleEndian(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}
