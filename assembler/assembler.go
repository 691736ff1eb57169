// Package assembler turns a parsed token stream into 6502 machine code: a
// first pass indexes every label's final address, and a second emits bytes,
// resolving label references into little-endian absolute addresses or
// signed relative branch offsets as it goes.
package assembler

import (
	"fmt"

	"m6502/cpu"
	"m6502/parser"
)

// CodeSegment is one contiguous run of assembled bytes starting at Origin.
// A program with no .ORG directives assembles to exactly one segment; an
// .ORG that follows emitted bytes starts a new one, while an .ORG before any
// bytes just moves the current segment's origin.
type CodeSegment struct {
	Origin uint16
	Bytes  []byte
}

// Error reports an assembly-time failure: a reference to a label that was
// never defined, or a relative branch whose target is further than a signed
// byte can reach.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Assemble runs the two-pass algorithm over tokens, starting the address
// counter at origin. Label redefinition is silent last-write-wins, matching
// the rest of this toolkit's tolerance for ambiguous source.
func Assemble(tokens []parser.Token, origin uint16) ([]CodeSegment, error) {
	labels := indexLabels(tokens, origin)
	return emit(tokens, origin, labels)
}

// indexLabels walks the token stream once, tracking a running address that
// starts at origin and advances by each OpCode's encoded length, each
// .BYTE run's size, or jumps outright on .ORG.
func indexLabels(tokens []parser.Token, origin uint16) map[string]uint16 {
	labels := make(map[string]uint16)
	a := origin

	for _, tok := range tokens {
		switch tok.Kind {
		case parser.Label:
			labels[tok.Name] = a
		case parser.OpCode:
			a += uint16(tok.OpCode.Length)
		case parser.OrgDirective:
			a = tok.Org
		case parser.ByteDirective:
			a += uint16(len(tok.Bytes))
		}
	}

	return labels
}

func emit(tokens []parser.Token, origin uint16, labels map[string]uint16) ([]CodeSegment, error) {
	var segments []CodeSegment
	cur := CodeSegment{Origin: origin}
	a := origin

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		switch tok.Kind {
		case parser.Label:
			i++

		case parser.OrgDirective:
			if len(cur.Bytes) > 0 {
				segments = append(segments, cur)
			}
			cur = CodeSegment{Origin: tok.Org}
			a = tok.Org
			i++

		case parser.ByteDirective:
			cur.Bytes = append(cur.Bytes, tok.Bytes...)
			a += uint16(len(tok.Bytes))
			i++

		case parser.OpCode:
			entry := tok.OpCode
			cur.Bytes = append(cur.Bytes, entry.Code)
			a += uint16(entry.Length)
			i++

			if i >= len(tokens) {
				break
			}

			switch tokens[i].Kind {
			case parser.RawByte:
				cur.Bytes = append(cur.Bytes, tokens[i].Byte)
				i++

			case parser.RawBytes:
				cur.Bytes = append(cur.Bytes, tokens[i].Bytes...)
				i++

			case parser.LabelArg:
				name := tokens[i].Name
				target, ok := labels[name]
				if !ok {
					return nil, &Error{Message: fmt.Sprintf("unknown label %q", name)}
				}

				if entry.Mode == cpu.Relative {
					offset := int(target) - int(a)
					if offset < -128 || offset > 127 {
						return nil, &Error{Message: fmt.Sprintf("relative branch to %q is out of range (%d bytes)", name, offset)}
					}
					cur.Bytes = append(cur.Bytes, byte(int8(offset)))
				} else {
					cur.Bytes = append(cur.Bytes, byte(target), byte(target>>8))
				}
				i++
			}

		default:
			i++
		}
	}

	if len(cur.Bytes) > 0 || len(segments) == 0 {
		segments = append(segments, cur)
	}

	return segments, nil
}
