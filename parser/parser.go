// Package parser turns a lexer token grid into a flat instruction stream:
// labels, opcodes with their resolved addressing mode, raw operand bytes,
// unresolved label references, and .ORG directives. It is where addressing
// modes actually get decided -- the lexer only sees shapes of punctuation,
// never opcode semantics.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"m6502/cpu"
	"m6502/lexer"
)

// TokenKind tags which of the parser's output shapes a Token carries.
type TokenKind int

const (
	Label       TokenKind = iota // a label definition; Name holds its text
	LabelArg                     // an unresolved reference to a label; Name holds its text
	OpCode                       // a chosen (mnemonic, mode) pair; OpCode holds the table entry
	RawByte                      // one literal operand byte, bundled with the OpCode just before it
	RawBytes                     // two literal operand bytes (little-endian address), bundled likewise
	OrgDirective                 // relocates the emission cursor; Org holds the new address
	ByteDirective                // a standalone .BYTE run; Bytes holds the literal values
)

// Token is one parsed unit, tagged by Kind with the fields relevant to that
// kind populated.
type Token struct {
	Kind  TokenKind
	Name  string
	OpCode cpu.OpCodeEntry
	Byte  byte
	Bytes []byte
	Org   uint16
}

// Error reports a syntactic or semantic failure discovered while parsing a
// single source line: an unknown mnemonic/mode combination, a dangling
// label, an out-of-range address, or an unexpected token shape.
type Error struct {
	Message string
	Line    int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (line %d)", e.Message, e.Line)
}

// Parser holds the running table of named constants (`NAME = value` lines);
// constants may themselves reference earlier constants, and resolution
// follows that chain to its terminal Address or Immediate value.
type Parser struct {
	constants map[string]lexer.Token
	line      int
}

// New returns a Parser with no constants defined yet.
func New() *Parser {
	return &Parser{constants: make(map[string]lexer.Token)}
}

// Parse consumes a lexer token grid and returns the flat instruction stream,
// or the first Error encountered.
func Parse(rows [][]lexer.Token) ([]Token, error) {
	return New().parse(rows)
}

func (p *Parser) parse(rows [][]lexer.Token) ([]Token, error) {
	var out []Token

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		p.line = row[0].Line

		c := &cursor{toks: row}
		first, _ := c.peek()

		switch first.Kind {
		case lexer.Ident:
			toks, err := p.parseIdentLine(c, first)
			if err != nil {
				return nil, err
			}
			out = append(out, toks...)

		case lexer.Period:
			toks, err := p.parseDirectiveLine(c)
			if err != nil {
				return nil, err
			}
			out = append(out, toks...)

		default:
			// a line that starts with anything else carries no meaning this
			// toolkit assigns; ignored rather than rejected.
		}
	}

	return out, nil
}

// parseIdentLine handles every line whose first token is an identifier: a
// bare opcode, a bare label, a colon-terminated label, a label followed by
// an opcode on the same line, or a constant assignment.
func (p *Parser) parseIdentLine(c *cursor, first lexer.Token) ([]Token, error) {
	if cpu.IsMnemonic(first.Text) {
		return p.consumeOpcode(c)
	}

	c.next() // consume the identifier itself
	name := first.Text

	next, ok := c.peek()
	if !ok {
		// a lone identifier is a label definition.
		return []Token{{Kind: Label, Name: name}}, nil
	}

	switch next.Kind {
	case lexer.Colon:
		c.next()
		after, ok := c.peek()
		if !ok {
			return []Token{{Kind: Label, Name: name}}, nil
		}
		if after.Kind != lexer.Ident || !cpu.IsMnemonic(after.Text) {
			return nil, p.err("expected an instruction after label")
		}
		rest, err := p.consumeOpcode(c)
		if err != nil {
			return nil, err
		}
		return append([]Token{{Kind: Label, Name: name}}, rest...), nil

	case lexer.Ident:
		if !cpu.IsMnemonic(next.Text) {
			return nil, p.err("expected an instruction after label")
		}
		rest, err := p.consumeOpcode(c)
		if err != nil {
			return nil, err
		}
		return append([]Token{{Kind: Label, Name: name}}, rest...), nil

	case lexer.Assignment:
		c.next()
		val, ok := c.peek()
		if !ok {
			return nil, p.err("unexpected end of line after '='")
		}
		switch val.Kind {
		case lexer.Address, lexer.Immediate, lexer.Ident:
			p.constants[name] = val
		default:
			return nil, p.err("cannot assign this token to a constant")
		}
		return nil, nil

	default:
		return nil, p.err("unexpected token after identifier")
	}
}

func (p *Parser) parseDirectiveLine(c *cursor) ([]Token, error) {
	c.next() // consume '.'
	dir, ok := c.peek()
	if !ok {
		return nil, p.err("unexpected end of line after '.'")
	}
	if dir.Kind != lexer.Ident {
		return nil, p.err("unknown directive")
	}
	c.next()

	switch strings.ToUpper(dir.Text) {
	case "ORG":
		addr, ok := c.peek()
		if !ok {
			return nil, p.err("expected an address after .ORG")
		}
		if addr.Kind != lexer.Address {
			return nil, p.err("expected an address after .ORG")
		}
		c.next()
		v, err := strconv.ParseUint(addr.Text, 16, 16)
		if err != nil {
			return nil, p.err("malformed address in .ORG")
		}
		return []Token{{Kind: OrgDirective, Org: uint16(v)}}, nil

	case "BYTE":
		var bytes []byte
		for {
			tok, ok := c.peek()
			if !ok {
				return nil, p.err("expected a byte value after .BYTE")
			}
			if tok.Kind == lexer.Ident {
				resolved, ok := p.resolveConstant(tok.Text)
				if !ok {
					return nil, p.err(fmt.Sprintf("undefined constant %q in .BYTE", tok.Text))
				}
				tok = resolved
			}
			b, err := p.resolveImmediateByte(tok)
			if err != nil {
				return nil, err
			}
			c.next()
			bytes = append(bytes, b)

			comma, ok := c.peek()
			if !ok || comma.Kind != lexer.Comma {
				break
			}
			c.next()
		}
		return []Token{{Kind: ByteDirective, Bytes: bytes}}, nil

	default:
		return nil, p.err("unknown directive")
	}
}

// consumeOpcode consumes the mnemonic token (not yet advanced past by the
// caller) and everything the chosen addressing mode requires, disambiguating
// among the modes that share a token shape. See the addressing-mode table
// this follows: empty operand falls back Implied-then-Accumulator; a bare
// $-address picks ZeroPage/Absolute by digit count, with an optional
// ,X/,Y suffix; a parenthesized operand picks among Indirect/IndirectX/
// IndirectY by where the comma and closing paren land; a bare identifier is
// either a known constant (substituted in the Ident case below) or an
// unresolved label, which is always Absolute for JMP/JSR and Relative
// otherwise.
func (p *Parser) consumeOpcode(c *cursor) ([]Token, error) {
	mnemonic, _ := c.next()

	next, ok := c.peek()
	if !ok {
		if entry, ok := cpu.Lookup(mnemonic.Text, cpu.Implied); ok {
			return []Token{{Kind: OpCode, OpCode: entry}}, nil
		}
		if entry, ok := cpu.Lookup(mnemonic.Text, cpu.Accumulator); ok {
			return []Token{{Kind: OpCode, OpCode: entry}}, nil
		}
		return nil, p.err(fmt.Sprintf("%s has no addressing mode with no operand", mnemonic.Text))
	}

	switch next.Kind {
	case lexer.Immediate:
		c.next()
		b, err := p.resolveImmediateByte(next)
		if err != nil {
			return nil, err
		}
		entry, ok := cpu.Lookup(mnemonic.Text, cpu.Immediate)
		if !ok {
			return nil, p.err(fmt.Sprintf("%s does not support immediate addressing", mnemonic.Text))
		}
		return []Token{{Kind: OpCode, OpCode: entry}, {Kind: RawByte, Byte: b}}, nil

	case lexer.Address:
		c.next()
		return p.consumeAddressOperand(c, mnemonic.Text, next)

	case lexer.OpenParen:
		c.next()
		return p.consumeIndirectOperand(c, mnemonic.Text)

	case lexer.Ident:
		c.next()
		if resolved, ok := p.resolveConstant(next.Text); ok {
			switch resolved.Kind {
			case lexer.Address:
				return p.consumeAddressOperand(c, mnemonic.Text, resolved)
			case lexer.Immediate:
				b, err := p.resolveImmediateByte(resolved)
				if err != nil {
					return nil, err
				}
				entry, ok := cpu.Lookup(mnemonic.Text, cpu.Immediate)
				if !ok {
					return nil, p.err(fmt.Sprintf("%s does not support immediate addressing", mnemonic.Text))
				}
				return []Token{{Kind: OpCode, OpCode: entry}, {Kind: RawByte, Byte: b}}, nil
			default:
				return nil, p.err("constant does not resolve to an address or value")
			}
		}

		mode := cpu.Relative
		if mnemonic.Text == "JMP" || mnemonic.Text == "JSR" {
			mode = cpu.Absolute
		}
		entry, ok := cpu.Lookup(mnemonic.Text, mode)
		if !ok {
			return nil, p.err(fmt.Sprintf("%s does not support this addressing mode", mnemonic.Text))
		}
		return []Token{{Kind: OpCode, OpCode: entry}, {Kind: LabelArg, Name: next.Text}}, nil

	default:
		return nil, p.err("expected an operand")
	}
}

// consumeAddressOperand resolves a bare $-address operand, with an optional
// trailing ,X or ,Y, to ZeroPage(X/Y) when the literal is one or two hex
// digits, or Absolute(X/Y) when it's three or four.
func (p *Parser) consumeAddressOperand(c *cursor, mnemonic string, addrTok lexer.Token) ([]Token, error) {
	zeroPage := len(addrTok.Text) <= 2

	mode := cpu.Absolute
	if zeroPage {
		mode = cpu.ZeroPage
	}

	if comma, ok := c.peek(); ok && comma.Kind == lexer.Comma {
		c.next()
		reg, ok := c.next()
		if !ok || reg.Kind != lexer.Ident {
			return nil, p.err("expected a register after ','")
		}
		switch strings.ToUpper(reg.Text) {
		case "X":
			if zeroPage {
				mode = cpu.ZeroPageX
			} else {
				mode = cpu.AbsoluteX
			}
		case "Y":
			if zeroPage {
				mode = cpu.ZeroPageY
			} else {
				mode = cpu.AbsoluteY
			}
		default:
			return nil, p.err("expected 'X' or 'Y' after ','")
		}
	}

	entry, ok := cpu.Lookup(mnemonic, mode)
	if !ok {
		return nil, p.err(fmt.Sprintf("%s does not support %s addressing", mnemonic, mode))
	}

	bytes, err := parseAddressBytes(addrTok.Text, zeroPage)
	if err != nil {
		return nil, p.err(err.Error())
	}

	if zeroPage {
		return []Token{{Kind: OpCode, OpCode: entry}, {Kind: RawByte, Byte: bytes[0]}}, nil
	}
	return []Token{{Kind: OpCode, OpCode: entry}, {Kind: RawBytes, Bytes: bytes}}, nil
}

// consumeIndirectOperand picks among Indirect, IndirectX and IndirectY once
// the opening paren has already been consumed: `(addr,X)` is IndirectX,
// `(addr),Y` is IndirectY, and a bare `(addr)` is Indirect (JMP only).
func (p *Parser) consumeIndirectOperand(c *cursor, mnemonic string) ([]Token, error) {
	addrTok, ok := c.next()
	if !ok || addrTok.Kind != lexer.Address {
		return nil, p.err("expected an address inside '('")
	}

	next, ok := c.peek()
	if !ok {
		return nil, p.err("unexpected end of line inside parenthesized operand")
	}

	switch next.Kind {
	case lexer.Comma:
		c.next()
		reg, ok := c.next()
		if !ok || reg.Kind != lexer.Ident || strings.ToUpper(reg.Text) != "X" {
			return nil, p.err("expected ',X' inside parenthesized operand")
		}
		closeParen, ok := c.next()
		if !ok || closeParen.Kind != lexer.CloseParen {
			return nil, p.err("expected ')' to close indirect operand")
		}
		entry, ok := cpu.Lookup(mnemonic, cpu.IndirectX)
		if !ok {
			return nil, p.err(fmt.Sprintf("%s does not support indexed indirect addressing", mnemonic))
		}
		bytes, err := parseAddressBytes(addrTok.Text, true)
		if err != nil {
			return nil, p.err(err.Error())
		}
		return []Token{{Kind: OpCode, OpCode: entry}, {Kind: RawByte, Byte: bytes[0]}}, nil

	case lexer.CloseParen:
		c.next()
		after, ok := c.peek()
		if !ok {
			entry, ok := cpu.Lookup(mnemonic, cpu.Indirect)
			if !ok {
				return nil, p.err(fmt.Sprintf("%s does not support indirect addressing", mnemonic))
			}
			bytes, err := parseAddressBytes(addrTok.Text, false)
			if err != nil {
				return nil, p.err(err.Error())
			}
			return []Token{{Kind: OpCode, OpCode: entry}, {Kind: RawBytes, Bytes: bytes}}, nil
		}
		if after.Kind != lexer.Comma {
			return nil, p.err("unexpected token after ')'")
		}
		c.next()
		reg, ok := c.next()
		if !ok || reg.Kind != lexer.Ident || strings.ToUpper(reg.Text) != "Y" {
			return nil, p.err("expected ',Y' after indirect operand")
		}
		entry, ok := cpu.Lookup(mnemonic, cpu.IndirectY)
		if !ok {
			return nil, p.err(fmt.Sprintf("%s does not support indirect indexed addressing", mnemonic))
		}
		bytes, err := parseAddressBytes(addrTok.Text, true)
		if err != nil {
			return nil, p.err(err.Error())
		}
		return []Token{{Kind: OpCode, OpCode: entry}, {Kind: RawByte, Byte: bytes[0]}}, nil

	default:
		return nil, p.err("unexpected token inside parenthesized operand")
	}
}

// resolveConstant follows a chain of `NAME = NAME2`-style assignments to its
// terminal Address or Immediate token, guarding against cycles. It reports
// false when name was never assigned, which callers treat as "this is a
// label reference, not a constant".
func (p *Parser) resolveConstant(name string) (lexer.Token, bool) {
	seen := make(map[string]bool)
	for {
		if seen[name] {
			return lexer.Token{}, false
		}
		seen[name] = true

		tok, ok := p.constants[name]
		if !ok {
			return lexer.Token{}, false
		}
		if tok.Kind != lexer.Ident {
			return tok, true
		}
		name = tok.Text
	}
}

// resolveImmediateByte parses a lexer Immediate token's digits in its
// declared base into a single byte. An Address token (as .BYTE accepts) is
// read as hex.
func (p *Parser) resolveImmediateByte(tok lexer.Token) (byte, error) {
	base := 10
	if tok.Base == lexer.Hex || tok.Kind == lexer.Address {
		base = 16
	}
	v, err := strconv.ParseUint(tok.Text, base, 8)
	if err != nil {
		return 0, p.err(fmt.Sprintf("cannot parse immediate value %q", tok.Text))
	}
	return byte(v), nil
}

// parseAddressBytes turns a hex digit string into its little-endian operand
// bytes: one byte for a zero-page address, two for an absolute one.
func parseAddressBytes(hex string, zeroPage bool) ([]byte, error) {
	v, err := strconv.ParseUint(hex, 16, 16)
	if err != nil {
		return nil, fmt.Errorf("cannot parse address %q", hex)
	}
	if zeroPage {
		return []byte{byte(v)}, nil
	}
	return []byte{byte(v), byte(v >> 8)}, nil
}

func (p *Parser) err(message string) error {
	return &Error{Message: message, Line: p.line}
}

// cursor walks a single line's tokens with simple lookahead, standing in for
// the iterator-with-peek style this parser's reference implementation used.
type cursor struct {
	toks []lexer.Token
	i    int
}

func (c *cursor) peek() (lexer.Token, bool) {
	if c.i >= len(c.toks) {
		return lexer.Token{}, false
	}
	return c.toks[c.i], true
}

func (c *cursor) next() (lexer.Token, bool) {
	t, ok := c.peek()
	if ok {
		c.i++
	}
	return t, ok
}
