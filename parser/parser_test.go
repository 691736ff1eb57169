package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m6502/lexer"
)

func parseText(t *testing.T, text string) []Token {
	t.Helper()
	rows, err := lexer.Lex(text)
	assert.NoError(t, err)
	toks, err := Parse(rows)
	assert.NoError(t, err)
	return toks
}

func TestParseBasicOpcode(t *testing.T) {
	toks := parseText(t, "LDA $4400")
	require := assert.New(t)
	require.Len(toks, 2)
	require.Equal(OpCode, toks[0].Kind)
	require.Equal("LDA", toks[0].OpCode.Mnemonic)
	require.Equal(RawBytes, toks[1].Kind)
	require.Equal([]byte{0x00, 0x44}, toks[1].Bytes)
}

func TestParseLonelyLabel(t *testing.T) {
	toks := parseText(t, "MAIN")
	require := assert.New(t)
	require.Len(toks, 1)
	require.Equal(Label, toks[0].Kind)
	require.Equal("MAIN", toks[0].Name)
}

func TestParseColonTerminatedLabel(t *testing.T) {
	toks := parseText(t, "MAIN:")
	require := assert.New(t)
	require.Len(toks, 1)
	require.Equal(Label, toks[0].Kind)
	require.Equal("MAIN", toks[0].Name)
}

func TestParseLabelThenOpcodeOnSameLine(t *testing.T) {
	toks := parseText(t, "MAIN LDA $4400")
	require := assert.New(t)
	require.Len(toks, 3)
	require.Equal(Label, toks[0].Kind)
	require.Equal(OpCode, toks[1].Kind)
	require.Equal(RawBytes, toks[2].Kind)
}

func TestParseImpliedAndAccumulatorFallback(t *testing.T) {
	toks := parseText(t, "NOP\nASL")
	require := assert.New(t)
	require.Equal("NOP", toks[0].OpCode.Mnemonic)
	require.Equal("ASL", toks[1].OpCode.Mnemonic)
}

func TestParseZeroPageVsAbsolute(t *testing.T) {
	toks := parseText(t, "LDA $44\nLDA $4400")
	require := assert.New(t)
	require.Equal("ZeroPage", toks[0].OpCode.Mode.String())
	require.Equal(RawByte, toks[1].Kind)
	require.Equal("Absolute", toks[2].OpCode.Mode.String())
	require.Equal(RawBytes, toks[3].Kind)
}

func TestParseAbsoluteXIndexed(t *testing.T) {
	toks := parseText(t, "LDA $4400,X")
	require := assert.New(t)
	require.Equal("AbsoluteX", toks[0].OpCode.Mode.String())
}

func TestParseZeroPageYOnStx(t *testing.T) {
	toks := parseText(t, "STX $44,Y")
	require := assert.New(t)
	require.Equal("ZeroPageY", toks[0].OpCode.Mode.String())
}

func TestParseIndirectXAndIndirectY(t *testing.T) {
	toks := parseText(t, "LDA ($FF,X)\nSTA ($FF),Y")
	require := assert.New(t)
	require.Equal("IndirectX", toks[0].OpCode.Mode.String())
	require.Equal("IndirectY", toks[2].OpCode.Mode.String())
}

func TestParseImmediate(t *testing.T) {
	toks := parseText(t, "LDX #15")
	require := assert.New(t)
	require.Equal("Immediate", toks[0].OpCode.Mode.String())
	require.Equal(RawByte, toks[1].Kind)
	require.Equal(byte(15), toks[1].Byte)
}

func TestParseLabelArgumentForward(t *testing.T) {
	toks := parseText(t, "JMP MAIN\nBNE LOOP")
	require := assert.New(t)
	require.Equal("Absolute", toks[0].OpCode.Mode.String())
	require.Equal(LabelArg, toks[1].Kind)
	require.Equal("MAIN", toks[1].Name)
	require.Equal("Relative", toks[2].OpCode.Mode.String())
	require.Equal("LOOP", toks[3].Name)
}

func TestParseVariableAssignmentAndUse(t *testing.T) {
	toks := parseText(t, "MAIN_ADDRESS = $0000\nMAIN:\nLDX #15\nJMP MAIN_ADDRESS")
	require := assert.New(t)
	// MAIN_ADDRESS = ... produces no token; MAIN: produces a Label.
	require.Equal(Label, toks[0].Kind)
	require.Equal("MAIN", toks[0].Name)
	require.Equal("LDX", toks[1].OpCode.Mnemonic)
	require.Equal(RawByte, toks[2].Kind)
	require.Equal(byte(15), toks[2].Byte)
	require.Equal("JMP", toks[3].OpCode.Mnemonic)
	require.Equal(RawBytes, toks[4].Kind)
	require.Equal([]byte{0x00, 0x00}, toks[4].Bytes)
}

func TestParseTransitiveVariableChain(t *testing.T) {
	toks := parseText(t, "A = $1234\nB = A\nLDA B")
	require := assert.New(t)
	require.Equal(RawBytes, toks[1].Kind)
	require.Equal([]byte{0x34, 0x12}, toks[1].Bytes)
}

func TestParseOrgDirective(t *testing.T) {
	toks := parseText(t, ".ORG $C000")
	require := assert.New(t)
	require.Equal(OrgDirective, toks[0].Kind)
	require.Equal(uint16(0xC000), toks[0].Org)
}

func TestParseByteDirective(t *testing.T) {
	toks := parseText(t, ".BYTE $01,$02,$03")
	require := assert.New(t)
	require.Equal(ByteDirective, toks[0].Kind)
	require.Equal([]byte{0x01, 0x02, 0x03}, toks[0].Bytes)
}

func TestParseUnknownOpcodeComboErrors(t *testing.T) {
	rows, err := lexer.Lex("STX $4400,X")
	assert.NoError(t, err)
	_, err = Parse(rows)
	assert.Error(t, err)
}
