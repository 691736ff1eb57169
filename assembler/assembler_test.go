package assembler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"m6502/lexer"
	"m6502/parser"
)

func assembleText(t *testing.T, text string) []CodeSegment {
	t.Helper()
	rows, err := lexer.Lex(text)
	assert.NoError(t, err)
	toks, err := parser.Parse(rows)
	assert.NoError(t, err)
	segs, err := Assemble(toks, 0)
	assert.NoError(t, err)
	return segs
}

func TestAssembleBasicCode(t *testing.T) {
	segs := assembleText(t, "LDA $4400")
	require := assert.New(t)
	require.Len(segs, 1)
	require.Equal([]byte{0xAD, 0x00, 0x44}, segs[0].Bytes)
}

func TestAssembleJumpToLabelBehind(t *testing.T) {
	segs := assembleText(t, "MAIN LDA $4400\nPHA\nJMP MAIN")
	require := assert.New(t)
	require.Equal([]byte{0xAD, 0x00, 0x44, 0x48, 0x4C, 0x00, 0x00}, segs[0].Bytes)
}

func TestAssembleJumpToLabelWithColonBehind(t *testing.T) {
	segs := assembleText(t, "MAIN: LDA $4400\nPHA\nJMP MAIN")
	require := assert.New(t)
	require.Equal([]byte{0xAD, 0x00, 0x44, 0x48, 0x4C, 0x00, 0x00}, segs[0].Bytes)
}

func TestAssembleJumpToLabelAhead(t *testing.T) {
	segs := assembleText(t, "JMP MAIN\nPHA\nLDX #15\nMAIN LDA $4400\nRTS")
	require := assert.New(t)
	require.Equal([]byte{0x4C, 0x06, 0x00, 0x48, 0xA2, 0x0F, 0xAD, 0x00, 0x44, 0x60}, segs[0].Bytes)
}

func TestAssembleClearmem(t *testing.T) {
	segs := assembleText(t, "CLRMEM LDA #$00\nTAY\nCLRM1 STA ($FF),Y\nINY\nDEX\nBNE CLRM1\nRTS")
	require := assert.New(t)
	require.Equal([]byte{0xA9, 0x00, 0xA8, 0x91, 0xFF, 0xC8, 0xCA, 0xD0, 0xFA, 0x60}, segs[0].Bytes)
}

func TestAssembleMultipleOrgSegments(t *testing.T) {
	segs := assembleText(t, ".ORG $C000\nJMP CALLBACK\n.ORG $2000\nLDA #$AA\nSTA $2001\nCALLBACK\nLDX #$0A")
	require := assert.New(t)
	require.Len(segs, 2)
	require.Equal(uint16(0xC000), segs[0].Origin)
	require.Equal([]byte{0x4C, 0x05, 0x20}, segs[0].Bytes)
	require.Equal(uint16(0x2000), segs[1].Origin)
	require.Equal([]byte{0xA9, 0xAA, 0x8D, 0x01, 0x20, 0xA2, 0x0A}, segs[1].Bytes)
}

func TestAssembleVariables(t *testing.T) {
	segs := assembleText(t, "MAIN_ADDRESS = $0000\nMAIN:\nLDX #15\nJMP MAIN_ADDRESS")
	require := assert.New(t)
	require.Equal([]byte{0xA2, 0x0F, 0x4C, 0x00, 0x00}, segs[0].Bytes)
}

func TestAssembleUnknownLabelErrors(t *testing.T) {
	rows, err := lexer.Lex("JMP NOWHERE")
	assert.NoError(t, err)
	toks, err := parser.Parse(rows)
	assert.NoError(t, err)
	_, err = Assemble(toks, 0)
	assert.Error(t, err)
}

func TestAssembleRelativeOffsetTooLargeErrors(t *testing.T) {
	var b strings.Builder
	b.WriteString("LOOP\n")
	for i := 0; i < 200; i++ {
		b.WriteString(".BYTE $00\n")
	}
	b.WriteString("BNE LOOP")

	rows, err := lexer.Lex(b.String())
	assert.NoError(t, err)
	toks, err := parser.Parse(rows)
	assert.NoError(t, err)

	_, err = Assemble(toks, 0)
	assert.Error(t, err)
}
