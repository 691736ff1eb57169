package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexBasicInstruction(t *testing.T) {
	rows, err := Lex("LDA $4400")
	require := assert.New(t)
	require.NoError(err)
	require.Len(rows, 1)
	require.Equal([]Token{
		{Kind: Ident, Text: "LDA", Line: 1, Column: 1},
		{Kind: Address, Text: "4400", Line: 1, Column: 5},
	}, rows[0])
}

func TestLexLabelAndComment(t *testing.T) {
	rows, err := Lex("MAIN: LDA $4400 ; load the thing\nPHA")
	require := assert.New(t)
	require.NoError(err)
	require.Len(rows, 2)
	require.Equal(Ident, rows[0][0].Kind)
	require.Equal("MAIN", rows[0][0].Text)
	require.Equal(Colon, rows[0][1].Kind)
	require.Equal(Ident, rows[0][2].Kind)
	require.Equal(Address, rows[0][3].Kind)
	require.Len(rows[0], 4)
}

func TestLexBlankLinesDropped(t *testing.T) {
	rows, err := Lex("LDA #$10\n\n\nSTA $00")
	require := assert.New(t)
	require.NoError(err)
	require.Len(rows, 2)
}

func TestLexImmediateHexAndDecimal(t *testing.T) {
	rows, err := Lex("LDX #$0F\nLDY #15")
	require := assert.New(t)
	require.NoError(err)
	require.Equal(Hex, rows[0][1].Base)
	require.Equal("0F", rows[0][1].Text)
	require.Equal(Decimal, rows[1][1].Base)
	require.Equal("15", rows[1][1].Text)
}

func TestLexPunctuation(t *testing.T) {
	rows, err := Lex("LDA ($FF,X)\nSTA ($FF),Y\nMAIN_ADDRESS = $0000")
	require := assert.New(t)
	require.NoError(err)
	require.Equal(OpenParen, rows[0][1].Kind)
	require.Equal(Comma, rows[0][3].Kind)
	require.Equal(CloseParen, rows[0][5].Kind)
	require.Equal(CloseParen, rows[1][3].Kind)
	require.Equal(Comma, rows[1][4].Kind)
	require.Equal(Assignment, rows[2][1].Kind)
}

func TestLexAddressOver4DigitsErrors(t *testing.T) {
	_, err := Lex("LDA $12345")
	assert.Error(t, err)
}

func TestLexUnrecognizedCharacterErrors(t *testing.T) {
	_, err := Lex("LDA @$4400")
	assert.Error(t, err)
}

func TestLexOrgDirective(t *testing.T) {
	rows, err := Lex(".ORG $C000")
	require := assert.New(t)
	require.NoError(err)
	require.Equal(Period, rows[0][0].Kind)
	require.Equal(Ident, rows[0][1].Kind)
	require.Equal("ORG", rows[0][1].Text)
	require.Equal(Address, rows[0][2].Kind)
}
