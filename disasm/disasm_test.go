package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassembleBasic(t *testing.T) {
	out := Disassemble([]byte{0xAD, 0x00, 0x44}, Options{})
	assert.Equal(t, "LDA $4400", out)
}

func TestDisassembleImmediate(t *testing.T) {
	out := Disassemble([]byte{0xA9, 0xAA}, Options{})
	assert.Equal(t, "LDA #$AA", out)
}

func TestDisassembleZeroPageIndexed(t *testing.T) {
	out := Disassemble([]byte{0xB5, 0x10}, Options{})
	assert.Equal(t, "LDA $10,X", out)
}

func TestDisassembleIndirectModes(t *testing.T) {
	out := Disassemble([]byte{0xA1, 0xFF, 0xB1, 0xFF, 0x6C, 0x00, 0x20}, Options{})
	assert.Equal(t, "LDA ($FF,X)\nLDA ($FF),Y\nJMP ($2000)", out)
}

func TestDisassembleRelativeBranchTarget(t *testing.T) {
	// BNE -6, at address 8: target = 8 + 2 + (-6) = 4.
	out := DisassembleAt([]byte{0xD0, 0xFA}, 0x0008, Options{})
	assert.Equal(t, "BNE $0004", out)
}

func TestDisassembleWithOffsetsAndOpcodeBytes(t *testing.T) {
	out := DisassembleAt([]byte{0xAD, 0x00, 0x44}, 0x8000, Options{Offsets: true, OpcodeBytes: true})
	assert.Equal(t, "8000 AD 00 44 LDA $4400", out)
}

func TestDisassembleRendersIllegalOpcodeAsPlaceholderAndResumes(t *testing.T) {
	out := Disassemble([]byte{0xEA, 0x02, 0xEA}, Options{})
	assert.Equal(t, "NOP\n???\nNOP", out)
}

func TestDisassembleMultipleInstructions(t *testing.T) {
	out := Disassemble([]byte{0xAD, 0x00, 0x44, 0x48, 0x4C, 0x00, 0x00}, Options{})
	assert.Equal(t, "LDA $4400\nPHA\nJMP $0000", out)
}
