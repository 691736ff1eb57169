package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func addr(a uint16) *uint16 { return &a }

func TestLoad(t *testing.T) {
	program := []byte{0xA2, 0x0A, 0x8E, 0x00, 0x00, 0xA2, 0x03, 0x8E, 0x01, 0x00}

	e := New()
	require := assert.New(t)
	require.NoError(e.Load(program, addr(0x8000)))

	require.Equal(byte(0xA2), e.Bus.Read(0x8000))
	require.Equal(byte(0x8E), e.Bus.Read(0x8002))

	entry, ok := FromRawByte(e.Bus.Read(0x8000))
	require.True(ok)
	require.Equal("LDX", entry.Mnemonic)

	// Load never moves PC; only Reset does.
	require.Equal(uint16(0), e.Registers.PC)
}

func TestResetAndFinished(t *testing.T) {
	e := New()
	require := assert.New(t)
	program := []byte{0xEA, 0xEA, 0x00} // NOP NOP BRK
	require.NoError(e.Load(program, addr(0x8000)))

	e.Reset()
	require.Equal(uint16(0x8000), e.Registers.PC)
	require.False(e.Finished())

	e.Registers.PC = 0x8003
	require.True(e.Finished())
}

// TestMultiplyByRepeatedAddition walks a small program that multiplies 10 by
// 3 via repeated addition, checking the accumulator and X register just
// before each of its first eight instructions, then running the loop until
// Y reaches zero and checking the product in A.
func TestMultiplyByRepeatedAddition(t *testing.T) {
	program := []byte{
		0xA2, 0x0A, // LDX #$0A
		0x8E, 0x00, 0x00, // STX $0000
		0xA2, 0x03, // LDX #$03
		0x8E, 0x01, 0x00, // STX $0001
		0xAC, 0x00, 0x00, // LDY $0000
		0xA9, 0x00, // LDA #$00
		0x18,             // CLC
		0x6D, 0x01, 0x00, // loop: ADC $0001
		0x88,       // DEY
		0xD0, 0xFA, // BNE loop
		0x8D, 0x02, 0x00, // STA $0002
		0xEA, 0xEA, 0xEA, // NOP NOP NOP
	}

	e := New()
	require := assert.New(t)
	require.NoError(e.Load(program, addr(0x8000)))
	e.Reset()
	e.Bus.WriteWord(irqVector, 0x8000) // the program itself raises no interrupt

	for _, expect := range []struct {
		mnemonic string
		a, x, y  byte
	}{
		{"LDX", 0, 0, 0},
		{"STX", 0, 0x0A, 0},
		{"LDX", 0, 0x0A, 0},
		{"STX", 0, 0x03, 0},
		{"LDY", 0, 0x03, 0},
		{"LDA", 0, 0x03, 0x0A},
		{"CLC", 0, 0x03, 0x0A},
		{"ADC", 0, 0x03, 0x0A},
	} {
		entry, ok := FromRawByte(e.Bus.Read(e.Registers.PC))
		require.True(ok)
		require.Equal(expect.mnemonic, entry.Mnemonic)
		require.Equal(expect.a, e.Registers.A, "before %s", expect.mnemonic)
		require.Equal(expect.x, e.Registers.X, "before %s", expect.mnemonic)
		_, err := e.Step()
		require.NoError(err)
	}

	// Run the remaining loop iterations, stopping right after the DEY that
	// brings Y to zero.
	for i := 0; i < 40 && e.Registers.Y != 0; i++ {
		if _, err := e.Step(); err != nil {
			t.Fatalf("unexpected step error: %v", err)
		}
	}

	require.Equal(byte(30), e.Registers.A)
	require.Equal(byte(0), e.Registers.Y)
}

func TestADCDecimalMode(t *testing.T) {
	e := New()
	require := assert.New(t)
	e.Flags.Decimal = true
	e.Registers.A = 0x19 // 19 in BCD
	e.adc(Operand{kind: opImmediate, imm: 0x09})
	require.Equal(byte(0x28), e.Registers.A) // 19 + 9 = 28 in BCD
}

func TestJSRandRTSAreNonCanonicalButBalanced(t *testing.T) {
	// JSR pushes PC already advanced past itself (no -1), and RTS pops
	// straight into PC (no +1); the two corrections cancel out, so a
	// plain call/return round-trips correctly despite each half being
	// individually non-canonical.
	e := New()
	require := assert.New(t)
	program := []byte{0x20, 0x05, 0x80, 0xEA, 0xEA, 0x60} // JSR $8005; NOP; NOP; RTS
	require.NoError(e.Load(program, addr(0x8000)))
	e.Reset()

	_, err := e.Step() // JSR
	require.NoError(err)
	require.Equal(uint16(0x8005), e.Registers.PC)

	_, err = e.Step() // RTS
	require.NoError(err)
	require.Equal(uint16(0x8003), e.Registers.PC)
}

func TestBRKPushesPCButRTIDoesNotRestoreIt(t *testing.T) {
	e := New()
	require := assert.New(t)
	program := []byte{0x00} // BRK
	require.NoError(e.Load(program, addr(0x8000)))
	e.Reset()

	_, err := e.Step()
	require.NoError(err)
	require.Equal(uint16(0x8001), e.Registers.PC)
	require.True(e.Flags.InterruptDisable)

	sp := e.SP
	e.rti(Operand{})
	// only the flags byte (1 byte) was popped, not the 16-bit PC.
	require.Equal(sp+1, e.SP)
	require.Equal(uint16(0x8001), e.Registers.PC)
}

func TestStackOverflowAndUnderflow(t *testing.T) {
	e := New()
	require := assert.New(t)
	e.SP = 0x00
	require.Error(e.push(0x42))

	e.SP = 0xFF
	_, err := e.pop()
	require.Error(err)
}
