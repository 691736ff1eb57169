package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteRoundTrip(t *testing.T) {
	b := New()
	b.Write(0x1234, 0xAB)
	assert.Equal(t, byte(0xAB), b.Read(0x1234))
	assert.Equal(t, byte(0), b.Read(0x1235))
}

func TestReadWordWriteWord(t *testing.T) {
	b := New()
	b.WriteWord(0x2000, 0xC0DE)
	assert.Equal(t, byte(0xDE), b.Read(0x2000))
	assert.Equal(t, byte(0xC0), b.Read(0x2001))
	assert.Equal(t, uint16(0xC0DE), b.ReadWord(0x2000))
}

func TestReadWordWrapsAtTopOfAddressSpace(t *testing.T) {
	b := New()
	b.Write(0xFFFF, 0x34)
	b.Write(0x0000, 0x12)
	assert.Equal(t, uint16(0x1234), b.ReadWord(0xFFFF))
}

func TestLoadCopiesCode(t *testing.T) {
	b := New()
	require := assert.New(t)
	require.NoError(b.Load([]byte{0xA9, 0x01, 0x00}, 0x8000))
	require.Equal(byte(0xA9), b.Read(0x8000))
	require.Equal(byte(0x01), b.Read(0x8001))
	require.Equal(byte(0x00), b.Read(0x8002))
}

func TestLoadOutOfRangeErrors(t *testing.T) {
	b := New()
	err := b.Load(make([]byte, 16), 0xFFFA)
	assert.Error(t, err)
}
