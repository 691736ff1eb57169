package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMatchesEmulatorDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, uint16(0xC000), c.Emulator.DefaultLoadAddress)
	assert.Equal(t, uint16(0x0100), c.Emulator.StackPageBase)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require := assert.New(t)
	require.NoError(err)
	require.Equal(Default(), c)
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := `
[emulator]
default_load_address = 32768
stack_page_base = 256
`
	require := assert.New(t)
	require.NoError(os.WriteFile(path, []byte(contents), 0o644))

	c, err := Load(path)
	require.NoError(err)
	require.Equal(uint16(0x8000), c.Emulator.DefaultLoadAddress)
	require.Equal(uint16(0x0100), c.Emulator.StackPageBase)
}
