// Package config loads toolkit-wide defaults -- where a program lands in
// memory absent an explicit address, the origin an assembly session starts
// from, and where the stack page sits -- from an optional TOML file,
// falling back to sane defaults when none is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the addresses the assembler, disassembler and emulator agree
// on when the caller doesn't override them explicitly.
type Config struct {
	Assembler struct {
		DefaultOrigin uint16 `toml:"default_origin"`
	} `toml:"assembler"`

	Emulator struct {
		DefaultLoadAddress uint16 `toml:"default_load_address"`
		StackPageBase      uint16 `toml:"stack_page_base"`
	} `toml:"emulator"`

	Debugger struct {
		BytesPerPage int `toml:"bytes_per_page"`
	} `toml:"debugger"`
}

// Default returns the toolkit's built-in configuration, matching the
// emulator core's own zero-config behavior.
func Default() Config {
	var c Config
	c.Assembler.DefaultOrigin = 0x0000
	c.Emulator.DefaultLoadAddress = 0xC000
	c.Emulator.StackPageBase = 0x0100
	c.Debugger.BytesPerPage = 16
	return c
}

// Load reads a TOML config file at path, starting from Default and letting
// the file override whichever fields it sets. A missing file is not an
// error; it just means the defaults stand.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// DefaultPath returns ~/.config/m6502/config.toml, the file Load checks
// when the CLI isn't given an explicit --config flag.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "m6502", "config.toml")
}
