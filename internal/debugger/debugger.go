// Package debugger is the CLI-facing entry point for interactive
// single-stepping; the bubbletea model itself lives alongside the Emulator
// in package cpu, since it reaches deep into unexported state for its page
// table view.
package debugger

import "m6502/cpu"

// Run starts an interactive single-step session over emu, which the caller
// must have already Loaded and Reset. Space or j advances one instruction,
// q quits.
func Run(emu *cpu.Emulator) error {
	return cpu.Debug(emu)
}
