package cpu

// Registers holds the 6502's general-purpose register file. The stack
// pointer and status flags are tracked separately (see Emulator.SP and Flags)
// rather than folded in here, since they have their own packing/overflow
// rules.
type Registers struct {
	A  byte // Accumulator
	X  byte // index register X
	Y  byte // index register Y
	PC uint16
}
