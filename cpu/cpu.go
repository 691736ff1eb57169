package cpu

import "time"

// https://www.nesdev.org/wiki/CPU#Frequencies
// https://www.nesdev.org/wiki/Cycle_reference_chart#Clock_rates

// Tick is the wall-clock duration of one 6502 cycle at the NES's 1.79 MHz
// clock, for callers that want to pace StepN to look real-time rather than
// run flat out. Nothing in this toolkit paces itself with it.
var Tick = time.Second / 1789773
