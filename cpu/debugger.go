package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
)

// model is the bubbletea state for an interactive single-step session: the
// Emulator itself, plus just enough UI-only bookkeeping (prevPC, any fatal
// error) to render a useful screen.
type model struct {
	emu    *Emulator
	prevPC uint16
	err    error
}

// Init performs no command; the Emulator is expected to already be Loaded
// and Reset by the caller (see Debug).
func (m model) Init() tea.Cmd { return nil }

// Update steps the Emulator by one instruction per space/j keypress, quits
// on q or on a Step error.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.emu.Registers.PC
			if _, err := m.emu.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

const bytesPerPage = 16

// renderPage renders one 16-byte page as a line, highlighting PC if it
// falls inside it.
func (m model) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < bytesPerPage; i++ {
		addr := start + uint16(i)
		b := m.emu.Bus.Read(addr)
		if addr == m.emu.Registers.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m model) status() string {
	var flags string
	for _, set := range []bool{
		m.emu.Flags.Negative,
		m.emu.Flags.Overflow,
		m.emu.Flags.Unused,
		m.emu.Flags.Break,
		m.emu.Flags.Decimal,
		m.emu.Flags.InterruptDisable,
		m.emu.Flags.Zero,
		m.emu.Flags.Carry,
	} {
		if set {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
 A: %02x
 X: %02x
 Y: %02x
SP: %02x
N V _ B D I Z C
`,
		m.emu.Registers.PC,
		m.prevPC,
		m.emu.Registers.A,
		m.emu.Registers.X,
		m.emu.Registers.Y,
		m.emu.SP,
	) + flags
}

func (m model) pageTable() string {
	header := "page | "
	for b := 0; b < bytesPerPage; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pc := int(m.emu.Registers.PC)
	pageStart := pc - (pc % bytesPerPage)
	offsets := []int{0, 16, 32, 48, 64, pageStart}

	pages := []string{header}
	for _, off := range offsets {
		pages = append(pages, m.renderPage(uint16(off)))
	}
	return strings.Join(pages, "\n")
}

// View lays out the page table beside the register/flag status block, with
// the current opcode's table entry dumped underneath for inspection.
func (m model) View() string {
	raw := m.emu.Bus.Read(m.emu.Registers.PC)
	entry, _ := FromRawByte(raw)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(entry),
	)
}

// Debug starts an interactive single-step TUI over an already-Loaded and
// Reset Emulator. Space or j advances one instruction, q quits.
func Debug(emu *Emulator) error {
	final, err := tea.NewProgram(model{emu: emu, prevPC: emu.Registers.PC}).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}
