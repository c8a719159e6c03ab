package cpu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"gones/mem"
)

// An interactive single-step debugger for raw programs: a bubbletea
// TUI showing memory around the PC, registers, flags, and a dump of
// the next instruction.

type debugModel struct {
	cpu *Cpu
	bus *mem.SimpleBus

	offset uint16 // where the program was loaded; anchors the page table
	prevPC uint16
}

func (m *debugModel) Init() tea.Cmd { return nil }

func (m *debugModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case " ", "j":
			m.prevPC = m.cpu.PC
			m.cpu.Process(m.bus)
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory. The current PC is
// bracketed.
func (m *debugModel) renderPage(start uint16) string {
	s := fmt.Sprintf("%04x | ", start)
	for i := uint16(0); i < 16; i++ {
		b := m.bus.ReadByte(start + i)
		if start+i == m.cpu.PC {
			s += fmt.Sprintf("[%02x] ", b)
		} else {
			s += fmt.Sprintf(" %02x  ", b)
		}
	}
	return s
}

func (m *debugModel) registers() string {
	var flags string
	for _, flag := range []bool{
		m.cpu.Status.N,
		m.cpu.Status.V,
		m.cpu.Status.U,
		m.cpu.Status.B,
		m.cpu.Status.D,
		m.cpu.Status.I,
		m.cpu.Status.Z,
		m.cpu.Status.C,
	} {
		if flag {
			flags += "/ "
		} else {
			flags += "  "
		}
	}
	return fmt.Sprintf(`
PC: %04x (%04x)
SP: %02x
 A: %02x
 X: %02x
 Y: %02x
N V U B D I Z C
`,
		m.cpu.PC,
		m.prevPC,
		m.cpu.SP,
		m.cpu.A,
		m.cpu.X,
		m.cpu.Y,
	) + flags
}

func (m *debugModel) pageTable() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}

	pages := []string{header}

	offsets := []uint16{
		0, 16, 32, 48, 64,
		0x0100, 0x01f0,
		m.offset,
		m.offset + 16,
		m.offset + 32,
		m.offset + 48,
	}
	for _, i := range offsets {
		pages = append(pages, m.renderPage(i))
	}
	return strings.Join(pages, "\n")
}

func (m *debugModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.registers(),
		),
		"",
		spew.Sdump(Lookup(m.bus.ReadByte(m.cpu.PC))),
	)
}

// Debug loads the program into a flat bus at the given offset, points
// the CPU at it, and starts an interactive TUI. Space steps one
// instruction, q quits.
func (c *Cpu) Debug(program []byte, offset uint16) error {
	bus := &mem.SimpleBus{}
	bus.Load(program, offset)
	c.PC = offset

	_, err := tea.NewProgram(&debugModel{
		cpu:    c,
		bus:    bus,
		offset: offset,
		prevPC: offset,
	}).Run()
	return err
}
