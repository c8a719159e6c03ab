package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	cli "gopkg.in/urfave/cli.v2"

	"gones/asm"
	"gones/cpu"
	"gones/mem"
	"gones/nes"
)

func main() {
	app := &cli.App{
		Name:      "gones",
		Usage:     "NES emulator with an interactive step debugger",
		ArgsUsage: "<rom.nes>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "step the raw CPU over the PRG bank instead of running the console",
			},
		},
		Action: func(c *cli.Context) error {
			path := c.Args().First()
			if path == "" {
				cli.ShowAppHelp(c)
				return cli.Exit("a ROM path is required", 1)
			}

			if c.Bool("debug") {
				rom, err := mem.LoadRom(path)
				if err != nil {
					return cli.Exit(err.Error(), 1)
				}
				return cpu.New(0).Debug(rom.Prg, 0x8000)
			}

			return run(path)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(path string) error {
	console := nes.New()
	if err := console.Load(path); err != nil {
		return cli.Exit(err.Error(), 1)
	}
	console.Reset()

	_, err := tea.NewProgram(&model{console: console}).Run()
	return err
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
	pcStyle    = lipgloss.NewStyle().Reverse(true)
)

type model struct {
	console *nes.Nes
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.console.ProcessNext()
		case "f":
			m.console.NextFrame()
		case "r":
			m.console.Reset()
		}
	}
	return m, nil
}

func (m *model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("gones"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.registers(), "   ", m.listing()),
		"",
		dimStyle.Render("space: step   f: frame   r: reset   q: quit"),
	)
}

func (m *model) registers() string {
	c := m.console
	return fmt.Sprintf(
		"PC: %04X\nSP: %02X\n A: %02X\n X: %02X\n Y: %02X\n\n%s\n\ncycles: %d\nline %d dot %d",
		c.PC(), c.SP(), c.A(), c.X(), c.Y(),
		c.Status(),
		c.Cycles(),
		c.Ppu.ScanLine(), c.Ppu.Dot(),
	)
}

// listing disassembles a small window of memory starting at PC.
func (m *model) listing() string {
	const window = 3 * 10 // enough bytes for ten instructions

	pc := m.console.PC()
	code := make([]byte, window)
	for i := range code {
		code[i] = m.console.Bus.ReadByte(pc + uint16(i))
	}

	var b strings.Builder
	offset := uint16(0)
	for i, line := range asm.Disassemble(code) {
		if i >= 10 {
			break
		}
		text := fmt.Sprintf("%04X  %s", pc+offset, line.Text)
		if i == 0 {
			text = pcStyle.Render(text)
		}
		b.WriteString(text)
		b.WriteByte('\n')

		offset += 1 + uint16(instructionSize(code[offset]))
	}
	return b.String()
}

func instructionSize(opcode byte) int {
	return cpu.Lookup(opcode).Mode.OperandSize()
}
