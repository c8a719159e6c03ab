// Package nes assembles the console: CPU, bus, PPU, APU stub and
// cartridge, with the callable surface a frontend drives.
package nes

import (
	"gones/cpu"
	"gones/mem"
	"gones/ppu"
)

// ppuDotsPerCpuCycle: the 2C02 runs off a clock three times the CPU's.
const ppuDotsPerCpuCycle = 3

// Nes owns the whole machine. The CPU borrows the bus per call and
// owns nothing; the PPU owns its memories and the frame buffer.
type Nes struct {
	Cpu *cpu.Cpu
	Ppu *ppu.Ppu
	Bus *mem.SysBus

	cycles   int
	inVblank bool
}

// New builds a console with no cartridge: 2 kB of RAM, a blank NROM
// image, everything at power-on defaults.
func New() *Nes {
	p := ppu.New()
	return &Nes{
		Cpu: cpu.New(0),
		Ppu: p,
		Bus: mem.NewSysBus(mem.NewRam(0x0800), p, &mem.Apu{}, mem.NewRom(nil, nil)),
	}
}

// Load reads an iNES file into the cartridge slot.
func (n *Nes) Load(path string) error {
	rom, err := mem.LoadRom(path)
	if err != nil {
		return err
	}
	n.LoadRom(rom)
	return nil
}

// LoadRom inserts an already-parsed cartridge.
func (n *Nes) LoadRom(rom *mem.Rom) {
	n.Bus.Rom = rom
}

// Reset runs the power-on sequence through to the first instruction
// fetch boundary.
func (n *Nes) Reset() {
	n.Cpu.Reset(n.Bus)
	n.cycles++

	for n.Cpu.Tick(n.Bus) != 0 {
		n.cycles++
	}
	n.cycles++
}

// Tick advances the machine one CPU cycle: three PPU dots first, then
// the CPU. A vblank onset with NMI enabled starts the CPU's NMI
// sequence on the same tick; cycles still owed by the current
// instruction are replaced by the NMI's own.
func (n *Nes) Tick() {
	for i := 0; i < ppuDotsPerCpuCycle; i++ {
		n.Ppu.Tick()
	}

	vblank := n.Ppu.Status.IsSet(ppu.StatusVBlank)
	if vblank && !n.inVblank && n.Ppu.Control.IsSet(ppu.CtrlNmi) {
		n.Cpu.Nmi(n.Bus)
	}
	n.inVblank = vblank

	n.Cpu.Tick(n.Bus)
	n.cycles++
}

// ProcessNext runs until the next instruction boundary.
func (n *Nes) ProcessNext() {
	n.Tick()
	for n.Cpu.LeftCycles != 0 {
		n.Tick()
	}
}

// NextFrame runs until the PPU reports a completed frame. It first
// ticks past a completion flag still standing from the previous frame,
// so back-to-back calls each advance one full frame.
func (n *Nes) NextFrame() {
	for n.Ppu.FrameComplete() {
		n.Tick()
	}
	for {
		n.Tick()
		if n.Ppu.FrameComplete() {
			return
		}
	}
}

// IsFrameComplete reports whether the PPU's frame-complete flag is up.
// It rises when the PPU enters scanline 262 and stays up until the
// next frame starts.
func (n *Nes) IsFrameComplete() bool { return n.Ppu.FrameComplete() }

// RenderedBuffer exposes the frame as raw RGBA8 bytes,
// width*height*4, rows top down.
func (n *Nes) RenderedBuffer() []byte { return n.Ppu.Frame().Data() }

// Cycles reports the total CPU cycles since power-on.
func (n *Nes) Cycles() int { return n.cycles }

// Read-only register accessors for debug overlays.

func (n *Nes) A() byte            { return n.Cpu.A }
func (n *Nes) X() byte            { return n.Cpu.X }
func (n *Nes) Y() byte            { return n.Cpu.Y }
func (n *Nes) PC() uint16         { return n.Cpu.PC }
func (n *Nes) SP() byte           { return n.Cpu.SP }
func (n *Nes) Status() cpu.Status { return n.Cpu.Status }
