// Package cpu implements the MOS Technology 6502 microprocessor, as
// used in the NES.
package cpu

import (
	"gones/mask"
	"gones/mem"
)

// Interrupt and reset vectors.
const (
	NmiVector   uint16 = 0xfffa
	ResetVector uint16 = 0xfffc
	IrqVector   uint16 = 0xfffe
)

const (
	stackBase   uint16 = 0x0100
	initialSP   byte   = 0xfd
	resetCycles        = 8
	irqCycles          = 7
	nmiCycles          = 8
)

// The Cpu has no memory of its own, aside from a handful of registers
// amounting to about 7 bytes. A Bus is lent to it for the duration of
// every operation; it never keeps one.
type Cpu struct {
	A  byte   // accumulator
	X  byte   // X index
	Y  byte   // Y index
	PC uint16 // program counter
	SP byte   // stack pointer; low byte of an address in page 0x01

	Status Status

	// LeftCycles counts down to the next instruction fetch. Tick
	// decrements it once per call; Process refills it.
	LeftCycles int

	// JmpPageWrap keeps the hardware JMP ($xxFF) quirk: the pointer's
	// high byte is read from the start of the same page instead of
	// the next one. On by default.
	JmpPageWrap bool
}

// New returns a Cpu with PC preloaded. Reset is still required before
// running a ROM; tests that hand-place programs skip it.
func New(startPC uint16) *Cpu {
	return &Cpu{
		PC:          startPC,
		SP:          initialSP,
		Status:      Status{U: true},
		JmpPageWrap: true,
	}
}

// Reset performs the power-on sequence: registers cleared, SP at 0xFD,
// PC loaded from the reset vector, status down to just the unused bit.
// The sequence occupies the CPU for eight cycles; one internal Tick is
// consumed here and the remainder is returned.
func (c *Cpu) Reset(bus mem.Bus) int {
	c.A = 0
	c.X = 0
	c.Y = 0
	c.SP = initialSP
	c.PC = mem.ReadWord(bus, ResetVector)

	c.Status.Reset()
	c.LeftCycles = resetCycles

	return c.Tick(bus)
}

// Tick advances the CPU by a single clock cycle. When the previous
// instruction has been paid for, the next one is processed; either way
// LeftCycles decreases by one and is returned.
func (c *Cpu) Tick(bus mem.Bus) int {
	if c.LeftCycles == 0 {
		c.Process(bus)
	}

	c.LeftCycles--
	return c.LeftCycles
}

// Process runs one whole instruction: fetch the opcode, resolve the
// operand address, execute, update flags, account cycles. It is not
// cycle-accurate within the instruction; all the work happens at once
// and LeftCycles makes the caller wait out the difference.
func (c *Cpu) Process(bus mem.Bus) int {
	opcode := bus.ReadByte(c.PC)
	inst := Lookup(opcode)
	c.PC++

	addr, extra := c.fetchAddress(bus, inst.Mode)
	cycles := inst.Cycles + extra

	cycles += c.execute(bus, inst, addr)

	c.LeftCycles = cycles
	return cycles
}

// fetchAddress resolves the operand's effective address for the given
// mode, advancing PC past the operand bytes. The second return value
// is the page-cross penalty; branch penalties are handled by the
// branch instructions themselves.
func (c *Cpu) fetchAddress(bus mem.Bus, mode AddressingMode) (uint16, int) {
	switch mode {
	case Implied:
		return 0, 0

	case Accumulator:
		// the operand -is- the accumulator
		return uint16(c.A), 0

	case Immediate:
		operand := bus.ReadByte(c.PC)
		c.PC++
		return uint16(operand), 0

	case ZeroPage:
		addr := bus.ReadByte(c.PC)
		c.PC++
		return uint16(addr), 0

	case ZeroPageX:
		// index arithmetic wraps within page zero
		addr := bus.ReadByte(c.PC) + c.X
		c.PC++
		return uint16(addr), 0

	case ZeroPageY:
		addr := bus.ReadByte(c.PC) + c.Y
		c.PC++
		return uint16(addr), 0

	case Relative:
		// the branch itself adds the taken/page-cross cycles
		rel := uint16(bus.ReadByte(c.PC))
		c.PC++
		if rel > 0x80 {
			rel |= 0xff00
		}
		return rel, 0

	case Absolute:
		addr := mem.ReadWord(bus, c.PC)
		c.PC += 2
		return addr, 0

	case AbsoluteX:
		base := mem.ReadWord(bus, c.PC)
		c.PC += 2
		addr := base + uint16(c.X)
		if !mask.SamePage(base, addr) {
			return addr, 1
		}
		return addr, 0

	case AbsoluteY:
		base := mem.ReadWord(bus, c.PC)
		c.PC += 2
		addr := base + uint16(c.Y)
		if !mask.SamePage(base, addr) {
			return addr, 1
		}
		return addr, 0

	case IndirectX:
		// the X offset applies before the indirection and wraps
		// within page zero
		zp := bus.ReadByte(c.PC) + c.X
		c.PC++
		addr := mask.Word(bus.ReadByte(uint16(zp+1)), bus.ReadByte(uint16(zp)))
		return addr, 0

	case IndirectY:
		// the Y offset applies after the indirection, so a page
		// cross is possible and costs a cycle
		zp := bus.ReadByte(c.PC)
		c.PC++
		base := mask.Word(bus.ReadByte(uint16(zp+1)), bus.ReadByte(uint16(zp)))
		addr := base + uint16(c.Y)
		if !mask.SamePage(base, addr) {
			return addr, 1
		}
		return addr, 0

	case Indirect:
		ptr := mem.ReadWord(bus, c.PC)
		c.PC += 2

		low := bus.ReadByte(ptr)
		var high byte
		if c.JmpPageWrap && mask.LoByte(ptr) == 0xff {
			// hardware bug: the high byte comes from the start of
			// the same page
			// http://www.6502.org/tutorials/6502opcodes.html#JMP
			high = bus.ReadByte(ptr & 0xff00)
		} else {
			high = bus.ReadByte(ptr + 1)
		}
		return mask.Word(high, low), 0
	}

	return 0, 0
}

// readOperand turns a resolved address into the operand byte.
func (c *Cpu) readOperand(bus mem.Bus, mode AddressingMode, addr uint16) byte {
	switch mode {
	case Implied:
		return 0
	case Accumulator, Immediate:
		// fetchAddress already produced the value itself
		return byte(addr)
	default:
		return bus.ReadByte(addr)
	}
}

// Irq services a maskable interrupt request. Honored only when the
// interrupt-disable flag is clear.
func (c *Cpu) Irq(bus mem.Bus) {
	if c.Status.I {
		return
	}
	c.interrupt(bus, IrqVector)
	c.LeftCycles = irqCycles
}

// Nmi services a non-maskable interrupt.
func (c *Cpu) Nmi(bus mem.Bus) {
	c.interrupt(bus, NmiVector)
	c.LeftCycles = nmiCycles
}

func (c *Cpu) interrupt(bus mem.Bus, vector uint16) {
	c.pushWord(bus, c.PC)

	c.Status.B = false
	c.Status.U = true
	c.pushByte(bus, c.Status.ToByte())
	c.Status.I = true

	c.PC = mem.ReadWord(bus, vector)
}

// Stack helpers. The stack lives in page 0x01; SP holds the low byte
// of the next free slot and wraps modulo 256 in both directions.

func (c *Cpu) pushByte(bus mem.Bus, data byte) {
	bus.WriteByte(stackBase|uint16(c.SP), data)
	c.SP--
}

func (c *Cpu) popByte(bus mem.Bus) byte {
	c.SP++
	return bus.ReadByte(stackBase | uint16(c.SP))
}

func (c *Cpu) pushWord(bus mem.Bus, data uint16) {
	c.pushByte(bus, mask.HiByte(data))
	c.pushByte(bus, mask.LoByte(data))
}

func (c *Cpu) popWord(bus mem.Bus) uint16 {
	low := c.popByte(bus)
	high := c.popByte(bus)
	return mask.Word(high, low)
}
