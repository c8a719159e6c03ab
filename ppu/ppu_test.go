package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	ticksPerScanLine = 341
	ticksPerFrame    = 262 * 341
)

func tick(p *Ppu, n int) {
	for i := 0; i < n; i++ {
		p.Tick()
	}
}

func TestTickAdvancesDots(t *testing.T) {
	p := New()

	tick(p, 2)
	assert.Equal(t, 2, p.Dot())
	assert.Equal(t, 0, p.ScanLine())
	assert.False(t, p.FrameComplete())
}

func TestTickWrapsScanLine(t *testing.T) {
	p := New()

	tick(p, ticksPerScanLine)
	assert.Equal(t, 0, p.Dot())
	assert.Equal(t, 1, p.ScanLine())
	assert.False(t, p.Status.IsSet(StatusVBlank))
}

func TestVblankAndFrameCompletion(t *testing.T) {
	p := New()

	// through the visible frame and into vblank
	tick(p, 340+240*ticksPerScanLine)
	assert.True(t, p.Status.IsSet(StatusVBlank))
	assert.False(t, p.FrameComplete())

	// through the blanking scanlines to the end of the frame
	tick(p, 22*ticksPerScanLine+1)
	assert.True(t, p.FrameComplete())
	assert.False(t, p.Status.IsSet(StatusVBlank))

	// the next frame clears the completion flag again
	tick(p, ticksPerScanLine)
	assert.False(t, p.FrameComplete())
	assert.Equal(t, 1, p.ScanLine())
}

func TestTickDrawsBackdrop(t *testing.T) {
	p := New()
	p.WriteRegister(regAddress, 0x3f)
	p.WriteRegister(regAddress, 0x00)
	p.WriteRegister(regData, 0x21) // light blue backdrop

	tick(p, 2)

	want := SystemPalette[0x21]
	got, ok := p.Frame().At(0, 0)
	assert.True(t, ok)
	assert.Equal(t, want, got)
	got, _ = p.Frame().At(1, 0)
	assert.Equal(t, want, got)
}

func TestStatusReadClearsLatchAndVblank(t *testing.T) {
	p := New()
	p.Status.set(StatusVBlank)
	p.writeLatch = true

	data := p.ReadRegister(regStatus)

	assert.NotZero(t, data&byte(StatusVBlank))
	assert.False(t, p.Status.IsSet(StatusVBlank))
	assert.False(t, p.writeLatch)
}

func TestControlAndMaskWrites(t *testing.T) {
	p := New()

	p.WriteRegister(regControl, 0xff)
	assert.Equal(t, Control(0xff), p.Control)
	assert.True(t, p.Control.IsSet(CtrlNmi))
	assert.Equal(t, uint16(32), p.Control.Increment())

	p.WriteRegister(regMask, 0x1e)
	assert.True(t, p.Mask.IsSet(MaskShowBackground))
	assert.True(t, p.Mask.IsSet(MaskShowSprites))
	assert.False(t, p.Mask.IsSet(MaskGreyscale))
}

func TestControlBitLayout(t *testing.T) {
	assert.Equal(t, Control(1<<0), CtrlNametableLo)
	assert.Equal(t, Control(1<<1), CtrlNametableHi)
	assert.Equal(t, Control(1<<2), CtrlIncrement)
	assert.Equal(t, Control(1<<3), CtrlSpriteTable)
	assert.Equal(t, Control(1<<4), CtrlBackgroundTable)
	assert.Equal(t, Control(1<<5), CtrlMasterSlave)
	assert.Equal(t, Control(1<<6), CtrlSpriteSize)
	assert.Equal(t, Control(1<<7), CtrlNmi)
}

func TestScrollLatch(t *testing.T) {
	p := New()

	p.WriteRegister(regScroll, 0x12)
	assert.Equal(t, byte(0x12), p.scrollX)
	assert.Equal(t, byte(0x00), p.scrollY)
	assert.True(t, p.writeLatch)

	p.WriteRegister(regScroll, 0x34)
	assert.Equal(t, byte(0x12), p.scrollX)
	assert.Equal(t, byte(0x34), p.scrollY)
	assert.False(t, p.writeLatch)
}

func TestAddressLatch(t *testing.T) {
	p := New()

	p.WriteRegister(regAddress, 0x12)
	assert.Equal(t, uint16(0x1200), p.vramAddr)
	assert.True(t, p.writeLatch)

	p.WriteRegister(regAddress, 0x34)
	assert.Equal(t, uint16(0x1234), p.vramAddr)
	assert.False(t, p.writeLatch)
}

func TestStatusReadResetsAddressLatch(t *testing.T) {
	p := New()

	p.WriteRegister(regAddress, 0x12)
	p.ReadRegister(regStatus)

	// the next write starts the pair over
	p.WriteRegister(regAddress, 0x34)
	assert.Equal(t, uint16(0x3400), p.vramAddr)
}

func writeVram(p *Ppu, addr uint16, data byte) {
	p.WriteRegister(regAddress, byte(addr>>8))
	p.WriteRegister(regAddress, byte(addr))
	p.WriteRegister(regData, data)
}

func TestVramRouting(t *testing.T) {
	p := New()

	writeVram(p, 0x0000, 0xab)
	assert.Equal(t, byte(0xab), p.patternTables[0][0])

	writeVram(p, 0x1005, 0xcd)
	assert.Equal(t, byte(0xcd), p.patternTables[1][5])

	writeVram(p, 0x2000, 0x11)
	assert.Equal(t, byte(0x11), p.nameTables[0][0])

	// 0x23c0 starts nametable 0's attribute table
	writeVram(p, 0x23c0, 0x22)
	assert.Equal(t, byte(0x22), p.attrTables[0][0])

	writeVram(p, 0x2400, 0x33)
	assert.Equal(t, byte(0x33), p.nameTables[1][0])

	writeVram(p, 0x2fff, 0x44)
	assert.Equal(t, byte(0x44), p.attrTables[3][0x3f])

	writeVram(p, 0x3f00, 0x55)
	assert.Equal(t, byte(0x55), p.paletteMaps[0][0])

	writeVram(p, 0x3f11, 0x66)
	assert.Equal(t, byte(0x66), p.paletteMaps[1][1])
}

func TestPaletteMirrors(t *testing.T) {
	p := New()

	// palette maps repeat every 0x20 bytes across 0x3f00-0x3fff
	writeVram(p, 0x3f20, 0x77)
	assert.Equal(t, byte(0x77), p.readData(0x3f00))

	writeVram(p, 0x3fe3, 0x88)
	assert.Equal(t, byte(0x88), p.readData(0x3f03))
}

func TestDataWriteAdvancesAddress(t *testing.T) {
	p := New()

	p.WriteRegister(regAddress, 0x20)
	p.WriteRegister(regAddress, 0x00)
	p.WriteRegister(regData, 0x01)
	p.WriteRegister(regData, 0x02)
	assert.Equal(t, byte(0x01), p.nameTables[0][0])
	assert.Equal(t, byte(0x02), p.nameTables[0][1])

	// increment switches to 32 with the control bit
	p.WriteRegister(regControl, byte(CtrlIncrement))
	p.WriteRegister(regAddress, 0x20)
	p.WriteRegister(regAddress, 0x40)
	p.WriteRegister(regData, 0x03)
	p.WriteRegister(regData, 0x04)
	assert.Equal(t, byte(0x03), p.nameTables[0][0x40])
	assert.Equal(t, byte(0x04), p.nameTables[0][0x60])
}

func TestFrameBounds(t *testing.T) {
	f := NewFrame(100, 100)

	f.Set(0, 0, RGB(0x12, 0x34, 0x56))
	c, ok := f.At(0, 0)
	assert.True(t, ok)
	assert.Equal(t, Color{0x12, 0x34, 0x56, 0xff}, c)

	// out-of-bounds writes are dropped, reads report !ok
	f.Set(100, 1000, RGB(1, 2, 3))
	_, ok = f.At(100, 0)
	assert.False(t, ok)
}

func TestSystemPalette(t *testing.T) {
	assert.Len(t, SystemPalette, 64)
	assert.Equal(t, RGB(0x6d, 0x6d, 0x6d), SystemPalette[0])
	for _, c := range SystemPalette {
		assert.Equal(t, byte(0xff), c.A)
	}
}
