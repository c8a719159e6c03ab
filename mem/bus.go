// Package mem implements the memory side of the NES: RAM, the iNES
// cartridge image, the APU register stub, and the buses that multiplex
// them into the CPU's 64 kB address space.
package mem

// A Bus connects multiple 'hardware' components together, enabling
// communication between them. Each Bus has an independent memory
// layout that begins at 0x0000.
//
// The CPU does not own a Bus; one is lent to it for the duration of
// each tick. Anything that can answer byte reads and writes will do.
type Bus interface {
	ReadByte(addr uint16) byte
	WriteByte(addr uint16, data byte)
}

// ReadWord reads a little-endian word: the byte at addr becomes the
// low half, the byte at addr+1 the high half.
func ReadWord(b Bus, addr uint16) uint16 {
	low := uint16(b.ReadByte(addr))
	high := uint16(b.ReadByte(addr + 1))
	return high<<8 | low
}

// WriteWord writes a little-endian word at addr.
func WriteWord(b Bus, addr uint16, data uint16) {
	b.WriteByte(addr, byte(data))
	b.WriteByte(addr+1, byte(data>>8))
}

// A SimpleBus is a flat 64 kB memory with no mirroring and no devices.
// It is what the CPU tests run against: programs load anywhere, the
// reset vector is just two writable bytes.
type SimpleBus struct {
	data [64 * 1024]byte // zeroed on init
}

func (b *SimpleBus) ReadByte(addr uint16) byte { return b.data[addr] }

func (b *SimpleBus) WriteByte(addr uint16, data byte) {
	b.data[addr] = data
}

// Load copies a program into memory starting at addr.
func (b *SimpleBus) Load(program []byte, addr uint16) {
	copy(b.data[addr:], program)
}
