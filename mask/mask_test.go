package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord(t *testing.T) {
	assert.Equal(t, uint16(0x1234), Word(0x12, 0x34))
	assert.Equal(t, uint16(0x00ff), Word(0x00, 0xff))
	assert.Equal(t, uint16(0xff00), Word(0xff, 0x00))

	assert.Equal(t, byte(0x12), HiByte(0x1234))
	assert.Equal(t, byte(0x34), LoByte(0x1234))
	assert.Equal(t, uint16(0xbeef), Word(HiByte(0xbeef), LoByte(0xbeef)))
}

func TestBits(t *testing.T) {
	assert.True(t, IsSet(0b1000_0001, 0))
	assert.True(t, IsSet(0b1000_0001, 7))
	assert.False(t, IsSet(0b1000_0001, 1))
	assert.False(t, IsSet(0b1000_0001, 6))

	assert.Equal(t, byte(0b0000_0101), Set(0b0000_0001, 2))
	assert.Equal(t, byte(0b0000_0001), Set(0b0000_0001, 0))
	assert.Equal(t, byte(0b0000_0001), Clear(0b0000_0101, 2))
	assert.Equal(t, byte(0b0000_0101), Clear(0b0000_0111, 1))

	assert.Equal(t, byte(1), Bit(true))
	assert.Equal(t, byte(0), Bit(false))
}

func TestSamePage(t *testing.T) {
	assert.True(t, SamePage(0x80f0, 0x80ff))
	assert.False(t, SamePage(0x80ff, 0x8100))
	assert.True(t, SamePage(0x0000, 0x00ff))
}
