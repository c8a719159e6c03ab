package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusRoundTrip(t *testing.T) {
	// every flag must land on its own bit, N on bit 7
	for b := 0; b <= 0xff; b++ {
		assert.Equal(t, byte(b), StatusFromByte(byte(b)).ToByte())
	}
}

func TestStatusBits(t *testing.T) {
	s := StatusFromByte(0b1000_0001)
	assert.True(t, s.C)
	assert.True(t, s.N)
	assert.False(t, s.Z)
	assert.False(t, s.V)

	s = StatusFromByte(0b0110_0000)
	assert.True(t, s.U)
	assert.True(t, s.V)
	assert.False(t, s.N)
}

func TestStatusFromString(t *testing.T) {
	s := StatusFromString("czidbUvn")
	assert.Equal(t, Status{U: true}, s)

	s = StatusFromString("CZIDBUVN")
	assert.Equal(t, byte(0xff), s.ToByte())

	assert.Equal(t, "CzidbUvn", StatusFromString("CU").String())
}

func TestStatusReset(t *testing.T) {
	s := StatusFromByte(0xff)
	s.Reset()
	assert.Equal(t, Status{U: true}, s)
}
