package cpu

import (
	"strings"

	"gones/mask"
)

// Status is the processor status (P) register.
//
// https://www.nesdev.org/wiki/Status_flags#Flags
//
// 7654 3210
// NVUB DIZC
type Status struct {
	C bool // carry, bit 0
	Z bool // zero, bit 1
	I bool // interrupt disable, bit 2
	D bool // decimal mode, bit 3; inherited from the 6502, unused on the NES
	B bool // break, bit 4
	U bool // unused, bit 5; reads as set on hardware
	V bool // overflow, bit 6
	N bool // negative, bit 7
}

// Reset returns the register to its power-on state: everything clear
// except the unused bit.
func (s *Status) Reset() {
	*s = Status{U: true}
}

// StatusFromByte unpacks a pushed status byte.
func StatusFromByte(b byte) Status {
	return Status{
		C: mask.IsSet(b, 0),
		Z: mask.IsSet(b, 1),
		I: mask.IsSet(b, 2),
		D: mask.IsSet(b, 3),
		B: mask.IsSet(b, 4),
		U: mask.IsSet(b, 5),
		V: mask.IsSet(b, 6),
		N: mask.IsSet(b, 7),
	}
}

// ToByte packs the flags for PHP/BRK. Bit positions match
// StatusFromByte, N in bit 7.
func (s Status) ToByte() byte {
	return mask.Bit(s.C) |
		mask.Bit(s.Z)<<1 |
		mask.Bit(s.I)<<2 |
		mask.Bit(s.D)<<3 |
		mask.Bit(s.B)<<4 |
		mask.Bit(s.U)<<5 |
		mask.Bit(s.V)<<6 |
		mask.Bit(s.N)<<7
}

// StatusFromString builds a register from a flag string: an upper-case
// letter sets its flag, anything else leaves it clear, so "czidbUvn"
// sets only U. Test helper.
func StatusFromString(flags string) Status {
	return Status{
		C: strings.Contains(flags, "C"),
		Z: strings.Contains(flags, "Z"),
		I: strings.Contains(flags, "I"),
		D: strings.Contains(flags, "D"),
		B: strings.Contains(flags, "B"),
		U: strings.Contains(flags, "U"),
		V: strings.Contains(flags, "V"),
		N: strings.Contains(flags, "N"),
	}
}

// String renders the flags low bit first, set flags in upper case.
func (s Status) String() string {
	var b strings.Builder
	for _, f := range []struct {
		set  bool
		name string
	}{
		{s.C, "c"}, {s.Z, "z"}, {s.I, "i"}, {s.D, "d"},
		{s.B, "b"}, {s.U, "u"}, {s.V, "v"}, {s.N, "n"},
	} {
		if f.set {
			b.WriteString(strings.ToUpper(f.name))
		} else {
			b.WriteString(f.name)
		}
	}
	return b.String()
}
