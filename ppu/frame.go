package ppu

import "encoding/hex"

// A Color is one RGBA8 pixel value.
type Color struct {
	R, G, B, A byte
}

// RGB returns a fully opaque color.
func RGB(r, g, b byte) Color {
	return Color{r, g, b, 0xff}
}

// The 64-entry NES system palette, 3 bytes per entry.
const paletteRGB = "6d6d6d0024920000db6d49db92006db6006db624009249006d4900244900006d24009200004949000000000000000000b6b6b6006ddb0049ff9200ffb600ffff0092ff0000db6d00926d0024920000920000b66d009292242424000000000000ffffff6db6ff9292ffdb6dffff00ffff6dffff9200ffb600dbdb006ddb0000ff0049ffdb00ffff494949000000000000ffffffb6dbffdbb6ffffb6ffff92ffffb6b6ffdb92ffff49ffff6db6ff4992ff6d49ffdb92dbff929292000000000000"

// SystemPalette maps the 6-bit color indices stored in the palette
// maps to display colors.
var SystemPalette = loadPalette(paletteRGB)

func loadPalette(s string) [64]Color {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 64*3 {
		panic("ppu: malformed system palette table")
	}

	var colors [64]Color
	for i := range colors {
		colors[i] = RGB(raw[i*3], raw[i*3+1], raw[i*3+2])
	}
	return colors
}

// A Frame is an RGBA8 pixel buffer, 4 bytes per pixel, rows top down.
type Frame struct {
	data   []byte
	width  int
	height int
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		data:   make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

// Set writes one pixel. Out-of-bounds coordinates are dropped; the
// PPU draws through the overscan region without caring.
func (f *Frame) Set(x, y int, c Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	pos := (y*f.width + x) * 4
	f.data[pos] = c.R
	f.data[pos+1] = c.G
	f.data[pos+2] = c.B
	f.data[pos+3] = c.A
}

// At reads one pixel back; ok is false outside the buffer.
func (f *Frame) At(x, y int) (Color, bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Color{}, false
	}
	pos := (y*f.width + x) * 4
	return Color{f.data[pos], f.data[pos+1], f.data[pos+2], f.data[pos+3]}, true
}

// Data exposes the raw RGBA bytes for presentation.
func (f *Frame) Data() []byte { return f.data }
