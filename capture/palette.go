package capture

import (
	"image/color"

	"github.com/hinshun/vt10x"
)

// attrReverse is the reverse video bit of vt10x.Glyph.Mode.
const attrReverse = 1

var (
	foreground = color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	background = color.RGBA{A: 0xff}
)

// xterm is the xterm 256 color palette: 16 system colors, a 6x6x6 cube and a gray ramp.
var xterm = func() [256]color.RGBA {
	var p [256]color.RGBA

	system := [16][3]uint8{
		{0x00, 0x00, 0x00}, {0xcd, 0x00, 0x00}, {0x00, 0xcd, 0x00}, {0xcd, 0xcd, 0x00},
		{0x00, 0x00, 0xee}, {0xcd, 0x00, 0xcd}, {0x00, 0xcd, 0xcd}, {0xe5, 0xe5, 0xe5},
		{0x7f, 0x7f, 0x7f}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
		{0x5c, 0x5c, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
	}
	for i, c := range system {
		p[i] = color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
	}

	level := func(n int) uint8 {
		if n == 0 {
			return 0
		}
		return uint8(55 + n*40)
	}
	for i := 0; i < 216; i++ {
		p[16+i] = color.RGBA{R: level(i / 36), G: level(i / 6 % 6), B: level(i % 6), A: 0xff}
	}

	for i := 0; i < 24; i++ {
		g := uint8(8 + i*10)
		p[232+i] = color.RGBA{R: g, G: g, B: g, A: 0xff}
	}

	return p
}()

// resolve maps a terminal color to RGBA. Default and out of palette colors use fallback.
func resolve(c vt10x.Color, fallback color.RGBA) color.RGBA {
	if c == vt10x.DefaultFG || c == vt10x.DefaultBG || c >= 256 {
		return fallback
	}
	return xterm[c]
}
