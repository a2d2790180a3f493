package capture

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/golang/freetype/truetype"
	"github.com/hinshun/vt10x"
	"github.com/ttygif/ttygif/filesystem"
	"github.com/ttygif/ttygif/util"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// Fallback geometry when neither the configuration nor the terminal provide one.
const (
	DefaultCols     = 80
	DefaultRows     = 24
	DefaultFontSize = 14
)

// Virtual captures an emulated terminal instead of the real screen. Every
// payload written to it updates the emulated screen, and Capture rasterizes
// that screen with the Go Mono font.
type Virtual struct {
	term   vt10x.Terminal
	face   font.Face
	cellW  int
	cellH  int
	ascent int
}

// NewVirtual returns an emulated terminal of cols by rows cells. Zero values
// fall back to the size of the current terminal, then to 80x24.
func NewVirtual(cols, rows int, fontSize float64) (*Virtual, error) {
	if cols <= 0 || rows <= 0 {
		w, h, err := util.TerminalSize()
		if err != nil || w <= 0 || h <= 0 {
			w, h = DefaultCols, DefaultRows
		}
		if cols <= 0 {
			cols = w
		}
		if rows <= 0 {
			rows = h
		}
	}
	if fontSize <= 0 {
		fontSize = DefaultFontSize
	}

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	advance, ok := face.GlyphAdvance('M')
	if !ok {
		return nil, fmt.Errorf("font has no glyph for M")
	}
	metrics := face.Metrics()

	return &Virtual{
		term:   vt10x.New(vt10x.WithSize(cols, rows)),
		face:   face,
		cellW:  advance.Ceil(),
		cellH:  metrics.Height.Ceil(),
		ascent: metrics.Ascent.Ceil(),
	}, nil
}

// Write feeds terminal output to the emulator.
func (v *Virtual) Write(p []byte) (int, error) {
	return v.term.Write(p)
}

// Size returns the emulated geometry in cells.
func (v *Virtual) Size() (cols, rows int) {
	return v.term.Size()
}

// Render rasterizes the current screen.
func (v *Virtual) Render() *image.RGBA {
	cols, rows := v.term.Size()
	img := image.NewRGBA(image.Rect(0, 0, cols*v.cellW, rows*v.cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	drawer := &font.Drawer{Dst: img, Face: v.face}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := v.term.Cell(x, y)
			fg, bg := resolve(cell.FG, foreground), resolve(cell.BG, background)
			if cell.Mode&attrReverse != 0 {
				fg, bg = bg, fg
			}

			if bg != background {
				rect := image.Rect(x*v.cellW, y*v.cellH, (x+1)*v.cellW, (y+1)*v.cellH)
				draw.Draw(img, rect, image.NewUniform(bg), image.Point{}, draw.Src)
			}

			if cell.Char == 0 || cell.Char == ' ' {
				continue
			}

			drawer.Src = image.NewUniform(fg)
			drawer.Dot = fixed.P(x*v.cellW, y*v.cellH+v.ascent)
			drawer.DrawString(string(cell.Char))
		}
	}

	return img
}

// Capture writes the current screen to path as a PNG.
func (v *Virtual) Capture(_ context.Context, path string) error {
	f, err := filesystem.API().Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(f, v.Render()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
