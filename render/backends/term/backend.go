// Package term paints gauge layers onto a tcell screen.
//
// Every terminal cell shows two vertically stacked pixels using the upper
// half block glyph: the foreground is the top pixel, the background the
// bottom one. Layers are rasterized with the raster backend first, so a
// gauge of radius r occupies 2r columns and r rows (half container) or 2r
// rows (full container).
//
// The label is written as plain text cells instead of rasterized glyphs,
// which would be unreadable at cell resolution.
package term

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/render"
	"github.com/gogpu/gauge/render/backends/raster"
)

const upperHalfBlock = '▀'

// Backend paints onto a tcell.Screen at a cell offset.
type Backend struct {
	screen tcell.Screen
	x, y   int

	px    *raster.Backend
	label *gauge.Label
}

var _ render.ImageBackend = (*Backend)(nil)

// NewBackend creates a backend drawing with its top-left cell at (x, y).
func NewBackend(screen tcell.Screen, x, y int) *Backend {
	return &Backend{screen: screen, x: x, y: y, px: raster.NewBackend()}
}

// Begin implements render.Backend. Height is rounded up to an even number
// of pixels so every cell has two.
func (b *Backend) Begin(width, height int) error {
	if b.screen == nil {
		return errors.New("term: nil screen")
	}
	b.label = nil
	return b.px.Begin(width, height+height%2)
}

// FillLayer implements render.Backend.
func (b *Backend) FillLayer(l gauge.Layer) {
	b.px.FillLayer(l)
}

// DrawLabel implements render.Backend. The label is placed when End
// copies the pixels to the screen.
func (b *Backend) DrawLabel(l gauge.Label) {
	b.label = &l
}

// Image implements render.ImageBackend.
func (b *Backend) Image() *image.RGBA {
	return b.px.Image()
}

// End implements render.Backend. It copies the pixels to the screen and
// shows it.
func (b *Backend) End() error {
	if err := b.px.End(); err != nil {
		return err
	}
	img := b.px.Image()
	size := img.Bounds().Size()
	for row := 0; row < size.Y/2; row++ {
		for col := 0; col < size.X; col++ {
			top := img.RGBAAt(col, 2*row)
			bottom := img.RGBAAt(col, 2*row+1)
			style := tcell.StyleDefault.
				Foreground(cellColor(top)).
				Background(cellColor(bottom))
			b.screen.SetContent(b.x+col, b.y+row, upperHalfBlock, nil, style)
		}
	}
	if b.label != nil {
		b.drawLabel(img, *b.label)
	}
	b.screen.Show()
	return nil
}

func (b *Backend) drawLabel(img *image.RGBA, l gauge.Label) {
	runes := []rune(l.Text)
	row := int(math.Floor(l.Anchor.Y / 2))
	col := int(math.Round(l.Anchor.X - float64(len(runes))/2))
	fg := cellColor(l.Color.Color())
	for i, r := range runes {
		bg := cellColor(img.RGBAAt(col+i, 2*row+1))
		b.screen.SetContent(b.x+col+i, b.y+row, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
	}
}

func cellColor(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}
