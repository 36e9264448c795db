package raster

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gauge"
)

var (
	fontOnce sync.Once
	goFont   *opentype.Font
	fontErr  error
)

func regularFont() (*opentype.Font, error) {
	fontOnce.Do(func() {
		goFont, fontErr = opentype.Parse(goregular.TTF)
	})
	return goFont, fontErr
}

// drawLabel draws l.Text with its box centered on l.Anchor.
func drawLabel(dst draw.Image, l gauge.Label) error {
	if l.Text == "" || l.Size <= 0 {
		return nil
	}
	f, err := regularFont()
	if err != nil {
		return fmt.Errorf("raster: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    l.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("raster: label face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(l.Color.Color()),
		Face: face,
	}
	width := d.MeasureString(l.Text)
	m := face.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(l.Anchor.X*64) - width/2,
		Y: fixed.Int26_6(l.Anchor.Y*64) + (m.Ascent-m.Descent)/2,
	}
	d.DrawString(l.Text)
	return nil
}
