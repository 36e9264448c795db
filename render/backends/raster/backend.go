// Package raster renders gauge layers to an anti-aliased RGBA image.
//
// Shapes are flattened with gauge.Layer.Contour and filled with the
// golang.org/x/image/vector rasterizer. The label is drawn with the Go
// Regular font.
//
// # Example
//
//	// Import to register the "png" backend
//	import _ "github.com/gogpu/gauge/render/backends/raster"
//
//	b := raster.NewBackend()
//	if err := render.Paint(b, g.Layers()); err != nil {
//		return err
//	}
//	return b.SaveToFile("gauge.png")
package raster

import (
	"bufio"
	"errors"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/render"
)

func init() {
	render.Register("png", func() render.Backend {
		return NewBackend()
	})
}

// ErrNotBegun is returned by output methods before Begin and End ran.
var ErrNotBegun = errors.New("raster: backend not initialized")

// Backend rasterizes layers into an *image.RGBA.
type Backend struct {
	img *image.RGBA
	z   *vector.Rasterizer
	err error
}

// Ensure Backend implements all required interfaces.
var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
	_ render.ImageBackend  = (*Backend)(nil)
)

// NewBackend creates a raster backend. Circle flattening adapts to the
// layer radius.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin implements render.Backend.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("raster: width and height must be positive")
	}
	b.img = image.NewRGBA(image.Rect(0, 0, width, height))
	b.z = vector.NewRasterizer(width, height)
	b.err = nil
	return nil
}

// End implements render.Backend. It reports the first label error.
func (b *Backend) End() error {
	if b.img == nil {
		return ErrNotBegun
	}
	return b.err
}

// FillLayer implements render.Backend.
func (b *Backend) FillLayer(l gauge.Layer) {
	if b.img == nil {
		return
	}
	pts := l.Contour(0)
	if len(pts) < 3 {
		return
	}

	size := b.img.Bounds().Size()
	b.z.Reset(size.X, size.Y)
	b.z.DrawOp = draw.Over
	b.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		b.z.LineTo(float32(p.X), float32(p.Y))
	}
	b.z.ClosePath()
	b.z.Draw(b.img, b.img.Bounds(), image.NewUniform(l.Fill.Color()), image.Point{})
}

// DrawLabel implements render.Backend.
func (b *Backend) DrawLabel(l gauge.Label) {
	if b.img == nil {
		return
	}
	if err := drawLabel(b.img, l); err != nil && b.err == nil {
		b.err = err
	}
}

// Image implements render.ImageBackend.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// WriteTo implements render.WriterBackend. It encodes the image as PNG.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.img == nil {
		return 0, ErrNotBegun
	}
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, b.img); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// SaveToFile implements render.FileBackend.
func (b *Backend) SaveToFile(path string) error {
	if b.img == nil {
		return ErrNotBegun
	}
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err := b.WriteTo(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	gauge.Logger().Info("raster: saved", "path", path)
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
