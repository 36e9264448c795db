// Package svg renders gauge layers as an SVG document.
//
// Circles and rectangles map to native elements; half-discs and half-rings
// become paths built from elliptical arc commands. Rotated layers carry a
// transform attribute pivoting about the gauge center, so the document
// stays a faithful, resolution independent copy of the layer set.
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/render"
)

func init() {
	render.Register("svg", func() render.Backend {
		return NewBackend()
	})
}

// ErrNotFinished is returned by output methods before End.
var ErrNotFinished = errors.New("svg: document not finished")

type document struct {
	XMLName  xml.Name `xml:"http://www.w3.org/2000/svg svg"`
	Width    int      `xml:"width,attr"`
	Height   int      `xml:"height,attr"`
	ViewBox  string   `xml:"viewBox,attr"`
	Elements []any
}

type rectElem struct {
	XMLName     xml.Name `xml:"rect"`
	ID          string   `xml:"id,attr,omitempty"`
	X           float64  `xml:"x,attr"`
	Y           float64  `xml:"y,attr"`
	Width       float64  `xml:"width,attr"`
	Height      float64  `xml:"height,attr"`
	Fill        string   `xml:"fill,attr"`
	FillOpacity string   `xml:"fill-opacity,attr,omitempty"`
	Transform   string   `xml:"transform,attr,omitempty"`
}

type circleElem struct {
	XMLName     xml.Name `xml:"circle"`
	ID          string   `xml:"id,attr,omitempty"`
	Cx          float64  `xml:"cx,attr"`
	Cy          float64  `xml:"cy,attr"`
	R           float64  `xml:"r,attr"`
	Fill        string   `xml:"fill,attr"`
	FillOpacity string   `xml:"fill-opacity,attr,omitempty"`
	Transform   string   `xml:"transform,attr,omitempty"`
}

type pathElem struct {
	XMLName     xml.Name `xml:"path"`
	ID          string   `xml:"id,attr,omitempty"`
	D           string   `xml:"d,attr"`
	Fill        string   `xml:"fill,attr"`
	FillOpacity string   `xml:"fill-opacity,attr,omitempty"`
	Transform   string   `xml:"transform,attr,omitempty"`
}

// paint holds the attributes shared by every shape element.
type paint struct {
	fill, opacity, transform string
}

type textElem struct {
	XMLName    xml.Name `xml:"text"`
	X          float64  `xml:"x,attr"`
	Y          float64  `xml:"y,attr"`
	FontSize   float64  `xml:"font-size,attr"`
	FontFamily string   `xml:"font-family,attr"`
	Anchor     string   `xml:"text-anchor,attr"`
	Baseline   string   `xml:"dominant-baseline,attr"`
	Fill       string   `xml:"fill,attr"`
	Content    string   `xml:",chardata"`
}

// Backend collects layers into an SVG document.
type Backend struct {
	doc *document
	out []byte
}

// Ensure Backend implements all required interfaces.
var (
	_ render.Backend       = (*Backend)(nil)
	_ render.WriterBackend = (*Backend)(nil)
	_ render.FileBackend   = (*Backend)(nil)
)

// NewBackend creates an SVG backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin implements render.Backend.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.New("svg: width and height must be positive")
	}
	b.doc = &document{
		Width:   width,
		Height:  height,
		ViewBox: fmt.Sprintf("0 0 %d %d", width, height),
	}
	b.out = nil
	return nil
}

// FillLayer implements render.Backend.
func (b *Backend) FillLayer(l gauge.Layer) {
	if b.doc == nil {
		return
	}
	p := paintFor(l)
	id := l.Role.String()
	switch l.Shape {
	case gauge.ShapeRect:
		b.doc.Elements = append(b.doc.Elements, rectElem{
			ID: id, X: l.Bounds.X, Y: l.Bounds.Y, Width: l.Bounds.W, Height: l.Bounds.H,
			Fill: p.fill, FillOpacity: p.opacity, Transform: p.transform,
		})
	case gauge.ShapeCircle:
		b.doc.Elements = append(b.doc.Elements, circleElem{
			ID: id, Cx: l.Center.X, Cy: l.Center.Y, R: l.Radius,
			Fill: p.fill, FillOpacity: p.opacity, Transform: p.transform,
		})
	case gauge.ShapeHalfDisc, gauge.ShapeHalfRing:
		b.doc.Elements = append(b.doc.Elements, pathElem{
			ID: id, D: halfPath(l),
			Fill: p.fill, FillOpacity: p.opacity, Transform: p.transform,
		})
	}
}

// DrawLabel implements render.Backend.
func (b *Backend) DrawLabel(l gauge.Label) {
	if b.doc == nil {
		return
	}
	b.doc.Elements = append(b.doc.Elements, textElem{
		X:          l.Anchor.X,
		Y:          l.Anchor.Y,
		FontSize:   l.Size,
		FontFamily: "Go, sans-serif",
		Anchor:     "middle",
		Baseline:   "central",
		Fill:       l.Color.Hex(),
		Content:    l.Text,
	})
}

// End implements render.Backend. It serializes the document.
func (b *Backend) End() error {
	if b.doc == nil {
		return errors.New("svg: End called before Begin")
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(b.doc); err != nil {
		return fmt.Errorf("svg: encode: %w", err)
	}
	buf.WriteByte('\n')
	b.out = buf.Bytes()
	return nil
}

// Bytes returns the serialized document, or nil before End.
func (b *Backend) Bytes() []byte {
	return b.out
}

// WriteTo implements render.WriterBackend.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.out == nil {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.out)
	return int64(n), err
}

// SaveToFile implements render.FileBackend.
func (b *Backend) SaveToFile(path string) error {
	if b.out == nil {
		return ErrNotFinished
	}
	if err := os.WriteFile(path, b.out, 0o644); err != nil { //nolint:gosec // output file is meant to be readable
		return err
	}
	gauge.Logger().Info("svg: saved", "path", path)
	return nil
}

func paintFor(l gauge.Layer) paint {
	p := paint{fill: l.Fill.Hex()}
	if l.Fill.A < 1 {
		p.opacity = num(l.Fill.A)
	}
	if r := l.Rotation; r != nil && r.Angle != 0 {
		pivot := r.Pivot()
		p.transform = fmt.Sprintf("rotate(%s %s %s)", num(r.Angle), num(pivot.X), num(pivot.Y))
	}
	return p
}

// halfPath outlines a half-disc or half-ring with clockwise arcs.
func halfPath(l gauge.Layer) string {
	start := gauge.Radians(l.Facing - 90)
	end := start + math.Pi
	at := func(r, a float64) string {
		return num(l.Center.X+r*math.Cos(a)) + " " + num(l.Center.Y+r*math.Sin(a))
	}

	var sb strings.Builder
	sb.WriteString("M " + at(l.Radius, start))
	sb.WriteString(" A " + num(l.Radius) + " " + num(l.Radius) + " 0 0 1 " + at(l.Radius, end))
	if l.Shape == gauge.ShapeHalfRing {
		sb.WriteString(" L " + at(l.InnerRadius, end))
		sb.WriteString(" A " + num(l.InnerRadius) + " " + num(l.InnerRadius) + " 0 0 0 " + at(l.InnerRadius, start))
	}
	sb.WriteString(" Z")
	return sb.String()
}

// num formats with at most four decimals and no trailing zeros.
func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
