package render

import (
	"image"
	"io"

	"github.com/gogpu/gauge"
)

// Backend is implemented by every output surface.
//
// # Implementation Contract
//
// Each backend must:
//  1. Accept Begin before any drawing and allocate a width x height surface
//  2. Fill layers in the order received, applying Layer.Transform
//  3. Report deferred drawing errors from End
type Backend interface {
	// Begin initializes the backend for rendering at the given dimensions.
	Begin(width, height int) error

	// FillLayer fills one layer with its color.
	FillLayer(l gauge.Layer)

	// DrawLabel draws the percent text centered on its anchor.
	DrawLabel(l gauge.Label)

	// End finalizes the output. After End, output methods may be used.
	End() error
}

// WriterBackend extends Backend with the ability to write its output to an
// io.Writer.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w. Only valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend extends Backend with the ability to save output to a file.
type FileBackend interface {
	Backend

	// SaveToFile saves the rendered content to path. Only valid after End.
	SaveToFile(path string) error
}

// ImageBackend extends Backend with access to the rasterized image.
type ImageBackend interface {
	Backend

	// Image returns the rendered image, or nil before Begin.
	Image() *image.RGBA
}
