// Package render paints gauge layer sets onto output surfaces.
//
// A LayerSet is a back-to-front list of filled shapes. Paint plays it to a
// Backend, which translates each layer into its own output format: pixels,
// SVG elements or terminal cells.
//
// # Backends
//
//   - backends/raster: anti-aliased RGBA image, PNG output
//   - backends/svg: SVG document with native shapes and transforms
//   - backends/term: tcell screen using half-block cells
//
// Backends that can be created without arguments register themselves by
// name, following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/gauge/render/backends/raster"
//
//	b, err := render.NewBackend("png")
//	if err != nil {
//		return err
//	}
//	if err := render.Paint(b, g.Layers()); err != nil {
//		return err
//	}
//	_, err = b.(render.WriterBackend).WriteTo(w)
//
// The terminal backend needs a screen and is constructed directly.
package render
