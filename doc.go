// Package gauge computes and animates a half-circle percentage gauge.
//
// # Overview
//
// A gauge is drawn without an arc primitive. Instead, a percentage is turned
// into a small stack of filled shapes (a background, a colored track ring, a
// cover that hollows the track, a rotated half-shape and a center cover)
// whose radii and rotation produce the look of a single partial ring. Any
// surface that can fill circles, rectangles and half-circles under an affine
// transform can paint the result.
//
// # Quick Start
//
//	g, err := gauge.New(gauge.Config{Radius: 50, Percent: 75})
//	if err != nil {
//		return err
//	}
//	layers := g.Layers()
//	for _, l := range layers.Ordered() {
//		// paint l back to front
//	}
//
// Ready-made painters live under render/backends (PNG, SVG and terminal).
//
// # Pipeline
//
// Data flows one way:
//
//	Config.Percent -> Normalize -> MapAngle -> [animate.Sweep] -> ComputeLayers
//
// Normalize and MapAngle are pure. The optional sweep animation only changes
// the angle handed to ComputeLayers; the normalized percent and the target
// angle always reflect the latest Config.
//
// # Strategies
//
// FullRangeLinear maps 0..100 to 0..180 degrees and rotates a half-disc
// hanging below the center line. SplitSignLinear maps 0..100 to -90..90
// degrees and rotates a half-ring strip standing left of the center line.
// Both pivot about the gauge center.
//
// # Coordinate System
//
// Origin at the top-left of the gauge's bounding box, Y increases down,
// angles in degrees with positive values rotating clockwise on screen.
package gauge
