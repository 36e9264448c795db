package gauge

import "math"

// Contour flattens the layer into a closed polygon in canvas coordinates
// with its rotation applied. segments is the number of edges used for a
// full circle; zero or less picks a count from the radius.
func (l Layer) Contour(segments int) []Point {
	if segments <= 0 {
		segments = segmentsFor(l.Radius)
	}

	var pts []Point
	switch l.Shape {
	case ShapeRect:
		b := l.Bounds
		pts = []Point{
			{X: b.X, Y: b.Y},
			{X: b.X + b.W, Y: b.Y},
			{X: b.X + b.W, Y: b.Y + b.H},
			{X: b.X, Y: b.Y + b.H},
		}
	case ShapeCircle:
		pts = arc(nil, l.Center, l.Radius, 0, 2*math.Pi, segments, false)
	case ShapeHalfDisc:
		start := Radians(l.Facing - 90)
		pts = arc(nil, l.Center, l.Radius, start, math.Pi, segments/2, true)
	case ShapeHalfRing:
		start := Radians(l.Facing - 90)
		pts = arc(nil, l.Center, l.Radius, start, math.Pi, segments/2, true)
		inner := arc(nil, l.Center, l.InnerRadius, start, math.Pi, segments/2, true)
		for i := len(inner) - 1; i >= 0; i-- {
			pts = append(pts, inner[i])
		}
	}

	if l.Rotation != nil {
		m := l.Transform()
		for i, p := range pts {
			pts[i] = m.TransformPoint(p)
		}
	}
	return pts
}

// arc appends n edges along the circle (c, r) starting at start and
// sweeping clockwise by sweep radians. With closed set the end point is
// included.
func arc(dst []Point, c Point, r, start, sweep float64, n int, closed bool) []Point {
	if n < 1 {
		n = 1
	}
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i <= last; i++ {
		a := start + sweep*float64(i)/float64(n)
		dst = append(dst, Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)})
	}
	return dst
}

func segmentsFor(radius float64) int {
	n := int(math.Ceil(radius * 2))
	switch {
	case n < 32:
		return 32
	case n > 720:
		return 720
	}
	return n + n%2
}
