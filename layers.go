package gauge

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LayerRole identifies a layer's place in the stack.
type LayerRole uint8

const (
	RoleBackground    LayerRole = iota // canvas fill
	RoleSecondaryRing                  // track the arc travels on
	RoleInsetCover                     // hollows the track into a ring
	RoleArc                            // rotated half-shape in the primary color
	RoleCenterCover                    // hides the arc's inner part
)

var roleNames = [...]string{
	RoleBackground:    "background",
	RoleSecondaryRing: "secondary-ring",
	RoleInsetCover:    "inset-cover",
	RoleArc:           "arc",
	RoleCenterCover:   "center-cover",
}

func (r LayerRole) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "unknown"
}

// Shape is the primitive a layer is painted with.
type Shape uint8

const (
	ShapeRect     Shape = iota // axis-aligned box
	ShapeCircle                // full disc
	ShapeHalfDisc              // half of a disc, cut along a diameter
	ShapeHalfRing              // half of an annulus
)

var shapeNames = [...]string{
	ShapeRect:     "rect",
	ShapeCircle:   "circle",
	ShapeHalfDisc: "half-disc",
	ShapeHalfRing: "half-ring",
}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// Rotation is a translate(Shift) -> rotate(Angle) -> translate(-Shift)
// composition applied about Origin, the shape's own center. Box-model
// renderers that rotate views about their center can apply the three steps
// verbatim; everything else can use Matrix.
type Rotation struct {
	Origin Point
	Shift  Point
	Angle  float64 // degrees, clockwise on screen
}

// Pivot returns the fixed point of the rotation in canvas coordinates.
func (r Rotation) Pivot() Point {
	return r.Origin.Add(r.Shift)
}

// Matrix returns the rotation as a canvas-space affine transform.
func (r Rotation) Matrix() Matrix {
	p := r.Pivot()
	return Translate(p.X, p.Y).Multiply(RotateDegrees(r.Angle)).Multiply(Translate(-p.X, -p.Y))
}

// String renders the composition in transform-list order.
func (r Rotation) String() string {
	// Adding zero turns -0 into 0, which %g would print as "-0".
	back := Pt(-r.Shift.X+0, -r.Shift.Y+0)
	return fmt.Sprintf("translate(%g,%g) rotate(%g) translate(%g,%g)",
		r.Shift.X, r.Shift.Y, r.Angle, back.X, back.Y)
}

// Layer is one shape-draw instruction.
type Layer struct {
	Role  LayerRole
	Shape Shape

	// Bounds is the untransformed bounding box; its X and Y are the
	// top-left offset inside the gauge.
	Bounds Rect

	// Center and Radius describe the circle that circles, half-discs and
	// half-rings are cut from. InnerRadius is set for half-rings only.
	Center      Point
	Radius      float64
	InnerRadius float64

	// Facing is the direction, in degrees clockwise from +X, the
	// half-shape bulges toward before rotation.
	Facing float64

	Fill RGBA

	// Rotation is nil for layers drawn as-is.
	Rotation *Rotation
}

// Transform returns the layer's canvas-space transform.
func (l Layer) Transform() Matrix {
	if l.Rotation == nil {
		return Identity()
	}
	return l.Rotation.Matrix()
}

// Label is the optional percent text.
type Label struct {
	Text string
	// Anchor is the center of the text box.
	Anchor Point
	// Size is the font size in layout units.
	Size  float64
	Color RGBA
}

// LayerSet is the full draw list for one frame, painted back to front.
// It is derived data and is recomputed rather than mutated.
type LayerSet struct {
	// Width and Height give the visible canvas.
	Width, Height float64

	Percent  int
	Angle    float64
	Strategy SweepStrategy

	Background    Layer
	SecondaryRing Layer
	InsetCover    Layer
	Arc           Layer
	CenterCover   Layer

	Label *Label
}

// Ordered returns the layers in paint order.
func (s LayerSet) Ordered() []Layer {
	return []Layer{s.Background, s.SecondaryRing, s.InsetCover, s.Arc, s.CenterCover}
}

// Center returns the gauge's geometric center.
func (s LayerSet) Center() Point {
	return s.InsetCover.Center
}

// ComputeLayers composites cfg at the given sweep angle (degrees) using
// strategy s. The angle is usually MapAngle of the normalized percent, or
// an animated value between the strategy's range bounds.
func ComputeLayers(cfg Config, angle float64, s SweepStrategy) (LayerSet, error) {
	percent, err := Normalize(cfg.Percent)
	if err != nil {
		return LayerSet{}, err
	}
	res, err := cfg.resolve()
	if err != nil {
		return LayerSet{}, err
	}
	return composite(res, percent, angle, s), nil
}

func composite(res resolved, percent int, angle float64, s SweepStrategy) LayerSet {
	r := res.radius
	bw := res.border
	fbw := res.fillBorder
	center := Pt(r, r)

	set := LayerSet{
		Width:    2 * r,
		Height:   2 * r,
		Percent:  percent,
		Angle:    angle,
		Strategy: s,
	}
	if res.container == ContainerHalf {
		set.Height = r
	}

	set.Background = Layer{
		Role:   RoleBackground,
		Shape:  ShapeRect,
		Bounds: Rect{W: set.Width, H: set.Height},
		Fill:   res.background,
	}

	// Runs from the middle of the border outward by half the fill width.
	set.SecondaryRing = circleLayer(RoleSecondaryRing, center, r-bw/2+fbw/2, res.secondary)
	set.InsetCover = circleLayer(RoleInsetCover, center, r-bw/2-fbw/2, res.background)
	set.CenterCover = circleLayer(RoleCenterCover, center, r-bw, res.background)

	if s == SplitSignLinear {
		set.Arc = halfRingArc(set.SecondaryRing, set.InsetCover.Radius, angle, res.color)
	} else {
		set.Arc = halfDiscArc(r, angle, res.color)
	}

	if res.showLabel {
		set.Label = newLabel(res, percent)
	}
	return set
}

func circleLayer(role LayerRole, c Point, radius float64, fill RGBA) Layer {
	return Layer{
		Role:   role,
		Shape:  ShapeCircle,
		Bounds: Rect{X: c.X - radius, Y: c.Y - radius, W: 2 * radius, H: 2 * radius},
		Center: c,
		Radius: radius,
		Fill:   fill,
	}
}

// halfDiscArc is the lower half of the gauge disc. Its own center sits r/2
// below the gauge center, so the shift moves the pivot up onto it.
func halfDiscArc(r, angle float64, fill RGBA) Layer {
	bounds := Rect{X: 0, Y: r, W: 2 * r, H: r}
	return Layer{
		Role:   RoleArc,
		Shape:  ShapeHalfDisc,
		Bounds: bounds,
		Center: Pt(r, r),
		Radius: r,
		Facing: 90,
		Fill:   fill,
		Rotation: &Rotation{
			Origin: bounds.Center(),
			Shift:  Pt(0, -r/2),
			Angle:  angle,
		},
	}
}

// halfRingArc is the left half of the track ring. Its own center sits
// half the ring radius left of the gauge center.
func halfRingArc(track Layer, inner, angle float64, fill RGBA) Layer {
	outer := track.Radius
	bounds := Rect{X: track.Bounds.X, Y: track.Bounds.Y, W: outer, H: 2 * outer}
	return Layer{
		Role:        RoleArc,
		Shape:       ShapeHalfRing,
		Bounds:      bounds,
		Center:      track.Center,
		Radius:      outer,
		InnerRadius: inner,
		Facing:      180,
		Fill:        fill,
		Rotation: &Rotation{
			Origin: bounds.Center(),
			Shift:  Pt(outer/2, 0),
			Angle:  angle,
		},
	}
}

func newLabel(res resolved, percent int) *Label {
	r := res.radius
	size := (r - res.border) * 0.45
	anchor := Pt(r, r)
	if res.container == ContainerHalf {
		anchor.Y = r - size*0.6
	}
	return &Label{
		Text:   FormatPercent(percent, res.labelLocale),
		Anchor: anchor,
		Size:   size,
		Color:  res.labelColor,
	}
}

// FormatPercent formats a normalized percent for a locale, e.g. "75%" for
// English and "75 %" for German.
func FormatPercent(percent int, tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Percent(float64(percent)/100, number.MaxFractionDigits(0)))
}
