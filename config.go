package gauge

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultBorderWidth     = 5.0
	DefaultColor           = "#f29400"
	DefaultSecondaryColor  = "gray"
	DefaultBackgroundColor = "white"
)

// Container selects the visible canvas of the gauge.
type Container uint8

const (
	// ContainerHalf shows only the top half of the circle (2r x r).
	ContainerHalf Container = iota
	// ContainerFull shows the whole circle (2r x 2r). It is meant for
	// SplitSignLinear: the FullRangeLinear half-disc rests in the lower
	// half, which a full container leaves visible, so with that strategy
	// the lower half stays colored at every percent, 0 included.
	ContainerFull
)

// String returns the flag name of the container.
func (c Container) String() string {
	if c == ContainerFull {
		return "full"
	}
	return "half"
}

// LabelConfig controls the optional percent text.
type LabelConfig struct {
	// Show enables the label.
	Show bool
	// Color of the text; defaults to Config.Color.
	Color string
	// Locale is a BCP 47 tag used to format the percent ("en", "de", "fr").
	// Defaults to English.
	Locale string
}

// Config describes one gauge. Zero-valued optional fields take the
// package defaults; see Validate.
type Config struct {
	// Radius is the outer radius in layout units. Required.
	Radius float64
	// Percent is the requested fill, expected in [0, 100]. Values outside
	// are clamped and fractions truncated.
	Percent float64
	// BorderWidth is the thickness of the outer ring (default 5).
	BorderWidth float64
	// FillBorderWidth is the thickness of the colored track ring
	// (default BorderWidth). It may not exceed BorderWidth.
	FillBorderWidth float64

	Color           string
	SecondaryColor  string
	BackgroundColor string

	// Container selects the visible canvas. See ContainerFull before
	// pairing it with FullRangeLinear.
	Container Container
	Label     LabelConfig
}

// resolved is a Config with defaults applied and colors parsed.
type resolved struct {
	radius      float64
	border      float64
	fillBorder  float64
	color       RGBA
	secondary   RGBA
	background  RGBA
	labelColor  RGBA
	labelLocale language.Tag
	container   Container
	showLabel   bool
}

// Validate reports whether cfg can be composited. It returns a
// *GeometryError (wrapping ErrDegenerateGeometry) for impossible radii,
// ErrInvalidColor for unparseable colors and ErrInvalidPercent for NaN or
// infinite percents.
func (cfg Config) Validate() error {
	if _, err := Normalize(cfg.Percent); err != nil {
		return err
	}
	_, err := cfg.resolve()
	return err
}

func (cfg Config) resolve() (resolved, error) {
	var res resolved

	if !finite(cfg.Radius) || cfg.Radius <= 0 {
		return res, &GeometryError{Field: "Radius", Value: cfg.Radius, Reason: "must be positive"}
	}
	res.radius = cfg.Radius

	res.border = cfg.BorderWidth
	if res.border == 0 {
		res.border = DefaultBorderWidth
	}
	if !finite(res.border) || res.border < 0 {
		return res, &GeometryError{Field: "BorderWidth", Value: cfg.BorderWidth, Reason: "must be positive"}
	}

	res.fillBorder = cfg.FillBorderWidth
	if res.fillBorder == 0 {
		res.fillBorder = res.border
	}
	if !finite(res.fillBorder) || res.fillBorder < 0 {
		return res, &GeometryError{Field: "FillBorderWidth", Value: cfg.FillBorderWidth, Reason: "must be positive"}
	}

	if inner := res.radius - res.border; inner < 0 {
		return res, &GeometryError{Field: "CenterCover.Radius", Value: inner, Reason: "border width exceeds radius"}
	}
	if outer := res.radius - res.border/2 + res.fillBorder/2; outer > res.radius {
		return res, &GeometryError{Field: "SecondaryRing.Radius", Value: outer, Reason: "fill border width exceeds border width"}
	}

	var err error
	if res.color, err = parseOr(cfg.Color, DefaultColor); err != nil {
		return res, err
	}
	if res.secondary, err = parseOr(cfg.SecondaryColor, DefaultSecondaryColor); err != nil {
		return res, err
	}
	if res.background, err = parseOr(cfg.BackgroundColor, DefaultBackgroundColor); err != nil {
		return res, err
	}

	res.container = cfg.Container
	res.showLabel = cfg.Label.Show
	res.labelColor = res.color
	if cfg.Label.Color != "" {
		if res.labelColor, err = ParseColor(cfg.Label.Color); err != nil {
			return res, err
		}
	}
	res.labelLocale = language.English
	if cfg.Label.Locale != "" {
		tag, err := language.Parse(cfg.Label.Locale)
		if err != nil {
			return res, fmt.Errorf("gauge: invalid label locale %q: %w", cfg.Label.Locale, err)
		}
		res.labelLocale = tag
	}
	return res, nil
}

func parseOr(s, def string) (RGBA, error) {
	if s == "" {
		s = def
	}
	return ParseColor(s)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
