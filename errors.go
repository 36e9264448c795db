package gauge

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gauge package.
var (
	// ErrInvalidPercent is returned when a percent value is NaN, infinite
	// or not a number at all.
	ErrInvalidPercent = errors.New("gauge: invalid percent")

	// ErrDegenerateGeometry is returned when the configured radius and
	// border widths would produce a negative or inverted layer.
	ErrDegenerateGeometry = errors.New("gauge: degenerate geometry")

	// ErrInvalidColor is returned when a color string is neither a known
	// color name nor a hex triplet.
	ErrInvalidColor = errors.New("gauge: invalid color")

	// ErrUnknownStrategy is returned by ParseStrategy for unknown names.
	ErrUnknownStrategy = errors.New("gauge: unknown sweep strategy")
)

// GeometryError describes which layer of a configuration is degenerate.
// It unwraps to ErrDegenerateGeometry.
type GeometryError struct {
	// Field names the offending configuration value or derived layer.
	Field string
	// Value is the configured or derived value that was rejected.
	Value float64
	// Reason is a short human readable constraint.
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("gauge: degenerate geometry: %s = %g: %s", e.Field, e.Value, e.Reason)
}

func (e *GeometryError) Unwrap() error { return ErrDegenerateGeometry }
