package gauge

import (
	"fmt"
	"strings"
)

// SweepStrategy selects how a normalized percent maps to a rotation angle,
// and which half-shape the arc layer rotates.
type SweepStrategy uint8

const (
	// FullRangeLinear maps 0..100 to 0..180 degrees. The arc layer is a
	// half-disc hanging below the center line.
	FullRangeLinear SweepStrategy = iota

	// SplitSignLinear maps 0..100 to -90..90 degrees with 50 at 0. The arc
	// layer is a half-ring strip standing left of the vertical center line.
	SplitSignLinear
)

// halfTurn is the sweep, in degrees, covered by the full percent range.
const halfTurn = 180.0

var strategyNames = [...]string{
	FullRangeLinear: "full-range",
	SplitSignLinear: "split-sign",
}

// String returns the flag name of the strategy.
func (s SweepStrategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("SweepStrategy(%d)", s)
}

// ParseStrategy returns the strategy with the given name. The short
// aliases "a" and "b" are accepted as well.
func ParseStrategy(name string) (SweepStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "full-range", "fullrange", "a":
		return FullRangeLinear, nil
	case "split-sign", "splitsign", "b":
		return SplitSignLinear, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Range returns the smallest and largest angle the strategy produces.
func (s SweepStrategy) Range() (lo, hi float64) {
	if s == SplitSignLinear {
		return -halfTurn / 2, halfTurn / 2
	}
	return 0, halfTurn
}

// MapAngle converts a normalized percent in [0, 100] into a sweep angle in
// degrees. The mapping is linear and exact.
func MapAngle(percent int, s SweepStrategy) float64 {
	if s == SplitSignLinear {
		// 50 takes the upper branch.
		if percent >= 50 {
			return float64(percent-50) * halfTurn / 100
		}
		return -float64(50-percent) * halfTurn / 100
	}
	return float64(percent) * halfTurn / 100
}
