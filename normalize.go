package gauge

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Percent bounds.
const (
	MinPercent = 0
	MaxPercent = 100
)

// Normalize truncates percent toward zero and clamps it to [0, 100].
// Fractions are discarded, never rounded: 99.9 yields 99 and -0.5 yields 0.
//
// NaN and infinities are rejected with ErrInvalidPercent instead of being
// coerced to a number.
func Normalize(percent float64) (int, error) {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPercent, percent)
	}
	p := math.Trunc(percent)
	switch {
	case p > MaxPercent:
		return MaxPercent, nil
	case p < MinPercent:
		return MinPercent, nil
	}
	return int(p), nil
}

// ParsePercent parses a textual percent such as "75", "42.9" or "120" and
// normalizes it. A trailing "%" is accepted.
func ParsePercent(s string) (int, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	v, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPercent, s)
	}
	return Normalize(v)
}
