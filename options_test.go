package gauge

import (
	"testing"
	"time"

	"github.com/gogpu/gauge/animate"
)

// TestNewDefaults tests that New creates a static FullRangeLinear gauge by default.
func TestNewDefaults(t *testing.T) {
	g, err := New(Config{Radius: 10})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Strategy() != FullRangeLinear {
		t.Errorf("Strategy() = %v, want %v", g.Strategy(), FullRangeLinear)
	}
	if g.Animated() {
		t.Error("default gauge is animated")
	}
	if g.opts.retrigger {
		t.Error("default gauge retriggers")
	}
}

// TestWithAnimation tests that the duration and easing reach the sweep.
func TestWithAnimation(t *testing.T) {
	g, err := New(Config{Radius: 10, Percent: 100},
		WithAnimation(2*time.Second),
		WithEasing(animate.EaseInOut))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !g.Animated() {
		t.Fatal("gauge is not animated")
	}
	if g.sweep.Duration() != 2*time.Second {
		t.Errorf("sweep duration = %v, want 2s", g.sweep.Duration())
	}

	g.Mount(t0)
	// EaseInOut is symmetric, so the midpoint is exact.
	if got := g.Frame(t0.Add(time.Second)).Angle; got != 90 {
		t.Errorf("angle at midpoint = %v, want 90", got)
	}
	if got := g.Frame(t0.Add(2 * time.Second)).Angle; got != 180 {
		t.Errorf("angle at end = %v, want 180", got)
	}
}

func TestWithEasingNil(t *testing.T) {
	o := defaultOptions()
	WithEasing(nil)(&o)
	if o.easing == nil {
		t.Fatal("WithEasing(nil) cleared the easing")
	}
	if o.easing(0.25) != 0.25 {
		t.Error("WithEasing(nil) replaced Linear")
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	g, err := New(Config{Radius: 10},
		WithStrategy(SplitSignLinear),
		WithStrategy(FullRangeLinear),
		WithAnimation(time.Second),
		WithAnimation(3*time.Second),
		WithRetrigger())
	if err != nil {
		t.Fatal(err)
	}
	if g.Strategy() != FullRangeLinear {
		t.Errorf("last WithStrategy did not win: %v", g.Strategy())
	}
	if g.sweep.Duration() != 3*time.Second {
		t.Errorf("last WithAnimation did not win: %v", g.sweep.Duration())
	}
	if !g.opts.retrigger {
		t.Error("WithRetrigger not applied")
	}
}
