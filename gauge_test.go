package gauge

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/gauge/animate"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestGaugeEndToEnd(t *testing.T) {
	g, err := New(Config{Radius: 50, Percent: 75, Color: "#f29400"})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if g.Percent() != 75 {
		t.Errorf("Percent() = %d, want 75", g.Percent())
	}
	if g.SweepAngle() != 135 {
		t.Errorf("SweepAngle() = %v, want 135", g.SweepAngle())
	}

	set := g.Layers()
	rot := set.Arc.Rotation
	if rot == nil || rot.Angle != 135 {
		t.Fatalf("arc rotation = %+v, want 135 degrees", rot)
	}
	if rot.Shift != Pt(0, -25) || rot.Pivot() != Pt(50, 50) {
		t.Errorf("arc rotation shift %v pivot %v, want (0,-25) about (50,50)", rot.Shift, rot.Pivot())
	}
	if set.Arc.Fill.Hex() != "#f29400" {
		t.Errorf("arc fill = %s", set.Arc.Fill.Hex())
	}
}

func TestGaugeStaticIgnoresLifecycle(t *testing.T) {
	g, err := New(Config{Radius: 50, Percent: 40})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if g.Animated() {
		t.Error("Animated() = true for a static gauge")
	}
	if g.CurrentAngle() != 72 {
		t.Errorf("CurrentAngle() before mount = %v, want 72", g.CurrentAngle())
	}
	g.Mount(t0)
	if got := g.Frame(t0.Add(time.Hour)).Angle; got != 72 {
		t.Errorf("Frame().Angle = %v, want 72", got)
	}
	if g.Animating() {
		t.Error("Animating() = true for a static gauge")
	}
}

func TestGaugeSweep(t *testing.T) {
	g, err := New(Config{Radius: 50, Percent: 75}, WithAnimation(animate.DefaultDuration))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if g.CurrentAngle() != 0 {
		t.Errorf("CurrentAngle() before mount = %v, want 0", g.CurrentAngle())
	}

	g.Mount(t0)
	if g.CurrentAngle() != 0 {
		t.Errorf("CurrentAngle() after mount = %v, want 0", g.CurrentAngle())
	}
	if got := g.Frame(t0).Angle; got != 0 {
		t.Errorf("Frame(start).Angle = %v, want 0", got)
	}
	if !g.Animating() {
		t.Error("Animating() = false right after mount")
	}
	if got := g.Frame(t0.Add(750 * time.Millisecond)).Angle; got != 67.5 {
		t.Errorf("Frame(750ms).Angle = %v, want 67.5", got)
	}
	if got := g.Frame(t0.Add(1500 * time.Millisecond)).Angle; got != 135 {
		t.Errorf("Frame(1500ms).Angle = %v, want exactly 135", got)
	}
	if g.Animating() {
		t.Error("Animating() = true after the duration elapsed")
	}
	if got := g.Frame(t0.Add(10 * time.Second)).Angle; got != 135 {
		t.Errorf("Frame(10s).Angle = %v, want 135", got)
	}
}

func TestGaugeSweepNeverOvershoots(t *testing.T) {
	for _, easing := range []animate.Easing{animate.Linear, animate.EaseInOut} {
		g, err := New(Config{Radius: 50, Percent: 100}, WithAnimation(time.Second), WithEasing(easing))
		if err != nil {
			t.Fatalf("New() = %v", err)
		}
		g.Mount(t0)
		prev := 0.0
		for ms := 0; ms <= 1200; ms += 7 {
			a := g.Frame(t0.Add(time.Duration(ms) * time.Millisecond)).Angle
			if a < prev || a > 180 {
				t.Fatalf("angle %v at %dms after %v", a, ms, prev)
			}
			prev = a
		}
		if prev != 180 {
			t.Errorf("final angle = %v, want 180", prev)
		}
	}
}

func TestGaugeSplitSignSweepStartsAtZero(t *testing.T) {
	tests := []struct {
		percent float64
		mid     float64
		end     float64
	}{
		{100, 45, 90},
		{0, -45, -90},
		{50, 0, 0},
	}
	for _, tt := range tests {
		g, err := New(Config{Radius: 50, Percent: tt.percent},
			WithStrategy(SplitSignLinear),
			WithAnimation(time.Second))
		if err != nil {
			t.Fatalf("New() = %v", err)
		}
		if got := g.CurrentAngle(); got != 0 {
			t.Errorf("%v%%: angle before Mount = %v, want 0", tt.percent, got)
		}
		g.Mount(t0)
		if got := g.Frame(t0).Angle; got != 0 {
			t.Errorf("%v%%: Frame(start).Angle = %v, want 0", tt.percent, got)
		}
		if got := g.Frame(t0.Add(500 * time.Millisecond)).Angle; got != tt.mid {
			t.Errorf("%v%%: Frame(mid).Angle = %v, want %v", tt.percent, got, tt.mid)
		}
		if got := g.Frame(t0.Add(time.Second)).Angle; got != tt.end {
			t.Errorf("%v%%: Frame(end).Angle = %v, want %v", tt.percent, got, tt.end)
		}
	}
}

func TestGaugeUnmountStopsSweep(t *testing.T) {
	g, err := New(Config{Radius: 50, Percent: 100}, WithAnimation(time.Second))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	g.Mount(t0)
	mid := g.Frame(t0.Add(500 * time.Millisecond)).Angle
	g.Unmount()

	if g.Animating() {
		t.Error("Animating() = true after Unmount")
	}
	if got := g.Frame(t0.Add(2 * time.Second)).Angle; got != mid {
		t.Errorf("Frame after Unmount = %v, want frozen %v", got, mid)
	}

	// Teardown misuse is a no-op.
	g.Unmount()
	g.Mount(t0.Add(3 * time.Second))
	if g.Animating() {
		t.Error("Mount after Unmount restarted the sweep")
	}
	if got := g.Frame(t0.Add(4 * time.Second)).Angle; got != mid {
		t.Errorf("Frame after re-Mount = %v, want frozen %v", got, mid)
	}
}

func TestGaugeUpdateOneShot(t *testing.T) {
	g, err := New(Config{Radius: 50, Percent: 75}, WithAnimation(time.Second))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	g.Mount(t0)
	g.Frame(t0.Add(500 * time.Millisecond))

	if err := g.Update(Config{Radius: 50, Percent: 50}, t0.Add(500*time.Millisecond)); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	// Pure values follow the update right away.
	if g.Percent() != 50 || g.SweepAngle() != 90 {
		t.Errorf("Percent/SweepAngle = %d/%v, want 50/90", g.Percent(), g.SweepAngle())
	}
	// The running sweep keeps its first target.
	if got := g.Frame(t0.Add(time.Second)).Angle; got != 135 {
		t.Errorf("Frame(end).Angle = %v, want first target 135", got)
	}
	if got := g.Layers().Percent; got != 50 {
		t.Errorf("Layers().Percent = %d, want 50", got)
	}
}

func TestGaugeUpdateRetrigger(t *testing.T) {
	g, err := New(Config{Radius: 50, Percent: 75}, WithAnimation(time.Second), WithRetrigger())
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	g.Mount(t0)
	half := t0.Add(500 * time.Millisecond)
	if got := g.Frame(half).Angle; got != 67.5 {
		t.Fatalf("Frame(500ms).Angle = %v, want 67.5", got)
	}

	if err := g.Update(Config{Radius: 50, Percent: 100}, half); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	if got := g.Frame(half).Angle; got != 67.5 {
		t.Errorf("retriggered sweep starts at %v, want current 67.5", got)
	}
	if got := g.Frame(half.Add(time.Second)).Angle; got != 180 {
		t.Errorf("retriggered sweep ends at %v, want 180", got)
	}
}

func TestGaugeUpdateRejectsInvalidConfig(t *testing.T) {
	g, err := New(Config{Radius: 50, Percent: 30})
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	err = g.Update(Config{Radius: 50, BorderWidth: 60}, t0)
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Fatalf("Update() = %v, want ErrDegenerateGeometry", err)
	}
	if g.Percent() != 30 || g.Config().BorderWidth != 0 {
		t.Errorf("failed Update changed state: percent %d config %+v", g.Percent(), g.Config())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"degenerate", Config{Radius: 50, BorderWidth: 60}, ErrDegenerateGeometry},
		{"bad color", Config{Radius: 50, SecondaryColor: "mauve-ish"}, ErrInvalidColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); !errors.Is(err, tt.want) {
				t.Errorf("New() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGaugeIDsAreUnique(t *testing.T) {
	a, _ := New(Config{Radius: 10})
	b, _ := New(Config{Radius: 10})
	if a.ID() == b.ID() {
		t.Error("two gauges share an ID")
	}
}
