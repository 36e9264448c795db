package animate

import "time"

// DefaultDuration is the time a sweep takes from start to target.
const DefaultDuration = 1500 * time.Millisecond

// Easing maps linear progress in [0, 1] to eased progress in [0, 1].
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 { return t }

// EaseInOut starts and ends slowly (cubic smoothstep).
func EaseInOut(t float64) float64 { return t * t * (3 - 2*t) }

// Option configures a Sweep.
type Option func(*Sweep)

// WithDuration sets the sweep duration. Non-positive durations jump
// straight to the target.
func WithDuration(d time.Duration) Option {
	return func(s *Sweep) {
		s.duration = d
	}
}

// WithEasing sets the easing curve. nil keeps Linear.
func WithEasing(e Easing) Option {
	return func(s *Sweep) {
		if e != nil {
			s.easing = e
		}
	}
}

// Sweep interpolates a value from a start to a target over a fixed duration.
// It runs once per Start and never loops.
type Sweep struct {
	duration time.Duration
	easing   Easing

	from, to float64
	value    float64
	start    time.Time

	running bool
	stopped bool
}

// NewSweep creates an idle sweep with value 0.
func NewSweep(opts ...Option) *Sweep {
	s := &Sweep{
		duration: DefaultDuration,
		easing:   Linear,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a sweep from from to to at time now. Starting a running
// sweep restarts it. After Stop, Start is a no-op.
func (s *Sweep) Start(from, to float64, now time.Time) {
	if s.stopped {
		return
	}
	s.from, s.to = from, to
	s.value = from
	s.start = now
	s.running = true
	if s.duration <= 0 {
		s.finish()
	}
}

// Advance moves the sweep to time now and returns the current value. Once
// now reaches start+duration the value is exactly the target and the sweep
// stops running. Times before the start hold the start value.
func (s *Sweep) Advance(now time.Time) float64 {
	if !s.running {
		return s.value
	}

	elapsed := now.Sub(s.start)
	if elapsed >= s.duration {
		s.finish()
		return s.value
	}
	if elapsed < 0 {
		elapsed = 0
	}

	t := s.easing(float64(elapsed) / float64(s.duration))
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	s.value = s.from + (s.to-s.from)*t
	return s.value
}

func (s *Sweep) finish() {
	s.value = s.to
	s.running = false
}

// Value returns the value computed by the last Advance.
func (s *Sweep) Value() float64 { return s.value }

// Target returns the value the current sweep ends at.
func (s *Sweep) Target() float64 { return s.to }

// Running reports whether the sweep has not yet reached its target.
func (s *Sweep) Running() bool { return s.running }

// Duration returns the configured duration.
func (s *Sweep) Duration() time.Duration { return s.duration }

// Stop cancels the sweep for good. The value freezes where it is and every
// later Start or Advance is a no-op.
func (s *Sweep) Stop() {
	s.running = false
	s.stopped = true
}
