package gauge

import (
	"time"

	"github.com/gogpu/gauge/animate"
)

// Option configures a Gauge during creation.
//
// Example:
//
//	// Static gauge, strategy A
//	g, _ := gauge.New(cfg)
//
//	// Animated split-sign gauge that re-sweeps on every update
//	g, _ := gauge.New(cfg,
//	    gauge.WithStrategy(gauge.SplitSignLinear),
//	    gauge.WithAnimation(animate.DefaultDuration),
//	    gauge.WithRetrigger())
type Option func(*options)

// options holds optional configuration for Gauge creation.
type options struct {
	strategy  SweepStrategy
	animated  bool
	duration  time.Duration
	easing    animate.Easing
	retrigger bool
}

// defaultOptions returns a static FullRangeLinear gauge.
func defaultOptions() options {
	return options{
		strategy: FullRangeLinear,
		duration: animate.DefaultDuration,
		easing:   animate.Linear,
	}
}

// WithStrategy selects the sweep strategy.
func WithStrategy(s SweepStrategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithAnimation enables the sweep animation on Mount with the given
// duration. Use animate.DefaultDuration for the standard 1.5s sweep.
func WithAnimation(d time.Duration) Option {
	return func(o *options) {
		o.animated = true
		o.duration = d
	}
}

// WithEasing sets the easing curve of the sweep animation.
func WithEasing(e animate.Easing) Option {
	return func(o *options) {
		if e != nil {
			o.easing = e
		}
	}
}

// WithRetrigger makes Update restart the sweep from the currently shown
// angle toward the new target. Without it the animation runs once per Mount.
func WithRetrigger() Option {
	return func(o *options) {
		o.retrigger = true
	}
}
