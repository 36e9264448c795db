package gauge

import (
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/gauge/animate"
)

// Gauge is one gauge instance. It owns its animation state exclusively;
// the normalized percent and target angle are always derived synchronously
// from the latest Config.
//
// A Gauge is driven by a single host loop and is not safe for concurrent use.
type Gauge struct {
	id    uuid.UUID
	opts  options
	cfg   Config
	res   resolved
	pct   int
	angle float64

	sweep     *animate.Sweep
	mounted   bool
	destroyed bool
}

// New validates cfg and creates a gauge. Animated gauges show angle 0
// until Mount.
func New(cfg Config, opts ...Option) (*Gauge, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Gauge{
		id:   uuid.New(),
		opts: o,
	}
	if err := g.apply(cfg); err != nil {
		Logger().Warn("gauge: rejected config", "err", err)
		return nil, err
	}
	if o.animated {
		g.sweep = animate.NewSweep(animate.WithDuration(o.duration), animate.WithEasing(o.easing))
	}

	log := Logger().With("id", g.id)
	if g.sweep != nil {
		log = log.With("duration", g.sweep.Duration())
	}
	log.Debug("gauge: created",
		"percent", g.pct,
		"angle", g.angle,
		"strategy", o.strategy,
		"animated", o.animated)
	return g, nil
}

func (g *Gauge) apply(cfg Config) error {
	pct, err := Normalize(cfg.Percent)
	if err != nil {
		return err
	}
	res, err := cfg.resolve()
	if err != nil {
		return err
	}
	g.cfg = cfg
	g.res = res
	g.pct = pct
	g.angle = MapAngle(pct, g.opts.strategy)
	return nil
}

// ID returns the instance identifier used in log records.
func (g *Gauge) ID() uuid.UUID { return g.id }

// Config returns the configuration last accepted by New or Update.
func (g *Gauge) Config() Config { return g.cfg }

// Strategy returns the sweep strategy.
func (g *Gauge) Strategy() SweepStrategy { return g.opts.strategy }

// Percent returns the normalized percent.
func (g *Gauge) Percent() int { return g.pct }

// SweepAngle returns the target angle for the normalized percent.
func (g *Gauge) SweepAngle() float64 { return g.angle }

// Animated reports whether the gauge animates its sweep.
func (g *Gauge) Animated() bool { return g.sweep != nil }

// Animating reports whether a sweep is in flight.
func (g *Gauge) Animating() bool {
	return g.sweep != nil && g.sweep.Running()
}

// CurrentAngle returns the angle the arc layer is drawn at. For static
// gauges this is SweepAngle.
func (g *Gauge) CurrentAngle() float64 {
	if g.sweep == nil {
		return g.angle
	}
	if !g.mounted && !g.destroyed {
		return 0
	}
	return g.sweep.Value()
}

// Mount is the host's attach hook. Animated gauges start sweeping from
// angle 0 toward SweepAngle at now. For SplitSignLinear that is the upright
// strip, so the sweep runs in either direction. Mounting twice,
// or after Unmount, is a no-op.
func (g *Gauge) Mount(now time.Time) {
	if g.mounted || g.destroyed {
		return
	}
	g.mounted = true
	if g.sweep != nil {
		g.sweep.Start(0, g.angle, now)
	}
	Logger().Debug("gauge: mounted", "id", g.id, "target", g.angle)
}

// Unmount is the host's detach hook. It cancels any in-flight sweep and
// retires the instance; later lifecycle and frame calls are no-ops.
func (g *Gauge) Unmount() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	g.mounted = false
	if g.sweep != nil {
		g.sweep.Stop()
	}
	Logger().Debug("gauge: unmounted", "id", g.id)
}

// Update replaces the configuration. The normalized percent and target
// angle change immediately. A running sweep keeps heading to its original
// target unless the gauge was created WithRetrigger, in which case a new
// sweep starts at now from the currently shown angle. On error the previous
// configuration is kept.
func (g *Gauge) Update(cfg Config, now time.Time) error {
	if err := g.apply(cfg); err != nil {
		Logger().Warn("gauge: rejected update", "id", g.id, "err", err)
		return err
	}
	if g.sweep != nil && g.mounted && g.opts.retrigger {
		from := g.sweep.Advance(now)
		g.sweep.Start(from, g.angle, now)
		Logger().Debug("gauge: sweep retriggered", "id", g.id, "from", from, "target", g.sweep.Target())
	}
	return nil
}

// Frame advances the sweep to now and composites the gauge at the
// resulting angle. After Unmount the sweep no longer moves and the last
// shown angle is composited. The configuration was validated by New and
// Update, so compositing cannot fail.
func (g *Gauge) Frame(now time.Time) LayerSet {
	if g.sweep != nil && g.mounted {
		wasRunning := g.sweep.Running()
		g.sweep.Advance(now)
		if wasRunning && !g.sweep.Running() {
			Logger().Debug("gauge: sweep finished", "id", g.id, "angle", g.sweep.Value())
		}
	}
	return g.Layers()
}

// Layers composites the gauge at CurrentAngle without advancing time.
func (g *Gauge) Layers() LayerSet {
	return composite(g.res, g.pct, g.CurrentAngle(), g.opts.strategy)
}
