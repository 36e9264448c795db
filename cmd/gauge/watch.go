package main

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/animate"
	"github.com/gogpu/gauge/render"
	"github.com/gogpu/gauge/render/backends/term"
)

func newWatchCmd(flags *gaugeFlags) *cobra.Command {
	var (
		duration time.Duration
		step     int
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate the gauge in the terminal",
		Long: `watch sweeps the gauge in the terminal. Use + and - to move the
percent by --step, q or Esc to quit. The radius is fitted to the terminal
when --radius is not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			strategy, err := flags.sweepStrategy()
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			if !cmd.Flags().Changed("radius") {
				cfg.Radius = fitRadius(screen, cfg)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			g, err := gauge.New(cfg,
				gauge.WithStrategy(strategy),
				gauge.WithAnimation(duration),
				gauge.WithEasing(animate.EaseInOut),
				gauge.WithRetrigger())
			if err != nil {
				return err
			}
			return watch(cmd.Context(), screen, g, step)
		},
	}
	cmd.Flags().DurationVar(&duration, "duration", animate.DefaultDuration, "sweep duration")
	cmd.Flags().IntVar(&step, "step", 10, "percent change per key press")
	return cmd
}

// fitRadius picks the largest radius whose canvas fits the screen.
func fitRadius(screen tcell.Screen, cfg gauge.Config) float64 {
	cols, rows := screen.Size()
	r := cols/2 - 1
	// Two pixel rows per cell.
	maxRows := 2 * rows
	if cfg.Container == gauge.ContainerFull {
		maxRows /= 2
	}
	if maxRows < r {
		r = maxRows
	}
	minR := int(cfg.BorderWidth) + 1
	if r < minR {
		r = minR
	}
	return float64(r)
}

// watch runs the frame loop. Keyboard events are read on their own
// goroutine and handed to the loop, which is the only writer of g.
func watch(parent context.Context, screen tcell.Screen, g *gauge.Gauge, step int) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	keys := make(chan *tcell.EventKey, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if k, ok := ev.(*tcell.EventKey); ok {
				select {
				case keys <- k:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	backend := term.NewBackend(screen, 0, 0)
	g.Mount(time.Now())
	defer g.Unmount()

	err := animate.Run(ctx, animate.DefaultFrameInterval, func(now time.Time) bool {
	drain:
		for {
			select {
			case k := <-keys:
				if !handleKey(g, k, step, now) {
					return false
				}
			default:
				break drain
			}
		}
		set := g.Frame(now)
		if err := render.Paint(backend, set); err != nil {
			gauge.Logger().Warn("watch: paint failed", "err", err)
			return false
		}
		return true
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// handleKey applies one key press and reports whether to keep running.
func handleKey(g *gauge.Gauge, k *tcell.EventKey, step int, now time.Time) bool {
	switch {
	case k.Key() == tcell.KeyEscape, k.Key() == tcell.KeyCtrlC, k.Rune() == 'q':
		return false
	case k.Rune() == '+', k.Rune() == '=':
		adjust(g, step, now)
	case k.Rune() == '-':
		adjust(g, -step, now)
	}
	return true
}

func adjust(g *gauge.Gauge, delta int, now time.Time) {
	cfg := g.Config()
	cfg.Percent = float64(g.Percent() + delta)
	if err := g.Update(cfg, now); err != nil {
		gauge.Logger().Warn("watch: update rejected", "err", err)
	}
}
