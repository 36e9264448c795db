// Command gauge renders half-circle percentage gauges.
//
//	gauge render --percent 75 --radius 120 -o gauge.png
//	gauge render --percent 40 --strategy split-sign --format svg -o gauge.svg
//	gauge layers --percent 75
//	gauge watch --percent 90
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/gauge"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &gaugeFlags{}
	root := &cobra.Command{
		Use:           "gauge",
		Short:         "Render half-circle percentage gauges",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				gauge.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	flags.register(root.PersistentFlags())

	root.AddCommand(
		newRenderCmd(flags),
		newLayersCmd(flags),
		newWatchCmd(flags),
	)
	return root
}

// gaugeFlags are shared by every subcommand.
type gaugeFlags struct {
	radius          float64
	percent         string
	borderWidth     float64
	fillBorderWidth float64
	color           string
	secondaryColor  string
	backgroundColor string
	strategy        string
	container       string
	label           bool
	labelColor      string
	locale          string
	verbose         bool
}

func (f *gaugeFlags) register(fs *pflag.FlagSet) {
	fs.Float64VarP(&f.radius, "radius", "r", 100, "outer radius in pixels")
	fs.StringVarP(&f.percent, "percent", "p", "0", "fill percent (0-100, fractions are truncated)")
	fs.Float64Var(&f.borderWidth, "border-width", gauge.DefaultBorderWidth, "outer ring thickness")
	fs.Float64Var(&f.fillBorderWidth, "fill-border-width", 0, "colored track thickness (default border-width)")
	fs.StringVar(&f.color, "color", gauge.DefaultColor, "arc color (name or hex)")
	fs.StringVar(&f.secondaryColor, "secondary-color", gauge.DefaultSecondaryColor, "track color")
	fs.StringVar(&f.backgroundColor, "background-color", gauge.DefaultBackgroundColor, "background color")
	fs.StringVarP(&f.strategy, "strategy", "s", gauge.FullRangeLinear.String(), "sweep strategy: full-range or split-sign")
	fs.StringVar(&f.container, "container", gauge.ContainerHalf.String(), "visible canvas: half or full (full suits split-sign)")
	fs.BoolVar(&f.label, "label", false, "draw the percent label")
	fs.StringVar(&f.labelColor, "label-color", "", "label color (default: arc color)")
	fs.StringVar(&f.locale, "locale", "en", "label locale (BCP 47)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging to stderr")
}

func (f *gaugeFlags) config() (gauge.Config, error) {
	pct, err := gauge.ParsePercent(f.percent)
	if err != nil {
		return gauge.Config{}, err
	}
	var container gauge.Container
	switch strings.ToLower(f.container) {
	case "half":
		container = gauge.ContainerHalf
	case "full":
		container = gauge.ContainerFull
	default:
		return gauge.Config{}, fmt.Errorf("invalid container: %s (must be half or full)", f.container)
	}
	cfg := gauge.Config{
		Radius:          f.radius,
		Percent:         float64(pct),
		BorderWidth:     f.borderWidth,
		FillBorderWidth: f.fillBorderWidth,
		Color:           f.color,
		SecondaryColor:  f.secondaryColor,
		BackgroundColor: f.backgroundColor,
		Container:       container,
		Label: gauge.LabelConfig{
			Show:   f.label,
			Color:  f.labelColor,
			Locale: f.locale,
		},
	}
	return cfg, cfg.Validate()
}

func (f *gaugeFlags) sweepStrategy() (gauge.SweepStrategy, error) {
	return gauge.ParseStrategy(f.strategy)
}
