package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/gauge"
)

func newLayersCmd(flags *gaugeFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "Print the computed layer stack",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := composeAt(flags, 0)
			if err != nil {
				return err
			}
			return printLayers(cmd.OutOrStdout(), set)
		},
	}
}

func printLayers(out io.Writer, set gauge.LayerSet) error {
	lo, hi := set.Strategy.Range()
	fmt.Fprintf(out, "percent %d  angle %g  strategy %s [%g, %g]  canvas %gx%g\n\n",
		set.Percent, set.Angle, set.Strategy, lo, hi, set.Width, set.Height)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LAYER\tSHAPE\tOFFSET\tSIZE\tRADIUS\tFILL\tTRANSFORM")
	for _, l := range set.Ordered() {
		transform := "-"
		if l.Rotation != nil {
			transform = l.Rotation.String()
		}
		off := l.Bounds.Min()
		fmt.Fprintf(tw, "%s\t%s\t%g,%g\t%gx%g\t%g\t%s\t%s\n",
			l.Role, l.Shape, off.X, off.Y, l.Bounds.W, l.Bounds.H, l.Radius, l.Fill.Hex(), transform)
	}
	if set.Label != nil {
		fmt.Fprintf(tw, "label\t%q\t%g,%g\t%g\t-\t%s\t-\n",
			set.Label.Text, set.Label.Anchor.X, set.Label.Anchor.Y, set.Label.Size, set.Label.Color.Hex())
	}
	return tw.Flush()
}
