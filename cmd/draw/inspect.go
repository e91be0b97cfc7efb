package main

import (
	"fmt"
	"io"

	"github.com/midbel/axes"
	"github.com/midbel/axes/config"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "print the layout computed for a plot description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			plot, err := cfg.Plot()
			if err != nil {
				return err
			}
			plot.Logger = loggerFromContext(cmd.Context())
			res, err := plot.Layout(axes.NewRect(0, 0, cfg.Width, cfg.Height))
			if err != nil {
				return err
			}
			return printLayout(cmd.OutOrStdout(), cfg.Name(), res)
		},
	}
}

func printLayout(w io.Writer, name string, res axes.Result) error {
	printTitle(w, name)
	printField(w, "bounds", formatRect(res.Bounds))
	printField(w, "plot area", formatRect(res.PlotArea))
	printField(w, "indents", fmt.Sprintf("top=%.1f right=%.1f bottom=%.1f left=%.1f", res.Indents.Top, res.Indents.Right, res.Indents.Bottom, res.Indents.Left))
	printField(w, "passes", fmt.Sprint(res.Passes))
	for _, o := range []axes.Orientation{axes.OrientBottom, axes.OrientLeft, axes.OrientTop, axes.OrientRight} {
		g := res.Axes[o]
		ticks, err := g.Axis.Ticks()
		if err != nil {
			return err
		}
		printTitle(w, o.String()+" axis")
		printField(w, "kind", g.Axis.Axis.Kind().String())
		printField(w, "world", fmt.Sprintf("%g .. %g", g.Axis.Axis.WorldMin(), g.Axis.Axis.WorldMax()))
		printField(w, "line", fmt.Sprintf("(%.1f, %.1f) -> (%.1f, %.1f)", g.Axis.Min.X, g.Axis.Min.Y, g.Axis.Max.X, g.Axis.Max.Y))
		printField(w, "footprint", formatRect(g.Footprint.Box))
		printNumbers(w, "large ticks", axes.LargeTicks(ticks))
	}
	return nil
}

func formatRect(r axes.Rect) string {
	return fmt.Sprintf("x=%.1f y=%.1f w=%.1f h=%.1f", r.X, r.Y, r.W, r.H)
}
