package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/midbel/axes/config"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type renderOptions struct {
	Out    string
	Width  float64
	Height float64
	Jobs   int
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "render plot descriptions to SVG",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.Out, "out", "o", ".", "output directory")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "width of the plots (default: from the description)")
	cmd.Flags().Float64Var(&opts.Height, "height", 0, "height of the plots (default: from the description)")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", runtime.NumCPU(), "number of plots rendered concurrently")
	return cmd
}

func runRender(ctx context.Context, opts renderOptions, files []string) error {
	logger := loggerFromContext(ctx)
	if err := os.MkdirAll(opts.Out, 0o755); err != nil {
		return err
	}
	if err := checkTargets(files); err != nil {
		return err
	}
	grp, ctx := errgroup.WithContext(ctx)
	if opts.Jobs > 0 {
		grp.SetLimit(opts.Jobs)
	}
	for _, file := range files {
		file := file
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return renderFile(file, opts, logger.With("file", file))
		})
	}
	return grp.Wait()
}

func renderFile(file string, opts renderOptions, logger *log.Logger) error {
	start := time.Now()
	cfg, err := config.Load(file)
	if err != nil {
		return err
	}
	plot, err := cfg.Plot()
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	plot.Logger = logger

	var (
		width  = cfg.Width
		height = cfg.Height
		target = filepath.Join(opts.Out, cfg.Name()+".svg")
	)
	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}
	w, err := os.Create(target)
	if err != nil {
		return err
	}
	err = plot.Render(w, width, height)
	if e := w.Close(); err == nil {
		err = e
	}
	if err != nil {
		os.Remove(target)
		return fmt.Errorf("%s: %w", file, err)
	}
	logger.Info("plot rendered", "output", target, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

// checkTargets reports descriptions that would be rendered to the same
// output file.
func checkTargets(files []string) error {
	seen := make(map[string]string)
	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".svg"
		if other, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s both render to %s", other, file, name)
		}
		seen[name] = file
	}
	return nil
}
