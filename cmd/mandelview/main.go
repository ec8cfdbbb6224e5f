package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/mandelview/internal/config"
	"github.com/san-kum/mandelview/internal/gui"
	"github.com/san-kum/mandelview/internal/render"
	"github.com/san-kum/mandelview/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	dimension   int
	iterations  uint32
	bailout     float64
	paletteName string
	verbose     bool
	// bench
	benchFrames int
)

// cfg is resolved once per invocation by loadConfig.
var cfg *config.Config

// main registers the commands and flags and executes the root command, which
// opens the windowed explorer when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:               "mandelview",
		Short:             "interactive mandelbrot explorer",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
		RunE:              runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start at a named view (see presets)")
	pf.IntVar(&dimension, "dim", config.DefaultDimension, "render resolution in pixels")
	pf.Uint32Var(&iterations, "iterations", config.DefaultMaxIterations, "escape-time budget")
	pf.Float64Var(&bailout, "bailout", config.DefaultBailout, "early-termination threshold")
	pf.StringVar(&paletteName, "palette", "default", "built-in palette (default, gray)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "explore in a window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "explore in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), cfg)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset views",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "render a zoom sequence headless and report frame times",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&benchFrames, "frames", 60, "frames to render")

	rootCmd.AddCommand(guiCmd, tuiCmd, presetsCmd, benchCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, the preset and explicit flags,
// in that order.
func loadConfig(cmd *cobra.Command, args []string) error {
	if verbose {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	c := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading %s: %w", configFile, err)
		}
		c = loaded
	}
	if preset != "" {
		if err := c.ApplyPreset(preset); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("dim") {
		c.Dimension = dimension
	}
	if flags.Changed("iterations") {
		c.MaxIterations = iterations
	}
	if flags.Changed("bailout") {
		c.Bailout = bailout
	}
	if flags.Changed("palette") {
		c.Palette = paletteName
		c.Gradient = nil
	}
	if err := c.Validate(); err != nil {
		return err
	}

	cfg = c
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	return gui.Run(cmd.Context(), cfg)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCENTER\tHALF WIDTH\tZOOM\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t(%.5f, %.5f)\t%g\t%.2f\t%s\n",
			name, p.CenterX, p.CenterY, p.HalfWidth, p.Zoom(), p.Description)
	}
	return w.Flush()
}

// discard is a Surface for headless runs.
type discard struct{ presented int }

func (d *discard) Present([]uint32, int, int) error {
	d.presented++
	return nil
}

// pixelRate is pixels per second over elapsed, zero when nothing was timed.
func pixelRate(pixels float64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return pixels / elapsed.Seconds()
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchFrames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", benchFrames)
	}

	gradient, err := cfg.BuildGradient()
	if err != nil {
		return err
	}
	r, err := render.New(cfg.NewViewport(), gradient, cfg.Params())
	if err != nil {
		return err
	}

	times := make([]float64, 0, benchFrames)
	var total time.Duration
	loop := render.NewLoop(r, render.Repeat(benchFrames, render.ZoomIn), &discard{})
	loop.AddObserver(render.ObserverFunc(func(f render.FrameInfo) {
		if f.Rendered {
			total += f.Elapsed
			times = append(times, float64(f.Elapsed.Microseconds())/1000)
		}
	}))

	fmt.Printf("benchmarking %dx%d, %d iterations, %d frames\n\n",
		cfg.Dimension, cfg.Dimension, cfg.MaxIterations, benchFrames)

	if err := loop.Run(cmd.Context()); err != nil {
		return err
	}

	stats := r.Stats()
	pixels := float64(stats.Renders) * float64(cfg.Dimension*cfg.Dimension)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAMES\tRENDERS\tTOTAL\tAVG\tPIXELS/SEC")
	avg := time.Duration(0)
	if stats.Renders > 0 {
		avg = total / time.Duration(stats.Renders)
	}
	fmt.Fprintf(w, "%d\t%d\t%v\t%v\t%.0f\n",
		stats.Frames, stats.Renders, total.Round(time.Microsecond), avg.Round(time.Microsecond),
		pixelRate(pixels, total))
	if err := w.Flush(); err != nil {
		return err
	}

	if len(times) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(times,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("render time per frame (ms), zooming in"),
		))
	}
	return nil
}
