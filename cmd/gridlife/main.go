package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/gridlife/internal/config"
	"github.com/san-kum/gridlife/internal/life"
	"github.com/san-kum/gridlife/internal/metrics"
	"github.com/san-kum/gridlife/internal/pipeline"
	"github.com/san-kum/gridlife/internal/timeline"
	"github.com/san-kum/gridlife/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool

	input         string
	output        string
	rows          int
	cols          int
	cellSize      int
	spacing       int
	frameDuration time.Duration
	generations   int
	alive         string
	dead          string
	mode          string
	epsilon       float64
	workers       int

	// Preview
	theme string
	loop  bool

	// Seed
	density float64
	seed    int64
)

// main registers the gridlife commands and exits with status 1 when the
// selected command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "gridlife",
		Short:        "animate a contribution calendar with the game of life",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				pipeline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pipeline stages to stderr")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "write the animated svg",
		Args:  cobra.NoArgs,
		RunE:  runRender,
	}
	addRunFlags(renderCmd)

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "play the generations in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runPreview,
	}
	addRunFlags(previewCmd)
	previewCmd.Flags().StringVar(&theme, "theme", viz.ThemeGitHub.Name, fmt.Sprintf("color theme %v", viz.ThemeNames()))
	previewCmd.Flags().BoolVar(&loop, "loop", false, "restart after the last generation")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot live cells per generation",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	addRunFlags(plotCmd)

	seedCmd := &cobra.Command{
		Use:   "seed [path]",
		Short: "write a random initial grid",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSeed,
	}
	seedCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "grid rows")
	seedCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "grid columns")
	seedCmd.Flags().Float64Var(&density, "density", life.DefaultDensity, "fraction of live cells")
	seedCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMODE\tGENERATIONS\tFRAME\tALIVE")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", name, p.Mode, p.Generations, p.FrameDuration, p.Layout.Alive)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a config file with default values",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "gridlife.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, previewCmd, plotCmd, seedCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&input, "input", "i", config.DefaultInput, "grid file of 0/1 rows")
	cmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, "svg output path")
	cmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "expected grid rows (0 accepts any)")
	cmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "expected grid columns (0 accepts any)")
	cmd.Flags().IntVar(&cellSize, "cell-size", config.DefaultCellSize, "cell edge in pixels")
	cmd.Flags().IntVar(&spacing, "spacing", config.DefaultSpacing, "gap between cells in pixels")
	cmd.Flags().DurationVar(&frameDuration, "frame", config.DefaultFrameDuration, "time each generation is shown")
	cmd.Flags().IntVarP(&generations, "generations", "n", config.DefaultGenerations, "number of generations")
	cmd.Flags().StringVar(&alive, "alive", config.DefaultAlive, "alive cell appearance (#color or image href)")
	cmd.Flags().StringVar(&dead, "dead", config.DefaultDead, "dead cell appearance (#color or image href)")
	cmd.Flags().StringVar(&mode, "mode", timeline.ModeDiscrete, fmt.Sprintf("timeline mode %v", timeline.Modes()))
	cmd.Flags().Float64Var(&epsilon, "epsilon", timeline.DefaultEpsilon, "cyclic keyframe gap in percent")
	cmd.Flags().IntVar(&workers, "workers", 1, "goroutines per generation step")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = input
	}
	if flags.Changed("output") {
		cfg.Output = output
	}
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("cols") {
		cfg.Cols = cols
	}
	if flags.Changed("cell-size") {
		cfg.Layout.CellSize = cellSize
	}
	if flags.Changed("spacing") {
		cfg.Layout.Spacing = spacing
	}
	if flags.Changed("frame") {
		cfg.FrameDuration = frameDuration
	}
	if flags.Changed("generations") {
		cfg.Generations = generations
	}
	if flags.Changed("alive") {
		cfg.Layout.Alive = alive
	}
	if flags.Changed("dead") {
		cfg.Layout.Dead = dead
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon = epsilon
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	return cfg, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := pipeline.Render(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d generations of %dx%d, %dx%d px, %s backend, %s long (%s)\n",
		res.Output, res.Generations, res.Rows, res.Cols, res.Width, res.Height,
		res.Backend, res.Total, time.Since(start).Round(time.Millisecond))
	return nil
}

// simulate loads the configured input and returns its generation sequence.
func simulate(ctx context.Context, cfg *config.Config, observers ...life.Observer) ([]*life.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initial, err := life.LoadGrid(cfg.Input)
	if err != nil {
		return nil, err
	}
	if err := cfg.CheckShape(initial); err != nil {
		return nil, err
	}
	return pipeline.Simulate(ctx, cfg, initial, observers...)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	seq, err := simulate(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewPlayer(seq, cfg.FrameDuration, loop, viz.GetTheme(theme)))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ms := metrics.Defaults()
	seq, err := simulate(cmd.Context(), cfg, metrics.Observers(ms)...)
	if err != nil {
		return err
	}

	pops := life.Populations(seq)
	fmt.Println(viz.PopulationPlot(pops, fmt.Sprintf("live cells per generation (%s)", cfg.Input)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.3f\n", m.Name(), m.Value())
	}
	return w.Flush()
}

func runSeed(cmd *cobra.Command, args []string) error {
	path := config.DefaultInput
	if len(args) > 0 {
		path = args[0]
	}

	g, err := life.Random(rows, cols, density, seed)
	if err != nil {
		return err
	}
	if err := life.SaveGrid(path, g); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %dx%d, %d live cells (seed %d)\n", path, g.Rows(), g.Cols(), g.Population(), seed)
	return nil
}
