package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/bonsai/internal/config"
	"github.com/san-kum/bonsai/internal/viz"
)

var (
	live       bool
	interval   float64
	infinite   bool
	wait       float64
	msg        string
	baseType   int
	life       int
	multiplier int
	seed       int64
	verbose    bool
	printMode  bool
	configFile string
	preset     string
	// stats
	runs        int
	statsWidth  int
	statsHeight int
	statsJSON   bool
	// export
	exportWidth  int
	exportHeight int
	exportScale  float64
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, "bonsai:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bonsai",
		Short:         "grow a bonsai tree in your terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: runGrow,
	}

	f := rootCmd.PersistentFlags()
	f.BoolVarP(&live, "live", "l", false, "live mode: show each step of growth")
	f.Float64VarP(&interval, "time", "t", config.DefaultTime, "in live mode, wait TIME secs between steps of growth")
	f.BoolVarP(&infinite, "infinite", "i", false, "infinite mode: keep growing trees")
	f.Float64VarP(&wait, "wait", "w", config.DefaultWait, "in infinite mode, wait TIME between each tree generation")
	f.StringVarP(&msg, "message", "m", "", "attach message next to the tree")
	f.IntVarP(&baseType, "base", "b", config.DefaultBase, "ascii-art plant base to use, 0 is none")
	f.IntVarP(&life, "life", "L", config.DefaultLife, "life; higher grows bigger trees")
	f.IntVarP(&multiplier, "multiplier", "M", config.DefaultMultiplier, "branch multiplier; higher grows more branches")
	f.Int64VarP(&seed, "seed", "s", 0, "seed random number generator, 0 picks one from the clock")
	f.BoolVarP(&verbose, "verbose", "v", false, "show growth details and debug logs")
	f.BoolVarP(&printMode, "print", "p", false, "print tree to terminal when finished")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use a preset configuration")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "replay growth in a full screen viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg, cfg.ResolveSeed())
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "grow many trees and summarise their shape",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&runs, "runs", 20, "number of trees to grow")
	statsCmd.Flags().IntVar(&statsWidth, "width", 80, "screen width in cells")
	statsCmd.Flags().IntVar(&statsHeight, "height", 24, "screen height in cells")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print the summary as json")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	exportCmd := &cobra.Command{
		Use:   "export [file.svg]",
		Short: "grow a tree and save it as an svg image",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportCmd.Flags().IntVar(&exportWidth, "width", 80, "canvas width in cells")
	exportCmd.Flags().IntVar(&exportHeight, "height", 24, "canvas height in cells")
	exportCmd.Flags().Float64Var(&exportScale, "scale", 16, "cell height in pixels")

	rootCmd.AddCommand(tuiCmd, statsCmd, presetsCmd, configCmd, exportCmd)
	return rootCmd
}

// resolveConfig layers defaults, the preset, the config file and explicitly
// set flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("live") {
		cfg.Live = live
	}
	if flags.Changed("time") {
		cfg.Time = interval
	}
	if flags.Changed("infinite") {
		cfg.Infinite = infinite
	}
	if flags.Changed("wait") {
		cfg.Wait = wait
	}
	if flags.Changed("message") {
		cfg.Message = msg
	}
	if flags.Changed("base") {
		cfg.Base = baseType
	}
	if flags.Changed("life") {
		cfg.Life = life
	}
	if flags.Changed("multiplier") {
		cfg.Multiplier = multiplier
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}
	if flags.Changed("print") {
		cfg.Print = printMode
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
