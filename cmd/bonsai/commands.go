package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/bonsai/internal/config"
	"github.com/san-kum/bonsai/internal/export"
	"github.com/san-kum/bonsai/internal/metrics"
)

// runStats grows one tree per seed, starting at the resolved seed, and
// prints a summary of each metric plus a plot of the cell counts.
func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", runs)
	}
	growth := cfg.Growth(statsWidth, statsHeight)

	logger := loggerFromContext(cmd.Context())
	first := cfg.ResolveSeed()
	logger.Infof("Growing %d trees on %dx%d from seed %d", runs, statsWidth, statsHeight, first)

	prog := newProgress(logger)
	ens := &metrics.Ensemble{Config: growth, Runs: runs, SeedStart: first}
	samples, err := ens.Run(cmd.Context())
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Grew %d trees", runs))

	summaries := metrics.Summarize(samples)
	if statsJSON {
		return writeStatsJSON(first, summaries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tMIN\tMAX\tMEAN\tSTDDEV")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\n", s.Name, s.Min, s.Max, s.Mean, s.StdDev)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, s := range summaries {
		if s.Name != "cells" || len(s.Values) < 2 {
			continue
		}
		graph := asciigraph.Plot(s.Values,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("cells per tree"),
		)
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}

type statsReport struct {
	SeedStart int64             `json:"seed_start"`
	Runs      int               `json:"runs"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Metrics   []metrics.Summary `json:"metrics"`
}

func writeStatsJSON(first int64, summaries []metrics.Summary) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(statsReport{
		SeedStart: first,
		Runs:      runs,
		Width:     statsWidth,
		Height:    statsHeight,
		Metrics:   summaries,
	})
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLIFE\tMULT\tBASE\tLIVE\tINFINITE")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%v\t%v\n", name, p.Life, p.Multiplier, p.Base, p.Live, p.Infinite)
	}
	return w.Flush()
}

// writeConfig saves the effective configuration to the given path, or
// prints it when no path is given.
func writeConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := config.Save(args[0], cfg); err != nil {
			return err
		}
		loggerFromContext(cmd.Context()).Infof("Wrote %s", args[0])
		return nil
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// exportSVG grows one tree and writes it as an SVG image.
func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	path := args[0]
	if !strings.EqualFold(filepath.Ext(path), ".svg") {
		path += ".svg"
	}

	canvas, err := paintTree(cmd.Context(), cfg, cfg.ResolveSeed(), exportWidth, exportHeight)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(export.CanvasToSVG(canvas, exportScale)), 0644); err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Infof("Wrote %s", path)
	return nil
}
