package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/bonsai/internal/base"
	"github.com/san-kum/bonsai/internal/bonsai"
	"github.com/san-kum/bonsai/internal/config"
	"github.com/san-kum/bonsai/internal/message"
	"github.com/san-kum/bonsai/internal/render"
	"github.com/san-kum/bonsai/internal/terminal"
	"github.com/san-kum/bonsai/internal/viz"
)

// untilKey waits for a key press with no timeout.
const untilKey = time.Duration(math.MaxInt64)

func runGrow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	s := cfg.ResolveSeed()
	logger.Debug("growing", "seed", s, "life", cfg.Life, "multiplier", cfg.Multiplier, "base", cfg.Base)

	if cfg.Print {
		w, h := terminal.TerminalSize()
		return printTree(ctx, os.Stdout, cfg, s, w, h)
	}
	return growInteractive(ctx, cfg, s)
}

// printTree paints one tree into a canvas and writes it to w.
func printTree(ctx context.Context, w io.Writer, cfg *config.Config, seed int64, width, height int) error {
	canvas, err := paintTree(ctx, cfg, seed, width, height)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, canvas.Render())
	return err
}

// paintTree grows one tree from seed and paints it, with its base and
// message, into a fresh canvas.
func paintTree(ctx context.Context, cfg *config.Config, seed int64, width, height int) (*viz.Canvas, error) {
	canvas := viz.NewCanvas(width, height)
	tree, err := growOnto(canvas, cfg, bonsai.NewRand(seed), width, height)
	if err != nil {
		return nil, err
	}

	r := render.New(canvas, nil, render.Options{Verbose: cfg.Verbose})
	if cfg.Verbose {
		r.Header(tree.Bounds)
	}
	if _, err := r.Render(ctx, tree.Events); err != nil {
		return nil, err
	}
	message.Draw(canvas, cfg.Message, width, height)

	loggerFromContext(ctx).Debug("painted tree", "cells", len(tree.Events), "branches", tree.State.Branches)
	return canvas, nil
}

// growOnto draws the base and grows a tree sized to the screen.
func growOnto(s render.Screen, cfg *config.Config, rng bonsai.Rand, width, height int) (*bonsai.Tree, error) {
	growth := cfg.Growth(width, height)
	if err := growth.Validate(); err != nil {
		return nil, fmt.Errorf("screen %dx%d: %w", width, height, err)
	}
	base.Draw(s, cfg.Base, width, height)
	return bonsai.Grow(growth, rng), nil
}

// growInteractive draws trees on the terminal until a key press, the end of
// a single run, or ctx ends it. Nothing may be logged while the terminal is
// held in raw mode.
func growInteractive(ctx context.Context, cfg *config.Config, seed int64) (err error) {
	term, err := terminal.Open()
	if err != nil {
		return err
	}

	var trees []*bonsai.Tree
	defer func() {
		if cerr := term.Close(); err == nil {
			err = cerr
		}
		logger := loggerFromContext(ctx)
		for i, t := range trees {
			logger.Debug("tree", "n", i+1, "cells", len(t.Events), "branches", t.State.Branches, "shoots", t.State.Shoots)
		}
	}()

	if err := term.Raw(); err != nil {
		return err
	}
	if err := term.Prepare(); err != nil {
		return err
	}

	rng := bonsai.NewRand(seed)
	r := render.New(term, term, render.Options{
		Live:     cfg.Live,
		Interval: cfg.Interval(),
		Verbose:  cfg.Verbose,
	})

	for {
		w, h, err := term.Size()
		if err != nil {
			return err
		}
		term.Clear()
		tree, err := growOnto(term, cfg, rng, w, h)
		if err != nil {
			return err
		}
		trees = append(trees, tree)

		if cfg.Verbose {
			r.Header(tree.Bounds)
		}
		done, err := r.Render(ctx, tree.Events)
		if err != nil {
			return err
		}
		if !done {
			return nil
		}
		message.Draw(term, cfg.Message, w, h)
		if err := term.Flush(); err != nil {
			return err
		}

		pause := untilKey
		if cfg.Infinite {
			pause = cfg.WaitDuration()
		} else if !terminal.KeysSupported {
			return nil
		}
		elapsed, err := r.Wait(ctx, pause)
		if err != nil {
			return err
		}
		if !elapsed || !cfg.Infinite {
			return nil
		}
	}
}
