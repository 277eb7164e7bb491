package metrics

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/san-kum/bonsai/internal/bonsai"
)

var ensembleConfig = bonsai.Config{Life: 32, Multiplier: 5, Width: 80, Height: 24, BaseOffset: 5}

func TestEnsembleMatchesSequential(t *testing.T) {
	e := &Ensemble{Config: ensembleConfig, Runs: 8, SeedStart: 100}
	got, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("got %d runs, want 8", len(got))
	}
	for i, run := range got {
		tree := bonsai.Grow(ensembleConfig, bonsai.NewRand(100+int64(i)))
		want := Collect(tree, Default()...)
		if !reflect.DeepEqual(run, want) {
			t.Errorf("run %d = %v, want %v", i, run, want)
		}
	}
}

func TestEnsembleCustomMetrics(t *testing.T) {
	e := &Ensemble{
		Config:  ensembleConfig,
		Runs:    3,
		Metrics: func() []Metric { return []Metric{NewCells()} },
	}
	got, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for i, run := range got {
		if len(run) != 1 || run[0].Name != "cells" {
			t.Errorf("run %d = %v", i, run)
		}
	}
}

func TestEnsembleErrors(t *testing.T) {
	bad := ensembleConfig
	bad.Multiplier = 0
	if _, err := (&Ensemble{Config: bad, Runs: 2}).Run(context.Background()); !errors.Is(err, bonsai.ErrInvalidMultiplier) {
		t.Errorf("invalid config: got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (&Ensemble{Config: ensembleConfig, Runs: 2}).Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("canceled: got %v", err)
	}
}
