package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/bonsai/internal/bonsai"
)

func ev(x, y int, glyph string, shoots int) bonsai.Event {
	return bonsai.Event{Pos: bonsai.Position{X: x, Y: y}, Glyph: glyph, Shoots: shoots}
}

func TestCollect(t *testing.T) {
	tree := &bonsai.Tree{Events: []bonsai.Event{
		ev(10, 20, "/|\\", 0),
		ev(9, 19, "&", 1),
		ev(12, 17, "&", 2),
		ev(11, 18, "_/", 1),
	}}

	got := Collect(tree, Default()...)
	want := map[string]float64{
		"cells":      4,
		"height":     4,
		"spread":     4, // 9..12
		"leaf_ratio": 0.5,
		"shoots":     2,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for _, s := range got {
		if w, ok := want[s.Name]; !ok || s.Value != w {
			t.Errorf("%s = %v, want %v", s.Name, s.Value, w)
		}
	}
}

func TestCollectResets(t *testing.T) {
	m := NewCells()
	tree := &bonsai.Tree{Events: []bonsai.Event{ev(0, 0, "&", 0)}}
	Collect(tree, m)
	if got := Collect(tree, m)[0].Value; got != 1 {
		t.Errorf("second Collect = %v, want 1", got)
	}
}

func TestEmptyTree(t *testing.T) {
	for _, s := range Collect(&bonsai.Tree{}, Default()...) {
		if s.Value != 0 {
			t.Errorf("%s on empty tree = %v, want 0", s.Name, s.Value)
		}
	}
}

func TestGrownTree(t *testing.T) {
	cfg := bonsai.Config{Life: 32, Multiplier: 5, Width: 80, Height: 24, BaseOffset: 5}
	tree := bonsai.Grow(cfg, bonsai.NewRand(42))
	for _, s := range Collect(tree, Default()...) {
		switch s.Name {
		case "height":
			if s.Value < 1 || s.Value > float64(tree.Bounds.Floor+1) {
				t.Errorf("height = %v outside [1, %d]", s.Value, tree.Bounds.Floor+1)
			}
		case "leaf_ratio":
			if s.Value < 0 || s.Value > 1 {
				t.Errorf("leaf_ratio = %v", s.Value)
			}
		case "cells":
			if int(s.Value) != len(tree.Events) {
				t.Errorf("cells = %v, want %d", s.Value, len(tree.Events))
			}
		}
	}
}

func TestSummarize(t *testing.T) {
	runs := [][]Sample{
		{{Name: "cells", Value: 2}, {Name: "height", Value: 1}},
		{{Name: "cells", Value: 4}, {Name: "height", Value: 1}},
	}
	got := Summarize(runs)
	if len(got) != 2 {
		t.Fatalf("got %d summaries", len(got))
	}
	c := got[0]
	if c.Name != "cells" || c.Min != 2 || c.Max != 4 || c.Mean != 3 || math.Abs(c.StdDev-1) > 1e-9 {
		t.Errorf("cells summary = %+v", c)
	}
	if got[1].StdDev != 0 || len(got[1].Values) != 2 {
		t.Errorf("height summary = %+v", got[1])
	}
	if Summarize(nil) != nil {
		t.Error("Summarize(nil) should be nil")
	}
}
