// Package metrics summarises grown trees.
//
// Each [Metric] observes a tree's events in order. [Collect] feeds one tree
// through a set of metrics and returns their values; the stats command runs
// it across many seeds.
package metrics

import (
	"math"

	"github.com/san-kum/bonsai/internal/bonsai"
)

type Metric interface {
	Name() string
	Observe(ev bonsai.Event)
	Value() float64
	Reset()
}

type Sample struct {
	Name  string
	Value float64
}

// Default returns a fresh set of the standard tree metrics.
func Default() []Metric {
	return []Metric{
		NewCells(),
		NewHeight(),
		NewSpread(),
		NewLeafRatio(),
		NewShoots(),
	}
}

// Collect resets ms, observes every event of tree and returns the values in
// the order of ms.
func Collect(tree *bonsai.Tree, ms ...Metric) []Sample {
	out := make([]Sample, len(ms))
	for i, m := range ms {
		m.Reset()
		for _, ev := range tree.Events {
			m.Observe(ev)
		}
		out[i] = Sample{Name: m.Name(), Value: m.Value()}
	}
	return out
}

// Cells counts painted events.
type Cells struct {
	n int
}

func NewCells() *Cells { return &Cells{} }

func (c *Cells) Name() string { return "cells" }

func (c *Cells) Observe(bonsai.Event) { c.n++ }

func (c *Cells) Value() float64 { return float64(c.n) }

func (c *Cells) Reset() { c.n = 0 }

// extent tracks the min and max of one coordinate.
type extent struct {
	lo, hi int
	seen   bool
}

func (e *extent) add(v int) {
	if !e.seen {
		e.lo, e.hi, e.seen = v, v, true
		return
	}
	e.lo = min(e.lo, v)
	e.hi = max(e.hi, v)
}

func (e *extent) size() float64 {
	if !e.seen {
		return 0
	}
	return float64(e.hi - e.lo + 1)
}

// Height is the number of rows the tree covers.
type Height struct {
	rows extent
}

func NewHeight() *Height { return &Height{} }

func (h *Height) Name() string { return "height" }

func (h *Height) Observe(ev bonsai.Event) { h.rows.add(ev.Pos.Y) }

func (h *Height) Value() float64 { return h.rows.size() }

func (h *Height) Reset() { h.rows = extent{} }

// Spread is the number of columns the tree covers, counting the full
// width of each glyph.
type Spread struct {
	cols extent
}

func NewSpread() *Spread { return &Spread{} }

func (s *Spread) Name() string { return "spread" }

func (s *Spread) Observe(ev bonsai.Event) {
	s.cols.add(ev.Pos.X)
	if n := len([]rune(ev.Glyph)); n > 1 {
		s.cols.add(ev.Pos.X + n - 1)
	}
}

func (s *Spread) Value() float64 { return s.cols.size() }

func (s *Spread) Reset() { s.cols = extent{} }

// LeafRatio is the fraction of events drawn with the leaf glyph.
type LeafRatio struct {
	leaves, total int
}

func NewLeafRatio() *LeafRatio { return &LeafRatio{} }

func (l *LeafRatio) Name() string { return "leaf_ratio" }

func (l *LeafRatio) Observe(ev bonsai.Event) {
	l.total++
	if ev.Glyph == bonsai.LeafGlyph {
		l.leaves++
	}
}

func (l *LeafRatio) Value() float64 {
	if l.total == 0 {
		return 0
	}
	return float64(l.leaves) / float64(l.total)
}

func (l *LeafRatio) Reset() { l.leaves, l.total = 0, 0 }

// Shoots is the highest shoot count any event reports.
type Shoots struct {
	max int
}

func NewShoots() *Shoots { return &Shoots{} }

func (s *Shoots) Name() string { return "shoots" }

func (s *Shoots) Observe(ev bonsai.Event) { s.max = max(s.max, ev.Shoots) }

func (s *Shoots) Value() float64 { return float64(s.max) }

func (s *Shoots) Reset() { s.max = 0 }

// Summary holds the spread of one metric across several trees.
type Summary struct {
	Name   string    `json:"name"`
	Min    float64   `json:"min"`
	Max    float64   `json:"max"`
	Mean   float64   `json:"mean"`
	StdDev float64   `json:"stddev"`
	Values []float64 `json:"values"`
}

// Summarize folds per-tree samples into one summary per metric name. Each
// element of runs must list the same metrics in the same order.
func Summarize(runs [][]Sample) []Summary {
	if len(runs) == 0 {
		return nil
	}
	out := make([]Summary, len(runs[0]))
	for i, s := range runs[0] {
		out[i] = Summary{Name: s.Name, Min: math.Inf(1), Max: math.Inf(-1)}
	}
	for _, run := range runs {
		for i, s := range run {
			sum := &out[i]
			sum.Values = append(sum.Values, s.Value)
			sum.Min = math.Min(sum.Min, s.Value)
			sum.Max = math.Max(sum.Max, s.Value)
			sum.Mean += s.Value
		}
	}
	for i := range out {
		sum := &out[i]
		n := float64(len(sum.Values))
		sum.Mean /= n
		var sq float64
		for _, v := range sum.Values {
			sq += (v - sum.Mean) * (v - sum.Mean)
		}
		sum.StdDev = math.Sqrt(sq / n)
	}
	return out
}
