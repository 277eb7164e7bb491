package bonsai

import "fmt"

// seqRand replays a fixed sequence of draws.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	if r.i >= len(r.vals) {
		panic("seqRand: sequence exhausted")
	}
	v := r.vals[r.i]
	r.i++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("seqRand: draw %d out of range [0,%d)", v, n))
	}
	return v
}
