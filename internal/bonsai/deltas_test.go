package bonsai

import "testing"

func TestDeltas(t *testing.T) {
	tests := []struct {
		name       string
		kind       Kind
		life, age  int
		multiplier int
		draws      []int
		dx, dy     int
	}{
		{"trunk root flare", Trunk, 30, 1, 5, []int{0}, -1, 0},
		{"trunk low life", Trunk, 3, 20, 5, []int{2}, 1, 0},
		{"trunk middle climb", Trunk, 28, 4, 5, []int{0}, -2, -1},
		{"trunk middle flat", Trunk, 27, 5, 5, []int{9}, 2, 0},
		{"trunk middle center", Trunk, 27, 5, 5, []int{5}, 0, 0},
		{"trunk mature climb", Trunk, 10, 20, 5, []int{3, 0}, -1, -1},
		{"trunk mature rest", Trunk, 10, 20, 5, []int{2, 2}, 1, 0},
		{"shoot left up", ShootLeft, 10, 5, 5, []int{0, 0}, -2, -1},
		{"shoot left down", ShootLeft, 10, 5, 5, []int{9, 9}, 1, 1},
		{"shoot left level", ShootLeft, 10, 5, 5, []int{5, 6}, 0, 0},
		{"shoot right up", ShootRight, 10, 5, 5, []int{0, 0}, 2, -1},
		{"shoot right down", ShootRight, 10, 5, 5, []int{8, 9}, -1, 1},
		{"dying far left", Dying, 5, 5, 5, []int{1, 0}, -3, -1},
		{"dying far right", Dying, 5, 5, 5, []int{8, 14}, 3, 0},
		{"dying drop", Dying, 5, 5, 5, []int{9, 7}, 0, 1},
		{"dead up", Dead, 2, 5, 5, []int{2, 1}, 0, -1},
		{"dead level", Dead, 2, 5, 5, []int{6, 0}, -1, 0},
		{"dead down", Dead, 2, 5, 5, []int{7, 2}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &seqRand{vals: tt.draws}
			dx, dy := Deltas(tt.kind, tt.life, tt.age, tt.multiplier, rng)
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Deltas() = (%d, %d), want (%d, %d)", dx, dy, tt.dx, tt.dy)
			}
			if rng.i != len(tt.draws) {
				t.Errorf("consumed %d draws, want %d", rng.i, len(tt.draws))
			}
		})
	}
}

// tallyDx enumerates every outcome of the horizontal draw and counts the
// resulting dx values.
func tallyDx(kind Kind, life, age, multiplier, lead, n int) map[int]int {
	counts := make(map[int]int)
	for v := 0; v < n; v++ {
		var draws []int
		if lead >= 0 {
			draws = append(draws, lead)
		}
		draws = append(draws, v)
		dx, _ := Deltas(kind, life, age, multiplier, &seqRand{vals: draws})
		counts[dx]++
	}
	return counts
}

func TestDeltasWeights(t *testing.T) {
	tests := []struct {
		name string
		got  map[int]int
		want map[int]int
	}{
		{
			name: "trunk middle",
			got:  tallyDx(Trunk, 27, 5, 5, -1, 10),
			want: map[int]int{-2: 1, -1: 3, 0: 2, 1: 3, 2: 1},
		},
		{
			name: "shoot left",
			got:  tallyDx(ShootLeft, 10, 5, 5, 4, 10),
			want: map[int]int{-2: 2, -1: 4, 0: 3, 1: 1},
		},
		{
			name: "shoot right",
			got:  tallyDx(ShootRight, 10, 5, 5, 4, 10),
			want: map[int]int{2: 2, 1: 4, 0: 3, -1: 1},
		},
		{
			name: "dying",
			got:  tallyDx(Dying, 5, 5, 5, 4, 15),
			want: map[int]int{-3: 1, -2: 2, -1: 3, 0: 3, 1: 3, 2: 2, 3: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.got) != len(tt.want) {
				t.Fatalf("got %d distinct dx values, want %d (%v)", len(tt.got), len(tt.want), tt.got)
			}
			for dx, n := range tt.want {
				if tt.got[dx] != n {
					t.Errorf("weight of dx=%d is %d, want %d", dx, tt.got[dx], n)
				}
			}
		})
	}
}

func TestDeltasVerticalWeights(t *testing.T) {
	tests := []struct {
		kind Kind
		want map[int]int
	}{
		{ShootLeft, map[int]int{-1: 2, 0: 6, 1: 2}},
		{ShootRight, map[int]int{-1: 2, 0: 6, 1: 2}},
		{Dying, map[int]int{-1: 2, 0: 7, 1: 1}},
		{Dead, map[int]int{-1: 3, 0: 4, 1: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			counts := make(map[int]int)
			for v := 0; v < 10; v++ {
				_, dy := Deltas(tt.kind, 5, 5, 5, &seqRand{vals: []int{v, 0}})
				counts[dy]++
			}
			for dy, n := range tt.want {
				if counts[dy] != n {
					t.Errorf("weight of dy=%d is %d, want %d", dy, counts[dy], n)
				}
			}
		})
	}
}
