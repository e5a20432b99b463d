package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOffsets(t *testing.T) {
	tests := []struct {
		name       string
		sizes      []int
		gap        int
		wantPlain  []Interval
		wantGapped []Interval
	}{
		{
			name:       "single track",
			sizes:      []int{1},
			gap:        0,
			wantPlain:  []Interval{{0, 1}},
			wantGapped: []Interval{{0, 1}},
		},
		{
			name:       "even gap",
			sizes:      []int{3, 2, 4},
			gap:        2,
			wantPlain:  []Interval{{0, 3}, {5, 7}, {9, 13}},
			wantGapped: []Interval{{-1, 4}, {4, 8}, {8, 14}},
		},
		{
			name:       "odd gap puts the larger half after",
			sizes:      []int{1, 1},
			gap:        3,
			wantPlain:  []Interval{{0, 1}, {4, 5}},
			wantGapped: []Interval{{-1, 3}, {3, 7}},
		},
		{
			name:       "unit gap",
			sizes:      []int{2, 5},
			gap:        1,
			wantPlain:  []Interval{{0, 2}, {3, 8}},
			wantGapped: []Interval{{0, 3}, {3, 9}},
		},
		{
			name:       "zero-size track",
			sizes:      []int{0, 2},
			gap:        0,
			wantPlain:  []Interval{{0, 0}, {0, 2}},
			wantGapped: []Interval{{0, 0}, {0, 2}},
		},
		{
			name:       "no tracks",
			sizes:      nil,
			gap:        1,
			wantPlain:  []Interval{},
			wantGapped: []Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plain, gapped := Offsets(tt.sizes, tt.gap)
			if diff := cmp.Diff(tt.wantPlain, plain); diff != "" {
				t.Errorf("plain offsets mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantGapped, gapped); diff != "" {
				t.Errorf("gapped offsets mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOffsetsContiguity(t *testing.T) {
	sizeSets := [][]int{
		{1},
		{1, 1, 1},
		{0, 7, 2, 0, 9},
		{12, 3, 5, 1},
	}
	for _, sizes := range sizeSets {
		for gap := 0; gap <= 5; gap++ {
			plain, gapped := Offsets(sizes, gap)
			for i := range sizes {
				if plain[i].Len() != sizes[i] {
					t.Errorf("sizes %v gap %d: plain[%d].Len() = %d, want %d", sizes, gap, i, plain[i].Len(), sizes[i])
				}
				if gapped[i].Len() != sizes[i]+gap {
					t.Errorf("sizes %v gap %d: gapped[%d].Len() = %d, want %d", sizes, gap, i, gapped[i].Len(), sizes[i]+gap)
				}
				if i > 0 && gapped[i-1].End != gapped[i].Start {
					t.Errorf("sizes %v gap %d: gapped[%d].End = %d, gapped[%d].Start = %d", sizes, gap, i-1, gapped[i-1].End, i, gapped[i].Start)
				}
			}
			if gap == 0 {
				if diff := cmp.Diff(plain, gapped); diff != "" {
					t.Errorf("sizes %v: zero gap should leave offsets unchanged:\n%s", sizes, diff)
				}
			}
		}
	}
}

func TestOffsetsPanics(t *testing.T) {
	mustPanic(t, "negative gap", func() { Offsets([]int{1}, -1) })
	mustPanic(t, "negative size", func() { Offsets([]int{1, -2}, 0) })
}
