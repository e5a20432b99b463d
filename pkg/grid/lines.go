package grid

import (
	"cmp"
	"maps"
	"slices"
)

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Segment is an axis-aligned line from From to To, inclusive, with From
// never after To.
type Segment struct {
	From, To Point
}

// LineMap holds the separators of a grid.
//
// Every endpoint of every segment has an entry in Intersects.
type LineMap struct {
	Horizontal []Segment
	Vertical   []Segment
	Intersects map[Point]Junction
}

// box is the separator rectangle around one block.
type box struct {
	left, right, top, bottom int
}

// Synthesize derives the separator lines around placed and sized blocks.
//
// Each block contributes its four boundary lines. Boundaries between tracks
// sit on the last cell of the gapped interval, which is the middle of the
// gap, so neighbors share them. Boundaries on the outer edge of the grid sit
// hints cells outside the content instead.
//
// Every corner records the two directions of the block's own boundary
// lines; flags from all blocks meeting at a point are merged. A block that
// spans several tracks also records straight pass-through flags where its
// sides cross the interior gap lines of its span, so the separator ending
// there joins its side instead of forming a corner.
func Synthesize(blocks []*Block, t Tracks, rows, columns int, hints Sides) LineMap {
	flags := make(map[Point]Direction)
	horizontal := make(map[Segment]struct{})
	vertical := make(map[Segment]struct{})

	for _, b := range blocks {
		bx := boundary(b, t, rows, columns, hints)
		tl := Point{bx.left, bx.top}
		tr := Point{bx.right, bx.top}
		bl := Point{bx.left, bx.bottom}
		br := Point{bx.right, bx.bottom}

		horizontal[Segment{tl, tr}] = struct{}{}
		horizontal[Segment{bl, br}] = struct{}{}
		vertical[Segment{tl, bl}] = struct{}{}
		vertical[Segment{tr, br}] = struct{}{}

		flags[tl] |= Right | Down
		flags[tr] |= Left | Down
		flags[bl] |= Up | Right
		flags[br] |= Up | Left

		for r := b.Row; r < b.RowEnd()-1; r++ {
			y := t.RowGapOffsets[r].End - 1
			flags[Point{bx.left, y}] |= Up | Down
			flags[Point{bx.right, y}] |= Up | Down
		}
		for c := b.Column; c < b.ColumnEnd()-1; c++ {
			x := t.ColumnGapOffsets[c].End - 1
			flags[Point{x, bx.top}] |= Left | Right
			flags[Point{x, bx.bottom}] |= Left | Right
		}
	}

	intersects := make(map[Point]Junction, len(flags))
	for p, d := range flags {
		if j, ok := Classify(d); ok {
			intersects[p] = j
		}
	}

	return LineMap{
		Horizontal: sortSegments(horizontal),
		Vertical:   sortSegments(vertical),
		Intersects: intersects,
	}
}

// boundary computes the separator rectangle of a block, trimming interior
// sides to the gap middle and pushing outer sides out by the hints.
func boundary(b *Block, t Tracks, rows, columns int, hints Sides) box {
	var bx box
	if b.Column == 0 {
		bx.left = t.ColumnOffsets[b.Column].Start - hints.Left
	} else {
		bx.left = t.ColumnGapOffsets[b.Column].Start - 1
	}
	if last := b.ColumnEnd() - 1; b.ColumnEnd() == columns {
		bx.right = t.ColumnOffsets[last].End - 1 + hints.Right
	} else {
		bx.right = t.ColumnGapOffsets[last].End - 1
	}
	if b.Row == 0 {
		bx.top = t.RowOffsets[b.Row].Start - hints.Top
	} else {
		bx.top = t.RowGapOffsets[b.Row].Start - 1
	}
	if last := b.RowEnd() - 1; b.RowEnd() == rows {
		bx.bottom = t.RowOffsets[last].End - 1 + hints.Bottom
	} else {
		bx.bottom = t.RowGapOffsets[last].End - 1
	}
	return bx
}

// Points returns the intersection points sorted top to bottom, then left
// to right.
func (m LineMap) Points() []Point {
	return slices.SortedFunc(maps.Keys(m.Intersects), comparePoints)
}

func sortSegments(set map[Segment]struct{}) []Segment {
	return slices.SortedFunc(maps.Keys(set), func(a, b Segment) int {
		if c := comparePoints(a.From, b.From); c != 0 {
			return c
		}
		return comparePoints(a.To, b.To)
	})
}

func comparePoints(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
