package grid

import "fmt"

// Placement is the result of [Place].
type Placement struct {
	Rows, Columns int
	// Blocks holds the input blocks in their original order followed by
	// the placeholders, which are appended in flow order.
	Blocks []*Block
}

// cell addresses the grid in flow-relative terms: line is the axis that
// grows without bound, slot the axis bounded by the track limit.
type cell struct{ line, slot int }

// Place assigns a row and column to every block.
//
// Blocks are placed in input order. A cursor starts at the first cell and
// scans forward in flow order: when a block's footprint would run past the
// track limit the cursor wraps to the start of the next line, and when it
// overlaps an occupied cell the cursor advances by one. The cursor never
// moves backward, so holes left behind a wrap stay empty. Every cell of the
// resulting rectangle not covered by a block is filled with a 1x1
// placeholder.
//
// The limit is widened to the largest span on the bounded axis so every
// block fits on some line. With no blocks, Place returns one full line of
// placeholders. FlowColumn is the transpose of FlowRow.
func Place(blocks []*Block, flow Flow, limit int) Placement {
	if limit < 1 {
		panic(fmt.Sprintf("grid: non-positive track limit %d", limit))
	}
	for _, b := range blocks {
		b.check()
		if _, s := spans(b, flow); s > limit {
			limit = s
		}
	}

	occupied := make(map[cell]bool)
	line, slot, lines := 0, 0, 1
	for _, b := range blocks {
		ls, ss := spans(b, flow)
		for {
			if slot+ss > limit {
				line, slot = line+1, 0
				continue
			}
			if overlaps(occupied, line, slot, ls, ss) {
				slot++
				continue
			}
			break
		}
		for l := line; l < line+ls; l++ {
			for s := slot; s < slot+ss; s++ {
				occupied[cell{l, s}] = true
			}
		}
		b.Row, b.Column = coords(flow, line, slot)
		lines = max(lines, line+ls)
		slot += ss
	}

	out := make([]*Block, len(blocks), len(blocks)+lines*limit-len(occupied))
	copy(out, blocks)
	for l := 0; l < lines; l++ {
		for s := 0; s < limit; s++ {
			if !occupied[cell{l, s}] {
				out = append(out, newPlaceholder(coords(flow, l, s)))
			}
		}
	}

	rows, columns := coords(flow, lines, limit)
	return Placement{Rows: rows, Columns: columns, Blocks: out}
}

// spans returns a block's span along the line and slot axes.
func spans(b *Block, flow Flow) (line, slot int) {
	if flow == FlowColumn {
		return b.ColumnSpan, b.RowSpan
	}
	return b.RowSpan, b.ColumnSpan
}

// coords maps a flow-relative cell back to (row, column).
func coords(flow Flow, line, slot int) (row, column int) {
	if flow == FlowColumn {
		return slot, line
	}
	return line, slot
}

func overlaps(occupied map[cell]bool, line, slot, ls, ss int) bool {
	for l := line; l < line+ls; l++ {
		for s := slot; s < slot+ss; s++ {
			if occupied[cell{l, s}] {
				return true
			}
		}
	}
	return false
}
