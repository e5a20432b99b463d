package grid

// Tracks holds the resolved sizes and offset tables of a grid.
type Tracks struct {
	Rows    []int // Height of each row
	Columns []int // Width of each column

	RowGap, ColumnGap int

	RowOffsets       []Interval // Plain row intervals
	ColumnOffsets    []Interval // Plain column intervals
	RowGapOffsets    []Interval // Row intervals extended into half gaps
	ColumnGapOffsets []Interval // Column intervals extended into half gaps
}

// Width returns the width of the content area.
func (t Tracks) Width() int {
	if len(t.ColumnOffsets) == 0 {
		return 0
	}
	return t.ColumnOffsets[len(t.ColumnOffsets)-1].End
}

// Height returns the height of the content area.
func (t Tracks) Height() int {
	if len(t.RowOffsets) == 0 {
		return 0
	}
	return t.RowOffsets[len(t.RowOffsets)-1].End
}

// axis selects the row or column view of a block.
type axis struct {
	start func(*Block) int
	span  func(*Block) int
	size  func(*Block) int
}

var (
	rowAxis = axis{
		start: func(b *Block) int { return b.Row },
		span:  func(b *Block) int { return b.RowSpan },
		size:  func(b *Block) int { return b.IntrinsicHeight },
	}
	columnAxis = axis{
		start: func(b *Block) int { return b.Column },
		span:  func(b *Block) int { return b.ColumnSpan },
		size:  func(b *Block) int { return b.IntrinsicWidth },
	}
)

// Size resolves row heights and column widths for placed blocks, builds
// the offset tables, and writes every block's final Width and Height.
//
// Each track starts at size 1 and grows to the largest single-span block
// it holds. A spanning block whose intrinsic size exceeds its tracks plus
// the gaps between them spreads the difference one cell at a time,
// round-robin from its first track. Spanning blocks are processed in slice
// order.
func Size(blocks []*Block, rows, columns, rowGap, columnGap int) Tracks {
	for _, b := range blocks {
		b.check()
	}
	t := Tracks{
		Rows:      resolve(blocks, rows, rowGap, rowAxis),
		Columns:   resolve(blocks, columns, columnGap, columnAxis),
		RowGap:    rowGap,
		ColumnGap: columnGap,
	}
	t.RowOffsets, t.RowGapOffsets = Offsets(t.Rows, rowGap)
	t.ColumnOffsets, t.ColumnGapOffsets = Offsets(t.Columns, columnGap)

	for _, b := range blocks {
		b.Width = spanSize(t.Columns, b.Column, b.ColumnSpan, columnGap)
		b.Height = spanSize(t.Rows, b.Row, b.RowSpan, rowGap)
	}
	return t
}

func resolve(blocks []*Block, n, gap int, a axis) []int {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = 1
	}

	for _, b := range blocks {
		if a.span(b) == 1 {
			i := a.start(b)
			sizes[i] = max(sizes[i], a.size(b))
		}
	}

	for _, b := range blocks {
		span := a.span(b)
		if span == 1 {
			continue
		}
		start := a.start(b)
		diff := a.size(b) - spanSize(sizes, start, span, gap)
		for i := 0; i < diff; i++ {
			sizes[start+i%span]++
		}
	}
	return sizes
}
