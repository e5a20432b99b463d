package grid

// Result is the outcome of a layout run.
type Result struct {
	Rows, Columns int
	Tracks        Tracks

	// Blocks holds one block per input item, in input order, followed by
	// the placeholders.
	Blocks []*Block

	// Lines is nil unless Options.Lines was set.
	Lines *LineMap

	Options Options
}

// Layout places, sizes and positions items and, when requested,
// synthesizes the separator lines.
//
// Block IDs are the indices of the items. Options are not validated here;
// invalid values panic like any other contract violation.
func Layout(items []Item, opts Options) *Result {
	blocks := make([]*Block, len(items))
	for i, item := range items {
		blocks[i] = NewBlock(i, item, opts.Padding)
	}

	p := Place(blocks, opts.Flow, opts.Limit)
	t := Size(p.Blocks, p.Rows, p.Columns, opts.RowGap, opts.ColumnGap)
	for _, b := range p.Blocks {
		position(b, t, opts)
	}

	res := &Result{
		Rows:    p.Rows,
		Columns: p.Columns,
		Tracks:  t,
		Blocks:  p.Blocks,
		Options: opts,
	}
	if opts.Lines {
		lm := Synthesize(p.Blocks, t, p.Rows, p.Columns, opts.Hints)
		res.Lines = &lm
	}
	return res
}

// Visible returns the blocks whose content should be composited: all
// blocks when Options.Placeholders is set, otherwise only the caller's.
func (r *Result) Visible() []*Block {
	if r.Options.Placeholders {
		return r.Blocks
	}
	visible := make([]*Block, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		if !b.IsPlaceholder() {
			visible = append(visible, b)
		}
	}
	return visible
}

// Block returns the block created for the item at index id.
func (r *Result) Block(id int) *Block {
	b := r.Blocks[id]
	if b.ID != id {
		panic("grid: block order does not match item order")
	}
	return b
}

// position sets a block's content origin. The free space in the block is
// its final size minus the content and padding; justification and
// alignment decide how much of it goes before the content.
func position(b *Block, t Tracks, opts Options) {
	justify, align := opts.Justify, opts.Align
	if j, ok := b.Item.(Justifier); ok {
		if v, set := j.Justify(); set {
			justify = v
		}
	}
	if a, ok := b.Item.(Aligner); ok {
		if v, set := a.Align(); set {
			align = v
		}
	}

	w, h := b.ContentSize()
	freeX := b.Width - w - opts.Padding.Left - opts.Padding.Right
	freeY := b.Height - h - opts.Padding.Top - opts.Padding.Bottom

	b.X = t.ColumnOffsets[b.Column].Start + shift(int(justify), freeX) + opts.Padding.Left
	b.Y = t.RowOffsets[b.Row].Start + shift(int(align), freeY) + opts.Padding.Top
}

// shift returns the leading space for a start (0), center (1) or end (2)
// placement of free cells.
func shift(mode, free int) int {
	switch mode {
	case 1:
		return free / 2
	case 2:
		return free
	default:
		return 0
	}
}
