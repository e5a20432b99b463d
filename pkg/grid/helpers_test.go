package grid

import "testing"

// testItem is a fixed-size item with optional spans and overrides.
type testItem struct {
	w, h       int
	rows, cols int
	justify    *Justify
	align      *Align
}

func (it testItem) Size() (int, int) { return it.w, it.h }

func (it testItem) Span() (int, int) {
	return max(it.rows, 1), max(it.cols, 1)
}

func (it testItem) Justify() (Justify, bool) {
	if it.justify == nil {
		return 0, false
	}
	return *it.justify, true
}

func (it testItem) Align() (Align, bool) {
	if it.align == nil {
		return 0, false
	}
	return *it.align, true
}

func blocksOf(items ...testItem) []*Block {
	blocks := make([]*Block, len(items))
	for i, it := range items {
		blocks[i] = NewBlock(i, it, Sides{})
	}
	return blocks
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
