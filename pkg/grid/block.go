package grid

import "fmt"

// PlaceholderID is the ID carried by blocks synthesized during placement.
const PlaceholderID = -1

// Item is anything that can be placed in a grid cell.
type Item interface {
	// Size returns the intrinsic width and height of the item's content.
	Size() (width, height int)
}

// Spanner is implemented by items that cover more than one track.
type Spanner interface {
	Span() (rows, columns int)
}

// Justifier is implemented by items that may override the grid's
// horizontal justification. The boolean reports whether an override is set.
type Justifier interface {
	Justify() (Justify, bool)
}

// Aligner is implemented by items that may override the grid's vertical
// alignment. The boolean reports whether an override is set.
type Aligner interface {
	Align() (Align, bool)
}

// Block is one rectangular unit moving through the layout stages.
//
// Placement fills Row and Column, Sizing fills Width and Height, and
// positioning fills X and Y. Blocks are not modified after positioning.
type Block struct {
	ID   int  // Index of the caller's item, or PlaceholderID
	Item Item // Caller content (nil for placeholders)

	RowSpan, ColumnSpan int // Tracks covered, at least 1

	// IntrinsicWidth and IntrinsicHeight are the content size plus padding.
	IntrinsicWidth, IntrinsicHeight int

	Row, Column   int // Top-left track
	Width, Height int // Final size, spanned tracks plus internal gaps
	X, Y          int // Content origin

	contentWidth, contentHeight int
}

// NewBlock creates a block for item with the given padding applied to its
// intrinsic size. Spans come from [Spanner] when the item implements it.
func NewBlock(id int, item Item, padding Sides) *Block {
	w, h := item.Size()
	b := &Block{
		ID:            id,
		Item:          item,
		RowSpan:       1,
		ColumnSpan:    1,
		contentWidth:  w,
		contentHeight: h,
	}
	if s, ok := item.(Spanner); ok {
		b.RowSpan, b.ColumnSpan = s.Span()
	}
	b.IntrinsicWidth = w + padding.Left + padding.Right
	b.IntrinsicHeight = h + padding.Top + padding.Bottom
	b.check()
	return b
}

func newPlaceholder(row, column int) *Block {
	return &Block{
		ID:         PlaceholderID,
		RowSpan:    1,
		ColumnSpan: 1,
		Row:        row,
		Column:     column,
	}
}

// IsPlaceholder reports whether the block was synthesized by placement.
func (b *Block) IsPlaceholder() bool { return b.ID == PlaceholderID }

// RowEnd returns the first row after the block's footprint.
func (b *Block) RowEnd() int { return b.Row + b.RowSpan }

// ColumnEnd returns the first column after the block's footprint.
func (b *Block) ColumnEnd() int { return b.Column + b.ColumnSpan }

// ContentSize returns the unpadded size of the block's content.
func (b *Block) ContentSize() (width, height int) { return b.contentWidth, b.contentHeight }

func (b *Block) String() string {
	if b.IsPlaceholder() {
		return fmt.Sprintf("placeholder(%d,%d)", b.Row, b.Column)
	}
	return fmt.Sprintf("block %d (%d,%d) span %dx%d", b.ID, b.Row, b.Column, b.RowSpan, b.ColumnSpan)
}

func (b *Block) check() {
	if b.RowSpan < 1 || b.ColumnSpan < 1 {
		panic(fmt.Sprintf("grid: %v has non-positive span %dx%d", b, b.RowSpan, b.ColumnSpan))
	}
	if b.IntrinsicWidth < 0 || b.IntrinsicHeight < 0 {
		panic(fmt.Sprintf("grid: %v has negative size %dx%d", b, b.IntrinsicWidth, b.IntrinsicHeight))
	}
}
