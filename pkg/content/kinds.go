package content

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/boxgrid/pkg/canvas"
	"github.com/matzehuels/boxgrid/pkg/errors"
	"github.com/matzehuels/boxgrid/pkg/grid"
)

// Text is a leaf holding literal, possibly multi-line, text.
type Text string

func (t Text) Canvas(context.Context, Composer) (*canvas.Canvas, error) {
	return canvas.FromText(string(t)), nil
}

// List is drawn as a single column.
type List []Content

func (l List) Parts() (Preset, int, []Content) { return PresetList, 1, l }

func (l List) Canvas(ctx context.Context, c Composer) (*canvas.Canvas, error) {
	return compose(ctx, c, l)
}

// Tuple is drawn as a single row.
type Tuple []Content

func (t Tuple) Parts() (Preset, int, []Content) { return PresetTuple, len(t), t }

func (t Tuple) Canvas(ctx context.Context, c Composer) (*canvas.Canvas, error) {
	return compose(ctx, c, t)
}

// Entry is one key/value pair of a Map.
type Entry struct {
	Key, Value Content
}

// Map is drawn as two columns, keys on the left. Entries keep their order.
type Map []Entry

func (m Map) Parts() (Preset, int, []Content) {
	children := make([]Content, 0, 2*len(m))
	for _, e := range m {
		children = append(children, e.Key, e.Value)
	}
	return PresetMap, 2, children
}

func (m Map) Canvas(ctx context.Context, c Composer) (*canvas.Canvas, error) {
	return compose(ctx, c, m)
}

// Table is drawn as a header row followed by one row per entry of Rows.
// Short rows are padded with empty text to the widest row, counting the
// column spans of cells. A nil Header draws no header row.
type Table struct {
	Header []Content
	Rows   [][]Content
}

// Columns returns the column count of the table.
func (t Table) Columns() int {
	n := width(t.Header)
	for _, r := range t.Rows {
		n = max(n, width(r))
	}
	return n
}

func width(row []Content) int {
	n := 0
	for _, c := range row {
		if cell, ok := c.(Cell); ok && cell.ColumnSpan > 1 {
			n += cell.ColumnSpan
		} else {
			n++
		}
	}
	return n
}

func (t Table) Parts() (Preset, int, []Content) {
	columns := t.Columns()
	if columns == 0 {
		return PresetTable, 1, nil
	}
	var children []Content
	pad := func(row []Content) {
		children = append(children, row...)
		for range columns - width(row) {
			children = append(children, Text(""))
		}
	}
	if t.Header != nil {
		pad(t.Header)
	}
	for _, r := range t.Rows {
		pad(r)
	}
	return PresetTable, columns, children
}

func (t Table) Canvas(ctx context.Context, c Composer) (*canvas.Canvas, error) {
	return compose(ctx, c, t)
}

// Cell wraps content with placement overrides that apply when the cell is
// a child of a composite. Zero spans mean one track and negative spans are
// rejected; nil alignments fall back to the grid's defaults.
type Cell struct {
	Content Content

	RowSpan, ColumnSpan int
	Justify             *grid.Justify
	Align               *grid.Align
}

func (c Cell) Canvas(ctx context.Context, cmp Composer) (*canvas.Canvas, error) {
	if c.RowSpan < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cell row span %d is negative", c.RowSpan)
	}
	if c.ColumnSpan < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cell column span %d is negative", c.ColumnSpan)
	}
	return c.Content.Canvas(ctx, cmp)
}

// Composite is content made of child content laid out on a grid.
type Composite interface {
	Content
	// Parts returns the preset, the column count passed to Compose and the
	// children in layout order.
	Parts() (p Preset, columns int, children []Content)
}

func compose(ctx context.Context, c Composer, comp Composite) (*canvas.Canvas, error) {
	p, columns, children := comp.Parts()
	items, err := Items(ctx, c, children)
	if err != nil {
		return nil, err
	}
	return c.Compose(ctx, p, columns, items), nil
}

// Items draws children concurrently and returns them as grid items in
// their original order.
func Items(ctx context.Context, c Composer, children []Content) ([]*Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := make([]*Item, len(children))
	g, ctx := errgroup.WithContext(ctx)
	for i, child := range children {
		g.Go(func() error {
			cv, err := child.Canvas(ctx, c)
			if err != nil {
				return err
			}
			items[i] = NewItem(child, cv)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}
