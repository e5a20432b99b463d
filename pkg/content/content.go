// Package content converts values into drawable content.
//
// Content is a tree: leaves are [Text], inner nodes are the composites
// [List], [Tuple], [Map] and [Table]. Drawing a composite draws its children
// first and hands the resulting canvases to a [Composer], which lays them
// out on a grid. [Cell] wraps a child to override how it sits in its parent.
//
// Children of one composite are drawn concurrently. A Composer must
// therefore be safe for concurrent use; the renderer in package render is
// immutable after construction.
package content

import (
	"context"

	"github.com/matzehuels/boxgrid/pkg/canvas"
	"github.com/matzehuels/boxgrid/pkg/errors"
	"github.com/matzehuels/boxgrid/pkg/grid"
)

// Content is anything that can draw itself onto a canvas.
type Content interface {
	Canvas(ctx context.Context, c Composer) (*canvas.Canvas, error)
}

// Composer lays out the drawn children of a composite.
//
// columns is the column count of a table; other presets ignore it.
type Composer interface {
	Compose(ctx context.Context, p Preset, columns int, items []*Item) *canvas.Canvas
}

// Preset names a composition.
type Preset string

const (
	PresetList  Preset = "list"
	PresetTuple Preset = "tuple"
	PresetMap   Preset = "map"
	PresetTable Preset = "table"
)

// Presets lists every preset.
var Presets = []Preset{PresetList, PresetTuple, PresetMap, PresetTable}

// ParsePreset parses a preset name.
func ParsePreset(s string) (Preset, error) {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = string(p)
	}
	if err := errors.ValidateChoice(errors.ErrCodeInvalidPreset, "preset", s, names); err != nil {
		return "", err
	}
	return Preset(s), nil
}

// Item is a drawn child ready for grid layout. It implements [grid.Item],
// [grid.Spanner], [grid.Justifier] and [grid.Aligner].
type Item struct {
	Canvas *canvas.Canvas

	rowSpan, columnSpan int
	justify             *grid.Justify
	align               *grid.Align
}

// NewItem wraps a drawn canvas. Overrides are taken from c when it is a
// [Cell]; zero spans mean one track and any other value is kept as is, so
// layout rejects negative spans.
func NewItem(c Content, cv *canvas.Canvas) *Item {
	it := &Item{Canvas: cv, rowSpan: 1, columnSpan: 1}
	if cell, ok := c.(Cell); ok {
		if cell.RowSpan != 0 {
			it.rowSpan = cell.RowSpan
		}
		if cell.ColumnSpan != 0 {
			it.columnSpan = cell.ColumnSpan
		}
		it.justify = cell.Justify
		it.align = cell.Align
	}
	return it
}

func (it *Item) Size() (width, height int) { return it.Canvas.Size() }

func (it *Item) Span() (rows, columns int) { return it.rowSpan, it.columnSpan }

func (it *Item) Justify() (grid.Justify, bool) {
	if it.justify == nil {
		return 0, false
	}
	return *it.justify, true
}

func (it *Item) Align() (grid.Align, bool) {
	if it.align == nil {
		return 0, false
	}
	return *it.align, true
}
