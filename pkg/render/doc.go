// Package render draws values as box-drawn text diagrams.
//
// # Overview
//
// Rendering runs in three steps:
//
//  1. The value is converted to a [content.Content] tree with [content.From]
//     and, when a preset is configured, reshaped with [content.Coerce].
//  2. Every composite in the tree is laid out on a grid by [grid.Layout]
//     using the grid options of its preset.
//  3. The separator lines of each grid are rasterized with the configured
//     glyph style, and the children are overlaid at their positions.
//
// # Presets
//
// A preset fixes how a composite fills its grid:
//
//   - list: the configured flow and track limit (one column by default)
//   - tuple: one row, one column per element
//   - map: two columns, keys on the left
//   - table: one column per table column, header first
//
// Gaps, padding, hints, alignment and separator lines come from the
// configured [grid.Options] for every preset.
//
// # Usage
//
//	out, err := render.Render(ctx, []string{"a", "bb"}, render.WithStyle("rounded"))
//
// A [Renderer] is immutable once built and safe for concurrent use.
//
// # JSON Export
//
// [ExportJSON] serializes the top-level layout (tracks, blocks and lines)
// for tooling that draws the grid itself.
package render
