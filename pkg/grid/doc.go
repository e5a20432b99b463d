// Package grid implements the layout engine behind boxgrid diagrams.
//
// # Overview
//
// A diagram is a grid of rectangular blocks separated by gaps, with box
// drawing lines running through the middle of every gap. This package turns
// an ordered sequence of sized items into that grid in four stages:
//
//  1. Placement ([Place]): assign every block a row and column in flow
//     order, honoring row and column spans, and fill the remaining cells
//     with placeholder blocks so the grid is always a full rectangle.
//  2. Sizing ([Size]): resolve one size per row and column from the
//     blocks' intrinsic sizes, spreading span overflow round-robin over the
//     spanned tracks, and build the pixel offset tables ([Offsets]).
//  3. Positioning: place each block's content inside its cell according
//     to justification, alignment and padding.
//  4. Line synthesis ([Synthesize]): emit the separator segments around
//     every block and classify each line intersection into a [Junction].
//
// [Layout] runs all four stages:
//
//	res := grid.Layout(items, grid.DefaultOptions())
//	for _, b := range res.Visible() {
//	    fmt.Println(b.ID, b.Row, b.Column, b.X, b.Y)
//	}
//
// # Coordinates
//
// Tracks are zero-based row and column indices. Pixel coordinates are
// character cells: x grows to the right, y grows downward, and the first
// content cell of the grid sits at (0, 0). Separator lines on the outer
// edge sit outside the content area, at negative coordinates on the top and
// left edges, so callers compositing a [LineMap] normalize the result.
//
// # Items and Capabilities
//
// Anything with a [Item.Size] can be laid out. Items may additionally
// implement [Spanner] to cover several tracks, and [Justifier] or [Aligner]
// to override the grid-wide placement inside their cell.
//
// # Contract Violations
//
// All stages are total over well-formed input. Non-positive spans or limits
// and negative sizes or gaps are programming errors and panic instead of
// being coerced, as are lookups of tracks that do not exist. User-supplied
// configuration should be checked with [Options.Validate] first.
//
// # Concurrency
//
// Layout runs are synchronous and share no state. Independent layouts, for
// example sibling sub-grids of nested content, may run in parallel.
package grid
