// Package pkg provides the libraries behind boxgrid, a grid layout engine
// that draws structured values as box diagrams in plain text.
//
// # Overview
//
// boxgrid turns nested lists, maps, records and tables into text diagrams
// whose cells are separated by box-drawing lines:
//
//	┌──────┬─────────┐
//	│ name │ boxgrid │
//	├──────┼─────────┤
//	│ tags │ ┌─────┐ │
//	│      │ │ cli │ │
//	│      │ └─────┘ │
//	└──────┴─────────┘
//
// The data flow:
//
//	JSON / TOML document or Go value
//	         ↓
//	    [io] package (decode documents)
//	         ↓
//	    [content] package (classify and reshape values)
//	         ↓
//	    [grid] package (place, size and position blocks; synthesize lines)
//	         ↓
//	    [render] package (draw lines and content onto a [canvas])
//	         ↓
//	    text or JSON layout export
//
// # Quick Start
//
//	out, err := render.Render(ctx, map[string]any{
//	    "name": "boxgrid",
//	    "tags": []string{"cli"},
//	}, render.WithStyle("rounded"))
//
// # Main Packages
//
// [grid] - The layout engine. Places items on a row- or column-major grid,
// sizes tracks so every block fits its content, computes gapped offsets and
// derives the separator segments and their junctions. It knows nothing
// about characters.
//
// [canvas] - Sparse character canvas with translation, overlay and
// terminal-width aware text. [canvas/raster] rasterizes line segments.
//
// [glyph] - Glyph tables mapping junction kinds to box-drawing runes, in
// light, heavy, double, rounded and ASCII styles.
//
// [content] - Classifies arbitrary values into text, lists, tuples, maps
// and tables, and reshapes them into a requested preset.
//
// [render] - Orchestrates the pipeline. Nested composites are drawn
// concurrently, laid out with per-preset grid options and composited into
// the parent.
//
// ## Infrastructure
//
// [io] - Reads JSON and TOML documents from files or stdin.
//
// [config] - TOML configuration for grid and render defaults.
//
// [cache] - Render cache with file and no-op backends.
//
// [observability] - Hooks for layout, render and cache metrics.
//
// [errors] - Error codes shared by every package.
//
// [buildinfo] - Version metadata injected at build time.
//
// [grid]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/grid
// [canvas]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/canvas
// [canvas/raster]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/canvas/raster
// [glyph]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/glyph
// [content]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/content
// [render]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/io
// [config]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/boxgrid/pkg/buildinfo
package pkg
