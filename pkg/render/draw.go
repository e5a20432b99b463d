package render

import (
	"github.com/matzehuels/boxgrid/pkg/canvas"
	"github.com/matzehuels/boxgrid/pkg/canvas/raster"
	"github.com/matzehuels/boxgrid/pkg/content"
	"github.com/matzehuels/boxgrid/pkg/glyph"
	"github.com/matzehuels/boxgrid/pkg/grid"
)

// DrawLines rasterizes a line map. Straight runs use the horizontal and
// vertical glyphs; every intersection is then drawn with its junction glyph.
func DrawLines(lm grid.LineMap, style glyph.Table) *canvas.Canvas {
	c := canvas.New()
	stroke := func(segs []grid.Segment, r rune) {
		for _, s := range segs {
			raster.Line(s.From.X, s.From.Y, s.To.X, s.To.Y, func(x, y int) {
				c.Set(canvas.Point{X: x, Y: y}, r)
			})
		}
	}
	stroke(lm.Horizontal, style.Rune(grid.Horizontal))
	stroke(lm.Vertical, style.Rune(grid.Vertical))
	for _, p := range lm.Points() {
		c.Set(canvas.Point{X: p.X, Y: p.Y}, style.Rune(lm.Intersects[p]))
	}
	return c
}

// draw composites a laid-out grid: the track area, the separator lines and
// then the item canvases at their block positions. Outer separators may lie
// at negative coordinates, so the result is normalized to the origin.
func (r *Renderer) draw(res *grid.Result, items []*content.Item) *canvas.Canvas {
	area := canvas.New()
	area.Extend(res.Tracks.Width(), res.Tracks.Height())

	layers := []*canvas.Canvas{area}
	if res.Lines != nil {
		layers = append(layers, DrawLines(*res.Lines, r.style))
	}
	for _, b := range res.Visible() {
		if b.IsPlaceholder() {
			continue
		}
		layers = append(layers, items[b.ID].Canvas.Translate(b.X, b.Y))
	}
	return canvas.Overlay(layers...).Normalize()
}
