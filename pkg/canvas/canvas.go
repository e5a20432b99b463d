// Package canvas provides a sparse character canvas for composing diagrams.
//
// A [Canvas] stores only the cells that were written and tracks the
// rectangle they cover. Canvases are combined by translating them into
// place and overlaying them; later layers overwrite earlier ones cell by
// cell. [Canvas.String] renders the covered rectangle with spaces for the
// cells that were never written.
//
// Cell widths follow terminal display width: an East Asian wide rune takes
// two cells, the second of which is reserved and never printed on its own.
package canvas

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/unicode/norm"
)

// tabWidth is the distance between tab stops in [FromText].
const tabWidth = 8

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// tail marks the second cell of a wide rune.
const tail rune = -1

// Canvas is a sparse grid of runes.
//
// The zero value is an empty canvas ready to use. Canvases returned by
// [Canvas.Translate] and [Overlay] are new values; the receivers are not
// modified.
type Canvas struct {
	cells    map[Point]rune
	min, max Point // covered rectangle, max exclusive
	sized    bool
}

// New returns an empty canvas.
func New() *Canvas {
	return &Canvas{cells: make(map[Point]rune)}
}

// FromText builds a canvas from multi-line text anchored at the origin.
// Empty text still covers one line of zero width.
//
// Text is normalized to NFC first, so a base letter followed by a
// combining mark that has a precomposed form takes a single cell. Tabs
// advance to the next multiple of eight columns. Every other rune of zero
// display width, such as a combining mark with no precomposed form or a
// control character, is dropped.
func FromText(s string) *Canvas {
	c := New()
	lines := strings.Split(norm.NFC.String(s), "\n")
	for y, line := range lines {
		x := 0
		for _, r := range line {
			if r == '\t' {
				for next := x + tabWidth - x%tabWidth; x < next; x++ {
					c.Set(Point{x, y}, ' ')
				}
				continue
			}
			w := runewidth.RuneWidth(r)
			if w == 0 {
				continue
			}
			c.Set(Point{x, y}, r)
			x += w
		}
	}
	c.Extend(0, len(lines))
	return c
}

// Set writes r at p, growing the covered rectangle as needed.
// Writing over either half of a wide rune clears the other half.
func (c *Canvas) Set(p Point, r rune) {
	if c.cells == nil {
		c.cells = make(map[Point]rune)
	}
	c.clearWide(p)
	c.cells[p] = r
	c.cover(p, Point{p.X + 1, p.Y + 1})
	if runewidth.RuneWidth(r) == 2 {
		next := Point{p.X + 1, p.Y}
		c.clearWide(next)
		c.cells[next] = tail
		c.cover(next, Point{next.X + 1, next.Y + 1})
	}
}

func (c *Canvas) clearWide(p Point) {
	switch old := c.cells[p]; {
	case old == tail:
		c.cells[Point{p.X - 1, p.Y}] = ' '
	case runewidth.RuneWidth(old) == 2:
		delete(c.cells, Point{p.X + 1, p.Y})
	}
}

// Get returns the rune at p, or a space for unwritten cells.
func (c *Canvas) Get(p Point) rune {
	r, ok := c.cells[p]
	if !ok || r == tail {
		return ' '
	}
	return r
}

// Extend grows the covered rectangle to include [0,w) x [0,h).
func (c *Canvas) Extend(w, h int) {
	c.cover(Point{0, 0}, Point{w, h})
}

func (c *Canvas) cover(lo, hi Point) {
	if !c.sized {
		c.min, c.max, c.sized = lo, hi, true
		return
	}
	c.min = Point{min(c.min.X, lo.X), min(c.min.Y, lo.Y)}
	c.max = Point{max(c.max.X, hi.X), max(c.max.Y, hi.Y)}
}

// Size returns the width and height of the covered rectangle.
func (c *Canvas) Size() (width, height int) {
	return c.max.X - c.min.X, c.max.Y - c.min.Y
}

// Bounds returns the covered rectangle as its top-left corner and the
// exclusive bottom-right corner.
func (c *Canvas) Bounds() (lo, hi Point) { return c.min, c.max }

// Translate returns a copy of the canvas shifted by (dx, dy).
func (c *Canvas) Translate(dx, dy int) *Canvas {
	out := &Canvas{cells: make(map[Point]rune, len(c.cells))}
	for p, r := range c.cells {
		out.cells[Point{p.X + dx, p.Y + dy}] = r
	}
	if c.sized {
		out.min = Point{c.min.X + dx, c.min.Y + dy}
		out.max = Point{c.max.X + dx, c.max.Y + dy}
		out.sized = true
	}
	return out
}

// Normalize returns a copy translated so the covered rectangle starts at
// the origin.
func (c *Canvas) Normalize() *Canvas {
	return c.Translate(-c.min.X, -c.min.Y)
}

// Overlay composes canvases in order; later canvases are drawn on top.
func Overlay(layers ...*Canvas) *Canvas {
	out := New()
	for _, l := range layers {
		if l == nil {
			continue
		}
		for p, r := range l.cells {
			if r != tail {
				out.Set(p, r)
			}
		}
		if l.sized {
			out.cover(l.min, l.max)
		}
	}
	return out
}

// String renders the covered rectangle line by line. Trailing spaces are
// trimmed from every line.
func (c *Canvas) String() string {
	var b strings.Builder
	for y := c.min.Y; y < c.max.Y; y++ {
		if y > c.min.Y {
			b.WriteByte('\n')
		}
		var line strings.Builder
		for x := c.min.X; x < c.max.X; x++ {
			r, ok := c.cells[Point{x, y}]
			switch {
			case !ok:
				line.WriteByte(' ')
			case r != tail:
				line.WriteRune(r)
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
	}
	return b.String()
}
