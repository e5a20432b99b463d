// Package raster rasterizes lines onto integer cell grids.
//
// Line uses Bresenham's algorithm, so it handles every octant with integer
// arithmetic only. Axis-aligned separators are the common case, but
// decorative diagonal strokes go through the same code.
package raster

// Plotter receives one call per rasterized cell.
type Plotter func(x, y int)

// Line plots every cell on the line from (x0, y0) to (x1, y1), both ends
// included, in order from the first point to the second.
func Line(x0, y0, x1, y1 int, plot Plotter) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
