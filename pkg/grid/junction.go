package grid

import (
	"fmt"
	"strings"
)

// Direction is a set of cardinal directions a line continues toward from
// a point. Sets from different blocks are merged with bitwise OR.
type Direction uint8

const (
	Up Direction = 1 << iota
	Down
	Left
	Right
)

// Has reports whether d contains every direction in o.
func (d Direction) Has(o Direction) bool { return d&o == o }

func (d Direction) String() string {
	var parts []string
	for _, x := range []struct {
		d    Direction
		name string
	}{{Up, "up"}, {Down, "down"}, {Left, "left"}, {Right, "right"}} {
		if d.Has(x.d) {
			parts = append(parts, x.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Junction classifies a point on the separator lines by the directions the
// lines continue in. Horizontal and Vertical double as the tags of plain
// straight segments.
type Junction uint8

const (
	Horizontal Junction = iota + 1
	Vertical
	DownAndRight
	DownAndLeft
	UpAndRight
	UpAndLeft
	VerticalAndRight
	VerticalAndLeft
	DownAndHorizontal
	UpAndHorizontal
	Cross
)

// Junctions lists every junction kind in declaration order.
var Junctions = []Junction{
	Horizontal, Vertical,
	DownAndRight, DownAndLeft, UpAndRight, UpAndLeft,
	VerticalAndRight, VerticalAndLeft, DownAndHorizontal, UpAndHorizontal,
	Cross,
}

var junctionNames = map[Junction]string{
	Horizontal:        "horizontal",
	Vertical:          "vertical",
	DownAndRight:      "down_and_right",
	DownAndLeft:       "down_and_left",
	UpAndRight:        "up_and_right",
	UpAndLeft:         "up_and_left",
	VerticalAndRight:  "vertical_and_right",
	VerticalAndLeft:   "vertical_and_left",
	DownAndHorizontal: "down_and_horizontal",
	UpAndHorizontal:   "up_and_horizontal",
	Cross:             "vertical_and_horizontal",
}

var junctionsByFlags = map[Direction]Junction{
	Left | Right:             Horizontal,
	Up | Down:                Vertical,
	Down | Right:             DownAndRight,
	Down | Left:              DownAndLeft,
	Up | Right:               UpAndRight,
	Up | Left:                UpAndLeft,
	Up | Down | Right:        VerticalAndRight,
	Up | Down | Left:         VerticalAndLeft,
	Left | Right | Down:      DownAndHorizontal,
	Left | Right | Up:        UpAndHorizontal,
	Up | Down | Left | Right: Cross,
}

// Classify maps a direction set to its junction. Sets with fewer than two
// directions have no drawable glyph and report false.
func Classify(d Direction) (Junction, bool) {
	j, ok := junctionsByFlags[d]
	return j, ok
}

func (j Junction) String() string {
	if n, ok := junctionNames[j]; ok {
		return n
	}
	return fmt.Sprintf("Junction(%d)", uint8(j))
}

// MarshalText implements encoding.TextMarshaler.
func (j Junction) MarshalText() ([]byte, error) {
	n, ok := junctionNames[j]
	if !ok {
		return nil, fmt.Errorf("grid: unknown junction %d", uint8(j))
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *Junction) UnmarshalText(text []byte) error {
	for k, n := range junctionNames {
		if n == string(text) {
			*j = k
			return nil
		}
	}
	return fmt.Errorf("grid: unknown junction %q", text)
}
