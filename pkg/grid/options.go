package grid

import (
	"github.com/matzehuels/boxgrid/pkg/errors"
)

// Flow is the axis placement advances along before wrapping.
type Flow int

const (
	// FlowRow fills the columns of a row before moving to the next row.
	FlowRow Flow = iota
	// FlowColumn fills the rows of a column before moving to the next column.
	FlowColumn
)

// Justify is the horizontal placement of content inside its cell.
type Justify int

const (
	JustifyLeft Justify = iota
	JustifyCenter
	JustifyRight
)

// Align is the vertical placement of content inside its cell.
type Align int

const (
	AlignTop Align = iota
	AlignCenter
	AlignBottom
)

var (
	flowNames    = []string{"row", "column"}
	justifyNames = []string{"left", "center", "right"}
	alignNames   = []string{"top", "center", "bottom"}
)

func (f Flow) String() string    { return name(flowNames, int(f)) }
func (j Justify) String() string { return name(justifyNames, int(j)) }
func (a Align) String() string   { return name(alignNames, int(a)) }

func name(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "unknown"
	}
	return names[i]
}

// ParseFlow parses "row" or "column".
func ParseFlow(s string) (Flow, error) {
	i, err := parse(flowNames, "flow", s)
	return Flow(i), err
}

// ParseJustify parses "left", "center" or "right".
func ParseJustify(s string) (Justify, error) {
	i, err := parse(justifyNames, "justify", s)
	return Justify(i), err
}

// ParseAlign parses "top", "center" or "bottom".
func ParseAlign(s string) (Align, error) {
	i, err := parse(alignNames, "align", s)
	return Align(i), err
}

func parse(names []string, what, s string) (int, error) {
	if err := errors.ValidateChoice(errors.ErrCodeInvalidOptions, what, s, names); err != nil {
		return 0, err
	}
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, nil
}

// Sides holds one value per side of a rectangle.
type Sides struct {
	Top, Right, Bottom, Left int
}

// Uniform returns Sides with every side set to n.
func Uniform(n int) Sides { return Sides{n, n, n, n} }

// Options configures a layout run.
//
// The zero value is not usable: Limit must be at least 1. Start from
// [DefaultOptions] and override fields as needed.
type Options struct {
	Flow      Flow // Placement direction
	Limit     int  // Tracks per line on the flow's cross axis
	RowGap    int  // Cells between rows
	ColumnGap int  // Cells between columns

	Padding Sides // Space added around every item's content
	Hints   Sides // Outer margin for edge separators, used only with Lines

	Justify Justify // Default horizontal placement
	Align   Align   // Default vertical placement

	Lines        bool // Synthesize separator lines
	Placeholders bool // Keep placeholder blocks in Result.Visible
}

// DefaultOptions returns a single-row-per-item grid with separator lines.
func DefaultOptions() Options {
	return Options{
		Flow:      FlowRow,
		Limit:     1,
		RowGap:    1,
		ColumnGap: 1,
		Padding:   Sides{Left: 1, Right: 1},
		Hints:     Uniform(1),
		Lines:     true,
	}
}

// Validate checks user-supplied options before they reach the engine.
// Separator lines sit in the gaps and in the outer margins, so they need
// gaps and hints of at least one cell.
func (o Options) Validate() error {
	if o.Flow != FlowRow && o.Flow != FlowColumn {
		return errors.New(errors.ErrCodeInvalidOptions, "unknown flow %d", o.Flow)
	}
	if o.Justify < JustifyLeft || o.Justify > JustifyRight {
		return errors.New(errors.ErrCodeInvalidOptions, "unknown justify %d", o.Justify)
	}
	if o.Align < AlignTop || o.Align > AlignBottom {
		return errors.New(errors.ErrCodeInvalidOptions, "unknown align %d", o.Align)
	}
	if err := errors.ValidatePositive("limit", o.Limit); err != nil {
		return err
	}
	checks := []struct {
		name string
		v    int
	}{
		{"row gap", o.RowGap},
		{"column gap", o.ColumnGap},
		{"padding top", o.Padding.Top},
		{"padding right", o.Padding.Right},
		{"padding bottom", o.Padding.Bottom},
		{"padding left", o.Padding.Left},
		{"hint top", o.Hints.Top},
		{"hint right", o.Hints.Right},
		{"hint bottom", o.Hints.Bottom},
		{"hint left", o.Hints.Left},
	}
	for _, c := range checks {
		if err := errors.ValidateNonNegative(c.name, c.v); err != nil {
			return err
		}
	}
	if o.Lines && (o.RowGap < 1 || o.ColumnGap < 1) {
		return errors.New(errors.ErrCodeInvalidOptions, "separator lines need row and column gaps of at least 1")
	}
	if o.Lines && min(o.Hints.Top, o.Hints.Right, o.Hints.Bottom, o.Hints.Left) < 1 {
		return errors.New(errors.ErrCodeInvalidOptions, "separator lines need hints of at least 1 on every side")
	}
	return nil
}
