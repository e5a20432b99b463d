// Package glyph maps separator junctions to box-drawing runes.
//
// A [Table] has one rune for every [grid.Junction]. The built-in styles are
// registered by name so configuration files and command-line flags can refer
// to them; see [Lookup] and [Names].
package glyph

import (
	"fmt"
	"slices"

	"github.com/matzehuels/boxgrid/pkg/errors"
	"github.com/matzehuels/boxgrid/pkg/grid"
)

// Table maps every junction kind to the rune drawn for it.
type Table map[grid.Junction]rune

// Rune returns the rune for j. A table missing a junction is a programming
// error and panics.
func (t Table) Rune(j grid.Junction) rune {
	r, ok := t[j]
	if !ok {
		panic(fmt.Sprintf("glyph: table has no rune for %v", j))
	}
	return r
}

// build assembles a table from runes listed in grid.Junctions order.
func build(runes string) Table {
	rs := []rune(runes)
	if len(rs) != len(grid.Junctions) {
		panic(fmt.Sprintf("glyph: %d runes for %d junctions", len(rs), len(grid.Junctions)))
	}
	t := make(Table, len(rs))
	for i, j := range grid.Junctions {
		t[j] = rs[i]
	}
	return t
}

// Built-in styles. The runes are listed as horizontal, vertical, the four
// corners, the four tees and the cross.
var (
	Light   = build("─│┌┐└┘├┤┬┴┼")
	Heavy   = build("━┃┏┓┗┛┣┫┳┻╋")
	Double  = build("═║╔╗╚╝╠╣╦╩╬")
	Rounded = build("─│╭╮╰╯├┤┬┴┼")
	ASCII   = build("-|+++++++++")
)

// Default is the style name used when none is configured.
const Default = "light"

var styles = map[string]Table{
	"light":   Light,
	"heavy":   Heavy,
	"double":  Double,
	"rounded": Rounded,
	"ascii":   ASCII,
}

// Lookup returns the built-in style with the given name.
func Lookup(name string) (Table, error) {
	if t, ok := styles[name]; ok {
		return t, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown glyph style %q (must be one of %v)", name, Names())
}

// Names returns the built-in style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(styles))
	for n := range styles {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
