// Package config loads renderer settings from TOML files.
//
// A configuration file overrides the defaults field by field; keys that are
// absent keep their default values:
//
//	[grid]
//	flow = "row"          # or "column"
//	limit = 3
//	row_gap = 1
//	column_gap = 1
//	justify = "center"    # left, center, right
//	align = "top"         # top, center, bottom
//	lines = true
//	placeholders = false
//
//	[grid.padding]
//	left = 1
//	right = 1
//
//	[grid.hints]
//	top = 1
//
//	[render]
//	style = "rounded"
//	preset = "table"
//
// Unknown keys are rejected so typos do not pass silently.
package config

import (
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/boxgrid/pkg/content"
	"github.com/matzehuels/boxgrid/pkg/errors"
	"github.com/matzehuels/boxgrid/pkg/glyph"
	"github.com/matzehuels/boxgrid/pkg/grid"
)

// Config is a parsed configuration file.
type Config struct {
	Grid   Grid   `toml:"grid"`
	Render Render `toml:"render"`
}

// Grid overrides grid.Options. Nil fields are left unchanged.
type Grid struct {
	Flow         *string `toml:"flow"`
	Limit        *int    `toml:"limit"`
	RowGap       *int    `toml:"row_gap"`
	ColumnGap    *int    `toml:"column_gap"`
	Justify      *string `toml:"justify"`
	Align        *string `toml:"align"`
	Lines        *bool   `toml:"lines"`
	Placeholders *bool   `toml:"placeholders"`
	Padding      Sides   `toml:"padding"`
	Hints        Sides   `toml:"hints"`
}

// Sides overrides grid.Sides side by side.
type Sides struct {
	Top    *int `toml:"top"`
	Right  *int `toml:"right"`
	Bottom *int `toml:"bottom"`
	Left   *int `toml:"left"`
}

// Render selects the glyph style and top-level preset.
type Render struct {
	Style  string `toml:"style"`
	Preset string `toml:"preset"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to read %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return cfg, nil
}

// Parse decodes a configuration document and checks its values.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "failed to parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if _, err := cfg.Apply(grid.DefaultOptions()); err != nil {
		return nil, err
	}
	if cfg.Render.Style != "" {
		if _, err := glyph.Lookup(cfg.Render.Style); err != nil {
			return nil, err
		}
	}
	if cfg.Render.Preset != "" {
		if _, err := content.ParsePreset(cfg.Render.Preset); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// Apply returns o with the configured grid overrides applied. The result
// is validated.
func (c *Config) Apply(o grid.Options) (grid.Options, error) {
	g := c.Grid
	if g.Flow != nil {
		f, err := grid.ParseFlow(*g.Flow)
		if err != nil {
			return o, err
		}
		o.Flow = f
	}
	if g.Justify != nil {
		j, err := grid.ParseJustify(*g.Justify)
		if err != nil {
			return o, err
		}
		o.Justify = j
	}
	if g.Align != nil {
		a, err := grid.ParseAlign(*g.Align)
		if err != nil {
			return o, err
		}
		o.Align = a
	}
	setInt(&o.Limit, g.Limit)
	setInt(&o.RowGap, g.RowGap)
	setInt(&o.ColumnGap, g.ColumnGap)
	setBool(&o.Lines, g.Lines)
	setBool(&o.Placeholders, g.Placeholders)
	g.Padding.apply(&o.Padding)
	g.Hints.apply(&o.Hints)

	if err := o.Validate(); err != nil {
		return o, err
	}
	return o, nil
}

func (s Sides) apply(dst *grid.Sides) {
	setInt(&dst.Top, s.Top)
	setInt(&dst.Right, s.Right)
	setInt(&dst.Bottom, s.Bottom)
	setInt(&dst.Left, s.Left)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
