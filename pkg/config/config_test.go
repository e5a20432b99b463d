package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/boxgrid/pkg/errors"
	"github.com/matzehuels/boxgrid/pkg/grid"
)

func TestParseApply(t *testing.T) {
	data := []byte(`
[grid]
flow = "column"
limit = 3
row_gap = 2
justify = "center"
align = "bottom"
placeholders = true

[grid.padding]
top = 1

[grid.hints]
left = 2

[render]
style = "heavy"
preset = "table"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Render.Style != "heavy" || cfg.Render.Preset != "table" {
		t.Errorf("Render = %+v", cfg.Render)
	}

	got, err := cfg.Apply(grid.DefaultOptions())
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	want := grid.DefaultOptions()
	want.Flow = grid.FlowColumn
	want.Limit = 3
	want.RowGap = 2
	want.Justify = grid.JustifyCenter
	want.Align = grid.AlignBottom
	want.Placeholders = true
	want.Padding.Top = 1
	want.Hints.Left = 2
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	got, err := cfg.Apply(grid.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(grid.DefaultOptions(), got); diff != "" {
		t.Errorf("empty config changed options (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"syntax", "[grid\n", errors.ErrCodeInvalidConfig},
		{"unknown key", "[grid]\ncolour = 1\n", errors.ErrCodeInvalidConfig},
		{"wrong type", "[grid]\nlimit = \"two\"\n", errors.ErrCodeInvalidConfig},
		{"bad flow", "[grid]\nflow = \"diagonal\"\n", errors.ErrCodeInvalidOptions},
		{"zero limit", "[grid]\nlimit = 0\n", errors.ErrCodeInvalidOptions},
		{"negative padding", "[grid.padding]\nleft = -1\n", errors.ErrCodeInvalidOptions},
		{"lines without gaps", "[grid]\ncolumn_gap = 0\n", errors.ErrCodeInvalidOptions},
		{"lines without hints", "[grid.hints]\ntop = 0\n", errors.ErrCodeInvalidOptions},
		{"bad style", "[render]\nstyle = \"fancy\"\n", errors.ErrCodeInvalidStyle},
		{"bad preset", "[render]\npreset = \"grid\"\n", errors.ErrCodeInvalidPreset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boxgrid.toml")
	if err := os.WriteFile(path, []byte("[grid]\nlimit = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Grid.Limit == nil || *cfg.Grid.Limit != 2 {
		t.Errorf("Grid.Limit = %v, want 2", cfg.Grid.Limit)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[render]\nstyle = \"x\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("Load(bad) error = %v, want %s", err, errors.ErrCodeInvalidStyle)
	}
}
