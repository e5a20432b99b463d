package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxgrid/pkg/buildinfo"
	"github.com/matzehuels/boxgrid/pkg/cache"
	"github.com/matzehuels/boxgrid/pkg/config"
	"github.com/matzehuels/boxgrid/pkg/content"
	"github.com/matzehuels/boxgrid/pkg/errors"
	"github.com/matzehuels/boxgrid/pkg/glyph"
	"github.com/matzehuels/boxgrid/pkg/grid"
	pkgio "github.com/matzehuels/boxgrid/pkg/io"
	"github.com/matzehuels/boxgrid/pkg/observability"
	"github.com/matzehuels/boxgrid/pkg/render"
)

const (
	formatText = "text" // box diagram
	formatJSON = "json" // top-level layout export

	renderCacheTTL = 7 * 24 * time.Hour
)

// layoutFlags holds the flags shared by render and view.
type layoutFlags struct {
	config       string // TOML configuration file
	preset       string // top-level preset
	style        string // glyph style
	flow         string // list flow: row or column
	justify      string // default horizontal placement
	align        string // default vertical placement
	limit        int    // list track limit
	rowGap       int    // cells between rows
	columnGap    int    // cells between columns
	noLines      bool   // omit separators
	placeholders bool   // keep placeholder blocks in the JSON export
}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	layoutFlags
	output  string // output file path, stdout when empty
	format  string // text or json
	noCache bool   // bypass the render cache
}

// settings is the effective configuration after the config file and flags
// are merged.
type settings struct {
	grid   grid.Options
	style  string
	preset string
}

func addLayoutFlags(cmd *cobra.Command, f *layoutFlags) {
	d := grid.DefaultOptions()
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "top-level preset: list, tuple, map, table")
	cmd.Flags().StringVarP(&f.style, "style", "s", glyph.Default, "glyph style: "+strings.Join(glyph.Names(), ", "))
	cmd.Flags().StringVar(&f.flow, "flow", d.Flow.String(), "list flow: row, column")
	cmd.Flags().StringVar(&f.justify, "justify", d.Justify.String(), "horizontal placement: left, center, right")
	cmd.Flags().StringVar(&f.align, "align", d.Align.String(), "vertical placement: top, center, bottom")
	cmd.Flags().IntVar(&f.limit, "limit", d.Limit, "tracks per line for lists")
	cmd.Flags().IntVar(&f.rowGap, "row-gap", d.RowGap, "cells between rows")
	cmd.Flags().IntVar(&f.columnGap, "column-gap", d.ColumnGap, "cells between columns")
	cmd.Flags().BoolVar(&f.noLines, "no-lines", false, "omit separator lines")
	cmd.Flags().BoolVar(&f.placeholders, "placeholders", false, "include placeholder blocks in layout output")
	completeLayoutFlags(cmd)
}

// resolve merges defaults, the config file and the flags the user set, in
// that order of precedence from lowest to highest.
func (f *layoutFlags) resolve(cmd *cobra.Command) (settings, error) {
	s := settings{grid: grid.DefaultOptions(), style: glyph.Default}

	if f.config != "" {
		cfg, err := config.Load(f.config)
		if err != nil {
			return s, err
		}
		if s.grid, err = cfg.Apply(s.grid); err != nil {
			return s, err
		}
		if cfg.Render.Style != "" {
			s.style = cfg.Render.Style
		}
		s.preset = cfg.Render.Preset
	}

	changed := cmd.Flags().Changed
	if changed("style") {
		s.style = f.style
	}
	if changed("preset") {
		s.preset = f.preset
	}
	if changed("flow") {
		v, err := grid.ParseFlow(f.flow)
		if err != nil {
			return s, err
		}
		s.grid.Flow = v
	}
	if changed("justify") {
		v, err := grid.ParseJustify(f.justify)
		if err != nil {
			return s, err
		}
		s.grid.Justify = v
	}
	if changed("align") {
		v, err := grid.ParseAlign(f.align)
		if err != nil {
			return s, err
		}
		s.grid.Align = v
	}
	if changed("limit") {
		s.grid.Limit = f.limit
	}
	if changed("row-gap") {
		s.grid.RowGap = f.rowGap
	}
	if changed("column-gap") {
		s.grid.ColumnGap = f.columnGap
	}
	if changed("no-lines") {
		s.grid.Lines = !f.noLines
	}
	if changed("placeholders") {
		s.grid.Placeholders = f.placeholders
	}

	if err := s.grid.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// renderer builds a renderer for s, overriding the style when one is given.
func (s settings) renderer(logger *log.Logger, style string) (*render.Renderer, error) {
	if style == "" {
		style = s.style
	}
	return render.New(
		render.WithGrid(s.grid),
		render.WithStyle(style),
		render.WithPreset(content.Preset(s.preset)),
		render.WithLogger(logger),
	)
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON or TOML document as a box diagram",
		Long: `Render a JSON or TOML document as a box diagram.

Arrays become lists, objects and tables become two-column maps, and nested
values are drawn as nested boxes. Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", opts.format, []string{formatText, formatJSON}); err != nil {
				return err
			}
			s, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.runRender(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), path, s, &opts)
		},
	}

	addLayoutFlags(cmd, &opts.layoutFlags)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{formatText, formatJSON}, cobra.ShellCompDirectiveNoFileComp))
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, stdin io.Reader, stdout io.Writer, path string, s settings, opts *renderOpts) error {
	prog := newProgress(c.Logger)

	data, err := pkgio.Read(path, stdin)
	if err != nil {
		return err
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := cache.RenderKey(data, cache.RenderKeyOpts{
		Grid:    s.grid,
		Style:   s.style,
		Preset:  s.preset,
		Format:  opts.format,
		Version: buildinfo.ID(),
	})

	out, cached, err := store.Get(ctx, key)
	if err != nil {
		c.Logger.Warn("cache read failed", "error", err)
	}
	if cached {
		observability.Cache().OnCacheHit(ctx, "render")
	} else {
		observability.Cache().OnCacheMiss(ctx, "render")
		if out, err = c.renderDocument(ctx, data, path, s, opts.format); err != nil {
			return err
		}
		if err := store.Set(ctx, key, out, renderCacheTTL); err != nil {
			c.Logger.Warn("cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "render", len(out))
		}
	}
	prog.done("Rendered %s (cached=%t)", pkgio.DisplayName(path), cached)

	if opts.output == "" {
		_, err := stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "failed to write %s", opts.output)
	}
	printSuccess("Rendered %s", pkgio.DisplayName(path))
	printFile(opts.output)
	if opts.format == formatText {
		w, h := textSize(string(out))
		printStats(w, h, cached)
	}
	return nil
}

// renderDocument decodes data and renders it in the requested format.
// Text output ends with a newline.
func (c *CLI) renderDocument(ctx context.Context, data []byte, path string, s settings, format string) ([]byte, error) {
	doc, err := pkgio.Decode(data, path)
	if err != nil {
		return nil, err
	}
	r, err := s.renderer(c.Logger, "")
	if err != nil {
		return nil, err
	}

	if format == formatJSON {
		res, err := r.Layout(ctx, doc)
		if err != nil {
			return nil, err
		}
		out, err := render.ExportJSON(res)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to export layout")
		}
		return append(out, '\n'), nil
	}

	text, err := r.Render(ctx, doc)
	if err != nil {
		return nil, err
	}
	return []byte(text + "\n"), nil
}

// textSize returns the display width and line count of rendered text.
func textSize(text string) (width, height int) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	return width, len(lines)
}
