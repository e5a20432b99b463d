package render

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/boxgrid/pkg/canvas"
	"github.com/matzehuels/boxgrid/pkg/content"
	"github.com/matzehuels/boxgrid/pkg/errors"
	"github.com/matzehuels/boxgrid/pkg/glyph"
	"github.com/matzehuels/boxgrid/pkg/grid"
	"github.com/matzehuels/boxgrid/pkg/observability"
)

// Option configures a [Renderer].
type Option func(*Renderer)

// Renderer lays out and draws content. It implements [content.Composer].
type Renderer struct {
	grid      grid.Options
	styleName string
	style     glyph.Table
	preset    content.Preset
	logger    *log.Logger
}

// WithStyle selects a glyph style by name; see [glyph.Names].
func WithStyle(name string) Option { return func(r *Renderer) { r.styleName = name } }

// WithPreset reshapes the top-level value into the given preset.
func WithPreset(p content.Preset) Option { return func(r *Renderer) { r.preset = p } }

// WithGrid replaces the grid options. Flow and Limit only affect lists.
func WithGrid(o grid.Options) Option { return func(r *Renderer) { r.grid = o } }

// WithLogger reports layout statistics at debug level. A nil logger
// disables logging.
func WithLogger(l *log.Logger) Option { return func(r *Renderer) { r.logger = l } }

// New builds a renderer, validating the grid options, the style and the
// preset.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{grid: grid.DefaultOptions(), styleName: glyph.Default}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if err := r.grid.Validate(); err != nil {
		return nil, err
	}
	style, err := glyph.Lookup(r.styleName)
	if err != nil {
		return nil, err
	}
	r.style = style
	if r.preset != "" {
		if _, err := content.ParsePreset(string(r.preset)); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Render draws v with a renderer built from opts.
func Render(ctx context.Context, v any, opts ...Option) (string, error) {
	r, err := New(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(ctx, v)
}

// Render draws v and returns the diagram text.
func (r *Renderer) Render(ctx context.Context, v any) (string, error) {
	cv, err := r.Canvas(ctx, v)
	if err != nil {
		return "", err
	}
	return cv.String(), nil
}

// Canvas draws v onto a canvas anchored at the origin.
func (r *Renderer) Canvas(ctx context.Context, v any) (cv *canvas.Canvas, err error) {
	start := time.Now()
	defer func() {
		var w, h int
		if cv != nil {
			w, h = cv.Size()
		}
		observability.Render().OnRenderComplete(ctx, w, h, time.Since(start), err)
	}()

	c, err := r.content(v)
	if err != nil {
		return nil, err
	}
	if cv, err = c.Canvas(ctx, r); err != nil {
		return nil, err
	}
	return cv.Normalize(), nil
}

// Layout returns the grid layout of the top level of v. Nested composites
// are drawn to canvases first and appear as single blocks. A value that is
// not a composite is laid out as a one-element list.
func (r *Renderer) Layout(ctx context.Context, v any) (*grid.Result, error) {
	c, err := r.content(v)
	if err != nil {
		return nil, err
	}
	comp, ok := c.(content.Composite)
	if !ok {
		comp = content.List{c}
	}
	p, columns, children := comp.Parts()
	items, err := content.Items(ctx, r, children)
	if err != nil {
		return nil, err
	}
	return r.layout(ctx, p, columns, items), nil
}

func (r *Renderer) content(v any) (content.Content, error) {
	c, err := content.From(v)
	if err != nil {
		return nil, err
	}
	if c, err = content.Coerce(c, r.preset); err != nil {
		return nil, err
	}
	return c, nil
}

// Compose lays out items with the grid options of preset p and draws the
// result. It implements [content.Composer].
func (r *Renderer) Compose(ctx context.Context, p content.Preset, columns int, items []*content.Item) *canvas.Canvas {
	return r.draw(r.layout(ctx, p, columns, items), items)
}

func (r *Renderer) layout(ctx context.Context, p content.Preset, columns int, items []*content.Item) *grid.Result {
	gi := make([]grid.Item, len(items))
	for i, it := range items {
		gi[i] = it
	}
	res := grid.Layout(gi, r.options(p, columns))
	r.logger.Debug("laid out grid",
		"preset", p,
		"items", len(items),
		"rows", res.Rows,
		"columns", res.Columns,
		"width", res.Tracks.Width(),
		"height", res.Tracks.Height())
	observability.Render().OnLayout(ctx, string(p), len(items), res.Rows, res.Columns)
	return res
}

// options returns the grid options for preset p. Placement widens the limit
// further when an item spans more tracks.
func (r *Renderer) options(p content.Preset, columns int) grid.Options {
	o := r.grid
	switch p {
	case content.PresetTuple:
		o.Flow, o.Limit = grid.FlowColumn, 1
	case content.PresetMap:
		o.Flow, o.Limit = grid.FlowRow, 2
	case content.PresetTable:
		o.Flow, o.Limit = grid.FlowRow, max(columns, 1)
	case content.PresetList:
	default:
		panic(errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q", p))
	}
	return o
}
