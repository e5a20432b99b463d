package grid

import (
	"testing"
)

func items(its ...testItem) []Item {
	out := make([]Item, len(its))
	for i, it := range its {
		out[i] = it
	}
	return out
}

func TestLayoutJustify(t *testing.T) {
	tests := []struct {
		justify Justify
		wantX   int
	}{
		{JustifyLeft, 1},
		{JustifyCenter, 3},
		{JustifyRight, 5},
	}

	for _, tt := range tests {
		t.Run(tt.justify.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Justify = tt.justify
			res := Layout(items(testItem{w: 1, h: 1}, testItem{w: 5, h: 1}), opts)

			if got := res.Tracks.Columns[0]; got != 7 {
				t.Fatalf("column width = %d, want 7", got)
			}
			if got := res.Block(0).X; got != tt.wantX {
				t.Errorf("short item X = %d, want %d", got, tt.wantX)
			}
			if got := res.Block(1).X; got != 1 {
				t.Errorf("widest item X = %d, want 1", got)
			}
			if got := res.Block(1).Y; got != 2 {
				t.Errorf("second row Y = %d, want 2", got)
			}
		})
	}
}

func TestLayoutAlign(t *testing.T) {
	tests := []struct {
		align Align
		wantY int
	}{
		{AlignTop, 0},
		{AlignCenter, 1},
		{AlignBottom, 2},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Limit = 2
			opts.Align = tt.align
			res := Layout(items(testItem{w: 1, h: 3}, testItem{w: 1, h: 1}), opts)

			if got := res.Block(1).Y; got != tt.wantY {
				t.Errorf("short item Y = %d, want %d", got, tt.wantY)
			}
			if got := res.Block(1).X; got != 5 {
				t.Errorf("second column X = %d, want 5", got)
			}
		})
	}
}

func TestLayoutPerBlockOverride(t *testing.T) {
	right := JustifyRight
	bottom := AlignBottom

	opts := DefaultOptions()
	opts.Limit = 2
	res := Layout(items(
		testItem{w: 4, h: 3},
		testItem{w: 1, h: 1, align: &bottom},
		testItem{w: 1, h: 1, justify: &right},
		testItem{w: 1, h: 1},
	), opts)

	if got := res.Block(1).Y; got != 2 {
		t.Errorf("aligned item Y = %d, want 2", got)
	}
	if got := res.Block(2).X; got != 4 {
		t.Errorf("justified item X = %d, want 4", got)
	}
	if got := res.Block(3).X; got != 8 {
		t.Errorf("default item X = %d, want 8", got)
	}
}

func TestLayoutPadding(t *testing.T) {
	opts := DefaultOptions()
	opts.Padding = Sides{Top: 1, Right: 2, Bottom: 1, Left: 3}
	res := Layout(items(testItem{w: 2, h: 1}), opts)

	b := res.Block(0)
	if b.IntrinsicWidth != 7 || b.IntrinsicHeight != 3 {
		t.Errorf("intrinsic = %dx%d, want 7x3", b.IntrinsicWidth, b.IntrinsicHeight)
	}
	if b.X != 3 || b.Y != 1 {
		t.Errorf("origin = (%d,%d), want (3,1)", b.X, b.Y)
	}
}

func TestLayoutSpanningBlockCentered(t *testing.T) {
	opts := DefaultOptions()
	opts.Limit = 2
	opts.Padding = Sides{}
	opts.Justify = JustifyCenter
	res := Layout(items(testItem{w: 3, h: 1}, testItem{w: 3, h: 1}, testItem{w: 1, h: 1, cols: 2}), opts)

	b := res.Block(2)
	if b.Width != 7 {
		t.Fatalf("spanning width = %d, want 7", b.Width)
	}
	if b.X != 3 {
		t.Errorf("spanning X = %d, want 3", b.X)
	}
}

func TestLayoutVisible(t *testing.T) {
	opts := DefaultOptions()
	opts.Limit = 3
	res := Layout(items(testItem{w: 1, h: 1}), opts)

	if len(res.Blocks) != 3 {
		t.Fatalf("blocks = %d, want 3", len(res.Blocks))
	}
	if got := len(res.Visible()); got != 1 {
		t.Errorf("Visible() = %d blocks, want 1", got)
	}

	opts.Placeholders = true
	res = Layout(items(testItem{w: 1, h: 1}), opts)
	if got := len(res.Visible()); got != 3 {
		t.Errorf("Visible() with placeholders = %d blocks, want 3", got)
	}
}

func TestLayoutWithoutLines(t *testing.T) {
	opts := DefaultOptions()
	opts.Lines = false
	res := Layout(items(testItem{w: 1, h: 1}), opts)
	if res.Lines != nil {
		t.Error("Lines should be nil when disabled")
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"defaults", func(o *Options) {}, false},
		{"zero limit", func(o *Options) { o.Limit = 0 }, true},
		{"negative gap", func(o *Options) { o.RowGap = -1 }, true},
		{"negative padding", func(o *Options) { o.Padding.Left = -2 }, true},
		{"negative hint", func(o *Options) { o.Hints.Bottom = -1 }, true},
		{"lines need gaps", func(o *Options) { o.ColumnGap = 0 }, true},
		{"no lines no gaps", func(o *Options) { o.Lines = false; o.RowGap, o.ColumnGap = 0, 0 }, false},
		{"lines need hints", func(o *Options) { o.Hints, o.Padding = Sides{}, Sides{} }, true},
		{"lines need every hint", func(o *Options) { o.Hints.Right = 0 }, true},
		{"no lines no hints", func(o *Options) { o.Lines = false; o.Hints = Sides{} }, false},
		{"unknown flow", func(o *Options) { o.Flow = Flow(7) }, true},
		{"unknown justify", func(o *Options) { o.Justify = Justify(-1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			if err := opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseEnums(t *testing.T) {
	if f, err := ParseFlow("column"); err != nil || f != FlowColumn {
		t.Errorf("ParseFlow(column) = %v, %v", f, err)
	}
	if j, err := ParseJustify("right"); err != nil || j != JustifyRight {
		t.Errorf("ParseJustify(right) = %v, %v", j, err)
	}
	if a, err := ParseAlign("center"); err != nil || a != AlignCenter {
		t.Errorf("ParseAlign(center) = %v, %v", a, err)
	}
	if _, err := ParseAlign("middle"); err == nil {
		t.Error("ParseAlign(middle) should fail")
	}
}
