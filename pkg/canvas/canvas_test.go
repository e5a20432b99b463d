package canvas

import (
	"testing"
)

func TestFromText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		wantW int
		wantH int
	}{
		{"empty", "", 0, 1},
		{"single line", "hello", 5, 1},
		{"multi line", "ab\nlonger\nc", 6, 3},
		{"wide runes", "日本", 4, 1},
		{"mixed width", "a日b", 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FromText(tt.text)
			w, h := c.Size()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Size() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
			if got := c.String(); got != tt.text {
				t.Errorf("String() = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestFromTextZeroWidth(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		wantW int
	}{
		{"combining accent composes", "cafe\u0301", "café", 4},
		{"tab stop", "a\tb", "a       b", 9},
		{"tab at stop", "12345678\tx", "12345678        x", 17},
		{"mark without precomposed form", "x\u0301y", "xy", 2},
		{"control character", "a\x00b", "ab", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FromText(tt.text)
			if got := c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if w, _ := c.Size(); w != tt.wantW {
				t.Errorf("width = %d, want %d", w, tt.wantW)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	c := FromText("ab")
	moved := c.Translate(2, 1)

	if got := moved.Get(Point{2, 1}); got != 'a' {
		t.Errorf("Get(2,1) = %q, want 'a'", got)
	}
	if got := c.Get(Point{2, 1}); got != ' ' {
		t.Errorf("original canvas changed: Get(2,1) = %q", got)
	}
	lo, hi := moved.Bounds()
	if lo != (Point{2, 1}) || hi != (Point{4, 2}) {
		t.Errorf("Bounds() = %v, %v; want {2 1}, {4 2}", lo, hi)
	}
	if w, h := moved.Size(); w != 2 || h != 1 {
		t.Errorf("Size() = %dx%d, want 2x1", w, h)
	}
}

func TestOverlayOrder(t *testing.T) {
	bottom := FromText("xxx\nxxx")
	top := FromText("o").Translate(1, 1)

	got := Overlay(bottom, nil, top).String()
	want := "xxx\nxox"
	if got != want {
		t.Errorf("Overlay() = %q, want %q", got, want)
	}

	got = Overlay(top, bottom).String()
	want = "xxx\nxxx"
	if got != want {
		t.Errorf("reversed Overlay() = %q, want %q", got, want)
	}
}

func TestOverlayGaps(t *testing.T) {
	a := FromText("a")
	b := FromText("b").Translate(3, 2)

	got := Overlay(a, b).String()
	want := "a\n\n   b"
	if got != want {
		t.Errorf("Overlay() = %q, want %q", got, want)
	}
}

func TestNormalize(t *testing.T) {
	c := New()
	c.Set(Point{-1, -1}, '+')
	c.Set(Point{1, 0}, '|')

	n := c.Normalize()
	lo, _ := n.Bounds()
	if lo != (Point{}) {
		t.Errorf("normalized Bounds() lo = %v, want origin", lo)
	}
	if got, want := n.String(), "+\n  |"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSetOverWideRune(t *testing.T) {
	c := FromText("日x")
	c.Set(Point{1, 0}, '-')

	if got, want := c.String(), " -x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	c = FromText("ab")
	c.Set(Point{0, 0}, '日')
	if got, want := c.String(), "日"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestZeroValue(t *testing.T) {
	var c Canvas
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Errorf("zero Size() = %dx%d", w, h)
	}
	c.Set(Point{0, 0}, 'z')
	if got := c.String(); got != "z" {
		t.Errorf("String() = %q, want \"z\"", got)
	}
}
