package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/boxgrid/pkg/glyph"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testModel(t *testing.T, lines int) (ViewModel, *[]string) {
	t.Helper()
	var calls []string
	draw := func(style string) (string, error) {
		calls = append(calls, style)
		rows := make([]string, lines)
		for i := range rows {
			rows[i] = style + strings.Repeat("─", 100)
		}
		return strings.Join(rows, "\n"), nil
	}
	m, err := newViewModel("doc.json", glyph.Default, draw)
	if err != nil {
		t.Fatal(err)
	}
	return m, &calls
}

func update(m ViewModel, msgs ...tea.Msg) ViewModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(ViewModel)
	}
	return m
}

func TestViewModelScroll(t *testing.T) {
	m, _ := testModel(t, 50)
	m = update(m, tea.WindowSizeMsg{Width: 40, Height: 13})

	m = update(m, key("down"), key("j"))
	if m.OffsetY != 2 {
		t.Errorf("OffsetY = %d, want 2", m.OffsetY)
	}

	m = update(m, key("k"), key("k"), key("k"))
	if m.OffsetY != 0 {
		t.Errorf("OffsetY = %d, want clamped to 0", m.OffsetY)
	}

	for range 100 {
		m = update(m, key("j"))
	}
	if want := 50 - (13 - chromeLines); m.OffsetY != want {
		t.Errorf("OffsetY = %d, want clamped to %d", m.OffsetY, want)
	}

	m = update(m, key("l"), key("l"))
	if m.OffsetX != 8 {
		t.Errorf("OffsetX = %d, want 8", m.OffsetX)
	}
	m = update(m, key("g"))
	if m.OffsetX != 0 || m.OffsetY != 0 {
		t.Errorf("home did not reset offsets: %d,%d", m.OffsetX, m.OffsetY)
	}
}

func TestViewModelCycleStyles(t *testing.T) {
	m, calls := testModel(t, 3)
	if got := m.Styles[m.Style]; got != glyph.Default {
		t.Fatalf("initial style = %q, want %q", got, glyph.Default)
	}

	for range len(m.Styles) {
		m = update(m, key("tab"))
	}
	if got := m.Styles[m.Style]; got != glyph.Default {
		t.Errorf("style after full cycle = %q", got)
	}
	if len(*calls) != len(m.Styles) {
		t.Errorf("draw called %d times, want %d (renderings reused)", len(*calls), len(m.Styles))
	}
	if !strings.HasPrefix(m.Lines[0], glyph.Default) {
		t.Errorf("lines not switched back: %q", m.Lines[0])
	}
}

func TestViewModelView(t *testing.T) {
	m, _ := testModel(t, 30)
	m = update(m, tea.WindowSizeMsg{Width: 20, Height: 8})

	view := m.View()
	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[0], "doc.json") {
		t.Errorf("header missing title: %q", lines[0])
	}
	body := lines[1 : 1+8-chromeLines]
	for _, l := range body {
		if l != "light"+strings.Repeat("─", 15) {
			t.Errorf("body line = %q", l)
		}
	}
}

func TestViewModelQuit(t *testing.T) {
	m, _ := testModel(t, 1)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestCutCells(t *testing.T) {
	tests := []struct {
		line        string
		from, width int
		want        string
	}{
		{"abcdef", 0, 3, "abc"},
		{"abcdef", 2, 10, "cdef"},
		{"a日b", 2, 2, " b"},
		{"a日b", 0, 2, "a "},
		{"abc", 5, 2, ""},
	}
	for _, tt := range tests {
		if got := cutCells(tt.line, tt.from, tt.width); got != tt.want {
			t.Errorf("cutCells(%q, %d, %d) = %q, want %q", tt.line, tt.from, tt.width, got, tt.want)
		}
	}
}
