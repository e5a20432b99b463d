package cli

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/matzehuels/boxgrid/pkg/glyph"
	pkgio "github.com/matzehuels/boxgrid/pkg/io"
)

// =============================================================================
// View Command
// =============================================================================

// viewCommand creates the interactive viewer command.
func (c *CLI) viewCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Browse a rendered document in the terminal",
		Long: `Browse a rendered document in the terminal.

Scroll with the arrow keys or h/j/k/l, cycle glyph styles with tab, and
quit with q.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			doc, err := pkgio.Load(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			draw := func(style string) (string, error) {
				r, err := s.renderer(c.Logger, style)
				if err != nil {
					return "", err
				}
				return r.Render(ctx, doc)
			}
			m, err := newViewModel(pkgio.DisplayName(path), s.style, draw)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	addLayoutFlags(cmd, &flags)
	return cmd
}

// =============================================================================
// ViewModel - scrollable diagram viewer
// =============================================================================

// drawFunc renders the document in the named glyph style.
type drawFunc func(style string) (string, error)

// chromeLines is the number of screen lines used by the header and footer.
const chromeLines = 3

// ViewModel is the bubbletea model for the diagram viewer.
type ViewModel struct {
	Title  string
	Styles []string
	Style  int

	Lines      []string
	Width      int // diagram width in cells
	OffsetX    int
	OffsetY    int
	ScreenW    int
	ScreenH    int
	draw       drawFunc
	renderings map[string][]string
}

func newViewModel(title, style string, draw drawFunc) (ViewModel, error) {
	m := ViewModel{
		Title:      title,
		Styles:     glyph.Names(),
		ScreenW:    80,
		ScreenH:    24,
		draw:       draw,
		renderings: make(map[string][]string),
	}
	if i := slices.Index(m.Styles, style); i >= 0 {
		m.Style = i
	}
	if err := m.load(); err != nil {
		return m, err
	}
	return m, nil
}

// load renders the current style, reusing earlier renderings.
func (m *ViewModel) load() error {
	name := m.Styles[m.Style]
	lines, ok := m.renderings[name]
	if !ok {
		text, err := m.draw(name)
		if err != nil {
			return err
		}
		lines = strings.Split(text, "\n")
		m.renderings[name] = lines
	}
	m.Lines = lines
	m.Width = 0
	for _, l := range lines {
		m.Width = max(m.Width, runewidth.StringWidth(l))
	}
	m.clamp()
	return nil
}

func (m *ViewModel) pageHeight() int { return max(m.ScreenH-chromeLines, 1) }

func (m *ViewModel) clamp() {
	m.OffsetY = max(0, min(m.OffsetY, len(m.Lines)-m.pageHeight()))
	m.OffsetX = max(0, min(m.OffsetX, m.Width-m.ScreenW))
}

func (m ViewModel) Init() tea.Cmd {
	return nil
}

func (m ViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.OffsetY--
		case "down", "j":
			m.OffsetY++
		case "left", "h":
			m.OffsetX -= 4
		case "right", "l":
			m.OffsetX += 4
		case "pgup":
			m.OffsetY -= m.pageHeight()
		case "pgdown", " ":
			m.OffsetY += m.pageHeight()
		case "home", "g":
			m.OffsetX, m.OffsetY = 0, 0
		case "tab":
			m.Style = (m.Style + 1) % len(m.Styles)
			if err := m.load(); err != nil {
				return m, tea.Quit
			}
		case "shift+tab":
			m.Style = (m.Style + len(m.Styles) - 1) % len(m.Styles)
			if err := m.load(); err != nil {
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.ScreenW, m.ScreenH = msg.Width, msg.Height
	}
	m.clamp()
	return m, nil
}

func (m ViewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  style %s  %dx%d", m.Styles[m.Style], m.Width, len(m.Lines))))
	b.WriteString("\n")

	end := min(m.OffsetY+m.pageHeight(), len(m.Lines))
	for _, line := range m.Lines[m.OffsetY:end] {
		b.WriteString(cutCells(line, m.OffsetX, m.ScreenW))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ scroll  tab style  q quit"))
	return b.String()
}

// cutCells returns the part of line covering display cells [from,
// from+width). A wide rune cut in half becomes a space.
func cutCells(line string, from, width int) string {
	var b strings.Builder
	x := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		switch {
		case x+w <= from:
		case x < from:
			b.WriteString(strings.Repeat(" ", x+w-from))
		case x+w > from+width:
			if x < from+width {
				b.WriteString(strings.Repeat(" ", from+width-x))
			}
			return b.String()
		default:
			b.WriteRune(r)
		}
		x += w
	}
	return b.String()
}

var _ tea.Model = ViewModel{}
