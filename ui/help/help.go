// Package help renders the full-screen key reference. The reference is built
// as markdown from the active key bindings and rendered with glamour.
package help

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/miosa/shytable/style"
)

// Section groups related bindings under a heading.
type Section struct {
	Title    string
	Bindings []key.Binding
}

// Model is the help overlay. It caches the rendered markdown per width and
// theme so repeated frames do not re-run glamour.
type Model struct {
	sections []Section
	width    int
	height   int

	cacheKey string
	cached   string
}

// New returns a help model for the given sections.
func New(sections ...Section) Model {
	return Model{sections: sections}
}

// SetSize updates the area the overlay may use.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Markdown returns the key reference as a markdown document. Disabled
// bindings are omitted.
func (m Model) Markdown() string {
	var b strings.Builder
	b.WriteString("# Keys\n")
	for _, s := range m.sections {
		var rows []string
		for _, kb := range s.Bindings {
			if !kb.Enabled() {
				continue
			}
			h := kb.Help()
			rows = append(rows, fmt.Sprintf("| `%s` | %s |", h.Key, h.Desc))
		}
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n| Key | Action |\n| --- | --- |\n", s.Title)
		b.WriteString(strings.Join(rows, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

// View renders the overlay inside a rounded border, centred in the area set
// by SetSize.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	inner := max(20, min(m.width-4, 72))
	ck := fmt.Sprintf("%d/%s", inner, style.CurrentThemeName)
	if ck != m.cacheKey {
		m.cached = render(m.Markdown(), inner)
		m.cacheKey = ck
	}
	box := style.HelpBorder.Render(m.cached)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// render renders md with glamour, falling back to plain text on error.
// The glamour style follows the active theme rather than probing the
// terminal, which would race the program's own input reader.
func render(md string, width int) string {
	glamourStyle := "light"
	if style.IsDark() {
		glamourStyle = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
