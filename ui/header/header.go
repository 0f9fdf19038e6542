// Package header renders the one-line title bar above the table.
package header

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/miosa/shytable/style"
)

// Model holds the state for the header.
type Model struct {
	version string
	source  string
	rows    int
	width   int
}

// New returns a Model for the given version string.
func New(version string) Model {
	return Model{version: version}
}

// SetSource sets the data source label: a file path, "stdin" or "generated".
func (m *Model) SetSource(s string) { m.source = s }

// SetRows updates the displayed row count.
func (m *Model) SetRows(n int) { m.rows = n }

// SetWidth updates the terminal width used for the separator and truncation.
func (m *Model) SetWidth(w int) { m.width = w }

// View returns the title line: "shytable v1 · ~/data/names.txt · 1,000,000 rows".
func (m Model) View() string {
	sep := style.HeaderSeparator.Render(" · ")
	title := style.GradientTitle("shytable")
	if m.version != "" {
		title += " " + style.HeaderDetail.Render(m.version)
	}
	rows := style.HeaderDetail.Render(fmt.Sprintf("%s rows", groupDigits(m.rows)))

	fixed := lipgloss.Width(title) + lipgloss.Width(rows) + 2*lipgloss.Width(sep)
	if m.source == "" {
		return title + sep + rows
	}
	src := style.HeaderDetail.Render(truncatePath(m.source, max(8, m.width-fixed)))
	return title + sep + src + sep + rows
}

// HeaderView returns the header plus a thin separator line.
func (m Model) HeaderView() string {
	sep := lipgloss.NewStyle().Foreground(style.Border).Render(strings.Repeat("─", max(0, m.width)))
	return m.View() + "\n" + sep
}

// groupDigits formats n with thousands separators: 1000000 → "1,000,000".
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// truncatePath shortens a filesystem path to fit within maxWidth characters.
// It tries: full path → ~/relative → …/last-two-segments → …/basename.
func truncatePath(path string, maxWidth int) string {
	if len(path) <= maxWidth {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(path, home) {
		short := "~" + path[len(home):]
		if len(short) <= maxWidth {
			return short
		}
	}
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	short := "…/" + filepath.Base(dir) + "/" + base
	if len(short) <= maxWidth {
		return short
	}
	short = "…/" + base
	if len(short) <= maxWidth {
		return short
	}
	if maxWidth > 3 {
		return path[:maxWidth-1] + "…"
	}
	return path[:maxWidth]
}
