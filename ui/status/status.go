// Package status provides the bottom status bar for the table viewer.
// It shows row counts, the materialised window and the scroll position.
package status

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/miosa/shytable/style"
)

// Model is the status bar state. Drive it via setter methods; it has no Update loop.
type Model struct {
	rows      int
	from, to  int
	created   int
	scrollTop int
	maxScroll int
	theme     string
	loading   bool
	hint      string
	width     int
}

// New returns a zero-value Model.
func New() Model {
	return Model{}
}

// SetRows updates the dataset size.
func (m *Model) SetRows(n int) { m.rows = n }

// SetWindow updates the inclusive range of shown rows.
func (m *Model) SetWindow(from, to int) {
	m.from = from
	m.to = to
}

// SetCreated updates the number of materialised row elements.
func (m *Model) SetCreated(n int) { m.created = n }

// SetScroll updates the scroll offset and its upper bound.
func (m *Model) SetScroll(top, maxScroll int) {
	m.scrollTop = top
	m.maxScroll = maxScroll
}

// SetTheme sets the theme label.
func (m *Model) SetTheme(name string) { m.theme = name }

// SetLoading marks a load in flight.
func (m *Model) SetLoading(b bool) { m.loading = b }

// SetHint sets the right-aligned key hint.
func (m *Model) SetHint(h string) { m.hint = h }

// SetWidth sets the bar width.
func (m *Model) SetWidth(w int) { m.width = w }

// View renders the status bar:
// "rows 1,000,000 · window 0-70 · built 71 · line 0/999,960 · dark      ? help"
func (m Model) View() string {
	var parts []string
	if m.loading {
		parts = append(parts, style.StatusValue.Render("loading…"))
	} else {
		parts = append(parts, pill("rows", fmt.Sprintf("%d", m.rows)))
		if m.rows > 0 {
			parts = append(parts,
				WindowPill(m.from, m.to),
				pill("built", fmt.Sprintf("%d", m.created)),
				ScrollPill(m.scrollTop, m.maxScroll),
			)
		}
	}
	if m.theme != "" {
		parts = append(parts, style.Faint.Render(m.theme))
	}
	left := style.StatusBar.Render(strings.Join(parts, style.HeaderSeparator.Render(" · ")))
	if m.hint == "" || m.width <= 0 {
		return left
	}
	right := style.Hint.Render(m.hint)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

// WindowPill renders the shown range, e.g. "window 40-110".
func WindowPill(from, to int) string {
	return pill("window", fmt.Sprintf("%d-%d", from, to))
}

// ScrollPill renders the scroll position, e.g. "line 1200/999,960 0%".
func ScrollPill(top, maxScroll int) string {
	pct := 100
	if maxScroll > 0 {
		pct = top * 100 / maxScroll
	}
	return pill("line", fmt.Sprintf("%d/%d %d%%", top, maxScroll, pct))
}

func pill(label, value string) string {
	return style.StatusLabel.Render(label+" ") + style.StatusValue.Render(value)
}
