// Package toast shows short-lived notices above the status bar: data loaded,
// table cleared, theme saved, load and copy failures.
package toast

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/miosa/shytable/style"
)

// Level classifies toast severity.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

const (
	maxToasts = 3
	infoTTL   = 4 * time.Second
	errorTTL  = 8 * time.Second
)

// ttl is how long a toast of this level stays up. Failures linger so they
// can be read.
func (l Level) ttl() time.Duration {
	if l == Error {
		return errorTTL
	}
	return infoTTL
}

func (l Level) icon() (string, color.Color) {
	switch l {
	case Warning:
		return "⚠", style.Warning
	case Error:
		return "✘", style.Error
	default:
		return "✓", style.Success
	}
}

type notice struct {
	text    string
	level   Level
	expires time.Time
}

// Model is a bounded queue of notices, newest last.
type Model struct {
	queue []notice
	now   func() time.Time
}

// New creates an empty Model.
func New() Model {
	return Model{now: time.Now}
}

func (m *Model) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}

// Add shows text at level. Repeating a notice that is still up moves it to
// the bottom with a fresh expiry instead of stacking a copy. Only the newest
// maxToasts are kept.
func (m *Model) Add(text string, level Level) {
	m.queue = slices.DeleteFunc(m.queue, func(n notice) bool {
		return n.text == text && n.level == level
	})
	m.queue = append(m.queue, notice{
		text:    text,
		level:   level,
		expires: m.clock().Add(level.ttl()),
	})
	if over := len(m.queue) - maxToasts; over > 0 {
		m.queue = slices.Delete(m.queue, 0, over)
	}
}

// Infof adds an Info notice built with fmt.Sprintf.
func (m *Model) Infof(format string, args ...any) {
	m.Add(fmt.Sprintf(format, args...), Info)
}

// Tick drops expired notices. Call on every msg.ToastTick.
func (m *Model) Tick() {
	now := m.clock()
	m.queue = slices.DeleteFunc(m.queue, func(n notice) bool {
		return !now.Before(n.expires)
	})
}

// Clear drops every notice.
func (m *Model) Clear() { m.queue = nil }

// HasToasts reports whether anything is up.
func (m Model) HasToasts() bool { return len(m.queue) > 0 }

// Len returns the number of notices up.
func (m Model) Len() int { return len(m.queue) }

// View renders one right-aligned line per notice. Text is cut to fit
// termWidth so a notice never wraps onto a second line.
func (m Model) View(termWidth int) string {
	if len(m.queue) == 0 {
		return ""
	}
	lines := make([]string, 0, len(m.queue))
	for _, n := range m.queue {
		icon, col := n.level.icon()
		room := max(0, termWidth-lipgloss.Width(icon)-3)
		text := fmt.Sprintf(" %s %s ", icon, runewidth.Truncate(n.text, room, "…"))
		rendered := lipgloss.NewStyle().Foreground(col).Render(text)
		pad := max(0, termWidth-lipgloss.Width(rendered))
		lines = append(lines, strings.Repeat(" ", pad)+rendered)
	}
	return strings.Join(lines, "\n")
}
