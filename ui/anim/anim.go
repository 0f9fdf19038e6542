// Package anim provides the gradient braille spinner shown while a dataset
// loads. Frames are pre-rendered per theme and re-rendered only when the
// theme's gradient colors change.
package anim

import (
	"image/color"
	"math"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/miosa/shytable/style"
)

const (
	fps           = 12
	frameDuration = time.Second / fps
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// idCounter gives each spinner a unique ID so ticks don't cross-talk.
var idCounter atomic.Int64

// TickMsg advances the spinner with the matching ID by one frame. Tag
// drops ticks scheduled before the last Start.
type TickMsg struct {
	ID  int64
	Tag int
}

// Model is a gradient-animated braille spinner.
type Model struct {
	id       int64
	label    string
	spinning bool
	frame    int
	tag      int

	cacheA, cacheB color.Color
	cache          []string
}

// New returns a stopped spinner with the given label.
func New(label string) Model {
	return Model{id: idCounter.Add(1), label: label}
}

// Start begins the animation. Use Tick to schedule the first frame; ticks
// from before the restart are ignored.
func (m *Model) Start() {
	m.spinning = true
	m.frame = 0
	m.tag++
}

// Tick returns the command for the next frame.
func (m Model) Tick() tea.Cmd {
	return m.tick()
}

// Stop halts the animation. Pending ticks are ignored.
func (m *Model) Stop() { m.spinning = false }

// IsSpinning reports whether the animation is running.
func (m Model) IsSpinning() bool { return m.spinning }

// Update advances the frame on each TickMsg addressed to this spinner.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || tick.Tag != m.tag || !m.spinning {
		return m, nil
	}
	m.frame = (m.frame + 1) % len(frames)
	return m, m.tick()
}

// View renders the current frame and label, or "" when stopped.
func (m *Model) View() string {
	if !m.spinning {
		return ""
	}
	if m.cache == nil || m.cacheA != style.GradColorA || m.cacheB != style.GradColorB {
		m.buildCache()
	}
	glyph := m.cache[m.frame]
	if m.label == "" {
		return glyph
	}
	return glyph + " " + style.Hint.Render(m.label)
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(frameDuration, func(time.Time) tea.Msg {
		return TickMsg{ID: id, Tag: tag}
	})
}

// buildCache renders one colored glyph per frame, bouncing between the
// theme's gradient endpoints on a sine wave.
func (m *Model) buildCache() {
	n := len(frames)
	m.cache = make([]string, n)
	for i, glyph := range frames {
		t := (math.Sin(2*math.Pi*float64(i)/float64(n)) + 1) / 2
		c := style.LerpColor(style.GradColorA, style.GradColorB, t)
		m.cache[i] = lipgloss.NewStyle().Foreground(c).Render(glyph)
	}
	m.cacheA, m.cacheB = style.GradColorA, style.GradColorB
}
