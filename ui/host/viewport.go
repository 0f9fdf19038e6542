// Package host is a minimal terminal document for the virtual list: a
// scrollable viewport holding containers of absolutely positioned rows.
//
// It plays the part of the layout engine. Only rows that are displayed are
// drawn, so drawing cost follows the number of shown rows rather than the
// number of rows ever created.
package host

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/miosa/shytable/ui/vlist"
)

const ellipsis = "…"

// Styler returns the style for a row with the given classes.
type Styler func(classes []string) lipgloss.Style

// Viewport is the scrollable parent element. Width and height are in
// terminal cells and lines.
type Viewport struct {
	width     int
	height    int
	scrollTop int

	classes    []string
	containers []*Container
}

// NewViewport creates an empty viewport of the given size.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:  max(0, width),
		height: max(0, height),
	}
}

// Width returns the viewport width in cells.
func (v *Viewport) Width() int { return v.width }

// Height returns the viewport height in lines.
func (v *Viewport) Height() int { return v.height }

// Resize changes the viewport size and re-clamps the scroll offset.
func (v *Viewport) Resize(width, height int) {
	v.width = max(0, width)
	v.height = max(0, height)
	v.SetScrollTop(v.scrollTop)
}

// AddClass adds a class name to the viewport.
func (v *Viewport) AddClass(name string) {
	if !slices.Contains(v.classes, name) {
		v.classes = append(v.classes, name)
	}
}

// Classes returns the viewport's classes.
func (v *Viewport) Classes() []string { return v.classes }

// NewContainer creates a container inside the viewport.
func (v *Viewport) NewContainer(class string) vlist.Container {
	c := newContainer(class)
	v.containers = append(v.containers, c)
	return c
}

// Containers returns the containers in creation order.
func (v *Viewport) Containers() []*Container { return v.containers }

// ContentHeight is the tallest container height. Containers overlap at the
// origin, like absolutely positioned children.
func (v *Viewport) ContentHeight() int {
	h := 0
	for _, c := range v.containers {
		h = max(h, c.height)
	}
	return h
}

// MaxScroll is the largest valid scroll offset.
func (v *Viewport) MaxScroll() int {
	return max(0, v.ContentHeight()-v.height)
}

// ScrollTop returns the current scroll offset in lines.
func (v *Viewport) ScrollTop() int { return v.scrollTop }

// SetScrollTop scrolls to y, clamped to [0, MaxScroll()].
func (v *Viewport) SetScrollTop(y int) {
	v.scrollTop = min(max(0, y), v.MaxScroll())
}

// ScrollTo is SetScrollTop returning whether the offset changed.
func (v *Viewport) ScrollTo(y int) bool {
	before := v.scrollTop
	v.SetScrollTop(y)
	return v.scrollTop != before
}

// ScrollBy scrolls by delta lines and reports whether the offset changed.
func (v *Viewport) ScrollBy(delta int) bool {
	return v.ScrollTo(v.scrollTop + delta)
}

// Render draws the visible part of the document as exactly Height() lines,
// each padded to Width() cells. styler may be nil.
func (v *Viewport) Render(styler Styler) string {
	if v.width <= 0 || v.height <= 0 {
		return ""
	}
	blank := strings.Repeat(" ", v.width)
	lines := make([]string, v.height)
	for i := range lines {
		lines[i] = blank
	}

	for _, c := range v.containers {
		for r := range c.displayed {
			v.drawRow(lines, r, styler)
		}
	}
	return strings.Join(lines, "\n")
}

func (v *Viewport) drawRow(lines []string, r *Row, styler Styler) {
	first := max(0, v.scrollTop-r.top)
	last := min(r.height, v.scrollTop+v.height-r.top)
	if first >= last || r.left >= v.width {
		return
	}
	var st lipgloss.Style
	if styler != nil {
		st = styler(r.classes)
	}
	indent := strings.Repeat(" ", r.left)
	for i := first; i < last; i++ {
		text := fit(r.Line(i), v.width-r.left)
		if styler != nil {
			text = st.Render(text)
		}
		lines[r.top+i-v.scrollTop] = indent + text
	}
}

// fit truncates or pads s to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, ellipsis), w)
}
