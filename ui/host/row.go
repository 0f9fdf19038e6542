package host

import "slices"

// Row is a row element in the terminal document. It carries one text line per
// terminal line of its height; missing lines render blank.
//
// A row is displayed as soon as it is attached to a container and stays
// displayed until Hide is called.
type Row struct {
	lines   []string
	classes []string
	height  int
	top     int
	left    int
	hidden  bool
	owner   *Container
}

// NewRow creates an unattached row holding the given lines. Its height
// defaults to the number of lines (at least 1) until SetHeight is called.
func NewRow(lines ...string) *Row {
	return &Row{
		lines:  lines,
		height: max(1, len(lines)),
	}
}

// AddClass adds a class name. Adding the same class twice is a no-op.
func (r *Row) AddClass(name string) {
	if !slices.Contains(r.classes, name) {
		r.classes = append(r.classes, name)
	}
}

// HasClass reports whether the row carries the class.
func (r *Row) HasClass(name string) bool { return slices.Contains(r.classes, name) }

// Classes returns the row's classes in the order they were added.
func (r *Row) Classes() []string { return r.classes }

// SetHeight sets the number of terminal lines the row occupies.
func (r *Row) SetHeight(h int) { r.height = max(0, h) }

// Height returns the number of terminal lines the row occupies.
func (r *Row) Height() int { return r.height }

// SetOffset positions the row inside its container.
func (r *Row) SetOffset(top, left int) {
	r.top = top
	r.left = max(0, left)
}

// Offset returns the row's position inside its container.
func (r *Row) Offset() (top, left int) { return r.top, r.left }

// Show displays the row.
func (r *Row) Show() {
	if !r.hidden {
		return
	}
	r.hidden = false
	if r.owner != nil {
		r.owner.display(r)
	}
}

// Hide removes the row from the display without detaching it.
func (r *Row) Hide() {
	if r.hidden {
		return
	}
	r.hidden = true
	if r.owner != nil {
		r.owner.undisplay(r)
	}
}

// Hidden reports whether Hide was called more recently than Show.
func (r *Row) Hidden() bool { return r.hidden }

// Line returns the i-th line of the row's text, or "" past the end.
func (r *Row) Line(i int) string {
	if i < 0 || i >= len(r.lines) {
		return ""
	}
	return r.lines[i]
}
