package host

import (
	"fmt"

	"github.com/miosa/shytable/ui/vlist"
)

// Container is a wrapper element holding absolutely positioned rows. Its
// height is logical: it sets the scroll extent of the viewport regardless of
// how many rows are attached.
type Container struct {
	class  string
	height int
	rows   []*Row

	// displayed holds the attached rows that are not hidden. Drawing walks
	// only this set.
	displayed map[*Row]struct{}
}

func newContainer(class string) *Container {
	return &Container{
		class:     class,
		displayed: make(map[*Row]struct{}),
	}
}

// Class returns the container's class.
func (c *Container) Class() string { return c.class }

// Height returns the logical height of the container.
func (c *Container) Height() int { return c.height }

// SetHeight sets the logical height of the container.
func (c *Container) SetHeight(h int) { c.height = max(0, h) }

// Append attaches a row. e must be a *Row created by this package; anything
// else panics.
func (c *Container) Append(e vlist.Element) {
	r, ok := e.(*Row)
	if !ok {
		panic(fmt.Sprintf("host: cannot attach %T, want *host.Row", e))
	}
	if r.owner != nil && r.owner != c {
		r.owner.detach(r)
	}
	r.owner = c
	c.rows = append(c.rows, r)
	if !r.hidden {
		c.display(r)
	}
}

// Empty detaches every row. Detached rows keep their state but no longer
// affect the container.
func (c *Container) Empty() {
	for _, r := range c.rows {
		r.owner = nil
	}
	c.rows = nil
	c.displayed = make(map[*Row]struct{})
}

// Len returns the number of attached rows.
func (c *Container) Len() int { return len(c.rows) }

// Displayed returns the number of attached rows that are not hidden.
func (c *Container) Displayed() int { return len(c.displayed) }

func (c *Container) display(r *Row)   { c.displayed[r] = struct{}{} }
func (c *Container) undisplay(r *Row) { delete(c.displayed, r) }

func (c *Container) detach(r *Row) {
	c.undisplay(r)
	for i, x := range c.rows {
		if x == r {
			c.rows = append(c.rows[:i], c.rows[i+1:]...)
			break
		}
	}
	r.owner = nil
}
