// Package vlist renders only the visible rows of an arbitrarily large dataset.
//
// A VirtualList owns one wrapper container inside a scrollable parent. Row
// elements are created lazily the first time their index falls inside the
// visible window and are never destroyed until the dataset is replaced or
// cleared; scrolling only toggles their visibility. The per-event cost is
// bounded by the number of rows whose visibility changes, not by the size of
// the dataset.
//
// The package knows nothing about how elements are drawn. The host document
// supplies a Parent (the scrollable viewport) and the caller supplies a
// RowFactory that turns one data record into an Element.
package vlist

import (
	"log/slog"
)

// Marker classes applied to the host document.
const (
	ClassParent    = "shyParent"
	ClassContainer = "shyContainer"
	ClassRow       = "shyRow"
)

// Defaults used when no option overrides them.
const (
	DefaultRowHeight  = 30
	DefaultBufferRows = 20
)

// ---------------------------------------------------------------------------
// Host collaborators
// ---------------------------------------------------------------------------

// Element is a single row element in the host document.
type Element interface {
	AddClass(name string)
	SetHeight(h int)
	// SetOffset positions the element absolutely inside its container.
	SetOffset(top, left int)
	Show()
	Hide()
}

// Container is the wrapper element that holds every row element. Its height
// is the logical height of the whole list so the parent's native scroll
// extent covers all rows, materialised or not.
type Container interface {
	Height() int
	SetHeight(h int)
	Append(e Element)
	// Empty detaches every element previously appended.
	Empty()
}

// Parent is the scrollable viewport the list lives in.
type Parent interface {
	// Height is the visible height of the viewport.
	Height() int
	ScrollTop() int
	SetScrollTop(y int)
	AddClass(name string)
	// NewContainer creates a child container carrying the given class.
	NewContainer(class string) Container
}

// RowFactory builds a fully formed, not yet positioned element for one row.
// The list applies the row class, height and offset itself; the factory must
// not position the element.
type RowFactory[T any] func(row T, index int) Element

// Window is the inclusive range of row indices currently considered shown.
type Window struct {
	From, To int
}

// ---------------------------------------------------------------------------
// Options
// ---------------------------------------------------------------------------

// Option is a functional option for New.
type Option func(*options)

type options struct {
	rowHeight  int
	bufferRows int
	log        *slog.Logger
}

// WithRowHeight sets the fixed height of every row. Values below 1 are ignored.
func WithRowHeight(h int) Option {
	return func(o *options) {
		if h > 0 {
			o.rowHeight = h
		}
	}
}

// WithBufferRows sets how many extra rows are kept shown beyond each edge of
// the viewport. Negative values are ignored.
func WithBufferRows(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.bufferRows = n
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// ---------------------------------------------------------------------------
// VirtualList
// ---------------------------------------------------------------------------

// VirtualList is a virtualised, fixed-row-height list.
//
// It is not safe for concurrent use. Every method runs to completion on the
// caller's goroutine, which is expected to be the host's event loop.
type VirtualList[T any] struct {
	parent    Parent
	container Container
	factory   RowFactory[T]

	rowHeight  int
	bufferRows int
	log        *slog.Logger

	data  []T
	cache rowCache

	// visibleRows is the number of whole rows that fit in the parent.
	visibleRows int

	fromRow int
	toRow   int
	// live reports whether rows in [fromRow, toRow] are actually shown.
	// It is false before the first fill and after Clear.
	live bool
}

// New creates a VirtualList inside parent. It adds ClassParent to the parent,
// creates the wrapper container and measures the parent once.
//
// A nil parent or factory is a programming error and panics.
func New[T any](parent Parent, factory RowFactory[T], opts ...Option) *VirtualList[T] {
	if parent == nil {
		panic("vlist: nil parent")
	}
	if factory == nil {
		panic("vlist: nil row factory")
	}

	o := options{
		rowHeight:  DefaultRowHeight,
		bufferRows: DefaultBufferRows,
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	parent.AddClass(ClassParent)
	v := &VirtualList[T]{
		parent:     parent,
		container:  parent.NewContainer(ClassContainer),
		factory:    factory,
		rowHeight:  o.rowHeight,
		bufferRows: o.bufferRows,
		log:        o.log,
		cache:      newRowCache(),
	}
	v.CalculateVisibleRows()
	return v
}

// Clear removes every row element and all data, and scrolls the parent back
// to the top.
func (v *VirtualList[T]) Clear() {
	v.container.Empty()
	v.data = nil
	v.cache = newRowCache()
	v.fromRow, v.toRow = 0, 0
	v.live = false
	v.parent.SetScrollTop(0)
	v.log.Debug("vlist cleared")
}

// SetData replaces the dataset. All previously created rows are discarded,
// the container is resized to cover every row, and the rows at the current
// scroll position are shown.
func (v *VirtualList[T]) SetData(rows []T) {
	v.Clear()

	v.data = rows

	if h := len(v.data) * v.rowHeight; v.container.Height() != h {
		v.container.SetHeight(h)
	}
	v.log.Debug("vlist data set",
		"rows", len(v.data),
		"row_height", v.rowHeight,
		"buffer_rows", v.bufferRows,
	)

	v.UpdateVisibleRows()
}

// HandleScroll reacts to the parent scrolling to scrollTop.
func (v *VirtualList[T]) HandleScroll(scrollTop int) {
	v.ShowVisibleRows(scrollTop)
}

// HandleResize re-measures the parent and reconciles the visible rows.
func (v *VirtualList[T]) HandleResize() {
	v.CalculateVisibleRows()
	v.log.Debug("vlist resized", "visible_rows", v.visibleRows)
	v.UpdateVisibleRows()
}

// UpdateVisibleRows reconciles the visible rows at the parent's current
// scroll position.
func (v *VirtualList[T]) UpdateVisibleRows() {
	v.ShowVisibleRows(v.parent.ScrollTop())
}

// Window returns the currently shown inclusive range.
func (v *VirtualList[T]) Window() Window {
	return Window{From: v.fromRow, To: v.toRow}
}

// VisibleRows returns the number of whole rows that fit in the parent.
func (v *VirtualList[T]) VisibleRows() int { return v.visibleRows }

// Len returns the number of rows in the dataset.
func (v *VirtualList[T]) Len() int { return len(v.data) }

// Created returns the number of row elements materialised so far.
func (v *VirtualList[T]) Created() int { return v.cache.len() }

// RowHeight returns the fixed row height.
func (v *VirtualList[T]) RowHeight() int { return v.rowHeight }

// BufferRows returns the number of buffer rows kept beyond each edge.
func (v *VirtualList[T]) BufferRows() int { return v.bufferRows }
