package vlist

// ComputeRange returns the inclusive range of rows that must be shown when the
// parent is scrolled to scrollTop. The range covers the viewport plus the
// buffer rows and is always within [0, Len()-1], or (0, 0) for an empty
// dataset.
//
// The bottom edge receives the buffer twice: once inside the window span and
// once more before clamping. The top edge receives it once.
func (v *VirtualList[T]) ComputeRange(scrollTop int) (from, to int) {
	n := len(v.data)
	if n == 0 {
		return 0, 0
	}
	if scrollTop < 0 {
		scrollTop = 0
	}

	top := scrollTop / v.rowHeight
	top = max(0, top-v.bufferRows)
	bottom := top + v.visibleRows + 2*v.bufferRows
	bottom = min(n-1, bottom+v.bufferRows)

	// A scroll offset past the end can push top beyond the last row.
	top = min(top, bottom)
	return top, bottom
}
