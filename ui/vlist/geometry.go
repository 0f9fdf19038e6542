package vlist

// CalculateVisibleRows recomputes how many whole rows fit in the parent.
// A zero or negative parent height yields zero visible rows.
func (v *VirtualList[T]) CalculateVisibleRows() {
	h := v.parent.Height()
	if h <= 0 {
		v.visibleRows = 0
		return
	}
	v.visibleRows = h / v.rowHeight
}
