package vlist

// ShowVisibleRows makes sure the rows needed at scrollTop exist and are shown,
// and hides rows that were shown before but are now out of range.
//
// Only rows whose visibility changes are touched: rows in the intersection of
// the old and new windows receive no calls at all. An empty dataset resets
// the window to (0, 0) and creates nothing.
func (v *VirtualList[T]) ShowVisibleRows(scrollTop int) {
	if len(v.data) == 0 {
		v.fromRow, v.toRow = 0, 0
		v.live = false
		return
	}

	top, bottom := v.ComputeRange(scrollTop)

	if !v.live {
		// Initial fill: nothing is shown yet.
		for i := top; i <= bottom; i++ {
			v.GetOrCreate(i).Show()
		}
		v.commit(top, bottom)
		return
	}

	// Hide rows leaving from above.
	for i := v.fromRow; i < top && i <= v.toRow; i++ {
		v.GetOrCreate(i).Hide()
	}
	// Hide rows leaving from below.
	for j := v.toRow; j > bottom && j >= v.fromRow; j-- {
		v.GetOrCreate(j).Hide()
	}

	// Show rows entering from above.
	for k := top; k < v.fromRow && k <= bottom; k++ {
		v.GetOrCreate(k).Show()
	}
	// Show rows entering from below.
	for l := max(v.toRow+1, top); l <= bottom; l++ {
		v.GetOrCreate(l).Show()
	}

	v.commit(top, bottom)
}

func (v *VirtualList[T]) commit(top, bottom int) {
	v.fromRow, v.toRow = top, bottom
	v.live = true
}
