package app

const (
	headerHeight   = 2 // title line + separator
	statusHeight   = 1
	scrollbarWidth = 1

	// minBodyHeight keeps at least one table line on tiny terminals.
	minBodyHeight = 1
)

// Layout holds computed dimensions for the current frame.
type Layout struct {
	TermWidth    int
	TermHeight   int
	HeaderHeight int
	StatusHeight int
	ToastHeight  int
	BodyWidth    int // table width, excluding the scrollbar column
	BodyHeight   int // table height in lines
}

// ComputeLayout splits the terminal into header, table body, toasts and the
// status bar. Toasts take lines from the body so the frame height is stable.
func ComputeLayout(termW, termH, toastLines int) Layout {
	l := Layout{
		TermWidth:    termW,
		TermHeight:   termH,
		HeaderHeight: headerHeight,
		StatusHeight: statusHeight,
		ToastHeight:  max(0, toastLines),
	}
	l.BodyWidth = max(0, termW-scrollbarWidth)

	reserved := l.HeaderHeight + l.StatusHeight + l.ToastHeight
	l.BodyHeight = termH - reserved
	if l.BodyHeight < minBodyHeight {
		// Drop toasts before shrinking the table to nothing.
		l.ToastHeight = max(0, l.ToastHeight-(minBodyHeight-l.BodyHeight))
		l.BodyHeight = max(minBodyHeight, termH-l.HeaderHeight-l.StatusHeight-l.ToastHeight)
	}
	return l
}
