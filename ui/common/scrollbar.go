// Package common holds small rendering helpers shared by the viewer's panes.
package common

import (
	"strings"

	"github.com/miosa/shytable/style"
)

const (
	scrollTrackChar = "│"
	scrollThumbChar = "█"
)

// Thumb returns the position and size of a scrollbar thumb on a track of
// trackHeight lines for a document of contentHeight lines scrolled to offset.
// It returns size 0 when the whole document fits on the track.
func Thumb(trackHeight, contentHeight, offset int) (top, size int) {
	if trackHeight <= 0 || contentHeight <= trackHeight {
		return 0, 0
	}

	// At least one line, never more than the track.
	size = min(max(1, trackHeight*trackHeight/contentHeight), trackHeight)

	scrollable := contentHeight - trackHeight
	offset = min(max(0, offset), scrollable)
	top = offset * (trackHeight - size) / scrollable
	return min(top, trackHeight-size), size
}

// Scrollbar renders a vertical scrollbar as a single column of trackHeight
// lines. It returns "" when the whole document fits.
func Scrollbar(trackHeight, contentHeight, offset int) string {
	top, size := Thumb(trackHeight, contentHeight, offset)
	if size == 0 {
		return ""
	}
	rows := make([]string, trackHeight)
	for i := range rows {
		if i >= top && i < top+size {
			rows[i] = style.ScrollbarThumb.Render(scrollThumbChar)
		} else {
			rows[i] = style.ScrollbarTrack.Render(scrollTrackChar)
		}
	}
	return strings.Join(rows, "\n")
}
