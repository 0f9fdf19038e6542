// Package msg defines the tea.Msg types dispatched within the viewer.
// It imports no UI packages to avoid import cycles.
package msg

import (
	"time"

	"github.com/miosa/shytable/dataset"
)

// -- Data loading --

// DataLoaded carries a freshly loaded dataset.
type DataLoaded struct {
	Seq     int // matches the load request; stale results are dropped
	Rows    []dataset.Record
	Source  string // file path, "stdin" or "generated"
	Elapsed time.Duration
}

// LoadFailed reports a dataset that could not be read.
type LoadFailed struct {
	Seq    int
	Source string
	Err    error
}

// -- Settings --

// ThemeSaved reports the outcome of persisting the theme to the config file.
type ThemeSaved struct {
	Theme string
	Path  string
	Err   error
}

// Copied reports the outcome of copying a row to the clipboard.
type Copied struct {
	Text string
	Err  error
}

// -- Timers --

// ToastTick prunes expired toasts.
type ToastTick struct{}
