package common

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/miosa/shytable/style"
)

// KeyHelp renders a one-line key-binding hint. Each binding is rendered as:
//
//	key description
//
// Bindings whose Enabled() is false are omitted.
func KeyHelp(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, style.HelpKey.Render(h.Key)+" "+style.HelpDesc.Render(h.Desc))
	}
	return strings.Join(parts, style.HelpSeparator.Render(" · "))
}
