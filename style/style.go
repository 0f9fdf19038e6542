package style

import (
	"image/color"
	"slices"

	"charm.land/lipgloss/v2"
)

// Row classes understood by RowStyle besides the list's own marker class.
const (
	ClassLightRow = "lightRow"
	ClassDarkRow  = "darkRow"
)

// Colors, initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = lipgloss.Color("#7C3AED")
	Secondary color.Color = lipgloss.Color("#06B6D4")
	Success   color.Color = lipgloss.Color("#22C55E")
	Warning   color.Color = lipgloss.Color("#F59E0B")
	Error     color.Color = lipgloss.Color("#EF4444")
	Muted     color.Color = lipgloss.Color("#6B7280")
	Dim       color.Color = lipgloss.Color("#374151")
	Border    color.Color = lipgloss.Color("#4B5563")

	RowLightBg color.Color = lipgloss.Color("#1F2937")
	RowDarkBg  color.Color = lipgloss.Color("#111827")
	RowText    color.Color = lipgloss.Color("#E5E7EB")

	// Gradient endpoints default to dark theme violet→cyan.
	GradColorA color.Color = lipgloss.Color("#7C3AED")
	GradColorB color.Color = lipgloss.Color("#06B6D4")
)

// Base styles, rebuilt when the theme changes via rebuildStyles().
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style

	// Header
	HeaderDetail    lipgloss.Style
	HeaderSeparator lipgloss.Style

	// Rows
	Row      lipgloss.Style
	LightRow lipgloss.Style
	DarkRow  lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusLabel lipgloss.Style
	StatusValue lipgloss.Style

	// Hint text
	Hint lipgloss.Style

	// Help
	HelpKey       lipgloss.Style // key binding display
	HelpDesc      lipgloss.Style // key description
	HelpSeparator lipgloss.Style
	HelpBorder    lipgloss.Style

	// Scrollbar
	ScrollbarThumb lipgloss.Style
	ScrollbarTrack lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetTheme applies a named theme, updating all color vars and rebuilding styles.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentThemeName = name
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	RowLightBg = t.RowLightBg
	RowDarkBg = t.RowDarkBg
	RowText = t.RowText
	GradColorA = t.GradA
	GradColorB = t.GradB
	rebuildStyles()
	return true
}

// IsDark returns whether the current theme is dark.
func IsDark() bool {
	return CurrentThemeName != "light"
}

// RowStyle maps a row's classes to its style. Alternating classes win over
// the plain row style.
func RowStyle(classes []string) lipgloss.Style {
	switch {
	case slices.Contains(classes, ClassLightRow):
		return LightRow
	case slices.Contains(classes, ClassDarkRow):
		return DarkRow
	default:
		return Row
	}
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)

	HeaderDetail = lipgloss.NewStyle().Foreground(Muted)
	HeaderSeparator = lipgloss.NewStyle().Foreground(Dim)

	Row = lipgloss.NewStyle().Foreground(RowText)
	LightRow = Row.Background(RowLightBg)
	DarkRow = Row.Background(RowDarkBg)

	StatusBar = lipgloss.NewStyle().Foreground(Muted).PaddingLeft(1)
	StatusLabel = lipgloss.NewStyle().Foreground(Muted)
	StatusValue = lipgloss.NewStyle().Foreground(Secondary)

	Hint = lipgloss.NewStyle().Foreground(Dim)

	HelpKey = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	HelpDesc = lipgloss.NewStyle().Foreground(Muted)
	HelpSeparator = lipgloss.NewStyle().Foreground(Dim)
	HelpBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	ScrollbarThumb = lipgloss.NewStyle().Foreground(Primary)
	ScrollbarTrack = lipgloss.NewStyle().Foreground(Dim)
}
