package style

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// LerpColor linearly interpolates between two colors at position t ∈ [0,1].
func LerpColor(a, b color.Color, t float64) color.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()

	// RGBA() returns values in [0, 65535]. Convert to [0, 255].
	lerp := func(x, y uint32) uint8 {
		v := float64(x>>8)*(1-t) + float64(y>>8)*t
		return uint8(min(v, 255))
	}

	return color.NRGBA{
		R: lerp(ar, br),
		G: lerp(ag, bg),
		B: lerp(ab, bb),
		A: lerp(aa, ba),
	}
}

// GradientTitle renders text in bold with a left-to-right gradient between
// the theme's gradient endpoints.
func GradientTitle(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n == 0 {
		return ""
	}
	base := lipgloss.NewStyle().Bold(true)
	if n == 1 {
		return base.Foreground(GradColorA).Render(text)
	}

	var sb strings.Builder
	for i, r := range runes {
		t := float64(i) / float64(n-1)
		sb.WriteString(base.Foreground(LerpColor(GradColorA, GradColorB, t)).Render(string(r)))
	}
	return sb.String()
}
