package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// palette maps core colors to ANSI 256-color codes. ColorDefault is unstyled.
var palette = [...]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

var styles = func() []lipgloss.Style {
	s := make([]lipgloss.Style, len(palette))
	for c, code := range palette {
		s[c] = lipgloss.NewStyle()
		if code != "" {
			s[c] = s[c].Foreground(lipgloss.Color(code))
		}
	}
	return s
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(styles) {
		return styles[c]
	}
	return styles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of same-colored cells share one style so each row emits few escapes.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		color := s.GetCell(0, y).Color
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(run.String()))
				run.Reset()
				color = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		sb.WriteString(styleFor(color).Render(run.String()))
		run.Reset()
	}
	return sb.String()
}
