// Package tui runs the games in a terminal with Bubble Tea, locally or over SSH.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mindgames/internal/core"
)

var foreground = map[core.Color]lipgloss.TerminalColor{
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),

	// Same hex values as the web front end
	core.ColorPegRed:    lipgloss.Color("#ff3366"),
	core.ColorPegBlue:   lipgloss.Color("#0066ff"),
	core.ColorPegGreen:  lipgloss.Color("#00ff88"),
	core.ColorPegYellow: lipgloss.Color("#ffd700"),
	core.ColorPegPurple: lipgloss.Color("#9933ff"),
	core.ColorPegOrange: lipgloss.Color("#ff6b35"),
}

var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(foreground)+1)
	styles[core.ColorDefault] = lipgloss.NewStyle()
	for c, fg := range foreground {
		styles[c] = lipgloss.NewStyle().Foreground(fg)
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen turns a Screen into styled terminal output.
// Each row is split into runs of one color so a run is styled once.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run []rune
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		runColor := s.GetCell(0, y).Color
		run = run[:0]
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				sb.WriteString(styleFor(runColor).Render(string(run)))
				run = run[:0]
				runColor = cell.Color
			}
			run = append(run, cell.Rune)
		}
		if len(run) > 0 {
			sb.WriteString(styleFor(runColor).Render(string(run)))
		}
	}
	return sb.String()
}
