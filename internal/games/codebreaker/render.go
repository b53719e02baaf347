package codebreaker

import (
	"fmt"

	"github.com/vovakirdan/tui-mindgames/internal/core"
)

const (
	pegRune   = '●'
	emptyRune = '·'
)

var screenColors = map[Color]core.Color{
	Red:    core.ColorPegRed,
	Blue:   core.ColorPegBlue,
	Green:  core.ColorPegGreen,
	Yellow: core.ColorPegYellow,
	Purple: core.ColorPegPurple,
	Orange: core.ColorPegOrange,
}

// Render draws the guess history, the guess being built, and the palette.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	v := g.engine.View()
	codeLen := len(v.Current)
	rowW := codeLen*2 + 4 + codeLen*2
	needH := v.MaxRows + 8
	if g.screenW < rowW+10 || g.screenH < needH {
		dst.DrawTextCentered(g.screenH/2, "Window too small")
		return
	}

	x0 := (g.screenW - rowW) / 2
	dst.DrawTextCenteredColor(0, "CODE BREAKER", core.ColorBrightCyan)

	for r := 0; r < v.MaxRows; r++ {
		y := 2 + r
		dst.DrawText(x0-4, y, fmt.Sprintf("%2d", r+1))
		switch {
		case r < len(v.Rows):
			drawCode(dst, x0, y, v.Rows[r].Guess)
			drawFeedback(dst, x0+codeLen*2+3, y, v.Rows[r].Feedback, codeLen)
		case r == v.CurrentRow && v.Status == StatusPlaying:
			drawCode(dst, x0, y, v.Current)
			dst.DrawTextColor(x0-1, y, ">", core.ColorBrightWhite)
		default:
			drawCode(dst, x0, y, make([]Color, codeLen))
		}
	}

	y := 3 + v.MaxRows
	for i, c := range v.Palette {
		x := x0 + i*4
		dst.DrawText(x, y, fmt.Sprintf("%d", i+1))
		dst.SetColor(x+1, y, pegRune, screenColors[c])
		if i == g.palette && v.Status == StatusPlaying {
			dst.SetColor(x-1, y, '[', core.ColorBrightWhite)
			dst.SetColor(x+2, y, ']', core.ColorBrightWhite)
		}
	}

	if v.Secret != nil {
		dst.DrawText(x0-8, y+2, "Secret:")
		drawCode(dst, x0, y+2, v.Secret)
	}
	dst.DrawTextCentered(y+4, statusLine(v))
}

func drawCode(dst *core.Screen, x, y int, code []Color) {
	for i, c := range code {
		if c == NoColor {
			dst.SetColor(x+i*2, y, emptyRune, core.ColorGray)
			continue
		}
		dst.SetColor(x+i*2, y, pegRune, screenColors[c])
	}
}

// drawFeedback shows exact hits as filled pegs and color hits as hollow ones.
func drawFeedback(dst *core.Screen, x, y int, fb Feedback, n int) {
	for i := 0; i < n; i++ {
		switch {
		case i < fb.Exact:
			dst.SetColor(x+i, y, '●', core.ColorBrightWhite)
		case i < fb.Exact+fb.Color:
			dst.SetColor(x+i, y, '○', core.ColorBrightWhite)
		default:
			dst.SetColor(x+i, y, emptyRune, core.ColorGray)
		}
	}
}

func statusLine(v View) string {
	switch v.Status {
	case StatusWon:
		return fmt.Sprintf("Cracked in %d! R to play again", len(v.Rows))
	case StatusLost:
		return "Out of guesses. R to play again"
	}
	if v.Notice != "" {
		return v.Notice
	}
	return "1-6 pick, Enter place/submit, Backspace erase"
}
