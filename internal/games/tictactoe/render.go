package tictactoe

import (
	"github.com/vovakirdan/tui-mindgames/internal/core"
)

const (
	cellW  = 5
	cellH  = 3
	boardW = 3*cellW + 2
	boardH = 3*cellH + 2
)

// Render draws the board with separators, the cursor and a status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	if g.screenW < boardW+2 || g.screenH < boardH+5 {
		dst.DrawTextCentered(g.screenH/2, "Window too small")
		return
	}
	v := g.engine.View()

	x0 := (g.screenW - boardW) / 2
	y0 := 2
	dst.DrawTextCenteredColor(0, "TIC-TAC-TOE", core.ColorBrightCyan)

	// Grid lines; verticals last so crossings get the junction rune
	for i := 1; i < 3; i++ {
		y := y0 + i*(cellH+1) - 1
		for x := x0; x < x0+boardW; x++ {
			dst.SetColor(x, y, '─', core.ColorGray)
		}
	}
	for i := 1; i < 3; i++ {
		x := x0 + i*(cellW+1) - 1
		for y := y0; y < y0+boardH; y++ {
			ch := '│'
			if (y-y0+1)%(cellH+1) == 0 {
				ch = '┼'
			}
			dst.SetColor(x, y, ch, core.ColorGray)
		}
	}

	win := winningLine(v.Board)
	over := v.Status != InProgress
	for i, m := range v.Board {
		cx := x0 + (i%3)*(cellW+1) + cellW/2
		cy := y0 + (i/3)*(cellH+1) + cellH/2

		color := core.ColorBrightBlue
		if m == O {
			color = core.ColorBrightRed
		}
		if win[i] {
			color = core.ColorBrightYellow
		}

		switch {
		case m != Empty:
			dst.SetColor(cx, cy, rune(m.String()[0]), color)
		case !over:
			dst.SetColor(cx, cy, rune('1'+i), core.ColorGray)
		}
		if i == g.cursor.Index && !over {
			dst.SetColor(cx-2, cy, '[', core.ColorBrightWhite)
			dst.SetColor(cx+2, cy, ']', core.ColorBrightWhite)
		}
	}

	dst.DrawTextCentered(y0+boardH+1, statusLine(v))
}

func statusLine(v View) string {
	switch {
	case v.Status == Tied:
		return "It's a tie! R to play again"
	case v.Status == Won && v.Winner == X:
		return "You win! R to play again"
	case v.Status == Won:
		return "Computer wins! R to play again"
	case v.Thinking:
		return "Computer is thinking..."
	default:
		return "Your turn (X): 1-9 or arrows + Enter"
	}
}

// winningLine marks the cells of the first completed line, if any.
func winningLine(b Board) [BoardSize]bool {
	var cells [BoardSize]bool
	for _, l := range Lines {
		m := b[l[0]]
		if m != Empty && b[l[1]] == m && b[l[2]] == m {
			for _, i := range l {
				cells[i] = true
			}
			break
		}
	}
	return cells
}
