package memory

import (
	"fmt"

	"github.com/vovakirdan/tui-mindgames/internal/core"
)

const (
	cellW = 7
	cellH = 3
	hudH  = 3
)

// Render draws the grid, HUD and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}
	v := g.engine.View()

	boardW := g.cfg.Grid.Cols * cellW
	boardH := g.cfg.Grid.Rows * cellH
	if g.screenW < boardW+2 || g.screenH < boardH+hudH+2 {
		dst.DrawTextCentered(g.screenH/2, "Window too small")
		return
	}

	x0 := (g.screenW - boardW) / 2
	y0 := hudH

	dst.DrawTextCenteredColor(0, "MEMORY", core.ColorBrightCyan)
	dst.DrawText(x0, 1, fmt.Sprintf("Level %d", v.Level))
	score := fmt.Sprintf("Score %d", v.Score)
	dst.DrawText(x0+boardW-len(score), 1, score)

	for i := 0; i < v.Cells; i++ {
		col, row := i%g.cfg.Grid.Cols, i/g.cfg.Grid.Cols
		r := core.NewRect(x0+col*cellW, y0+row*cellH, cellW-1, cellH)

		border := core.ColorGray
		if i == g.cursor.Index && v.Status == StatusAwaitingInput {
			border = core.ColorBrightWhite
		}
		dst.DrawBox(r, border)

		inner := core.NewRect(r.X+1, r.Y+1, r.W-2, 1)
		switch {
		case i == v.HighlightedCell:
			dst.DrawRect(inner, '█', core.ColorBrightYellow)
		case i == v.FeedbackCell && v.Feedback == FeedbackCorrect:
			dst.DrawRect(inner, '█', core.ColorBrightGreen)
		case i == v.FeedbackCell && v.Feedback == FeedbackWrong:
			dst.DrawRect(inner, '█', core.ColorBrightRed)
		}
	}

	dst.DrawTextCentered(y0+boardH+1, statusLine(v, g.paused))
}

func statusLine(v View, paused bool) string {
	if paused {
		return "PAUSED - P to resume"
	}
	switch v.Status {
	case StatusPresenting:
		return "Watch the sequence..."
	case StatusAwaitingInput:
		return fmt.Sprintf("Your turn: %d/%d  (arrows + Enter)", v.Progress, v.SequenceLength)
	case StatusEvaluating:
		return "Correct! Get ready..."
	case StatusGameOver:
		return fmt.Sprintf("GAME OVER - reached level %d. R to restart", v.Level)
	default:
		return ""
	}
}
