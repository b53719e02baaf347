package tictactoe

import (
	"time"

	"github.com/vovakirdan/tui-mindgames/internal/config"
	"github.com/vovakirdan/tui-mindgames/internal/core"
	"github.com/vovakirdan/tui-mindgames/internal/registry"
	"github.com/vovakirdan/tui-mindgames/internal/sched"
)

var (
	configPath       string
	difficultyPreset = config.DifficultyFixed
)

// SetConfigPath sets a custom config file path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for subsequent games.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficultyPreset = p
}

// Game adapts Engine to the arcade platform. Digits 1-9 mark a cell
// directly; arrows and Enter work too.
type Game struct {
	clock   *sched.Clock
	engine  *Engine
	cursor  core.GridCursor
	tickDur time.Duration

	screenW int
	screenH int
}

// NewGame creates a tic-tac-toe game. Reset must be called before Step.
func NewGame() *Game {
	return &Game{}
}

func init() {
	registry.Register("tictactoe", func() registry.Game {
		return NewGame()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tictactoe"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tic-Tac-Toe vs CPU"
}

// Reset loads configuration and starts a new match.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tc, err := config.LoadTicTacToe(configPath)
	if err != nil {
		tc = config.DefaultTicTacToeConfig()
	}
	config.ApplyTicTacToePreset(&tc, difficultyPreset)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickDur = time.Second / time.Duration(tickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cursor = core.GridCursor{Cols: 3, Rows: 3, Index: 4}

	if g.engine != nil {
		g.engine.Stop()
	}
	g.clock = sched.NewClock()
	g.engine = New(tc, g.clock, nil)
	g.engine.Reset()
}

// Step applies one frame of input and advances the opponent's think timer.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cursor.Apply(in)
	if i, ok := in.Pick(); ok {
		g.cursor.Index = i
		g.engine.HandleCellClick(i)
	} else if in.Has(core.ActionConfirm) {
		g.engine.HandleCellClick(g.cursor.Index)
	}

	g.clock.Advance(g.tickDur)
	return core.StepResult{State: g.State()}
}

// State reports the match outcome once the board is terminal.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	r := g.engine.Result()
	return core.GameState{
		GameOver: r.Status != InProgress,
		Outcome:  OutcomeOf(r),
	}
}

// OutcomeOf converts a board result to the human player's outcome.
func OutcomeOf(r Result) core.Outcome {
	switch {
	case r.Status == Tied:
		return core.OutcomeTie
	case r.Status == Won && r.Winner == X:
		return core.OutcomeWin
	case r.Status == Won:
		return core.OutcomeLoss
	default:
		return core.OutcomeNone
	}
}

// Resize adapts the layout to a new screen size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}
