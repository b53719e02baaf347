package codebreaker

import (
	"math/rand"

	"github.com/vovakirdan/tui-mindgames/internal/config"
	"github.com/vovakirdan/tui-mindgames/internal/core"
	"github.com/vovakirdan/tui-mindgames/internal/registry"
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

// Game adapts Engine to the arcade platform.
// Digits pick a color, left/right move over the palette, Enter picks the
// highlighted color or submits a full guess, Backspace erases.
type Game struct {
	engine  *Engine
	palette int // Highlighted palette entry

	screenW int
	screenH int
}

// NewGame creates a code-breaker game. Reset must be called before Step.
func NewGame() *Game {
	return &Game{}
}

func init() {
	registry.Register("codebreaker", func() registry.Game {
		return NewGame()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "codebreaker"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Code Breaker"
}

// Reset loads configuration and draws a new secret.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	cc, err := config.LoadCodeBreaker(configPath)
	if err != nil {
		cc = config.DefaultCodeBreakerConfig()
	}
	config.ApplyCodeBreakerPreset(&cc, difficultyPreset)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.palette = 0
	g.engine = New(cc, rand.New(rand.NewSource(cfg.Seed)), nil)
	g.engine.Start()
}

// Step applies one frame of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	colors := len(g.engine.palette())
	switch {
	case in.Has(core.ActionLeft):
		g.palette = core.Clamp(g.palette-1, 0, colors-1)
	case in.Has(core.ActionRight):
		g.palette = core.Clamp(g.palette+1, 0, colors-1)
	}

	if i, ok := in.Pick(); ok {
		if i < colors {
			g.palette = i
		}
		g.engine.Pick(Color(i + 1))
	}
	if in.Has(core.ActionErase) {
		g.engine.Erase()
	}
	if in.Has(core.ActionConfirm) {
		if !g.engine.Pick(Palette[g.palette]) {
			g.engine.Submit()
		}
	}
	return core.StepResult{State: g.State()}
}

// State reports the score and outcome once the game has ended.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	st := core.GameState{Score: g.engine.Score()}
	switch g.engine.Status() {
	case StatusWon:
		st.GameOver, st.Outcome = true, core.OutcomeWin
	case StatusLost:
		st.GameOver, st.Outcome = true, core.OutcomeLoss
	}
	return st
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
