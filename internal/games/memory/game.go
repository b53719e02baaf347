package memory

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-mindgames/internal/config"
	"github.com/vovakirdan/tui-mindgames/internal/core"
	"github.com/vovakirdan/tui-mindgames/internal/registry"
	"github.com/vovakirdan/tui-mindgames/internal/sched"
)

// Package-level settings applied on the next Reset.
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

// Game adapts Engine to the arcade platform: keys move a cursor over the
// grid, and each tick advances a virtual clock that drives playback.
type Game struct {
	cfg     config.MemoryConfig
	clock   *sched.Clock
	engine  *Engine
	cursor  core.GridCursor
	tickDur time.Duration

	screenW int
	screenH int
	paused  bool
}

// NewGame creates a memory game. Reset must be called before Step.
func NewGame() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return NewGame()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory Sequence"
}

// Reset loads configuration and starts a fresh game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	mc, err := config.LoadMemory(configPath)
	if err != nil {
		mc = config.DefaultMemoryConfig()
	}
	config.ApplyMemoryPreset(&mc, difficultyPreset)

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.cfg = mc
	g.tickDur = time.Second / time.Duration(tickRate)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.cursor = core.GridCursor{Cols: mc.Grid.Cols, Rows: mc.Grid.Rows}

	if g.engine != nil {
		g.engine.Stop()
	}
	g.clock = sched.NewClock()
	g.engine = New(mc, g.clock, rand.New(rand.NewSource(cfg.Seed)), nil)
	g.engine.Start()
}

// Step applies one frame of input, then advances playback by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && g.engine.Status() != StatusGameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.cursor.Apply(in)
	if i, ok := in.Pick(); ok {
		g.cursor.Index = core.Clamp(i, 0, g.cfg.Grid.Cells()-1)
		g.engine.HandleCellClick(i)
	} else if in.Has(core.ActionConfirm) {
		g.engine.HandleCellClick(g.cursor.Index)
	}

	g.clock.Advance(g.tickDur)
	return core.StepResult{State: g.State()}
}

// State returns the platform-facing state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Status() == StatusGameOver,
		Paused:   g.paused,
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
