package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mindgames/internal/core"
	"github.com/vovakirdan/tui-mindgames/internal/multiplayer"
	"github.com/vovakirdan/tui-mindgames/internal/registry"
)

// TickMsg advances the running game by one step.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// GameModel is the Bubble Tea model that runs one game at a fixed tick rate.
// It is used directly by `arcade play` and embedded in SSH and menu sessions.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	saver      multiplayer.ResultSaver
	config     core.RuntimeConfig
	session    multiplayer.SessionID
	match      *multiplayer.Match
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	quitting   bool
	backToMenu bool
	saved      bool // Whether the result of the current match was saved
	saveErr    error
}

// NewGameModel creates a model for game. saver may be nil to skip persistence.
func NewGameModel(game registry.Game, saver multiplayer.ResultSaver, cfg core.RuntimeConfig, session multiplayer.SessionID) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if session == "" {
		session = multiplayer.NewSessionID()
	}

	// Reset here rather than in Init: Init has a value receiver, so state
	// set there would not survive.
	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		saver:      saver,
		config:     cfg,
		session:    session,
		match:      multiplayer.NewMatch(session, game.ID()),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Turn-based games keep their state across resizes
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.resize()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// resizer is implemented by games that can adapt to a new screen size in place.
type resizer interface {
	Resize(w, h int)
}

func (m *GameModel) resize() {
	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack {
		// Sessions swallow the quit and show the menu instead
		m.backToMenu = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.match = multiplayer.NewMatch(m.session, m.game.ID())
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.saveResult()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveResult records the finished match once.
func (m *GameModel) saveResult() {
	m.saved = true
	if m.saver == nil {
		return
	}
	data := m.match.Result(m.gameState.Score, string(m.gameState.Outcome))
	m.saveErr = m.saver.SaveMatchResult(data)
}

// saveScreenshot saves the current screen to ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current state.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// SaveErr returns the error of the last result save, if any.
func (m GameModel) SaveErr() error {
	return m.saveErr
}

// Run plays a single game in the local terminal.
func Run(game registry.Game, saver multiplayer.ResultSaver, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, saver, cfg, "")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if gm, ok := final.(GameModel); ok && gm.SaveErr() != nil {
		return fmt.Errorf("tui: saving result: %w", gm.SaveErr())
	}
	return nil
}
