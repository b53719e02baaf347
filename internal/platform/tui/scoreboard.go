package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mindgames/internal/multiplayer"
	"github.com/vovakirdan/tui-mindgames/internal/registry"
	"github.com/vovakirdan/tui-mindgames/internal/storage"
)

const maxRows = 100 // Max scores or results to load per game

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows high scores for puzzle games and the win/loss/tie
// history for games against the computer.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	rows       []table.Row
	summary    string
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.load()
	return m
}

func (m *ScoreboardModel) current() (registry.GameInfo, bool) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, false
	}
	return m.games[m.gameCursor], true
}

func (m *ScoreboardModel) versus() bool {
	g, ok := m.current()
	return ok && multiplayer.ModeFor(g.ID) == multiplayer.MatchModeVsCPU
}

// load fetches rows and the stats line for the selected game and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.rows, m.summary = nil, ""
	g, ok := m.current()
	if ok && m.store != nil {
		if m.versus() {
			m.loadResults(g.ID)
		} else {
			m.loadScores(g.ID)
		}
	}
	m.table = m.createTable()
}

func (m *ScoreboardModel) loadScores(gameID string) {
	scores, err := m.store.TopScores(gameID, maxRows)
	if err != nil {
		m.summary = "error: " + err.Error()
		return
	}
	for i, s := range scores {
		m.rows = append(m.rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	if stats, err := m.store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		m.summary = fmt.Sprintf("%d games  |  best %d  |  avg %.1f", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}

func (m *ScoreboardModel) loadResults(gameID string) {
	results, err := m.store.RecentResults(gameID, maxRows)
	if err != nil {
		m.summary = "error: " + err.Error()
		return
	}
	for i, r := range results {
		m.rows = append(m.rows, table.Row{
			fmt.Sprintf("%d", i+1),
			strings.ToUpper(r.Outcome),
			r.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	if rec, err := m.store.Record(gameID); err == nil {
		m.summary = fmt.Sprintf("W %d  |  L %d  |  T %d", rec.Wins, rec.Losses, rec.Ties)
	}
}

func (m *ScoreboardModel) createTable() table.Model {
	second := "Score"
	if m.versus() {
		second = "Result"
	}
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: second, Width: 10},
		{Title: "Date", Width: 14},
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := "SCOREBOARD"
	if g, ok := m.current(); ok {
		title = "SCOREBOARD - " + g.Title
	}
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	var body string
	if len(m.rows) == 0 {
		body = boardMutedStyle.Italic(true).Padding(1, 4).Render("Nothing recorded yet.\nPlay a game to get on the board!")
	} else {
		body = m.table.View()
	}
	for _, line := range strings.Split(boardFrameStyle.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.summary != "" {
		b.WriteString(centerText(boardMutedStyle.Render(m.summary), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(boardMutedStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

// IsGoingBack returns true if the user wants to go back to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
