package codebreaker

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-mindgames/internal/config"
)

// Status is the phase of a game.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "idle"
	}
}

// MarshalText lets Status serialize as its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Row is one submitted guess with its score.
type Row struct {
	Guess    []Color  `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// View is the render payload emitted after every transition.
// Secret is only filled in once the game is lost.
type View struct {
	Rows       []Row   `json:"rows"`
	CurrentRow int     `json:"currentRow"`
	Current    []Color `json:"current"`
	Status     Status  `json:"status"`
	Secret     []Color `json:"secret,omitempty"`
	Notice     string  `json:"notice,omitempty"`
	MaxRows    int     `json:"maxRows"`
	Palette    []Color `json:"palette"`
}

// Renderer receives a View after every state transition.
type Renderer func(View)

// Engine owns one code-breaker game. It is not safe for concurrent use.
type Engine struct {
	cfg    config.CodeBreakerConfig
	rng    *rand.Rand
	render Renderer

	secret  []Color
	rows    []Row
	current []Color
	status  Status
	notice  string
}

// New creates an idle engine. render may be nil.
func New(cfg config.CodeBreakerConfig, rng *rand.Rand, render Renderer) *Engine {
	return &Engine{
		cfg:     cfg,
		rng:     rng,
		render:  render,
		current: make([]Color, cfg.Code.Length),
	}
}

// Start draws a new secret and clears the board.
func (e *Engine) Start() {
	e.secret = make([]Color, e.cfg.Code.Length)
	palette := e.palette()
	for i := range e.secret {
		e.secret[i] = palette[e.rng.Intn(len(palette))]
	}
	e.rows = nil
	e.clearCurrent()
	e.status = StatusPlaying
	e.notice = ""
	e.emit()
}

// SubmitGuess scores a complete guess. Returns false if the guess was ignored
// because the game is not in progress or the guess is incomplete or invalid.
func (e *Engine) SubmitGuess(guess []Color) bool {
	if e.status != StatusPlaying || !e.valid(guess) {
		return false
	}

	g := append([]Color(nil), guess...)
	fb := Score(e.secret, g)
	e.rows = append(e.rows, Row{Guess: g, Feedback: fb})
	e.notice = ""

	switch {
	case fb.Exact == e.cfg.Code.Length:
		e.status = StatusWon
	case len(e.rows) >= e.cfg.Code.MaxRows:
		e.status = StatusLost
	}
	e.clearCurrent()
	e.emit()
	return true
}

// Pick puts c into the first empty slot of the guess being built.
// Returns false if the guess is full, c is not in the palette or the game ended.
func (e *Engine) Pick(c Color) bool {
	if e.status != StatusPlaying || !e.inPalette(c) {
		return false
	}
	for i, slot := range e.current {
		if slot == NoColor {
			e.current[i] = c
			e.notice = ""
			e.emit()
			return true
		}
	}
	return false
}

// Erase clears the last filled slot of the guess being built.
func (e *Engine) Erase() bool {
	if e.status != StatusPlaying {
		return false
	}
	for i := len(e.current) - 1; i >= 0; i-- {
		if e.current[i] != NoColor {
			e.current[i] = NoColor
			e.notice = ""
			e.emit()
			return true
		}
	}
	return false
}

// Submit submits the guess being built. An incomplete guess is rejected with
// a notice asking for the missing colors.
func (e *Engine) Submit() bool {
	if e.status != StatusPlaying {
		return false
	}
	if !e.valid(e.current) {
		e.notice = fmt.Sprintf("choose %d colors", e.cfg.Code.Length)
		e.emit()
		return false
	}
	return e.SubmitGuess(e.current)
}

func (e *Engine) valid(guess []Color) bool {
	if len(guess) != e.cfg.Code.Length {
		return false
	}
	for _, c := range guess {
		if !e.inPalette(c) {
			return false
		}
	}
	return true
}

func (e *Engine) inPalette(c Color) bool {
	return c > NoColor && int(c) <= e.cfg.Code.Colors
}

// palette returns the colors in play.
func (e *Engine) palette() []Color {
	return Palette[:e.cfg.Code.Colors]
}

func (e *Engine) clearCurrent() {
	for i := range e.current {
		e.current[i] = NoColor
	}
}

func (e *Engine) emit() {
	if e.render != nil {
		e.render(e.View())
	}
}

// View returns the current render payload.
func (e *Engine) View() View {
	rows := make([]Row, len(e.rows))
	copy(rows, e.rows)
	v := View{
		Rows:       rows,
		CurrentRow: len(e.rows),
		Current:    append([]Color(nil), e.current...),
		Status:     e.status,
		Notice:     e.notice,
		MaxRows:    e.cfg.Code.MaxRows,
		Palette:    append([]Color(nil), e.palette()...),
	}
	if e.status == StatusLost {
		v.Secret = e.Secret()
	}
	return v
}

// Status returns the current phase.
func (e *Engine) Status() Status { return e.status }

// Rows returns the number of submitted guesses.
func (e *Engine) Rows() int { return len(e.rows) }

// Secret returns a copy of the secret code.
func (e *Engine) Secret() []Color {
	return append([]Color(nil), e.secret...)
}

// Score returns the points earned: one bonus per unused row on a win, else 0.
func (e *Engine) Score() int {
	if e.status != StatusWon {
		return 0
	}
	return (e.cfg.Code.MaxRows + 1 - len(e.rows)) * e.cfg.Scoring.PointsPerSpareRow
}
