package tictactoe

import (
	"github.com/vovakirdan/tui-mindgames/internal/config"
	"github.com/vovakirdan/tui-mindgames/internal/sched"
)

// View is the render payload emitted after every transition.
type View struct {
	Board    Board  `json:"board"`
	Status   Status `json:"status"`
	Winner   Mark   `json:"winner"`
	Turn     Mark   `json:"turn"`
	Thinking bool   `json:"thinking"`
}

// Renderer receives a View after every state transition.
type Renderer func(View)

// Engine runs one human (X) versus computer (O) match. It is not safe for
// concurrent use; calls and scheduled actions must share one goroutine.
type Engine struct {
	cfg    config.TicTacToeConfig
	solver Solver
	timers *sched.Group
	render Renderer

	board    Board
	result   Result
	turn     Mark
	thinking bool
}

// New creates an engine with an empty board and X to move. render may be nil.
func New(cfg config.TicTacToeConfig, s sched.Scheduler, render Renderer) *Engine {
	return &Engine{
		cfg:    cfg,
		solver: Solver{PreferFasterWin: cfg.Opponent.PreferFasterWin},
		timers: sched.NewGroup(s),
		render: render,
		turn:   X,
	}
}

// Reset clears the board and cancels a pending computer move.
func (e *Engine) Reset() {
	e.timers.CancelAll()
	e.board = Board{}
	e.result = Result{}
	e.turn = X
	e.thinking = false
	e.emit()
}

// Stop cancels a pending computer move without touching the board.
func (e *Engine) Stop() {
	e.timers.CancelAll()
}

// HandleCellClick places the human's mark on index.
// Returns false if the click was ignored.
func (e *Engine) HandleCellClick(index int) bool {
	if index < 0 || index >= BoardSize || e.board[index] != Empty ||
		e.result.Status != InProgress || e.turn != X {
		return false
	}

	e.board[index] = X
	e.result = CheckWinner(e.board)
	if e.result.Status != InProgress {
		e.emit()
		return true
	}

	e.turn = O
	e.thinking = true
	e.emit()
	e.timers.After(e.cfg.Opponent.ThinkDelay, e.computerMove)
	return true
}

func (e *Engine) computerMove() {
	e.thinking = false
	if cell := e.solver.BestMove(e.board, O); cell >= 0 {
		e.board[cell] = O
	}
	e.turn = X
	e.result = CheckWinner(e.board)
	e.emit()
}

func (e *Engine) emit() {
	if e.render != nil {
		e.render(e.View())
	}
}

// View returns the current render payload.
func (e *Engine) View() View {
	return View{
		Board:    e.board,
		Status:   e.result.Status,
		Winner:   e.result.Winner,
		Turn:     e.turn,
		Thinking: e.thinking,
	}
}

// Board returns a copy of the board.
func (e *Engine) Board() Board { return e.board }

// Result returns the current evaluation of the board.
func (e *Engine) Result() Result { return e.result }

// Thinking reports whether the computer move is pending.
func (e *Engine) Thinking() bool { return e.thinking }
