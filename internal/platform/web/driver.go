package web

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-mindgames/internal/core"
	"github.com/vovakirdan/tui-mindgames/internal/games/codebreaker"
	"github.com/vovakirdan/tui-mindgames/internal/games/memory"
	"github.com/vovakirdan/tui-mindgames/internal/games/tictactoe"
	"github.com/vovakirdan/tui-mindgames/internal/sched"
)

// driver translates client messages into calls on one engine.
type driver interface {
	start()
	handle(msg ClientMessage) bool
	result() (done bool, score int, outcome core.Outcome)
	stop()
}

func (s *Server) newDriver(gameID string, loop *sched.Loop, rng *rand.Rand, emit func(any)) (driver, error) {
	switch gameID {
	case "memory":
		return &memoryDriver{
			engine: memory.New(s.config.Memory, loop, rng, func(v memory.View) { emit(v) }),
		}, nil
	case "tictactoe":
		return &tictactoeDriver{
			engine: tictactoe.New(s.config.TicTacToe, loop, func(v tictactoe.View) { emit(v) }),
		}, nil
	case "codebreaker":
		return &codebreakerDriver{
			engine: codebreaker.New(s.config.CodeBreaker, rng, func(v codebreaker.View) { emit(v) }),
		}, nil
	default:
		return nil, fmt.Errorf("web: no driver for game %q", gameID)
	}
}

// index returns the message's cell index, or -1 so engines ignore it.
func index(msg ClientMessage) int {
	if msg.Index == nil {
		return -1
	}
	return *msg.Index
}

type memoryDriver struct {
	engine *memory.Engine
}

func (d *memoryDriver) start() { d.engine.Start() }
func (d *memoryDriver) stop()  { d.engine.Stop() }

func (d *memoryDriver) handle(msg ClientMessage) bool {
	if msg.Type != "click" {
		return false
	}
	return d.engine.HandleCellClick(index(msg))
}

func (d *memoryDriver) result() (bool, int, core.Outcome) {
	return d.engine.Status() == memory.StatusGameOver, d.engine.Score(), core.OutcomeNone
}

type tictactoeDriver struct {
	engine *tictactoe.Engine
}

func (d *tictactoeDriver) start() { d.engine.Reset() }
func (d *tictactoeDriver) stop()  { d.engine.Stop() }

func (d *tictactoeDriver) handle(msg ClientMessage) bool {
	if msg.Type != "click" {
		return false
	}
	return d.engine.HandleCellClick(index(msg))
}

func (d *tictactoeDriver) result() (bool, int, core.Outcome) {
	r := d.engine.Result()
	return r.Status != tictactoe.InProgress, 0, tictactoe.OutcomeOf(r)
}

type codebreakerDriver struct {
	engine *codebreaker.Engine
}

func (d *codebreakerDriver) start() { d.engine.Start() }
func (d *codebreakerDriver) stop()  {}

func (d *codebreakerDriver) handle(msg ClientMessage) bool {
	switch msg.Type {
	case "pick":
		return d.engine.Pick(codebreaker.ParseColor(msg.Color))
	case "erase":
		return d.engine.Erase()
	case "submit":
		return d.engine.Submit()
	case "guess":
		guess := make([]codebreaker.Color, len(msg.Guess))
		for i, name := range msg.Guess {
			guess[i] = codebreaker.ParseColor(name)
		}
		return d.engine.SubmitGuess(guess)
	default:
		return false
	}
}

func (d *codebreakerDriver) result() (bool, int, core.Outcome) {
	switch d.engine.Status() {
	case codebreaker.StatusWon:
		return true, d.engine.Score(), core.OutcomeWin
	case codebreaker.StatusLost:
		return true, 0, core.OutcomeLoss
	default:
		return false, 0, core.OutcomeNone
	}
}
