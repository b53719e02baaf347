package tictactoe

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-mindgames/internal/config"
	"github.com/vovakirdan/tui-mindgames/internal/sched"
)

func newTestEngine(render Renderer) (*Engine, *sched.Clock) {
	clock := sched.NewClock()
	return New(config.DefaultTicTacToeConfig(), clock, render), clock
}

func TestHumanMoveThenComputerReply(t *testing.T) {
	var views []View
	e, clock := newTestEngine(func(v View) { views = append(views, v) })
	e.Reset()

	if !e.HandleCellClick(4) {
		t.Fatal("click on an empty cell should be accepted")
	}
	v := e.View()
	if !v.Thinking || v.Turn != O || v.Board[4] != X {
		t.Fatalf("after human move: %+v", v)
	}

	clock.Advance(499 * time.Millisecond)
	if e.Board() != (Board{4: X}) {
		t.Fatal("computer moved before the think delay elapsed")
	}

	clock.Advance(time.Millisecond)
	v = e.View()
	if v.Thinking || v.Turn != X {
		t.Fatalf("after computer move: %+v", v)
	}
	if v.Board[0] != O {
		t.Errorf("computer should answer a center opening in the corner at 0, board %v", v.Board)
	}
	if n := len(views); n < 3 || !views[n-2].Thinking {
		t.Errorf("expected a thinking view before the reply, got %d views", n)
	}
}

func TestInvalidClicksIgnored(t *testing.T) {
	e, clock := newTestEngine(nil)
	e.Reset()

	for _, idx := range []int{-1, 9, 42} {
		if e.HandleCellClick(idx) {
			t.Errorf("HandleCellClick(%d) should be ignored", idx)
		}
	}

	e.HandleCellClick(0)
	if e.HandleCellClick(1) {
		t.Error("click during the computer's turn should be ignored")
	}
	clock.Flush()

	if e.HandleCellClick(0) {
		t.Error("click on an occupied cell should be ignored")
	}
	occupied := e.Board()
	for i, m := range occupied {
		if m == O && e.HandleCellClick(i) {
			t.Errorf("click on the computer's cell %d should be ignored", i)
		}
	}
}

func TestNoMovesAfterGameOver(t *testing.T) {
	e, clock := newTestEngine(nil)
	e.Reset()

	// Play the first empty cell until the match ends; the computer cannot lose
	for e.Result().Status == InProgress {
		cells := e.Board().EmptyCells()
		if !e.HandleCellClick(cells[0]) {
			t.Fatalf("move %d rejected on %v", cells[0], e.Board())
		}
		clock.Flush()
	}

	r := e.Result()
	if r.Status == Won && r.Winner == X {
		t.Fatal("human should never beat the computer")
	}
	frozen := e.Board()
	for _, i := range frozen.EmptyCells() {
		if e.HandleCellClick(i) {
			t.Errorf("click on %d accepted after the game ended", i)
		}
	}
	if e.Board() != frozen {
		t.Error("board changed after the game ended")
	}
}

func TestResetCancelsComputerMove(t *testing.T) {
	var views []View
	e, clock := newTestEngine(func(v View) { views = append(views, v) })
	e.Reset()
	e.HandleCellClick(4)
	clock.Advance(200 * time.Millisecond)

	e.Reset()
	views = nil
	clock.Advance(time.Second)

	if e.Board() != (Board{}) {
		t.Errorf("stale computer move landed on the new board: %v", e.Board())
	}
	if len(views) != 0 {
		t.Errorf("stale action rendered %d views", len(views))
	}
	if e.View().Turn != X || e.View().Thinking {
		t.Error("reset should hand the move back to the human")
	}
	if clock.Pending() != 0 {
		t.Errorf("pending actions = %d, expected 0", clock.Pending())
	}
}

func TestWinningMoveSkipsComputerTurn(t *testing.T) {
	cfg := config.DefaultTicTacToeConfig()
	clock := sched.NewClock()
	e := New(cfg, clock, nil)
	e.Reset()
	// Build a position by hand; the engine only checks the rules on clicks
	e.board = Board{X, O, Empty, O, X, Empty, Empty, Empty, Empty}

	if !e.HandleCellClick(8) {
		t.Fatal("winning move rejected")
	}
	if r := e.Result(); r.Status != Won || r.Winner != X {
		t.Fatalf("Result() = %+v, expected X to win", r)
	}
	if e.Thinking() || clock.Pending() != 0 {
		t.Error("no computer move should be scheduled after a terminal move")
	}
}

func TestViewJSON(t *testing.T) {
	e, clock := newTestEngine(nil)
	e.Reset()
	e.HandleCellClick(4)
	clock.Flush()

	data, err := json.Marshal(e.View())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"board":["O","","","","X","","","",""]`, `"status":"in_progress"`, `"turn":"X"`, `"thinking":false`} {
		if !strings.Contains(s, want) {
			t.Errorf("view JSON %s missing %s", s, want)
		}
	}
}
