package tictactoe

import "testing"

func TestCheckWinnerLines(t *testing.T) {
	for _, mark := range []Mark{X, O} {
		for _, line := range Lines {
			var b Board
			for _, i := range line {
				b[i] = mark
			}
			r := CheckWinner(b)
			if r.Status != Won || r.Winner != mark {
				t.Errorf("line %v of %v: got %+v", line, mark, r)
			}
		}
	}
}

func TestCheckWinner(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		status Status
		winner Mark
	}{
		{"empty board", Board{}, InProgress, Empty},
		{
			name:   "partial board",
			board:  Board{X, O, Empty, Empty, X, Empty, Empty, Empty, O},
			status: InProgress,
		},
		{
			name:   "full board without line",
			board:  Board{X, O, X, X, O, O, O, X, X},
			status: Tied,
		},
		{
			name:   "win on the last empty cell",
			board:  Board{X, O, X, O, X, O, O, X, X},
			status: Won,
			winner: X,
		},
		{
			name:   "two in a row is not a win",
			board:  Board{O, O, Empty, X, X, Empty, Empty, Empty, Empty},
			status: InProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CheckWinner(tt.board)
			if r.Status != tt.status || r.Winner != tt.winner {
				t.Errorf("CheckWinner() = %+v, want {%v %v}", r, tt.status, tt.winner)
			}
		})
	}
}

func TestEmptyCells(t *testing.T) {
	b := Board{X, Empty, O, Empty, Empty, X, O, X, Empty}
	got := b.EmptyCells()
	want := []int{1, 3, 4, 8}
	if len(got) != len(want) {
		t.Fatalf("EmptyCells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("EmptyCells() = %v, want %v", got, want)
		}
	}
}

func TestMarkOther(t *testing.T) {
	if X.Other() != O || O.Other() != X || Empty.Other() != Empty {
		t.Error("Other() should swap X and O and keep Empty")
	}
}
