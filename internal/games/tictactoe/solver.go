package tictactoe

const winScore = 10

// Solver picks moves by exhaustive minimax. O maximizes and X minimizes.
// The search has no pruning or memoization; the game tree is small enough.
type Solver struct {
	// PreferFasterWin decays terminal scores by search depth, so the solver
	// takes the quickest win and delays a loss. Off, every win scores the same
	// and the first winning move in cell order is taken.
	PreferFasterWin bool
}

// BestMove returns the best cell for player using a default Solver.
func BestMove(b Board, player Mark) int {
	return Solver{}.BestMove(b, player)
}

// BestMove returns the cell player should take, or -1 if the board is
// terminal or player is Empty. Ties between equally scored moves go to the
// lowest cell index.
func (s Solver) BestMove(b Board, player Mark) int {
	if player == Empty || CheckWinner(b).Status != InProgress {
		return -1
	}

	best := -1
	var bestScore int
	for _, cell := range b.EmptyCells() {
		b[cell] = player
		score := s.minimax(&b, 1, player.Other())
		b[cell] = Empty

		if best == -1 || better(player, score, bestScore) {
			best, bestScore = cell, score
		}
	}
	return best
}

// Score returns the minimax value of b with toMove to play.
func (s Solver) Score(b Board, toMove Mark) int {
	return s.minimax(&b, 0, toMove)
}

func (s Solver) minimax(b *Board, depth int, toMove Mark) int {
	switch r := CheckWinner(*b); r.Status {
	case Won:
		return s.terminal(r.Winner, depth)
	case Tied:
		return 0
	}

	best := 0
	first := true
	for i := range b {
		if b[i] != Empty {
			continue
		}
		b[i] = toMove
		score := s.minimax(b, depth+1, toMove.Other())
		b[i] = Empty

		if first || better(toMove, score, best) {
			best, first = score, false
		}
	}
	return best
}

func (s Solver) terminal(winner Mark, depth int) int {
	score := winScore
	if s.PreferFasterWin {
		score -= depth
	}
	if winner == X {
		return -score
	}
	return score
}

// better reports whether score strictly improves on best for player.
func better(player Mark, score, best int) bool {
	if player == O {
		return score > best
	}
	return score < best
}
