// Package tictactoe implements tic-tac-toe against an unbeatable minimax opponent.
package tictactoe

// Mark is the content of a board cell.
type Mark int

const (
	Empty Mark = iota
	X          // Human
	O          // Computer
)

// String returns "X", "O" or "" for empty cells.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// MarshalText lets marks serialize as "X", "O" or "".
func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Other returns the opposing mark.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// BoardSize is the number of cells, indexed row-major.
const BoardSize = 9

// Board holds the nine cells.
type Board [BoardSize]Mark

// Lines are the eight winning triples: rows, columns, diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Status classifies a board.
type Status int

const (
	InProgress Status = iota
	Won
	Tied
)

func (s Status) String() string {
	switch s {
	case Won:
		return "won"
	case Tied:
		return "tied"
	default:
		return "in_progress"
	}
}

// MarshalText lets Status serialize as its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the evaluation of a board. Winner is Empty unless Status is Won.
type Result struct {
	Status Status
	Winner Mark
}

// CheckWinner evaluates b. Lines are checked before fullness, so a move that
// completes a line on the last empty cell is a win, not a tie.
func CheckWinner(b Board) Result {
	for _, l := range Lines {
		m := b[l[0]]
		if m != Empty && b[l[1]] == m && b[l[2]] == m {
			return Result{Status: Won, Winner: m}
		}
	}
	for _, m := range b {
		if m == Empty {
			return Result{Status: InProgress}
		}
	}
	return Result{Status: Tied}
}

// EmptyCells returns the indices of empty cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, m := range b {
		if m == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}
