package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/memory.yaml
var defaultMemoryYAML []byte

//go:embed defaults/tictactoe.yaml
var defaultTicTacToeYAML []byte

//go:embed defaults/codebreaker.yaml
var defaultCodeBreakerYAML []byte

// DefaultMemoryConfig returns the default Memory configuration.
func DefaultMemoryConfig() MemoryConfig {
	return MemoryConfig{
		Grid: MemoryGrid{
			Cols: 4,
			Rows: 4,
		},
		Timing: MemoryTiming{
			StepInterval:   600 * time.Millisecond,
			Highlight:      400 * time.Millisecond,
			NextRoundDelay: time.Second,
			CorrectFlash:   300 * time.Millisecond,
			WrongFlash:     500 * time.Millisecond,
		},
		Scoring: MemoryScoring{
			PointsPerLevel: 10,
		},
	}
}

// DefaultTicTacToeConfig returns the default Tic-Tac-Toe configuration.
func DefaultTicTacToeConfig() TicTacToeConfig {
	return TicTacToeConfig{
		Opponent: TicTacToeOpponent{
			ThinkDelay:      500 * time.Millisecond,
			PreferFasterWin: false,
		},
	}
}

// DefaultCodeBreakerConfig returns the default Code Breaker configuration.
func DefaultCodeBreakerConfig() CodeBreakerConfig {
	return CodeBreakerConfig{
		Code: CodeBreakerCode{
			Length:  4,
			Colors:  6,
			MaxRows: 8,
		},
		Scoring: CodeBreakerScoring{
			PointsPerSpareRow: 10,
		},
	}
}
