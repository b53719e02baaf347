// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MemoryConfig contains all configuration for the Memory sequence game.
type MemoryConfig struct {
	Grid    MemoryGrid    `yaml:"grid"`
	Timing  MemoryTiming  `yaml:"timing"`
	Scoring MemoryScoring `yaml:"scoring"`
}

// MemoryGrid defines the cell grid the sequence is drawn from.
type MemoryGrid struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// Cells returns the number of cells in the grid.
func (g MemoryGrid) Cells() int {
	return g.Cols * g.Rows
}

// MemoryTiming defines the playback cadence and feedback flashes.
type MemoryTiming struct {
	StepInterval   time.Duration `yaml:"step_interval"`    // Delay between highlighted steps
	Highlight      time.Duration `yaml:"highlight"`        // How long a step stays lit
	NextRoundDelay time.Duration `yaml:"next_round_delay"` // Pause after a completed round
	CorrectFlash   time.Duration `yaml:"correct_flash"`
	WrongFlash     time.Duration `yaml:"wrong_flash"`
}

// MemoryScoring defines how completed rounds are scored.
type MemoryScoring struct {
	PointsPerLevel int `yaml:"points_per_level"` // Round score = level * points_per_level
}

// Validate checks the memory configuration for unplayable values.
func (c MemoryConfig) Validate() error {
	var errs []error
	if c.Grid.Cols <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Grid.Cols, c.Grid.Rows))
	}
	if c.Timing.StepInterval <= 0 {
		errs = append(errs, errors.New("timing.step_interval must be positive"))
	}
	if c.Timing.Highlight <= 0 || c.Timing.Highlight > c.Timing.StepInterval {
		errs = append(errs, errors.New("timing.highlight must be positive and not longer than step_interval"))
	}
	if c.Timing.NextRoundDelay < 0 || c.Timing.CorrectFlash < 0 || c.Timing.WrongFlash < 0 {
		errs = append(errs, errors.New("timing delays must not be negative"))
	}
	if c.Scoring.PointsPerLevel <= 0 {
		errs = append(errs, errors.New("scoring.points_per_level must be positive"))
	}
	return wrapInvalid("memory", errs)
}

// TicTacToeConfig contains all configuration for Tic-Tac-Toe.
type TicTacToeConfig struct {
	Opponent TicTacToeOpponent `yaml:"opponent"`
}

// TicTacToeOpponent configures the computer player.
type TicTacToeOpponent struct {
	ThinkDelay time.Duration `yaml:"think_delay"` // Pause before the opponent answers
	// PreferFasterWin decays search scores by depth so the opponent wins in the
	// fewest moves and delays losses. Off by default.
	PreferFasterWin bool `yaml:"prefer_faster_win"`
}

// Validate checks the tic-tac-toe configuration.
func (c TicTacToeConfig) Validate() error {
	var errs []error
	if c.Opponent.ThinkDelay < 0 {
		errs = append(errs, errors.New("opponent.think_delay must not be negative"))
	}
	return wrapInvalid("tictactoe", errs)
}

// CodeBreakerConfig contains all configuration for the code-breaking game.
type CodeBreakerConfig struct {
	Code    CodeBreakerCode    `yaml:"code"`
	Scoring CodeBreakerScoring `yaml:"scoring"`
}

// CodeBreakerCode defines the shape of the hidden code.
type CodeBreakerCode struct {
	Length  int `yaml:"length"`   // Pegs per code
	Colors  int `yaml:"colors"`   // Size of the color alphabet used
	MaxRows int `yaml:"max_rows"` // Guesses before the game is lost
}

// CodeBreakerScoring defines how a win is scored.
type CodeBreakerScoring struct {
	PointsPerSpareRow int `yaml:"points_per_spare_row"`
}

// MaxColors is the size of the full code-breaker palette.
const MaxColors = 6

// Validate checks the code-breaker configuration.
func (c CodeBreakerConfig) Validate() error {
	var errs []error
	if c.Code.Length <= 0 {
		errs = append(errs, errors.New("code.length must be positive"))
	}
	if c.Code.Colors < 2 || c.Code.Colors > MaxColors {
		errs = append(errs, fmt.Errorf("code.colors must be between 2 and %d, got %d", MaxColors, c.Code.Colors))
	}
	if c.Code.MaxRows <= 0 {
		errs = append(errs, errors.New("code.max_rows must be positive"))
	}
	if c.Scoring.PointsPerSpareRow < 0 {
		errs = append(errs, errors.New("scoring.points_per_spare_row must not be negative"))
	}
	return wrapInvalid("codebreaker", errs)
}

func wrapInvalid(game string, errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid %s config: %w", game, errors.Join(errs...))
}
