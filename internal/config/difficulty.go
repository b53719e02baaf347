package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // Use the config file as-is
)

// ParsePreset parses a preset name. An empty name means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return DifficultyFixed, fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyMemoryPreset adjusts the playback cadence for a difficulty preset.
func ApplyMemoryPreset(cfg *MemoryConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.StepInterval = 800 * time.Millisecond
		cfg.Timing.Highlight = 600 * time.Millisecond
	case DifficultyNormal:
		cfg.Timing.StepInterval = 600 * time.Millisecond
		cfg.Timing.Highlight = 400 * time.Millisecond
	case DifficultyHard:
		cfg.Timing.StepInterval = 400 * time.Millisecond
		cfg.Timing.Highlight = 250 * time.Millisecond
	}
}

// ApplyTicTacToePreset adjusts the opponent for a difficulty preset.
// The opponent never loses at any level; hard makes it close games out quickly.
func ApplyTicTacToePreset(cfg *TicTacToeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy, DifficultyNormal:
		cfg.Opponent.PreferFasterWin = false
	case DifficultyHard:
		cfg.Opponent.PreferFasterWin = true
	}
}

// ApplyCodeBreakerPreset adjusts the guess budget for a difficulty preset.
func ApplyCodeBreakerPreset(cfg *CodeBreakerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Code.MaxRows = 10
	case DifficultyNormal:
		cfg.Code.MaxRows = 8
	case DifficultyHard:
		cfg.Code.MaxRows = 6
	}
}
