package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mindgames/internal/config"
	"github.com/vovakirdan/tui-mindgames/internal/core"
	"github.com/vovakirdan/tui-mindgames/internal/games/codebreaker"
	"github.com/vovakirdan/tui-mindgames/internal/games/memory"
	"github.com/vovakirdan/tui-mindgames/internal/games/tictactoe"
	"github.com/vovakirdan/tui-mindgames/internal/multiplayer"
	"github.com/vovakirdan/tui-mindgames/internal/platform/tui"
	"github.com/vovakirdan/tui-mindgames/internal/registry"
	"github.com/vovakirdan/tui-mindgames/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD/hjkl  - Move the cursor
  Enter/Space       - Select cell or color, submit a full guess
  1-9               - Pick a cell or color directly
  Backspace/X       - Erase the last color (Code Breaker)
  P                 - Pause (Memory)
  R                 - Restart (after game over)
  B/Esc, Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow playback, 10 guesses
  normal - Default settings
  hard   - Fast playback, 6 guesses, computer goes for the quickest win
  fixed  - Use the config file as-is

Examples:
  arcade play memory
  arcade play codebreaker --difficulty hard
  arcade play tictactoe --seed 42
  arcade play memory --config ./my-memory.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if err := checkConfig(gameID, flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyGameSettings(gameID, flagConfig, mustPreset(flagDifficulty))

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var saver multiplayer.ResultSaver
	if store != nil {
		saver = store
	}
	runErr := tui.Run(game, saver, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the platform config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// mustPreset parses a --difficulty value or exits.
func mustPreset(name string) config.DifficultyPreset {
	preset, err := config.ParsePreset(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return preset
}

// checkConfig reports a broken --config file up front; games fall back to
// defaults silently once running.
func checkConfig(gameID, path string) error {
	if path == "" {
		return nil
	}
	var err error
	switch gameID {
	case "memory":
		_, err = config.LoadMemory(path)
	case "tictactoe":
		_, err = config.LoadTicTacToe(path)
	case "codebreaker":
		_, err = config.LoadCodeBreaker(path)
	}
	return err
}

// applyGameSettings hands a config path and preset to a game before it is created.
func applyGameSettings(gameID, configPath string, preset config.DifficultyPreset) {
	switch gameID {
	case "memory":
		memory.SetConfigPath(configPath)
		memory.SetDifficultyPreset(preset)
	case "tictactoe":
		tictactoe.SetConfigPath(configPath)
		tictactoe.SetDifficultyPreset(preset)
	case "codebreaker":
		codebreaker.SetConfigPath(configPath)
		codebreaker.SetDifficultyPreset(preset)
	}
}

// applyDifficulty sets the preset for every game, keeping default config paths.
func applyDifficulty(preset config.DifficultyPreset) {
	for _, g := range registry.List() {
		applyGameSettings(g.ID, "", preset)
	}
}
