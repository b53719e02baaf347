package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mindgames/internal/config"
	"github.com/vovakirdan/tui-mindgames/internal/platform/web"
	"github.com/vovakirdan/tui-mindgames/internal/storage"
)

var (
	flagWebAddr       string
	flagWebDifficulty string
	flagAnyOrigin     bool
)

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the arcade WebSocket server",
	Long: `Start an HTTP server that lets browsers play over WebSocket.

Endpoints:
  GET /ws/{game}          - One game per connection
  GET /api/games          - Registered games
  GET /api/scores/{game}  - Top scores, recent matches and stats
  GET /health             - Liveness check

Settings are read from the environment (a .env file in the working
directory is loaded first); flags take precedence:
  ARCADE_WEB_ADDR         - Listen address (default :8080)
  ARCADE_DB               - Scores database path
  ARCADE_DIFFICULTY       - Difficulty preset
  ARCADE_ALLOW_ANY_ORIGIN - Accept cross-origin WebSocket upgrades

Examples:
  arcade web
  arcade web --addr :9000 --difficulty hard`,
	Run: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (host:port)")
	webCmd.Flags().StringVar(&flagWebDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	webCmd.Flags().BoolVar(&flagAnyOrigin, "any-origin", false, "Accept WebSocket upgrades from any origin")
}

func runWeb(cmd *cobra.Command, _ []string) {
	_ = godotenv.Load()

	cfg := web.DefaultConfig()
	cfg.Address = firstNonEmpty(flagWebAddr, os.Getenv("ARCADE_WEB_ADDR"), cfg.Address)
	cfg.Seed = flagSeed
	cfg.AllowAnyOrigin = flagAnyOrigin
	if v, err := strconv.ParseBool(os.Getenv("ARCADE_ALLOW_ANY_ORIGIN")); err == nil && !cmd.Flags().Changed("any-origin") {
		cfg.AllowAnyOrigin = v
	}

	preset := mustPreset(firstNonEmpty(flagWebDifficulty, os.Getenv("ARCADE_DIFFICULTY")))
	if err := loadWebGames(&cfg, preset); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dbPath := flagDBPath
	if env := os.Getenv("ARCADE_DB"); env != "" && !cmd.Flags().Changed("db") {
		dbPath = env
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting arcade web server on %s\n", cfg.Address)
	runErr := web.NewServer(cfg, store).ListenAndServe(ctx)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", runErr)
		os.Exit(1)
	}
}

// loadWebGames resolves each game's config through the usual search path.
func loadWebGames(cfg *web.Config, preset config.DifficultyPreset) error {
	var err error
	if cfg.Memory, err = config.LoadMemory(""); err != nil {
		return err
	}
	if cfg.TicTacToe, err = config.LoadTicTacToe(""); err != nil {
		return err
	}
	if cfg.CodeBreaker, err = config.LoadCodeBreaker(""); err != nil {
		return err
	}
	config.ApplyMemoryPreset(&cfg.Memory, preset)
	config.ApplyTicTacToePreset(&cfg.TicTacToe, preset)
	config.ApplyCodeBreakerPreset(&cfg.CodeBreaker, preset)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
