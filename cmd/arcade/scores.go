package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mindgames/internal/multiplayer"
	"github.com/vovakirdan/tui-mindgames/internal/registry"
	"github.com/vovakirdan/tui-mindgames/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.
Games against the computer show the win/loss/tie record and recent matches instead.

Examples:
  arcade scores memory
  arcade scores codebreaker
  arcade scores tictactoe`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if multiplayer.ModeFor(gameID) == multiplayer.MatchModeVsCPU {
		err = printRecord(store, gameID, title)
	} else {
		err = printScores(store, gameID, title)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d   Average: %.1f   Games: %d\n", stats.HighScore, stats.AvgScore, stats.GamesCount)
	return nil
}

func printRecord(store *storage.Store, gameID, title string) error {
	record, err := store.Record(gameID)
	if err != nil {
		return err
	}
	recent, err := store.RecentResults(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Record - %s\n", title)
	fmt.Println()

	if len(recent) == 0 {
		fmt.Println("No matches played yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to challenge the computer!\n", gameID)
		return nil
	}

	fmt.Printf("Wins: %d   Losses: %d   Ties: %d\n", record.Wins, record.Losses, record.Ties)
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %s\n", "Outcome", "Length", "Date")
	fmt.Printf("  %-8s  %-8s  %s\n", "-------", "------", "----")
	for _, r := range recent {
		fmt.Printf("  %-8s  %-8s  %s\n", r.Outcome, fmt.Sprintf("%ds", r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
