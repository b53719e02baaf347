package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-mindgames/internal/multiplayer"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{30, 150, 60} {
		if _, err := store.SaveScore("memory", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("codebreaker", 80); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("memory", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 150 || scores[1].Score != 60 {
		t.Errorf("TopScores() = %+v, expected [150 60]", scores)
	}

	all, err := store.TopScores("memory", 0)
	if err != nil {
		t.Fatalf("TopScores(0) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("TopScores(0) returned %d entries, expected 3", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("memory")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty table = %d, expected 0", high)
	}

	store.SaveScore("memory", 40)
	store.SaveScore("memory", 210)
	if high, _ = store.HighScore("memory"); high != 210 {
		t.Errorf("HighScore() = %d, expected 210", high)
	}
}

func TestStoreResults(t *testing.T) {
	store := openTestStore(t)
	outcomes := []string{"loss", "tie", "tie", "loss", "tie"}
	for _, o := range outcomes {
		m := multiplayer.NewMatch("s1", "tictactoe")
		if err := store.SaveMatchResult(m.Result(0, o)); err != nil {
			t.Fatalf("SaveMatchResult() failed: %v", err)
		}
	}

	rec, err := store.Record("tictactoe")
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	if rec != (Record{Losses: 2, Ties: 3}) {
		t.Errorf("Record() = %+v, expected 2 losses and 3 ties", rec)
	}

	recent, err := store.RecentResults("tictactoe", 2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Outcome != "tie" || recent[1].Outcome != "loss" {
		t.Errorf("RecentResults() = %+v", recent)
	}
	if recent[0].Mode != "vs_cpu" {
		t.Errorf("mode = %q, expected vs_cpu", recent[0].Mode)
	}

	// Outcome-only games never reach the scoreboard
	if scores, _ := store.TopScores("tictactoe", 10); len(scores) != 0 {
		t.Errorf("tictactoe scores = %+v, expected none", scores)
	}
}

func TestStoreSoloResultSavesScore(t *testing.T) {
	store := openTestStore(t)
	m := multiplayer.NewMatch("s2", "codebreaker")
	if err := store.SaveMatchResult(m.Result(70, "win")); err != nil {
		t.Fatalf("SaveMatchResult() failed: %v", err)
	}

	got, err := store.ResultByMatchID(string(m.ID))
	if err != nil || got == nil {
		t.Fatalf("ResultByMatchID() = %v, %v", got, err)
	}
	if got.Score != 70 || got.SessionID != "s2" || got.Mode != "solo" {
		t.Errorf("stored result = %+v", got)
	}
	if high, _ := store.HighScore("codebreaker"); high != 70 {
		t.Errorf("HighScore() = %d, expected 70", high)
	}

	missing, err := store.ResultByMatchID("nope")
	if err != nil || missing != nil {
		t.Errorf("ResultByMatchID(missing) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreDuplicateMatchRejected(t *testing.T) {
	store := openTestStore(t)
	r := MatchResult{MatchID: "m1", GameID: "memory", SessionID: "s", Mode: "solo"}
	if _, err := store.SaveResult(r); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(r); err == nil {
		t.Error("saving the same match twice should fail")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{10, 30} {
		m := multiplayer.NewMatch("s", "memory")
		store.SaveMatchResult(m.Result(s, ""))
	}
	// A zero-score game counts as played but not as a score
	store.SaveMatchResult(multiplayer.NewMatch("s", "memory").Result(0, ""))

	stats, err := store.GetGameStats("memory")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 30 || stats.AvgScore != 20 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("codebreaker")
	if err != nil {
		t.Fatalf("GetGameStats(empty) failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveMatchResult(multiplayer.NewMatch("s", "memory").Result(50, ""))
	store.SaveScore("codebreaker", 20)

	if err := store.ClearScores("memory"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("memory", 10); len(scores) != 0 {
		t.Errorf("memory scores remain: %+v", scores)
	}
	if recent, _ := store.RecentResults("memory", 10); len(recent) != 0 {
		t.Errorf("memory results remain: %+v", recent)
	}
	if scores, _ := store.TopScores("codebreaker", 10); len(scores) != 1 {
		t.Error("other games must keep their scores")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "test.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
