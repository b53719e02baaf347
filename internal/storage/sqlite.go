// Package storage provides SQLite-based persistence for scores and match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-mindgames/internal/multiplayer"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64     `json:"id"`
	GameID    string    `json:"gameId"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"createdAt"`
}

// MatchResult is one finished match.
type MatchResult struct {
	ID        int64     `json:"id"`
	MatchID   string    `json:"matchId"`
	GameID    string    `json:"gameId"`
	SessionID string    `json:"sessionId"`
	Mode      string    `json:"mode"`    // "solo" or "vs_cpu"
	Outcome   string    `json:"outcome"` // "win", "loss", "tie"; empty for solo games
	Score     int       `json:"score"`
	Duration  int       `json:"durationSecs"`
	CreatedAt time.Time `json:"createdAt"`
}

// Record counts the outcomes of a versus game.
type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Ties   int `json:"ties"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows one writer; the web server saves from many sessions
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS match_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			session_id TEXT NOT NULL,
			mode TEXT NOT NULL,
			outcome TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_match_results_game_id ON match_results(game_id);
		CREATE INDEX IF NOT EXISTS idx_match_results_session ON match_results(session_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a new score for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score) VALUES (?, ?)",
		gameID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game, best first.
// A limit of zero or less returns every score.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given game, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores and match results for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM match_results WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// SaveResult records a finished match. Returns the ID of the inserted record.
func (s *Store) SaveResult(r MatchResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO match_results
		 (match_id, game_id, session_id, mode, outcome, score, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID, r.GameID, r.SessionID, r.Mode, r.Outcome, r.Score, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// SaveMatchResult implements multiplayer.ResultSaver.
// Solo matches with a positive score also land on the scoreboard.
func (s *Store) SaveMatchResult(data multiplayer.ResultData) error {
	_, err := s.SaveResult(MatchResult{
		MatchID:   data.MatchID,
		GameID:    data.GameID,
		SessionID: data.SessionID,
		Mode:      data.Mode,
		Outcome:   data.Outcome,
		Score:     data.Score,
		Duration:  data.DurationSecs,
	})
	if err != nil {
		return err
	}
	if data.Score > 0 {
		_, err = s.SaveScore(data.GameID, data.Score)
	}
	return err
}

var _ multiplayer.ResultSaver = (*Store)(nil)

const resultColumns = `id, match_id, game_id, session_id, mode, outcome, score, duration_secs, created_at`

// ResultByMatchID retrieves a match result. Returns nil, nil if none exists.
func (s *Store) ResultByMatchID(matchID string) (*MatchResult, error) {
	row := s.db.QueryRow(
		`SELECT `+resultColumns+` FROM match_results WHERE match_id = ?`,
		matchID,
	)
	r, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match result: %w", err)
	}
	return &r, nil
}

// RecentResults retrieves the most recent results for a game, newest first.
func (s *Store) RecentResults(gameID string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM match_results
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match results: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Record tallies wins, losses and ties for a game.
func (s *Store) Record(gameID string) (Record, error) {
	var r Record
	err := s.db.QueryRow(
		`SELECT
			COALESCE(SUM(outcome = 'win'), 0),
			COALESCE(SUM(outcome = 'loss'), 0),
			COALESCE(SUM(outcome = 'tie'), 0)
		 FROM match_results WHERE game_id = ?`,
		gameID,
	).Scan(&r.Wins, &r.Losses, &r.Ties)
	if err != nil {
		return Record{}, fmt.Errorf("storage: cannot query record: %w", err)
	}
	return r, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string    `json:"gameId"`
	GamesCount int       `json:"gamesCount"`
	HighScore  int       `json:"highScore"`
	AvgScore   float64   `json:"avgScore"`
	Record     Record    `json:"record"`
	LastPlayed time.Time `json:"lastPlayed"`
}

// GetGameStats aggregates scores and outcomes for a game.
// GamesCount counts finished matches.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(created_at) FROM match_results WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	err = s.db.QueryRow(
		`SELECT COALESCE(MAX(score), 0), COALESCE(AVG(score), 0) FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.HighScore, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get score stats: %w", err)
	}

	if stats.Record, err = s.Record(gameID); err != nil {
		return nil, err
	}
	return stats, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (MatchResult, error) {
	var r MatchResult
	var createdAt any
	err := row.Scan(&r.ID, &r.MatchID, &r.GameID, &r.SessionID, &r.Mode,
		&r.Outcome, &r.Score, &r.Duration, &createdAt)
	r.CreatedAt = parseTime(createdAt)
	return r, err
}

// parseTime handles both time.Time and the SQLite text timestamp.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
