// Package multiplayer identifies sessions and matches across front ends.
// A session is one connection (terminal, SSH or WebSocket); a match is one
// game played inside it, from Reset to game over.
package multiplayer

import (
	"time"

	"github.com/google/uuid"
)

// SessionID uniquely identifies a player's connection.
type SessionID string

// MatchID uniquely identifies one played game.
type MatchID string

// NewSessionID returns a random session identifier.
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// NewMatchID returns a random match identifier.
func NewMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// MatchMode defines who the player is up against.
type MatchMode int

const (
	// MatchModeSolo is a single-player puzzle (memory, codebreaker).
	MatchModeSolo MatchMode = iota

	// MatchModeVsCPU is player versus the computer (tictactoe).
	MatchModeVsCPU
)

// String returns the storage name of the mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "solo"
	case MatchModeVsCPU:
		return "vs_cpu"
	default:
		return "unknown"
	}
}

// ModeFor returns the match mode of a registered game.
func ModeFor(gameID string) MatchMode {
	if gameID == "tictactoe" {
		return MatchModeVsCPU
	}
	return MatchModeSolo
}

// Match is one game inside a session.
type Match struct {
	ID      MatchID
	Session SessionID
	GameID  string
	Mode    MatchMode
	Started time.Time
}

// NewMatch starts tracking a match of gameID for session.
func NewMatch(session SessionID, gameID string) *Match {
	return &Match{
		ID:      NewMatchID(),
		Session: session,
		GameID:  gameID,
		Mode:    ModeFor(gameID),
		Started: time.Now(),
	}
}

// Result builds the record of a finished match.
func (m *Match) Result(score int, outcome string) ResultData {
	return ResultData{
		MatchID:      string(m.ID),
		SessionID:    string(m.Session),
		GameID:       m.GameID,
		Mode:         m.Mode.String(),
		Outcome:      outcome,
		Score:        score,
		DurationSecs: int(time.Since(m.Started).Seconds()),
	}
}

// ResultData is a finished match as handed to storage.
type ResultData struct {
	MatchID      string
	SessionID    string
	GameID       string
	Mode         string
	Outcome      string // "win", "loss", "tie" or "" for games without an opponent
	Score        int
	DurationSecs int
}

// ResultSaver persists finished matches. Implemented by storage.Store.
type ResultSaver interface {
	SaveMatchResult(data ResultData) error
}
