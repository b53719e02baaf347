package multiplayer

import "testing"

func TestModeFor(t *testing.T) {
	tests := []struct {
		game string
		want MatchMode
	}{
		{"tictactoe", MatchModeVsCPU},
		{"memory", MatchModeSolo},
		{"codebreaker", MatchModeSolo},
	}
	for _, tt := range tests {
		if got := ModeFor(tt.game); got != tt.want {
			t.Errorf("ModeFor(%q) = %v, want %v", tt.game, got, tt.want)
		}
	}
}

func TestNewIDsAreUnique(t *testing.T) {
	seen := make(map[SessionID]bool)
	for i := 0; i < 100; i++ {
		id := NewSessionID()
		if seen[id] {
			t.Fatalf("duplicate session id %s", id)
		}
		seen[id] = true
	}
	if NewMatchID() == NewMatchID() {
		t.Error("match ids should differ")
	}
}

func TestMatchResult(t *testing.T) {
	m := NewMatch("session-1", "tictactoe")
	r := m.Result(0, "tie")
	if r.MatchID != string(m.ID) || r.SessionID != "session-1" || r.GameID != "tictactoe" {
		t.Errorf("Result() identity = %+v", r)
	}
	if r.Mode != "vs_cpu" || r.Outcome != "tie" {
		t.Errorf("Result() mode/outcome = %q/%q", r.Mode, r.Outcome)
	}
	if r.DurationSecs < 0 {
		t.Errorf("negative duration %d", r.DurationSecs)
	}
}
