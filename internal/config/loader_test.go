package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	mem := DefaultMemoryConfig()
	if err := yaml.Unmarshal(defaultMemoryYAML, &mem); err != nil {
		t.Fatalf("embedded memory.yaml: %v", err)
	}
	if mem != DefaultMemoryConfig() {
		t.Errorf("embedded memory.yaml = %+v, expected %+v", mem, DefaultMemoryConfig())
	}

	ttt := DefaultTicTacToeConfig()
	if err := yaml.Unmarshal(defaultTicTacToeYAML, &ttt); err != nil {
		t.Fatalf("embedded tictactoe.yaml: %v", err)
	}
	if ttt != DefaultTicTacToeConfig() {
		t.Errorf("embedded tictactoe.yaml = %+v, expected %+v", ttt, DefaultTicTacToeConfig())
	}

	cb := DefaultCodeBreakerConfig()
	if err := yaml.Unmarshal(defaultCodeBreakerYAML, &cb); err != nil {
		t.Fatalf("embedded codebreaker.yaml: %v", err)
	}
	if cb != DefaultCodeBreakerConfig() {
		t.Errorf("embedded codebreaker.yaml = %+v, expected %+v", cb, DefaultCodeBreakerConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultMemoryConfig().Validate(); err != nil {
		t.Errorf("memory defaults: %v", err)
	}
	if err := DefaultTicTacToeConfig().Validate(); err != nil {
		t.Errorf("tictactoe defaults: %v", err)
	}
	if err := DefaultCodeBreakerConfig().Validate(); err != nil {
		t.Errorf("codebreaker defaults: %v", err)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "memory.yaml", "timing:\n  step_interval: 900ms\n  highlight: 700ms\n")

	cfg, err := LoadMemory(path)
	if err != nil {
		t.Fatalf("LoadMemory() failed: %v", err)
	}
	if cfg.Timing.StepInterval != 900*time.Millisecond {
		t.Errorf("StepInterval = %v, expected 900ms", cfg.Timing.StepInterval)
	}
	// Keys not present in the file keep their defaults
	if cfg.Grid.Cells() != 16 {
		t.Errorf("Cells() = %d, expected 16", cfg.Grid.Cells())
	}
	if cfg.Scoring.PointsPerLevel != 10 {
		t.Errorf("PointsPerLevel = %d, expected 10", cfg.Scoring.PointsPerLevel)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadTicTacToe(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := writeFile(t, "bad.yaml", "code: [not, a, map")
	if _, err := LoadCodeBreaker(bad); err == nil {
		t.Error("malformed YAML should be an error")
	}

	invalid := writeFile(t, "invalid.yaml", "code:\n  colors: 9\n")
	_, err := LoadCodeBreaker(invalid)
	if err == nil {
		t.Fatal("out-of-range colors should fail validation")
	}
	if !strings.Contains(err.Error(), "code.colors") {
		t.Errorf("error should name the field, got %v", err)
	}
}

func TestLoadWithoutCustomPath(t *testing.T) {
	cfg, err := LoadCodeBreaker("")
	if err != nil {
		t.Fatalf("LoadCodeBreaker(\"\") failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should be valid: %v", err)
	}
}

func TestSearchPathsEndWithLocalConfigs(t *testing.T) {
	paths := SearchPaths("memory.yaml")
	if len(paths) == 0 {
		t.Fatal("SearchPaths returned nothing")
	}
	last := paths[len(paths)-1]
	if last != filepath.Join("configs", "memory.yaml") {
		t.Errorf("last search path = %q, expected configs/memory.yaml", last)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyFixed, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", DifficultyFixed, true},
	}
	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPresets(t *testing.T) {
	mem := DefaultMemoryConfig()
	ApplyMemoryPreset(&mem, DifficultyHard)
	if mem.Timing.StepInterval >= DefaultMemoryConfig().Timing.StepInterval {
		t.Error("hard memory should play back faster than default")
	}
	if err := mem.Validate(); err != nil {
		t.Errorf("hard memory preset produced invalid config: %v", err)
	}

	ttt := DefaultTicTacToeConfig()
	ApplyTicTacToePreset(&ttt, DifficultyHard)
	if !ttt.Opponent.PreferFasterWin {
		t.Error("hard tictactoe should prefer faster wins")
	}

	cb := DefaultCodeBreakerConfig()
	ApplyCodeBreakerPreset(&cb, DifficultyEasy)
	if cb.Code.MaxRows != 10 {
		t.Errorf("easy codebreaker MaxRows = %d, expected 10", cb.Code.MaxRows)
	}

	fixed := DefaultCodeBreakerConfig()
	fixed.Code.MaxRows = 3
	ApplyCodeBreakerPreset(&fixed, DifficultyFixed)
	if fixed.Code.MaxRows != 3 {
		t.Error("fixed preset should leave the config untouched")
	}
}
