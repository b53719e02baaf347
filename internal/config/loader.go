package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// appDir is the directory name used under the XDG and home config roots.
const appDir = "arcade"

// validatable is implemented by every game config.
type validatable interface {
	Validate() error
}

// LoadMemory loads Memory configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/arcade/memory.yaml ->
// ~/.arcade/configs/memory.yaml -> ./configs/memory.yaml -> embedded default
func LoadMemory(customPath string) (MemoryConfig, error) {
	return load(customPath, "memory.yaml", defaultMemoryYAML, DefaultMemoryConfig)
}

// LoadTicTacToe loads Tic-Tac-Toe configuration, using the same search order as LoadMemory.
func LoadTicTacToe(customPath string) (TicTacToeConfig, error) {
	return load(customPath, "tictactoe.yaml", defaultTicTacToeYAML, DefaultTicTacToeConfig)
}

// LoadCodeBreaker loads Code Breaker configuration, using the same search order as LoadMemory.
func LoadCodeBreaker(customPath string) (CodeBreakerConfig, error) {
	return load(customPath, "codebreaker.yaml", defaultCodeBreakerYAML, DefaultCodeBreakerConfig)
}

// load resolves one game config. Files are decoded on top of the hardcoded
// defaults so a partial file only overrides the keys it names.
func load[T validatable](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	// Try custom path first; errors here are reported, not skipped
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	for _, path := range SearchPaths(filename) {
		if cfg, ok := tryFile(path, defaults); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil || cfg.Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// tryFile loads a discovered config file; unreadable or invalid files are skipped.
func tryFile[T validatable](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// SearchPaths lists the locations checked for a config file, in priority order.
func SearchPaths(filename string) []string {
	var paths []string
	if p, err := xdg.SearchConfigFile(filepath.Join(appDir, filename)); err == nil {
		paths = append(paths, p)
	}
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
