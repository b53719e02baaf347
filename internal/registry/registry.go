// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so front ends can discover
// and instantiate them by ID. Front ends import the game packages for their
// side effects.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-mindgames/internal/core"
)

// Game is the interface the terminal front ends drive at a fixed tick rate.
// Implementations wrap a game engine and contain no terminal code.
type Game interface {
	// ID returns a unique identifier, also used as the score key.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a new game. Called once at start and on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step applies one frame of input and advances time by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current score, game over flag and outcome.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a game factory. Panics if id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
