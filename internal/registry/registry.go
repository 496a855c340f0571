// Package registry maps game IDs to factories. Game packages register
// their variants from init, so hosts and the CLI can list and create them
// without importing each game directly.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/catcher/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what a host drives. Implementations keep all state themselves;
// the host supplies input, a clock tick and a screen to draw on.
type Game interface {
	// ID is the stable identifier used by the CLI and the scoreboard.
	ID() string

	// Title is the display name, e.g. "Catcher Rush".
	Title() string

	// Reset builds a fresh run. cfg carries the screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with this tick's actions.
	Step(in core.InputFrame) core.StepResult

	// Render draws into dst, which the host has cleared.
	Render(dst *core.Screen)

	// State reports score, lives and flags without advancing.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	index   = make(map[string]int)
)

// Register adds a factory under id. Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := index[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	index[id] = len(entries)
	entries = append(entries, entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	})
}

// List returns the registered games in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := index[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return entries[i].factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := index[id]
	return ok
}
