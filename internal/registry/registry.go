// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/rush-arcade/internal/core"
)

// Game is the interface every arcade game implements.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, timing, and terminal output.
type Game interface {
	// ID returns a unique identifier used on the command line (e.g. "runner").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset creates a fresh session for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick using the input
	// collected since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render projects the current state onto the screen buffer.
	// It must not change simulation state.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// TextGame is implemented by games that consume typed text rather than
// single-key actions. The platform then forwards printable keys as text.
type TextGame interface {
	Game
	AcceptsText() bool
}

// Halter is implemented by games whose tick loop stops in some states.
// While Halted reports true the platform schedules no further ticks; a
// restart or confirm key re-arms the loop.
type Halter interface {
	Halted() bool
}

// Observer is implemented by games that describe their last tick for the
// debug log. LogFields returns alternating key/value pairs, or nothing when
// the tick was uneventful.
type Observer interface {
	LogFields() []any
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
