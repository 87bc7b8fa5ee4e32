// Package registry provides a global registry for level output formats.
// Formats register themselves in init() functions, allowing the CLI
// to discover and instantiate encoders without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/cornmaze/internal/maze"
)

// ErrUnknownFormat is returned by Create for an unregistered format ID.
var ErrUnknownFormat = errors.New("unknown format")

// Encoder turns a level into bytes for output.
type Encoder interface {
	// ID returns a unique identifier for this format (e.g., "yaml", "ascii").
	// Used for the --format flag.
	ID() string

	// Title returns a short human-readable description.
	Title() string

	// Encode serializes the level. Encoders must not modify it.
	Encode(lvl *maze.Level) ([]byte, error)
}

// FormatInfo contains metadata about a registered format.
type FormatInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new encoder.
type Factory func() Encoder

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an encoder factory to the registry.
// Typically called from a format package's init() function.
// Panics if a format with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: format %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered formats, sorted by ID.
func List() []FormatInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FormatInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FormatInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new encoder by its ID.
func Create(id string) (Encoder, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownFormat, id)
	}

	return f(), nil
}

// Exists checks if a format with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
