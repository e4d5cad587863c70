// Package registry provides a global registry for frontend factories.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies. Frontends
// behind build tags only appear in binaries built with that tag.
package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/session"
)

// ErrUnknownFrontend is returned by Create for names nobody registered.
var ErrUnknownFrontend = errors.New("registry: unknown frontend")

// Frontend drives one session: it polls input, steps the session every
// frame and presents what it renders.
type Frontend interface {
	// Run blocks until the player quits or ctx is cancelled.
	Run(ctx context.Context, sess *session.Session) error
}

// Env is what a factory gets to build a frontend.
type Env struct {
	Config config.Config
	Logger *log.Logger

	// Terminal size at startup, for frontends that draw into it.
	Width, Height int
}

// Info contains metadata about a registered frontend.
type Info struct {
	Name        string
	Description string

	// Terminal is set for frontends that own the terminal; their logs
	// must go to a file.
	Terminal bool
}

// Factory creates a frontend.
type Factory func(env Env) (Frontend, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same name is already registered.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.Name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", info.Name))
	}

	factories[info.Name] = f
	infos[info.Name] = info
}

// List returns information about all registered frontends, sorted by name.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the metadata of a registered frontend.
func Lookup(name string) (Info, error) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[name]
	if !ok {
		return Info{}, fmt.Errorf("%w %q", ErrUnknownFrontend, name)
	}
	return info, nil
}

// Create instantiates a frontend by name.
func Create(name string, env Env) (Frontend, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFrontend, name)
	}
	return f(env)
}
