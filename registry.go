package turtle

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// BackendFactory returns a fresh, unstarted backend. Every NewBackend and
// Open call gets its own instance, so turtles never share a canvas.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register registers a backend factory with the given name.
// It is typically called from init() in backend packages, following the
// database/sql driver pattern:
//
//	func init() {
//	    turtle.Register("svg", func() turtle.Backend {
//	        return NewBackend()
//	    })
//	}
//
// Register panics if factory is nil or if a backend with the same name is
// already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("turtle: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("turtle: Register called twice for " + name)
	}
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// Unregistering an unknown name is a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates a new backend instance by name.
//
//	import _ "github.com/gogpu/gg-turtle/backends/svg"
//
//	backend, err := turtle.NewBackend("svg")
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("turtle: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// Open creates a backend by name and a Turtle drawing on it.
//
//	t, err := turtle.Open("svg", turtle.WithSize(400, 400))
//	...
//	t.Close()
//	t.Backend().(turtle.FileBackend).SaveToFile("out.svg")
func Open(name string, opts ...Option) (*Turtle, error) {
	b, err := NewBackend(name)
	if err != nil {
		return nil, err
	}
	t, err := New(b, opts...)
	if err != nil {
		return nil, fmt.Errorf("turtle: open %q: %w", name, err)
	}
	Logger().Debug("turtle: opened backend", "backend", name)
	return t, nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered backend names in alphabetical order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return slices.Sorted(maps.Keys(backends))
}

// IsRegistered reports whether a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}
