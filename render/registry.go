package render

import (
	"fmt"
	"sort"
	"sync"
)

// BackendFactory creates a fresh backend. Each Paint needs its own
// instance because backends hold the surface of one frame.
type BackendFactory func() Backend

// formats maps a format name to its backend factory.
var (
	registryMu sync.RWMutex
	formats    = make(map[string]BackendFactory)
)

// Register makes a backend available under name, which is also the
// output format the CLI accepts for --format. Backend packages call it
// from init:
//
//	func init() {
//		render.Register("png", func() render.Backend {
//			return NewBackend()
//		})
//	}
//
// Hosts then pick a backend by format without importing it directly:
//
//	import _ "github.com/gogpu/gauge/render/backends/svg"
//
//	b, err := render.NewBackend("svg")
//	if err != nil {
//		return err
//	}
//	err = render.Paint(b, g.Layers())
//
// Register panics if factory is nil or the name is already taken.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := formats[name]; dup {
		panic("render: Register called twice for " + name)
	}
	formats[name] = factory
}

// Unregister removes a backend from the registry. Unknown names are ignored.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(formats, name)
}

// NewBackend creates a backend for the named format. An unknown name is
// usually a missing blank import of the backend package, and the error
// says so.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := formats[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered format names, sorted, e.g. [png svg].
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := formats[name]
	return ok
}
