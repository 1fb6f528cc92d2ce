// Package backend abstracts where circuits get sampled: today a
// local statevector simulator, with room for remote hardware later.
package backend

import (
	"context"
	"sort"

	"github.com/perclft/IsingEngine/internal/sim"
)

// Backend executes circuits and returns measurement counts keyed by
// basis index.
type Backend interface {
	Name() string
	MaxQubits() int
	IsSimulator() bool

	Sample(ctx context.Context, circuit *sim.Circuit, shots int) (map[int]int, error)
}

// Registry is a name-keyed collection of backends.
type Registry struct {
	backends map[string]Backend
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds or replaces a backend under its own name.
func (r *Registry) Register(b Backend) {
	r.backends[b.Name()] = b
}

// Get looks a backend up by name.
func (r *Registry) Get(name string) (Backend, bool) {
	b, ok := r.backends[name]
	return b, ok
}

// List returns registered backend names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
