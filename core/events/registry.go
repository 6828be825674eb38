package events

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrUnknownBehavior = errors.New("unknown behavior kind")

// Factory builds a fresh behavior instance for an authored event.
type Factory func() Behavior

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// RegisterBehavior makes a behavior kind creatable by authoring tools.
// Registration normally happens at startup; re-registering a kind replaces
// its factory.
func RegisterBehavior(kind string, factory Factory) {
	if kind == "" || factory == nil {
		return
	}

	registryMu.Lock()
	registry[kind] = factory
	registryMu.Unlock()
}

// Create instantiates an event of the given registered kind.
func Create(kind string) (*Event, error) {
	registryMu.RLock()
	factory, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBehavior, kind)
	}
	return New(factory()), nil
}

// Kinds lists the registered behavior kinds in stable order, for authoring
// pickers.
func Kinds() []string {
	registryMu.RLock()
	kinds := make([]string, 0, len(registry))
	for kind := range registry {
		kinds = append(kinds, kind)
	}
	registryMu.RUnlock()

	sort.Strings(kinds)
	return kinds
}
