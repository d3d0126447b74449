package llm

import (
	"fmt"
	"sort"
	"sync"

	"hiremind-api/internal/config"
)

// Factory builds a provider instance from the application configuration
type Factory func(cfg *config.Config) (Provider, error)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register adds a provider factory under the given identifier. Provider
// packages call this from init; a duplicate identifier panics at startup.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("llm: provider %q registered twice", name))
	}
	registry[name] = factory
}

// newProvider instantiates a registered provider
func newProvider(name string, cfg *config.Config) (Provider, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unsupported AI provider: %s", name)
	}
	return factory(cfg)
}

// isRegistered reports whether a provider identifier is known
func isRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := registry[name]
	return ok
}

// SupportedProviders returns the registered provider identifiers, sorted
func SupportedProviders() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
