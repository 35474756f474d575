package provider

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry holds the completion-client factories known to a process and the
// instances already built from them. Factories are registered once at
// startup, one per backend; instances are built lazily per provider name and
// cached by Resolve, so repeated lookups of the same provider share one
// client and one connection pool.
type Registry[T Provider] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
	instances map[string]T
}

// NewRegistry returns an empty registry.
func NewRegistry[T Provider]() *Registry[T] {
	return &Registry[T]{
		factories: make(map[string]Factory[T]),
		instances: make(map[string]T),
	}
}

// Register makes a factory available under the given name. Registering the
// same name again replaces the earlier factory; cached instances are kept.
func (r *Registry[T]) Register(name string, factory Factory[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// Create builds a fresh instance through the named factory, bypassing the
// instance cache. An unknown name fails with the registered names listed so
// a typo in configuration is diagnosable from the error alone.
func (r *Registry[T]) Create(name string, cfg map[string]any) (T, error) {
	r.mu.RLock()
	factory, ok := r.factories[name]
	r.mu.RUnlock()

	var zero T
	if !ok {
		known := r.List()
		if len(known) == 0 {
			return zero, fmt.Errorf("provider %q not registered (no factories registered)", name)
		}
		return zero, fmt.Errorf("provider %q not registered (have: %s)", name, strings.Join(known, ", "))
	}
	instance, err := factory(cfg)
	if err != nil {
		return zero, fmt.Errorf("provider %q: %w", name, err)
	}
	return instance, nil
}

// Resolve returns the cached instance for name, building and caching it on
// first use. Concurrent first resolutions may both build; the first to
// finish wins and the other build is discarded.
func (r *Registry[T]) Resolve(name string, cfg map[string]any) (T, error) {
	r.mu.RLock()
	instance, ok := r.instances[name]
	r.mu.RUnlock()
	if ok {
		return instance, nil
	}

	instance, err := r.Create(name, cfg)
	if err != nil {
		var zero T
		return zero, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.instances[name]; ok {
		return cached, nil
	}
	r.instances[name] = instance
	return instance, nil
}

// Get returns the cached instance for name, if one exists.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	instance, ok := r.instances[name]
	return instance, ok
}

// Set caches an instance under name, replacing any existing one. Useful for
// injecting pre-built or fake providers in tests.
func (r *Registry[T]) Set(name string, instance T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[name] = instance
}

// List returns the registered factory names in sorted order.
func (r *Registry[T]) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
