package commander

import (
	"maps"
	"slices"
	"sync"
)

// Registry maps command names to handlers.
// Names are case-sensitive. Registering an existing name overwrites the previous handler.
// A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry instantiates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register sets the handler for name and returns the registry for chaining.
// It panics if name is empty or hdl is nil.
func (reg *Registry) Register(name string, hdl Handler) *Registry {
	validate(name, hdl)
	reg.mu.Lock()
	reg.handlers[name] = hdl
	reg.mu.Unlock()
	return reg
}

// RegisterMany registers hdl under every one of names.
func (reg *Registry) RegisterMany(names []string, hdl Handler) *Registry {
	for _, name := range names {
		validate(name, hdl)
	}
	reg.mu.Lock()
	for _, name := range names {
		reg.handlers[name] = hdl
	}
	reg.mu.Unlock()
	return reg
}

// Has reports whether a handler is registered under name.
func (reg *Registry) Has(name string) bool {
	_, ok := reg.Resolve(name)
	return ok
}

// Resolve returns the handler registered under name and whether it exists.
func (reg *Registry) Resolve(name string) (Handler, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	hdl, ok := reg.handlers[name]
	return hdl, ok
}

// Names returns the registered command names in sorted order.
func (reg *Registry) Names() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return slices.Sorted(maps.Keys(reg.handlers))
}

// Len returns the number of registered names.
func (reg *Registry) Len() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.handlers)
}

//------Internal------//

func (reg *Registry) snapshot() map[string]Handler {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return maps.Clone(reg.handlers)
}

func validate(name string, hdl Handler) {
	if name == "" {
		panic(InvalidNameError)
	}
	if hdl == nil {
		panic(InvalidHandlerError)
	}
}
