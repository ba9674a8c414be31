package commander

import (
	"maps"
	"slices"
)

// CollisionSuffix is appended to an incoming name by MergeInto when the name is already taken.
const CollisionSuffix = "_bis"

// Combine returns a new Registry holding every entry of a and b.
// The union is right-biased: when both define a name, the handler from b is kept.
// Neither a nor b is modified.
func Combine(a, b *Registry) *Registry {
	combined := NewRegistry()
	maps.Copy(combined.handlers, a.snapshot())
	maps.Copy(combined.handlers, b.snapshot())
	return combined
}

// MergeInto adds the entries of other to reg, keeping the handlers already present in reg.
// Names not yet in reg are registered directly.
// For a colliding name the incoming handler is registered as name+CollisionSuffix when suffix is true,
// overwriting whatever is registered under that suffixed name, or discarded when suffix is false.
// The entries of other are visited in sorted name order, each collision check seeing reg as updated so far.
func (reg *Registry) MergeInto(other *Registry, suffix bool) *Registry {
	incoming := other.snapshot()
	reg.mu.Lock()
	defer reg.mu.Unlock()
	for _, name := range slices.Sorted(maps.Keys(incoming)) {
		hdl := incoming[name]
		if _, exists := reg.handlers[name]; !exists {
			reg.handlers[name] = hdl
			continue
		}
		if suffix {
			reg.handlers[name+CollisionSuffix] = hdl
		}
	}
	return reg
}
