package ecs

import "reflect"

// InsertResource stores value as the World's singleton of type T. A second
// insert of the same type replaces the stored value in place.
func InsertResource[T any](w *World, value T) {
	t := reflect.TypeFor[T]()
	if cur, ok := w.resources[t].(*T); ok {
		*cur = value
		return
	}
	ptr := new(T)
	*ptr = value
	w.resources[t] = ptr
}

// GetResource returns the World's T resource.
func GetResource[T any](w *World) (*T, bool) {
	ptr, ok := w.resources[reflect.TypeFor[T]()].(*T)
	return ptr, ok
}

// GetResourceMut returns a pointer through which the T resource may be
// modified in place.
func GetResourceMut[T any](w *World) (*T, bool) {
	return GetResource[T](w)
}

// HasResource reports whether a T resource is present.
func HasResource[T any](w *World) bool {
	_, ok := w.resources[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource drops the T resource and reports whether one was present.
func RemoveResource[T any](w *World) bool {
	t := reflect.TypeFor[T]()
	if _, ok := w.resources[t]; !ok {
		return false
	}
	delete(w.resources, t)
	w.resourceEpoch++
	return true
}

// ResourceTypes lists the types of every stored resource, sorted by name.
func (w *World) ResourceTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(w.resources))
	for t := range w.resources {
		types = append(types, t)
	}
	sortTypes(types)
	return types
}

// Resource provides cached access to a singleton resource of type T.
// Systems that touch the same resource every tick can hold one instead of
// looking it up by type each time.
type Resource[T any] struct {
	world *World
	ptr   *T
	epoch uint64
}

// NewResource returns an accessor for the T resource. If the resource does not
// exist it is created from initializer, or from the zero value of T.
func NewResource[T any](w *World, initializer ...T) *Resource[T] {
	if !HasResource[T](w) {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		InsertResource(w, value)
	}

	r := &Resource[T]{world: w}
	r.refresh()
	return r
}

// Get returns the resource, or nil if it has been removed from the World.
func (r *Resource[T]) Get() *T {
	if r.ptr == nil || r.epoch != r.world.resourceEpoch {
		r.refresh()
	}
	return r.ptr
}

// Exists reports whether the resource is currently stored in the World.
func (r *Resource[T]) Exists() bool {
	return r.Get() != nil
}

func (r *Resource[T]) refresh() {
	r.ptr, _ = GetResource[T](r.world)
	r.epoch = r.world.resourceEpoch
}
