package ecs

import (
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

// World owns every entity, every component storage and every resource of an
// application. A World is not safe for concurrent use.
type World struct {
	alloc    entityAllocator
	entities *intmap.Set[Entity]
	storages map[reflect.Type]*componentStorage

	resources     map[reflect.Type]any
	resourceEpoch uint64

	commands        *Commands
	storageCapacity int
}

// WorldOption configures a World created by NewWorld.
type WorldOption func(*worldConfig)

type worldConfig struct {
	entityCapacity  int
	storageCapacity int
}

// WithEntityCapacity presizes the active entity set.
func WithEntityCapacity(n int) WorldOption {
	return func(c *worldConfig) { c.entityCapacity = n }
}

// WithStorageCapacity presizes every component storage created by the World.
func WithStorageCapacity(n int) WorldOption {
	return func(c *worldConfig) { c.storageCapacity = n }
}

// NewWorld creates an empty World.
func NewWorld(opts ...WorldOption) *World {
	cfg := worldConfig{
		entityCapacity:  256,
		storageCapacity: defaultStorageCapacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &World{
		entities:        intmap.NewSet[Entity](cfg.entityCapacity),
		storages:        make(map[reflect.Type]*componentStorage),
		resources:       make(map[reflect.Type]any),
		commands:        newCommands(),
		storageCapacity: cfg.storageCapacity,
	}
}

// RegisterComponent creates the storage for T ahead of the first insert.
// Registration is optional; storages are otherwise created on demand.
func RegisterComponent[T any](w *World) {
	w.storageFor(reflect.TypeFor[T](), true)
}

func (w *World) storageFor(t reflect.Type, create bool) *componentStorage {
	s, ok := w.storages[t]
	if !ok && create {
		s = newComponentStorage(t, w.storageCapacity)
		w.storages[t] = s
	}
	return s
}

// Spawn allocates a new entity and returns a builder for its components.
func (w *World) Spawn() *EntityBuilder {
	e := w.alloc.next()
	w.entities.Add(e)
	return &EntityBuilder{world: w, entity: e}
}

// SpawnWith spawns an entity carrying the given components.
func (w *World) SpawnWith(components ...any) Entity {
	b := w.Spawn()
	for _, c := range components {
		b.With(c)
	}
	return b.Entity()
}

// Despawn removes the entity from the active set and drops every component it
// holds. It reports whether the entity was active; despawning an unknown or
// already despawned entity is a no-op.
func (w *World) Despawn(e Entity) bool {
	active := w.entities.Has(e)
	if active {
		w.entities.Del(e)
	}
	for _, s := range w.storages {
		s.remove(e)
	}
	return active
}

// Contains reports whether the entity is in the active set. It says nothing
// about which components the entity holds.
func (w *World) Contains(e Entity) bool {
	return w.entities.Has(e)
}

// EntityCount returns the number of active entities.
func (w *World) EntityCount() int {
	return w.entities.Len()
}

// Entities returns a snapshot of the active entities in ascending order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, w.entities.Len())
	w.entities.ForEach(func(e Entity) bool {
		out = append(out, e)
		return true
	})
	slices.Sort(out)
	return out
}

// Commands returns the World's deferred command buffer. Schedule.Run flushes
// it after every system has run.
func (w *World) Commands() *Commands {
	return w.commands
}

// InsertAny stores component on the entity using its dynamic type. A pointer
// is dereferenced and its target stored by value. It panics on a nil component.
func (w *World) InsertAny(e Entity, component any) {
	v := reflect.ValueOf(component)
	if !v.IsValid() {
		panic("ecs: cannot insert a nil component")
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			panic("ecs: cannot insert a nil component pointer")
		}
		v = v.Elem()
	}
	w.storageFor(v.Type(), true).set(e, v)
}

// GetByType returns a pointer to the entity's component of type t.
func (w *World) GetByType(e Entity, t reflect.Type) (any, bool) {
	s := w.storageFor(t, false)
	if s == nil {
		return nil, false
	}
	return s.get(e)
}

// RemoveByType drops the entity's component of type t.
func (w *World) RemoveByType(e Entity, t reflect.Type) bool {
	s := w.storageFor(t, false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

// ComponentTypes lists the component types the entity holds, sorted by name.
func (w *World) ComponentTypes(e Entity) []reflect.Type {
	var types []reflect.Type
	for t, s := range w.storages {
		if s.has(e) {
			types = append(types, t)
		}
	}
	sortTypes(types)
	return types
}

// Get returns the entity's T component. The result is nil, false when no
// storage for T exists yet or the entity holds no T.
func Get[T any](w *World, e Entity) (*T, bool) {
	return typedGet[T](w.storageFor(reflect.TypeFor[T](), false), e)
}

// GetMut returns a pointer through which the entity's T component may be
// modified in place.
func GetMut[T any](w *World, e Entity) (*T, bool) {
	return typedGet[T](w.storageFor(reflect.TypeFor[T](), false), e)
}

// Has reports whether the entity holds a T component.
func Has[T any](w *World, e Entity) bool {
	s := w.storageFor(reflect.TypeFor[T](), false)
	return s != nil && s.has(e)
}

// Insert stores value as the entity's T component, creating the storage for T
// on first use. An existing value is overwritten in place.
func Insert[T any](w *World, e Entity, value T) {
	s := w.storageFor(reflect.TypeFor[T](), true)
	if cur, ok := typedGet[T](s, e); ok {
		*cur = value
		return
	}
	ptr := new(T)
	*ptr = value
	s.put(e, ptr)
}

// Remove drops the entity's T component and reports whether one was present.
func Remove[T any](w *World, e Entity) bool {
	s := w.storageFor(reflect.TypeFor[T](), false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

// Lookup is Get for callers that want a descriptive error instead of a bool.
// The error is a *WorldError wrapping ErrEntityNotFound or ErrComponentNotFound.
func Lookup[T any](w *World, e Entity) (*T, error) {
	if !w.Contains(e) {
		return nil, &WorldError{Op: "lookup", Entity: e, Err: ErrEntityNotFound}
	}
	v, ok := Get[T](w, e)
	if !ok {
		return nil, &WorldError{Op: "lookup", Entity: e, Type: reflect.TypeFor[T](), Err: ErrComponentNotFound}
	}
	return v, nil
}
