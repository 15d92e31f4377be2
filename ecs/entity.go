package ecs

import "strconv"

// Entity is an opaque identifier for one logical object in a World.
// Identifiers are issued from a monotonically increasing counter and are never
// reused, so a despawned Entity never aliases a later one. The zero Entity is
// never issued.
type Entity uint64

// NoEntity is the zero Entity. It is never returned by Spawn.
const NoEntity Entity = 0

func (e Entity) String() string {
	return "entity#" + strconv.FormatUint(uint64(e), 10)
}

// entityAllocator hands out entity identifiers.
type entityAllocator struct {
	last uint64
}

func (a *entityAllocator) next() Entity {
	a.last++
	return Entity(a.last)
}

// EntityBuilder attaches components to a freshly spawned entity.
type EntityBuilder struct {
	world  *World
	entity Entity
}

// With stores component on the entity being built, creating the storage for
// its type if needed. Pointer components are dereferenced and stored by value.
// Inserting the same component type twice overwrites the first value.
func (b *EntityBuilder) With(component any) *EntityBuilder {
	b.world.InsertAny(b.entity, component)
	return b
}

// Entity returns the identifier of the entity being built.
func (b *EntityBuilder) Entity() Entity {
	return b.entity
}

// Attach is the typed counterpart of EntityBuilder.With.
func Attach[T any](b *EntityBuilder, component T) *EntityBuilder {
	Insert(b.world, b.entity, component)
	return b
}
