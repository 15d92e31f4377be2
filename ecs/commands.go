package ecs

import "reflect"

// Commands buffers structural changes to a World so systems can request them
// while walking query results. Buffered operations are applied by Flush.
type Commands struct {
	spawns   []spawnCommand
	despawns []Entity
	inserts  []insertCommand
	removes  []removeCommand
	defers   []func(*World)
}

func newCommands() *Commands {
	return &Commands{}
}

type spawnCommand struct {
	components []any
}

type insertCommand struct {
	entity    Entity
	component any
}

type removeCommand struct {
	entity   Entity
	compType reflect.Type
}

// Spawn queues the spawn of an entity carrying the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Despawn queues an entity despawn.
func (c *Commands) Despawn(entity Entity) {
	c.despawns = append(c.despawns, entity)
}

// Insert queues a component insert on an existing entity.
func (c *Commands) Insert(entity Entity, component any) {
	c.inserts = append(c.inserts, insertCommand{
		entity:    entity,
		component: component,
	})
}

// Remove queues the removal of the entity's component of type compType.
func (c *Commands) Remove(entity Entity, compType reflect.Type) {
	c.removes = append(c.removes, removeCommand{
		entity:   entity,
		compType: compType,
	})
}

// Defer queues fn to run against the World during Flush, after every other
// queued operation.
func (c *Commands) Defer(fn func(*World)) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued operations.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.despawns) + len(c.inserts) + len(c.removes) + len(c.defers)
}

// Flush applies the queued operations to w and resets the buffer.
// Despawns go first; removes and inserts aimed at an entity despawned in the
// same flush are dropped. Spawns and deferred functions run last.
func (c *Commands) Flush(w *World) {
	despawned := make(map[Entity]bool, len(c.despawns))

	for _, e := range c.despawns {
		w.Despawn(e)
		despawned[e] = true
	}

	for _, cmd := range c.removes {
		if !despawned[cmd.entity] {
			w.RemoveByType(cmd.entity, cmd.compType)
		}
	}

	for _, cmd := range c.inserts {
		if !despawned[cmd.entity] {
			w.InsertAny(cmd.entity, cmd.component)
		}
	}

	for _, cmd := range c.spawns {
		w.SpawnWith(cmd.components...)
	}

	// Deferred functions may queue more commands; those wait for the next flush.
	defers := c.defers
	c.spawns = c.spawns[:0]
	c.despawns = c.despawns[:0]
	c.inserts = c.inserts[:0]
	c.removes = c.removes[:0]
	c.defers = nil

	for _, fn := range defers {
		fn(w)
	}
}
