package ecs

import "reflect"

// WorldStats is a point-in-time summary of a World's contents.
type WorldStats struct {
	EntityCount    int
	StorageCount   int
	ComponentCount int
	ResourceCount  int
	Storages       []StorageStats
	ResourceTypes  []string
}

// StorageStats describes one component storage.
type StorageStats struct {
	Type  string
	Count int
}

// CollectStats summarizes the World. Storages and resource types are sorted by
// type name.
func (w *World) CollectStats() *WorldStats {
	stats := &WorldStats{
		EntityCount:   w.EntityCount(),
		StorageCount:  len(w.storages),
		ResourceCount: len(w.resources),
		Storages:      make([]StorageStats, 0, len(w.storages)),
	}

	types := make([]reflect.Type, 0, len(w.storages))
	for t := range w.storages {
		types = append(types, t)
	}
	sortTypes(types)

	for _, t := range types {
		n := w.storages[t].len()
		stats.ComponentCount += n
		stats.Storages = append(stats.Storages, StorageStats{Type: t.String(), Count: n})
	}

	for _, t := range w.ResourceTypes() {
		stats.ResourceTypes = append(stats.ResourceTypes, t.String())
	}

	return stats
}
