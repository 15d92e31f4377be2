package ecs_test

import (
	"testing"

	"github.com/plus3/tickworld/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectStats(t *testing.T) {
	world := ecs.NewWorld()

	world.SpawnWith(Position{}, Velocity{})
	world.SpawnWith(Position{})
	world.Spawn()
	ecs.InsertResource(world, GameClock{})

	stats := world.CollectStats()
	assert.Equal(t, 3, stats.EntityCount)
	assert.Equal(t, 2, stats.StorageCount)
	assert.Equal(t, 3, stats.ComponentCount)
	assert.Equal(t, 1, stats.ResourceCount)

	require.Len(t, stats.Storages, 2)
	assert.Equal(t, ecs.StorageStats{Type: "ecs_test.Position", Count: 2}, stats.Storages[0])
	assert.Equal(t, ecs.StorageStats{Type: "ecs_test.Velocity", Count: 1}, stats.Storages[1])
	assert.Equal(t, []string{"ecs_test.GameClock"}, stats.ResourceTypes)
}

func TestCollectStatsEmptyWorld(t *testing.T) {
	stats := ecs.NewWorld().CollectStats()

	assert.Zero(t, stats.EntityCount)
	assert.Zero(t, stats.ComponentCount)
	assert.Empty(t, stats.Storages)
	assert.Empty(t, stats.ResourceTypes)
}
