package ecs_test

import (
	"testing"

	"github.com/plus3/tickworld/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryOne(t *testing.T) {
	world := ecs.NewWorld()

	e1 := world.SpawnWith(Position{X: 1})
	world.SpawnWith(Velocity{DX: 1})
	e3 := world.SpawnWith(Position{X: 3}, Velocity{DX: 3})

	rows := ecs.QueryOne[Position](world)
	require.Len(t, rows, 2)
	assert.Equal(t, e1, rows[0].Entity)
	assert.Equal(t, float32(1), rows[0].Value.X)
	assert.Equal(t, e3, rows[1].Entity)
	assert.Equal(t, float32(3), rows[1].Value.X)
}

func TestQueryOneWithoutStorage(t *testing.T) {
	world := ecs.NewWorld()
	world.SpawnWith(Position{})

	assert.Empty(t, ecs.QueryOne[Health](world))
	assert.Empty(t, ecs.QueryTwo[Position, Health](world))
	assert.Empty(t, ecs.QueryTwo[Health, Position](world))
	assert.Zero(t, ecs.Count[Health](world))
	assert.Empty(t, ecs.EntitiesWith[Health](world))
}

func TestQueryTwo(t *testing.T) {
	world := ecs.NewWorld()

	both1 := world.SpawnWith(Position{X: 1}, Velocity{DX: 10})
	world.SpawnWith(Position{X: 2})
	both2 := world.SpawnWith(Position{X: 3}, Velocity{DX: 30})

	rows := ecs.QueryTwo[Position, Velocity](world)
	require.Len(t, rows, 2)

	assert.Equal(t, both1, rows[0].Entity)
	assert.Equal(t, float32(1), rows[0].A.X)
	assert.Equal(t, float32(10), rows[0].B.DX)

	assert.Equal(t, both2, rows[1].Entity)
	assert.Equal(t, float32(3), rows[1].A.X)
	assert.Equal(t, float32(30), rows[1].B.DX)
}

func TestQueryTwoIsSymmetric(t *testing.T) {
	world := ecs.NewWorld()

	// Many Positions, few Velocities, so each argument order drives from a
	// different storage.
	var want []ecs.Entity
	for i := range 20 {
		b := world.Spawn().With(Position{X: float32(i)})
		if i%5 == 0 {
			b.With(Velocity{DX: float32(i)})
			want = append(want, b.Entity())
		}
	}

	pv := ecs.QueryTwo[Position, Velocity](world)
	vp := ecs.QueryTwo[Velocity, Position](world)
	require.Len(t, pv, len(want))
	require.Len(t, vp, len(want))

	for i, e := range want {
		assert.Equal(t, e, pv[i].Entity)
		assert.Equal(t, e, vp[i].Entity)
		assert.Equal(t, pv[i].A.X, vp[i].A.DX)
	}
}

func TestQueryIsSnapshot(t *testing.T) {
	world := ecs.NewWorld()
	for i := range 3 {
		world.SpawnWith(Health{Current: i})
	}

	rows := ecs.QueryOne[Health](world)
	require.Len(t, rows, 3)

	// Structural changes after the query do not affect the result.
	for _, row := range rows {
		world.Despawn(row.Entity)
		world.SpawnWith(Health{Current: 100})
	}
	assert.Len(t, rows, 3)
	assert.Equal(t, 3, world.EntityCount())
	assert.Len(t, ecs.QueryOne[Health](world), 3)
}

func TestQueryValuesAliasStorage(t *testing.T) {
	world := ecs.NewWorld()
	id := world.SpawnWith(Position{X: 1}, Velocity{DX: 2})

	for _, row := range ecs.QueryTwo[Position, Velocity](world) {
		row.A.X += row.B.DX
	}

	pos, _ := ecs.Get[Position](world, id)
	assert.Equal(t, float32(3), pos.X)
}

func TestCollectThenMutate(t *testing.T) {
	world := ecs.NewWorld()
	for i := range 4 {
		world.SpawnWith(Health{Current: i * 10, Max: 100})
	}

	// Gather first, mutate in a second pass.
	var dead []ecs.Entity
	for _, row := range ecs.QueryOne[Health](world) {
		if row.Value.Current < 15 {
			dead = append(dead, row.Entity)
		}
	}
	for _, e := range dead {
		world.Despawn(e)
	}

	assert.Equal(t, 2, world.EntityCount())
	assert.Equal(t, 2, ecs.Count[Health](world))
}

func TestEntitiesWith(t *testing.T) {
	world := ecs.NewWorld()
	a := world.SpawnWith(Tag("a"))
	world.SpawnWith(Score(1))
	c := world.SpawnWith(Tag("c"), Score(2))

	assert.Equal(t, []ecs.Entity{a, c}, ecs.EntitiesWith[Tag](world))
}
