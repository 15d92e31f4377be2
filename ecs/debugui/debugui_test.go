package debugui

import (
	"bytes"
	"log"
	"reflect"
	"testing"

	"github.com/plus3/tickworld/app"
	"github.com/plus3/tickworld/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPosition struct {
	X, Y float32
}

type testSprite struct {
	Name    string
	Visible bool
	Parent  *testPosition
	hidden  int
}

func TestCollectSystemInfo(t *testing.T) {
	schedule := ecs.NewSchedule()
	require.NoError(t, schedule.AddSystemFn("draw", ecs.Render, nil))
	require.NoError(t, schedule.AddSystemFn("late", ecs.End, nil))
	require.NoError(t, schedule.AddSystemFn("early", ecs.Start, nil))
	require.NoError(t, schedule.AddDependency("early", "late"))
	schedule.Run(ecs.NewWorld())

	systems := collectSystemInfo(schedule)
	require.Len(t, systems, 3)

	assert.Equal(t, "late", systems[0].Name)
	assert.Equal(t, ecs.End, systems[0].Stage)
	assert.Equal(t, "early", systems[1].Name)
	assert.Equal(t, []string{"late"}, systems[1].Dependencies)
	assert.Equal(t, "draw", systems[2].Name)

	for i, s := range systems {
		assert.Equal(t, i, s.Order)
		assert.Equal(t, int64(1), s.ExecutionCount)
	}
}

func TestCollectEntityInfo(t *testing.T) {
	world := ecs.NewWorld()
	a := world.SpawnWith(testPosition{}, testSprite{Name: "hero"})
	b := world.Spawn().Entity()

	infos := collectEntityInfo(world)
	require.Len(t, infos, 2)

	assert.Equal(t, a, infos[0].ID)
	assert.Equal(t, 2, infos[0].ComponentCount)
	assert.Equal(t, []string{"debugui.testPosition", "debugui.testSprite"}, infos[0].ComponentTypes)

	assert.Equal(t, b, infos[1].ID)
	assert.Zero(t, infos[1].ComponentCount)
}

func TestFilterEntities(t *testing.T) {
	entities := []EntityInfo{
		{ID: 1, ComponentTypes: []string{"game.Position"}},
		{ID: 12, ComponentTypes: []string{"game.Velocity"}},
		{ID: 3, ComponentTypes: []string{"game.Position", "game.Velocity"}},
	}

	assert.Len(t, filterEntities(entities, ""), 3)

	byType := filterEntities(entities, "VELOCITY")
	require.Len(t, byType, 2)
	assert.Equal(t, ecs.Entity(12), byType[0].ID)
	assert.Equal(t, ecs.Entity(3), byType[1].ID)

	byID := filterEntities(entities, "1")
	require.Len(t, byID, 2)
	assert.Equal(t, ecs.Entity(1), byID[0].ID)
	assert.Equal(t, ecs.Entity(12), byID[1].ID)

	assert.Empty(t, filterEntities(entities, "health"))
}

func TestWorldStatsWindowHistory(t *testing.T) {
	ws := NewWorldStatsWindow(4)
	assert.Zero(t, ws.AverageFrameTime())

	for range 4 {
		ws.Record(0.010)
	}
	assert.InDelta(t, 10.0, ws.AverageFrameTime(), 0.001)

	// The oldest samples are overwritten.
	ws.Record(0.030)
	ws.Record(0.030)
	assert.InDelta(t, 20.0, ws.AverageFrameTime(), 0.001)
}

func TestWorldStatsWindowWithoutHistory(t *testing.T) {
	ws := NewWorldStatsWindow(0)
	assert.NotPanics(t, func() { ws.Record(0.016) })
	assert.Zero(t, ws.AverageFrameTime())
}

func TestReflectionCacheFields(t *testing.T) {
	rc := NewReflectionCache()

	fields := rc.GetFields(reflect.TypeFor[testSprite]())
	require.Len(t, fields, 3)

	assert.Equal(t, "Name", fields[0].Name)
	assert.Equal(t, reflect.TypeFor[string](), fields[0].Type)
	assert.Equal(t, "Visible", fields[1].Name)
	assert.Equal(t, 1, fields[1].Index)

	assert.Equal(t, "Parent", fields[2].Name)
	assert.True(t, fields[2].IsPointer)
	assert.Equal(t, reflect.TypeFor[testPosition](), fields[2].Type)

	again := rc.GetFields(reflect.TypeFor[testSprite]())
	assert.Equal(t, fields, again)

	assert.Empty(t, rc.GetFields(reflect.TypeFor[int]()))
}

func TestPluginBuild(t *testing.T) {
	var buf bytes.Buffer
	a := app.New(app.WithLogger(log.New(&buf, "", 0)))
	a.AddPlugins(Plugin{})
	a.Build()

	stage, ok := a.Schedule.Stage(SystemName)
	require.True(t, ok)
	assert.Equal(t, ecs.Render, stage)

	assert.True(t, ecs.HasResource[ImguiInputState](a.World))
	overlay, ok := ecs.GetResource[Overlay](a.World)
	require.True(t, ok)
	assert.Same(t, a.Schedule, overlay.schedule)
	assert.Equal(t, 120, overlay.stats.historyFrames)
	assert.Equal(t, 100, overlay.browser.maxEntitiesPerPage)

	// A second install is rejected and logged.
	a.AddPlugins(Plugin{})
	assert.Contains(t, buf.String(), "system already exists")
	assert.Equal(t, 1, a.Schedule.Len())
}
