package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/tickworld/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	world := ecs.NewWorld()
	RegisterAllGeneratedComponents(world)
	for range 10 {
		SpawnRandomEntity(world, 3)
	}

	schedule := ecs.NewSchedule()
	require.NoError(t, schedule.AddSystemFn("churn", ecs.End, churnSystem(2)))
	schedule.Run(world)
	assert.Equal(t, 10, world.EntityCount(), "churn keeps the population stable")

	report := &Report{
		Duration:   time.Second,
		Entities:   10,
		Components: componentCount,
		Systems:    systemCount,
		Schedule:   schedule.Stats(),
		World:      world.CollectStats(),
	}

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "# ECS Stress Test Report")
	assert.Contains(t, out, "**Entities at End:** 10")
	assert.Contains(t, out, "| churn | End | 1 |")
	assert.NotContains(t, out, "GC Pause Durations")
}
