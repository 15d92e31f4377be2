package ecs_test

import (
	"testing"

	"github.com/plus3/tickworld/ecs"
	"github.com/stretchr/testify/assert"
)

func TestSystemFn(t *testing.T) {
	calls := 0
	sys := ecs.NewSystemFn("counter", func(*ecs.World) { calls++ })

	assert.Equal(t, "counter", sys.Name())
	assert.Empty(t, sys.Dependencies())

	sys.Run(ecs.NewWorld())
	sys.Run(ecs.NewWorld())
	assert.Equal(t, 2, calls)
}

func TestSystemFnDependencies(t *testing.T) {
	sys := ecs.NewSystemFn("render", nil).
		WithDependency("physics").
		WithDependencies("input", "physics", "camera")
	sys.AddDependency("input")

	assert.Equal(t, []string{"physics", "input", "camera"}, sys.Dependencies())
}

func TestSystemFnNilFunc(t *testing.T) {
	sys := ecs.NewSystemFn("noop", nil)
	assert.NotPanics(t, func() { sys.Run(ecs.NewWorld()) })
}

func TestSystemDependenciesAreCopiedAtRegistration(t *testing.T) {
	schedule := ecs.NewSchedule()
	r := &recorder{}
	r.add(t, schedule, "a", ecs.Update)

	sys := r.system("b")
	assert.NoError(t, schedule.AddSystem(sys, "b", ecs.Start))

	// Declaring after registration does not reach the schedule.
	sys.AddDependency("a")
	deps, ok := schedule.Dependencies("b")
	assert.True(t, ok)
	assert.Empty(t, deps)

	schedule.Run(ecs.NewWorld())
	assert.Equal(t, []string{"b", "a"}, r.order)
}
