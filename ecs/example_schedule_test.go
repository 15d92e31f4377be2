package ecs_test

import (
	"fmt"

	"github.com/plus3/tickworld/ecs"
)

// ExampleSchedule demonstrates staged systems with an explicit dependency.
func ExampleSchedule() {
	world := ecs.NewWorld()
	schedule := ecs.NewSchedule()

	_ = schedule.AddSystemFn("render", ecs.Render, func(*ecs.World) {
		fmt.Println("render")
	})
	_ = schedule.AddSystemFn("physics", ecs.Update, func(*ecs.World) {
		fmt.Println("physics")
	})
	_ = schedule.AddSystemFn("input", ecs.Update, func(*ecs.World) {
		fmt.Println("input")
	})
	_ = schedule.AddDependency("physics", "input")

	schedule.Run(world)

	// Output:
	// input
	// physics
	// render
}

// ExampleSchedule_AddDependency shows that a cycle is rejected.
func ExampleSchedule_AddDependency() {
	schedule := ecs.NewSchedule()
	_ = schedule.AddSystemFn("a", ecs.Update, nil)
	_ = schedule.AddSystemFn("b", ecs.Update, nil)

	fmt.Println(schedule.AddDependency("a", "b"))
	fmt.Println(schedule.AddDependency("b", "a"))

	// Output:
	// <nil>
	// ecs: add dependency "b" -> "a": dependency cycle
}

// ExampleSystemFn declares dependencies on the system itself.
func ExampleSystemFn() {
	world := ecs.NewWorld()
	schedule := ecs.NewSchedule()

	spawn := ecs.NewSystemFn("spawn", func(w *ecs.World) {
		w.Commands().Spawn(Position{})
	})
	report := ecs.NewSystemFn("report", func(w *ecs.World) {
		fmt.Println("positions:", ecs.Count[Position](w))
	}).WithDependency("spawn")

	_ = schedule.AddSystem(report, report.Name(), ecs.Start)
	_ = schedule.AddSystem(spawn, spawn.Name(), ecs.End)

	schedule.Run(world)
	schedule.Run(world)
	fmt.Println(schedule.Order())

	// Output:
	// positions: 0
	// positions: 1
	// [spawn report]
}
