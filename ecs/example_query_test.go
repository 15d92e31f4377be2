package ecs_test

import (
	"fmt"

	"github.com/plus3/tickworld/ecs"
)

// ExampleQueryOne iterates every entity holding one component type.
func ExampleQueryOne() {
	world := ecs.NewWorld()
	world.SpawnWith(Name{Value: "Alice"})
	world.SpawnWith(Position{})
	world.SpawnWith(Name{Value: "Bob"})

	for _, row := range ecs.QueryOne[Name](world) {
		fmt.Println(row.Entity, row.Value.Value)
	}

	// Output:
	// entity#1 Alice
	// entity#3 Bob
}

// ExampleQueryTwo applies velocities to positions.
func ExampleQueryTwo() {
	world := ecs.NewWorld()
	world.SpawnWith(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 2})
	world.SpawnWith(Position{X: 5, Y: 5})
	world.SpawnWith(Position{X: 10, Y: 10}, Velocity{DX: -1, DY: 0})

	for _, row := range ecs.QueryTwo[Position, Velocity](world) {
		row.A.X += row.B.DX
		row.A.Y += row.B.DY
	}

	for _, row := range ecs.QueryOne[Position](world) {
		fmt.Printf("%v: (%.0f, %.0f)\n", row.Entity, row.Value.X, row.Value.Y)
	}

	// Output:
	// entity#1: (1, 2)
	// entity#2: (5, 5)
	// entity#3: (9, 10)
}
