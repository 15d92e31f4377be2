package ecs_test

import (
	"fmt"

	"github.com/plus3/tickworld/ecs"
)

type GameConfig struct {
	MaxPlayers int
	Difficulty string
}

// ExampleInsertResource demonstrates storing and reading a singleton.
func ExampleInsertResource() {
	world := ecs.NewWorld()
	ecs.InsertResource(world, GameConfig{MaxPlayers: 4, Difficulty: "Normal"})

	if config, ok := ecs.GetResourceMut[GameConfig](world); ok {
		config.Difficulty = "Hard"
	}

	config, _ := ecs.GetResource[GameConfig](world)
	fmt.Printf("%d players, %s\n", config.MaxPlayers, config.Difficulty)

	// Output:
	// 4 players, Hard
}

// ExampleNewResource shows that handles to the same resource share its value.
func ExampleNewResource() {
	world := ecs.NewWorld()

	clock := ecs.NewResource(world, GameClock{Ticks: 1})
	same := ecs.NewResource[GameClock](world)

	clock.Get().Ticks = 42
	fmt.Println("ticks:", same.Get().Ticks)

	ecs.RemoveResource[GameClock](world)
	fmt.Println("exists:", same.Exists())

	// Output:
	// ticks: 42
	// exists: false
}
