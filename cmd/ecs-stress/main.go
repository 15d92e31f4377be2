//go:generate go run ./gen -components 16 -systems 12

package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/tickworld/app"
	"github.com/plus3/tickworld/ecs"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	churn := flag.Int("churn", 10, "Entities despawned and respawned every tick.")
	churnStage := flag.String("churn-stage", ecs.End.String(), "Stage the churn system runs in.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu, mem or allocs.")
	flag.Parse()

	stage, err := ecs.ParseStage(*churnStage)
	if err != nil {
		log.Fatalf("Invalid -churn-stage: %v", err)
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "allocs":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("Unknown -profile mode %q", *profileMode)
	}

	log.Println("Starting ECS stress test...")

	// 1. Setup World, Schedule and systems
	a := app.New(app.WithLogger(log.Default()))
	RegisterAllGeneratedComponents(a.World)
	RegisterAllGeneratedSystems(a)
	a.AddSystemFn("churn", stage, churnSystem(*churn))

	// 2. Populate the World with initial entities
	log.Printf("Populating world with %d entities...\n", *entityCount)
	for range *entityCount {
		// Spawn an entity with 1 to 5 random components
		SpawnRandomEntity(a.World, rand.IntN(5)+1)
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentCount,
		Systems:        systemCount,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	startTime := time.Now()
	deadline := startTime.Add(*duration)
	var totalUpdates int64
	lastFrameTime := startTime

	for time.Now().Before(deadline) {
		deltaTime := time.Since(lastFrameTime)
		lastFrameTime = time.Now()

		updateStart := time.Now()
		a.Tick(deltaTime)
		updateDuration := time.Since(updateStart)

		report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
		totalUpdates++
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Schedule = a.Schedule.Stats()
	report.World = a.World.CollectStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

// churnSystem despawns n random entities per tick and spawns n replacements,
// all through the command buffer.
func churnSystem(n int) func(*ecs.World) {
	return func(w *ecs.World) {
		if n <= 0 {
			return
		}
		entities := w.Entities()
		cmds := w.Commands()
		rand.Shuffle(len(entities), func(i, j int) {
			entities[i], entities[j] = entities[j], entities[i]
		})
		for _, e := range entities[:min(n, len(entities))] {
			cmds.Despawn(e)
		}
		for range n {
			cmds.Defer(func(w *ecs.World) {
				SpawnRandomEntity(w, rand.IntN(5)+1)
			})
		}
	}
}
