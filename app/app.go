// Package app drives a World and a Schedule: plugins register systems during
// a one-time build phase, then the application ticks the schedule.
package app

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/plus3/tickworld/ecs"
)

// Plugin installs components, resources and systems into an App.
type Plugin interface {
	Build(a *App)
}

// PluginFunc adapts a function to the Plugin interface.
type PluginFunc func(a *App)

func (f PluginFunc) Build(a *App) { f(a) }

// Time is the World resource describing the current tick.
type Time struct {
	Delta   time.Duration
	Elapsed time.Duration
	Tick    int64
}

// App owns the World and Schedule of an application.
type App struct {
	World    *ecs.World
	Schedule *ecs.Schedule

	logger  *log.Logger
	plugins []Plugin
	built   bool
	time    *ecs.Resource[Time]
}

// Option configures an App created by New.
type Option func(*App)

// WithLogger replaces the default logger, which writes to stderr.
func WithLogger(logger *log.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithWorld runs the App against an existing World.
func WithWorld(world *ecs.World) Option {
	return func(a *App) { a.World = world }
}

// New creates an App with an empty World and Schedule.
func New(opts ...Option) *App {
	a := &App{
		logger: log.New(os.Stderr, "app: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.World == nil {
		a.World = ecs.NewWorld()
	}
	a.Schedule = ecs.NewSchedule(ecs.WithLogger(a.logger))
	a.time = ecs.NewResource[Time](a.World)
	return a
}

// Logger returns the App's logger.
func (a *App) Logger() *log.Logger {
	return a.logger
}

// AddPlugins queues plugins for the build phase. Plugins added after Build
// are built immediately.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		if a.built {
			p.Build(a)
			continue
		}
		a.plugins = append(a.plugins, p)
	}
	return a
}

// Build runs every queued plugin once. Tick calls it if needed.
func (a *App) Build() {
	if a.built {
		return
	}
	a.built = true
	for _, p := range a.plugins {
		p.Build(a)
	}
	a.plugins = nil
}

// AddSystem registers system under its own name. A rejected registration is
// logged and otherwise ignored; the result reports whether it took effect.
func (a *App) AddSystem(system ecs.System, stage ecs.Stage) bool {
	if err := a.Schedule.AddSystem(system, system.Name(), stage); err != nil {
		a.logger.Printf("failed to add system: %v", err)
		return false
	}
	return true
}

// AddSystemFn registers fn under name, logging a rejected registration.
func (a *App) AddSystemFn(name string, stage ecs.Stage, fn func(*ecs.World)) bool {
	return a.AddSystem(ecs.NewSystemFn(name, fn), stage)
}

// AddDependency adds a schedule edge, logging a rejected edge.
func (a *App) AddDependency(system, dependency string) bool {
	if err := a.Schedule.AddDependency(system, dependency); err != nil {
		a.logger.Printf("failed to add dependency: %v", err)
		return false
	}
	return true
}

// Tick advances the Time resource by dt and runs the schedule once.
func (a *App) Tick(dt time.Duration) {
	a.Build()

	t := a.time.Get()
	if t == nil {
		// The resource was removed by a system; bring it back.
		a.time = ecs.NewResource[Time](a.World)
		t = a.time.Get()
	}
	t.Delta = dt
	t.Elapsed += dt
	t.Tick++

	a.Schedule.Run(a.World)
}

// Run ticks the App at the given interval until ctx is done. Cancellation is
// only observed between ticks.
func (a *App) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			a.Tick(dt)
		}
	}
}
