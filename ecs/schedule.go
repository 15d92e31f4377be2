package ecs

import (
	"log"
	"slices"
	"time"
)

// ScheduleStats provides statistics about schedule execution.
type ScheduleStats struct {
	SystemCount     int
	Runs            int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Stage          Stage
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *systemStatsInternal) record(d time.Duration) {
	s.executionCount++
	s.lastDuration = d
	s.totalDuration += d
	if s.executionCount == 1 || d < s.minDuration {
		s.minDuration = d
	}
	if d > s.maxDuration {
		s.maxDuration = d
	}
}

type scheduledSystem struct {
	system   System
	stage    Stage
	executed bool
	running  bool
	stats    systemStatsInternal
}

// Schedule registers named systems against stages and runs them once per
// call to Run. Systems run in stage order, and in registration order within a
// stage, except that a system's dependencies always run before it, wherever
// they are staged.
//
// The dependency edges live in the Schedule, keyed by system name, and are
// kept acyclic: edges that would close a cycle are rejected when added.
type Schedule struct {
	systems map[string]*scheduledSystem
	stages  [stageCount][]string
	deps    map[string][]string
	logger  *log.Logger
	runs    int64
}

// ScheduleOption configures a Schedule created by NewSchedule.
type ScheduleOption func(*Schedule)

// WithLogger makes the Schedule report skipped dependencies to logger.
func WithLogger(logger *log.Logger) ScheduleOption {
	return func(s *Schedule) { s.logger = logger }
}

// NewSchedule creates an empty Schedule.
func NewSchedule(opts ...ScheduleOption) *Schedule {
	s := &Schedule{
		systems: make(map[string]*scheduledSystem),
		deps:    make(map[string][]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddSystem registers system under name in stage. The system's declared
// dependencies become edges of the schedule; they may name systems that are
// registered later. It fails with ErrSystemAlreadyExists if name is taken,
// ErrInvalidStage for an undeclared stage, and ErrDependencyCycle if the
// declared dependencies close a cycle, in which case nothing is registered.
func (s *Schedule) AddSystem(system System, name string, stage Stage) error {
	if !stage.Valid() {
		return &ScheduleError{Op: "add system", Name: name, Err: ErrInvalidStage}
	}
	if _, ok := s.systems[name]; ok {
		return &ScheduleError{Op: "add system", Name: name, Err: ErrSystemAlreadyExists}
	}

	var deps []string
	for _, d := range system.Dependencies() {
		if !slices.Contains(deps, d) {
			deps = append(deps, d)
		}
	}

	for _, d := range deps {
		if s.reaches(d, name) {
			return &ScheduleError{Op: "add system", Name: name, Dependency: d, Err: ErrDependencyCycle}
		}
	}

	s.systems[name] = &scheduledSystem{system: system, stage: stage}
	s.stages[stage] = append(s.stages[stage], name)
	if len(deps) > 0 {
		s.deps[name] = deps
	} else {
		delete(s.deps, name)
	}
	return nil
}

// AddSystemFn registers fn as a SystemFn called name.
func (s *Schedule) AddSystemFn(name string, stage Stage, fn func(*World)) error {
	return s.AddSystem(NewSystemFn(name, fn), name, stage)
}

// AddDependency makes dependency run before system. Both must be registered.
// It fails with ErrDependencyCycle, without changing the schedule, if
// dependency already transitively depends on system. Adding an existing edge
// is a no-op.
func (s *Schedule) AddDependency(system, dependency string) error {
	if _, ok := s.systems[system]; !ok {
		return &ScheduleError{Op: "add dependency", Name: system, Dependency: dependency, Err: ErrSystemNotFound}
	}
	if _, ok := s.systems[dependency]; !ok {
		return &ScheduleError{Op: "add dependency", Name: system, Dependency: dependency, Err: ErrDependencyNotFound}
	}
	if slices.Contains(s.deps[system], dependency) {
		return nil
	}
	if s.reaches(dependency, system) {
		return &ScheduleError{Op: "add dependency", Name: system, Dependency: dependency, Err: ErrDependencyCycle}
	}

	s.deps[system] = append(s.deps[system], dependency)
	return nil
}

// reaches reports whether target is reachable from start by following
// dependency edges, start itself included.
func (s *Schedule) reaches(start, target string) bool {
	visited := make(map[string]bool)
	stack := []string{start}

	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if name == target {
			return true
		}
		if visited[name] {
			continue
		}
		visited[name] = true

		stack = append(stack, s.deps[name]...)
	}
	return false
}

// Dependencies returns the dependency names recorded for a system.
func (s *Schedule) Dependencies(name string) ([]string, bool) {
	if _, ok := s.systems[name]; !ok {
		return nil, false
	}
	return slices.Clone(s.deps[name]), true
}

// GetSystem returns the system registered under name.
func (s *Schedule) GetSystem(name string) (System, bool) {
	entry, ok := s.systems[name]
	if !ok {
		return nil, false
	}
	return entry.system, true
}

// Stage returns the stage the named system is assigned to.
func (s *Schedule) Stage(name string) (Stage, bool) {
	entry, ok := s.systems[name]
	if !ok {
		return 0, false
	}
	return entry.stage, true
}

// StageSystems returns the names registered in stage, in registration order.
func (s *Schedule) StageSystems(stage Stage) []string {
	if !stage.Valid() {
		return nil
	}
	return slices.Clone(s.stages[stage])
}

// Len returns the number of registered systems.
func (s *Schedule) Len() int {
	return len(s.systems)
}

// RemoveSystem unregisters the named system and its own dependency edges.
// Edges from other systems naming it are kept and skipped while it is absent.
func (s *Schedule) RemoveSystem(name string) error {
	entry, ok := s.systems[name]
	if !ok {
		return &ScheduleError{Op: "remove system", Name: name, Err: ErrSystemNotFound}
	}

	delete(s.systems, name)
	delete(s.deps, name)
	s.stages[entry.stage] = slices.DeleteFunc(s.stages[entry.stage], func(n string) bool {
		return n == name
	})
	return nil
}

// Clear unregisters every system and drops all statistics.
func (s *Schedule) Clear() {
	clear(s.systems)
	clear(s.deps)
	for i := range s.stages {
		s.stages[i] = nil
	}
	s.runs = 0
}

// Run executes every registered system exactly once, then flushes the World's
// command buffer. A panic in a system propagates to the caller.
func (s *Schedule) Run(w *World) {
	for _, entry := range s.systems {
		entry.executed = false
		entry.running = false
	}

	for _, stage := range AllStages() {
		for _, name := range s.stages[stage] {
			s.runSystem(name, w)
		}
	}

	s.runs++
	w.Commands().Flush(w)
}

// RunSystem executes the named system, after its dependencies, unless it
// already ran in the current pass. Only Run starts a new pass.
func (s *Schedule) RunSystem(name string, w *World) error {
	if _, ok := s.systems[name]; !ok {
		return &ScheduleError{Op: "run system", Name: name, Err: ErrSystemNotFound}
	}
	s.runSystem(name, w)
	return nil
}

func (s *Schedule) runSystem(name string, w *World) {
	entry, ok := s.systems[name]
	if !ok {
		if s.logger != nil {
			s.logger.Printf("ecs: skipping unregistered dependency %q", name)
		}
		return
	}
	if entry.executed || entry.running {
		return
	}

	entry.running = true
	for _, dep := range s.deps[name] {
		s.runSystem(dep, w)
	}

	start := time.Now()
	entry.system.Run(w)
	entry.stats.record(time.Since(start))

	entry.running = false
	entry.executed = true
}

// Order returns the names of the systems in the order Run would execute them,
// without running anything.
func (s *Schedule) Order() []string {
	order := make([]string, 0, len(s.systems))
	seen := make(map[string]bool, len(s.systems))

	var visit func(name string)
	visit = func(name string) {
		if seen[name] {
			return
		}
		if _, ok := s.systems[name]; !ok {
			return
		}
		seen[name] = true
		for _, dep := range s.deps[name] {
			visit(dep)
		}
		order = append(order, name)
	}

	for _, stage := range AllStages() {
		for _, name := range s.stages[stage] {
			visit(name)
		}
	}
	return order
}

// Stats returns execution statistics, one entry per system in stage and
// registration order.
func (s *Schedule) Stats() *ScheduleStats {
	stats := &ScheduleStats{
		SystemCount: len(s.systems),
		Runs:        s.runs,
		Systems:     make([]SystemStats, 0, len(s.systems)),
	}

	for _, stage := range AllStages() {
		for _, name := range s.stages[stage] {
			internal := s.systems[name].stats

			avgDuration := time.Duration(0)
			if internal.executionCount > 0 {
				avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			}

			stats.Systems = append(stats.Systems, SystemStats{
				Name:           name,
				Stage:          stage,
				ExecutionCount: internal.executionCount,
				MinDuration:    internal.minDuration,
				MaxDuration:    internal.maxDuration,
				AvgDuration:    avgDuration,
				LastDuration:   internal.lastDuration,
				TotalDuration:  internal.totalDuration,
			})
			stats.TotalExecutions += internal.executionCount
		}
	}

	return stats
}
