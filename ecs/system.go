package ecs

// System is a named unit of behavior run by a Schedule once per tick.
// Implementations may keep state between ticks. Dependencies names the
// systems that must run before this one; a Schedule reads it once, at
// registration, and keeps its own copy of the edges from then on.
type System interface {
	Run(w *World)
	Name() string
	Dependencies() []string
}

// SystemFn adapts a plain function to the System interface.
type SystemFn struct {
	name string
	fn   func(*World)
	deps []string
}

var _ System = (*SystemFn)(nil)

// NewSystemFn wraps fn as a System called name.
func NewSystemFn(name string, fn func(*World)) *SystemFn {
	return &SystemFn{name: name, fn: fn}
}

// WithDependency declares that the named system must run first.
func (s *SystemFn) WithDependency(name string) *SystemFn {
	s.AddDependency(name)
	return s
}

// WithDependencies declares several dependencies at once, in order.
func (s *SystemFn) WithDependencies(names ...string) *SystemFn {
	for _, name := range names {
		s.AddDependency(name)
	}
	return s
}

// AddDependency appends a dependency unless it is already declared. Once the
// system is registered, use Schedule.AddDependency instead.
func (s *SystemFn) AddDependency(name string) {
	for _, d := range s.deps {
		if d == name {
			return
		}
	}
	s.deps = append(s.deps, name)
}

func (s *SystemFn) Run(w *World) {
	if s.fn != nil {
		s.fn(w)
	}
}

func (s *SystemFn) Name() string { return s.name }

func (s *SystemFn) Dependencies() []string { return s.deps }
