package ecs

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrSystemNotFound      = errors.New("system not found")
	ErrSystemAlreadyExists = errors.New("system already exists")
	ErrDependencyNotFound  = errors.New("dependency not found")
	ErrDependencyCycle     = errors.New("dependency cycle")
	ErrInvalidStage        = errors.New("invalid stage")

	ErrEntityNotFound    = errors.New("entity not found")
	ErrComponentNotFound = errors.New("component not found")
)

// ScheduleError describes a rejected Schedule operation.
// Match the cause with errors.Is against the Err* sentinels.
type ScheduleError struct {
	Op         string
	Name       string
	Dependency string
	Err        error
}

func (e *ScheduleError) Error() string {
	if e.Dependency != "" {
		return fmt.Sprintf("ecs: %s %q -> %q: %v", e.Op, e.Name, e.Dependency, e.Err)
	}
	return fmt.Sprintf("ecs: %s %q: %v", e.Op, e.Name, e.Err)
}

func (e *ScheduleError) Unwrap() error { return e.Err }

// WorldError reports a failed entity or component lookup made through Lookup.
type WorldError struct {
	Op     string
	Entity Entity
	Type   reflect.Type
	Err    error
}

func (e *WorldError) Error() string {
	if e.Type != nil {
		return fmt.Sprintf("ecs: %s %v (%s): %v", e.Op, e.Entity, e.Type, e.Err)
	}
	return fmt.Sprintf("ecs: %s %v: %v", e.Op, e.Entity, e.Err)
}

func (e *WorldError) Unwrap() error { return e.Err }
