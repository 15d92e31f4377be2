package ecs

import (
	"fmt"
	"strings"
)

// Stage is a coarse execution phase. A Schedule runs stages in ordinal order.
type Stage uint8

const (
	// Start runs first in every tick.
	Start Stage = iota
	// EarlyUpdate is for input and other preparation other logic reads.
	EarlyUpdate
	// Update is for the bulk of game logic. It is the default stage.
	Update
	// LateUpdate is for logic reacting to Update, such as cameras.
	LateUpdate
	// PreRender prepares render data.
	PreRender
	// Render issues draw work.
	Render
	// PostRender runs after drawing, for overlays and presentation.
	PostRender
	// End runs last in every tick.
	End

	stageCount
)

// DefaultStage is the stage systems land in when no stage is chosen.
const DefaultStage = Update

var stageNames = [stageCount]string{
	Start:       "Start",
	EarlyUpdate: "EarlyUpdate",
	Update:      "Update",
	LateUpdate:  "LateUpdate",
	PreRender:   "PreRender",
	Render:      "Render",
	PostRender:  "PostRender",
	End:         "End",
}

// AllStages returns every stage in execution order.
func AllStages() []Stage {
	stages := make([]Stage, stageCount)
	for i := range stages {
		stages[i] = Stage(i)
	}
	return stages
}

// Valid reports whether s is one of the declared stages.
func (s Stage) Valid() bool {
	return s < stageCount
}

// String returns the string representation of a stage.
func (s Stage) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stage(%d)", uint8(s))
	}
	return stageNames[s]
}

// ParseStage resolves a stage by name, ignoring case.
func ParseStage(name string) (Stage, error) {
	for i, n := range stageNames {
		if strings.EqualFold(n, name) {
			return Stage(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStage, name)
}
