package debugui

import (
	"github.com/plus3/tickworld/ecs"
)

type EntityBrowser struct {
	cache              *EntityBrowserCache
	selectedEntity     ecs.Entity
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspector struct {
	selectedEntity ecs.Entity
}

type ScheduleViewer struct {
	cache        *ScheduleViewerCache
	selectedName string
}

type WorldStatsWindow struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
