// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It renders inspection windows for the Schedule and the World, plus any
// ImguiItem components spawned by the application.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tickworld/app"
	"github.com/plus3/tickworld/ecs"
)

// SystemName is the name the overlay system is registered under.
const SystemName = "debugui"

// ImguiItem is a component that holds a Dear ImGui render function.
// Attach this to entities that should render ImGui widgets each frame.
type ImguiItem struct {
	Render func()
}

// ImguiInputState tracks Dear ImGui's input capture state as a World resource.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Plugin installs the debug overlay. Its system runs in the Render stage.
type Plugin struct {
	// HistoryFrames is the length of the frame time graph. Defaults to 120.
	HistoryFrames int
	// EntitiesPerPage pages the entity browser. Defaults to 100.
	EntitiesPerPage int
}

var _ app.Plugin = Plugin{}

func (p Plugin) Build(a *app.App) {
	if p.HistoryFrames <= 0 {
		p.HistoryFrames = 120
	}
	if p.EntitiesPerPage <= 0 {
		p.EntitiesPerPage = 100
	}

	ecs.RegisterComponent[ImguiItem](a.World)
	ecs.InsertResource(a.World, ImguiInputState{})

	ecs.InsertResource(a.World, Overlay{
		schedule:  a.Schedule,
		stats:     NewWorldStatsWindow(p.HistoryFrames),
		viewer:    NewScheduleViewer(),
		browser:   NewEntityBrowser(p.EntitiesPerPage),
		inspector: NewComponentInspector(),
	})

	a.AddSystemFn(SystemName, ecs.Render, func(w *ecs.World) {
		if o, ok := ecs.GetResourceMut[Overlay](w); ok {
			o.Run(w)
		}
	})
}

// Overlay is the World resource holding the state of the debug windows.
type Overlay struct {
	schedule  *ecs.Schedule
	stats     WorldStatsWindow
	viewer    ScheduleViewer
	browser   EntityBrowser
	inspector ComponentInspector
	hidden    bool
}

// SetVisible shows or hides the built-in windows. ImguiItem entities are
// rendered either way.
func (o *Overlay) SetVisible(visible bool) {
	o.hidden = !visible
}

// Run updates input state and queues all ImGui rendering for the end of the
// tick, once the World has settled.
func (o *Overlay) Run(w *ecs.World) {
	if state, ok := ecs.GetResourceMut[ImguiInputState](w); ok {
		state.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
		state.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()
	}

	if !o.hidden {
		w.Commands().Defer(o.render)
	}

	for _, item := range ecs.QueryOne[ImguiItem](w) {
		if item.Value.Render != nil {
			render := item.Value.Render
			w.Commands().Defer(func(*ecs.World) { render() })
		}
	}
}

func (o *Overlay) render(w *ecs.World) {
	o.stats.Render(w, frameDelta(w))
	o.viewer.Render(o.schedule)
	selected := o.browser.Render(w)
	o.inspector.Render(w, selected)
}

func frameDelta(w *ecs.World) float32 {
	t, ok := ecs.GetResource[app.Time](w)
	if !ok {
		return 0
	}
	return float32(t.Delta.Seconds())
}
