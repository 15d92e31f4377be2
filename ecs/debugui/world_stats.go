package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tickworld/ecs"
)

func NewWorldStatsWindow(historyFrames int) WorldStatsWindow {
	return WorldStatsWindow{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Record appends a frame time, in seconds, to the frame history.
func (ws *WorldStatsWindow) Record(deltaTime float32) {
	if ws.historyFrames == 0 {
		return
	}
	ws.frameHistory[ws.frameIndex] = deltaTime * 1000.0
	ws.frameIndex = (ws.frameIndex + 1) % ws.historyFrames
}

// AverageFrameTime returns the mean of the frame history in milliseconds.
func (ws *WorldStatsWindow) AverageFrameTime() float32 {
	if ws.historyFrames == 0 {
		return 0
	}
	var total float32
	for _, ft := range ws.frameHistory {
		total += ft
	}
	return total / float32(ws.historyFrames)
}

func (ws *WorldStatsWindow) Render(w *ecs.World, deltaTime float32) {
	ws.Record(deltaTime)

	if !imgui.BeginV("World Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := w.CollectStats()

	imgui.Text(fmt.Sprintf("Entities: %d", stats.EntityCount))
	imgui.Text(fmt.Sprintf("Storages: %d (%d components)", stats.StorageCount, stats.ComponentCount))
	imgui.Text(fmt.Sprintf("Resources: %d", stats.ResourceCount))

	avgFrameTime := ws.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	if ws.historyFrames > 0 {
		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		imgui.PlotLinesFloatPtr("##frametime", &ws.frameHistory[0], int32(len(ws.frameHistory)))
	}

	if imgui.TreeNodeStr("Storage Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("StorageStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Component")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, storage := range stats.Storages {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(storage.Type)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", storage.Count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Resource Details") {
		for _, resourceType := range stats.ResourceTypes {
			imgui.BulletText(resourceType)
		}
		imgui.TreePop()
	}

	imgui.End()
}
