// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tickworld/app/ebitenapp"
	"github.com/plus3/tickworld/ecs"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Use this to integrate Dear ImGui rendering into Ebiten game loops.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. The imgui.ini file is
// disabled.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}

// Attach stores backend as a World resource and hooks it into game, so every
// tick runs inside an ImGui frame and the overlay is drawn on top of the
// game's own drawing.
func Attach(game *ebitenapp.Game, backend ImguiBackend) {
	ecs.InsertResource(game.App.World, backend)

	beforeUpdate, afterUpdate := game.BeforeUpdate, game.AfterUpdate
	onDraw, onLayout := game.OnDraw, game.OnLayout

	game.BeforeUpdate = func() {
		if beforeUpdate != nil {
			beforeUpdate()
		}
		backend.BeginFrame()
	}
	game.AfterUpdate = func() {
		backend.EndFrame()
		if afterUpdate != nil {
			afterUpdate()
		}
	}
	game.OnDraw = func(screen *ebiten.Image) {
		if onDraw != nil {
			onDraw(screen)
		}
		backend.Draw(screen)
	}
	game.OnLayout = func(outsideWidth, outsideHeight int) {
		if onLayout != nil {
			onLayout(outsideWidth, outsideHeight)
		}
		backend.Layout(outsideWidth, outsideHeight)
	}
}
