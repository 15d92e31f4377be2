// Package ebitenapp runs an app.App inside the Ebiten game loop.
package ebitenapp

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tickworld/app"
	"github.com/plus3/tickworld/ecs"
)

// Screen is the World resource holding the image Ebiten is drawing to.
// It is refreshed before every Draw hook runs.
type Screen struct {
	Image *ebiten.Image
}

// Game implements ebiten.Game by ticking an App once per Ebiten update.
type Game struct {
	App *app.App

	// Width and Height fix the logical screen size. When zero, Layout
	// returns the outside size.
	Width, Height int

	// QuitWhen ends the game when it returns true at the start of an update.
	QuitWhen func() bool

	BeforeUpdate func()
	AfterUpdate  func()
	OnDraw       func(screen *ebiten.Image)
	OnLayout     func(outsideWidth, outsideHeight int)
}

var _ ebiten.Game = (*Game)(nil)

// New wraps a.
func New(a *app.App) *Game {
	return &Game{App: a}
}

// QuitOnKeys returns a QuitWhen predicate that fires when any key is held.
func QuitOnKeys(keys ...ebiten.Key) func() bool {
	return func() bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
}

func (g *Game) Update() error {
	if g.QuitWhen != nil && g.QuitWhen() {
		return ebiten.Termination
	}

	if g.BeforeUpdate != nil {
		g.BeforeUpdate()
	}

	g.App.Tick(tickDuration())

	if g.AfterUpdate != nil {
		g.AfterUpdate()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	ecs.InsertResource(g.App.World, Screen{Image: screen})
	if g.OnDraw != nil {
		g.OnDraw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.OnLayout != nil {
		g.OnLayout(outsideWidth, outsideHeight)
	}
	if g.Width > 0 && g.Height > 0 {
		return g.Width, g.Height
	}
	return outsideWidth, outsideHeight
}

// Run starts the Ebiten loop and blocks until the game ends.
func (g *Game) Run() error {
	return ebiten.RunGame(g)
}

func tickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
