package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// drawHUD draws the score, the destroyed banner and debug stats
func (a *App) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("Score: %d", a.sim.Score()), face, hudMarginX, hudMarginY, colorHUD)

	if !a.sim.ShipAlive() {
		banner := "SHIP DESTROYED - press = to revive"
		bounds := text.BoundString(face, banner)
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		text.Draw(screen, banner, face, (w-bounds.Dx())/2, h/2, colorBanner)
	}

	if a.sim.Debug.ShowHitboxes {
		stats := fmt.Sprintf("TPS: %0.1f | Obstacles: %d | Bullets: %d | Radius: %.0f",
			ebiten.ActualTPS(), len(a.sim.Obstacles()), len(a.sim.Bullets()), a.sim.Ship().Radius)
		text.Draw(screen, stats, face, hudMarginX, hudMarginY+hudLineHeight, colorHUD)
	}
}
