package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"lasteroids/game"
)

// keyBindings lists the keys that hold each control
var keyBindings = map[game.Control][]ebiten.Key{
	game.TurnLeft:            {ebiten.KeyA, ebiten.KeyLeft},
	game.TurnRight:           {ebiten.KeyD, ebiten.KeyRight},
	game.ThrustForward:       {ebiten.KeyW, ebiten.KeyUp},
	game.ThrustBackward:      {ebiten.KeyS, ebiten.KeyDown},
	game.Fire:                {ebiten.KeySpace},
	game.DebugSpawnObstacle:  {ebiten.KeyN},
	game.DebugClearObstacles: {ebiten.KeyC},
	game.DebugGrow:           {ebiten.KeyPeriod},
	game.DebugShrink:         {ebiten.KeyComma},
	game.DebugRevive:         {ebiten.KeyEqual},
}

// keyboard reports controls straight from ebiten's key state
type keyboard struct{}

func (keyboard) Held(c game.Control) bool {
	for _, k := range keyBindings[c] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// handleInput processes window keys: quit, hitbox overlay and fullscreen toggle
func (a *App) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// F1 toggles collision circles
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.sim.Debug.ShowHitboxes = !a.sim.Debug.ShowHitboxes
	}

	// Alt+Enter toggles fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		isCurrentlyFullscreen := ebiten.IsFullscreen()
		ebiten.SetFullscreen(!isCurrentlyFullscreen)
		if isCurrentlyFullscreen {
			monitorWidth, monitorHeight := ebiten.ScreenSizeInFullscreen()
			ebiten.SetWindowSize(int(float64(monitorWidth)*windowedSizeRatio), int(float64(monitorHeight)*windowedSizeRatio))
		}
	}
	return nil
}
