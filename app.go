package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"lasteroids/audio"
	"lasteroids/game"
)

// App runs the simulation inside ebiten's game loop. Update ticks the
// simulation once; Draw only renders, however often ebiten calls it.
type App struct {
	sim   *game.Simulation
	keys  keyboard
	lines *lineDrawer

	tone     *audio.Tone // nil when muted
	profiler *Profiler   // nil unless profiling is enabled
}

// NewApp creates the ebiten game for sim
func NewApp(sim *game.Simulation, tone *audio.Tone, profiler *Profiler) *App {
	return &App{
		sim:      sim,
		lines:    &lineDrawer{width: lineWidth},
		tone:     tone,
		profiler: profiler,
	}
}

// Update advances the simulation by one tick
func (a *App) Update() error {
	if err := a.handleInput(); err != nil {
		return err
	}

	res := a.sim.Tick(a.keys)
	if res.Fired && a.tone != nil {
		a.tone.Shot()
	}
	if res.Points > 0 {
		log.Printf("Score %d (+%d)", res.Score, res.Points)
	}

	if a.profiler != nil {
		a.profiler.Check(ebiten.ActualTPS(), len(a.sim.Obstacles()), len(a.sim.Bullets()))
	}
	return nil
}

// Draw renders the current state
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	a.lines.dst = screen
	a.sim.Render(a.lines)
	a.drawHUD(screen)
}

// Layout keeps the logical screen at playfield size; ebiten scales it to the window
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	config := a.sim.Config()
	return int(config.WorldWidth), int(config.WorldHeight)
}
