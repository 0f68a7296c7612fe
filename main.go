package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"lasteroids/audio"
	"lasteroids/game"
)

func main() {
	config := game.DefaultConfig()
	flag.Float64Var(&config.WorldWidth, "width", config.WorldWidth, "playfield width")
	flag.Float64Var(&config.WorldHeight, "height", config.WorldHeight, "playfield height")
	flag.Float64Var(&config.ShipRadius, "ship", config.ShipRadius, "starting ship radius")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "random seed (0 seeds from the clock)")
	scale := flag.Float64("scale", 1.0, "window scale factor")
	mute := flag.Bool("mute", false, "disable the fire tone")
	profiles := flag.String("profiles", "", "directory for CPU profiles captured when the tick rate drops (empty disables)")
	flag.Parse()

	sim, err := game.New(config)
	if err != nil {
		log.Fatal(err)
	}
	sim.SetLogger(log.Default())

	var tone *audio.Tone
	if !*mute {
		tone = audio.NewTone()
		if err := tone.Init(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio disabled: %v", err)
			tone = nil
		} else {
			defer tone.Close()
		}
	}

	var profiler *Profiler
	if *profiles != "" {
		profiler, err = NewProfiler(*profiles)
		if err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(int(config.WorldWidth*(*scale)), int(config.WorldHeight*(*scale)))
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TicksPerSecond)

	log.Printf("Starting %.0fx%.0f playfield", config.WorldWidth, config.WorldHeight)
	if err := ebiten.RunGame(NewApp(sim, tone, profiler)); err != nil {
		log.Fatal(err)
	}
}
