// Command tty plays the simulation in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"lasteroids/audio"
	"lasteroids/game"
)

func main() {
	config := game.DefaultConfig()
	flag.Float64Var(&config.WorldWidth, "width", config.WorldWidth, "playfield width")
	flag.Float64Var(&config.WorldHeight, "height", config.WorldHeight, "playfield height")
	flag.Float64Var(&config.ShipRadius, "ship", config.ShipRadius, "starting ship radius")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "random seed (0 seeds from the clock)")
	hold := flag.Duration("hold", 250*time.Millisecond, "how long a key stays held after its last key event")
	logPath := flag.String("log", "", "write log output to this file")
	mute := flag.Bool("mute", false, "disable the fire tone")
	flag.Parse()

	// The terminal belongs to the game, so logs go to a file or nowhere
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	sim, err := game.New(config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
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

	screen, err := newScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	log.Printf("Starting %.0fx%.0f playfield", config.WorldWidth, config.WorldHeight)
	run(screen, sim, newHeldKeys(*hold), tone)
	log.Printf("Final score %d", sim.Score())
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()
	return screen, nil
}

// run ticks the simulation at its configured rate until the player quits.
// tone may be nil.
func run(screen tcell.Screen, sim *game.Simulation, keys *heldKeys, tone *audio.Tone) {
	config := sim.Config()
	cols, rows := screen.Size()
	cv := newCanvas(screen, config.WorldWidth, config.WorldHeight, cols, rows)

	ticker := time.NewTicker(time.Second / time.Duration(config.TicksPerSecond))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// Screen finalized
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				if ev.Key() == tcell.KeyF1 {
					sim.Debug.ShowHitboxes = !sim.Debug.ShowHitboxes
					continue
				}
				if ctl, ok := controlForKey(ev); ok {
					keys.press(ctl, ev.When())
				}
			case *tcell.EventResize:
				screen.Sync()
				cv.resize(screen.Size())
			}

		case now := <-ticker.C:
			res := sim.Tick(keys.snapshot(now))
			if res.Fired && tone != nil {
				tone.Shot()
			}
			if res.Points > 0 {
				log.Printf("Score %d (+%d)", res.Score, res.Points)
			}
			draw(screen, cv, sim)
		}
	}
}

func draw(screen tcell.Screen, cv *canvas, sim *game.Simulation) {
	screen.Clear()
	sim.Render(cv)

	hud := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	status := fmt.Sprintf("Score: %d", sim.Score())
	if !sim.ShipAlive() {
		status += "  SHIP DESTROYED - press = to revive"
	}
	drawText(screen, 0, 0, status, hud)
	screen.Show()
}
