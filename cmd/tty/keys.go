package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"lasteroids/game"
)

// runeControls maps printable keys to controls
var runeControls = map[rune]game.Control{
	'a': game.TurnLeft,
	'd': game.TurnRight,
	'w': game.ThrustForward,
	's': game.ThrustBackward,
	' ': game.Fire,
	'n': game.DebugSpawnObstacle,
	'c': game.DebugClearObstacles,
	'.': game.DebugGrow,
	',': game.DebugShrink,
	'=': game.DebugRevive,
}

// keyControls maps special keys to controls
var keyControls = map[tcell.Key]game.Control{
	tcell.KeyLeft:  game.TurnLeft,
	tcell.KeyRight: game.TurnRight,
	tcell.KeyUp:    game.ThrustForward,
	tcell.KeyDown:  game.ThrustBackward,
}

// controlForKey returns the control a key event drives, if any
func controlForKey(ev *tcell.EventKey) (game.Control, bool) {
	if ev.Key() == tcell.KeyRune {
		ctl, ok := runeControls[ev.Rune()]
		if !ok {
			// Shifted letters still steer
			ctl, ok = runeControls[ev.Rune()|0x20]
		}
		return ctl, ok
	}
	ctl, ok := keyControls[ev.Key()]
	return ctl, ok
}

// heldKeys emulates held keys from terminal key events. Terminals report
// presses and auto-repeats but never releases, so a control stays held until
// timeout passes without another event for it.
type heldKeys struct {
	timeout time.Duration
	seen    map[game.Control]time.Time
}

func newHeldKeys(timeout time.Duration) *heldKeys {
	return &heldKeys{
		timeout: timeout,
		seen:    make(map[game.Control]time.Time),
	}
}

// press records an event for c at time at
func (h *heldKeys) press(c game.Control, at time.Time) {
	h.seen[c] = at
}

// snapshot returns the controls still held at time at and forgets expired ones
func (h *heldKeys) snapshot(at time.Time) game.ControlSet {
	var set game.ControlSet
	for c, last := range h.seen {
		if at.Sub(last) > h.timeout {
			delete(h.seen, c)
			continue
		}
		set = set.With(c)
	}
	return set
}
