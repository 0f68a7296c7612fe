package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"lasteroids/game"
)

func TestControlForKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want game.Control
		ok   bool
	}{
		{"rune a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), game.TurnLeft, true},
		{"shifted D", tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModShift), game.TurnRight, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.Fire, true},
		{"equals", tcell.NewEventKey(tcell.KeyRune, '=', tcell.ModNone), game.DebugRevive, true},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.ThrustForward, true},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), 0, false},
		{"unbound key", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := controlForKey(tt.ev)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	keys := newHeldKeys(100 * time.Millisecond)
	start := time.Now()

	keys.press(game.Fire, start)
	if !keys.snapshot(start.Add(50 * time.Millisecond)).Held(game.Fire) {
		t.Error("Expected Fire held within the timeout")
	}

	// A repeat keeps it held
	keys.press(game.Fire, start.Add(90*time.Millisecond))
	if !keys.snapshot(start.Add(150 * time.Millisecond)).Held(game.Fire) {
		t.Error("Expected the repeat to extend the hold")
	}

	if keys.snapshot(start.Add(300 * time.Millisecond)).Held(game.Fire) {
		t.Error("Expected Fire released after the timeout")
	}
	if len(keys.seen) != 0 {
		t.Errorf("Expected expired keys to be forgotten, got %d", len(keys.seen))
	}
}

func TestHeldKeysIndependent(t *testing.T) {
	keys := newHeldKeys(100 * time.Millisecond)
	start := time.Now()

	keys.press(game.TurnLeft, start)
	keys.press(game.ThrustForward, start.Add(80*time.Millisecond))

	set := keys.snapshot(start.Add(120 * time.Millisecond))
	if set.Held(game.TurnLeft) {
		t.Error("Expected TurnLeft released")
	}
	if !set.Held(game.ThrustForward) {
		t.Error("Expected ThrustForward held")
	}
}
