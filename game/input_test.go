package game

import "testing"

type heldKeys map[Control]bool

func (h heldKeys) Held(c Control) bool { return h[c] }

func TestControlSet(t *testing.T) {
	s := NewControlSet(Fire, TurnLeft)
	if !s.Held(Fire) || !s.Held(TurnLeft) || s.Held(TurnRight) {
		t.Errorf("Unexpected membership in %b", s)
	}
	s = s.Without(Fire)
	if s.Held(Fire) {
		t.Errorf("Expected Fire removed")
	}
	if s.With(controlCount) != s || s.Held(controlCount) {
		t.Errorf("Expected out-of-range controls to be ignored")
	}
}

func TestSnapshotControls(t *testing.T) {
	got := snapshotControls(heldKeys{ThrustForward: true, DebugGrow: true})
	want := NewControlSet(ThrustForward, DebugGrow)
	if got != want {
		t.Errorf("Expected %b, got %b", want, got)
	}
	if snapshotControls(nil) != 0 {
		t.Errorf("Expected nil controls to hold nothing")
	}
}

func TestPressed(t *testing.T) {
	prev := NewControlSet(Fire, DebugGrow)
	now := NewControlSet(Fire, DebugShrink)
	if p := now.pressed(prev); p != NewControlSet(DebugShrink) {
		t.Errorf("Expected only DebugShrink pressed, got %b", p)
	}
}

func TestControlNames(t *testing.T) {
	if Fire.String() != "fire" {
		t.Errorf("Expected fire, got %s", Fire)
	}
	if controlCount.String() != "unknown" {
		t.Errorf("Expected unknown, got %s", controlCount)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Expected default config to be valid, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"width", func(c *Config) { c.WorldWidth = 0 }},
		{"height", func(c *Config) { c.WorldHeight = -5 }},
		{"ship radius", func(c *Config) { c.ShipRadius = 0 }},
		{"spawn interval", func(c *Config) { c.SpawnEvery = 0 }},
		{"tick rate", func(c *Config) { c.TicksPerSecond = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Expected an error")
			}
		})
	}
}

func TestKindConfig(t *testing.T) {
	if n := GetKindConfig(KindShip).Vertices; n != 4 {
		t.Errorf("Expected 4 ship vertices, got %d", n)
	}
	if n := GetKindConfig(KindBullet).Vertices; n != 3 {
		t.Errorf("Expected 3 bullet vertices, got %d", n)
	}
	if KindAsteroid.String() != "Asteroid" || Kind(42).String() != "Unknown" {
		t.Errorf("Unexpected kind names")
	}
}
