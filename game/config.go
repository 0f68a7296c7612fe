package game

import (
	"errors"
	"fmt"
)

// Config holds game configuration constants
type Config struct {
	// WorldWidth is the playfield width in world units
	WorldWidth float64

	// WorldHeight is the playfield height in world units
	WorldHeight float64

	// ShipRadius is the ship's starting radius
	ShipRadius float64

	// SpawnEvery is how many spawn phases pass between obstacle spawns
	SpawnEvery int

	// TicksPerSecond is the rate the caller drives Tick at
	TicksPerSecond int

	// Seed seeds the random source; 0 seeds from the clock
	Seed int64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		WorldWidth:     600.0,
		WorldHeight:    600.0,
		ShipRadius:     10.0,
		SpawnEvery:     4,
		TicksPerSecond: 60,
		Seed:           0,
	}
}

var errNotPositive = errors.New("must be positive")

// Validate reports the first field that cannot drive a simulation
func (c Config) Validate() error {
	switch {
	case c.WorldWidth <= 0:
		return fmt.Errorf("world width %v: %w", c.WorldWidth, errNotPositive)
	case c.WorldHeight <= 0:
		return fmt.Errorf("world height %v: %w", c.WorldHeight, errNotPositive)
	case c.ShipRadius <= 0:
		return fmt.Errorf("ship radius %v: %w", c.ShipRadius, errNotPositive)
	case c.SpawnEvery <= 0:
		return fmt.Errorf("spawn interval %d: %w", c.SpawnEvery, errNotPositive)
	case c.TicksPerSecond <= 0:
		return fmt.Errorf("tick rate %d: %w", c.TicksPerSecond, errNotPositive)
	}
	return nil
}

// Center returns the middle of the playfield
func (c Config) Center() Point {
	return Pt(c.WorldWidth/2, c.WorldHeight/2)
}
