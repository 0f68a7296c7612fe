package game

import (
	"image/color"
	"math/rand"
)

// Kind identifies the type of entity
type Kind int

const (
	KindShip Kind = iota
	KindBullet
	KindAsteroid
	KindGhost // render-only duplicate for edge wrapping
)

// Entity represents a simulated object (ship, bullet, asteroid) or a ghost projection
type Entity struct {
	// Current frame state
	Position Point
	Rotation float64

	// State as of the prior frame; asteroid silhouettes are reprojected from it
	PrevPosition Point
	PrevRotation float64

	// Speed is the scalar along the heading, SpinRate the angular velocity scalar
	Speed    float64
	SpinRate float64

	// Spin is the asteroid's fixed per-tick silhouette drift, set once at creation
	Spin float64

	// Vertices is the cached polygon loop; edges run p[i] to p[i+1 mod n]
	Vertices []Point

	Color color.RGBA

	// Radius is both the visual size and the collision radius
	Radius float64

	Kind Kind

	// WrapEligible gates ghosting and hard wrapping
	WrapEligible bool
}

// NewEntity creates an entity at rest with no cached vertices
func NewEntity(pos Point, rotation, radius float64, clr color.RGBA, kind Kind) *Entity {
	return &Entity{
		Position:     pos,
		Rotation:     rotation,
		PrevPosition: pos,
		PrevRotation: rotation,
		Color:        clr,
		Radius:       radius,
		Kind:         kind,
	}
}

// NewShip creates the player ship. The ship wraps from the start.
func NewShip(pos Point, rotation, radius float64) *Entity {
	ship := NewEntity(pos, rotation, radius, colorWhite, KindShip)
	ship.WrapEligible = true
	UpdateVertices(ship, nil)
	return ship
}

// NewAsteroid creates an asteroid with a freshly sampled spin and silhouette
func NewAsteroid(pos Point, rotation, radius, speed float64, clr color.RGBA, rng *rand.Rand) *Entity {
	a := NewEntity(pos, rotation, radius, clr, KindAsteroid)
	a.Speed = speed
	a.Spin = sampleSpin(rng)
	UpdateVertices(a, rng)
	return a
}

// Fire creates a bullet at the ship's nose, heading the same way
func (e *Entity) Fire() *Entity {
	nose := e.Position.Offset(e.Radius, e.Rotation)
	bullet := NewEntity(nose, e.Rotation, e.Radius/bulletRadiusDiv, e.Color, KindBullet)
	UpdateVertices(bullet, nil)
	return bullet
}

// snapshot records the current state as the previous state
func (e *Entity) snapshot() {
	e.PrevPosition = e.Position
	e.PrevRotation = e.Rotation
}

// sampleSpin returns a small drift in [-π/64, π/64] with random sign
func sampleSpin(rng *rand.Rand) float64 {
	spin := uniform(rng, 0, maxAsteroidSpin)
	if rng.Intn(2) == 1 {
		return -spin
	}
	return spin
}

// uniform returns a value sampled uniformly from [lo, hi]
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
