package game

import (
	"math"
	"math/rand"
)

// UpdateVertices rebuilds the cached polygon loop of e from its current state.
// rng is only consulted the first time an asteroid is shaped and may be nil otherwise.
func UpdateVertices(e *Entity, rng *rand.Rand) {
	switch e.Kind {
	case KindShip:
		shipVertices(e)
	case KindBullet:
		bulletVertices(e)
	case KindAsteroid:
		if len(e.Vertices) == 0 {
			assert(rng != nil, "asteroid shaped without a random source")
			asteroidVertices(e, rng)
		} else {
			reprojectVertices(e)
		}
	case KindGhost:
		// Ghost loops are copied from their source in Ghosts
	}
}

// shipVertices lays out nose, wing, rear notch, wing
func shipVertices(e *Entity) {
	pos, r, rot := e.Position, e.Radius, e.Rotation
	e.Vertices = append(e.Vertices[:0],
		pos.Offset(r, rot),
		pos.Offset(-r, rot+wingAngle),
		pos.Offset(-r*notchFraction, rot),
		pos.Offset(-r, rot-wingAngle),
	)
}

// bulletVertices is the ship outline without the notch
func bulletVertices(e *Entity) {
	pos, r, rot := e.Position, e.Radius, e.Rotation
	e.Vertices = append(e.Vertices[:0],
		pos.Offset(r, rot),
		pos.Offset(-r, rot-wingAngle),
		pos.Offset(-r, rot+wingAngle),
	)
}

// asteroidVertices walks once around the center in irregular angular steps.
// The angle only grows, so the loop never crosses itself.
func asteroidVertices(e *Entity, rng *rand.Rand) {
	e.Vertices = e.Vertices[:0]
	for angle := 0.0; angle < 2*math.Pi; angle += uniform(rng, asteroidStepMin, asteroidStepMax) {
		reach := uniform(rng, e.Radius*asteroidMinReach, e.Radius)
		e.Vertices = append(e.Vertices, e.Position.Offset(reach, angle))
	}
}

// reprojectVertices turns every vertex about the previous center by the frame's
// rotation delta plus the fixed spin, then moves it to the current center.
// Each vertex keeps its distance from the center.
func reprojectVertices(e *Entity) {
	turn := e.Rotation - e.PrevRotation + e.Spin
	for i, v := range e.Vertices {
		rel := v.Sub(e.PrevPosition)
		reach := math.Hypot(rel.X, rel.Y)
		e.Vertices[i] = e.Position.Offset(reach, AngleOf(rel)+turn)
	}
}
