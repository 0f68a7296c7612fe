package game

import "math/rand"

// Edge names a side of the playfield
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Spawn creates an asteroid just outside a random edge of a width x height
// playfield, heading toward the playfield center. Entry points range half the
// playfield beyond each corner, so asteroids do not all enter head-on.
func Spawn(width, height float64, rng *rand.Rand) *Entity {
	radius := uniform(rng, spawnRadiusMin, spawnRadiusMax)
	speed := uniform(rng, spawnSpeedMin, spawnSpeedMax)
	edge := Edge(rng.Intn(4))
	return spawnAt(edge, width, height, radius, speed, rng)
}

// spawnAt places an asteroid of the given size outside edge
func spawnAt(edge Edge, width, height, radius, speed float64, rng *rand.Rand) *Entity {
	var pos Point
	switch edge {
	case EdgeTop:
		pos = Pt(alongEdge(rng, width), -radius)
	case EdgeRight:
		pos = Pt(width+radius, alongEdge(rng, height))
	case EdgeBottom:
		pos = Pt(alongEdge(rng, width), height+radius)
	default:
		pos = Pt(-radius, alongEdge(rng, height))
	}

	center := Pt(width/2, height/2)
	rotation := AngleOf(center.Sub(pos))
	return NewAsteroid(pos, rotation, radius, speed, colorWhite, rng)
}

// alongEdge picks a coordinate on an edge of length size, extended by size/2 past both corners
func alongEdge(rng *rand.Rand, size float64) float64 {
	return uniform(rng, -size/2, size+size/2)
}
