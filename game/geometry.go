package game

import "math"

// Point is a position or offset in world coordinates.
// Y grows downward, matching screen coordinates, so angles grow clockwise on screen.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by s
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Offset returns the point r units away from p in direction theta.
func (p Point) Offset(r, theta float64) Point {
	return Point{
		X: p.X + r*math.Cos(theta),
		Y: p.Y + r*math.Sin(theta),
	}
}

// Heading returns the unit direction vector for angle theta.
func Heading(theta float64) Point {
	return Point{X: math.Cos(theta), Y: math.Sin(theta)}
}

// DistSq returns the squared euclidean distance between a and b.
// Collision tests compare squared values so no square root is needed.
func DistSq(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// AngleOf returns the angle of vector v in [0, 2π).
// The angle increases as y increases, so (0,1) is π/2.
// The zero vector has angle 0.
func AngleOf(v Point) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	angle := math.Atan2(v.Y, v.X)
	// Atan2 answers in (-π, π]
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}
