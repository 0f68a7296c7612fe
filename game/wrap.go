package game

import "math"

// TrackEligibility marks e wrap-eligible once its whole circle lies inside the
// playfield. Asteroids spawn off-screen and must not ghost until they have entered.
func TrackEligibility(e *Entity, width, height float64) {
	if e.WrapEligible {
		return
	}
	r := e.Radius
	if e.Position.X >= r && e.Position.X <= width-r &&
		e.Position.Y >= r && e.Position.Y <= height-r {
		e.WrapEligible = true
	}
}

// WrapPosition moves e to the opposite side once its center has left the
// playfield. It reports whether the position changed.
func WrapPosition(e *Entity, width, height float64) bool {
	if !e.WrapEligible || e.Kind == KindGhost {
		return false
	}
	x := wrapCoord(e.Position.X, width)
	y := wrapCoord(e.Position.Y, height)
	if x == e.Position.X && y == e.Position.Y {
		return false
	}
	e.Position = Pt(x, y)
	return true
}

// wrapCoord folds v into [0, size)
func wrapCoord(v, size float64) float64 {
	if v >= 0 && v < size {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	// A tiny negative v rounds to exactly size after the add
	if v >= size {
		v = 0
	}
	return v
}

// Ghosts returns the duplicates of e that keep it visible across the edges it
// is within Radius of: one per near edge, plus the diagonal when near a corner.
// Each ghost carries e's vertex loop translated by the ghost's offset.
func Ghosts(e *Entity, width, height float64) []Entity {
	if !e.WrapEligible || e.Kind == KindGhost {
		return nil
	}

	r := e.Radius
	dxs := make([]float64, 1, 3)
	if e.Position.X <= r {
		dxs = append(dxs, width)
	}
	if e.Position.X >= width-r {
		dxs = append(dxs, -width)
	}
	dys := make([]float64, 1, 3)
	if e.Position.Y <= r {
		dys = append(dys, height)
	}
	if e.Position.Y >= height-r {
		dys = append(dys, -height)
	}
	if len(dxs) == 1 && len(dys) == 1 {
		return nil
	}

	ghosts := make([]Entity, 0, len(dxs)*len(dys)-1)
	for _, dx := range dxs {
		for _, dy := range dys {
			if dx == 0 && dy == 0 {
				continue
			}
			ghosts = append(ghosts, ghostOf(e, Pt(dx, dy)))
		}
	}
	return ghosts
}

// ghostOf copies e's silhouette shifted by off
func ghostOf(e *Entity, off Point) Entity {
	ghost := Entity{
		Position:     e.Position.Add(off),
		Rotation:     e.Rotation,
		PrevPosition: e.Position.Add(off),
		PrevRotation: e.Rotation,
		Color:        e.Color,
		Radius:       e.Radius,
		Kind:         KindGhost,
		Vertices:     make([]Point, len(e.Vertices)),
	}
	for i, v := range e.Vertices {
		ghost.Vertices[i] = v.Add(off)
	}
	return ghost
}
