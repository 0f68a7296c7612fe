package game

import (
	"math/rand"
	"testing"
)

func TestGhostBeforeLeftEdgeCrossing(t *testing.T) {
	ship := NewShip(Pt(2, 300), 0, 10)

	ghosts := Ghosts(ship, 600, 600)
	if len(ghosts) != 1 {
		t.Fatalf("Expected 1 ghost, got %d", len(ghosts))
	}
	if g := ghosts[0]; g.Position != Pt(602, 300) || g.Kind != KindGhost {
		t.Errorf("Expected ghost at (602,300), got %v kind %v", g.Position, g.Kind)
	}
	if WrapPosition(ship, 600, 600) {
		t.Errorf("Expected no hard wrap while the center is inside")
	}
}

func TestGhostCopiesTranslatedVertices(t *testing.T) {
	ship := NewShip(Pt(595, 300), 0, 10)
	ghosts := Ghosts(ship, 600, 600)
	if len(ghosts) != 1 {
		t.Fatalf("Expected 1 ghost, got %d", len(ghosts))
	}
	g := ghosts[0]
	for i, v := range g.Vertices {
		want := ship.Vertices[i].Add(Pt(-600, 0))
		if v != want {
			t.Errorf("Vertex %d: expected %v, got %v", i, want, v)
		}
	}
	// Ghost loops do not alias the source
	g.Vertices[0] = Pt(-1, -1)
	if ship.Vertices[0] == Pt(-1, -1) {
		t.Errorf("Ghost vertices alias the ship's")
	}
}

func TestGhostsAtCorner(t *testing.T) {
	ship := NewShip(Pt(3, 596), 0, 10)
	ghosts := Ghosts(ship, 600, 600)
	if len(ghosts) != 3 {
		t.Fatalf("Expected 3 ghosts near a corner, got %d", len(ghosts))
	}
	want := map[Point]bool{
		Pt(603, 596): true,
		Pt(3, -4):    true,
		Pt(603, -4):  true,
	}
	for _, g := range ghosts {
		if !want[g.Position] {
			t.Errorf("Unexpected ghost at %v", g.Position)
		}
		delete(want, g.Position)
	}
}

func TestNoGhostsAwayFromEdges(t *testing.T) {
	ship := NewShip(Pt(300, 300), 0, 10)
	if ghosts := Ghosts(ship, 600, 600); len(ghosts) != 0 {
		t.Errorf("Expected no ghosts, got %d", len(ghosts))
	}
}

func TestIneligibleEntitiesDoNotWrap(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := NewAsteroid(Pt(-20, 300), 0, 30, 0.5, colorWhite, rng)

	if ghosts := Ghosts(a, 600, 600); len(ghosts) != 0 {
		t.Errorf("Expected no ghosts before entry, got %d", len(ghosts))
	}
	if WrapPosition(a, 600, 600) {
		t.Errorf("Expected no hard wrap before entry")
	}
	if a.Position != Pt(-20, 300) {
		t.Errorf("Expected position unchanged, got %v", a.Position)
	}
}

func TestTrackEligibility(t *testing.T) {
	a := NewEntity(Pt(-20, 300), 0, 30, colorWhite, KindAsteroid)
	TrackEligibility(a, 600, 600)
	if a.WrapEligible {
		t.Fatalf("Expected asteroid outside the playfield to be ineligible")
	}

	a.Position = Pt(29, 300)
	TrackEligibility(a, 600, 600)
	if a.WrapEligible {
		t.Fatalf("Expected asteroid overlapping the edge to be ineligible")
	}

	a.Position = Pt(30, 300)
	TrackEligibility(a, 600, 600)
	if !a.WrapEligible {
		t.Fatalf("Expected asteroid fully inside to be eligible")
	}

	// Eligibility is sticky
	a.Position = Pt(-5, 300)
	TrackEligibility(a, 600, 600)
	if !a.WrapEligible {
		t.Errorf("Expected eligibility to persist")
	}
}

func TestHardWrapCrossingRightEdge(t *testing.T) {
	a := NewEntity(Pt(597, 300), 0, 10, colorWhite, KindAsteroid)
	a.Speed = 1
	a.WrapEligible = true

	sawGhost := false
	for tick := 0; tick < 20; tick++ {
		before := a.Position.X
		if before < 600 {
			for _, g := range Ghosts(a, 600, 600) {
				if g.Position.X < 0 {
					sawGhost = true
				}
			}
		}
		IntegrateAsteroid(a)
		wrapped := WrapPosition(a, 600, 600)
		if a.Position.X < 0 || a.Position.X >= 600 {
			t.Fatalf("Tick %d: x=%v outside [0, 600)", tick, a.Position.X)
		}
		if wrapped {
			if !sawGhost {
				t.Errorf("Expected a ghost on the left edge before wrapping")
			}
			if a.Position.X > 1 {
				t.Errorf("Expected to reappear near x=0, got %v", a.Position.X)
			}
			return
		}
	}
	t.Fatalf("Expected a hard wrap within 20 ticks")
}

func TestWrapCoord(t *testing.T) {
	tests := []struct {
		v, size, want float64
	}{
		{0, 600, 0},
		{599.5, 600, 599.5},
		{600, 600, 0},
		{601, 600, 1},
		{-1, 600, 599},
		{-600, 600, 0},
		{1250, 600, 50},
		{-1e-18, 600, 0},
	}
	for _, tt := range tests {
		if got := wrapCoord(tt.v, tt.size); got != tt.want {
			t.Errorf("wrapCoord(%v, %v): expected %v, got %v", tt.v, tt.size, tt.want, got)
		}
	}
}
