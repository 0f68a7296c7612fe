package game

import "math/rand"

// CollisionSystem resolves contacts between the ship, bullets and obstacles.
// All tests compare squared center distance against a squared radius.
type CollisionSystem struct {
	rng *rand.Rand
}

// NewCollisionSystem creates a collision system that samples fragments from rng
func NewCollisionSystem(rng *rand.Rand) *CollisionSystem {
	return &CollisionSystem{rng: rng}
}

// BulletHits is the outcome of one bullet-versus-obstacle pass
type BulletHits struct {
	Obstacles []*Entity // survivors in order, then fragments
	Bullets   []*Entity // unconsumed bullets, oldest first
	Destroyed int       // obstacles split this pass
	Points    uint32
}

// ResolveBulletHits scans obstacles in order and pairs each with the first
// unconsumed bullet inside its radius. A bullet is treated as a point, so its
// own radius is not part of the test. A bullet can destroy only one obstacle,
// so when two obstacles overlap the same bullet only the first in scan order
// goes. Each destroyed obstacle scores its truncated radius and is replaced by
// two fragments appended after the survivors.
func (cs *CollisionSystem) ResolveBulletHits(obstacles, bullets []*Entity) BulletHits {
	if len(obstacles) == 0 || len(bullets) == 0 {
		return BulletHits{Obstacles: obstacles, Bullets: bullets}
	}

	destroyed := make([]bool, len(obstacles))
	consumed := make([]bool, len(bullets))
	var hits BulletHits

	// Mark pass
	for i, ob := range obstacles {
		reachSq := ob.Radius * ob.Radius
		for j, b := range bullets {
			if consumed[j] {
				continue
			}
			if DistSq(ob.Position, b.Position) <= reachSq {
				destroyed[i] = true
				consumed[j] = true
				hits.Destroyed++
				hits.Points += uint32(ob.Radius)
				break
			}
		}
	}
	if hits.Destroyed == 0 {
		return BulletHits{Obstacles: obstacles, Bullets: bullets}
	}

	// Compact pass
	fragments := make([]*Entity, 0, 2*hits.Destroyed)
	kept := obstacles[:0]
	for i, ob := range obstacles {
		if destroyed[i] {
			a, b := cs.Fragment(ob)
			fragments = append(fragments, a, b)
			continue
		}
		kept = append(kept, ob)
	}
	clearTail(obstacles, len(kept))
	hits.Obstacles = append(kept, fragments...)

	liveBullets := bullets[:0]
	for j, b := range bullets {
		if !consumed[j] {
			liveBullets = append(liveBullets, b)
		}
	}
	clearTail(bullets, len(liveBullets))
	hits.Bullets = liveBullets

	return hits
}

// Fragment splits parent into two smaller asteroids diverging from its heading
func (cs *CollisionSystem) Fragment(parent *Entity) (*Entity, *Entity) {
	angle := uniform(cs.rng, splitAngleMin, splitAngleMax)
	speedDiff := uniform(cs.rng, parent.Speed*splitSpeedDiffMin, parent.Speed*splitSpeedDiffMax)
	scaleDiff := uniform(cs.rng, parent.Radius*splitScaleMin, parent.Radius*splitScaleMax)

	a := NewAsteroid(parent.Position, parent.Rotation+angle, parent.Radius-scaleDiff,
		uniform(cs.rng, parent.Speed, 2*parent.Speed), parent.Color, cs.rng)
	b := NewAsteroid(parent.Position, parent.Rotation-angle, scaleDiff,
		parent.Speed+speedDiff, parent.Color, cs.rng)

	// Fragments start mid-playfield
	a.WrapEligible = true
	b.WrapEligible = true
	return a, b
}

// ShipHit reports whether any obstacle touches the ship. Both radii are
// shrunk so grazing contacts are forgiven.
func ShipHit(ship *Entity, obstacles []*Entity) bool {
	for _, ob := range obstacles {
		reach := shipHitFactor*ship.Radius + shipHitFactor*ob.Radius
		if DistSq(ship.Position, ob.Position) <= reach*reach {
			return true
		}
	}
	return false
}

// Cull removes obstacles whose radius is at or below half the ship's radius
func Cull(obstacles []*Entity, shipRadius float64) []*Entity {
	limit := shipRadius * cullFraction
	kept := obstacles[:0]
	for _, ob := range obstacles {
		if ob.Radius > limit {
			kept = append(kept, ob)
		}
	}
	clearTail(obstacles, len(kept))
	return kept
}

// clearTail drops references past n so removed entities can be collected
func clearTail(s []*Entity, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
