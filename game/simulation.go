package game

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"math/rand"
	"time"
)

// PolylineDrawer receives one closed vertex loop per visible polygon.
// The points slice is only valid for the duration of the call.
type PolylineDrawer interface {
	DrawPolyline(points []Point, clr color.RGBA)
}

// State holds the counters carried from one tick to the next
type State struct {
	Ticks        uint64
	Phase        int // ticks into the current spawn phase
	SpawnCounter int // spawn phases since the last spawn
	FireDelay    int // ticks into the current fire cycle
	Score        uint32
}

// TickResult reports what happened during one tick
type TickResult struct {
	Fired         bool   // a bullet left the ship
	Spawned       int    // obstacles created by the spawner
	Destroyed     int    // obstacles split by bullets
	Points        uint32 // score gained this tick
	ShipDestroyed bool   // the ship was hit this tick
	Score         uint32
}

// Simulation owns the ship, bullets and obstacles and advances them one tick at a time
type Simulation struct {
	config     Config
	rng        *rand.Rand
	collisions *CollisionSystem
	logger     *log.Logger

	ship      *Entity
	alive     bool
	bullets   []*Entity // oldest first
	obstacles []*Entity

	state        State
	prevControls ControlSet

	// Debug holds display toggles for Render
	Debug DebugState
}

// New creates a simulation with the ship parked at the center, pointing up
func New(config Config) (*Simulation, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewWithRand(config, rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a simulation drawing all randomness from rng
func NewWithRand(config Config, rng *rand.Rand) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	s := &Simulation{
		config:     config,
		rng:        rng,
		collisions: NewCollisionSystem(rng),
		logger:     log.New(io.Discard, "", 0),
		ship:       NewShip(config.Center(), -math.Pi/2, config.ShipRadius),
		alive:      true,
		bullets:    make([]*Entity, 0, 16),
		obstacles:  make([]*Entity, 0, 32),
	}
	return s, nil
}

// SetLogger routes lifecycle messages to l; nil silences them
func (s *Simulation) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	s.logger = l
}

// Tick advances the simulation by one frame
func (s *Simulation) Tick(c Controls) TickResult {
	held := snapshotControls(c)
	pressed := held.pressed(s.prevControls)
	s.prevControls = held

	var res TickResult
	w, h := s.config.WorldWidth, s.config.WorldHeight

	res.Spawned += s.handleDebug(pressed)

	// Ship
	if s.alive {
		IntegrateShip(s.ship, ShipInputFrom(held))
		WrapPosition(s.ship, w, h)
		UpdateVertices(s.ship, nil)
		res.Fired = s.handleFire(held.Held(Fire))
	}

	if s.scheduleSpawn() {
		res.Spawned++
	}

	// Obstacles
	for _, ob := range s.obstacles {
		TrackEligibility(ob, w, h)
		IntegrateAsteroid(ob)
		WrapPosition(ob, w, h)
		UpdateVertices(ob, s.rng)
	}

	s.advanceBullets()

	// Collisions
	hits := s.collisions.ResolveBulletHits(s.obstacles, s.bullets)
	s.obstacles = hits.Obstacles
	s.bullets = hits.Bullets
	s.state.Score += hits.Points
	res.Destroyed = hits.Destroyed
	res.Points = hits.Points

	if s.alive && ShipHit(s.ship, s.obstacles) {
		s.alive = false
		res.ShipDestroyed = true
		s.logger.Printf("ship destroyed at (%.0f, %.0f), score %d", s.ship.Position.X, s.ship.Position.Y, s.state.Score)
	}

	s.obstacles = Cull(s.obstacles, s.ship.Radius)
	s.check()

	s.state.Ticks++
	s.state.Phase = (s.state.Phase + 1) % s.config.TicksPerSecond
	res.Score = s.state.Score
	return res
}

// handleDebug applies debug controls pressed this tick and returns how many obstacles it spawned
func (s *Simulation) handleDebug(pressed ControlSet) int {
	spawned := 0
	if pressed.Held(DebugSpawnObstacle) {
		s.spawn()
		spawned++
	}
	if pressed.Held(DebugClearObstacles) {
		clearTail(s.obstacles, 0)
		s.obstacles = s.obstacles[:0]
		s.logger.Printf("obstacles cleared")
	}
	if pressed.Held(DebugGrow) {
		s.ship.Radius++
		UpdateVertices(s.ship, nil)
	}
	if pressed.Held(DebugShrink) && s.ship.Radius > 1 {
		s.ship.Radius = math.Max(1, s.ship.Radius-1)
		UpdateVertices(s.ship, nil)
	}
	// Revive leaves position, heading and speed untouched
	if pressed.Held(DebugRevive) && !s.alive {
		s.alive = true
		s.logger.Printf("ship revived")
	}
	return spawned
}

// handleFire runs the gun's fire cycle. A shot leaves on the first tick of each
// cycle; the cycle keeps running after release until it wraps to zero.
func (s *Simulation) handleFire(trigger bool) bool {
	fired := false
	switch {
	case trigger && s.state.FireDelay == 0:
		s.bullets = append(s.bullets, s.ship.Fire())
		s.ship.Color = colorShipFired
		fired = true
	case trigger || s.state.FireDelay > 0:
		s.ship.Color = cooldownColor(s.state.FireDelay)
	default:
		return false
	}
	s.state.FireDelay = (s.state.FireDelay + 1) % fireCycle
	return fired
}

// scheduleSpawn spawns an obstacle every SpawnEvery phases
func (s *Simulation) scheduleSpawn() bool {
	if s.state.Phase != 0 {
		return false
	}
	s.state.SpawnCounter++
	if s.state.SpawnCounter < s.config.SpawnEvery {
		return false
	}
	s.state.SpawnCounter = 0
	s.spawn()
	return true
}

func (s *Simulation) spawn() {
	s.obstacles = append(s.obstacles, Spawn(s.config.WorldWidth, s.config.WorldHeight, s.rng))
}

// advanceBullets moves every bullet and drops the ones that left the playfield
func (s *Simulation) advanceBullets() {
	w, h := s.config.WorldWidth, s.config.WorldHeight
	kept := s.bullets[:0]
	for _, b := range s.bullets {
		IntegrateBullet(b, s.ship.Radius)
		if b.Position.X < 0 || b.Position.X > w || b.Position.Y < 0 || b.Position.Y > h {
			continue
		}
		UpdateVertices(b, nil)
		kept = append(kept, b)
	}
	clearTail(s.bullets, len(kept))
	s.bullets = kept
}

// check asserts entity invariants at the end of a tick
func (s *Simulation) check() {
	if !debugChecks {
		return
	}
	checkEntity(s.ship)
	for _, b := range s.bullets {
		checkEntity(b)
	}
	limit := s.ship.Radius * cullFraction
	for _, ob := range s.obstacles {
		checkEntity(ob)
		assert(ob.Radius > limit, "obstacle radius %v survived culling at %v", ob.Radius, limit)
	}
}

// Render emits the cached outline of every visible entity plus the ghosts of
// those straddling an edge. It does not change any state.
func (s *Simulation) Render(d PolylineDrawer) {
	if s.alive {
		s.drawWrapped(d, s.ship)
	}
	for _, b := range s.bullets {
		d.DrawPolyline(b.Vertices, b.Color)
	}
	for _, ob := range s.obstacles {
		s.drawWrapped(d, ob)
	}
	if s.Debug.ShowHitboxes {
		s.drawHitboxes(d)
	}
}

func (s *Simulation) drawWrapped(d PolylineDrawer, e *Entity) {
	if len(e.Vertices) == 0 {
		return
	}
	d.DrawPolyline(e.Vertices, e.Color)
	for _, g := range Ghosts(e, s.config.WorldWidth, s.config.WorldHeight) {
		d.DrawPolyline(g.Vertices, g.Color)
	}
}

var colorHitbox = color.RGBA{R: 0, G: 200, B: 255, A: 255}

// drawHitboxes outlines the circle each collision test uses
func (s *Simulation) drawHitboxes(d PolylineDrawer) {
	if s.alive {
		d.DrawPolyline(circle(s.ship.Position, s.ship.Radius*shipHitFactor), colorHitbox)
	}
	for _, ob := range s.obstacles {
		d.DrawPolyline(circle(ob.Position, ob.Radius), colorHitbox)
	}
}

// circle approximates a circle with a 24-sided loop
func circle(center Point, r float64) []Point {
	const sides = 24
	points := make([]Point, sides)
	for i := range points {
		points[i] = center.Offset(r, float64(i)*2*math.Pi/sides)
	}
	return points
}

// Score returns the running score
func (s *Simulation) Score() uint32 {
	return s.state.Score
}

// State returns a copy of the cross-tick counters
func (s *Simulation) State() State {
	return s.state
}

// ShipAlive reports whether the ship responds to controls
func (s *Simulation) ShipAlive() bool {
	return s.alive
}

// Ship returns the player ship
func (s *Simulation) Ship() *Entity {
	return s.ship
}

// Bullets returns the bullets in flight, oldest first
func (s *Simulation) Bullets() []*Entity {
	return s.bullets
}

// Obstacles returns the live obstacles
func (s *Simulation) Obstacles() []*Entity {
	return s.obstacles
}

// Config returns the configuration the simulation was built with
func (s *Simulation) Config() Config {
	return s.config
}
