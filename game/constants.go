package game

import (
	"image/color"
	"math"
)

// Shape constants
const (
	wingAngle        = 0.53 // radians between the heading and each rear wing
	notchFraction    = 0.25 // rear notch distance as a fraction of ship radius
	bulletRadiusDiv  = 4.0  // bullet radius = ship radius / bulletRadiusDiv
	asteroidMinReach = 0.7  // asteroid vertex distance lower bound, fraction of radius
	asteroidStepMin  = math.Pi / 32
	asteroidStepMax  = math.Pi / 8
)

// Motion constants
const (
	rotationGain      = 0.1   // ship radians turned per tick at full spin rate
	shipMotionDiv     = 4.0   // ship moves radius/shipMotionDiv per tick at full speed
	asteroidMotionDiv = 16.0  // asteroids move radius/asteroidMotionDiv per tick at full speed
	bulletSpeedFactor = 0.6   // bullets move shipRadius*bulletSpeedFactor per tick
	shipSpinStep      = 0.0625
	shipSpeedStep     = 0.03125
	maxAsteroidSpin   = math.Pi / 64
)

// Spawning constants
const (
	spawnRadiusMin = 10.0
	spawnRadiusMax = 80.0
	spawnSpeedMin  = 0.25
	spawnSpeedMax  = 0.75
)

// Collision constants
const (
	shipHitFactor     = 0.8 // both radii are scaled by this for the ship test
	cullFraction      = 0.5 // obstacles at or below shipRadius*cullFraction are culled
	splitAngleMin     = math.Pi / 4
	splitAngleMax     = math.Pi / 2
	splitScaleMin     = 0.40
	splitScaleMax     = 0.60
	splitSpeedDiffMin = 0.25
	splitSpeedDiffMax = 0.75
)

// Fire cooldown constants
const (
	fireCycle = 15 // ticks between shots while fire is held
)

// Color constants
var (
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorShipFired = color.RGBA{R: 255, G: 100, B: 0, A: 255}
)

// cooldownColor is the ship tint while the gun recharges, d in [1, fireCycle).
func cooldownColor(d int) color.RGBA {
	left := fireCycle - d
	return color.RGBA{
		R: 255,
		G: uint8(150 + 105/left),
		B: uint8(255 / left),
		A: 255,
	}
}
