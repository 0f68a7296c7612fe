package game

// KindConfig holds the fixed per-kind parameters
type KindConfig struct {
	Kind Kind
	Name string

	// Vertices is the loop length; 0 means the count is chosen at first generation
	Vertices int

	// Speed and spin-rate clamps for input-driven kinds
	SpeedMin, SpeedMax float64
	SpeedStep          float64
	SpinMin, SpinMax   float64
	SpinStep           float64

	// MotionDiv divides the radius to get distance per tick at speed 1
	MotionDiv float64

	// Wraps is true when the kind takes part in toroidal wrapping at all
	Wraps bool
}

// GetKindConfig returns configuration for an entity kind
func GetKindConfig(kind Kind) KindConfig {
	switch kind {
	case KindShip:
		return KindConfig{
			Kind:      KindShip,
			Name:      "Ship",
			Vertices:  4,
			SpeedMin:  -0.5, // braking is weaker than thrust
			SpeedMax:  1.0,
			SpeedStep: shipSpeedStep,
			SpinMin:   -1.0,
			SpinMax:   1.0,
			SpinStep:  shipSpinStep,
			MotionDiv: shipMotionDiv,
			Wraps:     true,
		}
	case KindBullet:
		return KindConfig{
			Kind:     KindBullet,
			Name:     "Bullet",
			Vertices: 3,
		}
	case KindAsteroid:
		return KindConfig{
			Kind:      KindAsteroid,
			Name:      "Asteroid",
			Vertices:  0,
			SpeedMin:  spawnSpeedMin,
			SpeedMax:  spawnSpeedMax,
			MotionDiv: asteroidMotionDiv,
			Wraps:     true,
		}
	case KindGhost:
		return KindConfig{
			Kind: KindGhost,
			Name: "Ghost",
		}
	default:
		return GetKindConfig(KindShip)
	}
}

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindShip, KindBullet, KindAsteroid, KindGhost:
		return GetKindConfig(k).Name
	}
	return "Unknown"
}
