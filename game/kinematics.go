package game

// ShipInput represents the movement controls for a ship
type ShipInput struct {
	TurnLeft       bool
	TurnRight      bool
	ThrustForward  bool
	ThrustBackward bool
}

// ShipInputFrom extracts the movement controls from a control query
func ShipInputFrom(c Controls) ShipInput {
	return ShipInput{
		TurnLeft:       c.Held(TurnLeft),
		TurnRight:      c.Held(TurnRight),
		ThrustForward:  c.Held(ThrustForward),
		ThrustBackward: c.Held(ThrustBackward),
	}
}

// IntegrateShip applies one tick of input-driven motion.
// Speed and spin rate coast back to zero when their controls are released.
func IntegrateShip(e *Entity, in ShipInput) {
	cfg := GetKindConfig(e.Kind)
	e.snapshot()

	e.SpinRate = steer(e.SpinRate, in.TurnLeft, in.TurnRight, cfg.SpinMin, cfg.SpinMax, cfg.SpinStep)
	e.Speed = steer(e.Speed, in.ThrustBackward, in.ThrustForward, cfg.SpeedMin, cfg.SpeedMax, cfg.SpeedStep)

	e.Rotation += e.SpinRate * rotationGain
	e.Position = e.Position.Add(Heading(e.Rotation).Scale(e.Radius / cfg.MotionDiv * e.Speed))
}

// IntegrateAsteroid drifts an asteroid along its fixed heading at its fixed speed
func IntegrateAsteroid(e *Entity) {
	e.snapshot()
	e.Position = e.Position.Add(Heading(e.Rotation).Scale(e.Radius / asteroidMotionDiv * e.Speed))
}

// IntegrateBullet moves a bullet forward; bullet speed follows the ship's current size
func IntegrateBullet(e *Entity, shipRadius float64) {
	e.snapshot()
	e.Position = e.Position.Offset(shipRadius*bulletSpeedFactor, e.Rotation)
}

// steer moves v one step toward lo while neg is held alone, toward hi while pos is
// held alone, and toward zero otherwise. Pushing against the current sign of v
// counts double so reversing is snappier than accelerating.
func steer(v float64, neg, pos bool, lo, hi, step float64) float64 {
	switch {
	case neg && !pos:
		if v > 0 {
			v -= step
		}
		v -= step
		if v < lo {
			v = lo
		}
	case pos && !neg:
		if v < 0 {
			v += step
		}
		v += step
		if v > hi {
			v = hi
		}
	default:
		v = decay(v, step)
	}
	return v
}

// decay moves v one step toward zero without overshooting
func decay(v, step float64) float64 {
	switch {
	case v > step:
		return v - step
	case v < -step:
		return v + step
	}
	return 0
}
