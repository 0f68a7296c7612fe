package game

// Control is a logical input the simulation reads once per tick
type Control uint16

const (
	TurnLeft Control = iota
	TurnRight
	ThrustForward
	ThrustBackward
	Fire
	DebugSpawnObstacle
	DebugClearObstacles
	DebugGrow
	DebugShrink
	DebugRevive
	controlCount
)

var controlNames = [controlCount]string{
	"turn-left",
	"turn-right",
	"thrust-forward",
	"thrust-backward",
	"fire",
	"debug-spawn-obstacle",
	"debug-clear-obstacles",
	"debug-grow",
	"debug-shrink",
	"debug-revive",
}

// String returns the control's name
func (c Control) String() string {
	if c < controlCount {
		return controlNames[c]
	}
	return "unknown"
}

// Controls reports whether a logical control is currently held
type Controls interface {
	Held(c Control) bool
}

// ControlSet is a Controls backed by a bitmask
type ControlSet uint16

// NewControlSet returns a set holding the given controls
func NewControlSet(held ...Control) ControlSet {
	var s ControlSet
	for _, c := range held {
		s = s.With(c)
	}
	return s
}

// Held reports whether c is in the set
func (s ControlSet) Held(c Control) bool {
	return c < controlCount && s&(1<<c) != 0
}

// With returns the set with c added
func (s ControlSet) With(c Control) ControlSet {
	if c >= controlCount {
		return s
	}
	return s | 1<<c
}

// Without returns the set with c removed
func (s ControlSet) Without(c Control) ControlSet {
	if c >= controlCount {
		return s
	}
	return s &^ (1 << c)
}

// snapshotControls copies any Controls into a set
func snapshotControls(c Controls) ControlSet {
	if c == nil {
		return 0
	}
	if s, ok := c.(ControlSet); ok {
		return s
	}
	var s ControlSet
	for ctl := Control(0); ctl < controlCount; ctl++ {
		if c.Held(ctl) {
			s = s.With(ctl)
		}
	}
	return s
}

// pressed reports controls held now that were not held in prev
func (s ControlSet) pressed(prev ControlSet) ControlSet {
	return s &^ prev
}
