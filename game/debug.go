package game

import "fmt"

// DebugState holds debug display flags
type DebugState struct {
	ShowHitboxes bool // Outline each entity's collision circle
}

// InvariantError is raised by assert in debug builds
type InvariantError struct {
	Msg string
}

func (e InvariantError) Error() string {
	return "invariant violated: " + e.Msg
}

// assert panics with an InvariantError when checks are compiled in and cond is false.
// Build with -tags debug to enable.
func assert(cond bool, format string, args ...any) {
	if debugChecks && !cond {
		panic(InvariantError{Msg: fmt.Sprintf(format, args...)})
	}
}

// checkEntity asserts the shape invariants of a live entity
func checkEntity(e *Entity) {
	if !debugChecks {
		return
	}
	assert(e.Radius > 0, "%s radius %v", e.Kind, e.Radius)
	if want := GetKindConfig(e.Kind).Vertices; want > 0 {
		assert(len(e.Vertices) == want, "%s has %d vertices, want %d", e.Kind, len(e.Vertices), want)
	}
	if e.Kind == KindAsteroid {
		assert(len(e.Vertices) >= 3, "asteroid has %d vertices", len(e.Vertices))
	}
}
