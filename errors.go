package rotary

// DuplicateAreaError is returned when registering an area whose id is
// already taken. The caller must pick a new id; the registry is unchanged.
type DuplicateAreaError struct {
	ID string
}

func (e DuplicateAreaError) Error() string {
	return "focus area already registered: " + e.ID
}

// NotFoundError is returned by registry queries against an unknown area or
// element id. It is not fatal; the registry is unchanged.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return "not found: " + e.ID
}

// NoFocusableTargetError is returned when an area contains no element that
// can take focus. The caller should leave the current focus unchanged or
// fall back to the parking target.
type NoFocusableTargetError struct {
	AreaID string
}

func (e NoFocusableTargetError) Error() string {
	return "no focusable target in area " + e.AreaID
}

// NoAdjacentAreaError is returned when a nudge cannot be resolved to a
// shortcut, override, or spatially adjacent area. The caller typically
// ignores the nudge.
type NoAdjacentAreaError struct {
	AreaID    string
	Direction Direction
}

func (e NoAdjacentAreaError) Error() string {
	return "no area " + e.Direction.String() + " of " + e.AreaID
}
