package rotary

import "fmt"

// Direction is a nudge direction on the rotary controller.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	}
	return Up
}

// Horizontal reports whether the direction is on the x axis.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// ParseDirection converts a direction name ("left", "right", "up", "down")
// to a Direction. Used by the layout loader.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Directions lists all four directions in a fixed order, for callers that
// need to enumerate nudge configuration.
var Directions = [4]Direction{Left, Right, Up, Down}
