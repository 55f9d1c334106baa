package focus

import "fmt"

// Direction is a horizontal focus-switching direction.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// ParseDirection parses a direction argument as given on the command line.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("invalid direction %q (valid directions: left, right)", s)
}
