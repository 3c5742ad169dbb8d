package game

import "math/rand"

// Direction is one of the four moves a player can make on the board.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var AllDirections = [4]Direction{Up, Down, Left, Right}

// Opposite returns the direction that would undo a move in d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Offset returns the row/col delta of a single step in d.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// shuffledDirections returns all four directions in randomized order so
// strategies have no directional bias.
func shuffledDirections() []Direction {
	directions := make([]Direction, len(AllDirections))
	copy(directions, AllDirections[:])
	rand.Shuffle(len(directions), func(i, j int) {
		directions[i], directions[j] = directions[j], directions[i]
	})
	return directions
}
