package game

// Direction is one of the four cardinal moves on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Delta returns the unit displacement of the direction in (col, row) space.
func (d Direction) Delta() (int, int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the direction pointing back.
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

// Command returns the single-character actuator code for the direction.
func (d Direction) Command() byte {
	switch d {
	case Up:
		return 'U'
	case Down:
		return 'D'
	case Left:
		return 'L'
	default:
		return 'R'
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	}
	return "UNKNOWN"
}

// DirectionFromDelta maps a unit displacement back to a direction.
func DirectionFromDelta(dx, dy int) (Direction, bool) {
	switch {
	case dx == 1 && dy == 0:
		return Right, true
	case dx == -1 && dy == 0:
		return Left, true
	case dx == 0 && dy == 1:
		return Down, true
	case dx == 0 && dy == -1:
		return Up, true
	}
	return 0, false
}

// Intent is the player's current movement request. The zero value is Idle.
type Intent int

const (
	Idle Intent = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
)

// IntentFor returns the movement intent matching d.
func IntentFor(d Direction) Intent {
	switch d {
	case Up:
		return MoveUp
	case Down:
		return MoveDown
	case Left:
		return MoveLeft
	default:
		return MoveRight
	}
}

// Direction returns the direction of the intent, false for Idle.
func (i Intent) Direction() (Direction, bool) {
	switch i {
	case MoveUp:
		return Up, true
	case MoveDown:
		return Down, true
	case MoveLeft:
		return Left, true
	case MoveRight:
		return Right, true
	}
	return 0, false
}

func (i Intent) String() string {
	if d, ok := i.Direction(); ok {
		return d.String()
	}
	return "IDLE"
}
