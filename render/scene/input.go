package scene

import "github.com/beka-birhanu/vinom-posemaze/game"

// Keys is the state of the movement keys for one frame.
type Keys struct {
	Left, Right, Up, Down bool
}

// Intent maps held keys to a movement intent. When several keys are held the
// last of left, right, up, down wins. ok is false when no key is held, in
// which case the previous intent stays in force.
func (k Keys) Intent() (intent game.Intent, ok bool) {
	if k.Left {
		intent, ok = game.MoveLeft, true
	}
	if k.Right {
		intent, ok = game.MoveRight, true
	}
	if k.Up {
		intent, ok = game.MoveUp, true
	}
	if k.Down {
		intent, ok = game.MoveDown, true
	}
	return intent, ok
}
