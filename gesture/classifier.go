package gesture

import (
	"fmt"
	"strings"
	"sync"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"github.com/beka-birhanu/vinom-posemaze/service/i"
)

// zoneOrder is the evaluation order of the four independent zones.
var zoneOrder = [...]game.Direction{game.Right, game.Left, game.Up, game.Down}

// Event is a single directional gesture.
type Event struct {
	Zone      game.Direction // zone the landmark entered
	Direction game.Direction // movement requested, after mirroring
}

// String returns the event token, e.g. "move_left".
func (e Event) String() string {
	return "move_" + strings.ToLower(e.Direction.String())
}

// KeyPresser receives the exclusive held-direction token.
type KeyPresser interface {
	Press(game.Direction)
	Release(game.Direction)
}

// Listener is notified of each event after it is queued. It must not block.
type Listener func(Event)

// Options carries the optional collaborators of a Classifier.
type Options struct {
	Keys      KeyPresser
	Listeners []Listener
	Logger    i.Logger
}

// Classifier runs one Idle/Triggered state machine per direction and queues
// an event on each Idle to Triggered transition only.
type Classifier struct {
	cfg       Config
	keys      KeyPresser
	listeners []Listener
	logger    i.Logger

	mu        sync.Mutex
	triggered [len(game.Directions)]bool
	held      game.Direction
	holding   bool
	events    []Event
}

// NewClassifier validates cfg and returns a classifier with every direction idle.
func NewClassifier(cfg Config, opts Options) (*Classifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Classifier{
		cfg:       cfg,
		keys:      opts.Keys,
		listeners: opts.Listeners,
		logger:    opts.Logger,
	}, nil
}

type keyOp struct {
	press bool
	dir   game.Direction
}

// Update feeds one pose sample. Samples that are too short or carry
// non-finite coordinates are ignored without any state change.
func (c *Classifier) Update(sample Sample) {
	zones, ok := c.zones(sample)
	if !ok {
		return
	}

	var fired []Event
	var ops []keyOp

	c.mu.Lock()
	for _, zone := range zoneOrder {
		if !zones[zone] {
			c.triggered[zone] = false
			continue
		}
		if c.triggered[zone] {
			continue
		}

		c.triggered[zone] = true
		ev := Event{Zone: zone, Direction: c.cfg.eventDirection(zone)}
		c.events = append(c.events, ev)
		fired = append(fired, ev)

		if c.holding {
			ops = append(ops, keyOp{press: false, dir: c.held})
		}
		c.held, c.holding = ev.Direction, true
		ops = append(ops, keyOp{press: true, dir: ev.Direction})
	}
	c.mu.Unlock()

	c.apply(ops)
	for _, ev := range fired {
		if c.logger != nil {
			c.logger.Info(fmt.Sprintf("triggered %s", ev))
		}
		for _, l := range c.listeners {
			l(ev)
		}
	}
}

// Events drains the queued events. It never blocks the producer for longer
// than a slice swap.
func (c *Classifier) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	events := c.events
	c.events = nil
	return events
}

// Held returns the direction currently held, if any.
func (c *Classifier) Held() (game.Direction, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.held, c.holding
}

// Triggered reports whether the zone is in its Triggered state.
func (c *Classifier) Triggered(zone game.Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.triggered[zone]
}

// Release drops the held direction and rearms every zone. It is called when
// the sensor pipeline stops so nothing stays pressed.
func (c *Classifier) Release() {
	c.mu.Lock()
	var ops []keyOp
	if c.holding {
		ops = append(ops, keyOp{press: false, dir: c.held})
		c.holding = false
	}
	c.triggered = [len(game.Directions)]bool{}
	c.mu.Unlock()

	c.apply(ops)
}

func (c *Classifier) apply(ops []keyOp) {
	if c.keys == nil {
		return
	}
	for _, op := range ops {
		if op.press {
			c.keys.Press(op.dir)
		} else {
			c.keys.Release(op.dir)
		}
	}
}

// zones evaluates which trigger zones the sample occupies.
func (c *Classifier) zones(s Sample) ([len(game.Directions)]bool, bool) {
	var z [len(game.Directions)]bool
	if len(s) < MinLandmarks {
		return z, false
	}

	t := c.cfg.Thresholds
	nose := s[Nose]
	if !nose.valid() {
		return z, false
	}

	switch c.cfg.Mode {
	case WristMode:
		lw, rw := s[LeftWrist], s[RightWrist]
		if !lw.valid() || !rw.valid() {
			return z, false
		}
		z[game.Right] = lw.X >= t.Right && rw.X >= t.Right
		z[game.Left] = lw.X <= t.Left && rw.X <= t.Left
	default:
		z[game.Right] = nose.X >= t.Right
		z[game.Left] = nose.X <= t.Left
	}
	z[game.Up] = nose.Y <= t.Up
	z[game.Down] = nose.Y >= t.Down

	return z, true
}
