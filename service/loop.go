package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"github.com/beka-birhanu/vinom-posemaze/gesture"
	"github.com/beka-birhanu/vinom-posemaze/service/i"
)

var ErrInvalidTickRate = errors.New("tick rate must be positive")

// EventSource is drained once per tick. gesture.Classifier implements it.
type EventSource interface {
	Events() []gesture.Event
}

// Loop drives a GameSession at a fixed rate. Only the loop goroutine touches
// the session; other goroutines read published snapshots and queue restarts.
type Loop struct {
	session  *GameSession
	events   EventSource
	interval time.Duration
	logger   i.Logger

	snapshot atomic.Pointer[Snapshot]
	restart  chan struct{}
}

// NewLoop creates a loop ticking tickRate times per second. events may be nil.
func NewLoop(session *GameSession, events EventSource, tickRate int, logger i.Logger) (*Loop, error) {
	if tickRate <= 0 {
		return nil, ErrInvalidTickRate
	}

	l := &Loop{
		session:  session,
		events:   events,
		interval: time.Second / time.Duration(tickRate),
		logger:   logger,
		restart:  make(chan struct{}, 1),
	}
	l.publish()
	return l, nil
}

// Step runs one tick: pending restart, gesture events, movement, then publication.
func (l *Loop) Step(ctx context.Context) {
	select {
	case <-l.restart:
		if err := l.session.Restart(); err != nil {
			l.logger.Error(fmt.Sprintf("restarting game: %v", err))
		}
	default:
	}

	if l.events != nil {
		l.session.ApplyGestures(l.events.Events())
	}
	l.session.Tick(ctx)
	l.publish()
}

// Input applies a keyboard intent. It must be called from the goroutine running Step.
func (l *Loop) Input(intent game.Intent) {
	l.session.SetIntent(intent)
}

// Run ticks until ctx is cancelled, then waits for pending run records.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	defer l.session.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Step(ctx)
		}
	}
}

// RequestRestart queues a new maze for the next tick. Requests made while
// one is pending collapse into it.
func (l *Loop) RequestRestart() {
	select {
	case l.restart <- struct{}{}:
	default:
	}
}

// Snapshot returns the state published by the last tick.
func (l *Loop) Snapshot() Snapshot {
	return *l.snapshot.Load()
}

func (l *Loop) publish() {
	snap := l.session.Snapshot()
	l.snapshot.Store(&snap)
}
