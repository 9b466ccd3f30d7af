package gesture

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/beka-birhanu/vinom-posemaze/service/i"
)

// Source produces sensor frames. Next returns io.EOF once the stream ends
// and must return promptly after ctx is cancelled.
type Source interface {
	Next(ctx context.Context) (Frame, error)
}

// Slot is a single-element hand-off that keeps only the most recent frame.
// Offer never blocks.
type Slot struct {
	ch chan Frame
}

func NewSlot() *Slot {
	return &Slot{ch: make(chan Frame, 1)}
}

// Offer stores f, replacing any frame not yet taken. It reports whether a
// pending frame was discarded.
func (s *Slot) Offer(f Frame) (dropped bool) {
	for {
		select {
		case s.ch <- f:
			return dropped
		default:
		}

		select {
		case <-s.ch:
			dropped = true
		default:
		}
	}
}

// C returns the channel frames are taken from.
func (s *Slot) C() <-chan Frame {
	return s.ch
}

// Pipeline moves frames from a Source through a Slot into a Classifier.
// The producer never waits on classification; stale frames are overwritten.
type Pipeline struct {
	source     Source
	slot       *Slot
	classifier *Classifier
	logger     i.Logger
}

func NewPipeline(source Source, classifier *Classifier, logger i.Logger) *Pipeline {
	return &Pipeline{
		source:     source,
		slot:       NewSlot(),
		classifier: classifier,
		logger:     logger,
	}
}

// Run classifies frames until the source ends or ctx is cancelled. The held
// direction is released on return.
func (p *Pipeline) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer p.classifier.Release()

	produced := make(chan error, 1)
	go func() {
		produced <- p.produce(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-p.slot.C():
			p.consume(f)
		case err := <-produced:
			select {
			case f := <-p.slot.C():
				p.consume(f)
			default:
			}
			return err
		}
	}
}

func (p *Pipeline) produce(ctx context.Context) error {
	for {
		f, err := p.source.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("reading pose source: %w", err)
		}

		if p.slot.Offer(f) && p.logger != nil {
			p.logger.Warning("pose frame overwritten before classification")
		}
	}
}

func (p *Pipeline) consume(f Frame) {
	for _, pose := range f.Poses {
		p.classifier.Update(pose)
	}
}
