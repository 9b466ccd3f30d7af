package gesture

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chanSource struct {
	frames chan Frame
	err    error
}

func (s *chanSource) Next(ctx context.Context) (Frame, error) {
	select {
	case <-ctx.Done():
		return Frame{}, ctx.Err()
	case f, ok := <-s.frames:
		if !ok {
			if s.err != nil {
				return Frame{}, s.err
			}
			return Frame{}, io.EOF
		}
		return f, nil
	}
}

func TestSlot(t *testing.T) {
	s := NewSlot()
	assert.False(t, s.Offer(Frame{Poses: []Sample{head(0.1, 0.5)}}))
	assert.True(t, s.Offer(Frame{Poses: []Sample{head(0.9, 0.5)}}))

	f := <-s.C()
	assert.Equal(t, 0.9, f.Poses[0][Nose].X)

	select {
	case <-s.C():
		t.Fatal("slot should hold a single frame")
	default:
	}
}

func newPipelineFixture(t *testing.T) (*chanSource, *Classifier, *keyRecorder, chan Event) {
	t.Helper()
	src := &chanSource{frames: make(chan Frame)}
	keys := &keyRecorder{}
	events := make(chan Event, 8)
	c, err := NewClassifier(unmirrored(), Options{
		Keys:      keys,
		Listeners: []Listener{func(ev Event) { events <- ev }},
	})
	require.NoError(t, err)
	return src, c, keys, events
}

func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for gesture event")
	}
	return Event{}
}

func TestPipelineRun(t *testing.T) {
	t.Run("Releases the held key when the source ends", func(t *testing.T) {
		src, c, keys, events := newPipelineFixture(t)
		done := make(chan error, 1)
		go func() { done <- NewPipeline(src, c, nil).Run(context.Background()) }()

		src.frames <- Frame{Poses: []Sample{head(0.1, 0.5)}}
		assert.Equal(t, game.Left, waitEvent(t, events).Direction)

		close(src.frames)
		require.NoError(t, <-done)
		assert.Equal(t, []string{"press LEFT", "release LEFT"}, keys.recorded())
	})

	t.Run("Stops on cancellation", func(t *testing.T) {
		src, c, keys, events := newPipelineFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- NewPipeline(src, c, nil).Run(ctx) }()

		src.frames <- Frame{Poses: []Sample{head(0.5, 0.9)}}
		assert.Equal(t, game.Down, waitEvent(t, events).Direction)

		cancel()
		require.NoError(t, <-done)
		_, held := c.Held()
		assert.False(t, held)
		assert.Equal(t, []string{"press DOWN", "release DOWN"}, keys.recorded())
	})

	t.Run("Reports source failures", func(t *testing.T) {
		src, c, _, _ := newPipelineFixture(t)
		boom := errors.New("camera unplugged")
		src.err = boom
		close(src.frames)

		err := NewPipeline(src, c, nil).Run(context.Background())
		assert.ErrorIs(t, err, boom)
	})
}
