package actuator

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-posemaze/game"
	logger "github.com/beka-birhanu/vinom-posemaze/infrastruture/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type device struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	gate   chan struct{}
	err    error
	closed bool
}

func (d *device) Write(p []byte) (int, error) {
	if d.gate != nil {
		<-d.gate
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.err != nil {
		return 0, d.err
	}
	return d.buf.Write(p)
}

func (d *device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

func (d *device) written() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf.String()
}

func TestCommandFor(t *testing.T) {
	assert.Equal(t, CmdLeft, CommandFor(game.Left))
	assert.Equal(t, CmdRight, CommandFor(game.Right))
	assert.Equal(t, CmdUp, CommandFor(game.Up))
	assert.Equal(t, CmdDown, CommandFor(game.Down))
}

func TestSerial(t *testing.T) {
	t.Run("Writes commands in order and flushes on close", func(t *testing.T) {
		dev := &device{}
		s := New(dev, logger.Discard())

		require.NoError(t, s.Send(CmdLeft))
		require.NoError(t, s.Send(CmdUp))
		require.NoError(t, s.Send(CmdFinish))
		require.NoError(t, s.Close())

		assert.Equal(t, "LUF", dev.written())
		assert.True(t, dev.closed)
		assert.ErrorIs(t, s.Send(CmdLeft), ErrActuatorDisabled)
	})

	t.Run("Drops commands when the queue is full", func(t *testing.T) {
		dev := &device{gate: make(chan struct{})}
		s := New(dev, logger.Discard(), WithQueueSize(1))

		var dropped int
		for range 3 {
			if errors.Is(s.Send(CmdDown), ErrQueueFull) {
				dropped++
			}
		}
		assert.GreaterOrEqual(t, dropped, 1)

		close(dev.gate)
		require.NoError(t, s.Close())
	})

	t.Run("Disables itself after a write failure", func(t *testing.T) {
		dev := &device{err: errors.New("device unplugged")}
		s := New(dev, logger.Discard())

		require.NoError(t, s.Send(CmdRight))
		assert.Eventually(t, func() bool { return !s.Enabled() }, time.Second, 5*time.Millisecond)
		assert.ErrorIs(t, s.Send(CmdRight), ErrActuatorDisabled)
		require.NoError(t, s.Close())
	})

	t.Run("Close interrupts the settle delay", func(t *testing.T) {
		dev := &device{}
		s := New(dev, logger.Discard(), WithSettle(time.Hour))

		require.NoError(t, s.Send(CmdLeft))
		require.NoError(t, s.Close())
		assert.Equal(t, "L", dev.written())
	})
}

func TestDisabled(t *testing.T) {
	s := Disabled()
	assert.False(t, s.Enabled())
	assert.ErrorIs(t, s.Send(CmdLeft), ErrActuatorDisabled)
	assert.NoError(t, s.Close())
}

func TestOpenWithoutPort(t *testing.T) {
	s := Open("", 115200, logger.Discard())
	assert.False(t, s.Enabled())
}
