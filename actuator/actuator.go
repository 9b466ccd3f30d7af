// Package actuator forwards single-byte movement commands to an external
// device without ever blocking the game loop.
package actuator

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"github.com/beka-birhanu/vinom-posemaze/service/i"
	"go.bug.st/serial"
)

var (
	ErrActuatorDisabled = errors.New("actuator disabled")
	ErrQueueFull        = errors.New("actuator queue full, command dropped")
)

// Command bytes understood by the device.
const (
	CmdLeft   byte = 'L'
	CmdRight  byte = 'R'
	CmdUp     byte = 'U'
	CmdDown   byte = 'D'
	CmdFinish byte = 'F'
)

const (
	defaultQueueSize = 16
	// Boards that reset when the port opens need a moment before they listen.
	defaultSettle = 2 * time.Second
)

// CommandFor returns the command byte for a direction.
func CommandFor(d game.Direction) byte {
	return d.Command()
}

// Option configures a Serial.
type Option func(*Serial)

// WithQueueSize sets how many commands may wait for the device.
func WithQueueSize(n int) Option {
	return func(s *Serial) {
		if n > 0 {
			s.queue = make(chan byte, n)
		}
	}
}

// WithSettle delays the first write after the device is attached.
func WithSettle(d time.Duration) Option {
	return func(s *Serial) {
		s.settle = d
	}
}

// Serial writes commands to a device from a background worker. A disabled
// Serial accepts nothing and reports ErrActuatorDisabled.
type Serial struct {
	port   io.WriteCloser
	queue  chan byte
	settle time.Duration
	logger i.Logger

	failed    atomic.Bool
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Open attaches to the named serial port. When name is empty or the port
// cannot be opened the returned actuator is disabled and the available
// ports are logged.
func Open(name string, baud int, logger i.Logger, opts ...Option) *Serial {
	if name == "" {
		logger.Info("no serial port configured, actuator disabled")
		return Disabled()
	}

	port, err := serial.Open(name, &serial.Mode{BaudRate: baud, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit})
	if err != nil {
		ports, listErr := serial.GetPortsList()
		if listErr != nil {
			ports = nil
		}
		logger.Warning(fmt.Sprintf("opening serial port %s: %v, available ports: %v", name, err, ports))
		return Disabled()
	}

	logger.Info(fmt.Sprintf("connected to %s at %d baud", name, baud))
	return New(port, logger, append([]Option{WithSettle(defaultSettle)}, opts...)...)
}

// New starts a worker writing commands to w.
func New(w io.WriteCloser, logger i.Logger, opts ...Option) *Serial {
	s := &Serial{
		port:   w,
		queue:  make(chan byte, defaultQueueSize),
		logger: logger,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.wg.Add(1)
	go s.run()
	return s
}

// Disabled returns an actuator that drops every command.
func Disabled() *Serial {
	s := &Serial{done: make(chan struct{})}
	s.failed.Store(true)
	return s
}

// Enabled reports whether commands still reach the device.
func (s *Serial) Enabled() bool {
	return s.port != nil && !s.failed.Load()
}

// Send queues cmd. It never blocks: a full queue drops the command.
func (s *Serial) Send(cmd byte) error {
	if !s.Enabled() {
		return ErrActuatorDisabled
	}

	select {
	case <-s.done:
		return ErrActuatorDisabled
	default:
	}

	select {
	case s.queue <- cmd:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close flushes queued commands and closes the device.
func (s *Serial) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if s.port == nil {
			return
		}
		s.wg.Wait()
		err = s.port.Close()
	})
	return err
}

func (s *Serial) run() {
	defer s.wg.Done()

	if s.settle > 0 {
		timer := time.NewTimer(s.settle)
		select {
		case <-timer.C:
		case <-s.done:
			timer.Stop()
		}
	}

	for {
		select {
		case cmd := <-s.queue:
			s.write(cmd)
		case <-s.done:
			for {
				select {
				case cmd := <-s.queue:
					s.write(cmd)
				default:
					return
				}
			}
		}
	}
}

func (s *Serial) write(cmd byte) {
	if s.failed.Load() {
		return
	}
	if _, err := s.port.Write([]byte{cmd}); err != nil {
		s.failed.Store(true)
		s.logger.Warning(fmt.Sprintf("writing %q to actuator: %v, disabling", cmd, err))
	}
}

// Nop is an actuator that accepts and discards every command.
type Nop struct{}

func (Nop) Send(byte) error { return nil }
func (Nop) Close() error    { return nil }
