package game

import (
	"fmt"
	"time"
)

// Stopwatch measures the elapsed time of one run.
type Stopwatch struct {
	now     func() time.Time
	start   time.Time
	elapsed time.Duration
	running bool
}

// NewStopwatch returns a running stopwatch. A nil clock uses time.Now.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{now: now, start: now(), running: true}
}

// Stop freezes the elapsed time. Stopping twice keeps the first value.
func (s *Stopwatch) Stop() time.Duration {
	if s.running {
		s.elapsed = s.now().Sub(s.start)
		s.running = false
	}
	return s.elapsed
}

// Running reports whether the stopwatch is still counting.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Elapsed returns the time since start, or the frozen value once stopped.
func (s *Stopwatch) Elapsed() time.Duration {
	if s.running {
		return s.now().Sub(s.start)
	}
	return s.elapsed
}

// Format renders the elapsed time as mm:ss.
func (s *Stopwatch) Format() string {
	total := int(s.Elapsed() / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
