package service

import (
	"context"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-posemaze/gesture"
)

type memStore struct {
	mu   sync.Mutex
	runs []float64
	err  error
}

func (m *memStore) Append(_ context.Context, seconds float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.runs = append(m.runs, seconds)
	return nil
}

func (m *memStore) LoadAll(context.Context) ([]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]float64(nil), m.runs...), nil
}

type recordingActuator struct {
	mu   sync.Mutex
	sent []byte
}

func (a *recordingActuator) Send(cmd byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sent = append(a.sent, cmd)
	return nil
}

func (a *recordingActuator) Close() error { return nil }

func (a *recordingActuator) String() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return string(a.sent)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type queuedEvents struct {
	mu     sync.Mutex
	events []gesture.Event
}

func (q *queuedEvents) push(ev gesture.Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

func (q *queuedEvents) Events() []gesture.Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.events
	q.events = nil
	return out
}

type fakeTokenizer struct {
	claims map[string]interface{}
	ttl    time.Duration
}

func (f *fakeTokenizer) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	f.claims, f.ttl = claims, ttl
	return "signed-token", nil
}

func (f *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return f.claims, nil
}
