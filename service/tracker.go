package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/beka-birhanu/vinom-posemaze/service/i"
)

var (
	ErrInvalidRuntime = errors.New("completion time must be a finite, non-negative number of seconds")
	ErrNilStore       = errors.New("run store is required")
)

// CompletionTracker records finished runs and reads back the history. Store
// failures never reach the game: they are logged and degrade to no-ops.
type CompletionTracker struct {
	store  i.RunStore
	logger i.Logger
}

func NewCompletionTracker(store i.RunStore, logger i.Logger) (*CompletionTracker, error) {
	if store == nil {
		return nil, ErrNilStore
	}

	return &CompletionTracker{
		store:  store,
		logger: logger,
	}, nil
}

// Record appends one completion time.
func (t *CompletionTracker) Record(ctx context.Context, seconds float64) error {
	if seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return ErrInvalidRuntime
	}

	if err := t.store.Append(ctx, seconds); err != nil {
		t.logger.Warning(fmt.Sprintf("recording run of %.2fs: %v", seconds, err))
		return err
	}

	t.logger.Info(fmt.Sprintf("recorded run of %.2fs", seconds))
	return nil
}

// LoadAll returns every recorded time, oldest first. An unreadable store yields an empty history.
func (t *CompletionTracker) LoadAll(ctx context.Context) []float64 {
	runs, err := t.store.LoadAll(ctx)
	if err != nil {
		t.logger.Warning(fmt.Sprintf("loading run history: %v", err))
		return []float64{}
	}
	if runs == nil {
		return []float64{}
	}
	return runs
}
