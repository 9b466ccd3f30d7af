package i

import "context"

// RunStore persists completion times in seconds, oldest first.
type RunStore interface {
	// Append stores one completion time.
	Append(ctx context.Context, seconds float64) error

	// LoadAll returns every stored completion time in the order it was recorded.
	// A store that has never been written returns an empty slice.
	LoadAll(ctx context.Context) ([]float64, error)
}
