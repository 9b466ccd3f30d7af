// Package runstore persists completion times for the completion tracker.
package runstore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"
)

// FileStore keeps one completion time per line, formatted with two decimals.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Append writes seconds as a new line at the end of the file, creating it if needed.
func (s *FileStore) Append(_ context.Context, seconds float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}

	if _, err := fmt.Fprintf(f, "%.2f\n", seconds); err != nil {
		_ = f.Close()
		return fmt.Errorf("appending to history file: %w", err)
	}
	return f.Close()
}

// LoadAll reads every parseable line. A missing file is an empty history and
// lines that do not hold a finite number are skipped.
func (s *FileStore) LoadAll(_ context.Context) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []float64{}, nil
		}
		return nil, fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()

	runs := []float64{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		runs = append(runs, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history file: %w", err)
	}

	return runs, nil
}
