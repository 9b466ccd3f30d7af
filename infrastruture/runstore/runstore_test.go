package runstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing file is an empty history", func(t *testing.T) {
		s := NewFileStore(filepath.Join(t.TempDir(), "none.txt"))
		runs, err := s.LoadAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, runs)
		assert.Empty(t, runs)
	})

	t.Run("Appends two decimal lines in order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "times.txt")
		s := NewFileStore(path)

		require.NoError(t, s.Append(ctx, 42.5))
		require.NoError(t, s.Append(ctx, 7.129))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "42.50\n7.13\n", string(data))

		runs, err := s.LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []float64{42.5, 7.13}, runs)
	})

	t.Run("Skips malformed lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "times.txt")
		require.NoError(t, os.WriteFile(path, []byte("12.00\nabc\n\n  30.5 \nNaN\n1e400\n"), 0o644))

		runs, err := NewFileStore(path).LoadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []float64{12, 30.5}, runs)
	})

	t.Run("Unwritable path fails", func(t *testing.T) {
		s := NewFileStore(filepath.Join(t.TempDir(), "missing-dir", "times.txt"))
		assert.Error(t, s.Append(ctx, 1))
	})
}

func TestDecodeMember(t *testing.T) {
	v, ok := decodeMember("0b7c2a9e-6d3c-4c59-9a55-3f3f8f5a1c1e|61.25")
	assert.True(t, ok)
	assert.Equal(t, 61.25, v)

	_, ok = decodeMember("no-separator")
	assert.False(t, ok)

	_, ok = decodeMember("id|abc")
	assert.False(t, ok)
}
