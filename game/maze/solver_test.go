package maze

import (
	"testing"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openGrid removes every inner wall so the grid graph has cycles.
func openGrid(t *testing.T, cols, rows int) *Maze {
	t.Helper()
	m, err := New(cols, rows)
	require.NoError(t, err)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if col+1 < cols {
				require.NoError(t, m.OpenPassage(pos(col, row), pos(col+1, row)))
			}
			if row+1 < rows {
				require.NoError(t, m.OpenPassage(pos(col, row), pos(col, row+1)))
			}
		}
	}
	return m
}

func assertConnected(t *testing.T, m *Maze, path game.Path) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		assert.True(t, m.IsPassable(path[i-1], path[i]), "step %s -> %s", path[i-1], path[i])
	}
}

func TestShortestPath(t *testing.T) {
	t.Run("Minimal on a grid with cycles", func(t *testing.T) {
		m := openGrid(t, 5, 4)
		path := ShortestPath(m, pos(0, 0), pos(4, 3))
		assert.Equal(t, 7, path.Edges())
		assert.Equal(t, pos(0, 0), path[0])
		assert.Equal(t, pos(4, 3), path[len(path)-1])
		assertConnected(t, m, path)
	})

	t.Run("Tie break prefers right first", func(t *testing.T) {
		m := openGrid(t, 2, 2)
		path := ShortestPath(m, pos(0, 0), pos(1, 1))
		assert.Equal(t, game.Path{pos(0, 0), pos(1, 0), pos(1, 1)}, path)
	})

	t.Run("Follows the only route of a perfect maze", func(t *testing.T) {
		m, err := Generate(10, 7, WithSeed(11))
		require.NoError(t, err)

		goal := pos(9, 6)
		for _, start := range []game.CellPosition{pos(0, 0), pos(5, 3), pos(9, 0)} {
			path := m.ShortestPath(start, goal)
			require.NotEmpty(t, path)
			assert.Equal(t, start, path[0])
			assert.Equal(t, goal, path[len(path)-1])
			assertConnected(t, m, path)

			seen := map[game.CellPosition]bool{}
			for _, p := range path {
				assert.False(t, seen[p], "path revisits %s", p)
				seen[p] = true
			}
		}
	})

	t.Run("Start equals goal", func(t *testing.T) {
		m := openGrid(t, 3, 3)
		assert.Equal(t, game.Path{pos(1, 1)}, ShortestPath(m, pos(1, 1), pos(1, 1)))
	})

	t.Run("Disconnected grid gives empty path", func(t *testing.T) {
		m, err := New(3, 3)
		require.NoError(t, err)
		require.NoError(t, m.OpenPassage(pos(0, 0), pos(1, 0)))
		assert.Empty(t, ShortestPath(m, pos(0, 0), pos(2, 2)))
	})

	t.Run("Out of bounds endpoints give empty path", func(t *testing.T) {
		m := openGrid(t, 3, 3)
		assert.Empty(t, ShortestPath(m, pos(-1, 0), pos(2, 2)))
		assert.Empty(t, ShortestPath(m, pos(0, 0), pos(3, 3)))
	})
}
