package maze

import (
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable counts the cells connected to start through open passages.
func reachable(m *Maze, start game.CellPosition) int {
	seen := map[game.CellPosition]bool{start: true}
	stack := []game.CellPosition{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range game.Directions {
			next := cur.Move(d)
			if !seen[next] && m.IsPassable(cur, next) {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	return len(seen)
}

func TestGenerate(t *testing.T) {
	t.Run("Produces a spanning tree", func(t *testing.T) {
		sizes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {2, 2}, {10, 7}, {13, 9}}
		for _, size := range sizes {
			for seed := int64(1); seed <= 5; seed++ {
				m, err := Generate(size[0], size[1], WithSeed(seed))
				require.NoError(t, err)

				cells := size[0] * size[1]
				assert.Equal(t, cells-1, m.PassageCount(), "size %v seed %d", size, seed)
				assert.Equal(t, cells, reachable(m, pos(0, 0)), "size %v seed %d", size, seed)
			}
		}
	})

	t.Run("Walls stay mirrored", func(t *testing.T) {
		m, err := Generate(12, 8, WithSeed(42))
		require.NoError(t, err)

		for row := 0; row < m.Height(); row++ {
			for col := 0; col < m.Width(); col++ {
				here := pos(col, row)
				for _, d := range game.Directions {
					there, ok := m.Neighbor(here, d)
					if !ok {
						assert.True(t, m.HasWall(here, d), "border of %s must be walled", here)
						continue
					}
					assert.Equal(t, m.HasWall(here, d), m.HasWall(there, d.Opposite()))
				}
			}
		}
	})

	t.Run("Same seed gives the same maze", func(t *testing.T) {
		a, err := Generate(9, 9, WithSeed(7))
		require.NoError(t, err)
		b, err := Generate(9, 9, WithRand(rand.New(rand.NewSource(7))))
		require.NoError(t, err)
		assert.Equal(t, a.String(), b.String())
	})

	t.Run("Pick first on 2x2 is deterministic", func(t *testing.T) {
		m, err := Generate(2, 2, WithPicker(PickFirst))
		require.NoError(t, err)

		assert.True(t, m.IsPassable(pos(0, 0), pos(1, 0)))
		assert.True(t, m.IsPassable(pos(1, 0), pos(1, 1)))
		assert.True(t, m.IsPassable(pos(1, 1), pos(0, 1)))
		assert.False(t, m.IsPassable(pos(0, 0), pos(0, 1)))

		path := m.ShortestPath(pos(0, 0), pos(1, 1))
		assert.Equal(t, game.Path{pos(0, 0), pos(1, 0), pos(1, 1)}, path)
	})

	t.Run("Custom start cell", func(t *testing.T) {
		m, err := Generate(4, 4, WithStart(pos(3, 3)), WithSeed(3))
		require.NoError(t, err)
		assert.Equal(t, 15, m.PassageCount())
	})

	t.Run("Start outside the grid fails", func(t *testing.T) {
		_, err := Generate(4, 4, WithStart(pos(4, 0)))
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("Out of range picker falls back to first", func(t *testing.T) {
		m, err := Generate(3, 3, WithPicker(func(n int) int { return n + 10 }))
		require.NoError(t, err)
		assert.Equal(t, 8, m.PassageCount())
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		_, err := Generate(0, 5)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}
