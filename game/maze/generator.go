package maze

import (
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-posemaze/game"
)

// Picker chooses one of n unvisited neighbors and returns its index in [0, n).
type Picker func(n int) int

// Option configures maze generation.
type Option func(*generator)

type generator struct {
	rnd   *rand.Rand
	pick  Picker
	start game.CellPosition
}

// WithSeed makes generation reproducible.
func WithSeed(seed int64) Option {
	return func(g *generator) {
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws neighbor choices from r.
func WithRand(r *rand.Rand) Option {
	return func(g *generator) {
		g.rnd = r
	}
}

// WithPicker overrides the neighbor choice. It takes precedence over the random source.
func WithPicker(p Picker) Option {
	return func(g *generator) {
		g.pick = p
	}
}

// WithStart sets the cell the backtracker starts carving from.
func WithStart(pos game.CellPosition) Option {
	return func(g *generator) {
		g.start = pos
	}
}

// PickFirst always picks the first candidate, in top, right, bottom, left order.
func PickFirst(int) int {
	return 0
}

// Generate builds a perfect maze with randomized depth-first backtracking.
// Every cell is reachable from every other through exactly one simple path.
func Generate(cols, rows int, opts ...Option) (*Maze, error) {
	m, err := New(cols, rows)
	if err != nil {
		return nil, err
	}

	g := &generator{}
	for _, opt := range opts {
		opt(g)
	}

	if g.pick == nil {
		if g.rnd == nil {
			g.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		g.pick = g.rnd.Intn
	}

	if !m.InBound(g.start) {
		return nil, ErrOutOfBounds
	}

	m.carve(g)
	return m, nil
}

// carve runs the backtracker. Each cell is pushed and popped at most once.
func (m *Maze) carve(g *generator) {
	current := m.cell(g.start)
	current.visited = true
	visitedCount := 1
	stack := make([]*Cell, 0, len(m.grid))

	for visitedCount < len(m.grid) {
		candidates := m.unvisitedNeighbors(current)
		if len(candidates) > 0 {
			i := g.pick(len(candidates))
			if i < 0 || i >= len(candidates) {
				i = 0
			}
			next := candidates[i]
			_ = m.OpenPassage(current.Pos, next.Pos)
			next.visited = true
			visitedCount++
			stack = append(stack, current)
			current = next
			continue
		}

		if len(stack) == 0 {
			break
		}
		current = pop(&stack)
	}

	for _, c := range m.grid {
		c.visited = false
	}
}

// unvisitedNeighbors lists the unvisited cells around c in top, right, bottom, left order.
func (m *Maze) unvisitedNeighbors(c *Cell) []*Cell {
	var result []*Cell
	for _, d := range [...]game.Direction{game.Up, game.Right, game.Down, game.Left} {
		if pos, ok := m.Neighbor(c.Pos, d); ok {
			if n := m.cell(pos); !n.visited {
				result = append(result, n)
			}
		}
	}
	return result
}

// pop removes and returns the last element of a stack of cells.
func pop(s *[]*Cell) *Cell {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}
