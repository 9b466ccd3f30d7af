/*
Package maze provides tools for creating and navigating rectangular mazes.

It defines the `Maze` structure, a row-major grid of `Cell` objects carrying
mirrored wall flags.

The package includes a randomized depth-first backtracking generator that
carves a perfect maze, a breadth-first shortest path solver over the open
passages, neighbor lookup, and ASCII visualization of the maze.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-posemaze/game"
)

var _ game.Grid = &Maze{}

var (
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrOutOfBounds       = errors.New("cell is out of the maze")
	ErrNotAdjacent       = errors.New("cells are not adjacent")
)

// Maze is a rectangular grid of cells with walls between them.
type Maze struct {
	width  int     // Number of columns
	height int     // Number of rows
	grid   []*Cell // Cells in row-major order
}

// New creates a maze of the given dimensions with every wall standing.
func New(cols, rows int) (*Maze, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cols, rows)
	}

	grid := make([]*Cell, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			grid = append(grid, newCell(col, row))
		}
	}

	return &Maze{
		width:  cols,
		height: rows,
		grid:   grid,
	}, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// Size returns the number of cells.
func (m *Maze) Size() int {
	return len(m.grid)
}

// InBound reports whether pos lies inside the maze.
func (m *Maze) InBound(pos game.CellPosition) bool {
	return pos.Col >= 0 && pos.Col < m.width && pos.Row >= 0 && pos.Row < m.height
}

// Cell returns a copy of the cell at pos.
func (m *Maze) Cell(pos game.CellPosition) (Cell, bool) {
	c := m.cell(pos)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

func (m *Maze) cell(pos game.CellPosition) *Cell {
	if !m.InBound(pos) {
		return nil
	}
	return m.grid[pos.Col+pos.Row*m.width]
}

// Neighbor returns the position adjacent to pos in direction d.
// Reaching past the border is a normal outcome reported by the boolean.
func (m *Maze) Neighbor(pos game.CellPosition, d game.Direction) (game.CellPosition, bool) {
	next := pos.Move(d)
	if !m.InBound(pos) || !m.InBound(next) {
		return game.CellPosition{}, false
	}
	return next, true
}

// OpenPassage removes the wall pair between two adjacent cells.
func (m *Maze) OpenPassage(a, b game.CellPosition) error {
	from, to := m.cell(a), m.cell(b)
	if from == nil || to == nil {
		return ErrOutOfBounds
	}

	d, ok := game.DirectionFromDelta(b.Col-a.Col, b.Row-a.Row)
	if !ok {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a, b)
	}

	from.setWall(d, false)
	to.setWall(d.Opposite(), false)
	return nil
}

// IsPassable reports whether no wall blocks the edge shared by a and b.
func (m *Maze) IsPassable(a, b game.CellPosition) bool {
	from, to := m.cell(a), m.cell(b)
	if from == nil || to == nil {
		return false
	}

	d, ok := game.DirectionFromDelta(b.Col-a.Col, b.Row-a.Row)
	if !ok {
		return false
	}
	return !from.HasWall(d) && !to.HasWall(d.Opposite())
}

// HasWall reports whether the side of pos facing d is walled.
func (m *Maze) HasWall(pos game.CellPosition, d game.Direction) bool {
	c := m.cell(pos)
	if c == nil {
		return true
	}
	return c.HasWall(d)
}

// PassageCount returns the number of open edges between cells.
func (m *Maze) PassageCount() int {
	n := 0
	for _, c := range m.grid {
		// count each edge once, from its left or upper cell
		if !c.EastWall && c.Pos.Col+1 < m.width {
			n++
		}
		if !c.SouthWall && c.Pos.Row+1 < m.height {
			n++
		}
	}
	return n
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", m.width) + "\n")

	for row := 0; row < m.height; row++ {
		// Cell rows
		b.WriteString("|")
		for col := 0; col < m.width; col++ {
			if m.grid[col+row*m.width].EastWall {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n")

		// Wall rows
		b.WriteString("+")
		for col := 0; col < m.width; col++ {
			if m.grid[col+row*m.width].SouthWall {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
