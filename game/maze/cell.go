package maze

import "github.com/beka-birhanu/vinom-posemaze/game"

// Cell represents a single cell in a maze grid.
// Walls are mirrored: the wall a cell has facing a neighbor always matches
// the neighbor's wall facing back.
type Cell struct {
	Pos       game.CellPosition // Pos is the column and row of the cell.
	NorthWall bool              // NorthWall indicates whether there is a wall on the top side of the cell.
	SouthWall bool              // SouthWall indicates whether there is a wall on the bottom side of the cell.
	EastWall  bool              // EastWall indicates whether there is a wall on the right side of the cell.
	WestWall  bool              // WestWall indicates whether there is a wall on the left side of the cell.

	visited bool // used only while generating
}

func newCell(col, row int) *Cell {
	return &Cell{
		Pos:       game.CellPosition{Col: col, Row: row},
		NorthWall: true,
		SouthWall: true,
		EastWall:  true,
		WestWall:  true,
	}
}

// HasWall returns true if there is a wall on the side of the cell facing d.
func (c *Cell) HasWall(d game.Direction) bool {
	switch d {
	case game.Up:
		return c.NorthWall
	case game.Down:
		return c.SouthWall
	case game.Left:
		return c.WestWall
	case game.Right:
		return c.EastWall
	}
	return true
}

// WallCount returns how many of the four sides are walled.
func (c *Cell) WallCount() int {
	n := 0
	for _, d := range game.Directions {
		if c.HasWall(d) {
			n++
		}
	}
	return n
}

func (c *Cell) setWall(d game.Direction, wall bool) {
	switch d {
	case game.Up:
		c.NorthWall = wall
	case game.Down:
		c.SouthWall = wall
	case game.Left:
		c.WestWall = wall
	case game.Right:
		c.EastWall = wall
	}
}
