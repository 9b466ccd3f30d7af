package game

import "fmt"

// CellPosition addresses a cell by column (x) and row (y).
type CellPosition struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Move returns the position one step away in direction d.
func (p CellPosition) Move(d Direction) CellPosition {
	dx, dy := d.Delta()
	return CellPosition{Col: p.Col + dx, Row: p.Row + dy}
}

// Adjacent reports whether q shares an edge with p.
func (p CellPosition) Adjacent(q CellPosition) bool {
	_, ok := DirectionFromDelta(q.Col-p.Col, q.Row-p.Row)
	return ok
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Path is an ordered list of cells from a source to a goal, both inclusive.
// An empty Path means no guidance is available.
type Path []CellPosition

// Directions returns the step-by-step moves along the path.
func (p Path) Directions() []Direction {
	if len(p) < 2 {
		return nil
	}

	dirs := make([]Direction, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		if d, ok := DirectionFromDelta(p[i].Col-p[i-1].Col, p[i].Row-p[i-1].Row); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// Edges returns the number of steps in the path.
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}
