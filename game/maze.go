package game

// Grid is the read-only view of a maze shared by the solver, the navigation
// assistant and the renderer.
type Grid interface {
	// Width returns the number of columns.
	Width() int

	// Height returns the number of rows.
	Height() int

	// InBound reports whether the position lies on the grid.
	InBound(CellPosition) bool

	// HasWall reports whether the cell side facing d is walled.
	// Out of bound positions are fully walled.
	HasWall(CellPosition, Direction) bool

	// IsPassable reports whether an open passage joins two adjacent cells.
	IsPassable(a, b CellPosition) bool

	// String renders the grid as ASCII art.
	String() string
}
