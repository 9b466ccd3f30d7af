// Package navigation turns the player's live position into guidance: the
// current shortest path to the goal, the next step to take and how much of
// the route is already behind.
package navigation

import (
	"errors"
	"math"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"github.com/beka-birhanu/vinom-posemaze/game/maze"
)

var (
	ErrInvalidTileSize = errors.New("tile size must be positive")
	ErrGoalOutOfBounds = errors.New("goal is out of the maze")
)

// Assistant recomputes the path from the player's cell to a fixed goal.
// It does no work beyond calling the solver, which costs O(cells) per update.
type Assistant struct {
	grid     game.Grid
	goal     game.CellPosition
	tileSize float64
	total    game.Path // path recorded at run start
	current  game.Path
}

// New creates an assistant and records the reference path from start.
func New(grid game.Grid, start, goal game.CellPosition, tileSize float64) (*Assistant, error) {
	if tileSize <= 0 {
		return nil, ErrInvalidTileSize
	}
	if !grid.InBound(goal) {
		return nil, ErrGoalOutOfBounds
	}

	total := maze.ShortestPath(grid, start, goal)
	return &Assistant{
		grid:     grid,
		goal:     goal,
		tileSize: tileSize,
		total:    total,
		current:  total,
	}, nil
}

// CellAt maps a continuous position to the cell containing it.
func CellAt(x, y, tileSize float64) game.CellPosition {
	return game.CellPosition{
		Col: int(math.Floor(x / tileSize)),
		Row: int(math.Floor(y / tileSize)),
	}
}

// Update recomputes the path from the cell holding (x, y).
func (a *Assistant) Update(x, y float64) game.Path {
	a.current = maze.ShortestPath(a.grid, CellAt(x, y, a.tileSize), a.goal)
	return a.current
}

// Goal returns the fixed target cell.
func (a *Assistant) Goal() game.CellPosition {
	return a.goal
}

// CurrentPath returns the latest computed path. Empty means no guidance.
func (a *Assistant) CurrentPath() game.Path {
	return a.current
}

// TotalPath returns the path recorded when the run started.
func (a *Assistant) TotalPath() game.Path {
	return a.total
}

// NextDirection returns the first step of the current path.
func (a *Assistant) NextDirection() (game.Direction, bool) {
	return NextDirection(a.current)
}

// CompletionPercent reports progress of the current path against the start path.
func (a *Assistant) CompletionPercent() int {
	return CompletionPercent(a.current, a.total)
}

// NextDirection maps the displacement between the first two cells of path to
// a direction. Paths shorter than two cells carry no direction.
func NextDirection(path game.Path) (game.Direction, bool) {
	if len(path) < 2 {
		return 0, false
	}
	return game.DirectionFromDelta(path[1].Col-path[0].Col, path[1].Row-path[0].Row)
}

// CompletionPercent computes 100 - round(len(path) / len(total) * 100),
// clamped to [0, 100]. A detour longer than the start path reads as 0.
func CompletionPercent(path, total game.Path) int {
	if len(total) == 0 {
		return 0
	}

	percent := 100 - int(math.Round(float64(len(path))/float64(len(total))*100))
	return max(0, min(100, percent))
}
