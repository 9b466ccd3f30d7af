package maze

import (
	"slices"

	"github.com/beka-birhanu/vinom-posemaze/game"
)

// solveOrder fixes tie-breaking among equally short paths.
var solveOrder = [...]game.Direction{game.Right, game.Left, game.Down, game.Up}

// ShortestPath runs a breadth-first search from start to goal over the open
// passages of g. The result holds both endpoints. It is empty when either
// endpoint is off the grid or the goal is unreachable.
func ShortestPath(g game.Grid, start, goal game.CellPosition) game.Path {
	if !g.InBound(start) || !g.InBound(goal) {
		return game.Path{}
	}
	if start == goal {
		return game.Path{start}
	}

	visited := map[game.CellPosition]struct{}{start: {}}
	prev := make(map[game.CellPosition]game.CellPosition)
	queue := []game.CellPosition{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, d := range solveOrder {
			next := current.Move(d)
			if _, seen := visited[next]; seen || !g.IsPassable(current, next) {
				continue
			}
			visited[next] = struct{}{}
			prev[next] = current
			if next == goal {
				return backtrack(prev, start, goal)
			}
			queue = append(queue, next)
		}
	}

	return game.Path{}
}

// ShortestPath finds the shortest route between two cells of the maze.
func (m *Maze) ShortestPath(start, goal game.CellPosition) game.Path {
	return ShortestPath(m, start, goal)
}

func backtrack(prev map[game.CellPosition]game.CellPosition, start, goal game.CellPosition) game.Path {
	var path game.Path
	for at := goal; at != start; at = prev[at] {
		path = append(path, at)
	}
	path = append(path, start)
	slices.Reverse(path)
	return path
}
