// Package scene turns a session snapshot into flat drawing primitives. It
// knows nothing about the graphics backend.
package scene

import (
	"fmt"
	"math"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"github.com/beka-birhanu/vinom-posemaze/service"
)

const (
	// TrailSpacing is the distance between guide dots in pixels.
	TrailSpacing = 10
	// WallWidth is the stroke width of maze walls.
	WallWidth = 8
)

// Font sizes used by the HUD and end screen.
const (
	SizeSmall  = 28
	SizeMedium = 40
	SizeLarge  = 56
)

// Line is a wall segment.
type Line struct{ X0, Y0, X1, Y1 float32 }

// Rect is an axis-aligned filled rectangle.
type Rect struct{ X, Y, W, H float32 }

// Dot is one point of the guide trail.
type Dot struct{ X, Y float32 }

// Label is a line of text anchored at its top-left corner.
type Label struct {
	Text string
	X, Y float64
	Size float64
	Tone Tone
}

// Tone selects a label colour.
type Tone int

const (
	ToneText Tone = iota
	ToneHint
	ToneSolved
)

// Scene is everything needed to draw one frame.
type Scene struct {
	Walls  []Line
	Goal   Rect
	Player Rect
	Trail  []Dot
	HUD    []Label

	// Solved frames are dimmed and carry the end screen labels.
	Solved    bool
	EndScreen []Label
}

// Build lays out snap on a width x height screen.
func Build(snap service.Snapshot, width, height int) Scene {
	g := snap.GoalRect()
	sc := Scene{
		Goal: Rect{X: float32(g.Min.X), Y: float32(g.Min.Y), W: float32(g.Dx()), H: float32(g.Dy())},
		Player: Rect{
			X: float32(snap.Player.Min.X),
			Y: float32(snap.Player.Min.Y),
			W: float32(snap.Player.Dx()),
			H: float32(snap.Player.Dy()),
		},
		Trail: TrailDots(snap.Path, snap.TileSize, TrailSpacing),
		HUD: []Label{
			{Text: "Time: " + snap.Clock, X: 20, Y: 20, Size: SizeSmall, Tone: ToneText},
			{Text: "Next: " + snap.Next, X: float64(width)/2 - 100, Y: 20, Size: SizeMedium, Tone: ToneHint},
			{Text: fmt.Sprintf("%d%%", snap.Percent), X: float64(width) - 100, Y: 20, Size: SizeSmall, Tone: ToneText},
		},
		Solved: snap.Finished,
	}
	if snap.Maze != nil {
		sc.Walls = WallLines(snap.Maze, snap.TileSize)
	}

	if snap.Finished {
		cx, cy := float64(width)/2, float64(height)/2
		sc.EndScreen = []Label{
			{Text: "MAZE SOLVED!", X: cx - 200, Y: cy - 80, Size: SizeLarge, Tone: ToneSolved},
			{Text: "Time: " + snap.Clock, X: cx - 110, Y: cy + 10, Size: SizeMedium, Tone: ToneSolved},
			{Text: "Press R to restart", X: cx - 130, Y: cy + 90, Size: SizeSmall, Tone: ToneText},
		}
	}
	return sc
}

// WallLines returns one segment per wall. Shared walls are emitted once, from
// the cell above or to the left.
func WallLines(g game.Grid, tile int) []Line {
	t := float32(tile)
	var lines []Line
	for row := range g.Height() {
		for col := range g.Width() {
			pos := game.CellPosition{Col: col, Row: row}
			x, y := float32(col)*t, float32(row)*t

			if row == 0 && g.HasWall(pos, game.Up) {
				lines = append(lines, Line{x, y, x + t, y})
			}
			if col == 0 && g.HasWall(pos, game.Left) {
				lines = append(lines, Line{x, y, x, y + t})
			}
			if g.HasWall(pos, game.Right) {
				lines = append(lines, Line{x + t, y, x + t, y + t})
			}
			if g.HasWall(pos, game.Down) {
				lines = append(lines, Line{x, y + t, x + t, y + t})
			}
		}
	}
	return lines
}

// TrailDots spreads dots every spacing pixels along the segments joining the
// centres of consecutive path cells.
func TrailDots(path game.Path, tile int, spacing float64) []Dot {
	if len(path) < 2 || spacing <= 0 {
		return nil
	}

	half := float64(tile) / 2
	centre := func(p game.CellPosition) (float64, float64) {
		return float64(p.Col*tile) + half, float64(p.Row*tile) + half
	}

	var dots []Dot
	for k := 1; k < len(path); k++ {
		x0, y0 := centre(path[k-1])
		x1, y1 := centre(path[k])
		n := int(math.Hypot(x1-x0, y1-y0) / spacing)
		for j := range n {
			f := float64(j) / float64(n)
			dots = append(dots, Dot{X: float32(x0 + f*(x1-x0)), Y: float32(y0 + f*(y1-y0))})
		}
	}
	return dots
}
