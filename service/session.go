package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-posemaze/game"
	"github.com/beka-birhanu/vinom-posemaze/game/maze"
	"github.com/beka-birhanu/vinom-posemaze/game/navigation"
	"github.com/beka-birhanu/vinom-posemaze/gesture"
	"github.com/beka-birhanu/vinom-posemaze/service/i"
)

const (
	defaultWallThickness = 8
	goalInset            = 10
	recordTimeout        = 5 * time.Second
)

var (
	ErrInvalidGrid   = errors.New("grid must have at least one column and one row")
	ErrInvalidPlayer = errors.New("player must be positive, move at least one pixel and fit inside a tile")
)

// SessionConfig parameterizes a GameSession. Lengths are in pixels.
type SessionConfig struct {
	Cols, Rows    int
	TileSize      int
	PlayerSize    int
	PlayerSpeed   int
	WallThickness int // zero uses 8

	Seed        int64         // zero seeds from the clock
	MazeOptions []maze.Option // applied after the seed
	Milestones  []int         // zero uses navigation.DefaultMilestones

	Tracker     *CompletionTracker // optional
	Actuator    i.Actuator         // optional
	Logger      i.Logger
	Clock       func() time.Time
	OnMilestone func(percent int) // optional cue hook
}

// Snapshot is an immutable view of one tick, safe to hand to other goroutines.
type Snapshot struct {
	Version    int64             `json:"version"`
	Cols       int               `json:"cols"`
	Rows       int               `json:"rows"`
	TileSize   int               `json:"tileSize"`
	Maze       *maze.Maze        `json:"-"`
	MazeText   string            `json:"maze"`
	Player     image.Rectangle   `json:"-"`
	PlayerCell game.CellPosition `json:"player"`
	Goal       game.CellPosition `json:"goal"`
	Path       game.Path         `json:"path"`
	Next       string            `json:"next"`
	Percent    int               `json:"percent"`
	Elapsed    time.Duration     `json:"-"`
	Clock      string            `json:"elapsed"`
	Finished   bool              `json:"finished"`
}

// GameSession owns one maze run: the grid, the player square, the intent that
// moves it, the guidance and the stopwatch. It is driven from a single
// goroutine; Snapshot results may be shared freely.
type GameSession struct {
	cfg SessionConfig
	rnd *rand.Rand

	maze       *maze.Maze
	mazeText   string
	goal       game.CellPosition
	goalRect   image.Rectangle
	walls      []image.Rectangle
	assistant  *navigation.Assistant
	milestones *navigation.Milestones
	stopwatch  *game.Stopwatch

	player   image.Rectangle
	intent   game.Intent
	finished bool
	hint     game.Direction
	hinted   bool
	version  int64

	pending sync.WaitGroup
}

// NewGameSession validates cfg and starts the first run.
func NewGameSession(cfg SessionConfig) (*GameSession, error) {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return nil, ErrInvalidGrid
	}
	if cfg.WallThickness <= 0 {
		cfg.WallThickness = defaultWallThickness
	}
	if cfg.PlayerSize <= 0 || cfg.PlayerSpeed <= 0 || cfg.PlayerSize+2*cfg.WallThickness >= cfg.TileSize {
		return nil, ErrInvalidPlayer
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = cfg.Clock().UnixNano()
	}

	s := &GameSession{
		cfg:        cfg,
		rnd:        rand.New(rand.NewSource(seed)),
		milestones: navigation.NewMilestones(cfg.Milestones...),
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// Restart generates a new maze and puts the player back at the start.
func (s *GameSession) Restart() error {
	opts := append([]maze.Option{maze.WithRand(s.rnd)}, s.cfg.MazeOptions...)
	m, err := maze.Generate(s.cfg.Cols, s.cfg.Rows, opts...)
	if err != nil {
		return fmt.Errorf("generating maze: %w", err)
	}

	tile := s.cfg.TileSize
	goal := game.CellPosition{Col: s.cfg.Cols - 1, Row: s.cfg.Rows - 1}
	start := game.CellPosition{}

	assistant, err := navigation.New(m, start, goal, float64(tile))
	if err != nil {
		return err
	}

	s.maze = m
	s.mazeText = m.String()
	s.goal = goal
	s.goalRect = image.Rect(goal.Col*tile, goal.Row*tile, (goal.Col+1)*tile, (goal.Row+1)*tile)
	s.walls = wallRects(m, tile, s.cfg.WallThickness)
	s.assistant = assistant
	s.milestones.Reset()
	s.stopwatch = game.NewStopwatch(s.cfg.Clock)

	half := tile/2 - s.cfg.PlayerSize/2
	s.player = image.Rect(half, half, half+s.cfg.PlayerSize, half+s.cfg.PlayerSize)
	s.intent = game.Idle
	s.finished = false
	s.hinted = false
	s.version++

	s.sendHint()
	s.logInfo(fmt.Sprintf("new %dx%d maze, shortest route %d steps", s.cfg.Cols, s.cfg.Rows, assistant.TotalPath().Edges()))
	return nil
}

// SetIntent replaces the movement intent. It persists until replaced.
func (s *GameSession) SetIntent(intent game.Intent) {
	if s.finished {
		return
	}
	s.intent = intent
}

// ApplyGestures turns drained gesture events into intent changes, last event winning.
func (s *GameSession) ApplyGestures(events []gesture.Event) {
	for _, ev := range events {
		s.SetIntent(game.IntentFor(ev.Direction))
	}
}

// Intent returns the current movement intent.
func (s *GameSession) Intent() game.Intent {
	return s.intent
}

// Finished reports whether the goal has been reached.
func (s *GameSession) Finished() bool {
	return s.finished
}

// Tick advances the run by one frame.
func (s *GameSession) Tick(ctx context.Context) {
	if s.finished {
		return
	}
	s.version++

	s.move()

	center := s.player.Min.Add(s.player.Size().Div(2))
	s.assistant.Update(float64(center.X), float64(center.Y))

	for _, m := range s.milestones.Observe(s.assistant.CompletionPercent()) {
		s.logInfo(fmt.Sprintf("%d%% of the way there", m))
		if s.cfg.OnMilestone != nil {
			s.cfg.OnMilestone(m)
		}
	}

	if s.player.Overlaps(s.goalRect) {
		s.finish(ctx)
		return
	}
	s.sendHint()
}

func (s *GameSession) move() {
	d, ok := s.intent.Direction()
	if !ok {
		return
	}

	dx, dy := d.Delta()
	next := s.player.Add(image.Pt(dx*s.cfg.PlayerSpeed, dy*s.cfg.PlayerSpeed))
	for _, w := range s.walls {
		if next.Overlaps(w) {
			return
		}
	}
	s.player = next
}

func (s *GameSession) finish(ctx context.Context) {
	elapsed := s.stopwatch.Stop()
	s.finished = true
	s.intent = game.Idle
	s.send('F')
	s.logInfo(fmt.Sprintf("maze completed in %s", s.stopwatch.Format()))

	if s.cfg.Tracker == nil {
		return
	}
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
		defer cancel()
		_ = s.cfg.Tracker.Record(ctx, elapsed.Seconds())
	}()
}

// sendHint forwards the suggested direction to the actuator when it changes.
func (s *GameSession) sendHint() {
	d, ok := s.assistant.NextDirection()
	if !ok || (s.hinted && d == s.hint) {
		return
	}
	s.hint, s.hinted = d, true
	s.send(d.Command())
}

func (s *GameSession) send(cmd byte) {
	if s.cfg.Actuator == nil {
		return
	}
	_ = s.cfg.Actuator.Send(cmd)
}

// Wait blocks until pending run records are written.
func (s *GameSession) Wait() {
	s.pending.Wait()
}

// Snapshot captures the current state.
func (s *GameSession) Snapshot() Snapshot {
	next := ""
	if d, ok := s.assistant.NextDirection(); ok && !s.finished {
		next = d.String()
	}

	percent := s.assistant.CompletionPercent()
	if s.finished {
		percent = 100
	}

	center := s.player.Min.Add(s.player.Size().Div(2))
	return Snapshot{
		Version:    s.version,
		Cols:       s.cfg.Cols,
		Rows:       s.cfg.Rows,
		TileSize:   s.cfg.TileSize,
		Maze:       s.maze,
		MazeText:   s.mazeText,
		Player:     s.player,
		PlayerCell: navigation.CellAt(float64(center.X), float64(center.Y), float64(s.cfg.TileSize)),
		Goal:       s.goal,
		Path:       append(game.Path(nil), s.assistant.CurrentPath()...),
		Next:       next,
		Percent:    percent,
		Elapsed:    s.stopwatch.Elapsed(),
		Clock:      s.stopwatch.Format(),
		Finished:   s.finished,
	}
}

// GoalRect returns the drawn goal square, inset from its tile.
func (s Snapshot) GoalRect() image.Rectangle {
	t := s.TileSize
	return image.Rect(s.Goal.Col*t+goalInset, s.Goal.Row*t+goalInset, (s.Goal.Col+1)*t-goalInset, (s.Goal.Row+1)*t-goalInset)
}

func (s *GameSession) logInfo(msg string) {
	if s.cfg.Logger != nil {
		s.cfg.Logger.Info(msg)
	}
}

// wallRects returns a solid strip along each wall, thick pixels deep, inside
// the cell for top and left walls and beyond it for right and bottom walls.
func wallRects(m *maze.Maze, tile, thick int) []image.Rectangle {
	var rects []image.Rectangle
	for row := range m.Height() {
		for col := range m.Width() {
			pos := game.CellPosition{Col: col, Row: row}
			x, y := col*tile, row*tile
			if m.HasWall(pos, game.Up) {
				rects = append(rects, image.Rect(x, y, x+tile, y+thick))
			}
			if m.HasWall(pos, game.Right) {
				rects = append(rects, image.Rect(x+tile, y, x+tile+thick, y+tile))
			}
			if m.HasWall(pos, game.Down) {
				rects = append(rects, image.Rect(x, y+tile, x+tile, y+tile+thick))
			}
			if m.HasWall(pos, game.Left) {
				rects = append(rects, image.Rect(x, y, x+thick, y+tile))
			}
		}
	}
	return rects
}
