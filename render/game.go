// Package render is the ebiten frontend: it feeds keyboard input into the game
// loop, advances it once per ebiten update and draws the latest snapshot.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"github.com/beka-birhanu/vinom-posemaze/render/scene"
	"github.com/beka-birhanu/vinom-posemaze/service"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorWall       = color.RGBA{255, 140, 0, 255}
	colorGoal       = color.RGBA{255, 0, 0, 255}
	colorPlayer     = color.RGBA{0, 255, 255, 255}
	colorTrail      = color.RGBA{50, 205, 50, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorSolved     = color.RGBA{255, 255, 0, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 200}
)

// Game implements ebiten.Game on top of a service.Loop.
type Game struct {
	ctx    context.Context
	loop   *service.Loop
	width  int
	height int
	font   *text.GoTextFaceSource
}

// New creates the frontend for a width x height window. The game stops when ctx is cancelled.
func New(ctx context.Context, loop *service.Loop, width, height int) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading HUD font: %w", err)
	}

	return &Game{
		ctx:    ctx,
		loop:   loop,
		width:  width,
		height: height,
		font:   src,
	}, nil
}

// Update reads the keyboard and advances the loop by one tick.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	keys := scene.Keys{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
	if intent, ok := keys.Intent(); ok {
		g.loop.Input(intent)
	}

	if g.loop.Snapshot().Finished && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.loop.RequestRestart()
	}

	g.loop.Step(g.ctx)
	return nil
}

// Draw paints the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	sc := scene.Build(g.loop.Snapshot(), g.width, g.height)

	for _, w := range sc.Walls {
		vector.StrokeLine(screen, w.X0, w.Y0, w.X1, w.Y1, scene.WallWidth, colorWall, false)
	}
	vector.DrawFilledRect(screen, sc.Goal.X, sc.Goal.Y, sc.Goal.W, sc.Goal.H, colorGoal, false)
	vector.DrawFilledRect(screen, sc.Player.X, sc.Player.Y, sc.Player.W, sc.Player.H, colorPlayer, false)
	for _, d := range sc.Trail {
		vector.DrawFilledCircle(screen, d.X, d.Y, 2, colorTrail, true)
	}
	g.drawLabels(screen, sc.HUD)

	if sc.Solved {
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), colorOverlay, false)
		g.drawLabels(screen, sc.EndScreen)
	}
}

func (g *Game) drawLabels(screen *ebiten.Image, labels []scene.Label) {
	for _, l := range labels {
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.X, l.Y)
		op.ColorScale.ScaleWithColor(toneColor(l.Tone))
		text.Draw(screen, l.Text, &text.GoTextFace{Source: g.font, Size: l.Size}, op)
	}
}

func toneColor(t scene.Tone) color.Color {
	switch t {
	case scene.ToneHint:
		return colorTrail
	case scene.ToneSolved:
		return colorSolved
	default:
		return colorText
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
