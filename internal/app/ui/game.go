// Package ui runs the desktop frontend: an ebiten window that drives the
// puzzle's frame loop, forwards keyboard input, and rasterizes the
// software-projected polygons.
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ederwin/spincube"
	"github.com/ederwin/spincube/internal/app/render"
)

const orbitStep = 0.035 // radians per frame while an arrow key is held

// faceKeys is the fixed key layout: the face letter turns clockwise, with
// shift held counter-clockwise.
var faceKeys = map[ebiten.Key]spincube.Face{
	ebiten.KeyF: spincube.FaceF,
	ebiten.KeyB: spincube.FaceB,
	ebiten.KeyU: spincube.FaceU,
	ebiten.KeyD: spincube.FaceD,
	ebiten.KeyL: spincube.FaceL,
	ebiten.KeyR: spincube.FaceR,
	ebiten.KeyM: spincube.FaceM,
	ebiten.KeyE: spincube.FaceE,
	ebiten.KeyS: spincube.FaceS,
}

var background = color.RGBA{18, 18, 22, 255}

// Game is the ebiten frontend. It owns the frame clock: Update measures
// wall-clock dt and advances the puzzle, Draw rasterizes the scene
// snapshot. Turn state itself lives in the puzzle core.
type Game struct {
	puzzle *spincube.Puzzle
	scene  *render.Scene

	last    time.Time
	pending spincube.Move
	onTurn  func(spincube.Move)

	white *ebiten.Image
}

// New creates the frontend for a puzzle. onTurn, if non-nil, is called
// once per finalized turn (used for session recording); pass nil to skip.
func New(p *spincube.Puzzle, onTurn func(spincube.Move)) *Game {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &Game{
		puzzle: p,
		scene:  render.NewScene(p),
		onTurn: onTurn,
		white:  white,
	}
}

// Run opens the window and blocks until it closes.
func (g *Game) Run() error {
	ebiten.SetWindowTitle("spincube")
	ebiten.SetWindowSize(900, 700)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
	}
	dt := float32(now.Sub(g.last).Seconds())
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.puzzle.Reset()
		g.pending = spincube.Move{}
	}

	g.pollOrbit()
	g.pollTurns()

	if g.puzzle.Advance(dt) {
		if g.onTurn != nil {
			g.onTurn(g.pending)
		}
		g.pending = spincube.Move{}
	}
	return nil
}

func (g *Game) pollOrbit() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.scene.Orbit(-orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.scene.Orbit(orbitStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.scene.Orbit(0, orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.scene.Orbit(0, -orbitStep)
	}
}

func (g *Game) pollTurns() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	for key, face := range faceKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		turn := spincube.CW
		if shift {
			turn = spincube.CCW
		}
		m := spincube.Move{Face: face, Turn: turn}
		// Input while a turn is animating is dropped by the core.
		if err := g.puzzle.Input(m); err == nil {
			g.pending = m
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	for _, poly := range g.scene.Snapshot() {
		g.fillQuad(screen, poly)
	}

	status := "f/b/u/d/l/r/m/e/s turn (shift reverses) | arrows orbit | backspace reset | q quit"
	if face, ok := g.puzzle.ActiveFace(); ok {
		status = "turning " + string(face) + " | " + status
	} else if g.puzzle.IsSolved() {
		status = "solved | " + status
	}
	ebitenutil.DebugPrint(screen, status)
}

// fillQuad rasterizes one polygon as two triangles over a white texture,
// the piece mesh's fixed triangle-list topology.
func (g *Game) fillQuad(screen *ebiten.Image, poly render.Poly) {
	cr := float32(poly.Fill.R) / 255
	cg := float32(poly.Fill.G) / 255
	cb := float32(poly.Fill.B) / 255

	vs := make([]ebiten.Vertex, 4)
	for i, pt := range poly.Pts {
		vs[i] = ebiten.Vertex{
			DstX:   pt.X(),
			DstY:   pt.Y(),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: 1,
		}
	}
	is := []uint16{0, 1, 2, 0, 2, 3}
	screen.DrawTriangles(vs, is, g.white, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
