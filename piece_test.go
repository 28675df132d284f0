package spincube

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewPieceStickerCounts(t *testing.T) {
	cases := []struct {
		x, y, z int
		want    int
	}{
		{1, 1, 1, 3},  // corner
		{1, 1, 0, 2},  // edge
		{1, 0, 0, 1},  // center
		{0, 0, 0, 0},  // hidden core
		{-1, -1, 1, 3},
	}
	for _, c := range cases {
		p := newPiece(c.x, c.y, c.z)
		if got := p.StickerCount(); got != c.want {
			t.Errorf("piece (%d,%d,%d) has %d stickers, want %d", c.x, c.y, c.z, got, c.want)
		}
	}
}

func TestCommitMovesGridPosition(t *testing.T) {
	// A clockwise quarter turn about +x carries the front-up position to
	// up-back.
	p := newPiece(1, 1, 1)
	p.Commit(mgl32.Vec3{1, 0, 0}, 1)
	if got := p.GridPosition(); got != [3]int{1, 1, -1} {
		t.Errorf("GridPosition = %v, want [1 1 -1]", got)
	}
}

func TestCommitFourTimesRestoresGridPosition(t *testing.T) {
	p := newPiece(1, -1, 0)
	for i := 0; i < 4; i++ {
		p.Commit(mgl32.Vec3{1, 0, 0}, 1)
	}
	if got := p.GridPosition(); got != [3]int{1, -1, 0} {
		t.Errorf("GridPosition after four quarter turns = %v, want home", got)
	}
	if math.Abs(float64(p.Orientation().Norm())-1) > 1e-6 {
		t.Errorf("orientation norm drifted: %v", p.Orientation().Norm())
	}
}

func TestCommitKeepsUnitNorm(t *testing.T) {
	p := newPiece(1, 1, -1)
	axes := []mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i := 0; i < 300; i++ {
		p.Commit(axes[i%3], 1-2*(i%2))
	}
	if math.Abs(float64(p.Orientation().Norm())-1) > 1e-5 {
		t.Errorf("orientation norm drifted after 300 commits: %v", p.Orientation().Norm())
	}
}

func TestColorTowardFollowsRotation(t *testing.T) {
	// The down-front-right corner starts with green facing front; after a
	// clockwise R turn the green sticker faces up.
	p := newPiece(1, -1, 1)
	if c, ok := p.colorToward(mgl32.Vec3{0, 0, 1}); !ok || c != Green {
		t.Fatalf("front sticker = %v (ok=%v), want green", c, ok)
	}

	p.Commit(mgl32.Vec3{1, 0, 0}, 1)

	if c, ok := p.colorToward(mgl32.Vec3{0, 1, 0}); !ok || c != Green {
		t.Errorf("after R the green sticker should face up, got %v (ok=%v)", c, ok)
	}
	if _, ok := p.colorToward(mgl32.Vec3{0, 0, 1}); ok {
		t.Error("nothing should face front on this piece after R")
	}
}

func TestTransformPlacesPieceAtHome(t *testing.T) {
	p := newPiece(1, 0, -1)
	world := p.Transform(2)
	origin := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, world)
	want := mgl32.Vec3{2, 0, -2}
	if origin.Sub(want).Len() > 1e-5 {
		t.Errorf("piece origin = %v, want %v", origin, want)
	}
}

func TestTransformCarriesPieceAroundCenter(t *testing.T) {
	// Orientation rotates the translated piece about the puzzle center,
	// so a committed turn changes where the piece sits, not just how it
	// faces.
	p := newPiece(1, 1, 1)
	p.Commit(mgl32.Vec3{1, 0, 0}, 1)
	origin := mgl32.TransformCoordinate(mgl32.Vec3{0, 0, 0}, p.Transform(1))
	want := mgl32.Vec3{1, 1, -1}
	if origin.Sub(want).Len() > 1e-5 {
		t.Errorf("piece origin = %v, want %v", origin, want)
	}
}

func TestLiveTransformMatchesCommitAtNinety(t *testing.T) {
	// The live transform at -90 degrees must agree with the committed
	// quarter turn, so the finalize step causes no visual jump.
	live := newPiece(1, 0, 1)
	world := live.LiveTransform(mgl32.Vec3{1, 0, 0}, -90, 1)

	committed := newPiece(1, 0, 1)
	committed.Commit(mgl32.Vec3{1, 0, 0}, 1)
	want := committed.Transform(1)

	for i := 0; i < 16; i++ {
		if math.Abs(float64(world[i]-want[i])) > 1e-5 {
			t.Fatalf("live transform at 90 degrees differs from committed turn\nlive: %v\nwant: %v", world, want)
		}
	}
}
