package spincube

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// sticker is one colored outer facet of a piece. The normal is in the
// piece's home frame; the current outward direction is the normal rotated
// by the piece's cumulative orientation.
type sticker struct {
	normal mgl32.Vec3
	color  Color
}

// Piece is one of the 27 sub-cubes. Its home grid position is fixed at
// construction; every completed turn composes a world-space quarter-turn
// rotation into the cumulative orientation instead of moving the piece.
type Piece struct {
	home        mgl32.Vec3
	orientation mgl32.Quat
	stickers    []sticker
}

// newPiece creates a piece at grid position (x, y, z), each coordinate in
// {-1, 0, +1}, with identity orientation and stickers on every outer facet.
func newPiece(x, y, z int) Piece {
	p := Piece{
		home:        mgl32.Vec3{float32(x), float32(y), float32(z)},
		orientation: mgl32.QuatIdent(),
	}
	facets := []struct {
		coord  int
		value  int
		normal mgl32.Vec3
		color  Color
	}{
		{x, 1, mgl32.Vec3{1, 0, 0}, Red},
		{x, -1, mgl32.Vec3{-1, 0, 0}, Orange},
		{y, 1, mgl32.Vec3{0, 1, 0}, White},
		{y, -1, mgl32.Vec3{0, -1, 0}, Yellow},
		{z, 1, mgl32.Vec3{0, 0, 1}, Green},
		{z, -1, mgl32.Vec3{0, 0, -1}, Blue},
	}
	for _, f := range facets {
		if f.coord == f.value {
			p.stickers = append(p.stickers, sticker{normal: f.normal, color: f.color})
		}
	}
	return p
}

// Home returns the piece's fixed home grid position.
func (p *Piece) Home() mgl32.Vec3 {
	return p.home
}

// Orientation returns the cumulative orientation quaternion.
func (p *Piece) Orientation() mgl32.Quat {
	return p.orientation
}

// Transform returns the piece's committed world transform: translation to
// the home position, then the cumulative orientation rotating the piece
// about the puzzle center. spacing scales the grid step so frontends can
// leave a visible gap between pieces.
func (p *Piece) Transform(spacing float32) mgl32.Mat4 {
	t := mgl32.Translate3D(p.home.X()*spacing, p.home.Y()*spacing, p.home.Z()*spacing)
	return p.orientation.Mat4().Mul4(t)
}

// LiveTransform returns the committed transform with an in-progress
// rotation of angleDeg about axis applied on top, carrying the piece
// partway through the active turn.
func (p *Piece) LiveTransform(axis mgl32.Vec3, angleDeg, spacing float32) mgl32.Mat4 {
	live := mgl32.HomogRotate3D(mgl32.DegToRad(angleDeg), axis)
	return live.Mul4(p.Transform(spacing))
}

// Commit permanently composes quarterTurns 90 degree rotations about the
// world-space axis into the cumulative orientation. A positive quarter turn
// is clockwise as seen from outside the face, which is a negative rotation
// about the outward normal in a right-handed frame. The result is
// re-normalized so the unit-norm invariant holds unconditionally.
func (p *Piece) Commit(axis mgl32.Vec3, quarterTurns int) {
	q := mgl32.QuatRotate(mgl32.DegToRad(-90*float32(quarterTurns)), axis)
	p.orientation = q.Mul(p.orientation).Normalize()
}

// GridPosition returns the piece's current grid position: the home
// position rotated by the cumulative orientation, snapped to {-1, 0, +1}
// per axis. After any number of completed turns the rotated coordinates
// are within float rounding of integers, so the snap is exact.
func (p *Piece) GridPosition() [3]int {
	v := p.orientation.Rotate(p.home)
	return [3]int{
		int(math.Round(float64(v.X()))),
		int(math.Round(float64(v.Y()))),
		int(math.Round(float64(v.Z()))),
	}
}

// colorToward returns the color of the sticker currently facing the given
// outward direction, if the piece has one.
func (p *Piece) colorToward(outward mgl32.Vec3) (Color, bool) {
	for _, s := range p.stickers {
		if p.orientation.Rotate(s.normal).Dot(outward) > 0.9 {
			return s.color, true
		}
	}
	return 0, false
}

// StickerCount returns the number of colored facets (3 for corners, 2 for
// edges, 1 for centers, 0 for the hidden core).
func (p *Piece) StickerCount() int {
	return len(p.stickers)
}

// Stickers returns the piece's stickers as (current outward direction,
// color) pairs, for renderers that draw colored facets.
func (p *Piece) Stickers() []StickerInfo {
	out := make([]StickerInfo, len(p.stickers))
	for i, s := range p.stickers {
		out[i] = StickerInfo{
			HomeNormal: s.normal,
			Outward:    p.orientation.Rotate(s.normal),
			Color:      s.color,
		}
	}
	return out
}

// StickerInfo describes one colored facet of a piece.
type StickerInfo struct {
	HomeNormal mgl32.Vec3 // facet normal in the piece's home frame
	Outward    mgl32.Vec3 // normal rotated by the current orientation
	Color      Color
}
