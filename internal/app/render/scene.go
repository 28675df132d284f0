// Package render projects the puzzle's piece transforms into 2D polygons.
// It is a small software renderer: a fixed orbit camera, per-facet quads,
// backface culling and a painter's sort. Frontends only have to fill the
// polygons it emits; no GPU pipeline is involved.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/ederwin/spincube"
)

// PieceSpacing is the grid step between piece centers. Slightly above the
// piece size so the gaps read as separate pieces.
const PieceSpacing float32 = 1.06

// pieceHalf is half the edge length of one piece cube.
const pieceHalf float32 = 0.5

// Poly is one filled screen-space quad.
type Poly struct {
	Pts  [4]mgl32.Vec2
	Fill color.RGBA
}

// Frame is the polygon list for one rendered frame, back to front.
type Frame []Poly

// Camera orbits the puzzle center at a fixed distance.
type Camera struct {
	Yaw      float32 // radians around the y axis
	Pitch    float32 // radians above the horizon
	Distance float32
	FOV      float32 // vertical field of view, radians
}

// DefaultCamera frames the whole puzzle from the front-upper-right.
func DefaultCamera() Camera {
	return Camera{
		Yaw:      mgl32.DegToRad(30),
		Pitch:    mgl32.DegToRad(25),
		Distance: 9,
		FOV:      mgl32.DegToRad(40),
	}
}

func (c Camera) eye() mgl32.Vec3 {
	sy, cy := math.Sincos(float64(c.Yaw))
	sp, cp := math.Sincos(float64(c.Pitch))
	return mgl32.Vec3{
		c.Distance * float32(cp*sy),
		c.Distance * float32(sp),
		c.Distance * float32(cp*cy),
	}
}

// view returns the camera's view matrix.
func (c Camera) view() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye(), mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
}

// quad is a world-space facet waiting to be sorted and projected.
type quad struct {
	pts   [4]mgl32.Vec3
	depth float32 // view-space depth of the centroid
	fill  color.RGBA
}

// Scene adapts a Puzzle to screen-space polygons. It implements
// spincube.DrawSink: each DrawPiece call expands the piece's fixed cube
// mesh under the given world transform.
type Scene struct {
	puzzle *spincube.Puzzle
	cam    Camera
	width  int
	height int

	view mgl32.Mat4
	proj mgl32.Mat4
	eye  mgl32.Vec3

	quads []quad
}

// NewScene creates a scene over the given puzzle with the default camera.
func NewScene(p *spincube.Puzzle) *Scene {
	return &Scene{puzzle: p, cam: DefaultCamera(), width: 1, height: 1}
}

// SetViewport sets the output size in pixels.
func (s *Scene) SetViewport(w, h int) {
	if w > 0 && h > 0 {
		s.width, s.height = w, h
	}
}

// Orbit rotates the camera by the given yaw and pitch deltas (radians).
// Pitch is clamped short of the poles to keep the view matrix stable.
func (s *Scene) Orbit(dyaw, dpitch float32) {
	s.cam.Yaw += dyaw
	s.cam.Pitch += dpitch
	limit := mgl32.DegToRad(85)
	if s.cam.Pitch > limit {
		s.cam.Pitch = limit
	}
	if s.cam.Pitch < -limit {
		s.cam.Pitch = -limit
	}
}

// Camera returns the current camera.
func (s *Scene) Camera() Camera {
	return s.cam
}

// Snapshot renders the puzzle's current state into a back-to-front polygon
// list for the current viewport.
func (s *Scene) Snapshot() Frame {
	s.quads = s.quads[:0]
	s.eye = s.cam.eye()
	s.view = s.cam.view()
	aspect := float32(s.width) / float32(s.height)
	s.proj = mgl32.Perspective(s.cam.FOV, aspect, 0.1, 100)

	s.puzzle.Render(s, PieceSpacing)

	sort.Slice(s.quads, func(i, j int) bool {
		return s.quads[i].depth > s.quads[j].depth
	})

	vp := s.proj.Mul4(s.view)
	frame := make(Frame, 0, len(s.quads))
	for _, q := range s.quads {
		poly := Poly{Fill: q.fill}
		behind := false
		for i, p := range q.pts {
			clip := vp.Mul4x1(p.Vec4(1))
			if clip.W() <= 0 {
				behind = true
				break
			}
			ndc := clip.Vec3().Mul(1 / clip.W())
			poly.Pts[i] = mgl32.Vec2{
				(ndc.X() + 1) / 2 * float32(s.width),
				(1 - ndc.Y()) / 2 * float32(s.height),
			}
		}
		if behind {
			continue
		}
		frame = append(frame, poly)
	}
	return frame
}

// DrawPiece receives one piece's world transform from the puzzle and
// expands it into up to six facet quads. Facets turned away from the
// camera are culled here.
func (s *Scene) DrawPiece(index int, world mgl32.Mat4) {
	colors := facetColors(s.puzzle.Piece(index))
	for f, facet := range cubeFacets {
		var pts [4]mgl32.Vec3
		var centroid mgl32.Vec3
		for i, v := range facet.corners {
			w := mgl32.TransformCoordinate(v, world)
			pts[i] = w
			centroid = centroid.Add(w)
		}
		centroid = centroid.Mul(0.25)

		normal := mgl32.TransformNormal(facet.normal, world)
		if normal.Dot(s.eye.Sub(centroid)) <= 0 {
			continue
		}

		viewPos := mgl32.TransformCoordinate(centroid, s.view)
		s.quads = append(s.quads, quad{
			pts:   pts,
			depth: -viewPos.Z(),
			fill:  colors[f],
		})
	}
}

// cubeFacets is the fixed piece mesh: six quads around the origin, corners
// wound counter-clockwise seen from outside.
var cubeFacets = [6]struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}{
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{pieceHalf, -pieceHalf, -pieceHalf}, {pieceHalf, pieceHalf, -pieceHalf}, {pieceHalf, pieceHalf, pieceHalf}, {pieceHalf, -pieceHalf, pieceHalf}}},
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-pieceHalf, -pieceHalf, pieceHalf}, {-pieceHalf, pieceHalf, pieceHalf}, {-pieceHalf, pieceHalf, -pieceHalf}, {-pieceHalf, -pieceHalf, -pieceHalf}}},
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-pieceHalf, pieceHalf, -pieceHalf}, {-pieceHalf, pieceHalf, pieceHalf}, {pieceHalf, pieceHalf, pieceHalf}, {pieceHalf, pieceHalf, -pieceHalf}}},
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-pieceHalf, -pieceHalf, pieceHalf}, {-pieceHalf, -pieceHalf, -pieceHalf}, {pieceHalf, -pieceHalf, -pieceHalf}, {pieceHalf, -pieceHalf, pieceHalf}}},
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-pieceHalf, -pieceHalf, pieceHalf}, {pieceHalf, -pieceHalf, pieceHalf}, {pieceHalf, pieceHalf, pieceHalf}, {-pieceHalf, pieceHalf, pieceHalf}}},
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{pieceHalf, -pieceHalf, -pieceHalf}, {-pieceHalf, -pieceHalf, -pieceHalf}, {-pieceHalf, pieceHalf, -pieceHalf}, {pieceHalf, pieceHalf, -pieceHalf}}},
}

// interior is the fill for facets without a sticker.
var interior = color.RGBA{30, 30, 34, 255}

// Palette maps sticker colors to their display fills.
var Palette = map[spincube.Color]color.RGBA{
	spincube.White:  {240, 240, 240, 255},
	spincube.Yellow: {240, 215, 0, 255},
	spincube.Green:  {0, 158, 96, 255},
	spincube.Blue:   {0, 101, 189, 255},
	spincube.Red:    {196, 30, 58, 255},
	spincube.Orange: {255, 128, 0, 255},
}

// facetColors resolves the fill of each local cube facet from the piece's
// stickers. Sticker normals are in the piece's home frame, matching the
// local mesh; the world transform carries both together.
func facetColors(p *spincube.Piece) [6]color.RGBA {
	var out [6]color.RGBA
	for i := range out {
		out[i] = interior
	}
	for _, st := range p.Stickers() {
		for f, facet := range cubeFacets {
			if st.HomeNormal == facet.normal {
				out[f] = Palette[st.Color]
			}
		}
	}
	return out
}
