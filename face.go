package spincube

import "github.com/go-gl/mathgl/mgl32"

// Face identifies a rotatable layer of the puzzle in standard notation.
type Face string

const (
	FaceF Face = "F" // Front (+Z layer)
	FaceB Face = "B" // Back (-Z layer)
	FaceU Face = "U" // Up (+Y layer)
	FaceD Face = "D" // Down (-Y layer)
	FaceL Face = "L" // Left (-X layer)
	FaceR Face = "R" // Right (+X layer)
	FaceM Face = "M" // Middle slice (x=0, turns with L)
	FaceE Face = "E" // Equator slice (y=0, turns with D)
	FaceS Face = "S" // Standing slice (z=0, turns with F)
)

// Faces lists every rotatable face, outer faces first.
var Faces = []Face{FaceF, FaceB, FaceU, FaceD, FaceL, FaceR, FaceM, FaceE, FaceS}

// OuterFaces lists the six sticker-bearing faces.
var OuterFaces = []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}

// IsSlice reports whether f is one of the inner slices M, E or S.
func (f Face) IsSlice() bool {
	return f == FaceM || f == FaceE || f == FaceS
}

// Valid reports whether f is a known face name.
func (f Face) Valid() bool {
	switch f {
	case FaceF, FaceB, FaceU, FaceD, FaceL, FaceR, FaceM, FaceE, FaceS:
		return true
	}
	return false
}

// Axis returns the unit rotation axis for f. For outer faces this is the
// outward face normal; slices share the axis of the outer face they turn
// with (M with L, E with D, S with F), so direction semantics carry over.
//
// Axis panics on an unknown face: the face enumeration is fixed and a miss
// is a programming error that would silently desynchronize animation state
// if ignored.
func (f Face) Axis() mgl32.Vec3 {
	switch f {
	case FaceR:
		return mgl32.Vec3{1, 0, 0}
	case FaceL, FaceM:
		return mgl32.Vec3{-1, 0, 0}
	case FaceU:
		return mgl32.Vec3{0, 1, 0}
	case FaceD, FaceE:
		return mgl32.Vec3{0, -1, 0}
	case FaceF, FaceS:
		return mgl32.Vec3{0, 0, 1}
	case FaceB:
		return mgl32.Vec3{0, 0, -1}
	}
	panic("spincube: unknown face " + string(f))
}

// layerCoord returns the grid coordinate selecting f's layer: the axis index
// (0=x, 1=y, 2=z) and the coordinate value on that axis (-1, 0 or +1).
func (f Face) layerCoord() (axis int, value int) {
	switch f {
	case FaceR:
		return 0, 1
	case FaceL:
		return 0, -1
	case FaceM:
		return 0, 0
	case FaceU:
		return 1, 1
	case FaceD:
		return 1, -1
	case FaceE:
		return 1, 0
	case FaceF:
		return 2, 1
	case FaceB:
		return 2, -1
	case FaceS:
		return 2, 0
	}
	panic("spincube: unknown face " + string(f))
}

// pieceIndex maps a grid position to the canonical piece index used at
// construction: x-major over the {-1,0,+1} grid.
func pieceIndex(x, y, z int) int {
	return (x+1)*9 + (y+1)*3 + (z + 1)
}

// SolvedFaceIndices returns the nine piece indices belonging to f in the
// solved layout, ordered by grid position. The mapping is total over the 27
// home positions: every piece index lands in exactly three face bins (one
// per axis), the core piece only in the three slice bins.
//
// For a puzzle that has been turned, membership must be re-derived from the
// live piece positions (see Puzzle.FaceIndices); the solved table is only
// the t=0 special case.
func SolvedFaceIndices(f Face) [9]int {
	axis, value := f.layerCoord()
	var out [9]int
	n := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				coord := [3]int{x, y, z}
				if coord[axis] == value {
					out[n] = pieceIndex(x, y, z)
					n++
				}
			}
		}
	}
	return out
}

// netBasis returns the in-plane right and down directions used to lay out
// f's stickers in a flat net, matching the standard orientation (white up,
// green front). Outer faces only.
func netBasis(f Face) (right, down mgl32.Vec3) {
	switch f {
	case FaceU:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}
	case FaceD:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}
	case FaceF:
		return mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, -1, 0}
	case FaceB:
		return mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, -1, 0}
	case FaceR:
		return mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, -1, 0}
	case FaceL:
		return mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, -1, 0}
	}
	panic("spincube: no net basis for face " + string(f))
}
