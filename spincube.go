// Package spincube implements an interactive 3x3x3 cube puzzle engine:
// a 27-piece geometric cube model, a frame-driven turn animator, and the
// orientation bookkeeping that keeps the puzzle consistent across any
// number of quarter turns.
//
// # Model
//
// The puzzle is 27 pieces laid out on a {-1,0,+1} grid. Each piece keeps
// its home grid position (never mutated) and a cumulative unit quaternion
// orientation. Completed turns compose a world-space 90 degree rotation
// into the orientation of each affected piece; a piece's current grid
// position is always derivable by rotating its home position.
//
// # Quick Start
//
// Drive the puzzle from any frame loop:
//
//	p := spincube.New()
//
//	// on key press
//	p.Turn(spincube.FaceR, spincube.CW)
//
//	// once per frame
//	p.Advance(dt)
//	p.Render(sink, 1) // sink receives one 4x4 world transform per piece
//
// While a turn is animating, further input is rejected with
// ErrTurnInProgress; the active slice rotates smoothly and the other 18
// pieces hold their committed transforms.
//
// # Immediate Moves
//
// For non-interactive use the animation can be skipped entirely:
//
//	p := spincube.New()
//	moves, _ := spincube.ParseMoves("R U R' U'")
//	for _, m := range moves {
//	    p.Apply(m)
//	}
//	fmt.Println(p.IsSolved())
//
// # Faces
//
// The six outer faces F, B, U, D, L, R turn their nine-piece layer; the
// inner slices M, E and S turn the zero-coordinate band of their axis.
// Direction is signed: CW is a quarter turn clockwise as seen from
// outside the face, CCW the reverse.
package spincube
