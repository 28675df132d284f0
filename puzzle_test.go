package spincube

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// rotationsEqual compares two quaternions as rotations: q and -q encode the
// same rotation, so compare by the magnitude of their dot product.
func rotationsEqual(a, b mgl32.Quat) bool {
	d := float64(a.Dot(b))
	return math.Abs(math.Abs(d)-1) < 1e-4
}

// run steps the animation in fixed increments until the turn finalizes.
func run(t *testing.T, p *Puzzle, dt float32) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if p.Advance(dt) {
			return
		}
	}
	t.Fatal("turn never finalized")
}

func TestNewPuzzleIsSolved(t *testing.T) {
	p := New()
	if !p.IsSolved() {
		t.Error("New puzzle should be solved")
	}
	if p.Animating() {
		t.Error("New puzzle should be idle")
	}
}

func TestSingleTurnBreaksSolved(t *testing.T) {
	p := New()
	p.Apply(Move{Face: FaceR, Turn: CW})
	if p.IsSolved() {
		t.Error("Puzzle should not be solved after R")
	}
}

func TestFourTurnsReturnToSolved(t *testing.T) {
	for _, face := range Faces {
		p := New()
		initial := make([]mgl32.Quat, 27)
		for i := 0; i < 27; i++ {
			initial[i] = p.Piece(i).Orientation()
		}
		for i := 0; i < 4; i++ {
			p.Apply(Move{Face: face, Turn: CW})
		}
		if !p.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
		}
		for i := 0; i < 27; i++ {
			if !rotationsEqual(p.Piece(i).Orientation(), initial[i]) {
				t.Errorf("%v x 4: piece %d orientation did not return", face, i)
			}
		}
	}
}

func TestSexyMoveSixTimesReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	p := New()
	for i := 0; i < 6; i++ {
		p.ApplyNotation("R U R' U'")
	}
	if !p.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
	}
}

func TestDoubleTurnTwiceReturnsToSolved(t *testing.T) {
	p := New()
	p.Apply(Move{Face: FaceR, Turn: Double})
	p.Apply(Move{Face: FaceR, Turn: Double})
	if !p.IsSolved() {
		t.Error("R2 R2 should return to solved")
	}
}

func TestUntouchedPiecesBitIdentical(t *testing.T) {
	p := New()
	affected := p.FaceIndices(FaceR)
	initial := make([]mgl32.Quat, 27)
	for i := 0; i < 27; i++ {
		initial[i] = p.Piece(i).Orientation()
	}

	p.Apply(Move{Face: FaceR, Turn: CW})

	for i := 0; i < 27; i++ {
		if containsIndex(affected, i) {
			continue
		}
		if p.Piece(i).Orientation() != initial[i] {
			t.Errorf("piece %d outside face R changed orientation", i)
		}
	}
}

func TestRightTurnScenario(t *testing.T) {
	// Solved cube, turn R clockwise once over several frames: the nine
	// pieces with home x=+1 gain one quarter turn about the x axis, all
	// other pieces stay bit-identical, and the controller returns to idle.
	p := New()
	want := mgl32.QuatRotate(mgl32.DegToRad(-90), mgl32.Vec3{1, 0, 0})

	if err := p.Turn(FaceR, CW); err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	run(t, p, 1.0/60)

	for i := 0; i < 27; i++ {
		piece := p.Piece(i)
		if piece.Home().X() == 1 {
			if !rotationsEqual(piece.Orientation(), want) {
				t.Errorf("piece %d should carry a single quarter turn about +x", i)
			}
		} else {
			if piece.Orientation() != mgl32.QuatIdent() {
				t.Errorf("piece %d should be untouched", i)
			}
		}
	}
	if _, active := p.ActiveFace(); active {
		t.Error("controller should be idle after finalize")
	}
}

func TestGroupClosureUnderRandomTurns(t *testing.T) {
	p := New()
	rng := rand.New(rand.NewSource(1))
	turns := []Turn{CW, CCW, Double}

	for i := 0; i < 1000; i++ {
		face := Faces[rng.Intn(len(Faces))]
		p.Apply(Move{Face: face, Turn: turns[rng.Intn(len(turns))]})
	}

	for i := 0; i < 27; i++ {
		norm := p.Piece(i).Orientation().Norm()
		if math.Abs(float64(norm)-1) > 1e-4 {
			t.Errorf("piece %d orientation drifted off the unit sphere: norm %v", i, norm)
		}
	}
}

func TestGridPositionsStayOnGrid(t *testing.T) {
	p := New()
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 500; i++ {
		p.Apply(Move{Face: Faces[rng.Intn(len(Faces))], Turn: CW})
	}

	seen := map[[3]int]int{}
	for i := 0; i < 27; i++ {
		gp := p.Piece(i).GridPosition()
		for _, c := range gp {
			if c < -1 || c > 1 {
				t.Fatalf("piece %d left the grid: %v", i, gp)
			}
		}
		seen[gp]++
	}
	if len(seen) != 27 {
		t.Errorf("pieces should occupy 27 distinct grid cells, got %d", len(seen))
	}
}

func TestFaceMembershipIsRederived(t *testing.T) {
	p := New()
	if p.FaceIndices(FaceU) != SolvedFaceIndices(FaceU) {
		t.Error("solved puzzle membership should match the solved table")
	}

	p.Apply(Move{Face: FaceR, Turn: CW})

	// R clockwise carries the front-down-right piece to up-back-right, so
	// it must now be a member of the up face.
	moved := pieceIndex(1, -1, 1)
	if !containsIndex(p.FaceIndices(FaceU), moved) {
		t.Error("up face membership should include the piece R carried up")
	}
	if containsIndex(SolvedFaceIndices(FaceU), moved) {
		t.Error("solved table should not contain the moved piece")
	}
}

func TestNetAfterRightTurn(t *testing.T) {
	p := New()
	p.Apply(Move{Face: FaceR, Turn: CW})
	net := p.Net()

	// The front face's right column rises to the up face.
	up := net[FaceU]
	for _, cell := range []int{2, 5, 8} {
		if up[cell] != Green {
			t.Errorf("up face cell %d should show green after R, got %v", cell, up[cell])
		}
	}
	// The left face is untouched.
	left := net[FaceL]
	for i, cell := range left {
		if cell != Orange {
			t.Errorf("left face cell %d should stay orange, got %v", i, cell)
		}
	}
}

func TestSliceMoveDisplacesCenters(t *testing.T) {
	p := New()
	p.Apply(Move{Face: FaceM, Turn: CW})
	if p.IsSolved() {
		t.Error("M move should break solved state")
	}
	for i := 0; i < 4; i++ {
		p.Apply(Move{Face: FaceM, Turn: CCW})
	}
	// One CW plus four CCW nets one CW turn of the middle slice.
	if p.IsSolved() {
		t.Error("M followed by M' x4 should not be solved")
	}
	p.Apply(Move{Face: FaceM, Turn: CCW})
	if !p.IsSolved() {
		t.Error("net zero M turns should restore solved state")
	}
}

func TestSlicesDisabled(t *testing.T) {
	p := New(WithSliceMoves(false))
	if err := p.Turn(FaceM, CW); err != ErrSlicesDisabled {
		t.Errorf("expected ErrSlicesDisabled, got %v", err)
	}
	if err := p.Apply(Move{Face: FaceE, Turn: CW}); err != ErrSlicesDisabled {
		t.Errorf("expected ErrSlicesDisabled, got %v", err)
	}
	if err := p.Turn(FaceR, CW); err != nil {
		t.Errorf("outer faces should still turn: %v", err)
	}
}

func TestInputRejectedWhileAnimating(t *testing.T) {
	p := New()
	if err := p.Turn(FaceR, CW); err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	p.Advance(0.01)

	if err := p.Turn(FaceU, CW); err != ErrTurnInProgress {
		t.Errorf("expected ErrTurnInProgress, got %v", err)
	}
	if face, _ := p.ActiveFace(); face != FaceR {
		t.Errorf("active face should stay R, got %v", face)
	}

	run(t, p, 0.05)

	// Only the R layer may have moved.
	for i := 0; i < 27; i++ {
		piece := p.Piece(i)
		if piece.Home().X() != 1 && piece.Orientation() != mgl32.QuatIdent() {
			t.Errorf("piece %d outside face R changed after rejected input", i)
		}
	}
}

func TestFinalizeExactlyOncePerTurn(t *testing.T) {
	// Step the animation with schedules that undershoot, overshoot in one
	// frame, and land awkwardly around the target; the committed result
	// must always equal a single immediate quarter turn.
	want := New()
	want.Apply(Move{Face: FaceR, Turn: CW})

	schedules := [][]float32{
		{10},                    // massive single-frame overshoot
		{0.1, 0.1, 0.1, 0.1, 5}, // undershoot then overshoot
		{1.0 / 3, 1.0 / 3},      // lands just past 90 at default speed
	}
	for si, dts := range schedules {
		p := New()
		if err := p.Turn(FaceR, CW); err != nil {
			t.Fatalf("Turn failed: %v", err)
		}
		finalized := 0
		for _, dt := range dts {
			if p.Advance(dt) {
				finalized++
			}
		}
		if finalized != 1 {
			t.Errorf("schedule %d: turn finalized %d times, want 1", si, finalized)
		}
		for i := 0; i < 27; i++ {
			if p.Piece(i).Orientation() != want.Piece(i).Orientation() {
				t.Errorf("schedule %d: piece %d differs from an immediate quarter turn", si, i)
			}
		}
	}
}

func TestOvershootNeverLeaksIntoCommittedOrientation(t *testing.T) {
	p := New()
	if err := p.Turn(FaceU, CCW); err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	// One frame worth of 40 seconds: the intermediate angle would be far
	// past 90, but the commit must be the exact quantized rotation.
	if !p.Advance(40) {
		t.Fatal("turn should finalize on a single huge frame")
	}
	want := New()
	want.Apply(Move{Face: FaceU, Turn: CCW})
	for i := 0; i < 27; i++ {
		if p.Piece(i).Orientation() != want.Piece(i).Orientation() {
			t.Errorf("piece %d committed an overshot rotation", i)
		}
	}
}

func TestAdvanceWhileIdleIsNoOp(t *testing.T) {
	p := New()
	if p.Advance(1) {
		t.Error("Advance on an idle puzzle should not finalize anything")
	}
	if !p.IsSolved() {
		t.Error("idle Advance should not mutate state")
	}
}

func TestApplyRecordsHistory(t *testing.T) {
	p := New()
	p.ApplyNotation("R U R'")
	if got := p.History().Len(); got != 3 {
		t.Errorf("history length = %d, want 3", got)
	}
	if got := p.History().Notation(); got != "R U R'" {
		t.Errorf("history notation = %q, want %q", got, "R U R'")
	}

	p2 := New(WithHistory(false))
	p2.Apply(Move{Face: FaceR, Turn: CW})
	if p2.History().Len() != 0 {
		t.Error("history disabled should record nothing")
	}
}

func TestResetRestoresSolvedState(t *testing.T) {
	p := New()
	p.ApplyNotation("R U F' D2 L")
	p.Turn(FaceB, CW)
	p.Advance(0.05)

	p.Reset()

	if !p.IsSolved() {
		t.Error("Reset should restore the solved state")
	}
	if p.Animating() {
		t.Error("Reset should clear the active turn")
	}
	if p.History().Len() != 0 {
		t.Error("Reset should clear history")
	}
}

// countingSink records the transforms handed to it.
type countingSink struct {
	worlds map[int]mgl32.Mat4
}

func (s *countingSink) DrawPiece(index int, world mgl32.Mat4) {
	s.worlds[index] = world
}

func TestRenderCoversEveryPieceOnce(t *testing.T) {
	p := New()
	sink := &countingSink{worlds: map[int]mgl32.Mat4{}}
	p.Render(sink, 1.05)
	if len(sink.worlds) != 27 {
		t.Errorf("Render should draw 27 pieces, drew %d", len(sink.worlds))
	}
}

func TestRenderMovesOnlyActiveSlice(t *testing.T) {
	p := New()
	idle := &countingSink{worlds: map[int]mgl32.Mat4{}}
	p.Render(idle, 1.05)

	if err := p.Turn(FaceR, CW); err != nil {
		t.Fatalf("Turn failed: %v", err)
	}
	p.Advance(0.1) // partway through the turn

	mid := &countingSink{worlds: map[int]mgl32.Mat4{}}
	p.Render(mid, 1.05)

	active := p.FaceIndices(FaceR)
	for i := 0; i < 27; i++ {
		moved := idle.worlds[i] != mid.worlds[i]
		if containsIndex(active, i) && !moved {
			t.Errorf("active piece %d should draw with a live rotation", i)
		}
		if !containsIndex(active, i) && moved {
			t.Errorf("inactive piece %d should hold its committed transform", i)
		}
	}
}
