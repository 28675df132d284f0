package spincube

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawSink consumes one world transform per piece and issues the actual
// mesh draw. Rendering backends implement this; the puzzle core never
// touches a graphics API.
type DrawSink interface {
	DrawPiece(index int, world mgl32.Mat4)
}

// Net is the flat sticker layout of the six outer faces. Cells are row
// major, index 0 top-left, matching the standard orientation (white up,
// green front).
type Net map[Face][9]Color

// Puzzle is the aggregate puzzle state: 27 pieces plus the turn
// controller. It is driven by a frame loop calling Advance then Render
// once per frame, and fed input through Turn (animated) or Apply
// (immediate).
type Puzzle struct {
	pieces  [27]Piece
	ctrl    *TurnController
	cfg     *config
	journal *Journal
}

// New creates a solved puzzle.
func New(opts ...Option) *Puzzle {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	p := &Puzzle{
		ctrl:    newTurnController(cfg.turnSpeed),
		cfg:     cfg,
		journal: newJournal(cfg.history),
	}
	p.initPieces()
	return p
}

func (p *Puzzle) initPieces() {
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				p.pieces[pieceIndex(x, y, z)] = newPiece(x, y, z)
			}
		}
	}
}

// Reset returns the puzzle to the solved state and clears the turn
// controller and history.
func (p *Puzzle) Reset() {
	p.initPieces()
	p.ctrl = newTurnController(p.cfg.turnSpeed)
	p.journal.reset()
}

// Piece returns the piece at the given index for inspection.
func (p *Puzzle) Piece(index int) *Piece {
	return &p.pieces[index]
}

// FaceIndices returns the nine piece indices currently on the given face,
// re-derived from the live grid positions. After a completed turn a
// piece's physical face membership changes, so membership is a pure
// function of current state rather than a cached table; on a solved
// puzzle the result equals SolvedFaceIndices.
//
// FaceIndices panics on an unknown face name.
func (p *Puzzle) FaceIndices(face Face) [9]int {
	axis, value := face.layerCoord()
	var out [9]int
	n := 0
	for i := range p.pieces {
		if p.pieces[i].GridPosition()[axis] == value {
			out[n] = i
			n++
		}
	}
	return out
}

// Turn starts an animated turn of face in the given direction. It returns
// ErrTurnInProgress while a turn is animating (the input is dropped, per
// the input contract) and ErrSlicesDisabled for slice moves when those are
// turned off. An unknown face name panics.
func (p *Puzzle) Turn(face Face, turn Turn) error {
	if face.IsSlice() && !p.cfg.sliceMoves {
		return ErrSlicesDisabled
	}
	return p.ctrl.Start(face, turn, p.FaceIndices(face))
}

// Input feeds a move event from an input source into the puzzle,
// starting an animated turn.
func (p *Puzzle) Input(m Move) error {
	return p.Turn(m.Face, m.Turn)
}

// Advance ticks the active animation by dt seconds. When the accumulated
// angle reaches the turn's target the finalize step runs: each affected
// piece composes in the exact quantized rotation, once, regardless of how
// far the last frame overshot, and the controller returns to idle.
// Advance reports whether a turn finalized this frame.
func (p *Puzzle) Advance(dt float32) bool {
	fin, done := p.ctrl.Tick(dt)
	if !done {
		return false
	}
	axis := fin.Face.Axis()
	for _, idx := range fin.Indices {
		p.pieces[idx].Commit(axis, int(fin.Turn))
	}
	p.journal.add(Move{Face: fin.Face, Turn: fin.Turn}, time.Now())
	return true
}

// Animating reports whether a turn is currently in progress.
func (p *Puzzle) Animating() bool {
	return !p.ctrl.Idle()
}

// ActiveFace returns the face currently animating, if any.
func (p *Puzzle) ActiveFace() (Face, bool) {
	return p.ctrl.Active()
}

// Render hands every piece's current world transform to the sink. Pieces
// in the active face set get the live in-progress rotation composed on
// top of their committed transform; all others draw with the committed
// transform alone, which is what makes one slice rotate smoothly while
// the rest of the puzzle stays fixed. spacing scales the grid step.
func (p *Puzzle) Render(sink DrawSink, spacing float32) {
	axis, angle, indices, live := p.ctrl.Live()
	for i := range p.pieces {
		if live && containsIndex(indices, i) {
			sink.DrawPiece(i, p.pieces[i].LiveTransform(axis, angle, spacing))
		} else {
			sink.DrawPiece(i, p.pieces[i].Transform(spacing))
		}
	}
}

// Apply commits a move immediately, without animation. It is the
// non-interactive path used for notation playback and tests; it shares
// the finalize code path's rotation semantics exactly.
func (p *Puzzle) Apply(m Move) error {
	if m.Face.IsSlice() && !p.cfg.sliceMoves {
		return ErrSlicesDisabled
	}
	axis := m.Face.Axis()
	for _, idx := range p.FaceIndices(m.Face) {
		p.pieces[idx].Commit(axis, int(m.Turn))
	}
	at := m.Time
	if at.IsZero() {
		at = time.Now()
	}
	p.journal.add(m, at)
	return nil
}

// ApplyNotation parses and applies a space-separated move sequence.
func (p *Puzzle) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	for _, m := range moves {
		if err := p.Apply(m); err != nil {
			return err
		}
	}
	return nil
}

// Net returns the current sticker colors of the six outer faces, derived
// from live piece positions and orientations.
func (p *Puzzle) Net() Net {
	net := make(Net, len(OuterFaces))
	for _, face := range OuterFaces {
		outward := face.Axis()
		right, down := netBasis(face)
		axis, value := face.layerCoord()
		var cells [9]Color
		for i := range p.pieces {
			gp := p.pieces[i].GridPosition()
			if gp[axis] != value {
				continue
			}
			pos := mgl32.Vec3{float32(gp[0]), float32(gp[1]), float32(gp[2])}
			col := int(pos.Dot(right)) + 1
			row := int(pos.Dot(down)) + 1
			color, ok := p.pieces[i].colorToward(outward)
			if !ok {
				continue
			}
			cells[row*3+col] = color
		}
		net[face] = cells
	}
	return net
}

// IsSolved reports whether every outer face shows a single uniform color.
// Uniformity rather than the home color scheme is the right test: slice
// moves displace center pieces, so a solved puzzle may sit in a rotated
// color arrangement.
func (p *Puzzle) IsSolved() bool {
	for _, cells := range p.Net() {
		for _, c := range cells[1:] {
			if c != cells[0] {
				return false
			}
		}
	}
	return true
}

// History returns the journal of completed turns.
func (p *Puzzle) History() *Journal {
	return p.journal
}

func containsIndex(indices [9]int, i int) bool {
	for _, idx := range indices {
		if idx == i {
			return true
		}
	}
	return false
}
