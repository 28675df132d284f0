package spincube

import "github.com/go-gl/mathgl/mgl32"

// DefaultTurnSpeed is the animation speed in degrees per second. A quarter
// turn completes in a third of a second.
const DefaultTurnSpeed float32 = 270

// TurnController owns the transient state of the one in-progress turn. It
// is either idle or animating a single face; input arriving while a turn is
// animating is rejected and the active turn always runs to its finalize
// step. All transitions happen inside the frame tick, so a single-threaded
// frame loop needs no locking.
type TurnController struct {
	speed float32 // degrees per second

	active  bool
	face    Face
	turn    Turn
	angle   float32 // accumulated magnitude, degrees
	target  float32 // 90 for quarter turns, 180 for double turns
	indices [9]int  // piece indices captured when the turn started
}

// Finalize describes a completed turn: which pieces must compose in the
// turn's rotation, exactly once each.
type Finalize struct {
	Face    Face
	Turn    Turn
	Indices [9]int
}

func newTurnController(speed float32) *TurnController {
	return &TurnController{speed: speed}
}

// Idle reports whether no turn is in progress.
func (c *TurnController) Idle() bool {
	return !c.active
}

// Active returns the face currently animating, if any.
func (c *TurnController) Active() (Face, bool) {
	return c.face, c.active
}

// Start begins animating a turn of face by turn, affecting the given piece
// indices. While a turn is already animating it returns ErrTurnInProgress
// and leaves all state untouched: new input is dropped, not queued.
func (c *TurnController) Start(face Face, turn Turn, indices [9]int) error {
	if c.active {
		return ErrTurnInProgress
	}
	c.active = true
	c.face = face
	c.turn = turn
	c.angle = 0
	c.target = 90
	if turn == Double {
		c.target = 180
	}
	c.indices = indices
	return nil
}

// Tick advances the animation by dt seconds and reports whether the turn
// just completed. Completion triggers on angle >= target, never equality:
// frame-rate-dependent increments overshoot the exact target and an
// equality test would leave the turn stuck. The overshoot is visual only;
// the returned Finalize always stands for the exact quantized rotation.
func (c *TurnController) Tick(dt float32) (Finalize, bool) {
	if !c.active {
		return Finalize{}, false
	}
	c.angle += c.speed * dt
	if c.angle < c.target {
		return Finalize{}, false
	}
	fin := Finalize{Face: c.face, Turn: c.turn, Indices: c.indices}
	c.reset()
	return fin, true
}

// Live returns the in-progress rotation for rendering: the rotation axis,
// the signed partial angle in degrees, and the affected piece indices. The
// angle is negated for clockwise turns because clockwise seen from outside
// the face is a negative rotation about the outward normal.
func (c *TurnController) Live() (axis mgl32.Vec3, angleDeg float32, indices [9]int, ok bool) {
	if !c.active {
		return mgl32.Vec3{}, 0, [9]int{}, false
	}
	angle := c.angle
	if angle > c.target {
		angle = c.target
	}
	sign := float32(-1)
	if c.turn == CCW {
		sign = 1
	}
	return c.face.Axis(), sign * angle, c.indices, true
}

func (c *TurnController) reset() {
	c.active = false
	c.face = ""
	c.turn = 0
	c.angle = 0
	c.target = 0
	c.indices = [9]int{}
}
