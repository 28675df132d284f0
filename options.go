package spincube

// Option configures a Puzzle.
type Option func(*config)

type config struct {
	turnSpeed  float32
	sliceMoves bool
	history    bool
}

func defaultConfig() *config {
	return &config{
		turnSpeed:  DefaultTurnSpeed,
		sliceMoves: true,
		history:    true,
	}
}

// WithTurnSpeed sets the animation speed in degrees per second.
// Values <= 0 keep the default.
func WithTurnSpeed(degPerSec float32) Option {
	return func(c *config) {
		if degPerSec > 0 {
			c.turnSpeed = degPerSec
		}
	}
}

// WithSliceMoves enables or disables the inner slice moves M, E and S.
// When disabled (they are enabled by default), slice input is rejected
// with ErrSlicesDisabled.
func WithSliceMoves(enabled bool) Option {
	return func(c *config) {
		c.sliceMoves = enabled
	}
}

// WithHistory enables or disables turn history recording.
// When enabled (default), completed turns are stored and accessible via
// History(). Disable this for long sessions to reduce memory usage.
func WithHistory(enabled bool) Option {
	return func(c *config) {
		c.history = enabled
	}
}
