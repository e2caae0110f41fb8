package locomotion

import "github.com/go-gl/mathgl/mgl32"

// State is a read-only snapshot of a controller taken at the end of a tick.
type State struct {
	Tick uint64

	Position mgl32.Vec3
	Velocity mgl32.Vec3
	// Displacement is the vector handed to the mover this tick.
	Displacement mgl32.Vec3
	Orientation  mgl32.Quat

	Speed            float32
	VerticalVelocity float32
	CoyoteTimer      float32
	BufferTimer      float32

	// Grounded is the mover's grounded flag as seen by the tick, false if a jump was applied.
	Grounded bool
	// ProbeGrounded is true if the ground probe hit a surface.
	ProbeGrounded bool
	GroundNormal  mgl32.Vec3

	Backpedalling bool
	Jumped        bool
	Sliding       bool
}

func (c *Controller) snapshot(t *tickState) State {
	return State{
		Tick:             c.tick,
		Position:         c.mover.Position(),
		Velocity:         t.velocity,
		Displacement:     t.velocity.Mul(t.dt),
		Orientation:      c.orientation,
		Speed:            c.speed,
		VerticalVelocity: c.verticalVel,
		CoyoteTimer:      c.coyoteTimer,
		BufferTimer:      c.bufferTimer,
		Grounded:         t.grounded,
		ProbeGrounded:    t.probeHit,
		GroundNormal:     t.groundNormal,
		Backpedalling:    t.backward,
		Jumped:           t.jumped,
		Sliding:          t.sliding,
	}
}
