package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// compose smooths the speed towards the target speed, builds the final velocity and moves the body by it.
func (c *Controller) compose(t *tickState) {
	target := c.conf.WalkSpeed
	if t.input.SprintHeld {
		target = c.conf.SprintSpeed
	}
	target *= t.inputMag
	if t.backward && c.conf.KeepFacingOnBackpedal {
		target *= c.conf.BackpedalMultiplier
	}

	rate := c.conf.Deceleration
	if target > c.speed {
		rate = c.conf.Acceleration
	}
	c.speed = game.MoveTowards(c.speed, target, rate*t.dt)

	airControl := float32(1)
	if !t.grounded {
		airControl = c.conf.MaxAirControl
	}
	dir := t.moveDir
	if !t.grounded {
		// Airborne, including the tick a jump was applied on: no surface to follow.
		dir = t.flatDir
	}
	horizontal := dir.Mul(c.speed * airControl)

	if t.grounded && t.probeHit && game.AngleBetween(t.groundNormal, game.WorldUp) > c.mover.SlopeLimit() {
		downhill := game.SafeNormalize(game.ProjectOnPlane(game.WorldDown, t.groundNormal))
		horizontal = horizontal.Add(downhill.Mul(c.conf.SlopeSlideForce * t.dt))
		t.sliding = true
		c.notify(true, "slope slide (normal=%v, push=%v)", t.groundNormal, downhill)
	}

	t.velocity = mgl32.Vec3{horizontal.X(), c.verticalVel, horizontal.Z()}
	c.mover.Move(t.velocity.Mul(t.dt))
}
