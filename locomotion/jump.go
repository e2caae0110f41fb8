package locomotion

import "github.com/chewxy/math32"

// updateJump advances the coyote and jump buffer timers, applies the jump impulse when both windows
// overlap and integrates gravity.
func (c *Controller) updateJump(t *tickState) {
	t.grounded = c.mover.Grounded()

	if t.grounded {
		c.coyoteTimer = c.conf.CoyoteTime
	} else {
		c.coyoteTimer = math32.Max(0, c.coyoteTimer-t.dt)
	}
	if t.input.JumpPress {
		c.bufferTimer = c.conf.JumpBuffer
	} else {
		c.bufferTimer = math32.Max(0, c.bufferTimer-t.dt)
	}

	if t.grounded && c.verticalVel < 0 {
		c.verticalVel = c.conf.GroundedStickForce
	}

	// Being grounded or pressing jump this tick opens its window even when the grace period is zero.
	canJump := t.grounded || c.coyoteTimer > 0
	wantsJump := t.input.JumpPress || c.bufferTimer > 0
	if canJump && wantsJump {
		c.verticalVel = c.conf.JumpVelocity()
		c.coyoteTimer, c.bufferTimer = 0, 0
		t.grounded, t.jumped = false, true
		c.notify(true, "jump consumed (velocity=%v)", c.verticalVel)
	}

	c.verticalVel += c.conf.Gravity * t.dt
	if c.verticalVel < c.conf.TerminalFallSpeed {
		c.verticalVel = c.conf.TerminalFallSpeed
	}
}
