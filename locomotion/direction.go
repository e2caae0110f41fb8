package locomotion

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/locomotion/game"
)

// resolveDirection maps the input axis onto a world space movement direction and turns the body towards
// it.
func (c *Controller) resolveDirection(t *tickState) {
	axis := t.input.Axis
	forward, right := c.worldBasis()
	desired := forward.Mul(axis.Y()).Add(right.Mul(axis.X()))

	t.backward = axis.Y() < -c.conf.InputDeadzone && math32.Abs(axis.X()) < c.conf.LateralDeadzone
	if t.backward && c.conf.KeepFacingOnBackpedal {
		// Retreat relative to the body instead of the camera so the body keeps facing where it was.
		bodyForward := game.SafeNormalize(game.Horizontal(game.Forward(c.orientation)))
		bodyRight := game.SafeNormalize(game.Horizontal(game.Right(c.orientation)))
		if bodyForward.LenSqr() == 0 || bodyRight.LenSqr() == 0 {
			bodyForward, bodyRight = game.WorldForward, game.WorldRight
		}
		desired = bodyForward.Mul(-math32.Abs(axis.Y())).Add(bodyRight.Mul(axis.X()))
		t.pinFacing = true
	}
	c.notify(t.backward, "backpedal (keepFacing=%v, axis=%v)", c.conf.KeepFacingOnBackpedal, axis)

	t.inputMag = game.Clamp01(desired.Len())
	t.flatDir = game.SafeNormalize(desired)
	t.moveDir = t.flatDir
	if t.probeHit && c.mover.Grounded() {
		t.moveDir = game.SafeNormalize(game.ProjectOnPlane(desired, t.groundNormal))
	}

	c.blendOrientation(t)
}

// blendOrientation rotates the body towards its facing direction. The facing direction is the horizontal
// part of the movement direction, unless facing is pinned by backpedalling.
func (c *Controller) blendOrientation(t *tickState) {
	if t.pinFacing {
		return
	}
	if game.Vec3HzDistSqr(t.moveDir) <= game.FacingEpsilonSqr {
		return
	}
	look := game.LookRotation(game.Horizontal(t.moveDir), game.WorldUp)
	c.orientation = game.BlendRotation(c.orientation, look, c.conf.RotationSharpness*t.dt)
}
