package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// probeGround casts the ground probe from slightly above the body. The result is independent of the
// mover's own grounded flag: it only decides slope projection and slope sliding.
func (c *Controller) probeGround(t *tickState) {
	t.groundNormal = game.WorldUp
	if c.ground == nil {
		return
	}

	origin := c.mover.Position().Add(mgl32.Vec3{0, game.ProbeLift})
	hit, ok := c.ground.SphereCast(origin, c.conf.ProbeRadius, game.WorldDown, c.conf.ProbeDistance+game.ProbeLift, c.conf.ProbeMask)
	if !ok {
		return
	}
	n := game.SafeNormalize(hit.Normal)
	if n.LenSqr() == 0 {
		return
	}
	t.groundNormal, t.probeHit = n, true
}
