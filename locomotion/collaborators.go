package locomotion

import "github.com/go-gl/mathgl/mgl32"

// GroundHit is the result of a successful ground query.
type GroundHit struct {
	// Normal is the unit normal of the surface hit.
	Normal mgl32.Vec3
	// Distance is how far the probe travelled before touching the surface.
	Distance float32
}

// GroundQuery is the physics query used to find the surface supporting the body.
type GroundQuery interface {
	// SphereCast sweeps a sphere of the radius passed from origin along direction, up to maxDistance, against
	// the colliders in mask. Trigger-only volumes are ignored. ok is false if nothing was hit.
	SphereCast(origin mgl32.Vec3, radius float32, direction mgl32.Vec3, maxDistance float32, mask uint32) (hit GroundHit, ok bool)
}

// Mover is the body movement primitive. It is the only channel through which the controller changes the
// position of the body.
type Mover interface {
	// Move displaces the body by the vector passed, resolving collisions.
	Move(displacement mgl32.Vec3)
	// Position returns the reference position of the body, at its feet.
	Position() mgl32.Vec3
	// Grounded returns true if the last Move left the body touching the ground.
	Grounded() bool
	// SlopeLimit returns the steepest angle, in degrees, the body may stand on without sliding.
	SlopeLimit() float32
}

// Rotator is implemented by movers that also carry the body orientation. The controller pushes its
// orientation to them once per tick.
type Rotator interface {
	SetRotation(q mgl32.Quat)
}

// Camera is the reference movement input is relative to.
type Camera interface {
	Forward() mgl32.Vec3
	Right() mgl32.Vec3
}
