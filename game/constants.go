package game

import "github.com/go-gl/mathgl/mgl32"

var (
	// WorldUp is the up axis of the simulation space.
	WorldUp = mgl32.Vec3{0, 1, 0}
	// WorldDown ...
	WorldDown = mgl32.Vec3{0, -1, 0}
	// WorldForward is the direction a body with identity orientation faces.
	WorldForward = mgl32.Vec3{0, 0, 1}
	// WorldRight ...
	WorldRight = mgl32.Vec3{1, 0, 0}
)

const (
	// FacingEpsilonSqr is the squared magnitude below which a facing direction is ignored.
	FacingEpsilonSqr = float32(1e-4)
	// ProbeLift is how far above the body reference position the ground probe starts.
	ProbeLift = float32(0.1)
)
