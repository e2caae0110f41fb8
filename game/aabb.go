package game

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// AABBFromDimensions returns a bounding box from the given dimensions, with its origin at the centre of
// its base.
func AABBFromDimensions(width, height float32) cube.BBox {
	h := width / 2
	return cube.Box(
		-h, 0, -h,
		h, height, h,
	)
}

// WithinXZ returns true if the vector lies inside the horizontal footprint of the box, edges included.
func WithinXZ(b cube.BBox, v mgl32.Vec3) bool {
	return v.X() >= b.Min().X() && v.X() <= b.Max().X() && v.Z() >= b.Min().Z() && v.Z() <= b.Max().Z()
}
