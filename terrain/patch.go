package terrain

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// DefaultLayer is the collision layer of patches that do not set one.
const DefaultLayer = uint32(1)

// Patch is a planar surface bounded by a horizontal footprint.
type Patch struct {
	// Footprint limits the surface on the X and Z axes. Its Y extent is ignored.
	Footprint cube.BBox
	// Normal is the unit surface normal, pointing up.
	Normal mgl32.Vec3
	// Point is any point on the plane.
	Point mgl32.Vec3
	// Layer is the collision layer bit of the patch, matched against query masks.
	Layer uint32
	// Trigger patches are never hit by ground queries nor stood on.
	Trigger bool
}

// PatchConfig describes a patch in configuration files.
type PatchConfig struct {
	MinX float32 `toml:"min_x" yaml:"min_x"`
	MinZ float32 `toml:"min_z" yaml:"min_z"`
	MaxX float32 `toml:"max_x" yaml:"max_x"`
	MaxZ float32 `toml:"max_z" yaml:"max_z"`
	// Height is the height of the surface at the centre of the footprint.
	Height float32 `toml:"height" yaml:"height"`
	// Slope is the angle in degrees between the surface and the horizontal plane.
	Slope float32 `toml:"slope" yaml:"slope"`
	// SlopeYaw is the direction, in degrees from +Z towards +X, the surface descends towards.
	SlopeYaw float32 `toml:"slope_yaw" yaml:"slope_yaw"`
	Layer    uint32  `toml:"layer" yaml:"layer"`
	Trigger  bool    `toml:"trigger" yaml:"trigger"`
}

// Patch builds the patch described by the configuration.
func (c PatchConfig) Patch() Patch {
	slope, yaw := mgl32.DegToRad(c.Slope), mgl32.DegToRad(c.SlopeYaw)
	descent := mgl32.Vec3{math32.Sin(yaw), 0, math32.Cos(yaw)}
	normal := descent.Mul(math32.Sin(slope)).Add(game.WorldUp.Mul(math32.Cos(slope)))

	layer := c.Layer
	if layer == 0 {
		layer = DefaultLayer
	}
	return Patch{
		Footprint: cube.Box(c.MinX, -1, c.MinZ, c.MaxX, 1, c.MaxZ),
		Normal:    game.SafeNormalize(normal),
		Point:     mgl32.Vec3{(c.MinX + c.MaxX) / 2, c.Height, (c.MinZ + c.MaxZ) / 2},
		Layer:     layer,
		Trigger:   c.Trigger,
	}
}

// HeightAt returns the height of the plane at the horizontal position passed. ok is false if the position
// is outside the footprint or the plane is vertical.
func (p Patch) HeightAt(x, z float32) (h float32, ok bool) {
	if p.Normal.Y() <= 1e-5 || !game.WithinXZ(p.Footprint, mgl32.Vec3{x, 0, z}) {
		return 0, false
	}
	dx, dz := x-p.Point.X(), z-p.Point.Z()
	return p.Point.Y() - (p.Normal.X()*dx+p.Normal.Z()*dz)/p.Normal.Y(), true
}

// sphereCast returns the distance a sphere swept from origin along dir travels before touching the patch.
func (p Patch) sphereCast(origin mgl32.Vec3, radius float32, dir mgl32.Vec3) (float32, bool) {
	approach := p.Normal.Dot(dir)
	if approach >= 0 {
		return 0, false
	}
	dist := p.Normal.Dot(origin.Sub(p.Point))
	if dist < -radius {
		// Sphere is fully behind the surface.
		return 0, false
	}
	t := math32.Max(0, (radius-dist)/approach)
	contact := origin.Add(dir.Mul(t)).Sub(p.Normal.Mul(radius))
	if !game.WithinXZ(p.Footprint, contact) {
		return 0, false
	}
	return t, true
}
