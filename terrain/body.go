package terrain

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// BodyConfig holds the shape and contact settings of a Body.
type BodyConfig struct {
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
	// SlopeLimit is the steepest walkable slope in degrees.
	SlopeLimit float32 `toml:"slope_limit" yaml:"slope_limit"`
	// StepOffset is the tallest ledge the body is lifted onto while moving.
	StepOffset float32 `toml:"step_offset" yaml:"step_offset"`
	// SkinWidth is how far above a surface a descending body still snaps onto it.
	SkinWidth float32 `toml:"skin_width" yaml:"skin_width"`
}

// DefaultBodyConfig returns the settings of a human sized body.
func DefaultBodyConfig() BodyConfig {
	return BodyConfig{
		Width:      0.6,
		Height:     1.8,
		SlopeLimit: 45,
		StepOffset: 0.3,
		SkinWidth:  0.08,
	}
}

// Body is a kinematic body moving over the patches of a World. It implements locomotion.Mover and
// locomotion.Rotator.
type Body struct {
	conf  BodyConfig
	world *World

	pos      mgl32.Vec3
	rot      mgl32.Quat
	grounded bool

	obstacles []Obstacle
}

// Obstacle is a dynamic blocker, such as a door, that a body cannot move into while it is blocking.
type Obstacle interface {
	Blocking() bool
	BoundingBox() cube.BBox
}

// NewBody returns a body standing at pos in the world passed.
func NewBody(conf BodyConfig, world *World, pos mgl32.Vec3) *Body {
	b := &Body{conf: conf, world: world, pos: pos, rot: mgl32.QuatIdent()}
	b.settle(false)
	return b
}

// AddObstacle makes the body collide with o while o is blocking.
func (b *Body) AddObstacle(o Obstacle) {
	b.obstacles = append(b.obstacles, o)
}

// Move displaces the body and puts it on top of the surface below it, if it reached it. Horizontal
// movement into a blocking obstacle is cancelled per axis, so the body slides along it.
func (b *Body) Move(d mgl32.Vec3) {
	b.pos = b.pos.Add(b.clip(d))
	b.settle(d.Y() > 0)
}

// clip zeroes the X and Z components of d that would move the body into a blocking obstacle it does not
// already overlap.
func (b *Body) clip(d mgl32.Vec3) mgl32.Vec3 {
	if len(b.obstacles) == 0 {
		return d
	}
	box := b.BoundingBox()
	for _, axis := range [...]int{0, 2} {
		if d[axis] == 0 {
			continue
		}
		var step mgl32.Vec3
		step[axis] = d[axis]
		next := box.Translate(step)
		if b.blocked(box, next) {
			d[axis] = 0
			continue
		}
		box = next
	}
	return d
}

func (b *Body) blocked(current, next cube.BBox) bool {
	for _, o := range b.obstacles {
		if !o.Blocking() {
			continue
		}
		ob := o.BoundingBox()
		if ob.IntersectsWith(next) && !ob.IntersectsWith(current) {
			return true
		}
	}
	return false
}

func (b *Body) settle(ascending bool) {
	b.grounded = false
	if b.world == nil {
		return
	}
	h, _, ok := b.world.SurfaceBelow(b.pos, b.conf.StepOffset)
	if !ok {
		return
	}
	if b.pos.Y() <= h || (!ascending && b.pos.Y()-h <= b.conf.SkinWidth) {
		b.pos[1] = h
		b.grounded = true
	}
}

// Teleport places the body at pos without moving through the space in between.
func (b *Body) Teleport(pos mgl32.Vec3) {
	b.pos = pos
	b.settle(false)
}

func (b *Body) Position() mgl32.Vec3     { return b.pos }
func (b *Body) Grounded() bool           { return b.grounded }
func (b *Body) SlopeLimit() float32      { return b.conf.SlopeLimit }
func (b *Body) SetRotation(q mgl32.Quat) { b.rot = q }
func (b *Body) Rotation() mgl32.Quat     { return b.rot }

// BoundingBox returns the bounding box of the body at its current position.
func (b *Body) BoundingBox() cube.BBox {
	return game.AABBFromDimensions(b.conf.Width, b.conf.Height).Translate(b.pos)
}
