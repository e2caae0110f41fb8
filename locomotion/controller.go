package locomotion

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/assert"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/sirupsen/logrus"
)

// Controller turns sampled input and ground information into a velocity for its body every tick. It is
// not safe for concurrent use: a controller is owned by the single loop that ticks it.
type Controller struct {
	conf Config

	mover   Mover
	ground  GroundQuery
	camera  Camera
	sampler *input.Sampler
	log     *logrus.Entry

	coyoteTimer float32
	bufferTimer float32
	speed       float32
	verticalVel float32
	orientation mgl32.Quat

	tick uint64
	last State
}

// Option configures optional collaborators of a Controller.
type Option func(*Controller)

// WithCamera makes movement input relative to the camera passed. Without a camera, world axes are used.
func WithCamera(cam Camera) Option {
	return func(c *Controller) {
		c.camera = cam
	}
}

// WithLogger sets the entry per-tick traces are written to when Config.Debug is set.
func WithLogger(log *logrus.Entry) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithSampler replaces the input sampler built by New, for example to read through an input.Context.
func WithSampler(s *input.Sampler) Option {
	return func(c *Controller) {
		c.sampler = s
	}
}

// New returns a controller moving the body through mover. ground and src may be nil, in which case the body
// never finds ground through the probe and never receives input. A nil mover is a wiring error and panics.
func New(conf Config, mover Mover, ground GroundQuery, src input.Source, opts ...Option) *Controller {
	assert.IsTrue(mover != nil, "locomotion: controller requires a movement primitive")
	c := &Controller{
		conf:        conf,
		mover:       mover,
		ground:      ground,
		sampler:     input.NewSampler(src, input.DefaultBindings(), nil),
		orientation: mgl32.QuatIdent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the configuration of the controller.
func (c *Controller) Config() Config {
	return c.conf
}

// SetConfig replaces the configuration. It takes effect on the next tick.
func (c *Controller) SetConfig(conf Config) {
	c.conf = conf
}

// SetCamera binds or, with nil, unbinds the camera reference.
func (c *Controller) SetCamera(cam Camera) {
	c.camera = cam
}

// SetOrientation places the body with the orientation passed, for spawning or teleporting it.
func (c *Controller) SetOrientation(q mgl32.Quat) {
	c.orientation = q.Normalize()
	if r, ok := c.mover.(Rotator); ok {
		r.SetRotation(c.orientation)
	}
}

// Orientation returns the current orientation of the body.
func (c *Controller) Orientation() mgl32.Quat {
	return c.orientation
}

// State returns a snapshot of the controller after the last tick.
func (c *Controller) State() State {
	return c.last
}

// Update runs one simulation tick of dt seconds. The stages run in a fixed order: ground probe, input,
// direction, jump and gravity, then velocity composition and the move itself. A tick of zero or negative
// length changes nothing.
func (c *Controller) Update(dt float32) {
	if dt <= 0 {
		return
	}
	t := &tickState{dt: dt}

	c.probeGround(t)
	t.input = c.sampler.Sample()
	c.resolveDirection(t)
	c.updateJump(t)
	c.compose(t)

	if r, ok := c.mover.(Rotator); ok {
		r.SetRotation(c.orientation)
	}
	c.tick++
	c.last = c.snapshot(t)
}

// tickState carries the values computed by one stage of a tick to the stages after it.
type tickState struct {
	dt float32

	groundNormal mgl32.Vec3
	probeHit     bool

	input input.Sample

	// moveDir follows the ground surface while grounded. flatDir is the same direction before projection.
	moveDir   mgl32.Vec3
	flatDir   mgl32.Vec3
	inputMag  float32
	backward  bool
	pinFacing bool

	grounded bool
	jumped   bool

	sliding  bool
	velocity mgl32.Vec3
}

func (c *Controller) notify(cond bool, format string, args ...any) {
	if !cond || !c.conf.Debug || c.log == nil {
		return
	}
	c.log.WithField("tick", c.tick).Debugf(format, args...)
}

// worldBasis returns the horizontal forward and right axes input is relative to.
func (c *Controller) worldBasis() (forward, right mgl32.Vec3) {
	forward, right = game.WorldForward, game.WorldRight
	if c.camera == nil {
		return
	}
	f := game.SafeNormalize(game.Horizontal(c.camera.Forward()))
	r := game.SafeNormalize(game.Horizontal(c.camera.Right()))
	if f.LenSqr() == 0 || r.LenSqr() == 0 {
		// Camera looking straight up or down.
		return
	}
	return f, r
}
