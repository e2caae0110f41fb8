package locomotion

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = float32(0.02)

type mockMover struct {
	pos        mgl32.Vec3
	grounded   bool
	slopeLimit float32
	moves      []mgl32.Vec3
	rotation   mgl32.Quat
}

func (m *mockMover) Move(d mgl32.Vec3) {
	m.pos = m.pos.Add(d)
	m.moves = append(m.moves, d)
}
func (m *mockMover) Position() mgl32.Vec3       { return m.pos }
func (m *mockMover) Grounded() bool             { return m.grounded }
func (m *mockMover) SlopeLimit() float32        { return m.slopeLimit }
func (m *mockMover) SetRotation(q mgl32.Quat)   { m.rotation = q }
func (m *mockMover) lastMove() mgl32.Vec3       { return m.moves[len(m.moves)-1] }
func (m *mockMover) lastHorizontal() mgl32.Vec3 { return game.Horizontal(m.lastMove()) }

type mockGround struct {
	normal mgl32.Vec3
	hit    bool
}

func (g mockGround) SphereCast(mgl32.Vec3, float32, mgl32.Vec3, float32, uint32) (GroundHit, bool) {
	return GroundHit{Normal: g.normal}, g.hit
}

type mockCamera struct {
	forward, right mgl32.Vec3
}

func (c mockCamera) Forward() mgl32.Vec3 { return c.forward }
func (c mockCamera) Right() mgl32.Vec3   { return c.right }

func flatGround() mockGround {
	return mockGround{normal: game.WorldUp, hit: true}
}

func slopeNormal(deg float32) mgl32.Vec3 {
	r := mgl32.DegToRad(deg)
	return mgl32.Vec3{math32.Sin(r), math32.Cos(r), 0}
}

func newTestController(t *testing.T, conf Config, grounded bool, ground GroundQuery, opts ...Option) (*Controller, *mockMover, *input.Keys) {
	t.Helper()
	mover := &mockMover{grounded: grounded, slopeLimit: 45}
	keys := input.NewKeys()
	return New(conf, mover, ground, keys, opts...), mover, keys
}

func step(c *Controller, keys *input.Keys, n int, axis mgl32.Vec2, sprint, jump bool) {
	for range n {
		keys.Tick()
		keys.SetAxis(input.Move, axis)
		keys.SetHeld(input.Sprint, sprint)
		keys.SetHeld(input.Jump, jump)
		c.Update(dt)
	}
}

func TestNewPanicsWithoutMover(t *testing.T) {
	assert.Panics(t, func() {
		New(DefaultConfig(), nil, nil, nil)
	})
}

func TestSpeedApproachesTargetWithoutOvershoot(t *testing.T) {
	conf := DefaultConfig()
	c, _, keys := newTestController(t, conf, true, flatGround())

	prev := float32(0)
	for range 100 {
		step(c, keys, 1, mgl32.Vec2{0, 1}, true, false)
		s := c.State().Speed
		require.GreaterOrEqual(t, s, prev)
		require.LessOrEqual(t, s, conf.MaxSpeed())
		prev = s
	}
	assert.Equal(t, conf.SprintSpeed, prev)

	// Releasing sprint decelerates towards walk speed without going below it.
	for range 100 {
		step(c, keys, 1, mgl32.Vec2{0, 1}, false, false)
		s := c.State().Speed
		require.LessOrEqual(t, s, prev)
		require.GreaterOrEqual(t, s, conf.WalkSpeed)
		prev = s
	}
	assert.Equal(t, conf.WalkSpeed, prev)
}

func TestReleasingInputComesToRest(t *testing.T) {
	c, mover, keys := newTestController(t, DefaultConfig(), true, flatGround())
	step(c, keys, 50, mgl32.Vec2{1, 0}, false, false)
	require.Greater(t, c.State().Speed, float32(0))

	step(c, keys, 50, mgl32.Vec2{}, false, false)
	assert.Equal(t, float32(0), c.State().Speed)
	assert.Equal(t, mgl32.Vec3{}, mover.lastHorizontal())
}

func TestTerminalFallSpeed(t *testing.T) {
	conf := DefaultConfig()
	c, _, keys := newTestController(t, conf, false, nil)
	for range 500 {
		step(c, keys, 1, mgl32.Vec2{}, false, false)
		require.GreaterOrEqual(t, c.State().VerticalVelocity, conf.TerminalFallSpeed)
	}
	assert.Equal(t, conf.TerminalFallSpeed, c.State().VerticalVelocity)
}

func TestGroundedStick(t *testing.T) {
	conf := DefaultConfig()
	c, _, keys := newTestController(t, conf, false, nil)
	step(c, keys, 20, mgl32.Vec2{}, false, false)
	require.Less(t, c.State().VerticalVelocity, conf.GroundedStickForce)

	c.mover.(*mockMover).grounded = true
	step(c, keys, 1, mgl32.Vec2{}, false, false)
	assert.InDelta(t, conf.GroundedStickForce+conf.Gravity*dt, c.State().VerticalVelocity, 1e-5)
}

func TestJumpImpulse(t *testing.T) {
	conf := DefaultConfig()
	c, _, keys := newTestController(t, conf, true, flatGround())
	step(c, keys, 3, mgl32.Vec2{}, false, false)
	step(c, keys, 1, mgl32.Vec2{}, false, true)

	s := c.State()
	assert.True(t, s.Jumped)
	assert.False(t, s.Grounded)
	assert.InDelta(t, math32.Sqrt(2*conf.JumpHeight*math32.Abs(conf.Gravity))+conf.Gravity*dt, s.VerticalVelocity, 1e-4)
	assert.Zero(t, s.CoyoteTimer)
	assert.Zero(t, s.BufferTimer)

	// Holding the button does not jump again.
	step(c, keys, 1, mgl32.Vec2{}, false, true)
	assert.False(t, c.State().Jumped)
}

func TestCoyoteTime(t *testing.T) {
	tests := []struct {
		name          string
		airborneTicks int
		wantJump      bool
	}{
		{"within grace", 3, true},
		{"after grace", 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := DefaultConfig()
			conf.JumpBuffer = 0
			c, mover, keys := newTestController(t, conf, true, flatGround())
			step(c, keys, 5, mgl32.Vec2{}, false, false)

			mover.grounded = false
			step(c, keys, tt.airborneTicks-1, mgl32.Vec2{}, false, false)
			step(c, keys, 1, mgl32.Vec2{}, false, true)
			assert.Equal(t, tt.wantJump, c.State().Jumped)
		})
	}
}

func TestJumpBuffer(t *testing.T) {
	tests := []struct {
		name         string
		ticksToLand  int
		wantJumpLand bool
	}{
		{"lands within buffer", 3, true},
		{"lands after buffer", 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := DefaultConfig()
			c, mover, keys := newTestController(t, conf, false, nil)
			step(c, keys, 1, mgl32.Vec2{}, false, true)
			require.False(t, c.State().Jumped)

			step(c, keys, tt.ticksToLand-1, mgl32.Vec2{}, false, true)
			mover.grounded = true
			step(c, keys, 1, mgl32.Vec2{}, false, true)
			assert.Equal(t, tt.wantJumpLand, c.State().Jumped)
		})
	}
}

func TestSimpleConfigJumpsOnlyWhenGrounded(t *testing.T) {
	c, mover, keys := newTestController(t, Simple(), false, nil)
	step(c, keys, 1, mgl32.Vec2{}, false, true)
	assert.False(t, c.State().Jumped)

	step(c, keys, 1, mgl32.Vec2{}, false, false)
	mover.grounded = true
	step(c, keys, 1, mgl32.Vec2{}, false, true)
	assert.True(t, c.State().Jumped)
}

func TestBackpedalKeepsFacing(t *testing.T) {
	conf := DefaultConfig()
	cam := mockCamera{forward: mgl32.Vec3{1, 0, 0}, right: mgl32.Vec3{0, 0, -1}}
	c, mover, keys := newTestController(t, conf, true, flatGround(), WithCamera(cam))
	start := c.Orientation()

	for range 200 {
		step(c, keys, 1, mgl32.Vec2{0, -1}, false, false)
		require.Equal(t, start, c.Orientation())
		require.True(t, c.State().Backpedalling)
	}
	assert.InDelta(t, conf.WalkSpeed*conf.BackpedalMultiplier, c.State().Speed, 1e-5)

	// Body faces +Z with identity orientation, so retreating moves along -Z regardless of the camera.
	move := mover.lastHorizontal()
	assert.Less(t, move.Z(), float32(0))
	assert.InDelta(t, 0, move.X(), 1e-5)
	assert.InDelta(t, conf.WalkSpeed*conf.BackpedalMultiplier*dt, move.Len(), 1e-5)
}

func TestBackpedalWithoutKeepFacingTurnsAround(t *testing.T) {
	conf := DefaultConfig()
	conf.KeepFacingOnBackpedal = false
	c, _, keys := newTestController(t, conf, true, flatGround())

	step(c, keys, 200, mgl32.Vec2{0, -1}, false, false)
	assert.InDelta(t, conf.WalkSpeed, c.State().Speed, 1e-5)
	assert.True(t, game.Vec3ApproxEq(game.Forward(c.Orientation()), mgl32.Vec3{0, 0, -1}, 1e-3))
}

func TestStrafingBackwardsIsNotBackpedal(t *testing.T) {
	c, _, keys := newTestController(t, DefaultConfig(), true, flatGround())
	step(c, keys, 1, mgl32.Vec2{0.7, -0.7}, false, false)
	assert.False(t, c.State().Backpedalling)
}

func TestOrientationBlendsTowardsMovement(t *testing.T) {
	conf := DefaultConfig()
	c, mover, keys := newTestController(t, conf, true, flatGround())

	step(c, keys, 1, mgl32.Vec2{1, 0}, false, false)
	forward := game.Forward(c.Orientation())
	// One tick is not a hard snap.
	assert.Greater(t, forward.Z(), float32(0.1))
	assert.Greater(t, forward.X(), float32(0.1))
	assert.Equal(t, c.Orientation(), mover.rotation)

	step(c, keys, 200, mgl32.Vec2{1, 0}, false, false)
	assert.True(t, game.Vec3ApproxEq(game.Forward(c.Orientation()), game.WorldRight, 1e-3))
}

func TestCameraRelativeMovement(t *testing.T) {
	cam := mockCamera{forward: mgl32.Vec3{1, -0.5, 0}, right: mgl32.Vec3{0, 0, -1}}
	c, mover, keys := newTestController(t, DefaultConfig(), true, flatGround(), WithCamera(cam))
	step(c, keys, 10, mgl32.Vec2{0, 1}, false, false)
	move := mover.lastHorizontal()
	assert.Greater(t, move.X(), float32(0))
	assert.InDelta(t, 0, move.Z(), 1e-5)

	c.SetCamera(nil)
	step(c, keys, 1, mgl32.Vec2{0, 1}, false, false)
	move = mover.lastHorizontal()
	assert.Greater(t, move.Z(), float32(0))
	assert.InDelta(t, 0, move.X(), 1e-5)
}

func TestSlopeSlide(t *testing.T) {
	tests := []struct {
		name      string
		angle     float32
		wantSlide bool
	}{
		{"steep", 50, true},
		{"walkable", 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ground := mockGround{normal: slopeNormal(tt.angle), hit: true}
			c, mover, keys := newTestController(t, DefaultConfig(), true, ground)
			step(c, keys, 1, mgl32.Vec2{}, false, false)

			assert.Equal(t, tt.wantSlide, c.State().Sliding)
			move := mover.lastHorizontal()
			if tt.wantSlide {
				// The normal leans towards +X, so downhill is +X.
				assert.Greater(t, move.X(), float32(0))
			} else {
				assert.Equal(t, mgl32.Vec3{}, move)
			}
		})
	}
}

func TestSlopeSlideRequiresGrounded(t *testing.T) {
	ground := mockGround{normal: slopeNormal(60), hit: true}
	c, _, keys := newTestController(t, DefaultConfig(), false, ground)
	step(c, keys, 1, mgl32.Vec2{}, false, false)
	assert.False(t, c.State().Sliding)
}

func TestMovementFollowsSlope(t *testing.T) {
	ground := mockGround{normal: slopeNormal(30), hit: true}
	c, _, keys := newTestController(t, DefaultConfig(), true, ground)
	// Walking along +X descends the slope; part of the speed goes into the incline.
	step(c, keys, 200, mgl32.Vec2{1, 0}, false, false)
	s := c.State()
	assert.InDelta(t, DefaultConfig().WalkSpeed, s.Speed, 1e-5)
	assert.Greater(t, s.Velocity.X(), float32(0))
	assert.InDelta(t, DefaultConfig().WalkSpeed*math32.Cos(mgl32.DegToRad(30)), math32.Abs(s.Velocity.X()), 1e-3)
}

func TestJumpOnSlopeLeavesSurfaceDirection(t *testing.T) {
	conf := DefaultConfig()
	ground := mockGround{normal: slopeNormal(30), hit: true}
	c, mover, keys := newTestController(t, conf, true, ground)
	step(c, keys, 200, mgl32.Vec2{1, 0}, false, false)

	step(c, keys, 1, mgl32.Vec2{1, 0}, false, true)
	s := c.State()
	require.True(t, s.Jumped)
	// The jump tick moves at the full horizontal speed instead of the share left after following the incline.
	assert.InDelta(t, conf.WalkSpeed*conf.MaxAirControl, s.Velocity.X(), 1e-4)
	assert.InDelta(t, 0, s.Velocity.Z(), 1e-5)

	mover.grounded = false
	step(c, keys, 1, mgl32.Vec2{1, 0}, false, false)
	assert.InDelta(t, conf.WalkSpeed*conf.MaxAirControl, c.State().Velocity.X(), 1e-4)
}

func TestAirControl(t *testing.T) {
	conf := DefaultConfig()
	c, mover, keys := newTestController(t, conf, true, flatGround())
	step(c, keys, 100, mgl32.Vec2{0, 1}, false, false)
	grounded := mover.lastHorizontal().Len()

	mover.grounded = false
	step(c, keys, 1, mgl32.Vec2{0, 1}, false, false)
	assert.InDelta(t, grounded*conf.MaxAirControl, mover.lastHorizontal().Len(), 1e-5)
}

func TestZeroTickIsIdempotent(t *testing.T) {
	c, mover, keys := newTestController(t, DefaultConfig(), true, flatGround())
	step(c, keys, 10, mgl32.Vec2{0.3, 0.8}, true, false)
	before := c.State()
	moves := len(mover.moves)

	keys.Tick()
	keys.SetHeld(input.Jump, true)
	c.Update(0)

	after := c.State()
	assert.Equal(t, before.Speed, after.Speed)
	assert.Equal(t, before.VerticalVelocity, after.VerticalVelocity)
	assert.Equal(t, before.Orientation, c.Orientation())
	assert.Len(t, mover.moves, moves)
}

func TestMissingCollaboratorsDegrade(t *testing.T) {
	mover := &mockMover{grounded: true, slopeLimit: 45}
	c := New(DefaultConfig(), mover, nil, nil)
	c.Update(dt)

	s := c.State()
	assert.Equal(t, game.WorldUp, s.GroundNormal)
	assert.False(t, s.ProbeGrounded)
	assert.Zero(t, s.Speed)
	assert.Len(t, mover.moves, 1)
}
