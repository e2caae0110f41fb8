package terrain

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func steepWorld(angle float32) *World {
	return FromConfig([]PatchConfig{{MinX: -20, MinZ: -20, MaxX: 20, MaxZ: 20, Slope: angle, SlopeYaw: 90}})
}

func TestSphereCastFlat(t *testing.T) {
	w := Flat(10)
	hit, ok := w.SphereCast(mgl32.Vec3{0, 1, 0}, 0.25, game.WorldDown, 2, ^uint32(0))
	require.True(t, ok)
	assert.InDelta(t, 0.75, hit.Distance, 1e-5)
	assert.True(t, game.Vec3ApproxEq(hit.Normal, game.WorldUp, 1e-6))

	_, ok = w.SphereCast(mgl32.Vec3{0, 1, 0}, 0.25, game.WorldDown, 0.5, ^uint32(0))
	assert.False(t, ok, "surface is beyond max distance")

	_, ok = w.SphereCast(mgl32.Vec3{50, 1, 0}, 0.25, game.WorldDown, 2, ^uint32(0))
	assert.False(t, ok, "outside the footprint")

	_, ok = w.SphereCast(mgl32.Vec3{0, 1, 0}, 0.25, game.WorldUp, 2, ^uint32(0))
	assert.False(t, ok, "moving away from the surface")
}

func TestSphereCastFiltersLayersAndTriggers(t *testing.T) {
	w := FromConfig([]PatchConfig{
		{MinX: -5, MinZ: -5, MaxX: 5, MaxZ: 5, Height: 2, Trigger: true},
		{MinX: -5, MinZ: -5, MaxX: 5, MaxZ: 5, Height: 1, Layer: 2},
		{MinX: -5, MinZ: -5, MaxX: 5, MaxZ: 5},
	})
	hit, ok := w.SphereCast(mgl32.Vec3{0, 3, 0}, 0.1, game.WorldDown, 10, ^uint32(0))
	require.True(t, ok)
	assert.InDelta(t, 1.9, hit.Distance, 1e-5)

	hit, ok = w.SphereCast(mgl32.Vec3{0, 3, 0}, 0.1, game.WorldDown, 10, DefaultLayer)
	require.True(t, ok)
	assert.InDelta(t, 2.9, hit.Distance, 1e-5)
}

func TestPatchSlope(t *testing.T) {
	p := PatchConfig{MinX: -10, MinZ: -10, MaxX: 10, MaxZ: 10, Slope: 50, SlopeYaw: 90}.Patch()
	assert.InDelta(t, 50, game.AngleBetween(p.Normal, game.WorldUp), 1e-3)

	h0, ok := p.HeightAt(0, 0)
	require.True(t, ok)
	h1, _ := p.HeightAt(1, 0)
	assert.InDelta(t, -math32.Tan(mgl32.DegToRad(50)), h1-h0, 1e-4)

	_, ok = p.HeightAt(11, 0)
	assert.False(t, ok)
}

func TestBodyFallsAndLands(t *testing.T) {
	b := NewBody(DefaultBodyConfig(), Flat(10), mgl32.Vec3{0, 2, 0})
	require.False(t, b.Grounded())

	for range 100 {
		b.Move(mgl32.Vec3{0, -0.1, 0})
	}
	assert.True(t, b.Grounded())
	assert.Equal(t, float32(0), b.Position().Y())

	b.Move(mgl32.Vec3{0, 0.05, 0})
	assert.False(t, b.Grounded())
}

func TestBodyBoundingBox(t *testing.T) {
	b := NewBody(DefaultBodyConfig(), Flat(10), mgl32.Vec3{1, 0, 2})
	bb := b.BoundingBox()
	assert.True(t, game.Vec3ApproxEq(bb.Min(), mgl32.Vec3{0.7, 0, 1.7}, 1e-6))
	assert.True(t, game.Vec3ApproxEq(bb.Max(), mgl32.Vec3{1.3, 1.8, 2.3}, 1e-6))
}

type fakeObstacle struct {
	box      cube.BBox
	blocking bool
}

func (o *fakeObstacle) Blocking() bool         { return o.blocking }
func (o *fakeObstacle) BoundingBox() cube.BBox { return o.box }

func TestBodyBlockedByObstacle(t *testing.T) {
	wall := &fakeObstacle{box: cube.Box(-1, 0, 2, 1, 2.5, 2.2), blocking: true}
	b := NewBody(DefaultBodyConfig(), Flat(10), mgl32.Vec3{})
	b.AddObstacle(wall)

	for range 40 {
		b.Move(mgl32.Vec3{0.01, 0, 0.1})
	}
	assert.LessOrEqual(t, b.Position().Z(), float32(1.7001))
	assert.Greater(t, b.Position().Z(), float32(1.5))
	// The blocked axis is dropped, the other one still moves.
	assert.InDelta(t, 0.4, b.Position().X(), 1e-4)

	b.Teleport(mgl32.Vec3{0, 0, 1.6})
	wall.blocking = false
	for range 4 {
		b.Move(mgl32.Vec3{0, 0, 0.1})
	}
	assert.InDelta(t, 2, b.Position().Z(), 1e-4)

	// A body already overlapping a blocker that becomes solid can still leave it.
	wall.blocking = true
	b.Move(mgl32.Vec3{0, 0, 0.5})
	assert.InDelta(t, 2.5, b.Position().Z(), 1e-4)
}

func TestControllerWalksAndJumps(t *testing.T) {
	const dt = float32(0.02)
	w := Flat(50)
	body := NewBody(DefaultBodyConfig(), w, mgl32.Vec3{})
	keys := input.NewKeys()
	c := locomotion.New(locomotion.DefaultConfig(), body, w, keys)

	keys.SetAxis(input.Move, mgl32.Vec2{0, 1})
	for range 100 {
		keys.Tick()
		c.Update(dt)
		require.True(t, body.Grounded())
		require.True(t, c.State().ProbeGrounded)
	}
	assert.Greater(t, body.Position().Z(), float32(3))

	keys.Tick()
	keys.SetHeld(input.Jump, true)
	c.Update(dt)
	require.True(t, c.State().Jumped)

	peak := float32(0)
	landed := false
	for range 200 {
		keys.Tick()
		c.Update(dt)
		peak = math32.Max(peak, body.Position().Y())
		if body.Grounded() {
			landed = true
			break
		}
	}
	assert.True(t, landed)
	assert.InDelta(t, 1.2, peak, 0.15)
	assert.Equal(t, float32(0), body.Position().Y())
}

func TestControllerSlidesDownSteepSlope(t *testing.T) {
	w := steepWorld(50)
	body := NewBody(DefaultBodyConfig(), w, mgl32.Vec3{})
	require.True(t, body.Grounded())
	c := locomotion.New(locomotion.DefaultConfig(), body, w, nil)

	for range 50 {
		c.Update(0.02)
	}
	assert.True(t, c.State().Sliding)
	assert.Greater(t, body.Position().X(), float32(0))
}
