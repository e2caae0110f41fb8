package input

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// Bindings names the actions the sampler reads. An empty action is treated as unbound.
type Bindings struct {
	Move   Action
	Sprint Action
	Jump   Action
}

// DefaultBindings returns the bindings of the default "player" action map.
func DefaultBindings() Bindings {
	return Bindings{Move: Move, Sprint: Sprint, Jump: Jump}
}

// Sample is a single tick of sampled input.
type Sample struct {
	Axis       mgl32.Vec2
	SprintHeld bool
	JumpPress  bool
}

// Sampler reads the movement axis, sprint and jump state from a Source. Every read tolerates a missing
// source, an unbound action or a disabled action map by returning the neutral value.
type Sampler struct {
	src      Source
	bindings Bindings
	ctx      *Context
}

// NewSampler returns a sampler reading from src. src and ctx may be nil.
func NewSampler(src Source, bindings Bindings, ctx *Context) *Sampler {
	return &Sampler{src: src, bindings: bindings, ctx: ctx}
}

func (s *Sampler) usable(a Action) bool {
	if s == nil || s.src == nil || a == "" {
		return false
	}
	return s.ctx.Enabled(a)
}

// Axis returns the movement axis with each component in [-1, 1] and its magnitude clamped to 1.
func (s *Sampler) Axis() mgl32.Vec2 {
	if !s.usable(s.bindings.Move) {
		return mgl32.Vec2{}
	}
	v := s.src.ReadAxis2D(s.bindings.Move)
	for i := range v {
		if math32.IsNaN(v[i]) || math32.IsInf(v[i], 0) {
			v[i] = 0
		}
		v[i] = game.ClampFloat(v[i], -1, 1)
	}
	return game.ClampMagnitude2(v, 1)
}

// SprintHeld returns true while the sprint action is held.
func (s *Sampler) SprintHeld() bool {
	return s.usable(s.bindings.Sprint) && s.src.IsHeld(s.bindings.Sprint)
}

// JumpPressed returns true on the tick the jump action was pressed.
func (s *Sampler) JumpPressed() bool {
	return s.usable(s.bindings.Jump) && s.src.WasPressedThisTick(s.bindings.Jump)
}

// Sample reads all three values at once.
func (s *Sampler) Sample() Sample {
	return Sample{
		Axis:       s.Axis(),
		SprintHeld: s.SprintHeld(),
		JumpPress:  s.JumpPressed(),
	}
}
