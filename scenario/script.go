package scenario

import (
	"slices"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/input"
)

// Step is the input state held from its tick until the next step. Jump is the held state of the jump
// button: a press is registered on the tick it goes from released to held.
type Step struct {
	Tick   uint64    `toml:"tick" yaml:"tick"`
	Move   []float32 `toml:"move" yaml:"move"`
	Sprint bool      `toml:"sprint" yaml:"sprint"`
	Jump   bool      `toml:"jump" yaml:"jump"`
}

// axis returns the movement axis of the step. Missing components read as zero.
func (s Step) axis() mgl32.Vec2 {
	var v mgl32.Vec2
	for i := 0; i < len(s.Move) && i < 2; i++ {
		v[i] = s.Move[i]
	}
	return v
}

// Script replays a timeline of steps as an input.Source. Advance must be called once at the start of
// every tick.
type Script struct {
	timeline *orderedmap.OrderedMap[uint64, Step]
	keys     *input.Keys
}

// NewScript returns a script over the steps passed. When two steps share a tick, the later one wins.
func NewScript(steps ...Step) *Script {
	sorted := slices.Clone(steps)
	slices.SortStableFunc(sorted, func(a, b Step) int {
		switch {
		case a.Tick < b.Tick:
			return -1
		case a.Tick > b.Tick:
			return 1
		}
		return 0
	})

	s := &Script{timeline: orderedmap.NewOrderedMap[uint64, Step](), keys: input.NewKeys()}
	for _, step := range sorted {
		s.timeline.Set(step.Tick, step)
	}
	return s
}

// Advance clears the edges of the previous tick and applies the step scheduled for the tick passed, if
// any.
func (s *Script) Advance(tick uint64) {
	s.keys.Tick()
	step, ok := s.timeline.Get(tick)
	if !ok {
		return
	}
	s.keys.SetAxis(input.Move, step.axis())
	s.keys.SetHeld(input.Sprint, step.Sprint)
	s.keys.SetHeld(input.Jump, step.Jump)
}

// Steps returns the steps of the script ordered by tick.
func (s *Script) Steps() []Step {
	steps := make([]Step, 0, s.timeline.Len())
	for el := s.timeline.Front(); el != nil; el = el.Next() {
		steps = append(steps, el.Value)
	}
	return steps
}

// LastTick returns the tick of the final step, or zero for an empty script.
func (s *Script) LastTick() uint64 {
	if el := s.timeline.Back(); el != nil {
		return el.Key
	}
	return 0
}

func (s *Script) ReadAxis2D(a input.Action) mgl32.Vec2   { return s.keys.ReadAxis2D(a) }
func (s *Script) IsHeld(a input.Action) bool             { return s.keys.IsHeld(a) }
func (s *Script) WasPressedThisTick(a input.Action) bool { return s.keys.WasPressedThisTick(a) }
