package input

import "github.com/go-gl/mathgl/mgl32"

// Keys is a Source fed with level states once per tick. It derives pressed-this-tick edges from the
// transitions between the held states of consecutive ticks.
type Keys struct {
	axes    map[Action]mgl32.Vec2
	held    map[Action]bool
	pressed map[Action]bool
}

// NewKeys returns an empty Keys source.
func NewKeys() *Keys {
	return &Keys{
		axes:    make(map[Action]mgl32.Vec2),
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Tick starts a new tick, clearing the pressed edges of the previous one. Held states and axes persist
// until they are changed.
func (k *Keys) Tick() {
	clear(k.pressed)
}

// SetHeld updates the held state of a button. Going from released to held records a press for the
// current tick.
func (k *Keys) SetHeld(a Action, held bool) {
	if held && !k.held[a] {
		k.pressed[a] = true
	}
	k.held[a] = held
}

// SetAxis sets the value of a two dimensional axis.
func (k *Keys) SetAxis(a Action, v mgl32.Vec2) {
	k.axes[a] = v
}

func (k *Keys) ReadAxis2D(a Action) mgl32.Vec2   { return k.axes[a] }
func (k *Keys) IsHeld(a Action) bool             { return k.held[a] }
func (k *Keys) WasPressedThisTick(a Action) bool { return k.pressed[a] }
