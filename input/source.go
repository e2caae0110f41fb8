package input

import "github.com/go-gl/mathgl/mgl32"

// Action identifies a bound input action, such as the movement axis or the jump button.
type Action string

const (
	Move   Action = "move"
	Look   Action = "look"
	Jump   Action = "jump"
	Sprint Action = "sprint"
)

// Source is a raw input device. Implementations return neutral values (zero axis, not held, not pressed)
// for actions they do not know about instead of failing.
type Source interface {
	// ReadAxis2D returns the current value of a two dimensional axis.
	ReadAxis2D(id Action) mgl32.Vec2
	// IsHeld returns true while the button is held down.
	IsHeld(id Action) bool
	// WasPressedThisTick returns true only on the tick the button transitioned to pressed.
	WasPressedThisTick(id Action) bool
}

// NopSource is a Source that never reports any input.
type NopSource struct{}

func (NopSource) ReadAxis2D(Action) mgl32.Vec2   { return mgl32.Vec2{} }
func (NopSource) IsHeld(Action) bool             { return false }
func (NopSource) WasPressedThisTick(Action) bool { return false }
