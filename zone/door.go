package zone

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// minSlideDuration keeps the slide progress finite for zero or negative durations.
const minSlideDuration = float32(0.01)

// DoorConfig holds the settings of a sliding door.
type DoorConfig struct {
	// Direction is the direction the door slides in when opening. A zero direction slides along +X.
	Direction mgl32.Vec3
	Distance  float32
	// Duration is how long one slide takes, in seconds.
	Duration  float32
	StartOpen bool
	// ObstacleWhenClosed makes the door block bodies while it is fully closed.
	ObstacleWhenClosed bool
	// Size is the width, height and depth of the panel. A zero size uses the default panel.
	Size mgl32.Vec3
}

// defaultDoorSize is a panel 2 wide, 2.5 tall and 0.2 thick.
var defaultDoorSize = mgl32.Vec3{2, 2.5, 0.2}

// DefaultDoorConfig ...
func DefaultDoorConfig() DoorConfig {
	return DoorConfig{
		Direction:          game.WorldRight,
		Distance:           2,
		Duration:           0.35,
		ObstacleWhenClosed: true,
		Size:               defaultDoorSize,
	}
}

// Door is a panel sliding between a closed and an open position. Slides are advanced by Update.
type Door struct {
	// Name identifies the door in logs.
	Name string

	conf DoorConfig

	closedPos, openPos mgl32.Vec3
	pos                mgl32.Vec3

	from, to   mgl32.Vec3
	progress   float32
	moving     bool
	targetOpen bool
	open       bool

	// OnOpened and OnClosed, if set, are called when a slide reaches its end.
	OnOpened func()
	OnClosed func()
}

// NewDoor returns a door whose closed position is closedPos. The door starts at rest, open or closed
// depending on the configuration, without calling any callback.
func NewDoor(closedPos mgl32.Vec3, conf DoorConfig) *Door {
	dir := game.SafeNormalize(conf.Direction)
	if dir.LenSqr() == 0 {
		dir = game.WorldRight
	}
	if conf.Size == (mgl32.Vec3{}) {
		conf.Size = defaultDoorSize
	}
	d := &Door{
		conf:      conf,
		closedPos: closedPos,
		openPos:   closedPos.Add(dir.Mul(conf.Distance)),
		open:      conf.StartOpen,
	}
	d.pos = d.closedPos
	if d.open {
		d.pos = d.openPos
	}
	return d
}

// Open starts sliding the door open unless it is open or already opening.
func (d *Door) Open() {
	if d.heading() {
		return
	}
	d.start(true)
}

// Close starts sliding the door closed unless it is closed or already closing.
func (d *Door) Close() {
	if !d.heading() {
		return
	}
	d.start(false)
}

// Toggle starts sliding the door towards the opposite of the state it is in or heading to.
func (d *Door) Toggle() {
	d.start(!d.heading())
}

// heading returns true if the door is open, or will be once the current slide ends.
func (d *Door) heading() bool {
	if d.moving {
		return d.targetOpen
	}
	return d.open
}

// start begins a slide from wherever the door currently is, replacing any slide in progress.
func (d *Door) start(open bool) {
	d.from = d.pos
	d.to = d.closedPos
	if open {
		d.to = d.openPos
	}
	d.targetOpen = open
	d.progress = 0
	d.moving = true
}

// Update advances the current slide by dt seconds.
func (d *Door) Update(dt float32) {
	if !d.moving {
		return
	}
	d.progress += dt / math32.Max(minSlideDuration, d.conf.Duration)
	eased := easeInOut(game.Clamp01(d.progress))
	d.pos = d.from.Add(d.to.Sub(d.from).Mul(eased))
	if d.progress < 1 {
		return
	}

	d.pos = d.to
	d.open = d.targetOpen
	d.moving = false
	if d.open {
		if d.OnOpened != nil {
			d.OnOpened()
		}
	} else if d.OnClosed != nil {
		d.OnClosed()
	}
}

// easeInOut is a cubic curve with flat tangents at both ends.
func easeInOut(t float32) float32 {
	return t * t * (3 - 2*t)
}

// Position returns the current position of the door panel.
func (d *Door) Position() mgl32.Vec3 { return d.pos }

// IsOpen returns true once the door has finished opening, until it finishes closing.
func (d *Door) IsOpen() bool { return d.open }

// Moving returns true while a slide is in progress.
func (d *Door) Moving() bool { return d.moving }

// Blocking returns true if the door blocks bodies moving into its panel.
func (d *Door) Blocking() bool {
	return d.conf.ObstacleWhenClosed && !d.open
}

// BoundingBox returns the box of the panel at its current position. The position is the bottom centre of
// the panel.
func (d *Door) BoundingBox() cube.BBox {
	half := d.conf.Size.Mul(0.5)
	return cube.Box(
		d.pos.X()-half.X(), d.pos.Y(), d.pos.Z()-half.Z(),
		d.pos.X()+half.X(), d.pos.Y()+d.conf.Size.Y(), d.pos.Z()+half.Z(),
	)
}

// DoorTrigger opens a door when a body with a matching tag enters its volume and, optionally, closes it
// again when the body leaves.
type DoorTrigger struct {
	Door        *Door
	Tag         string
	CloseOnExit bool
}

func (t *DoorTrigger) OnEnter(tag string) {
	if tag == t.Tag && t.Door != nil {
		t.Door.Open()
	}
}

func (t *DoorTrigger) OnExit(tag string) {
	if t.CloseOnExit && tag == t.Tag && t.Door != nil {
		t.Door.Close()
	}
}
