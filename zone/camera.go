package zone

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// VirtualCamera is a camera competing for control through its priority. It implements locomotion.Camera.
type VirtualCamera struct {
	Name     string
	Priority int
	Rotation mgl32.Quat
}

func (c *VirtualCamera) Forward() mgl32.Vec3 { return game.Forward(c.Rotation) }
func (c *VirtualCamera) Right() mgl32.Vec3   { return game.Right(c.Rotation) }

// Cameras is the set of virtual cameras of a scene.
type Cameras []*VirtualCamera

// Active returns the camera with the highest priority. The earliest camera wins ties. nil is returned if
// the set holds no cameras.
func (c Cameras) Active() *VirtualCamera {
	var active *VirtualCamera
	for _, cam := range c {
		if cam != nil && (active == nil || cam.Priority > active.Priority) {
			active = cam
		}
	}
	return active
}

// CameraZone hands control to the indoor camera while a body with a matching tag is inside its volume, and
// back to the outdoor camera when it leaves. Either camera may be nil.
type CameraZone struct {
	Indoor, Outdoor                 *VirtualCamera
	IndoorPriority, OutdoorPriority int
	Tag                             string
}

// NewCameraZone returns a zone for the "Player" tag with the default priorities of 20 indoors and 10
// outdoors.
func NewCameraZone(indoor, outdoor *VirtualCamera) *CameraZone {
	return &CameraZone{Indoor: indoor, Outdoor: outdoor, IndoorPriority: 20, OutdoorPriority: 10, Tag: "Player"}
}

func (z *CameraZone) OnEnter(tag string) {
	if tag != z.Tag {
		return
	}
	z.set(z.IndoorPriority, z.OutdoorPriority)
}

func (z *CameraZone) OnExit(tag string) {
	if tag != z.Tag {
		return
	}
	z.set(z.OutdoorPriority, z.IndoorPriority)
}

func (z *CameraZone) set(indoor, outdoor int) {
	if z.Indoor != nil {
		z.Indoor.Priority = indoor
	}
	if z.Outdoor != nil {
		z.Outdoor.Priority = outdoor
	}
}
