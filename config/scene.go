package config

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/scenario"
	"github.com/oomph-ac/locomotion/terrain"
	"github.com/oomph-ac/locomotion/zone"
)

// Door describes a sliding door.
type Door struct {
	Name string `toml:"name" yaml:"name"`
	// Position is the closed position of the door.
	Position  []float32 `toml:"position" yaml:"position"`
	Direction []float32 `toml:"direction" yaml:"direction"`
	Distance  float32   `toml:"distance" yaml:"distance"`
	// Duration is how long one slide takes, in seconds.
	Duration           float32 `toml:"duration" yaml:"duration"`
	StartOpen          bool    `toml:"start_open" yaml:"start_open"`
	ObstacleWhenClosed bool    `toml:"obstacle_when_closed" yaml:"obstacle_when_closed"`
	// Size is the width, height and depth of the panel. An empty size uses the default panel.
	Size []float32 `toml:"size" yaml:"size"`
}

// Camera describes a virtual camera. Yaw is in degrees clockwise from +Z and Pitch in degrees below the
// horizon.
type Camera struct {
	Name     string  `toml:"name" yaml:"name"`
	Priority int     `toml:"priority" yaml:"priority"`
	Yaw      float32 `toml:"yaw" yaml:"yaw"`
	Pitch    float32 `toml:"pitch" yaml:"pitch"`
}

// Volume describes a trigger volume and what happens when the player enters it.
type Volume struct {
	Name string    `toml:"name" yaml:"name"`
	Min  []float32 `toml:"min" yaml:"min"`
	Max  []float32 `toml:"max" yaml:"max"`

	// Door names a door opened when the player enters.
	Door        string `toml:"door" yaml:"door"`
	CloseOnExit bool   `toml:"close_on_exit" yaml:"close_on_exit"`

	// IndoorCamera and OutdoorCamera name the cameras whose priorities are swapped on enter and exit.
	IndoorCamera  string `toml:"indoor_camera" yaml:"indoor_camera"`
	OutdoorCamera string `toml:"outdoor_camera" yaml:"outdoor_camera"`
}

// Default returns the configuration written when no file exists: a walk across a porch with a sliding
// door, followed by a sprint, a jump, a backpedal and a slide down a steep slope.
func Default() File {
	return File{
		Locomotion: locomotion.DefaultConfig(),
		Body:       terrain.DefaultBodyConfig(),
		Terrain: []terrain.PatchConfig{
			{MinX: -20, MinZ: -20, MaxX: 20, MaxZ: 20},
			{MinX: 20, MinZ: -5, MaxX: 30, MaxZ: 5, Height: -5.96, Slope: 50, SlopeYaw: 90},
		},
		Doors: []Door{{
			Name:               "porch_door",
			Position:           []float32{0, 0, 6},
			Direction:          []float32{1, 0, 0},
			Distance:           2,
			Duration:           0.35,
			ObstacleWhenClosed: true,
			Size:               []float32{2, 2.5, 0.2},
		}},
		Cameras: []Camera{
			{Name: "outdoor", Priority: 10, Pitch: 15},
			{Name: "indoor", Priority: 0, Pitch: 30},
		},
		Volumes: []Volume{{
			Name:          "porch",
			Min:           []float32{-2, 0, 3},
			Max:           []float32{2, 3, 8},
			Door:          "porch_door",
			CloseOnExit:   true,
			IndoorCamera:  "indoor",
			OutdoorCamera: "outdoor",
		}},
		Logging: Logging{Level: "info"},
		Scenario: Scenario{
			Name:       "default",
			Ticks:      500,
			TickLength: 0.02,
			Spawn:      []float32{0, 0, 0},
			Steps: []scenario.Step{
				{Tick: 0, Move: []float32{0, 1}},
				{Tick: 60, Move: []float32{0, 1}, Sprint: true},
				{Tick: 100, Move: []float32{0, 1}, Sprint: true, Jump: true},
				{Tick: 110, Move: []float32{0, 1}},
				{Tick: 160, Move: []float32{0, -1}},
				{Tick: 220, Move: []float32{1, 0}, Sprint: true},
				{Tick: 440},
			},
		},
	}
}

// vec3 converts a configuration list to a vector. Missing components read as zero.
func vec3(v []float32) mgl32.Vec3 {
	var out mgl32.Vec3
	for i := 0; i < len(v) && i < 3; i++ {
		out[i] = v[i]
	}
	return out
}

// Scene builds the scene and script described by the file. Volumes referring to doors or cameras that do
// not exist are an error.
func (f File) Scene() (scenario.Scene, *scenario.Script, error) {
	scene := scenario.Scene{
		Name:       f.Scenario.Name,
		Locomotion: f.Locomotion,
		Body:       f.Body,
		World:      terrain.FromConfig(f.Terrain),
		Spawn:      vec3(f.Scenario.Spawn),
		SpawnYaw:   f.Scenario.SpawnYaw,
	}

	doors := make(map[string]*zone.Door, len(f.Doors))
	for _, dc := range f.Doors {
		d := zone.NewDoor(vec3(dc.Position), zone.DoorConfig{
			Direction:          vec3(dc.Direction),
			Distance:           dc.Distance,
			Duration:           dc.Duration,
			StartOpen:          dc.StartOpen,
			ObstacleWhenClosed: dc.ObstacleWhenClosed,
			Size:               vec3(dc.Size),
		})
		d.Name = dc.Name
		doors[dc.Name] = d
		scene.Doors = append(scene.Doors, d)
	}

	cams := make(map[string]*zone.VirtualCamera, len(f.Cameras))
	for _, cc := range f.Cameras {
		cam := &zone.VirtualCamera{Name: cc.Name, Priority: cc.Priority, Rotation: cameraRotation(cc.Yaw, cc.Pitch)}
		cams[cc.Name] = cam
		scene.Cameras = append(scene.Cameras, cam)
	}

	for _, vc := range f.Volumes {
		lo, hi := vec3(vc.Min), vec3(vc.Max)
		v := &zone.Volume{Name: vc.Name, Box: cube.Box(lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])}
		if vc.Door != "" {
			d, ok := doors[vc.Door]
			if !ok {
				return scene, nil, fmt.Errorf("volume %q: unknown door %q", vc.Name, vc.Door)
			}
			v.Listeners = append(v.Listeners, &zone.DoorTrigger{Door: d, Tag: scenario.PlayerTag, CloseOnExit: vc.CloseOnExit})
		}
		if vc.IndoorCamera != "" || vc.OutdoorCamera != "" {
			indoor, err := lookupCamera(cams, vc.IndoorCamera)
			if err != nil {
				return scene, nil, fmt.Errorf("volume %q: %w", vc.Name, err)
			}
			outdoor, err := lookupCamera(cams, vc.OutdoorCamera)
			if err != nil {
				return scene, nil, fmt.Errorf("volume %q: %w", vc.Name, err)
			}
			v.Listeners = append(v.Listeners, zone.NewCameraZone(indoor, outdoor))
		}
		scene.Volumes = append(scene.Volumes, v)
	}
	return scene, scenario.NewScript(f.Scenario.Steps...), nil
}

// lookupCamera returns the camera with the name passed. An empty name is no camera.
func lookupCamera(cams map[string]*zone.VirtualCamera, name string) (*zone.VirtualCamera, error) {
	if name == "" {
		return nil, nil
	}
	cam, ok := cams[name]
	if !ok {
		return nil, fmt.Errorf("unknown camera %q", name)
	}
	return cam, nil
}

// cameraRotation returns the rotation of a camera looking along yaw, tilted down by pitch.
func cameraRotation(yaw, pitch float32) mgl32.Quat {
	y, p := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	fwd := mgl32.Vec3{math32.Sin(y) * math32.Cos(p), -math32.Sin(p), math32.Cos(y) * math32.Cos(p)}
	return game.LookRotation(fwd, game.WorldUp)
}
