package scenario

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/recording"
	"github.com/oomph-ac/locomotion/terrain"
	"github.com/oomph-ac/locomotion/zone"
	"github.com/sirupsen/logrus"
)

// PlayerTag is the tag the controlled body is tracked with against trigger volumes.
const PlayerTag = "Player"

// Scene is everything a scenario runs in besides its input.
type Scene struct {
	Name       string
	Locomotion locomotion.Config
	Body       terrain.BodyConfig
	World      *terrain.World
	// Spawn is the starting position of the body and SpawnYaw the direction it faces, in degrees clockwise
	// from +Z.
	Spawn    mgl32.Vec3
	SpawnYaw float32

	Volumes []*zone.Volume
	Doors   []*zone.Door
	Cameras zone.Cameras
}

// Result is the outcome of a scenario run.
type Result struct {
	Name   string
	Final  locomotion.State
	Frames []recording.Frame
	Digest uint64
	Events []zone.Event
	// Recording holds every frame of the run.
	Recording *recording.Recorder
}

// Summary formats the aggregate values of the run on a single line.
func (r Result) Summary() string {
	if r.Recording == nil {
		return fmt.Sprintf("%s: no frames", r.Name)
	}
	sum := r.Recording.Summary()
	sum.Set("zone_events", len(r.Events))
	return fmt.Sprintf("%s: %s", r.Name, recording.FormatSummary(sum))
}

// Runner drives one controller through a scene with a script. A runner is single threaded: separate
// runners may run concurrently as long as they share nothing mutable.
type Runner struct {
	scene  Scene
	script *Script
	log    *logrus.Entry

	body       *terrain.Body
	controller *locomotion.Controller
	tracker    *zone.Tracker
	recorder   *recording.Recorder

	activeCam *zone.VirtualCamera
	events    []zone.Event
}

// NewRunner sets up the body, controller and zone tracking of the scene passed. log may be nil.
func NewRunner(scene Scene, script *Script, log *logrus.Entry) *Runner {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = logrus.NewEntry(l)
	}
	if script == nil {
		script = NewScript()
	}
	if scene.World == nil {
		scene.World = terrain.NewWorld()
	}
	log = log.WithField("scenario", scene.Name)

	r := &Runner{
		scene:   scene,
		script:  script,
		log:     log,
		body:    terrain.NewBody(scene.Body, scene.World, scene.Spawn),
		tracker: zone.NewTracker(scene.Volumes...),
	}
	actions := input.NewContext(input.DefaultMaps()...)
	actions.EnableAll()
	r.controller = locomotion.New(scene.Locomotion, r.body, scene.World, script,
		locomotion.WithLogger(log),
		locomotion.WithSampler(input.NewSampler(script, input.DefaultBindings(), actions)),
	)
	log.Debugf("scene with %d terrain patches, %d volumes", len(scene.World.Patches()), len(scene.Volumes))
	r.controller.SetOrientation(game.LookRotation(yawDirection(scene.SpawnYaw), game.WorldUp))

	for _, d := range scene.Doors {
		r.hookDoor(d)
		r.body.AddObstacle(d)
	}
	r.bindCamera()
	return r
}

// yawDirection returns the horizontal direction of a yaw in degrees, where zero is +Z and 90 is +X.
func yawDirection(yaw float32) mgl32.Vec3 {
	rad := mgl32.DegToRad(yaw)
	return mgl32.Vec3{math32.Sin(rad), 0, math32.Cos(rad)}
}

func (r *Runner) hookDoor(d *zone.Door) {
	opened, closed := d.OnOpened, d.OnClosed
	d.OnOpened = func() {
		r.log.Infof("door %q opened", d.Name)
		if opened != nil {
			opened()
		}
	}
	d.OnClosed = func() {
		r.log.Infof("door %q closed", d.Name)
		if closed != nil {
			closed()
		}
	}
}

// bindCamera points the controller at the active virtual camera, or at world axes if there is none.
func (r *Runner) bindCamera() {
	if len(r.scene.Cameras) == 0 {
		return
	}
	active := r.scene.Cameras.Active()
	if active == r.activeCam {
		return
	}
	r.activeCam = active
	if active == nil {
		r.controller.SetCamera(nil)
		return
	}
	r.log.Infof("camera switched to %q", active.Name)
	r.controller.SetCamera(active)
}

// Controller returns the controller driven by the runner.
func (r *Runner) Controller() *locomotion.Controller {
	return r.controller
}

// Body returns the body moved by the controller.
func (r *Runner) Body() *terrain.Body {
	return r.body
}

// Step runs a single tick of dt seconds.
func (r *Runner) Step(dt float32) {
	tick := r.controller.State().Tick
	r.script.Advance(tick)
	r.bindCamera()
	r.controller.Update(dt)

	for _, d := range r.scene.Doors {
		d.Update(dt)
	}
	for _, ev := range r.tracker.Update(PlayerTag, r.body.BoundingBox()) {
		r.log.Infof("%s %s volume %q", ev.Tag, ev.Type, ev.Volume)
		r.events = append(r.events, ev)
	}
	if r.recorder != nil {
		r.recorder.Record(r.controller.State())
	}
}

// Run runs ticks ticks of dt seconds each and returns the recording of the run.
func (r *Runner) Run(ticks int, dt float32) (Result, error) {
	if ticks < 0 {
		return Result{}, oerror.New("scenario %q: negative tick count %d", r.scene.Name, ticks)
	}
	if dt <= 0 || math32.IsNaN(dt) || math32.IsInf(dt, 0) {
		return Result{}, oerror.New("scenario %q: tick length must be positive, got %v", r.scene.Name, dt)
	}

	r.recorder = recording.NewRecorder(ticks)
	r.events = nil
	for range ticks {
		r.Step(dt)
	}

	final := r.controller.State()
	r.log.WithField("ticks", ticks).Debugf("finished at %v", final.Position)
	return Result{
		Name:      r.scene.Name,
		Final:     final,
		Frames:    r.recorder.Frames(),
		Digest:    r.recorder.Digest(),
		Events:    r.events,
		Recording: r.recorder,
	}, nil
}
