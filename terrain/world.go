package terrain

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
	"github.com/oomph-ac/locomotion/locomotion"
)

// World is a static set of patches. It answers the ground queries of a controller.
type World struct {
	patches []Patch
}

// NewWorld returns a world made of the patches passed.
func NewWorld(patches ...Patch) *World {
	return &World{patches: patches}
}

// FromConfig builds a world from patch configurations.
func FromConfig(conf []PatchConfig) *World {
	patches := make([]Patch, 0, len(conf))
	for _, c := range conf {
		patches = append(patches, c.Patch())
	}
	return NewWorld(patches...)
}

// Flat returns a world with a single flat patch of the given half size at height zero.
func Flat(halfSize float32) *World {
	return FromConfig([]PatchConfig{{MinX: -halfSize, MinZ: -halfSize, MaxX: halfSize, MaxZ: halfSize}})
}

// Patches returns the patches of the world.
func (w *World) Patches() []Patch {
	return w.patches
}

// SphereCast implements locomotion.GroundQuery. It returns the closest solid patch matching mask.
func (w *World) SphereCast(origin mgl32.Vec3, radius float32, direction mgl32.Vec3, maxDistance float32, mask uint32) (locomotion.GroundHit, bool) {
	dir := game.SafeNormalize(direction)
	if dir.LenSqr() == 0 {
		return locomotion.GroundHit{}, false
	}

	var (
		best  locomotion.GroundHit
		found bool
	)
	for _, p := range w.patches {
		if p.Trigger || p.Layer&mask == 0 {
			continue
		}
		t, ok := p.sphereCast(origin, radius, dir)
		if !ok || t > maxDistance {
			continue
		}
		if !found || t < best.Distance {
			best, found = locomotion.GroundHit{Normal: p.Normal, Distance: t}, true
		}
	}
	return best, found
}

// SurfaceBelow returns the highest solid surface under pos that is no more than step above it.
func (w *World) SurfaceBelow(pos mgl32.Vec3, step float32) (height float32, normal mgl32.Vec3, ok bool) {
	for _, p := range w.patches {
		if p.Trigger {
			continue
		}
		h, within := p.HeightAt(pos.X(), pos.Z())
		if !within || h > pos.Y()+step {
			continue
		}
		if !ok || h > height {
			height, normal, ok = h, p.Normal, true
		}
	}
	return height, normal, ok
}
