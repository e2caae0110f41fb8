package game

import "github.com/go-gl/mathgl/mgl32"

// LookRotation returns the orientation whose local forward axis (+Z) points along forward and whose local
// up axis is as close to up as possible. A zero forward yields the identity rotation.
func LookRotation(forward, up mgl32.Vec3) mgl32.Quat {
	f := SafeNormalize(forward)
	if f.LenSqr() == 0 {
		return mgl32.QuatIdent()
	}
	r := SafeNormalize(up.Cross(f))
	if r.LenSqr() == 0 {
		// Looking straight along the up axis.
		r = WorldRight
	}
	u := f.Cross(r)
	return mgl32.Mat4ToQuat(mgl32.Mat3FromCols(r, u, f).Mat4()).Normalize()
}

// Forward returns the local forward axis of the orientation in world space.
func Forward(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(WorldForward)
}

// Right returns the local right axis of the orientation in world space.
func Right(q mgl32.Quat) mgl32.Vec3 {
	return q.Rotate(WorldRight)
}

// BlendRotation spherically interpolates from current towards target by t, clamped to [0, 1]. A
// non-positive t returns current untouched.
func BlendRotation(current, target mgl32.Quat, t float32) mgl32.Quat {
	if t <= 0 {
		return current
	}
	if t >= 1 {
		return target.Normalize()
	}
	return mgl32.QuatSlerp(current, target, t)
}
