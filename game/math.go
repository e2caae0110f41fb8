package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Clamp01 clamps the given value to [0, 1].
func Clamp01(num float32) float32 {
	return ClampFloat(num, 0, 1)
}

// MoveTowards moves current towards target by at most maxDelta. The result never overshoots the target.
func MoveTowards(current, target, maxDelta float32) float32 {
	if math32.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// Horizontal returns the vector with its vertical component removed.
func Horizontal(vec3 mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{vec3.X(), 0, vec3.Z()}
}

// SafeNormalize returns the unit vector of v, or the zero vector if v is too small to be normalized.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= 1e-5 {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// ProjectOnPlane removes the component of v along the plane normal n.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	sqrLen := n.LenSqr()
	if sqrLen < 1e-12 {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / sqrLen))
}

// AngleBetween returns the angle in degrees between two vectors. Zero vectors yield 0.
func AngleBetween(a, b mgl32.Vec3) float32 {
	denom := math32.Sqrt(a.LenSqr() * b.LenSqr())
	if denom < 1e-15 {
		return 0
	}
	cos := ClampFloat(a.Dot(b)/denom, -1, 1)
	return mgl32.RadToDeg(math32.Acos(cos))
}

// ClampMagnitude2 returns v scaled down so its length does not exceed max.
func ClampMagnitude2(v mgl32.Vec2, max float32) mgl32.Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Mul(max / l)
}

// Vec3ApproxEq returns true if every component of a is within eps of the same component of b. Unlike
// mgl32's ApproxEqualThreshold, the tolerance is absolute, so components expected to be zero accept
// rounding noise.
func Vec3ApproxEq(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if math32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
