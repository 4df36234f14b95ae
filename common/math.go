// package common contains common math helpers and plain data types shared by the
// animation core. They are not interface-wrapped structs, just small free
// functions used throughout the engine's per-tick computations.
package common

import "math"

// Clamp constrains v to the closed interval [min, max].
//
// Parameters:
//   - v: the value to constrain
//   - min: lower bound of the interval
//   - max: upper bound of the interval
//
// Returns:
//   - float64: v limited to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clamp01 constrains v to the unit interval [0, 1]. This is the canonical
// defensive guard for normalized time-of-day and interpolation inputs.
//
// Parameters:
//   - v: the value to constrain
//
// Returns:
//   - float64: v limited to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Lerp linearly interpolates between a and b by t. t is not clamped; callers
// that need clamping apply Clamp01 first.
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: interpolation factor
//
// Returns:
//   - float64: the interpolated value
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MixVec3 linearly interpolates each component of two 3-vectors by t.
// Used by the camera rig's damped convergence step every tick.
//
// Parameters:
//   - a: vector at t = 0
//   - b: vector at t = 1
//   - t: interpolation factor
//
// Returns:
//   - [3]float32: the component-wise interpolated vector
func MixVec3(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// Normalize3 returns the unit vector with the same direction as (x, y, z).
// A zero-length input yields the zero vector rather than NaN components.
//
// Parameters:
//   - x, y, z: vector components
//
// Returns:
//   - [3]float32: the normalized vector, or the zero vector for zero input
func Normalize3(x, y, z float32) [3]float32 {
	lenSq := float64(x*x + y*y + z*z)
	if lenSq == 0 {
		return [3]float32{}
	}
	invLen := float32(1.0 / math.Sqrt(lenSq))
	return [3]float32{x * invLen, y * invLen, z * invLen}
}

// Radians converts an angle from degrees to radians.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float64: angle in radians
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// RotateAboutY rotates v about the world vertical (Y) axis by angle radians.
// The Y component is unchanged. The day/night cycle uses this to sweep the
// sun and moon light groups around the scene.
//
// Parameters:
//   - v: the vector to rotate
//   - angle: rotation angle in radians (counter-clockwise looking down -Y)
//
// Returns:
//   - [3]float32: the rotated vector
func RotateAboutY(v [3]float32, angle float64) [3]float32 {
	s := float32(math.Sin(angle))
	c := float32(math.Cos(angle))
	return [3]float32{
		v[0]*c + v[2]*s,
		v[1],
		-v[0]*s + v[2]*c,
	}
}
