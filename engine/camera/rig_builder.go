package camera

// CameraRigOption is a functional option for configuring a CameraRig.
// Use the With* functions to create options applied during NewCameraRig.
type CameraRigOption func(*cameraRigImpl)

// WithDampingRate sets the exponential approach rate used by the damped
// convergence step. Higher values settle faster. Values <= 0 are ignored.
//
// Parameters:
//   - rate: damping rate in 1/seconds
//
// Returns:
//   - CameraRigOption: option function to apply
func WithDampingRate(rate float32) CameraRigOption {
	return func(r *cameraRigImpl) {
		if rate > 0 {
			r.dampingRate = rate
		}
	}
}

// WithMaxFrameDelta sets the upper clamp applied to per-tick delta time
// before it feeds the damping step. Values <= 0 are ignored.
//
// Parameters:
//   - maxDelta: maximum usable frame delta in seconds
//
// Returns:
//   - CameraRigOption: option function to apply
func WithMaxFrameDelta(maxDelta float32) CameraRigOption {
	return func(r *cameraRigImpl) {
		if maxDelta > 0 {
			r.maxFrameDelta = maxDelta
		}
	}
}

// WithOrbit sets the orbit radius and angular speed used by the login and
// signup focus shots.
//
// Parameters:
//   - radius: orbit radius around the focus base position
//   - speed: angular speed in radians per second
//
// Returns:
//   - CameraRigOption: option function to apply
func WithOrbit(radius, speed float32) CameraRigOption {
	return func(r *cameraRigImpl) {
		r.orbitRadius = radius
		r.orbitSpeed = speed
	}
}

// WithBob sets the vertical bob layered on top of the focus orbit. The
// frequency should stay unrelated to the orbit speed so the two motions do
// not phase-lock.
//
// Parameters:
//   - amplitude: vertical bob amplitude
//   - frequency: bob frequency in radians per second
//
// Returns:
//   - CameraRigOption: option function to apply
func WithBob(amplitude, frequency float32) CameraRigOption {
	return func(r *cameraRigImpl) {
		r.bobAmplitude = amplitude
		r.bobFrequency = frequency
	}
}

// WithWelcomeShot sets the fixed wide establishing shot for the welcome state.
//
// Parameters:
//   - position: camera position of the shot
//   - lookAt: look-at point of the shot
//
// Returns:
//   - CameraRigOption: option function to apply
func WithWelcomeShot(position, lookAt [3]float32) CameraRigOption {
	return func(r *cameraRigImpl) {
		r.welcomePosition = position
		r.welcomeLookAt = lookAt
	}
}

// WithFocusShot sets the base position and look-at offset of the login/signup
// focus shots. The x components of both are mirrored between the two sides;
// the rig owns the mirroring, callers author one side only.
//
// Parameters:
//   - base: orbit center for the signup side (login uses negated x)
//   - lookOffset: look-at for the signup side (login uses negated x)
//
// Returns:
//   - CameraRigOption: option function to apply
func WithFocusShot(base, lookOffset [3]float32) CameraRigOption {
	return func(r *cameraRigImpl) {
		r.focusBase = base
		r.focusLookOffset = lookOffset
	}
}

// WithInteriorShot sets the fixed interior shot for the authenticated state.
//
// Parameters:
//   - position: camera position inside the house
//   - lookAt: interior look-at point
//
// Returns:
//   - CameraRigOption: option function to apply
func WithInteriorShot(position, lookAt [3]float32) CameraRigOption {
	return func(r *cameraRigImpl) {
		r.interiorPos = position
		r.interiorLookAt = lookAt
	}
}

// WithMode sets the initial UI form mode.
//
// Parameters:
//   - m: the initial mode
//
// Returns:
//   - CameraRigOption: option function to apply
func WithMode(m Mode) CameraRigOption {
	return func(r *cameraRigImpl) {
		r.mode = m
	}
}

// WithShowWelcome sets the initial welcome-overlay flag.
//
// Parameters:
//   - show: true while the welcome overlay is visible
//
// Returns:
//   - CameraRigOption: option function to apply
func WithShowWelcome(show bool) CameraRigOption {
	return func(r *cameraRigImpl) {
		r.showWelcome = show
	}
}
