// Package camera implements the state-driven camera rig for the house scene.
// The rig is a small priority-ordered state machine (welcome, login focus,
// signup focus, authenticated) that computes a target shot per state and
// integrates a frame-rate-independent damped approach toward it every tick.
// Mode changes never teleport the camera: they redirect the target and the
// damping carries the motion over smoothly.
package camera

// CameraRig defines the interface for the camera motion controller.
// Exactly one Update call is expected per tick; accessors return read-only
// snapshots and never block it.
type CameraRig interface {
	// SetMode supplies the external UI form mode (login or signup).
	//
	// Parameters:
	//   - m: the active form mode
	SetMode(m Mode)

	// SetAuthenticated supplies the external authentication flag. Once the
	// rig has resolved to the authenticated state it stays there; clearing
	// the flag afterwards has no effect for the rig's lifetime.
	//
	// Parameters:
	//   - authenticated: true once the user has signed in
	SetAuthenticated(authenticated bool)

	// SetShowWelcome supplies the external welcome-overlay flag.
	//
	// Parameters:
	//   - show: true while the welcome overlay is visible
	SetShowWelcome(show bool)

	// Update advances the rig by deltaTime seconds: resolves the active
	// state from the current inputs, computes that state's target shot, and
	// moves the current position and look-at toward it by the damped step.
	// deltaTime is clamped to [0, max frame delta] before use, so stalled
	// or broken frame timers cannot destabilize the motion.
	//
	// Parameters:
	//   - deltaTime: elapsed seconds since the previous tick
	Update(deltaTime float32)

	// Position returns the camera's current world-space position.
	//
	// Returns:
	//   - x, y, z: current camera position
	Position() (x, y, z float32)

	// LookAt returns the camera's current look-at point.
	//
	// Returns:
	//   - x, y, z: current look-at position
	LookAt() (x, y, z float32)

	// Target returns the position/look-at pair the rig is currently
	// converging toward, computed from the active state and accumulated
	// time. Pure with respect to rig motion state.
	//
	// Returns:
	//   - position: target camera position
	//   - lookAt: target look-at point
	Target() (position, lookAt [3]float32)

	// State returns the currently resolved rig state.
	//
	// Returns:
	//   - RigState: the active behavioral state
	State() RigState

	// AccumulatedTime returns the total clamped time the rig has integrated,
	// in seconds. Drives the orbit and bob phases.
	//
	// Returns:
	//   - float64: accumulated seconds
	AccumulatedTime() float64
}
