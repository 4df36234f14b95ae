package camera

// Mode is the UI form mode supplied by the surrounding application. The rig
// reacts to mode changes but does not own the value.
type Mode int

const (
	// ModeLogin indicates the login form is the active overlay.
	ModeLogin Mode = iota

	// ModeSignup indicates the signup form is the active overlay.
	ModeSignup
)

// String returns the lowercase name of the mode.
//
// Returns:
//   - string: "login" or "signup"
func (m Mode) String() string {
	if m == ModeSignup {
		return "signup"
	}
	return "login"
}

// ParseMode converts a mode name to a Mode. Unknown names default to
// ModeLogin — the rig never fails on bad external input.
//
// Parameters:
//   - name: "login" or "signup" (case-sensitive)
//
// Returns:
//   - Mode: the parsed mode
func ParseMode(name string) Mode {
	if name == "signup" {
		return ModeSignup
	}
	return ModeLogin
}

// RigState identifies which behavioral branch of the camera rig is active.
// States are resolved from the external inputs in strict priority order; see
// cameraRigImpl.resolveState.
type RigState int

const (
	// StateWelcome is the wide establishing shot shown before any form has
	// focus. Fixed target, no orbit.
	StateWelcome RigState = iota

	// StateLoginFocus orbits the house on the login side with a slow
	// vertical bob, looking toward where the login overlay appears.
	StateLoginFocus

	// StateSignupFocus is the geometric mirror of StateLoginFocus: opposite
	// orbit side, opposite look-at offset, identical speeds.
	StateSignupFocus

	// StateAuthenticated settles the camera at a fixed interior shot. The
	// state is terminal: once entered, the rig stays in it for its lifetime.
	StateAuthenticated
)

// String returns the name of the rig state.
//
// Returns:
//   - string: a stable lowercase identifier
func (s RigState) String() string {
	switch s {
	case StateLoginFocus:
		return "login-focus"
	case StateSignupFocus:
		return "signup-focus"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "welcome"
	}
}
