package camera

import (
	"math"
	"sync"

	"github.com/homestead3d/homestead-go/common"
)

// cameraRigImpl is the single implementation of CameraRig. Motion state
// (position, look-at, accumulated time) has exactly one writer — Update —
// and is created at scene mount, advanced once per tick, and discarded with
// the rig. The mutex only guards against input setters racing the tick loop.
type cameraRigImpl struct {
	mu *sync.Mutex

	// External inputs, replaced on UI state changes.
	mode          Mode
	authenticated bool
	showWelcome   bool

	// Resolved state. StateAuthenticated latches.
	state RigState

	// Motion state, mutated only by Update.
	position  [3]float32
	lookAt    [3]float32
	accumTime float64

	// Damping tuning.
	dampingRate   float32
	maxFrameDelta float32

	// Orbit/bob tuning for the focus states. The bob frequency is unrelated
	// to the orbit speed so the two never visibly phase-lock.
	orbitRadius  float32
	orbitSpeed   float32
	bobAmplitude float32
	bobFrequency float32

	// Authored shots.
	welcomePosition [3]float32
	welcomeLookAt   [3]float32
	focusBase       [3]float32 // mirrored in x between login and signup
	focusLookOffset [3]float32 // x component mirrored with the orbit side
	interiorPos     [3]float32
	interiorLookAt  [3]float32
}

var _ CameraRig = &cameraRigImpl{}

// NewCameraRig creates a camera rig with the authored house-scene shots and
// sensible motion defaults, then applies the provided options. The rig starts
// on the welcome shot with the welcome overlay showing.
//
// Parameters:
//   - options: functional options to configure the rig
//
// Returns:
//   - CameraRig: the newly created rig
func NewCameraRig(options ...CameraRigOption) CameraRig {
	r := &cameraRigImpl{
		mu: &sync.Mutex{},

		mode:        ModeLogin,
		showWelcome: true,
		state:       StateWelcome,

		dampingRate:   2.5,
		maxFrameDelta: 0.1,

		orbitRadius:  2.5,
		orbitSpeed:   0.22,
		bobAmplitude: 0.6,
		bobFrequency: 0.9,

		welcomePosition: [3]float32{0, 7, 26},
		welcomeLookAt:   [3]float32{0, 2.5, 0},
		focusBase:       [3]float32{10, 5.5, 14},
		focusLookOffset: [3]float32{3.5, 2.5, 0},
		interiorPos:     [3]float32{0, 2.4, 1.2},
		interiorLookAt:  [3]float32{0, 2.2, -2.5},
	}

	for _, option := range options {
		option(r)
	}

	// Start on the shot the initial inputs resolve to, so the first frames
	// do not converge in from the zero vector.
	r.resolveState()
	r.position, r.lookAt = r.targetFor(r.state)
	return r
}

// resolveState applies the priority-ordered transition table: authenticated
// wins over everything and latches, then welcome, then the form mode.
// Caller must hold the mutex.
func (r *cameraRigImpl) resolveState() {
	if r.state == StateAuthenticated {
		return
	}
	switch {
	case r.authenticated:
		r.state = StateAuthenticated
	case r.showWelcome:
		r.state = StateWelcome
	case r.mode == ModeLogin:
		r.state = StateLoginFocus
	default:
		r.state = StateSignupFocus
	}
}

// targetFor computes the target shot for a state at the current accumulated
// time. Login and signup differ only by the side sign, which makes the two
// orbits exact geometric mirrors in x. Caller must hold the mutex.
func (r *cameraRigImpl) targetFor(state RigState) (position, lookAt [3]float32) {
	switch state {
	case StateLoginFocus, StateSignupFocus:
		side := float32(-1)
		if state == StateSignupFocus {
			side = 1
		}

		orbitPhase := r.accumTime * float64(r.orbitSpeed)
		bobPhase := r.accumTime * float64(r.bobFrequency)

		position = [3]float32{
			side * (r.focusBase[0] + r.orbitRadius*float32(math.Cos(orbitPhase))),
			r.focusBase[1] + r.bobAmplitude*float32(math.Sin(bobPhase)),
			r.focusBase[2] + r.orbitRadius*float32(math.Sin(orbitPhase)),
		}
		lookAt = [3]float32{
			side * r.focusLookOffset[0],
			r.focusLookOffset[1],
			r.focusLookOffset[2],
		}
		return position, lookAt

	case StateAuthenticated:
		return r.interiorPos, r.interiorLookAt

	default:
		return r.welcomePosition, r.welcomeLookAt
	}
}

func (r *cameraRigImpl) SetMode(m Mode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = m
}

func (r *cameraRigImpl) SetAuthenticated(authenticated bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authenticated = authenticated
}

func (r *cameraRigImpl) SetShowWelcome(show bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.showWelcome = show
}

func (r *cameraRigImpl) Update(deltaTime float32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Anomalous frame timing (negative or huge delta from a stalled frame)
	// is clamped before it reaches the damping step.
	dt := float32(common.Clamp(float64(deltaTime), 0, float64(r.maxFrameDelta)))

	// State resolution precedes target computation within the same tick, so
	// a mode change is reflected in this frame's target.
	r.resolveState()
	r.accumTime += float64(dt)

	targetPos, targetLook := r.targetFor(r.state)

	// Time-scaled damping keeps convergence speed independent of tick rate.
	// The step factor is capped at 1 so a large (already clamped) delta can
	// at most land exactly on the target, never overshoot it.
	step := float32(common.Clamp01(float64(dt * r.dampingRate)))
	r.position = common.MixVec3(r.position, targetPos, step)
	r.lookAt = common.MixVec3(r.lookAt, targetLook, step)
}

func (r *cameraRigImpl) Position() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.position[0], r.position[1], r.position[2]
}

func (r *cameraRigImpl) LookAt() (x, y, z float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookAt[0], r.lookAt[1], r.lookAt[2]
}

func (r *cameraRigImpl) Target() (position, lookAt [3]float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.targetFor(r.state)
}

func (r *cameraRigImpl) State() RigState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *cameraRigImpl) AccumulatedTime() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.accumTime
}
