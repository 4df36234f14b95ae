// Package scene ties the animation core together: it owns the camera rig,
// the daylight model, the scene's light sources, and the decorative scatter
// layout, and advances all of them exactly once per engine tick. The result
// of each tick is an immutable FrameState snapshot that the bridge streams to
// the external renderer, which owns all geometry and drawing.
package scene

import (
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/homestead3d/homestead-go/engine/camera"
	"github.com/homestead3d/homestead-go/engine/daylight"
	"github.com/homestead3d/homestead-go/engine/light"
)

// FrameState is the complete per-tick output of the scene, shaped for the
// JSON payload the bridge pushes to renderer clients. It is a plain value:
// once published it is never mutated.
type FrameState struct {
	Tick             uint64                    `json:"tick"`
	TimeOfDay        float64                   `json:"timeOfDay"`
	OrientationAngle float32                   `json:"orientationAngle"`
	Lighting         daylight.State            `json:"lighting"`
	CameraPosition   [3]float32                `json:"cameraPosition"`
	CameraLookAt     [3]float32                `json:"cameraLookAt"`
	RigState         string                    `json:"rigState"`
	Lights           map[string]light.Snapshot `json:"lights"`
}

// Scene manages the animated house scene. Thread-safe for concurrent access,
// but Advance is expected from exactly one tick loop: state resolution, rig
// damping, and lighting evaluation happen strictly sequentially within one
// Advance call, never re-entrant.
type Scene interface {
	// Name returns the scene's name.
	//
	// Returns:
	//   - string: the name given at construction
	Name() string

	// Active returns whether the scene is advanced by the engine loop.
	//
	// Returns:
	//   - bool: true if active
	Active() bool

	// SetActive enables or disables the scene. Inactive scenes keep their
	// state frozen and publish no new frames.
	//
	// Parameters:
	//   - active: true to enable
	SetActive(active bool)

	// Rig returns the scene's camera rig.
	//
	// Returns:
	//   - camera.CameraRig: the rig instance
	Rig() camera.CameraRig

	// Daylight returns the scene's lighting model.
	//
	// Returns:
	//   - daylight.Daylight: the lighting model
	Daylight() daylight.Daylight

	// Light retrieves a named light. Returns nil if no light exists under
	// that name.
	//
	// Parameters:
	//   - name: the light's registry name
	//
	// Returns:
	//   - light.Light: the light, or nil if not found
	Light(name string) light.Light

	// AddLight registers a decorative light under a name. Re-registering a
	// name replaces the previous light.
	//
	// Parameters:
	//   - name: the registry name
	//   - l: the light to register
	AddLight(name string, l light.Light)

	// AddNightLight registers a decorative light that the scene gates on
	// darkness: it is enabled while the computed ambient intensity is below
	// the night threshold and disabled otherwise. Used for window glow and
	// the porch lamp.
	//
	// Parameters:
	//   - name: the registry name
	//   - l: the light to register
	AddNightLight(name string, l light.Light)

	// TimeOfDay returns the current normalized time of day in [0, 1).
	//
	// Returns:
	//   - float64: the current time of day
	TimeOfDay() float64

	// SetTimeOfDay pins the time of day to the given value (clamped to
	// [0, 1]). Use together with a zero day length to drive the clock from
	// an external source.
	//
	// Parameters:
	//   - timeOfDay: normalized time of day
	SetTimeOfDay(timeOfDay float64)

	// Scatter returns the decorative scatter layout generated at
	// construction. The slice is owned by the scene; callers must not
	// modify it.
	//
	// Returns:
	//   - []ScatterInstance: placement data for the external renderer
	Scatter() []ScatterInstance

	// Advance progresses the scene by deltaTime seconds: advances the day
	// clock, updates the camera rig (state resolution before damping),
	// evaluates the daylight model, rewrites the sun/moon lights and the
	// night-light gates, and publishes a fresh FrameState.
	//
	// Parameters:
	//   - deltaTime: elapsed seconds since the previous tick
	Advance(deltaTime float32)

	// Frame returns the most recently published FrameState.
	//
	// Returns:
	//   - FrameState: a value copy of the last frame
	Frame() FrameState
}

var _ Scene = &sceneImpl{}

// sceneImpl is the implementation of Scene.
type sceneImpl struct {
	mu sync.Mutex

	name   string
	active bool

	rig camera.CameraRig
	dl  daylight.Daylight

	sun  light.Light
	moon light.Light

	lights     map[string]light.Light
	nightGated map[string]bool

	// nightThreshold is the ambient intensity below which night-gated
	// lights switch on.
	nightThreshold float32

	timeOfDay float64
	dayLength float64 // seconds per full cycle; 0 freezes the clock

	scatterSeed    int64
	scatterPatches []ScatterPatch
	computeWorkers int
	scatter        []ScatterInstance

	tick  uint64
	frame FrameState
}

// NewScene creates a Scene with the given name. A nil rig or daylight model
// is replaced with the authored house defaults rather than failing — the
// animation core degrades, it does not crash. Scatter patches configured via
// options are generated once here, from a fixed seed, so the decorative
// layout is stable for the lifetime of the scene.
//
// Parameters:
//   - name: the scene name
//   - rig: the camera rig (nil for the default house rig)
//   - dl: the lighting model (nil for the house preset)
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, rig camera.CameraRig, dl daylight.Daylight, options ...SceneBuilderOption) Scene {
	if rig == nil {
		rig = camera.NewCameraRig()
	}
	if dl == nil {
		dl = daylight.NewHousePreset()
	}

	s := &sceneImpl{
		name:   name,
		active: true,

		rig: rig,
		dl:  dl,

		sun:  light.NewLight(light.LightTypeDirectional),
		moon: light.NewLight(light.LightTypeDirectional),

		lights:     make(map[string]light.Light),
		nightGated: make(map[string]bool),

		nightThreshold: 0.3,

		dayLength:      240,
		scatterSeed:    1,
		computeWorkers: 4,
	}

	for _, option := range options {
		option(s)
	}

	s.lights["sun"] = s.sun
	s.lights["moon"] = s.moon

	if len(s.scatterPatches) > 0 {
		start := time.Now()
		s.scatter = generateScatter(s.scatterSeed, s.scatterPatches, s.computeWorkers)
		log.Debug().
			Str("scene", s.name).
			Int("instances", len(s.scatter)).
			Dur("took", time.Since(start)).
			Msg("scatter layout generated")
	}

	// Publish an initial frame so consumers attached before the first tick
	// see a coherent state.
	s.advanceLocked(0)
	return s
}

func (s *sceneImpl) Name() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

func (s *sceneImpl) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

func (s *sceneImpl) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *sceneImpl) Rig() camera.CameraRig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rig
}

func (s *sceneImpl) Daylight() daylight.Daylight {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dl
}

func (s *sceneImpl) Light(name string) light.Light {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lights[name]
}

func (s *sceneImpl) AddLight(name string, l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights[name] = l
	delete(s.nightGated, name)
}

func (s *sceneImpl) AddNightLight(name string, l light.Light) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lights[name] = l
	s.nightGated[name] = true
}

func (s *sceneImpl) TimeOfDay() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeOfDay
}

func (s *sceneImpl) SetTimeOfDay(timeOfDay float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timeOfDay < 0 {
		timeOfDay = 0
	}
	if timeOfDay > 1 {
		timeOfDay = 1
	}
	s.timeOfDay = timeOfDay
}

func (s *sceneImpl) Scatter() []ScatterInstance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scatter
}

func (s *sceneImpl) Advance(deltaTime float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.advanceLocked(deltaTime)
}

// advanceLocked performs one tick. Caller must hold the mutex.
func (s *sceneImpl) advanceLocked(deltaTime float32) {
	if deltaTime < 0 {
		deltaTime = 0
	}

	if s.dayLength > 0 && deltaTime > 0 {
		s.timeOfDay = math.Mod(s.timeOfDay+float64(deltaTime)/s.dayLength, 1)
	}

	// Rig state resolution runs inside Update, before its damping step.
	s.rig.Update(deltaTime)

	st, angle := s.dl.Compute(s.timeOfDay)

	s.sun.SetColor(st.SunColor[0], st.SunColor[1], st.SunColor[2])
	s.sun.SetIntensity(st.SunIntensity)
	s.sun.SetDirection(st.SunDirection[0], st.SunDirection[1], st.SunDirection[2])

	s.moon.SetColor(st.MoonColor[0], st.MoonColor[1], st.MoonColor[2])
	s.moon.SetIntensity(st.MoonIntensity)
	s.moon.SetDirection(st.MoonDirection[0], st.MoonDirection[1], st.MoonDirection[2])

	dark := st.AmbientIntensity < s.nightThreshold
	for name := range s.nightGated {
		if l := s.lights[name]; l != nil {
			l.SetEnabled(dark)
		}
	}

	px, py, pz := s.rig.Position()
	lx, ly, lz := s.rig.LookAt()

	snapshots := make(map[string]light.Snapshot, len(s.lights))
	for name, l := range s.lights {
		snapshots[name] = l.Snapshot()
	}

	s.tick++
	s.frame = FrameState{
		Tick:             s.tick,
		TimeOfDay:        s.timeOfDay,
		OrientationAngle: angle,
		Lighting:         st,
		CameraPosition:   [3]float32{px, py, pz},
		CameraLookAt:     [3]float32{lx, ly, lz},
		RigState:         s.rig.State().String(),
		Lights:           snapshots,
	}
}

func (s *sceneImpl) Frame() FrameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}
