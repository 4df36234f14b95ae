package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options applied during NewScene.
type SceneBuilderOption func(*sceneImpl)

// WithDayLength sets the duration of one full day/night cycle in seconds.
// A value of 0 freezes the internal clock, leaving the time of day under
// external control via SetTimeOfDay.
//
// Parameters:
//   - seconds: seconds per full cycle (0 = externally driven)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDayLength(seconds float64) SceneBuilderOption {
	return func(s *sceneImpl) {
		if seconds >= 0 {
			s.dayLength = seconds
		}
	}
}

// WithTimeOfDay sets the initial normalized time of day.
//
// Parameters:
//   - timeOfDay: initial time in [0, 1]
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithTimeOfDay(timeOfDay float64) SceneBuilderOption {
	return func(s *sceneImpl) {
		if timeOfDay < 0 {
			timeOfDay = 0
		}
		if timeOfDay > 1 {
			timeOfDay = 1
		}
		s.timeOfDay = timeOfDay
	}
}

// WithNightThreshold sets the ambient intensity below which night-gated
// lights switch on.
//
// Parameters:
//   - threshold: ambient intensity cutoff
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithNightThreshold(threshold float32) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.nightThreshold = threshold
	}
}

// WithScatterSeed sets the session seed for the decorative scatter layout.
// The same seed always produces the same layout.
//
// Parameters:
//   - seed: the scatter seed
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithScatterSeed(seed int64) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.scatterSeed = seed
	}
}

// WithScatterPatch adds a scatter patch to fill at construction time.
//
// Parameters:
//   - patch: the patch description
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithScatterPatch(patch ScatterPatch) SceneBuilderOption {
	return func(s *sceneImpl) {
		s.scatterPatches = append(s.scatterPatches, patch)
	}
}

// WithComputeWorkers sets the number of pool workers used for scatter
// generation. Values < 1 are treated as 1.
//
// Parameters:
//   - workers: worker count
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithComputeWorkers(workers int) SceneBuilderOption {
	return func(s *sceneImpl) {
		if workers < 1 {
			workers = 1
		}
		s.computeWorkers = workers
	}
}

// WithInactive creates the scene in the inactive state; the engine will not
// advance it until SetActive(true).
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithInactive() SceneBuilderOption {
	return func(s *sceneImpl) {
		s.active = false
	}
}
