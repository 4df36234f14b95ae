package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/homestead3d/homestead-go/engine/camera"
	"github.com/homestead3d/homestead-go/engine/daylight"
	"github.com/homestead3d/homestead-go/engine/light"
)

const tick = float32(1.0 / 60.0)

func TestAdvancePublishesFrames(t *testing.T) {
	s := NewScene("house", nil, nil, WithDayLength(0), WithTimeOfDay(0.5))

	first := s.Frame()
	assert.NotZero(t, first.Tick)
	assert.Equal(t, 0.5, first.TimeOfDay)
	assert.Equal(t, "welcome", first.RigState)
	assert.Contains(t, first.Lights, "sun")
	assert.Contains(t, first.Lights, "moon")

	s.Advance(tick)
	second := s.Frame()
	assert.Equal(t, first.Tick+1, second.Tick)
	assert.Equal(t, 0.5, second.TimeOfDay, "day length 0 freezes the clock")
}

func TestDayClockAdvancesAndWraps(t *testing.T) {
	s := NewScene("house", nil, nil, WithDayLength(10), WithTimeOfDay(0.95))

	// 1 second of a 10-second day moves the clock 0.1 and wraps past 1.
	for i := 0; i < 60; i++ {
		s.Advance(tick)
	}
	assert.InDelta(t, 0.05, s.TimeOfDay(), 1e-6)
}

func TestSetTimeOfDayPinsTheClock(t *testing.T) {
	s := NewScene("house", nil, nil, WithDayLength(0))

	s.SetTimeOfDay(0.25)
	s.Advance(tick)
	assert.Equal(t, 0.25, s.TimeOfDay())

	s.SetTimeOfDay(-3)
	assert.Equal(t, 0.0, s.TimeOfDay())
	s.SetTimeOfDay(42)
	assert.Equal(t, 1.0, s.TimeOfDay())
}

func TestSunAndMoonLightsFollowDaylight(t *testing.T) {
	s := NewScene("house", nil, nil, WithDayLength(0), WithTimeOfDay(0.5))
	s.Advance(tick)

	st, _ := daylight.NewHousePreset().Compute(0.5)

	sun := s.Light("sun")
	assert.Equal(t, st.SunIntensity, sun.Intensity())
	assert.Equal(t, st.SunColor, sun.Color())
	assert.InDelta(t, st.SunDirection[1], sun.Direction()[1], 1e-5)

	moon := s.Light("moon")
	assert.Equal(t, st.MoonIntensity, moon.Intensity())
	assert.Equal(t, st.MoonColor, moon.Color())
}

func TestNightLightsGateOnDarkness(t *testing.T) {
	s := NewScene("house", nil, nil, WithDayLength(0), WithTimeOfDay(0.5))
	glow := light.NewLight(light.LightTypePoint, light.WithColor(1, 0.8, 0.5))
	s.AddNightLight("window-glow", glow)

	s.Advance(tick)
	assert.False(t, glow.Enabled(), "noon ambient is above the night threshold")

	s.SetTimeOfDay(0)
	s.Advance(tick)
	assert.True(t, glow.Enabled(), "midnight ambient is below the night threshold")

	s.SetTimeOfDay(0.5)
	s.Advance(tick)
	assert.False(t, glow.Enabled())
}

func TestInactiveSceneFreezes(t *testing.T) {
	s := NewScene("house", nil, nil, WithDayLength(10))
	s.SetActive(false)

	before := s.Frame()
	s.Advance(tick)
	assert.Equal(t, before, s.Frame())

	s.SetActive(true)
	s.Advance(tick)
	assert.Equal(t, before.Tick+1, s.Frame().Tick)
}

func TestNegativeDeltaIsClamped(t *testing.T) {
	s := NewScene("house", nil, nil, WithDayLength(10), WithTimeOfDay(0.5))

	s.Advance(-5)
	assert.Equal(t, 0.5, s.TimeOfDay())
}

func TestFrameReflectsRigMotion(t *testing.T) {
	rig := camera.NewCameraRig(camera.WithShowWelcome(false), camera.WithMode(camera.ModeSignup))
	s := NewScene("house", rig, nil, WithDayLength(0))

	s.Advance(tick)
	frame := s.Frame()
	assert.Equal(t, "signup-focus", frame.RigState)

	x, y, z := rig.Position()
	assert.Equal(t, [3]float32{x, y, z}, frame.CameraPosition)
}

func TestScatterIsDeterministicPerSeed(t *testing.T) {
	patch := ScatterPatch{
		Kind:     ScatterGrass,
		Count:    200,
		Center:   [3]float32{0, 0, 8},
		Radius:   6,
		MinScale: 0.8,
		MaxScale: 1.3,
	}
	cobbles := ScatterPatch{
		Kind:     ScatterCobble,
		Count:    80,
		Center:   [3]float32{0, 0, 12},
		Radius:   2,
		MinScale: 0.5,
		MaxScale: 0.9,
	}

	a := NewScene("a", nil, nil, WithScatterSeed(7), WithScatterPatch(patch), WithScatterPatch(cobbles))
	b := NewScene("b", nil, nil, WithScatterSeed(7), WithScatterPatch(patch), WithScatterPatch(cobbles))
	c := NewScene("c", nil, nil, WithScatterSeed(8), WithScatterPatch(patch), WithScatterPatch(cobbles))

	assert.Len(t, a.Scatter(), 280)
	assert.Equal(t, a.Scatter(), b.Scatter(), "same seed, same layout")
	assert.NotEqual(t, a.Scatter(), c.Scatter(), "different seed, different layout")
}

func TestScatterStaysInsidePatchRadius(t *testing.T) {
	patch := ScatterPatch{
		Kind:     ScatterGrass,
		Count:    500,
		Center:   [3]float32{3, 0, -2},
		Radius:   4,
		MinScale: 1,
		MaxScale: 1,
	}
	s := NewScene("house", nil, nil, WithScatterPatch(patch))

	for _, inst := range s.Scatter() {
		dx := inst.Position[0] - patch.Center[0]
		dz := inst.Position[2] - patch.Center[2]
		assert.LessOrEqual(t, dx*dx+dz*dz, patch.Radius*patch.Radius+1e-3)
		assert.Equal(t, patch.Center[1], inst.Position[1])
		assert.Equal(t, float32(1), inst.Scale)
	}
}
