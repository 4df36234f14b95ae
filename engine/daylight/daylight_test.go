package daylight

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeIsPure(t *testing.T) {
	d := NewHousePreset()

	for _, tod := range []float64{0, 0.25, 0.6, 0.999, 1} {
		a, angleA := d.Compute(tod)
		b, angleB := d.Compute(tod)
		assert.Equal(t, a, b, "state at %v", tod)
		assert.Equal(t, angleA, angleB, "angle at %v", tod)
	}
}

func TestOrientationAngleMapping(t *testing.T) {
	d := NewHousePreset()

	tests := []struct {
		tod  float64
		want float32
	}{
		{0, -180},
		{0.25, -90},
		{0.5, 0},
		{0.75, 90},
		{1, 180},
	}
	for _, tt := range tests {
		_, angle := d.Compute(tt.tod)
		assert.InDelta(t, tt.want, angle, 1e-4, "timeOfDay %v", tt.tod)
	}
}

func TestComputeClampsTimeOfDay(t *testing.T) {
	d := NewHousePreset()

	atZero, angleZero := d.Compute(0)
	below, angleBelow := d.Compute(-0.3)
	assert.Equal(t, atZero, below)
	assert.Equal(t, angleZero, angleBelow)

	atOne, angleOne := d.Compute(1)
	above, angleAbove := d.Compute(1.7)
	assert.Equal(t, atOne, above)
	assert.Equal(t, angleOne, angleAbove)
}

// The sun and moon curves overlap only where both are near zero; they must
// never be bright at the same time.
func TestSunAndMoonNeverPeakTogether(t *testing.T) {
	d := NewHousePreset()

	maxShared := float32(0)
	for i := 0; i <= 1000; i++ {
		st, _ := d.Compute(float64(i) / 1000)
		shared := st.SunIntensity
		if st.MoonIntensity < shared {
			shared = st.MoonIntensity
		}
		if shared > maxShared {
			maxShared = shared
		}
	}
	assert.Less(t, maxShared, float32(0.2))
}

func TestPresetBrightAtNoonDarkAtMidnight(t *testing.T) {
	d := NewHousePreset()

	noon, _ := d.Compute(0.5)
	assert.InDelta(t, 1.0, noon.SunIntensity, 1e-6)
	assert.Equal(t, float32(0), noon.MoonIntensity)
	assert.Greater(t, noon.AmbientIntensity, float32(0.5))

	midnight, _ := d.Compute(0)
	assert.Equal(t, float32(0), midnight.SunIntensity)
	assert.Greater(t, midnight.MoonIntensity, float32(0.5))
	assert.Less(t, midnight.AmbientIntensity, float32(0.3))
}

func TestDirectionsAreUnitAndOpposed(t *testing.T) {
	d := NewHousePreset()

	for _, tod := range []float64{0, 0.2, 0.5, 0.8} {
		st, _ := d.Compute(tod)

		assert.InDelta(t, 1.0, vecLen(st.SunDirection), 1e-5, "sun at %v", tod)
		assert.InDelta(t, 1.0, vecLen(st.MoonDirection), 1e-5, "moon at %v", tod)

		// The moon group is mounted half a revolution from the sun, so the
		// horizontal components of the two directions point opposite ways.
		dot := st.SunDirection[0]*st.MoonDirection[0] + st.SunDirection[2]*st.MoonDirection[2]
		assert.Less(t, dot, float32(0), "horizontal opposition at %v", tod)
	}
}

func TestNoonSunFacesTheScene(t *testing.T) {
	d := NewHousePreset()
	st, _ := d.Compute(0.5)

	// At noon the rotation is zero, so the sun sits at its mount (0, 18, 30)
	// and shines back toward the origin: negative y and z, no x component.
	assert.InDelta(t, 0, st.SunDirection[0], 1e-5)
	assert.Less(t, st.SunDirection[1], float32(0))
	assert.Less(t, st.SunDirection[2], float32(0))
}

func vecLen(v [3]float32) float64 {
	return math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]))
}
