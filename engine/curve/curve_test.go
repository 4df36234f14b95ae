package curve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurveBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
	}{
		{"two points", []float64{0.2, 0.8}},
		{"sun curve shape", []float64{0, 0, 0.02, 0.3, 0.8, 1.0, 0.8, 0.3, 0.02, 0, 0}},
		{"single point", []float64{0.42}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCurve(tt.points...)
			assert.Equal(t, tt.points[0], c.Evaluate(0))
			assert.Equal(t, tt.points[len(tt.points)-1], c.Evaluate(1))
		})
	}
}

func TestCurveClampsOutsideDomain(t *testing.T) {
	c := NewCurve(0.1, 0.5, 0.9)

	assert.Equal(t, c.Evaluate(0), c.Evaluate(-1))
	assert.Equal(t, c.Evaluate(0), c.Evaluate(-0.001))
	assert.Equal(t, c.Evaluate(1), c.Evaluate(2))
	assert.Equal(t, c.Evaluate(1), c.Evaluate(1.001))
}

// Inputs far outside the domain must still land on the nearest endpoint;
// float-to-int conversion of huge values is implementation-defined and must
// never pick the wrong end.
func TestCurveClampsExtremeInputs(t *testing.T) {
	c := NewCurve(0.1, 0.5, 0.9)

	assert.Equal(t, 0.9, c.Evaluate(1e18))
	assert.Equal(t, 0.1, c.Evaluate(-1e18))
	assert.Equal(t, 0.9, c.Evaluate(math.Inf(1)))
	assert.Equal(t, 0.1, c.Evaluate(math.Inf(-1)))
}

func TestCurveExactAtControlIndices(t *testing.T) {
	points := []float64{0, 0.15, 0.6, 1.0, 0.4}
	c := NewCurve(points...)

	count := float64(len(points) - 1)
	for i, want := range points {
		got := c.Evaluate(float64(i) / count)
		assert.Equal(t, want, got, "control index %d", i)
	}
}

func TestCurveMidpointInterpolation(t *testing.T) {
	tests := []struct {
		name   string
		points []float64
		at     float64
		want   float64
	}{
		{"ascending segment", []float64{0, 1}, 0.5, 0.5},
		{"quarter of ramp", []float64{0, 4}, 0.25, 1},
		{"between middle keys", []float64{0, 2, 6, 10}, 0.5, 4}, // halfway between 2 and 6
		{"descending segment", []float64{1, 0}, 0.75, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCurve(tt.points...)
			assert.InDelta(t, tt.want, c.Evaluate(tt.at), 1e-12)
		})
	}
}

// Between any two adjacent control indices the curve must stay monotonic
// between the two authored values — no overshoot or ringing.
func TestCurveMonotonicWithinSegments(t *testing.T) {
	points := []float64{0, 1, 0.2, 0.9, 0.9, 0}
	c := NewCurve(points...)
	count := len(points) - 1

	for seg := 0; seg < count; seg++ {
		lo := points[seg]
		hi := points[seg+1]
		min, max := lo, hi
		if min > max {
			min, max = max, min
		}

		prev := c.Evaluate(float64(seg) / float64(count))
		ascending := hi >= lo
		const steps = 50
		for s := 1; s <= steps; s++ {
			v := (float64(seg) + float64(s)/steps) / float64(count)
			cur := c.Evaluate(v)
			assert.GreaterOrEqual(t, cur, min-1e-12)
			assert.LessOrEqual(t, cur, max+1e-12)
			if ascending {
				assert.GreaterOrEqual(t, cur, prev-1e-12)
			} else {
				assert.LessOrEqual(t, cur, prev+1e-12)
			}
			prev = cur
		}
	}
}

func TestCurveEmptyInputDegradesToZero(t *testing.T) {
	c := NewCurve()

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 0.0, c.Evaluate(0))
	assert.Equal(t, 0.0, c.Evaluate(0.5))
	assert.Equal(t, 0.0, c.Evaluate(1))
}

func TestCurveCopiesInput(t *testing.T) {
	points := []float64{0, 1}
	c := NewCurve(points...)
	points[1] = 99

	assert.Equal(t, 1.0, c.Evaluate(1))
}
