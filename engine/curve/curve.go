// Package curve provides the interpolation primitives that drive the day/night
// lighting model: piecewise-linear keyframe curves and multi-stop color
// gradients. Both are built once at construction time and evaluated many times
// per session, so evaluation is allocation-free and never fails — out-of-range
// inputs clamp to the nearest authored value instead of extrapolating.
package curve

import (
	"math"

	"github.com/homestead3d/homestead-go/common"
)

// Curve is an immutable piecewise-linear interpolator over an ordered sequence
// of control points implicitly indexed at i/(N-1) for i in [0, N-1]. Authored
// keyframe values are reproduced exactly at their indices and the curve is C0
// continuous everywhere in between.
type Curve struct {
	points []float64
}

// NewCurve creates a Curve from the given control points. The points are
// copied so later mutation of the input slice does not affect the curve.
// An empty input degrades to a single zero-valued control point rather than
// producing a curve that can fail at evaluation time.
//
// Parameters:
//   - points: ordered control values, implicitly indexed at i/(N-1)
//
// Returns:
//   - Curve: the immutable curve
func NewCurve(points ...float64) Curve {
	if len(points) == 0 {
		return Curve{points: []float64{0}}
	}
	cp := make([]float64, len(points))
	copy(cp, points)
	return Curve{points: cp}
}

// Len returns the number of control points.
//
// Returns:
//   - int: control point count (always >= 1)
func (c Curve) Len() int {
	return len(c.points)
}

// Evaluate samples the curve at the normalized position value. Positions
// outside [0, 1] clamp to the first or last control point. Evaluation at an
// exact control index returns the authored value with no interpolation error.
//
// Parameters:
//   - value: normalized sample position, nominally in [0, 1]
//
// Returns:
//   - float64: the interpolated control value
func (c Curve) Evaluate(value float64) float64 {
	count := len(c.points) - 1
	if count == 0 {
		return c.points[0]
	}

	// Clamp before the index math: converting a huge float to int is
	// implementation-defined and would land on the wrong endpoint.
	value = common.Clamp01(value)

	low := clampIndex(int(math.Floor(float64(count)*value)), count)
	high := clampIndex(int(math.Ceil(float64(count)*value)), count)
	if low == high {
		return c.points[low]
	}

	lowPos := float64(low) / float64(count)
	highPos := float64(high) / float64(count)
	span := highPos - lowPos
	if span <= 0 {
		return c.points[low]
	}

	t := common.Clamp01((value - lowPos) / span)
	return common.Lerp(c.points[low], c.points[high], t)
}

// clampIndex limits i to [0, max].
func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}
