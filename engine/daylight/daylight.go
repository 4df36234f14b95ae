// Package daylight implements the day/night lighting model for the house
// scene. A single normalized time-of-day value in [0, 1] (0 = midnight,
// 0.5 = noon) drives three intensity curves (sun, moon, ambient), two color
// gradients (sun, moon), and the orientation angle that sweeps both light
// groups around the scene's vertical axis.
package daylight

import (
	"math"

	"github.com/homestead3d/homestead-go/common"
	"github.com/homestead3d/homestead-go/engine/curve"
)

// State is the full lighting output for one time-of-day sample. It is a plain
// value produced fresh on every Compute call — no mutable identity — so
// consumers can hold it across a frame without copy hazards. JSON tags match
// the payload the bridge streams to the external renderer.
type State struct {
	AmbientIntensity float32    `json:"ambientIntensity"`
	AmbientColor     [3]float32 `json:"ambientColor"`

	SunIntensity float32    `json:"sunIntensity"`
	SunColor     [3]float32 `json:"sunColor"`
	SunDirection [3]float32 `json:"sunDirection"`

	MoonIntensity float32    `json:"moonIntensity"`
	MoonColor     [3]float32 `json:"moonColor"`
	MoonDirection [3]float32 `json:"moonDirection"`
}

// daylightImpl is the single implementation of Daylight. All fields are set
// at construction and never mutated afterwards, which is what makes Compute a
// pure function.
type daylightImpl struct {
	sunIntensity     curve.Curve
	moonIntensity    curve.Curve
	ambientIntensity curve.Curve

	sunColors  curve.ColorGradient
	moonColors curve.ColorGradient

	ambientColor [3]float32

	// Mount points of the sun and moon light groups before the daily
	// rotation is applied. The moon mount is swept half a revolution ahead
	// of the sun so the two are always on opposite sides of the scene.
	sunMount  [3]float32
	moonMount [3]float32
}

// Daylight defines the interface for the day/night lighting model.
// Implementations are immutable after construction: Compute is a pure
// function of its input and identical inputs yield bit-identical output.
type Daylight interface {
	// Compute evaluates the lighting model at the given time of day.
	// Inputs outside [0, 1] are clamped. The returned angle is the rotation
	// of the sun/moon light groups about the scene's vertical axis, in
	// degrees: timeOfDay 0 maps to -180 (midnight, sun behind the scene)
	// and 0.5 maps to 0 (noon).
	//
	// Parameters:
	//   - timeOfDay: normalized time in [0, 1] over a full day/night cycle
	//
	// Returns:
	//   - State: intensities, colors, and directions for all light groups
	//   - float32: the orientation angle in degrees
	Compute(timeOfDay float64) (State, float32)
}

var _ Daylight = &daylightImpl{}

// NewDaylight creates a Daylight model with neutral defaults and any provided
// options applied. Without options the model is a flat white day — use
// NewHousePreset for the authored house-scene cycle.
//
// Parameters:
//   - options: functional options to configure the model
//
// Returns:
//   - Daylight: the immutable lighting model
func NewDaylight(options ...DaylightOption) Daylight {
	d := &daylightImpl{
		sunIntensity:     curve.NewCurve(1),
		moonIntensity:    curve.NewCurve(0),
		ambientIntensity: curve.NewCurve(0.5),
		sunColors:        curve.NewColorGradient(curve.HexStop(0, "#ffffff"), curve.HexStop(1, "#ffffff")),
		moonColors:       curve.NewColorGradient(curve.HexStop(0, "#9db4ff"), curve.HexStop(1, "#9db4ff")),
		ambientColor:     [3]float32{0.78, 0.82, 0.92},
		sunMount:         [3]float32{0, 18, 30},
		moonMount:        [3]float32{0, 14, 30},
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Compute evaluates the lighting model at timeOfDay. See Daylight.Compute.
func (d *daylightImpl) Compute(timeOfDay float64) (State, float32) {
	t := common.Clamp01(timeOfDay)

	angle := t*360.0 - 180.0
	rad := common.Radians(angle)

	sunPos := common.RotateAboutY(d.sunMount, rad)
	moonPos := common.RotateAboutY(d.moonMount, rad+math.Pi)

	st := State{
		AmbientIntensity: float32(d.ambientIntensity.Evaluate(t)),
		AmbientColor:     d.ambientColor,

		SunIntensity: float32(d.sunIntensity.Evaluate(t)),
		SunColor:     curve.RGB32(d.sunColors.Evaluate(t)),
		SunDirection: common.Normalize3(-sunPos[0], -sunPos[1], -sunPos[2]),

		MoonIntensity: float32(d.moonIntensity.Evaluate(t)),
		MoonColor:     curve.RGB32(d.moonColors.Evaluate(t)),
		MoonDirection: common.Normalize3(-moonPos[0], -moonPos[1], -moonPos[2]),
	}
	return st, float32(angle)
}
