package daylight

import "github.com/homestead3d/homestead-go/engine/curve"

// Hand-tuned keyframes for the house scene's day/night cycle. All three
// intensity curves share the same 13-sample layout (one key every two hours),
// with the sun and moon on/off ranges overlapping only at the dawn/dusk
// crossover where both sit near zero, giving the dim transition look.
//
// The color gradients spend most of their stops around sunrise (~0.22-0.30)
// and sunset (~0.70-0.78) where sky color moves fastest, and coast through
// midday and midnight on wide brackets.

func houseSunIntensity() curve.Curve {
	return curve.NewCurve(
		0, 0, 0, 0.04, 0.45, 0.85, 1.0, 1.0, 0.85, 0.45, 0.04, 0, 0,
	)
}

func houseMoonIntensity() curve.Curve {
	return curve.NewCurve(
		0.62, 0.55, 0.40, 0.12, 0, 0, 0, 0, 0, 0, 0.12, 0.40, 0.62,
	)
}

func houseAmbientIntensity() curve.Curve {
	return curve.NewCurve(
		0.16, 0.15, 0.15, 0.22, 0.42, 0.62, 0.72, 0.72, 0.62, 0.42, 0.22, 0.15, 0.16,
	)
}

func houseSunColors() curve.ColorGradient {
	return curve.NewColorGradient(
		curve.HexStop(0.00, "#26324f"),
		curve.HexStop(0.20, "#30406b"),
		curve.HexStop(0.24, "#ff8a4c"),
		curve.HexStop(0.30, "#ffd9a0"),
		curve.HexStop(0.50, "#fff6e0"),
		curve.HexStop(0.70, "#ffd9a0"),
		curve.HexStop(0.76, "#ff6a3d"),
		curve.HexStop(0.80, "#30406b"),
		curve.HexStop(1.00, "#26324f"),
	)
}

func houseMoonColors() curve.ColorGradient {
	return curve.NewColorGradient(
		curve.HexStop(0.00, "#aebfff"),
		curve.HexStop(0.20, "#7c92d6"),
		curve.HexStop(0.50, "#5c6fa8"),
		curve.HexStop(0.80, "#7c92d6"),
		curve.HexStop(1.00, "#aebfff"),
	)
}

// NewHousePreset creates the Daylight model with the authored house-scene
// cycle. Additional options may be passed to override individual pieces.
//
// Parameters:
//   - options: functional options applied on top of the preset
//
// Returns:
//   - Daylight: the configured lighting model
func NewHousePreset(options ...DaylightOption) Daylight {
	preset := []DaylightOption{
		WithSunIntensity(houseSunIntensity()),
		WithMoonIntensity(houseMoonIntensity()),
		WithAmbientIntensity(houseAmbientIntensity()),
		WithSunColors(houseSunColors()),
		WithMoonColors(houseMoonColors()),
		WithAmbientColor(0.72, 0.78, 0.92),
		WithSunMount(0, 18, 30),
		WithMoonMount(0, 14, 30),
	}
	return NewDaylight(append(preset, options...)...)
}
