package daylight

import "github.com/homestead3d/homestead-go/engine/curve"

// DaylightOption is a functional option for configuring a Daylight model.
// Use the With* functions to create options applied during NewDaylight.
type DaylightOption func(*daylightImpl)

// WithSunIntensity sets the sun brightness curve over the day cycle.
//
// Parameters:
//   - c: curve sampled by time of day in [0, 1]
//
// Returns:
//   - DaylightOption: option function to apply
func WithSunIntensity(c curve.Curve) DaylightOption {
	return func(d *daylightImpl) {
		d.sunIntensity = c
	}
}

// WithMoonIntensity sets the moon brightness curve over the day cycle.
//
// Parameters:
//   - c: curve sampled by time of day in [0, 1]
//
// Returns:
//   - DaylightOption: option function to apply
func WithMoonIntensity(c curve.Curve) DaylightOption {
	return func(d *daylightImpl) {
		d.moonIntensity = c
	}
}

// WithAmbientIntensity sets the sky/ambient brightness curve over the day cycle.
//
// Parameters:
//   - c: curve sampled by time of day in [0, 1]
//
// Returns:
//   - DaylightOption: option function to apply
func WithAmbientIntensity(c curve.Curve) DaylightOption {
	return func(d *daylightImpl) {
		d.ambientIntensity = c
	}
}

// WithSunColors sets the sun color gradient over the day cycle. Color is
// authored independently of the intensity curve; the two are only combined by
// the consumer at the point of use.
//
// Parameters:
//   - g: gradient sampled by time of day in [0, 1]
//
// Returns:
//   - DaylightOption: option function to apply
func WithSunColors(g curve.ColorGradient) DaylightOption {
	return func(d *daylightImpl) {
		d.sunColors = g
	}
}

// WithMoonColors sets the moon color gradient over the day cycle.
//
// Parameters:
//   - g: gradient sampled by time of day in [0, 1]
//
// Returns:
//   - DaylightOption: option function to apply
func WithMoonColors(g curve.ColorGradient) DaylightOption {
	return func(d *daylightImpl) {
		d.moonColors = g
	}
}

// WithAmbientColor sets the fixed ambient light color.
//
// Parameters:
//   - r, g, b: color components in [0, 1]
//
// Returns:
//   - DaylightOption: option function to apply
func WithAmbientColor(r, g, b float32) DaylightOption {
	return func(d *daylightImpl) {
		d.ambientColor = [3]float32{r, g, b}
	}
}

// WithSunMount sets the sun light group's mount point before the daily
// rotation is applied. The mount must be off the vertical axis for the
// rotation to produce a sweep.
//
// Parameters:
//   - x, y, z: mount position relative to the scene origin
//
// Returns:
//   - DaylightOption: option function to apply
func WithSunMount(x, y, z float32) DaylightOption {
	return func(d *daylightImpl) {
		d.sunMount = [3]float32{x, y, z}
	}
}

// WithMoonMount sets the moon light group's mount point before the daily
// rotation is applied.
//
// Parameters:
//   - x, y, z: mount position relative to the scene origin
//
// Returns:
//   - DaylightOption: option function to apply
func WithMoonMount(x, y, z float32) DaylightOption {
	return func(d *daylightImpl) {
		d.moonMount = [3]float32{x, y, z}
	}
}
