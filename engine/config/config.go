// Package config loads and saves engine configuration from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/homestead3d/homestead-go/common"
	"github.com/homestead3d/homestead-go/engine/camera"
	"github.com/homestead3d/homestead-go/engine/scene"
)

// CameraCfg holds camera rig tuning. Zero values fall back to the rig defaults.
type CameraCfg struct {
	DampingRate   float32 `yaml:"damping_rate"`
	MaxFrameDelta float32 `yaml:"max_frame_delta"`
	OrbitRadius   float32 `yaml:"orbit_radius"`
	OrbitSpeed    float32 `yaml:"orbit_speed"`
	BobAmplitude  float32 `yaml:"bob_amplitude"`
	BobFrequency  float32 `yaml:"bob_frequency"`
}

// ScatterCfg describes one decorative scatter patch.
type ScatterCfg struct {
	Kind     string     `yaml:"kind"` // "grass" | "cobble"
	Count    int        `yaml:"count"`
	Center   [3]float32 `yaml:"center"`
	Radius   float32    `yaml:"radius"`
	MinScale float32    `yaml:"min_scale"`
	MaxScale float32    `yaml:"max_scale"`
}

type Config struct {
	Listen    string  `yaml:"listen"`
	TickRate  float64 `yaml:"tick_rate"`
	Profiling bool    `yaml:"profiling"`

	DayLengthSec float64 `yaml:"day_length_sec"`
	TimeOfDay    float64 `yaml:"time_of_day"`

	Camera  CameraCfg    `yaml:"camera"`
	Scatter []ScatterCfg `yaml:"scatter,omitempty"`
}

// Default returns the configuration used when no file is present: a four
// minute day cycle starting at mid-morning, 60Hz ticks, and two scatter
// patches around the house.
func Default() *Config {
	return &Config{
		Listen:       ":8384",
		TickRate:     60,
		DayLengthSec: 240,
		TimeOfDay:    0.35,
		Camera: CameraCfg{
			DampingRate:   2.5,
			MaxFrameDelta: 0.1,
			OrbitRadius:   2.5,
			OrbitSpeed:    0.22,
			BobAmplitude:  0.6,
			BobFrequency:  0.9,
		},
		Scatter: []ScatterCfg{
			{Kind: "grass", Count: 400, Center: [3]float32{0, 0, 10}, Radius: 9, MinScale: 0.7, MaxScale: 1.4},
			{Kind: "cobble", Count: 120, Center: [3]float32{0, 0, 16}, Radius: 3, MinScale: 0.4, MaxScale: 0.8},
		},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// RigOptions converts the camera section into rig builder options.
// Zero-valued fields are replaced with the rig defaults so a sparse YAML
// file still produces a usable rig.
func (c *Config) RigOptions() []camera.CameraRigOption {
	cam := c.Camera
	return []camera.CameraRigOption{
		camera.WithDampingRate(common.Coalesce(cam.DampingRate, 2.5)),
		camera.WithMaxFrameDelta(common.Coalesce(cam.MaxFrameDelta, 0.1)),
		camera.WithOrbit(common.Coalesce(cam.OrbitRadius, 2.5), common.Coalesce(cam.OrbitSpeed, 0.22)),
		camera.WithBob(common.Coalesce(cam.BobAmplitude, 0.6), common.Coalesce(cam.BobFrequency, 0.9)),
	}
}

// SceneOptions converts the day clock and scatter sections into scene
// builder options.
func (c *Config) SceneOptions() []scene.SceneBuilderOption {
	opts := []scene.SceneBuilderOption{
		scene.WithDayLength(c.DayLengthSec),
		scene.WithTimeOfDay(c.TimeOfDay),
	}
	for _, sc := range c.Scatter {
		kind := scene.ScatterGrass
		if sc.Kind == "cobble" {
			kind = scene.ScatterCobble
		}
		opts = append(opts, scene.WithScatterPatch(scene.ScatterPatch{
			Kind:     kind,
			Count:    sc.Count,
			Center:   sc.Center,
			Radius:   sc.Radius,
			MinScale: sc.MinScale,
			MaxScale: sc.MaxScale,
		}))
	}
	return opts
}
