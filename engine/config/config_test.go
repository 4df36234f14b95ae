package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homestead3d/homestead-go/engine/scene"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "homestead.yaml")

	want := Default()
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadSparseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparse.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen: \":9000\"\ntick_rate: 30\n"), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Listen)
	assert.Equal(t, 30.0, c.TickRate)
	assert.Zero(t, c.Camera.DampingRate)

	// Sparse camera tuning still yields four usable rig options.
	assert.Len(t, c.RigOptions(), 4)
}

func TestSceneOptionsApplyDayClockAndScatter(t *testing.T) {
	c := Default()
	c.DayLengthSec = 0
	c.TimeOfDay = 0.5

	s := scene.NewScene("house", nil, nil, c.SceneOptions()...)
	assert.Equal(t, 0.5, s.TimeOfDay())

	total := 0
	for _, p := range c.Scatter {
		total += p.Count
	}
	assert.Len(t, s.Scatter(), total)

	s.Advance(1.0 / 60.0)
	assert.Equal(t, 0.5, s.TimeOfDay(), "day length 0 freezes the clock")
}
