package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/diffuse1d/internal/grid"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLength, cfg.Length)
	assert.Greater(t, cfg.Dt, 0.0)
	assert.Greater(t, cfg.Duration, 0.0)
	assert.Greater(t, cfg.Diffusivity, 0.0)
	assert.Equal(t, "gaussian", cfg.Initial.Profile)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Length = 42
	cfg.BoundaryLow = "periodic"
	cfg.BoundaryHigh = "mirror"
	cfg.Initial.Profile = "spike"
	cfg.Initial.Amplitude = 5.0

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BoundaryLow = "periodic"
	cfg.BoundaryHigh = "mirror"

	lower, upper, err := cfg.Boundaries()
	require.NoError(t, err)
	assert.Equal(t, grid.Periodic, lower)
	assert.Equal(t, grid.Mirror, upper)

	cfg.BoundaryHigh = "bogus"
	_, _, err = cfg.Boundaries()
	assert.Error(t, err)
}

func TestMakeInitial(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Length = 30

	f, err := cfg.MakeInitial()
	require.NoError(t, err)
	assert.Len(t, f, 30)

	cfg.Initial.Profile = "bogus"
	_, err = cfg.MakeInitial()
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	require.NotEmpty(t, names)

	for _, name := range names {
		cfg := GetPreset(name)
		require.NotNil(t, cfg, "preset %s", name)

		_, _, err := cfg.Boundaries()
		assert.NoError(t, err, "preset %s has invalid boundaries", name)

		_, err = cfg.MakeInitial()
		assert.NoError(t, err, "preset %s has invalid initial profile", name)
	}

	assert.Nil(t, GetPreset("nonexistent"))
}
