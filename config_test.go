package scenecsv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 17, cfg.CamerasPerConfig)
	assert.Equal(t, 3, cfg.MaxActiveLights)
	assert.Len(t, cfg.Shapes, 6)
}

func TestParseConfig_Overrides(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
dataset_root: ""
shapes: [Cube, Torus]
cameras_per_config: 4
single_lamps:
  Key: Point
setups: [Key, Tri Light, HDRI (Night)]
`))
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DatasetRoot)
	assert.Equal(t, []string{"Cube", "Torus"}, cfg.Shapes)
	assert.Equal(t, 4, cfg.CamerasPerConfig)
	assert.Equal(t, map[string]string{"Key": "Point"}, cfg.SingleLamps)
	// untouched keys keep defaults
	assert.Equal(t, "PlasticGlossy", cfg.MaterialFolder)
	assert.Equal(t, 3, cfg.MaxActiveLights)
	require.NoError(t, cfg.Validate())
}

func TestParseConfig_KeepsDefaultLamps(t *testing.T) {
	cfg, err := ParseConfig([]byte("material_folder: Metal\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().SingleLamps, cfg.SingleLamps)
	assert.Equal(t, "../data", cfg.DatasetRoot)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_active_lights: 2\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxActiveLights)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no shapes", func(c *Config) { c.Shapes = nil }, ErrNoShapes},
		{"zero cameras", func(c *Config) { c.CamerasPerConfig = 0 }, ErrInvalidCameraCount},
		{"negative lights", func(c *Config) { c.MaxActiveLights = -1 }, ErrInvalidLightCapacity},
		{"no output", func(c *Config) { c.Output = " " }, ErrNoOutput},
		{"no setups", func(c *Config) { c.Setups = nil }, ErrNoSetups},
		{"unknown setup", func(c *Config) { c.Setups = append(c.Setups, "Moon Light") }, ErrUnknownSetup},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}
}
