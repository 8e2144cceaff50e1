package scenecsv

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoShapes             = errors.New("no shapes configured")
	ErrInvalidCameraCount   = errors.New("cameras_per_config must be at least 1")
	ErrInvalidLightCapacity = errors.New("max_active_lights must not be negative")
	ErrNoSetups             = errors.New("no lighting setups configured")
	ErrUnknownSetup         = errors.New("unknown lighting setup")
	ErrNoOutput             = errors.New("no output path configured")
)

// Config is the exporter's configuration surface.
type Config struct {
	// DatasetRoot is where rendered images live. Blank disables existence checks.
	DatasetRoot    string   `yaml:"dataset_root"`
	MaterialFolder string   `yaml:"material_folder"`
	Shapes         []string `yaml:"shapes"`

	// CamerasPerConfig is the number of consecutive frames sharing one config_id.
	CamerasPerConfig int `yaml:"cameras_per_config"`
	MaxActiveLights  int `yaml:"max_active_lights"`

	// SingleLamps maps a setup label ("Point Light") to the one lamp object it
	// enables ("Point"). The label's first word names the lamp's expected type.
	SingleLamps       map[string]string `yaml:"single_lamps"`
	RigLabel          string            `yaml:"rig_label"`
	RigLamps          []string          `yaml:"rig_lamps"`
	EnvironmentPrefix string            `yaml:"environment_prefix"`

	// Setups lists lighting setup labels in export order.
	Setups []string `yaml:"setups"`

	Output       string `yaml:"output"`
	SQLite       string `yaml:"sqlite"`
	VerifyImages bool   `yaml:"verify_images"`
}

func DefaultConfig() Config {
	return Config{
		DatasetRoot:      "../data",
		MaterialFolder:   "PlasticGlossy",
		Shapes:           []string{"Cone", "Cube", "Cylinder", "Icosphere", "Sphere", "Torus"},
		CamerasPerConfig: 17,
		MaxActiveLights:  DefaultMaxActiveLights,
		SingleLamps: map[string]string{
			"Area Light":  "Area",
			"Point Light": "Point",
			"Spot Light":  "Spot",
		},
		RigLabel:          "Tri Light",
		RigLamps:          []string{"TriLamp-Key", "TriLamp-Fill", "TriLamp-Back"},
		EnvironmentPrefix: "HDRI",
		Setups: []string{
			"Point Light", "Spot Light", "Area Light", "Tri Light",
			"HDRI (Sunlight)", "HDRI (Overcast)",
		},
		Output: "master_with_paths.csv",
	}
}

// LoadConfig reads a YAML file over the defaults. Keys missing from the
// file keep their default values; single_lamps replaces the default map.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	defaults := cfg.SingleLamps
	cfg.SingleLamps = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.SingleLamps == nil {
		cfg.SingleLamps = defaults
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.Shapes) == 0 {
		return ErrNoShapes
	}
	if c.CamerasPerConfig < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidCameraCount, c.CamerasPerConfig)
	}
	if c.MaxActiveLights < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidLightCapacity, c.MaxActiveLights)
	}
	if strings.TrimSpace(c.Output) == "" {
		return ErrNoOutput
	}
	if _, err := c.LightingSetups(); err != nil {
		return err
	}
	return nil
}
