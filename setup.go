package scenecsv

import (
	"fmt"
	"slices"
	"strings"
)

type SetupKind int

const (
	SetupSingleLamp SetupKind = iota
	SetupRig
	SetupEnvironment
)

func (k SetupKind) String() string {
	switch k {
	case SetupSingleLamp:
		return "single"
	case SetupRig:
		return "rig"
	case SetupEnvironment:
		return "environment"
	default:
		return fmt.Sprintf("SetupKind(%d)", int(k))
	}
}

// LightingSetup is a named set of lamps enabled together for a batch of frames.
// Environment setups enable no lamps.
type LightingSetup struct {
	Label string
	Kind  SetupKind
	Lamps []string
}

// LightingSetups resolves the configured setup labels, in order.
func (c Config) LightingSetups() ([]LightingSetup, error) {
	if len(c.Setups) == 0 {
		return nil, ErrNoSetups
	}
	setups := make([]LightingSetup, 0, len(c.Setups))
	for _, label := range c.Setups {
		s, err := c.resolveSetup(label)
		if err != nil {
			return nil, err
		}
		setups = append(setups, s)
	}
	return setups, nil
}

func (c Config) resolveSetup(label string) (LightingSetup, error) {
	if lamp, ok := c.SingleLamps[label]; ok {
		return LightingSetup{Label: label, Kind: SetupSingleLamp, Lamps: []string{lamp}}, nil
	}
	if c.RigLabel != "" && label == c.RigLabel {
		return LightingSetup{Label: label, Kind: SetupRig, Lamps: slices.Clone(c.RigLamps)}, nil
	}
	if c.EnvironmentPrefix != "" && strings.HasPrefix(label, c.EnvironmentPrefix) {
		return LightingSetup{Label: label, Kind: SetupEnvironment}, nil
	}
	return LightingSetup{}, fmt.Errorf("%w %q", ErrUnknownSetup, label)
}

// KnownLamps lists every lamp any setup may enable, single lamps first (sorted), then the rig.
func (c Config) KnownLamps() []string {
	names := make([]string, 0, len(c.SingleLamps)+len(c.RigLamps))
	for _, name := range c.SingleLamps {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	for _, name := range c.RigLamps {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

// ApplySetup hides every known lamp, then shows the setup's lamps.
// Lamps absent from the scene are skipped and returned.
func ApplySetup(scene SceneProvider, setup LightingSetup, known []string) (missing []string) {
	for _, name := range known {
		scene.SetRenderVisible(name, false)
	}
	for _, name := range setup.Lamps {
		if !scene.SetRenderVisible(name, true) {
			missing = append(missing, name)
		}
	}
	return missing
}
