package scenecsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riggedScene() *fakeScene {
	s := newFakeScene(1, 1)
	s.addLight("Point", 100, PointParams{})
	s.addLight("Spot", 200, SpotParams{ConeAngle: 0.5})
	s.addLight("Area", 50, AreaParams{Shape: AreaShapeSquare, Size: 1})
	s.addLight("TriLamp-Key", 300, PointParams{})
	s.addLight("TriLamp-Fill", 150, PointParams{})
	// TriLamp-Back is absent from the scene
	return s
}

func TestLightingSetups_Default(t *testing.T) {
	setups, err := DefaultConfig().LightingSetups()
	require.NoError(t, err)
	require.Len(t, setups, 6)

	assert.Equal(t, LightingSetup{Label: "Point Light", Kind: SetupSingleLamp, Lamps: []string{"Point"}}, setups[0])
	assert.Equal(t, SetupRig, setups[3].Kind)
	assert.Equal(t, []string{"TriLamp-Key", "TriLamp-Fill", "TriLamp-Back"}, setups[3].Lamps)
	assert.Equal(t, SetupEnvironment, setups[4].Kind)
	assert.Empty(t, setups[5].Lamps)
}

func TestKnownLamps(t *testing.T) {
	assert.Equal(t,
		[]string{"Area", "Point", "Spot", "TriLamp-Key", "TriLamp-Fill", "TriLamp-Back"},
		DefaultConfig().KnownLamps())
}

func TestApplySetup(t *testing.T) {
	cfg := DefaultConfig()
	setups, err := cfg.LightingSetups()
	require.NoError(t, err)
	known := cfg.KnownLamps()
	s := riggedScene()

	missing := ApplySetup(s, setups[1], known)
	assert.Empty(t, missing)
	assert.Equal(t, []string{"Spot"}, s.visible())

	missing = ApplySetup(s, setups[3], known)
	assert.Equal(t, []string{"TriLamp-Back"}, missing)
	assert.Equal(t, []string{"TriLamp-Key", "TriLamp-Fill"}, s.visible())
}

func TestApplySetup_EnvironmentDisablesAll(t *testing.T) {
	cfg := DefaultConfig()
	setups, err := cfg.LightingSetups()
	require.NoError(t, err)
	known := cfg.KnownLamps()

	for _, first := range setups[:4] {
		s := riggedScene()
		ApplySetup(s, first, known)
		ApplySetup(s, setups[4], known)
		assert.Empty(t, s.visible(), "after %q", first.Label)
		assert.Equal(t, 0, SelectActiveLights(s.Lights(), s.camera, 3).Count)
	}
}

func TestApplySetup_LabelsDifferFromLampNames(t *testing.T) {
	cfg := DefaultConfig()
	setups, err := cfg.LightingSetups()
	require.NoError(t, err)
	known := cfg.KnownLamps()
	s := riggedScene()

	want := map[string][]string{
		"Point Light":     {"Point"},
		"Spot Light":      {"Spot"},
		"Area Light":      {"Area"},
		"Tri Light":       {"TriLamp-Key", "TriLamp-Fill"},
		"HDRI (Sunlight)": nil,
		"HDRI (Overcast)": nil,
	}
	for _, setup := range setups {
		missing := ApplySetup(s, setup, known)
		if setup.Kind == SetupSingleLamp {
			assert.Empty(t, missing, setup.Label)
		}
		assert.Equal(t, want[setup.Label], s.visible(), setup.Label)
		assert.Equal(t, len(want[setup.Label]), SelectActiveLights(s.Lights(), s.camera, 3).Count, setup.Label)
	}
}

func TestKnownLamps_SharedLamp(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SingleLamps = map[string]string{"Point Light": "Key", "Spot Light": "Spot"}
	cfg.RigLamps = []string{"Key", "Fill"}
	assert.Equal(t, []string{"Key", "Spot", "Fill"}, cfg.KnownLamps())
}
