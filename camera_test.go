package scenecsv

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCamera_None(t *testing.T) {
	state, ok := ExtractCamera(nil)
	assert.False(t, ok)
	assert.Equal(t, CameraState{}, state)
}

func TestExtractCamera_Basis(t *testing.T) {
	cam := &Camera{Name: "Camera", World: NewTransform(), Lens: &Lens{FocalLength: 50}}
	cam.World.Position = mgl64.Vec3{7, -6, 5}
	cam.World.Rotation = mgl64.QuatRotate(math.Pi/5, mgl64.Vec3{1, 2, 3}.Normalize())
	cam.World.Scale = mgl64.Vec3{1, 2, 0.5}

	state, ok := ExtractCamera(cam)
	require.True(t, ok)
	assert.Equal(t, "Camera", state.Name)
	assert.Equal(t, mgl64.Vec3{7, -6, 5}, state.Position)
	assert.True(t, state.HasLens)
	assert.Equal(t, 50.0, state.FocalLength)

	for _, v := range []mgl64.Vec3{state.Forward, state.Up, state.Right} {
		assert.InDelta(t, 1.0, v.Len(), 1e-9)
	}
	assert.InDelta(t, 0.0, state.Forward.Dot(state.Up), 1e-9)
	assert.InDelta(t, 0.0, state.Up.Dot(state.Right), 1e-9)
	// right-handed: right x up = -forward
	vecNear(t, state.Forward.Mul(-1), state.Right.Cross(state.Up))
}

func TestExtractCamera_NoLens(t *testing.T) {
	state, ok := ExtractCamera(&Camera{Name: "Cam", World: NewTransform()})
	require.True(t, ok)
	assert.False(t, state.HasLens)
	vecNear(t, mgl64.Vec3{0, 0, -1}, state.Forward)
}
