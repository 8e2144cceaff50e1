package scenecsv

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Lens is the optical data attached to a camera object.
type Lens struct {
	FocalLength float64 // millimetres
}

// Camera is the scene's active camera object.
type Camera struct {
	Name  string
	World Transform
	Lens  *Lens
}

// CameraState is the per-frame snapshot written to the camera columns.
type CameraState struct {
	Name        string
	Position    mgl64.Vec3
	Forward     mgl64.Vec3
	Up          mgl64.Vec3
	Right       mgl64.Vec3
	FocalLength float64
	HasLens     bool
}

// ExtractCamera returns the camera's position, orthonormal basis and lens.
// It returns false when there is no camera; callers leave every camera column empty.
func ExtractCamera(cam *Camera) (CameraState, bool) {
	if cam == nil {
		return CameraState{}, false
	}
	rot := cam.World.Orientation()
	state := CameraState{
		Name:     cam.Name,
		Position: cam.World.Position,
		Forward:  AxisToWorld(rot, LocalForward),
		Up:       AxisToWorld(rot, LocalUp),
		Right:    AxisToWorld(rot, LocalRight),
	}
	if cam.Lens != nil {
		state.FocalLength = cam.Lens.FocalLength
		state.HasLens = true
	}
	return state, true
}
