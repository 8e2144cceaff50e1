package scenecsv

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Local axes of cameras and lights. Both look down their local -Z.
var (
	LocalForward = mgl64.Vec3{0, 0, -1}
	LocalUp      = mgl64.Vec3{0, 1, 0}
	LocalRight   = mgl64.Vec3{1, 0, 0}
)

type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

func (t Transform) ObjectToWorld() mgl64.Mat4 {
	// M = T * R * S
	translate := mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	rotate := t.Rotation.Mat4()
	scale := mgl64.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z())

	return translate.Mul4(rotate).Mul4(scale)
}

func (t Transform) WorldToObject() mgl64.Mat4 {
	// inv(M) = inv(S) * inv(R) * inv(T)
	invScale := mgl64.Scale3D(1.0/t.Scale.X(), 1.0/t.Scale.Y(), 1.0/t.Scale.Z())
	invRotate := t.Rotation.Conjugate().Mat4()
	invTranslate := mgl64.Translate3D(-t.Position.X(), -t.Position.Y(), -t.Position.Z())

	return invScale.Mul4(invRotate).Mul4(invTranslate)
}

// Orientation is the upper 3x3 of the world matrix: rotation and scale, no translation.
func (t Transform) Orientation() mgl64.Mat3 {
	return t.ObjectToWorld().Mat3()
}

// AxisToWorld rotates a local axis into world space and normalizes it.
func AxisToWorld(orientation mgl64.Mat3, local mgl64.Vec3) mgl64.Vec3 {
	return normalizeOrZero(orientation.Mul3x1(local))
}

// ToCameraSpace expresses a world direction in the camera's local frame.
// A camera with a zero scale axis has no local frame; the result is then zero.
func ToCameraSpace(cam Transform, worldDir mgl64.Vec3) mgl64.Vec3 {
	if cam.Orientation().Det() == 0 {
		return mgl64.Vec3{}
	}
	// Directions ignore the translation column.
	return normalizeOrZero(cam.WorldToObject().Mat3().Mul3x1(worldDir))
}

func normalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1.0 / l)
}
