package scenecsv

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func vecNear(t *testing.T, want, got mgl64.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, want.ApproxEqualThreshold(got, 1e-9), append([]any{"want %v, got %v", want, got}, msgAndArgs...)...)
}

func TestTransformComposition(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl64.Vec3{10, 20, 30}
	tr.Rotation = mgl64.QuatRotate(math.Pi/3, mgl64.Vec3{0, 1, 0})
	tr.Scale = mgl64.Vec3{2, 2, 2}

	identity := tr.ObjectToWorld().Mul4(tr.WorldToObject())
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(identity.At(i, j)-want) > 1e-9 {
				t.Errorf("identity[%d,%d] = %f, want %f", i, j, identity.At(i, j), want)
			}
		}
	}
}

func TestAxisToWorld(t *testing.T) {
	tr := NewTransform()
	tr.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 0, 1})
	tr.Scale = mgl64.Vec3{3, 3, 3}

	// Scale must not leak into directions.
	vecNear(t, mgl64.Vec3{0, 1, 0}, AxisToWorld(tr.Orientation(), LocalRight))
	vecNear(t, mgl64.Vec3{-1, 0, 0}, AxisToWorld(tr.Orientation(), LocalUp))
	vecNear(t, mgl64.Vec3{0, 0, -1}, AxisToWorld(tr.Orientation(), LocalForward))
}

func TestToCameraSpace(t *testing.T) {
	cam := NewTransform()
	cam.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})

	// The camera's own forward is -Z in its local frame.
	worldForward := AxisToWorld(cam.Orientation(), LocalForward)
	vecNear(t, mgl64.Vec3{0, 0, -1}, ToCameraSpace(cam, worldForward))

	got := ToCameraSpace(cam, mgl64.Vec3{0, 0, 5})
	assert.InDelta(t, 1.0, got.Len(), 1e-9)
}

func TestToCameraSpace_IgnoresPositionAndScale(t *testing.T) {
	cam := NewTransform()
	cam.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	want := ToCameraSpace(cam, mgl64.Vec3{1, 0, 0})

	cam.Position = mgl64.Vec3{100, -20, 7}
	cam.Scale = mgl64.Vec3{2, 2, 2}
	vecNear(t, want, ToCameraSpace(cam, mgl64.Vec3{1, 0, 0}))
	// +90 about Y turns local -Z into world -X, so world +X is local +Z.
	vecNear(t, mgl64.Vec3{0, 0, 1}, want)
}

func TestToCameraSpace_Degenerate(t *testing.T) {
	cam := NewTransform()
	cam.Scale = mgl64.Vec3{0, 1, 1}
	assert.Equal(t, mgl64.Vec3{}, ToCameraSpace(cam, mgl64.Vec3{1, 0, 0}))
	assert.Equal(t, mgl64.Vec3{}, normalizeOrZero(mgl64.Vec3{}))
}
