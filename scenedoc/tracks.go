package scenedoc

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

type key[T any] struct {
	frame int
	value T
}

// track is one animated channel, keys sorted by frame.
type track[T any] struct {
	keys []key[T]
	lerp func(a, b T, t float64) T
}

func (tr *track[T]) add(frame int, v T) {
	tr.keys = append(tr.keys, key[T]{frame: frame, value: v})
	slices.SortStableFunc(tr.keys, func(a, b key[T]) int { return a.frame - b.frame })
}

// sample holds the first and last keys constant outside their range.
func (tr *track[T]) sample(frame int, fallback T) T {
	n := len(tr.keys)
	switch {
	case n == 0:
		return fallback
	case frame <= tr.keys[0].frame:
		return tr.keys[0].value
	case frame >= tr.keys[n-1].frame:
		return tr.keys[n-1].value
	}
	i, _ := slices.BinarySearchFunc(tr.keys, frame, func(k key[T], f int) int { return k.frame - f })
	// keys[i-1].frame < frame <= keys[i].frame
	a, b := tr.keys[i-1], tr.keys[i]
	t := float64(frame-a.frame) / float64(b.frame-a.frame)
	return tr.lerp(a.value, b.value, t)
}

func lerpFloat(a, b, t float64) float64 { return a + (b-a)*t }

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 { return a.Add(b.Sub(a).Mul(t)) }

func slerp(a, b mgl64.Quat, t float64) mgl64.Quat { return mgl64.QuatSlerp(a, b, t) }

func vec3Of(v []float64, fallback mgl64.Vec3) mgl64.Vec3 {
	if len(v) != 3 {
		return fallback
	}
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// quatOf converts a rotation definition. Euler angles are XYZ, applied X first.
func quatOf(r *RotationDef) mgl64.Quat {
	switch {
	case r == nil:
		return mgl64.QuatIdent()
	case len(r.Quat) == 4:
		return mgl64.Quat{W: r.Quat[0], V: mgl64.Vec3{r.Quat[1], r.Quat[2], r.Quat[3]}}.Normalize()
	case len(r.EulerDeg) == 3:
		qx := mgl64.QuatRotate(mgl64.DegToRad(r.EulerDeg[0]), mgl64.Vec3{1, 0, 0})
		qy := mgl64.QuatRotate(mgl64.DegToRad(r.EulerDeg[1]), mgl64.Vec3{0, 1, 0})
		qz := mgl64.QuatRotate(mgl64.DegToRad(r.EulerDeg[2]), mgl64.Vec3{0, 0, 1})
		return qz.Mul(qy).Mul(qx).Normalize()
	default:
		return mgl64.QuatIdent()
	}
}
