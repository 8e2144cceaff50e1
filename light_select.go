package scenecsv

import (
	"cmp"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultMaxActiveLights is the number of light slots recorded per frame.
const DefaultMaxActiveLights = 3

// LightSlot is one ranked light. Slots past the active count have Present == false
// and render as empty cells in every column.
type LightSlot struct {
	Present bool

	Name            string
	Type            string
	Energy          float64
	Color           mgl64.Vec3
	Position        mgl64.Vec3
	Direction       mgl64.Vec3
	CameraDirection mgl64.Vec3

	Spot *SpotSlot
	Area *AreaSlot
}

type SpotSlot struct {
	ConeDegrees float64
	Blend       float64
}

type AreaSlot struct {
	Shape string
	SizeX float64
	SizeY float64
}

// LightRanking is the fixed-capacity result of SelectActiveLights.
type LightRanking struct {
	Count int
	Slots []LightSlot
}

// SelectActiveLights filters lights to the active ones, ranks them by intensity
// (highest first, ties keep input order) and returns exactly capacity slots.
// cam may be nil; camera-relative directions are then the zero vector.
func SelectActiveLights(lights []LightSource, cam *Camera, capacity int) LightRanking {
	if capacity < 0 {
		capacity = 0
	}

	active := make([]LightSource, 0, len(lights))
	for _, l := range lights {
		if l.Active() {
			active = append(active, l)
		}
	}
	slices.SortStableFunc(active, func(a, b LightSource) int {
		return cmp.Compare(b.Intensity, a.Intensity)
	})
	if len(active) > capacity {
		active = active[:capacity]
	}

	var camWorld *Transform
	if cam != nil {
		camWorld = &cam.World
	}

	ranking := LightRanking{
		Count: len(active),
		Slots: make([]LightSlot, capacity),
	}
	for i, l := range active {
		ranking.Slots[i] = lightSlot(l, camWorld)
	}
	return ranking
}

func lightSlot(l LightSource, camWorld *Transform) LightSlot {
	dir := l.Forward()
	slot := LightSlot{
		Present:   true,
		Name:      l.Name,
		Energy:    l.Intensity,
		Color:     l.Color,
		Position:  l.World.Position,
		Direction: dir,
	}
	if camWorld != nil {
		slot.CameraDirection = ToCameraSpace(*camWorld, dir)
	}

	switch p := l.Params.(type) {
	case SpotParams:
		slot.Type = p.Tag()
		slot.Spot = &SpotSlot{
			ConeDegrees: mgl64.RadToDeg(p.ConeAngle),
			Blend:       p.Blend,
		}
	case AreaParams:
		slot.Type = p.Tag()
		area := &AreaSlot{Shape: string(p.Shape), SizeX: p.Size, SizeY: p.Size}
		if p.Shape.TwoDimensional() {
			area.SizeY = p.SizeY
		}
		slot.Area = area
	case nil:
		slot.Type = ""
	default:
		slot.Type = p.Tag()
	}
	return slot
}
