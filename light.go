package scenecsv

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

type LightKind uint32

const (
	LightKindOther LightKind = 0
	LightKindPoint LightKind = 1
	LightKindSpot  LightKind = 2
	LightKindArea  LightKind = 3
)

type AreaShape string

const (
	AreaShapeSquare    AreaShape = "SQUARE"
	AreaShapeRectangle AreaShape = "RECTANGLE"
	AreaShapeDisk      AreaShape = "DISK"
	AreaShapeEllipse   AreaShape = "ELLIPSE"
)

// TwoDimensional reports whether the shape carries an independent second size.
func (s AreaShape) TwoDimensional() bool {
	return s == AreaShapeRectangle || s == AreaShapeEllipse
}

// LightParams holds the parameters that only apply to one kind of light.
type LightParams interface {
	Kind() LightKind
	// Tag is the host's type name, written to the lightN_type column.
	Tag() string
}

type PointParams struct{}

func (PointParams) Kind() LightKind { return LightKindPoint }
func (PointParams) Tag() string     { return "POINT" }

type SpotParams struct {
	ConeAngle float64 // radians, as reported by the host
	Blend     float64
}

func (SpotParams) Kind() LightKind { return LightKindSpot }
func (SpotParams) Tag() string     { return "SPOT" }

type AreaParams struct {
	Shape AreaShape
	Size  float64
	SizeY float64 // only meaningful for RECTANGLE and ELLIPSE
}

func (AreaParams) Kind() LightKind { return LightKindArea }
func (AreaParams) Tag() string     { return "AREA" }

// OtherParams covers host light types without extra columns (sun, ...).
type OtherParams struct {
	HostType string
}

func (OtherParams) Kind() LightKind { return LightKindOther }
func (p OtherParams) Tag() string   { return strings.ToUpper(p.HostType) }

// LightSource is one light object as read from the scene for the current frame.
type LightSource struct {
	Name      string
	Visible   bool // render visibility
	Intensity float64
	Color     mgl64.Vec3
	World     Transform
	Params    LightParams
}

// Active lights are render-visible with strictly positive intensity.
func (l LightSource) Active() bool {
	return l.Visible && l.Intensity > 0
}

func (l LightSource) Kind() LightKind {
	if l.Params == nil {
		return LightKindOther
	}
	return l.Params.Kind()
}

// Forward is the light's world-space emission direction (its local -Z).
func (l LightSource) Forward() mgl64.Vec3 {
	return AxisToWorld(l.World.Orientation(), LocalForward)
}

// ParseLightKind maps a light type label ("Point", "SPOT", ...) to its kind.
func ParseLightKind(label string) LightKind {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "point":
		return LightKindPoint
	case "spot":
		return LightKindSpot
	case "area":
		return LightKindArea
	default:
		return LightKindOther
	}
}

// SetupLightKind reads the expected lamp kind from a setup label's first word
// ("Spot Light" -> Spot).
func SetupLightKind(label string) LightKind {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return LightKindOther
	}
	return ParseLightKind(fields[0])
}

func (k LightKind) String() string {
	switch k {
	case LightKindPoint:
		return "Point"
	case LightKindSpot:
		return "Spot"
	case LightKindArea:
		return "Area"
	default:
		return "Other"
	}
}
