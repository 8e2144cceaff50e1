// Package scenedoc loads a YAML scene description and evaluates it frame by
// frame, so the exporter can run without a live host application.
package scenedoc

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateObject = errors.New("duplicate object name")
	ErrBadVector       = errors.New("bad vector length")
	ErrUnknownType     = errors.New("unknown object type")
	ErrNoCamera        = errors.New("active camera not found")
	ErrFrameRange      = errors.New("frame out of range")
)

const (
	TypeCamera = "camera"
	TypeLight  = "light"
	TypeMesh   = "mesh"
	TypeEmpty  = "empty"
)

// Document is the on-disk scene.
type Document struct {
	FrameStart int         `yaml:"frame_start"`
	FrameEnd   int         `yaml:"frame_end"`
	Camera     string      `yaml:"camera"`
	Render     RenderDef   `yaml:"render"`
	Objects    []ObjectDef `yaml:"objects"`
}

type RenderDef struct {
	Engine        string `yaml:"engine"`
	ViewTransform string `yaml:"view_transform"`
	Look          string `yaml:"look"`
}

type ObjectDef struct {
	Name       string       `yaml:"name"`
	Type       string       `yaml:"type"`
	HideRender bool         `yaml:"hide_render"`
	Position   []float64    `yaml:"position"`
	Rotation   *RotationDef `yaml:"rotation"`
	Scale      []float64    `yaml:"scale"`
	Lens       *float64     `yaml:"lens"` // cameras only
	Light      *LightDef    `yaml:"light"`
	Keys       []KeyDef     `yaml:"keys"`
}

// RotationDef is either XYZ Euler angles in degrees or a quaternion [w, x, y, z].
type RotationDef struct {
	EulerDeg []float64 `yaml:"euler_deg"`
	Quat     []float64 `yaml:"quat"`
}

type LightDef struct {
	Type   string    `yaml:"type"` // POINT, SPOT, AREA, SUN
	Energy float64   `yaml:"energy"`
	Color  []float64 `yaml:"color"`

	SpotSizeDeg float64 `yaml:"spot_size_deg"` // full cone angle
	SpotBlend   float64 `yaml:"spot_blend"`

	Shape string  `yaml:"shape"` // SQUARE, RECTANGLE, DISK, ELLIPSE
	Size  float64 `yaml:"size"`
	SizeY float64 `yaml:"size_y"`
}

// KeyDef sets animated channels at a frame. Unset channels are not keyed.
type KeyDef struct {
	Frame    int          `yaml:"frame"`
	Position []float64    `yaml:"position"`
	Rotation *RotationDef `yaml:"rotation"`
	Energy   *float64     `yaml:"energy"`
	Color    []float64    `yaml:"color"`
	Lens     *float64     `yaml:"lens"`
}

func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenedoc: read: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scenedoc: parse: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) Validate() error {
	if d.FrameEnd < d.FrameStart {
		return fmt.Errorf("scenedoc: %w: frame_end %d before frame_start %d", ErrFrameRange, d.FrameEnd, d.FrameStart)
	}
	seen := make(map[string]bool, len(d.Objects))
	for i := range d.Objects {
		o := &d.Objects[i]
		if seen[o.Name] {
			return fmt.Errorf("scenedoc: %w: %q", ErrDuplicateObject, o.Name)
		}
		seen[o.Name] = true
		if err := o.validate(); err != nil {
			return fmt.Errorf("scenedoc: object %q: %w", o.Name, err)
		}
	}
	if d.Camera != "" {
		cam := d.object(d.Camera)
		if cam == nil || cam.Type != TypeCamera {
			return fmt.Errorf("scenedoc: %w: %q", ErrNoCamera, d.Camera)
		}
	}
	return nil
}

func (d *Document) object(name string) *ObjectDef {
	for i := range d.Objects {
		if d.Objects[i].Name == name {
			return &d.Objects[i]
		}
	}
	return nil
}

func (o *ObjectDef) validate() error {
	o.Type = strings.ToLower(o.Type)
	if o.Type == "" {
		if o.Light != nil {
			o.Type = TypeLight
		} else {
			o.Type = TypeMesh
		}
	}
	switch o.Type {
	case TypeCamera, TypeMesh, TypeEmpty:
	case TypeLight:
		if o.Light == nil {
			o.Light = &LightDef{Type: "POINT"}
		}
		if err := o.Light.validate(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownType, o.Type)
	}
	if err := checkLen("position", o.Position, 3); err != nil {
		return err
	}
	if err := checkLen("scale", o.Scale, 3); err != nil {
		return err
	}
	if err := o.Rotation.validate(); err != nil {
		return err
	}
	for _, k := range o.Keys {
		if err := checkLen("key position", k.Position, 3); err != nil {
			return err
		}
		if err := checkLen("key color", k.Color, 3); err != nil {
			return err
		}
		if err := k.Rotation.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (l *LightDef) validate() error {
	l.Type = strings.ToUpper(l.Type)
	if l.Type == "" {
		l.Type = "POINT"
	}
	if l.Type == "AREA" {
		l.Shape = strings.ToUpper(l.Shape)
		switch l.Shape {
		case "":
			l.Shape = "SQUARE"
		case "SQUARE", "RECTANGLE", "DISK", "ELLIPSE":
		default:
			return fmt.Errorf("unknown area shape %q", l.Shape)
		}
	}
	return checkLen("color", l.Color, 3)
}

func (r *RotationDef) validate() error {
	if r == nil {
		return nil
	}
	if err := checkLen("euler_deg", r.EulerDeg, 3); err != nil {
		return err
	}
	return checkLen("quat", r.Quat, 4)
}

// checkLen accepts an absent vector or one of exactly n components.
func checkLen(name string, v []float64, n int) error {
	if v != nil && len(v) != n {
		return fmt.Errorf("%w: %s has %d components, want %d", ErrBadVector, name, len(v), n)
	}
	return nil
}
