package scenedoc

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gekko3d/scenecsv"
)

type object struct {
	def  ObjectDef
	hide bool

	position track[mgl64.Vec3]
	rotation track[mgl64.Quat]
	energy   track[float64]
	color    track[mgl64.Vec3]
	lens     track[float64]

	basePosition mgl64.Vec3
	baseRotation mgl64.Quat
	baseScale    mgl64.Vec3

	// evaluated at the current frame
	world     scenecsv.Transform
	intensity float64
	rgb       mgl64.Vec3
	focal     float64
}

// Scene evaluates a Document at one frame at a time. It implements scenecsv.SceneProvider.
type Scene struct {
	doc     *Document
	frame   int
	objects []*object
	byName  map[string]*object
}

var _ scenecsv.SceneProvider = (*Scene)(nil)

func NewScene(doc *Document) *Scene {
	s := &Scene{
		doc:    doc,
		byName: make(map[string]*object, len(doc.Objects)),
	}
	for _, def := range doc.Objects {
		o := newObject(def)
		s.objects = append(s.objects, o)
		s.byName[def.Name] = o
	}
	s.evaluate(doc.FrameStart)
	return s
}

// Open loads and validates a scene document from disk.
func Open(path string) (*Scene, error) {
	doc, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewScene(doc), nil
}

func newObject(def ObjectDef) *object {
	o := &object{
		def:          def,
		hide:         def.HideRender,
		position:     track[mgl64.Vec3]{lerp: lerpVec3},
		rotation:     track[mgl64.Quat]{lerp: slerp},
		energy:       track[float64]{lerp: lerpFloat},
		color:        track[mgl64.Vec3]{lerp: lerpVec3},
		lens:         track[float64]{lerp: lerpFloat},
		basePosition: vec3Of(def.Position, mgl64.Vec3{}),
		baseRotation: quatOf(def.Rotation),
		baseScale:    vec3Of(def.Scale, mgl64.Vec3{1, 1, 1}),
	}
	for _, k := range def.Keys {
		if k.Position != nil {
			o.position.add(k.Frame, vec3Of(k.Position, o.basePosition))
		}
		if k.Rotation != nil {
			o.rotation.add(k.Frame, quatOf(k.Rotation))
		}
		if k.Energy != nil {
			o.energy.add(k.Frame, *k.Energy)
		}
		if k.Color != nil {
			o.color.add(k.Frame, vec3Of(k.Color, mgl64.Vec3{1, 1, 1}))
		}
		if k.Lens != nil {
			o.lens.add(k.Frame, *k.Lens)
		}
	}
	return o
}

func (o *object) evaluate(frame int) {
	o.world = scenecsv.Transform{
		Position: o.position.sample(frame, o.basePosition),
		Rotation: o.rotation.sample(frame, o.baseRotation),
		Scale:    o.baseScale,
	}
	if l := o.def.Light; l != nil {
		o.intensity = o.energy.sample(frame, l.Energy)
		o.rgb = o.color.sample(frame, vec3Of(l.Color, mgl64.Vec3{1, 1, 1}))
	}
	if o.def.Lens != nil || len(o.lens.keys) > 0 {
		var base float64
		if o.def.Lens != nil {
			base = *o.def.Lens
		}
		o.focal = o.lens.sample(frame, base)
	}
}

func (s *Scene) evaluate(frame int) {
	s.frame = frame
	for _, o := range s.objects {
		o.evaluate(frame)
	}
}

func (s *Scene) Frame() int { return s.frame }

func (s *Scene) FrameRange() (int, int) {
	return s.doc.FrameStart, s.doc.FrameEnd
}

func (s *Scene) SetFrame(frame int) error {
	if frame < s.doc.FrameStart || frame > s.doc.FrameEnd {
		return fmt.Errorf("%w: %d not in %d..%d", ErrFrameRange, frame, s.doc.FrameStart, s.doc.FrameEnd)
	}
	s.evaluate(frame)
	return nil
}

func (s *Scene) ActiveCamera() *scenecsv.Camera {
	o, ok := s.byName[s.doc.Camera]
	if !ok || o.def.Type != TypeCamera {
		return nil
	}
	cam := &scenecsv.Camera{Name: o.def.Name, World: o.world}
	if o.def.Lens != nil || len(o.lens.keys) > 0 {
		cam.Lens = &scenecsv.Lens{FocalLength: o.focal}
	}
	return cam
}

func (s *Scene) Lights() []scenecsv.LightSource {
	var lights []scenecsv.LightSource
	for _, o := range s.objects {
		if o.def.Type != TypeLight {
			continue
		}
		lights = append(lights, scenecsv.LightSource{
			Name:      o.def.Name,
			Visible:   !o.hide,
			Intensity: o.intensity,
			Color:     o.rgb,
			World:     o.world,
			Params:    lightParams(o.def.Light),
		})
	}
	return lights
}

func lightParams(l *LightDef) scenecsv.LightParams {
	switch l.Type {
	case "POINT":
		return scenecsv.PointParams{}
	case "SPOT":
		return scenecsv.SpotParams{ConeAngle: mgl64.DegToRad(l.SpotSizeDeg), Blend: l.SpotBlend}
	case "AREA":
		return scenecsv.AreaParams{Shape: scenecsv.AreaShape(l.Shape), Size: l.Size, SizeY: l.SizeY}
	default:
		return scenecsv.OtherParams{HostType: l.Type}
	}
}

func (s *Scene) RenderSettings() scenecsv.RenderSettings {
	return scenecsv.RenderSettings{
		Engine:        s.doc.Render.Engine,
		ViewTransform: s.doc.Render.ViewTransform,
		Look:          s.doc.Render.Look,
	}
}

func (s *Scene) SetRenderVisible(name string, visible bool) bool {
	o, ok := s.byName[name]
	if !ok {
		return false
	}
	o.hide = !visible
	return true
}

// RenderVisible reports whether the named object renders; false if it does not exist.
func (s *Scene) RenderVisible(name string) bool {
	o, ok := s.byName[name]
	return ok && !o.hide
}
