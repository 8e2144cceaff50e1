package scenecsv

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// fakeScene is an in-memory SceneProvider.
type fakeScene struct {
	start, end int
	frame      int
	camera     *Camera
	lights     []LightSource
	render     RenderSettings
	failAt     int
	frameCalls []int
}

func newFakeScene(start, end int) *fakeScene {
	cam := &Camera{Name: "Camera", World: NewTransform(), Lens: &Lens{FocalLength: 50}}
	return &fakeScene{
		start:  start,
		end:    end,
		frame:  start,
		camera: cam,
		render: RenderSettings{Engine: "CYCLES", ViewTransform: "AgX", Look: "None"},
		failAt: -1,
	}
}

func (s *fakeScene) addLight(name string, intensity float64, params LightParams) {
	s.lights = append(s.lights, LightSource{
		Name:      name,
		Visible:   true,
		Intensity: intensity,
		Color:     mgl64.Vec3{1, 1, 1},
		World:     NewTransform(),
		Params:    params,
	})
}

func (s *fakeScene) FrameRange() (int, int) { return s.start, s.end }

func (s *fakeScene) SetFrame(frame int) error {
	if frame == s.failAt {
		return errors.New("frame evaluation failed")
	}
	s.frame = frame
	s.frameCalls = append(s.frameCalls, frame)
	return nil
}

func (s *fakeScene) ActiveCamera() *Camera { return s.camera }

func (s *fakeScene) Lights() []LightSource {
	out := make([]LightSource, len(s.lights))
	copy(out, s.lights)
	return out
}

func (s *fakeScene) RenderSettings() RenderSettings { return s.render }

func (s *fakeScene) SetRenderVisible(name string, visible bool) bool {
	for i := range s.lights {
		if s.lights[i].Name == name {
			s.lights[i].Visible = visible
			return true
		}
	}
	return false
}

func (s *fakeScene) visible() []string {
	var names []string
	for _, l := range s.lights {
		if l.Visible {
			names = append(names, l.Name)
		}
	}
	return names
}

// memSink records everything written to it.
type memSink struct {
	header  []string
	rows    [][]string
	closed  int
	failRow int
}

func newMemSink() *memSink { return &memSink{failRow: -1} }

func (m *memSink) WriteHeader(h []string) error {
	m.header = h
	return nil
}

func (m *memSink) WriteRow(r []string) error {
	if len(m.rows) == m.failRow {
		return errors.New("disk full")
	}
	m.rows = append(m.rows, r)
	return nil
}

func (m *memSink) Close() error {
	m.closed++
	return nil
}

func (m *memSink) column(name string) []string {
	idx := -1
	for i, h := range m.header {
		if h == name {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	out := make([]string, len(m.rows))
	for i, r := range m.rows {
		out[i] = r[idx]
	}
	return out
}
