package scenecsv

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyFrameRange = errors.New("frame range is empty")

// FrameIndices derives the 1-based camera index and 0-based config id of a frame.
func FrameIndices(frame, start, camerasPerConfig int) (cameraIndex, configID int) {
	idx := frame - start
	return idx%camerasPerConfig + 1, idx / camerasPerConfig
}

// FrameSnapshot is everything read from the scene for one (setup, frame).
// It is captured once and shared by the rows of every shape.
type FrameSnapshot struct {
	Setup       LightingSetup
	Frame       int
	ConfigID    int
	CameraIndex int
	Render      RenderSettings
	BatchFolder string
	Camera      CameraState
	HasCamera   bool
	Lights      LightRanking

	fields *fieldSet
}

// CaptureFrame reads the scene at its current frame.
func CaptureFrame(scene SceneProvider, setup LightingSetup, frame, start, camerasPerConfig, maxLights int) *FrameSnapshot {
	camIdx, cfgID := FrameIndices(frame, start, camerasPerConfig)
	rs := scene.RenderSettings()
	cam := scene.ActiveCamera()
	state, hasCam := ExtractCamera(cam)
	return &FrameSnapshot{
		Setup:       setup,
		Frame:       frame,
		ConfigID:    cfgID,
		CameraIndex: camIdx,
		Render:      rs,
		BatchFolder: BatchFolder(rs),
		Camera:      state,
		HasCamera:   hasCam,
		Lights:      SelectActiveLights(scene.Lights(), cam, maxLights),
	}
}

func (s *FrameSnapshot) cells() *fieldSet {
	if s.fields != nil {
		return s.fields
	}
	fs := newFieldSet()
	fs.str("light_folder", s.Setup.Label)
	fs.str("batch_folder", s.BatchFolder)
	fs.integer("frame", s.Frame)
	fs.integer("config_id", s.ConfigID)
	fs.integer("camera_png", s.CameraIndex)
	fs.str("render_engine", s.Render.Engine)
	fs.str("view_transform", s.Render.ViewTransform)
	fs.str("look", s.Render.Look)

	if s.HasCamera {
		c := s.Camera
		fs.str("camera_name", c.Name)
		fs.vec3("cam_pos", c.Position)
		fs.vec3("cam_forward", c.Forward)
		fs.vec3("cam_up", c.Up)
		fs.vec3("cam_right", c.Right)
		if c.HasLens {
			fs.float("focal_length_mm", c.FocalLength)
		} else {
			fs.empty("focal_length_mm")
		}
	}

	fs.integer("num_active_lights", s.Lights.Count)
	for i, slot := range s.Lights.Slots {
		slotCells(fs, lightPrefix(i), slot)
	}
	s.fields = fs
	return fs
}

func slotCells(fs *fieldSet, p string, slot LightSlot) {
	if !slot.Present {
		for _, c := range lightSlotColumns {
			fs.empty(p + c)
		}
		return
	}
	fs.str(p+"name", slot.Name)
	fs.str(p+"type", slot.Type)
	fs.float(p+"energy", slot.Energy)
	fs.float(p+"color_r", slot.Color[0])
	fs.float(p+"color_g", slot.Color[1])
	fs.float(p+"color_b", slot.Color[2])
	fs.vec3(p+"pos", slot.Position)
	fs.vec3(p+"dir", slot.Direction)
	fs.vec3(p+"dir_cam", slot.CameraDirection)

	if slot.Spot != nil {
		fs.float(p+"spot_cone_deg", slot.Spot.ConeDegrees)
		fs.float(p+"spot_blend", slot.Spot.Blend)
	} else {
		fs.empty(p + "spot_cone_deg")
		fs.empty(p + "spot_blend")
	}

	if slot.Area != nil {
		fs.str(p+"area_shape", slot.Area.Shape)
		fs.float(p+"area_size_x", slot.Area.SizeX)
		fs.float(p+"area_size_y", slot.Area.SizeY)
	} else {
		fs.empty(p + "area_shape")
		fs.empty(p + "area_size_x")
		fs.empty(p + "area_size_y")
	}
}

// OutputRow is one (setup, frame, shape) record.
type OutputRow struct {
	Frame          *FrameSnapshot
	ShapeName      string
	MaterialFolder string
	ImageRelPath   string
	ImageExists    Existence
}

// NewOutputRow derives the image path for shape and checks it with checker.
func NewOutputRow(snap *FrameSnapshot, shape, material string, checker ImageChecker) OutputRow {
	rel := ImageRelPath(shape, material, snap.Setup.Label, snap.BatchFolder, snap.CameraIndex)
	exists := ExistenceUnknown
	if checker != nil {
		exists = checker.Check(rel)
	}
	return OutputRow{
		Frame:          snap,
		ShapeName:      shape,
		MaterialFolder: material,
		ImageRelPath:   rel,
		ImageExists:    exists,
	}
}

// Record renders the row in header order and reports how many cells degraded to empty.
func (r OutputRow) Record(header []string) ([]string, int) {
	fs := newFieldSet()
	fs.merge(r.Frame.cells())
	fs.str("shape_name", r.ShapeName)
	fs.str("material_folder", r.MaterialFolder)
	fs.str("image_relpath", r.ImageRelPath)
	fs.put("image_exists", r.ImageExists.Field())
	return fs.record(header), fs.degraded
}

// Stats summarises a run.
type Stats struct {
	RunID          string
	Setups         int
	Frames         int
	Rows           int
	DegradedFields int
	MissingLamps   int
}

type Option func(*Exporter)

func WithLogger(l Logger) Option { return func(e *Exporter) { e.log = l } }

// WithChecker replaces the dataset checker built from the config.
func WithChecker(c ImageChecker) Option { return func(e *Exporter) { e.checker = c } }

func WithRunID(id string) Option { return func(e *Exporter) { e.runID = id } }

// Exporter walks lighting setups x frames x shapes and writes one row per triple.
type Exporter struct {
	cfg     Config
	setups  []LightingSetup
	known   []string
	header  []string
	log     Logger
	checker ImageChecker
	runID   string
}

func NewExporter(cfg Config, opts ...Option) (*Exporter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	setups, err := cfg.LightingSetups()
	if err != nil {
		return nil, err
	}
	e := &Exporter{
		cfg:     cfg,
		setups:  setups,
		known:   cfg.KnownLamps(),
		header:  Header(cfg.MaxActiveLights),
		log:     NewNopLogger(),
		checker: NewDatasetChecker(cfg.DatasetRoot, cfg.VerifyImages),
	}
	for _, o := range opts {
		o(e)
	}
	if e.runID == "" {
		e.runID = uuid.NewString()
	}
	return e, nil
}

func (e *Exporter) Header() []string { return e.header }
func (e *Exporter) RunID() string    { return e.runID }

// Run exports every row to sink and closes it, whatever the outcome.
// Rows already written stay written if a later step fails.
func (e *Exporter) Run(scene SceneProvider, sink RowSink) (stats Stats, err error) {
	defer func() {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close sink: %w", cerr)
		}
	}()

	stats.RunID = e.runID
	start, end := scene.FrameRange()
	if end < start {
		return stats, fmt.Errorf("%w: %d..%d", ErrEmptyFrameRange, start, end)
	}
	e.log.Infof("run %s: %d setups, frames %d..%d, %d shapes", e.runID, len(e.setups), start, end, len(e.cfg.Shapes))
	e.checkLampTypes(scene)

	if err := sink.WriteHeader(e.header); err != nil {
		return stats, fmt.Errorf("write header: %w", err)
	}

	for _, setup := range e.setups {
		missing := ApplySetup(scene, setup, e.known)
		if len(missing) > 0 {
			e.log.Debugf("setup %q: lamps not in scene: %s", setup.Label, strings.Join(missing, ", "))
			stats.MissingLamps += len(missing)
		}
		e.log.Infof("setup %q (%s)", setup.Label, setup.Kind)

		for frame := start; frame <= end; frame++ {
			if err := scene.SetFrame(frame); err != nil {
				return stats, fmt.Errorf("setup %q frame %d: %w", setup.Label, frame, err)
			}
			snap := CaptureFrame(scene, setup, frame, start, e.cfg.CamerasPerConfig, e.cfg.MaxActiveLights)
			e.log.Debugf("frame %d: config %d camera %d, %d active lights", frame, snap.ConfigID, snap.CameraIndex, snap.Lights.Count)

			for _, shape := range e.cfg.Shapes {
				row := NewOutputRow(snap, shape, e.cfg.MaterialFolder, e.checker)
				record, degraded := row.Record(e.header)
				if err := sink.WriteRow(record); err != nil {
					return stats, fmt.Errorf("setup %q frame %d shape %q: %w", setup.Label, frame, shape, err)
				}
				stats.Rows++
				stats.DegradedFields += degraded
			}
			stats.Frames++
		}
		stats.Setups++
	}

	e.log.Infof("run %s: wrote %d rows (%d degraded fields)", e.runID, stats.Rows, stats.DegradedFields)
	return stats, nil
}

// checkLampTypes warns when a single-lamp setup enables a lamp of another kind
// than its label names, e.g. setup "Spot Light" pointing at a point lamp.
func (e *Exporter) checkLampTypes(scene SceneProvider) {
	byName := make(map[string]LightSource)
	for _, l := range scene.Lights() {
		byName[l.Name] = l
	}
	for _, label := range slices.Sorted(maps.Keys(e.cfg.SingleLamps)) {
		name := e.cfg.SingleLamps[label]
		l, ok := byName[name]
		if !ok {
			continue
		}
		want := SetupLightKind(label)
		if want != LightKindOther && want != l.Kind() {
			e.log.Warnf("setup %q expects lamp type %s but %q is type %s", label, want, name, l.Kind())
		}
	}
}
