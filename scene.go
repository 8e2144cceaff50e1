package scenecsv

// SceneProvider is the exporter's only view of the host scene.
// All calls are synchronous; SetFrame must have re-evaluated every
// time-dependent value (camera, light transforms and intensities) before it returns.
type SceneProvider interface {
	// FrameRange returns the inclusive frame range to export.
	FrameRange() (start, end int)
	SetFrame(frame int) error

	// ActiveCamera returns nil when the scene has no camera.
	ActiveCamera() *Camera
	// Lights returns every light object, visible or not, as of the current frame.
	Lights() []LightSource
	RenderSettings() RenderSettings

	// SetRenderVisible toggles an object's render visibility.
	// It reports false if no object has that name.
	SetRenderVisible(name string, visible bool) bool
}
