package scenecsv

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type Existence int

const (
	// ExistenceUnknown means no check was made (blank dataset root).
	ExistenceUnknown Existence = iota
	ExistencePresent
	ExistenceMissing
)

func (e Existence) Field() Field {
	switch e {
	case ExistencePresent:
		return CoerceBool(true)
	case ExistenceMissing:
		return CoerceBool(false)
	default:
		return EmptyField()
	}
}

// ImageChecker reports whether a dataset-relative image exists.
type ImageChecker interface {
	Check(relPath string) Existence
}

// DatasetChecker stats images under a dataset root. With Verify set, a file
// only counts as present if its header decodes as an image.
type DatasetChecker struct {
	Root   string
	Verify bool
}

func NewDatasetChecker(root string, verify bool) *DatasetChecker {
	return &DatasetChecker{Root: root, Verify: verify}
}

func (c *DatasetChecker) Check(relPath string) Existence {
	if c == nil || strings.TrimSpace(c.Root) == "" {
		return ExistenceUnknown
	}
	full := filepath.Join(c.Root, filepath.FromSlash(relPath))
	info, err := os.Stat(full)
	// A directory where the image should be is not a rendered image.
	if err != nil || info.IsDir() {
		return ExistenceMissing
	}
	if c.Verify && !decodable(full) {
		return ExistenceMissing
	}
	return ExistencePresent
}

func decodable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	_, _, err = image.DecodeConfig(f)
	return err == nil
}

// ImageRelPath builds <shape>/<material>/<setup>/<batch>/<camera>.png with forward slashes.
func ImageRelPath(shape, material, setup, batch string, cameraIndex int) string {
	return strings.Join([]string{shape, material, setup, batch, strconv.Itoa(cameraIndex) + ".png"}, "/")
}

// ResolveOutputPath places a relative output path next to the scene document.
func ResolveOutputPath(scenePath, out string) string {
	if out == "" || filepath.IsAbs(out) || scenePath == "" {
		return out
	}
	return filepath.Join(filepath.Dir(scenePath), out)
}

