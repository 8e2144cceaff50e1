package scenecsv

import (
	"fmt"
	"strings"
)

// RenderSettings are the host's render engine and color management identifiers.
type RenderSettings struct {
	Engine        string
	ViewTransform string
	Look          string
}

const (
	EngineCycles  = "Cycles"
	EngineEevee   = "Eevee"
	EngineUnknown = "UnknownEngine"

	ViewAgX     = "AGX"
	ViewFilmic  = "Filmic"
	ViewUnknown = "UnknownView"
)

// ClassifyEngine maps an engine identifier such as "BLENDER_EEVEE_NEXT" to its tag.
func ClassifyEngine(engine string) string {
	e := strings.ToLower(engine)
	switch {
	case strings.Contains(e, "cycles"):
		return EngineCycles
	case strings.Contains(e, "eevee"):
		return EngineEevee
	default:
		return EngineUnknown
	}
}

func ClassifyViewTransform(view string) string {
	v := strings.ToLower(view)
	switch {
	case strings.Contains(v, "agx"):
		return ViewAgX
	case strings.Contains(v, "filmic"):
		return ViewFilmic
	default:
		return ViewUnknown
	}
}

// BatchFolder names the dataset batch directory for the given settings.
func BatchFolder(rs RenderSettings) string {
	return fmt.Sprintf("Batch 1 - %s %s", ClassifyEngine(rs.Engine), ClassifyViewTransform(rs.ViewTransform))
}
