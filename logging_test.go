package scenecsv

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLogger(&out, &errOut, "scenecsv", false)

	l.Debugf("hidden %d", 1)
	l.Infof("rows %d", 12)
	l.Warnf("lamp %q", "Key")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[scenecsv] INFO: rows 12")
	assert.Contains(t, errOut.String(), `[scenecsv] WARN: lamp "Key"`)

	child := l.Named("export")
	l.SetDebug(true)
	assert.True(t, child.DebugEnabled())
	child.Debugf("frame %d", 3)
	assert.Contains(t, out.String(), "[scenecsv/export] DEBUG: frame 3")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.SetDebug(true)
	assert.False(t, l.DebugEnabled())
	l.Errorf("ignored")
}
