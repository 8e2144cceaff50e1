package scenecsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	h := Header(3)
	assert.Len(t, h, len(baseColumns)+3*20)
	assert.Equal(t, "image_relpath", h[0])
	assert.Equal(t, "num_active_lights", h[len(baseColumns)-1])
	assert.Equal(t, "light0_name", h[len(baseColumns)])
	assert.Equal(t, "light2_area_size_y", h[len(h)-1])

	seen := map[string]bool{}
	for _, c := range h {
		assert.False(t, seen[c], "duplicate column %s", c)
		seen[c] = true
	}
	assert.Len(t, Header(0), len(baseColumns))
	for _, c := range Header(0) {
		assert.False(t, strings.HasPrefix(c, "light0_"))
	}
}
