package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := Load()
	assert.Equal(t, "", p.String(KeyLastImage))
	assert.Equal(t, DefaultMarkerRadius, p.MarkerRadius())
	assert.Equal(t, DefaultLineThickness, p.LineThickness())
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := Load()
	p.SetString(KeyLastImage, "/tmp/shot.png")
	p.SetFloat(KeyMarkerRadius, 4.5)
	require.NoError(t, p.Save())

	q := Load()
	assert.Equal(t, "/tmp/shot.png", q.String(KeyLastImage))
	assert.Equal(t, 4.5, q.MarkerRadius())
	assert.Equal(t, DefaultLineThickness, q.LineThickness())
}

func TestStringWrongTypeFallsBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p := Load()
	p.SetFloat(KeyLastImage, 1.0)
	assert.Equal(t, "", p.String(KeyLastImage))
}
