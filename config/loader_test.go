package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchPackageDefaults(t *testing.T) {
	s, err := Parse(defaultSettingsYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestParseOverridesOnlyGivenFields(t *testing.T) {
	s, err := Parse([]byte("physics:\n  gravity_step: 5\nlog_level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, 5.0, s.Physics.GravityStep)
	assert.Equal(t, 50.0, s.Physics.TileSize)
	assert.Equal(t, 60, s.Window.TPS)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestParseRejectsInvalidScalars(t *testing.T) {
	_, err := Parse([]byte("physics:\n  gravity_step: 0\n  tile_size: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gravity_step")
	assert.Contains(t, err.Error(), "tile_size")
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  tps: 30\nlevel: maps/one.tmx\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, s.Window.TPS)
	assert.Equal(t, "maps/one.tmx", s.Level)
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	t.Cleanup(Reset)

	s := DefaultSettings()
	s.Physics.GravityStep = 5
	s.Physics.TileSize = 25
	s.Window.TPS = 30
	s.Debug.DrawColliders = true
	s.Apply()

	assert.Equal(t, 5.0, Physics.GravityStep)
	assert.Equal(t, 25.0, Physics.TileSize)
	assert.Equal(t, 30, C.TPS)
	assert.True(t, Debug.DrawColliders)
}

func TestParseAction(t *testing.T) {
	id, ok := ParseAction("down")
	require.True(t, ok)
	assert.Equal(t, ActionShoot, id)
	assert.Equal(t, "down", id.String())

	_, ok = ParseAction("fly")
	assert.False(t, ok)
}
