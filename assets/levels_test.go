package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledArena(t *testing.T) {
	l, err := LoadLevel("arena.tmx", 50)
	require.NoError(t, err)

	assert.Equal(t, "arena", l.Name)
	assert.Equal(t, 20, l.Rows())
	assert.Equal(t, 38, l.Columns())
	assert.Equal(t, 100.0, l.Player.X)
	assert.Len(t, l.Enemies, 4)
}

func TestLoadLevelDefault(t *testing.T) {
	l, err := LoadLevel("", 50)
	require.NoError(t, err)
	assert.Len(t, l.Enemies, 5)
}

func TestLoadLevelUnknown(t *testing.T) {
	_, err := LoadLevel("missing.tmx", 50)
	assert.Error(t, err)
}
