package simulation

import (
	"testing"

	cfg "github.com/automoto/blockdude/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript("right*3, up ,right+down*2,none")
	require.NoError(t, err)
	require.Len(t, s, 7)

	assert.Equal(t, frame(cfg.ActionMoveRight), s[0])
	assert.Equal(t, frame(cfg.ActionMoveRight), s[2])
	assert.Equal(t, frame(cfg.ActionJump), s[3])
	assert.Equal(t, frame(cfg.ActionMoveRight, cfg.ActionShoot), s[4])
	assert.Equal(t, frame(cfg.ActionMoveRight, cfg.ActionShoot), s[5])
	assert.Equal(t, Frame{}, s[6])
}

func TestParseScriptErrors(t *testing.T) {
	for _, src := range []string{"jump", "right*0", "right*x", "left+fly"} {
		_, err := ParseScript(src)
		assert.Error(t, err, src)
	}
}

func TestParseScriptEmpty(t *testing.T) {
	s, err := ParseScript(" , ")
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestScriptAtPastEnd(t *testing.T) {
	s, err := ParseScript("left")
	require.NoError(t, err)
	assert.Equal(t, frame(cfg.ActionMoveLeft), s.At(0))
	assert.Equal(t, Frame{}, s.At(1))
	assert.Equal(t, Frame{}, s.At(-1))
}
