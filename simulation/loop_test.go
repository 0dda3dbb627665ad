package simulation

import (
	"context"
	"testing"

	"github.com/automoto/blockdude/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerRunsScript(t *testing.T) {
	e := newWorld(t, levels.Default(50))
	script, err := ParseScript("right*10,down,none*19")
	require.NoError(t, err)

	res, err := NewRunner(e, script, 0, 0).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 30, res.Frames)
	assert.Equal(t, 5, res.EnemiesLeft)
	assert.False(t, res.Finished)
	assert.False(t, res.Quit)
}

func TestRunnerFrameLimit(t *testing.T) {
	e := newWorld(t, levels.Default(50))

	res, err := NewRunner(e, nil, 0, 12).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, res.Frames)
}

func TestRunnerStopsOnQuit(t *testing.T) {
	e := newWorld(t, levels.Default(50))
	script, err := ParseScript("none*3,quit,none*10")
	require.NoError(t, err)

	res, err := NewRunner(e, script, 0, 0).Run(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Quit)
	assert.Equal(t, 4, res.Frames)
}

func TestRunnerPaced(t *testing.T) {
	e := newWorld(t, levels.Default(50))

	res, err := NewRunner(e, nil, 500, 5).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, res.Frames)
}

func TestRunnerContextCancelled(t *testing.T) {
	e := newWorld(t, levels.Default(50))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewRunner(e, nil, 0, 100).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Frames)
}

func TestRunnerStop(t *testing.T) {
	e := newWorld(t, levels.Default(50))
	r := NewRunner(e, nil, 0, 100)
	r.Stop()

	res, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Frames)
}
