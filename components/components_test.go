package components

import (
	"testing"

	cfg "github.com/automoto/blockdude/config"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestBodyEdges(t *testing.T) {
	b := BodyData{Object: resolv.NewObject(10, 20, 50, 70)}

	assert.Equal(t, 10.0, b.Left())
	assert.Equal(t, 20.0, b.Top())
	assert.Equal(t, 60.0, b.Right())
	assert.Equal(t, 90.0, b.Bottom())
	assert.Equal(t, 35.0, b.CenterX())
	assert.Equal(t, 55.0, b.CenterY())

	b.MoveTo(0, 5)
	assert.Equal(t, 50.0, b.Right())
	assert.Equal(t, 75.0, b.Bottom())
}

func TestRosterKeepsInsertionOrder(t *testing.T) {
	w := donburi.NewWorld()
	a, b, c := w.Create(Enemy), w.Create(Enemy), w.Create(Enemy)

	var r RosterData
	r.AddEnemy(a)
	r.AddEnemy(b)
	r.AddEnemy(c)

	require.True(t, r.RemoveEnemy(b))
	assert.False(t, r.RemoveEnemy(b), "second removal is a no-op")
	assert.Equal(t, []donburi.Entity{a, c}, r.Enemies)
	assert.Contains(t, r.Enemies, c)

	old := r.ClearEnemies()
	assert.Equal(t, []donburi.Entity{a, c}, old)
	assert.Empty(t, r.Enemies)
}

func TestPlayerBullets(t *testing.T) {
	w := donburi.NewWorld()
	first, second := w.Create(Bullet), w.Create(Bullet)

	var p PlayerData
	p.AddBullet(first)
	p.AddBullet(second)
	assert.Contains(t, p.Bullets, first)

	assert.True(t, p.RemoveBullet(first))
	assert.NotContains(t, p.Bullets, first)
	assert.Equal(t, []donburi.Entity{second}, p.Bullets)
}

func TestFlashFadesBackIn(t *testing.T) {
	var f FlashData
	f.Advance(0.1)
	assert.Equal(t, float32(1), f.Alpha)
	assert.False(t, f.Active())

	f.Start(0.2, 1)
	assert.True(t, f.Active())
	assert.Equal(t, float32(0.2), f.Alpha)

	f.Advance(0.5)
	assert.Greater(t, f.Alpha, float32(0.2))
	assert.Less(t, f.Alpha, float32(1))

	f.Advance(1)
	assert.False(t, f.Active())
	assert.Equal(t, float32(1), f.Alpha)
}

func TestInputJustPressed(t *testing.T) {
	var in InputData
	var snap [cfg.ActionCount]bool
	snap[cfg.ActionJump] = true

	in.Push(snap)
	assert.True(t, in.Pressed(cfg.ActionJump))
	assert.True(t, in.JustPressed(cfg.ActionJump))
	assert.False(t, in.Pressed(cfg.ActionShoot))

	in.Push(snap)
	assert.True(t, in.Pressed(cfg.ActionJump))
	assert.False(t, in.JustPressed(cfg.ActionJump))
}

func TestGameStateRunning(t *testing.T) {
	g := GameStateData{}
	assert.True(t, g.Running())
	g.Finished = true
	assert.False(t, g.Running())
}
