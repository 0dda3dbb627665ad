package levels

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevel(t *testing.T) {
	l := Default(50)
	require.NoError(t, l.Validate())

	assert.Equal(t, 20, l.Rows())
	assert.Equal(t, 40, l.Columns(), "last row of the built-in map is the widest")
	assert.Equal(t, SpawnPoint{X: 50, Y: 70}, l.Player)
	assert.Len(t, l.Enemies, 5)
	assert.Equal(t, SpawnPoint{X: 630, Y: 880}, l.Enemies[0])
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default(50)
	a.Grid[1][1] = Solid
	a.Enemies[0].X = -1

	b := Default(50)
	assert.Equal(t, Empty, b.Grid[1][1])
	assert.Equal(t, 630.0, b.Enemies[0].X)
}

func TestDefaultScalesSpawns(t *testing.T) {
	l := Default(25)
	assert.Equal(t, 25.0, l.TileSize)
	assert.Equal(t, SpawnPoint{X: 25, Y: 35}, l.Player)
	assert.Equal(t, SpawnPoint{X: 315, Y: 440}, l.Enemies[0])
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Level{TileSize: 50}).Validate())
	assert.Error(t, (&Level{TileSize: 0, Grid: [][]int{{1}}}).Validate())
	assert.Error(t, (&Level{TileSize: 50, Grid: [][]int{{2}}}).Validate())
	assert.NoError(t, (&Level{TileSize: 50, Grid: [][]int{{0, 1}, {1}}}).Validate())
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="50" tileheight="50" infinite="0" nextlayerid="4" nextobjectid="4">
 <tileset firstgid="1" name="blocks" tilewidth="50" tileheight="50" tilecount="1" columns="1">
  <image source="block.png" width="50" height="50"/>
 </tileset>
 <layer id="1" name="blocks" width="4" height="3">
  <data encoding="csv">
1,0,0,1,
1,0,0,1,
1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="player">
  <object id="1" x="50" y="30" width="50" height="70"/>
 </objectgroup>
 <objectgroup id="3" name="enemies">
  <object id="2" x="100" y="30" width="70" height="70"/>
  <object id="3" x="60" y="30" width="70" height="70"/>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/small.tmx": {Data: []byte(testTMX)}}

	l, err := LoadTMX(fsys, "levels/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", l.Name)
	assert.Equal(t, 50.0, l.TileSize)
	assert.Equal(t, [][]int{
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	}, l.Grid)
	assert.Equal(t, SpawnPoint{X: 50, Y: 30}, l.Player)
	assert.Equal(t, []SpawnPoint{{X: 100, Y: 30}, {X: 60, Y: 30}}, l.Enemies)
}

func TestLoadTMXTruncatesSpawns(t *testing.T) {
	src := strings.NewReplacer(
		`x="50" y="30"`, `x="50.6" y="30.25"`,
		`x="100" y="30"`, `x="100.9" y="29.99"`,
	).Replace(testTMX)
	fsys := fstest.MapFS{"small.tmx": {Data: []byte(src)}}

	l, err := LoadTMX(fsys, "small.tmx")
	require.NoError(t, err)

	assert.Equal(t, SpawnPoint{X: 50, Y: 30}, l.Player)
	assert.Equal(t, []SpawnPoint{{X: 100, Y: 29}, {X: 60, Y: 30}}, l.Enemies)
}

func TestLoadTMXMissingFile(t *testing.T) {
	_, err := LoadTMX(fstest.MapFS{}, "levels/none.tmx")
	assert.Error(t, err)
}
