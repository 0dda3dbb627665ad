package levels

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from Tiled maps.
const (
	BlocksLayer  = "blocks"
	PlayerGroup  = "player"
	EnemiesGroup = "enemies"
)

// LoadTMX parses a Tiled map into a Level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS. Any non-empty tile on the blocks layer is solid; the player
// group must hold exactly one object, the enemies group holds the spawn batch in
// document order.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	level := &Level{
		Name:     strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		TileSize: float64(levelMap.TileWidth),
		Grid:     make([][]int, levelMap.Height),
	}
	for y := range level.Grid {
		level.Grid[y] = make([]int, levelMap.Width)
	}

	var blocks *tiled.Layer
	for _, layer := range levelMap.Layers {
		if layer.Name == BlocksLayer {
			blocks = layer
			break
		}
	}
	if blocks == nil {
		return nil, fmt.Errorf("load TMX %s: no %q tile layer", tmxPath, BlocksLayer)
	}
	for y := 0; y < levelMap.Height; y++ {
		for x := 0; x < levelMap.Width; x++ {
			tile := blocks.Tiles[y*levelMap.Width+x]
			if tile == nil || tile.IsNil() {
				continue
			}
			level.Grid[y][x] = Solid
		}
	}

	playerFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlayerGroup:
			if len(og.Objects) != 1 {
				return nil, fmt.Errorf("load TMX %s: %q group needs exactly one object, got %d", tmxPath, PlayerGroup, len(og.Objects))
			}
			level.Player = spawnAt(og.Objects[0])
			playerFound = true
		case EnemiesGroup:
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, spawnAt(o))
			}
		}
	}
	if !playerFound {
		return nil, fmt.Errorf("load TMX %s: no %q object group", tmxPath, PlayerGroup)
	}

	if err := level.Validate(); err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return level, nil
}

// spawnAt reads an object's position in whole pixels. Bodies must sit on the
// integer lattice for the space's cell lookups to see every overlap.
func spawnAt(o *tiled.Object) SpawnPoint {
	return SpawnPoint{X: math.Trunc(o.X), Y: math.Trunc(o.Y)}
}
