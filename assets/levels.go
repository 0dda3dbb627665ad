package assets

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/blockdude/levels"
)

//go:embed all:levels
var levelFS embed.FS

// Levels exposes the bundled Tiled maps, rooted at the levels directory.
func Levels() fs.FS {
	sub, err := fs.Sub(levelFS, "levels")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadLevel resolves name to a level. An empty name is the built-in default
// map. A path that exists on disk is read from there; anything else is looked
// up among the bundled maps.
func LoadLevel(name string, tileSize float64) (*levels.Level, error) {
	if name == "" {
		return levels.Default(tileSize), nil
	}
	if _, err := os.Stat(name); err == nil {
		return levels.LoadTMX(os.DirFS(filepath.Dir(name)), filepath.Base(name))
	}
	return levels.LoadTMX(Levels(), name)
}
