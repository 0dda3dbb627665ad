package components

import (
	"github.com/automoto/blockdude/levels"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *levels.Level
}

var Level = donburi.NewComponentType[LevelData]()
