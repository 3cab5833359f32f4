package components

import (
	"github.com/automoto/footfall/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Terrain *leveldata.TerrainMap
	Name    string
}

var Level = donburi.NewComponentType[LevelData]()
