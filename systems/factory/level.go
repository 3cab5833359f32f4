package factory

import (
	"github.com/automoto/footfall/archetypes"
	"github.com/automoto/footfall/components"
	"github.com/automoto/footfall/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity, its collision space and one wall per solid tile
func CreateLevel(ecs *ecs.ECS, name string, terrain *leveldata.TerrainMap) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Terrain: terrain,
		Name:    name,
	})

	CreateSpace(ecs,
		terrain.Width*terrain.TileWidth, terrain.Height*terrain.TileHeight,
		terrain.TileWidth, terrain.TileHeight,
	)

	tw, th := float64(terrain.TileWidth), float64(terrain.TileHeight)
	for _, t := range terrain.SolidTiles() {
		CreateWall(ecs, float64(t[0])*tw, float64(t[1])*th, tw, th)
	}

	return level
}
