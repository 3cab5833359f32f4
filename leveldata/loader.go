package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadTerrain parses a TMX file and returns the terrain map. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
//
// Every tile layer contributes; a later (higher) layer's non-zero terrain code replaces the one
// beneath it, and any solid tile makes the cell solid.
func LoadTerrain(fsys fs.FS, tmxPath string) (*TerrainMap, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	m := NewTerrainMap(levelMap.Width, levelMap.Height, levelMap.TileWidth, levelMap.TileHeight)

	for _, layer := range levelMap.Layers {
		if len(layer.Tiles) < levelMap.Width*levelMap.Height {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile == nil || tile.IsNil() || tile.Tileset == nil {
					continue
				}

				tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
				if err != nil {
					continue
				}

				if code := tilesetTile.Properties.GetInt(PropTerrain); code != 0 {
					m.SetTerrain(x, y, code)
				}
				if tilesetTile.Properties.GetBool(PropSolid) {
					m.SetSolid(x, y, true)
				}
			}
		}
	}

	return m, nil
}
