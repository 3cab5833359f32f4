// Package leveldata parses Tiled maps into the per-tile data the walker and the footstep engine
// need. It has no dependencies on ebitengine or donburi, pure data only.
package leveldata

// Tiled tileset tile properties read by the loader
const (
	PropTerrain = "terrain" // int, terrain code under foot
	PropSolid   = "solid"   // bool, blocks movement
)

// TerrainMap holds the terrain code and solidity of every tile
type TerrainMap struct {
	Width      int
	Height     int
	TileWidth  int
	TileHeight int

	codes []int
	solid []bool
}

// NewTerrainMap returns an empty map of w by h tiles
func NewTerrainMap(w, h, tileW, tileH int) *TerrainMap {
	return &TerrainMap{
		Width:      w,
		Height:     h,
		TileWidth:  tileW,
		TileHeight: tileH,
		codes:      make([]int, w*h),
		solid:      make([]bool, w*h),
	}
}

func (m *TerrainMap) index(x, y int) (int, bool) {
	if m == nil || x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0, false
	}
	return y*m.Width + x, true
}

// TerrainAt returns the terrain code of tile (x, y), 0 outside the map
func (m *TerrainMap) TerrainAt(x, y int) int {
	i, ok := m.index(x, y)
	if !ok {
		return 0
	}
	return m.codes[i]
}

// SolidAt reports whether tile (x, y) blocks movement. Outside the map counts as solid.
func (m *TerrainMap) SolidAt(x, y int) bool {
	i, ok := m.index(x, y)
	if !ok {
		return true
	}
	return m.solid[i]
}

// SetTerrain paints a terrain code
func (m *TerrainMap) SetTerrain(x, y, code int) {
	if i, ok := m.index(x, y); ok {
		m.codes[i] = code
	}
}

// SetSolid marks a tile as blocking
func (m *TerrainMap) SetSolid(x, y int, solid bool) {
	if i, ok := m.index(x, y); ok {
		m.solid[i] = solid
	}
}

// SolidTiles returns the coordinates of every blocking tile
func (m *TerrainMap) SolidTiles() [][2]int {
	var out [][2]int
	for i, s := range m.solid {
		if s {
			out = append(out, [2]int{i % m.Width, i / m.Width})
		}
	}
	return out
}
