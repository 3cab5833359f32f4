package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="32" tileheight="32" infinite="0" nextlayerid="3" nextobjectid="1">
 <tileset firstgid="1" name="ground" tilewidth="32" tileheight="32" tilecount="4" columns="2">
  <image source="ground.png" width="64" height="64"/>
  <tile id="0">
   <properties>
    <property name="terrain" type="int" value="1"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="terrain" type="int" value="2"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="solid" type="bool" value="true"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="ground" width="3" height="2">
  <data encoding="csv">
1,2,0,
1,3,2
</data>
 </layer>
 <layer id="2" name="overlay" width="3" height="2">
  <data encoding="csv">
0,0,0,
2,0,0
</data>
 </layer>
</map>
`

func TestLoadTerrain(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}

	m, err := LoadTerrain(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 3, m.Width)
	assert.Equal(t, 2, m.Height)
	assert.Equal(t, 32, m.TileWidth)

	tests := []struct {
		name    string
		x, y    int
		terrain int
		solid   bool
	}{
		{"grass", 0, 0, 1, false},
		{"stone", 1, 0, 2, false},
		{"empty tile", 2, 0, 0, false},
		{"overlay replaces ground", 0, 1, 2, false},
		{"wall", 1, 1, 0, true},
		{"stone bottom right", 2, 1, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.terrain, m.TerrainAt(tt.x, tt.y))
			assert.Equal(t, tt.solid, m.SolidAt(tt.x, tt.y))
		})
	}
}

func TestLoadTerrain_MissingFile(t *testing.T) {
	_, err := LoadTerrain(fstest.MapFS{}, "levels/nope.tmx")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "levels/nope.tmx")
}

func TestTerrainMap_Bounds(t *testing.T) {
	m := NewTerrainMap(2, 2, 16, 16)
	m.SetTerrain(1, 1, 4)
	m.SetSolid(0, 1, true)
	m.SetTerrain(5, 5, 9) // ignored

	assert.Equal(t, 4, m.TerrainAt(1, 1))
	assert.Zero(t, m.TerrainAt(-1, 0))
	assert.Zero(t, m.TerrainAt(2, 0))
	assert.True(t, m.SolidAt(0, 1))
	assert.True(t, m.SolidAt(0, 2), "outside the map is solid")
	assert.False(t, m.SolidAt(1, 0))
	assert.Equal(t, [][2]int{{0, 1}}, m.SolidTiles())

	var nilMap *TerrainMap
	assert.Zero(t, nilMap.TerrainAt(0, 0))
}
