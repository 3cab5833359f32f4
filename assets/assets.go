package assets

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/automoto/footfall/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// DemoLevel is the embedded map used when no map is given on the command line
const DemoLevel = "levels/demo.tmx"

// LoadLevel loads a Tiled map from disk, or the embedded demo map when path is empty
func LoadLevel(path string) (*leveldata.TerrainMap, error) {
	if path == "" {
		return leveldata.LoadTerrain(levelFS, DemoLevel)
	}
	return leveldata.LoadTerrain(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
