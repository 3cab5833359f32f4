package systems

import (
	"github.com/automoto/footfall/components"
	cfg "github.com/automoto/footfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the level's tiles tinted by terrain, walls on top
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	terrain := levelTerrainOf(ecs.World)
	if terrain == nil {
		return
	}

	tw, th := float32(terrain.TileWidth), float32(terrain.TileHeight)
	for y := 0; y < terrain.Height; y++ {
		for x := 0; x < terrain.Width; x++ {
			c := cfg.Wall
			if !terrain.SolidAt(x, y) {
				tc, ok := cfg.TerrainColors[terrain.TerrainAt(x, y)]
				if !ok {
					tc = cfg.TerrainColors[0]
				}
				c = tc
			}
			vector.FillRect(screen, float32(x)*tw, float32(y)*th, tw-1, th-1, c, false)
		}
	}
}

// DrawCharacters renders each character as a square, lifted while it jumps
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	size := float32(cfg.Walker.TileSize)
	pad := size / 6

	components.Character.Each(ecs.World, func(e *donburi.Entry) {
		char := components.Character.Get(e)
		tx, ty := characterPosition(char)
		x, y := float32(tx)*size, float32(ty)*size

		var lift float32
		if e.HasComponent(components.Jump) {
			lift = components.Jump.Get(e).Height
		}

		// Shadow stays on the ground
		vector.FillRect(screen, x+pad, y+size-pad, size-2*pad, pad/2, cfg.Shadow, false)
		vector.FillRect(screen, x+pad, y+pad-lift, size-2*pad, size-2*pad, cfg.Player, false)
	})
}
