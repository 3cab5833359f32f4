package systems

import (
	"github.com/automoto/footfall/components"
	cfg "github.com/automoto/footfall/config"
	"github.com/automoto/footfall/footstep"
	"github.com/automoto/footfall/leveldata"
	"github.com/automoto/footfall/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

type recordingListener struct {
	events []footstep.StepEvent
}

func (l *recordingListener) OnStepAdvanced(ev footstep.StepEvent) {
	l.events = append(l.events, ev)
}

// walledMap is a w x h map with a solid border and code on every open tile
func walledMap(w, h, code int) *leveldata.TerrainMap {
	m := leveldata.NewTerrainMap(w, h, cfg.Walker.TileSize, cfg.Walker.TileSize)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				m.SetSolid(x, y, true)
				continue
			}
			m.SetTerrain(x, y, code)
		}
	}
	return m
}

func newTestWorld(terrain *leveldata.TerrainMap, tx, ty int) (*ecs.ECS, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	GetOrCreateGameState(e.World)
	factory.CreateLevel(e, "test", terrain)
	player := factory.CreatePlayer(e, tx, ty)
	return e, player
}

func hold(e *ecs.ECS, action cfg.ActionID, pressed bool) {
	getOrCreateInput(e.World).Current[action] = pressed
}

func tick(e *ecs.ECS, n int) {
	for range n {
		UpdateMovement(e)
	}
}

// stepTicks is the number of ticks from idle to a completed walking step
func stepTicks() int {
	return cfg.Walker.FramesPerStep + 1
}

func pendingSteps(e *donburi.Entry) int {
	if !e.HasComponent(components.StepEvent) {
		return 0
	}
	return components.StepEvent.Get(e).Count
}
