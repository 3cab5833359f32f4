package systems

import (
	"github.com/automoto/footfall/components"
	cfg "github.com/automoto/footfall/config"
	"github.com/automoto/footfall/leveldata"
	"github.com/automoto/footfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// direction order when several are held
var walkDirections = []struct {
	action cfg.ActionID
	dx, dy int
}{
	{cfg.ActionMoveLeft, -1, 0},
	{cfg.ActionMoveRight, 1, 0},
	{cfg.ActionMoveUp, 0, -1},
	{cfg.ActionMoveDown, 0, 1},
}

// UpdateMovement walks characters tile by tile. Each completed step marks the character
// with a StepEvent for UpdateFootsteps.
func UpdateMovement(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)
	terrain := levelTerrainOf(ecs.World)

	var arrived []*donburi.Entry
	for e := range components.Character.Iter(ecs.World) {
		char := components.Character.Get(e)

		if char.Moving {
			if advanceStep(e, char) {
				arrived = append(arrived, e)
			}
			continue
		}

		if isAirborne(e) {
			continue
		}

		dx, dy, ok := nextDirection(e, char, input)
		if !ok {
			continue
		}

		if tileBlocked(e, terrain, char.TileX+dx, char.TileY+dy) {
			if isRouteForced(e) {
				// scripted walkers turn around at walls
				char.DirX, char.DirY = -dx, -dy
			}
			continue
		}

		char.Moving = true
		char.DirX, char.DirY = dx, dy
		char.StepTimer = 0
		char.StepFrames = cfg.Walker.FramesPerStep
		if input.Action(cfg.ActionDash).Pressed && cfg.Walker.DashDivisor > 1 {
			char.StepFrames = max(cfg.Walker.FramesPerStep/cfg.Walker.DashDivisor, 1)
		}
	}

	// Adding the event component moves the entry to another archetype, so not while iterating
	for _, e := range arrived {
		publishStep(e)
	}
}

// advanceStep moves one frame along the current step and reports whether it completed
func advanceStep(e *donburi.Entry, char *components.CharacterData) bool {
	char.StepTimer++
	if char.StepTimer < char.StepFrames {
		syncObject(e, char)
		return false
	}

	char.TileX += char.DirX
	char.TileY += char.DirY
	char.Moving = false
	char.StepTimer = 0
	char.Steps++
	syncObject(e, char)
	return true
}

// nextDirection picks the tile to walk toward from an idle position
func nextDirection(e *donburi.Entry, char *components.CharacterData, input *components.InputData) (int, int, bool) {
	if isRouteForced(e) {
		if char.DirX == 0 && char.DirY == 0 {
			return 1, 0, true
		}
		return char.DirX, char.DirY, true
	}

	if e.HasComponent(components.State) && components.State.Get(e).CurrentState != cfg.StateNormal {
		return 0, 0, false
	}

	for _, d := range walkDirections {
		if input.Action(d.action).Pressed {
			return d.dx, d.dy, true
		}
	}
	return 0, 0, false
}

// tileBlocked reports whether (tx, ty) is outside the level or holds a solid object
func tileBlocked(e *donburi.Entry, terrain *leveldata.TerrainMap, tx, ty int) bool {
	if terrain != nil && terrain.SolidAt(tx, ty) {
		return true
	}
	if !e.HasComponent(components.Object) {
		return false
	}

	obj := components.Object.Get(e).Object
	if obj == nil || obj.Space == nil {
		return false
	}

	char := components.Character.Get(e)
	size := float64(cfg.Walker.TileSize)
	check := obj.Check(float64(tx-char.TileX)*size, float64(ty-char.TileY)*size, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, other := range check.Objects {
		if ox, oy := tileOf(other); ox == tx && oy == ty {
			return true
		}
	}
	return false
}

func tileOf(obj *resolv.Object) (int, int) {
	size := float64(cfg.Walker.TileSize)
	return int((obj.X + obj.W/2) / size), int((obj.Y + obj.H/2) / size)
}

// syncObject moves the collision body to the character's drawn position
func syncObject(e *donburi.Entry, char *components.CharacterData) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}

	size := float64(cfg.Walker.TileSize)
	x, y := characterPosition(char)
	obj.X = x*size + cfg.Walker.BodyInset
	obj.Y = y*size + cfg.Walker.BodyInset
	obj.Update()
}

// characterPosition is the character's position in tiles, including the step in progress
func characterPosition(char *components.CharacterData) (float64, float64) {
	off := char.Offset()
	return float64(char.TileX) + float64(char.DirX)*off, float64(char.TileY) + float64(char.DirY)*off
}

func publishStep(e *donburi.Entry) {
	if e.HasComponent(components.StepEvent) {
		components.StepEvent.Get(e).Count++
		return
	}
	donburi.Add(e, components.StepEvent, &components.StepEventData{Count: 1})
}

func isAirborne(e *donburi.Entry) bool {
	return e.HasComponent(components.Jump) && components.Jump.Get(e).IsAirborne()
}

func isRouteForced(e *donburi.Entry) bool {
	return e.HasComponent(components.State) && components.State.Get(e).MoveRouteForced
}
