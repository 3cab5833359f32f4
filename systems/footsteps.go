package systems

import (
	"github.com/automoto/footfall/components"
	cfg "github.com/automoto/footfall/config"
	"github.com/automoto/footfall/footstep"
	"github.com/automoto/footfall/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// FootstepSystem hands completed steps to a listener, one StepEvent per step
type FootstepSystem struct {
	listener footstep.StepListener
}

// NewFootstepSystem creates the system. The listener is normally a *footstep.Engine.
func NewFootstepSystem(listener footstep.StepListener) *FootstepSystem {
	return &FootstepSystem{listener: listener}
}

// Update drains the step events queued by UpdateMovement this tick.
// Must run after UpdateMovement.
func (s *FootstepSystem) Update(ecs *ecs.ECS) {
	ProcessSteps(ecs.World, s.listener)
}

// ProcessSteps delivers every pending step event to listener in entity order and clears them
func ProcessSteps(w donburi.World, listener footstep.StepListener) int {
	var pending []*donburi.Entry
	for e := range components.StepEvent.Iter(w) {
		pending = append(pending, e)
	}

	delivered := 0
	for _, e := range pending {
		count := components.StepEvent.Get(e).Count
		donburi.Remove[components.StepEventData](e, components.StepEvent)

		if listener == nil {
			continue
		}
		character := NewCharacterState(w, e)
		for range count {
			listener.OnStepAdvanced(footstep.StepEvent{Character: character})
			delivered++
		}
	}
	return delivered
}

// characterState reads a character's motion state straight from its components
type characterState struct {
	world donburi.World
	entry *donburi.Entry
}

var _ footstep.Character = characterState{}

// NewCharacterState adapts a character entity to footstep.Character
func NewCharacterState(w donburi.World, e *donburi.Entry) footstep.Character {
	return characterState{world: w, entry: e}
}

func (c characterState) IsNormal() bool {
	if !c.entry.HasComponent(components.State) {
		return true
	}
	return components.State.Get(c.entry).CurrentState == cfg.StateNormal
}

func (c characterState) IsMoveRouteForcing() bool {
	return isRouteForced(c.entry)
}

func (c characterState) IsEventRunning() bool {
	entry, ok := components.GameState.First(c.world)
	if !ok {
		return false
	}
	return components.GameState.Get(entry).EventRunning
}

// TerrainTag is the terrain code of the tile the character stands on
func (c characterState) TerrainTag() int {
	char := components.Character.Get(c.entry)
	return levelTerrainOf(c.world).TerrainAt(char.TileX, char.TileY)
}

func (c characterState) Jumper() footstep.Jumper {
	if !c.entry.HasComponent(components.Jump) {
		return nil
	}
	return components.Jump.Get(c.entry)
}

// levelTerrainOf returns the current level's terrain, nil when no level is loaded
func levelTerrainOf(w donburi.World) *leveldata.TerrainMap {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Terrain
}
