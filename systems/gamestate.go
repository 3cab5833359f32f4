package systems

import (
	"log"

	"github.com/automoto/footfall/components"
	cfg "github.com/automoto/footfall/config"
	"github.com/automoto/footfall/footstep"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGameState returns the switches/variables singleton, creating it with the
// footsteps switch on and the footstep volume variable at full when missing.
func GetOrCreateGameState(w donburi.World) *components.GameStateData {
	entry, ok := components.GameState.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.GameState))
		components.GameState.SetValue(entry, components.GameStateData{
			Switches: map[int]bool{
				cfg.SwitchFootsteps: true,
			},
			Variables: map[int]int{
				cfg.VariableFootVolume: footstep.MaxVolume,
			},
		})
	}
	gs := components.GameState.Get(entry)
	if gs.Switches == nil {
		gs.Switches = map[int]bool{}
	}
	if gs.Variables == nil {
		gs.Variables = map[int]int{}
	}
	return gs
}

// worldGameState reads switches and variables from the GameState singleton
type worldGameState struct {
	world donburi.World
}

var _ footstep.GameState = worldGameState{}

// NewGameState adapts the world's GameState singleton to footstep.GameState
func NewGameState(w donburi.World) footstep.GameState {
	return worldGameState{world: w}
}

// Switch and Variable only read; a missing singleton reads as all off and zero.
func (g worldGameState) Switch(id int) bool {
	entry, ok := components.GameState.First(g.world)
	if !ok {
		return false
	}
	return components.GameState.Get(entry).Switches[id]
}

func (g worldGameState) Variable(id int) int {
	entry, ok := components.GameState.First(g.world)
	if !ok {
		return 0
	}
	return components.GameState.Get(entry).Variables[id]
}

// UpdateDebugControls applies the debug bindings that edit game state and the player's
// motion state. Must run after UpdateInput.
func UpdateDebugControls(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)
	gs := GetOrCreateGameState(ecs.World)

	if input.Action(cfg.ActionToggleSwitch).JustPressed {
		gs.Switches[cfg.SwitchFootsteps] = !gs.Switches[cfg.SwitchFootsteps]
	}
	if input.Action(cfg.ActionVolumeUp).JustPressed {
		gs.Variables[cfg.VariableFootVolume] = min(gs.Variables[cfg.VariableFootVolume]+cfg.DefaultFootVolumeStep, footstep.MaxVolume)
	}
	if input.Action(cfg.ActionVolumeDown).JustPressed {
		gs.Variables[cfg.VariableFootVolume] = max(gs.Variables[cfg.VariableFootVolume]-cfg.DefaultFootVolumeStep, footstep.MinVolume)
	}
	if input.Action(cfg.ActionToggleWet).JustPressed {
		if gs.Variables[cfg.VariableWetness] > 0 {
			gs.Variables[cfg.VariableWetness] = 0
		} else {
			gs.Variables[cfg.VariableWetness] = 1
		}
	}
	if input.Action(cfg.ActionToggleEvent).JustPressed {
		gs.EventRunning = !gs.EventRunning
	}

	if input.Action(cfg.ActionToggleRoute).JustPressed {
		if entry, ok := playerEntry(ecs.World); ok {
			state := components.State.Get(entry)
			state.MoveRouteForced = !state.MoveRouteForced
		}
	}

	if input.Action(cfg.ActionSave).JustPressed {
		if err := SaveGameState(gs); err != nil {
			log.Printf("Warning: Could not save game state: %v", err)
		}
	}
}

func playerEntry(w donburi.World) (*donburi.Entry, bool) {
	return components.Character.First(w)
}
