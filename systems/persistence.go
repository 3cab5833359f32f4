package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/footfall/components"
	"github.com/quasilyte/gdata"
)

const gameStateKey = "gamestate"

// SavedGameState is the switch and variable data stored on disk.
// The foot cursor and footstep configuration are never saved.
type SavedGameState struct {
	Switches  map[int]bool `json:"switches"`
	Variables map[int]int  `json:"variables"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for save data storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "footfall",
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadGameState loads saved switches and variables. It returns nil, nil when persistence is
// off or nothing has been saved yet. Errors are returned, not logged.
func LoadGameState() (*SavedGameState, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(gameStateKey)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", gameStateKey, err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return decodeGameState(data)
}

// SaveGameState saves the current switches and variables. Errors are returned, not logged.
func SaveGameState(gs *components.GameStateData) error {
	if !gdataInitialized || gdataManager == nil || gs == nil {
		return nil
	}

	data, err := encodeGameState(gs)
	if err != nil {
		return fmt.Errorf("encode %s: %w", gameStateKey, err)
	}

	if err := gdataManager.SaveItem(gameStateKey, data); err != nil {
		return fmt.Errorf("save %s: %w", gameStateKey, err)
	}
	return nil
}

// ApplySavedGameState copies saved values over the current ones. Keys that were never
// saved keep their current value.
func ApplySavedGameState(gs *components.GameStateData, saved *SavedGameState) {
	if gs == nil || saved == nil {
		return
	}
	for id, on := range saved.Switches {
		gs.Switches[id] = on
	}
	for id, v := range saved.Variables {
		gs.Variables[id] = v
	}
}

func encodeGameState(gs *components.GameStateData) ([]byte, error) {
	return json.Marshal(SavedGameState{
		Switches:  gs.Switches,
		Variables: gs.Variables,
	})
}

func decodeGameState(data []byte) (*SavedGameState, error) {
	var saved SavedGameState
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse %s: %w", gameStateKey, err)
	}
	return &saved, nil
}
