package components

import (
	"github.com/yohamta/donburi"
)

// GameStateData holds the game's switches and variables (singleton component)
type GameStateData struct {
	Switches     map[int]bool
	Variables    map[int]int
	EventRunning bool // a blocking map event is in progress
}

var GameState = donburi.NewComponentType[GameStateData]()
