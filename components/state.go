package components

import (
	"github.com/automoto/footfall/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState    config.StateID
	PreviousState   config.StateID
	MoveRouteForced bool // movement is scripted, not player driven
}

var State = donburi.NewComponentType[StateData]()
