package components

import "github.com/yohamta/donburi"

// StepEventData marks a character that completed one or more steps this tick.
// The footstep system consumes and removes it.
type StepEventData struct {
	Count int
}

var StepEvent = donburi.NewComponentType[StepEventData]()
