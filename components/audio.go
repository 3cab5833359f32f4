package components

import (
	"github.com/automoto/footfall/footstep"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	PendingSFX []footstep.Sound
	LastPlayed footstep.Sound // for the HUD
	Played     int
}

var Audio = donburi.NewComponentType[AudioData]()
