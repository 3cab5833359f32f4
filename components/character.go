package components

import (
	"github.com/yohamta/donburi"
)

// CharacterData is a character's position on the tile grid and its in-progress step
type CharacterData struct {
	TileX, TileY int

	// Step in progress; Moving is false between tiles
	Moving     bool
	DirX, DirY int
	StepFrames int // frames this step takes
	StepTimer  int // frames elapsed
	Steps      int // completed steps
}

// Offset is the fraction of the current step already covered, 0 when idle
func (c *CharacterData) Offset() float64 {
	if !c.Moving || c.StepFrames <= 0 {
		return 0
	}
	return float64(c.StepTimer) / float64(c.StepFrames)
}

var Character = donburi.NewComponentType[CharacterData]()
