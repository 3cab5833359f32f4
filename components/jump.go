package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// JumpData is carried by characters that can jump. Tween is non-nil while airborne.
type JumpData struct {
	Tween  *gween.Tween // progress 0..1 across the arc
	Height float32      // current height above ground in pixels
	Apex   float32
}

// IsAirborne reports whether a jump is in progress
func (j *JumpData) IsAirborne() bool {
	return j.Tween != nil
}

var Jump = donburi.NewComponentType[JumpData]()
