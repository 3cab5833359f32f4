package systems

import (
	"github.com/automoto/footfall/components"
	cfg "github.com/automoto/footfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJump starts a hop when jump is pressed on the ground and advances hops in flight.
// The hop never moves the character off its tile.
func UpdateJump(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs.World)
	dt := float32(1.0 / float64(ebiten.DefaultTPS))

	components.Jump.Each(ecs.World, func(e *donburi.Entry) {
		jump := components.Jump.Get(e)

		if jump.Tween == nil {
			if input.Action(cfg.ActionJump).JustPressed && canJump(e) {
				StartJump(jump)
			}
			return
		}

		progress, finished := jump.Tween.Update(dt)
		if finished {
			jump.Tween = nil
			jump.Height = 0
			return
		}
		jump.Height = arcHeight(jump.Apex, progress)
	})
}

// StartJump puts the character in the air
func StartJump(jump *components.JumpData) {
	jump.Tween = gween.New(0, 1, cfg.Walker.JumpDuration, ease.Linear)
	jump.Height = 0
}

// arcHeight is a parabola through 0 at both ends and apex at the midpoint
func arcHeight(apex, progress float32) float32 {
	return 4 * apex * progress * (1 - progress)
}

func canJump(e *donburi.Entry) bool {
	if !e.HasComponent(components.State) {
		return true
	}
	state := components.State.Get(e)
	return state.CurrentState == cfg.StateNormal && !state.MoveRouteForced
}
