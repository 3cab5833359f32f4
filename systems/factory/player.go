package factory

import (
	"github.com/automoto/footfall/archetypes"
	"github.com/automoto/footfall/components"
	cfg "github.com/automoto/footfall/config"
	"github.com/automoto/footfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the walking character on tile (tx, ty)
func CreatePlayer(ecs *ecs.ECS, tx, ty int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := float64(cfg.Walker.TileSize)
	inset := cfg.Walker.BodyInset
	body := size - 2*inset
	obj := resolv.NewObject(float64(tx)*size+inset, float64(ty)*size+inset, body, body, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, body, body))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Character.SetValue(player, components.CharacterData{
		TileX: tx,
		TileY: ty,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.StateNormal,
		PreviousState: cfg.StateNone,
	})
	components.Jump.SetValue(player, components.JumpData{
		Apex: cfg.Walker.JumpHeight,
	})

	return player
}
