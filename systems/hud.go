package systems

import (
	"fmt"

	"github.com/automoto/footfall/components"
	cfg "github.com/automoto/footfall/config"
	"github.com/automoto/footfall/fonts"
	"github.com/automoto/footfall/footstep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 4
	hudLineHeight = 11
	hudWidth      = 220
)

var hudHelp = "arrows move  shift dash  space jump  F1 switch  -/= volume  F2 wet  F3 event  F4 route  F5 save  R restart"

// DrawHUD renders the footstep debug overlay: what is under foot, which foot is next and the
// game state the engine reads.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image, next footstep.Side) {
	if !cfg.Debug.ShowHUD || !fonts.Loaded(fonts.MonoSmall) {
		return
	}

	lines := hudLines(ecs, next)
	face := fonts.MonoSmall.Get()

	height := float32(len(lines)*hudLineHeight + 2*hudMargin)
	vector.FillRect(screen, 0, 0, hudWidth, height, cfg.BlackOverlay, false)
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight-2, cfg.White)
	}

	text.Draw(screen, hudHelp, face, hudMargin, cfg.C.Height-hudMargin, cfg.Yellow)
}

func hudLines(ecs *ecs.ECS, next footstep.Side) []string {
	gs := GetOrCreateGameState(ecs.World)
	lines := []string{
		fmt.Sprintf("next foot %s", next),
		fmt.Sprintf("footsteps %s  volume %d", onOff(gs.Switches[cfg.SwitchFootsteps]), gs.Variables[cfg.VariableFootVolume]),
		fmt.Sprintf("wet %d  event %s", gs.Variables[cfg.VariableWetness], onOff(gs.EventRunning)),
	}

	if entry, ok := playerEntry(ecs.World); ok {
		char := NewCharacterState(ecs.World, entry)
		pos := components.Character.Get(entry)
		lines = append(lines, fmt.Sprintf("tile %d,%d  terrain %d  route %s",
			pos.TileX, pos.TileY, char.TerrainTag(), onOff(char.IsMoveRouteForcing())))
	}

	if entry, ok := components.Audio.First(ecs.World); ok {
		a := components.Audio.Get(entry)
		if a.Played > 0 {
			s := a.LastPlayed
			lines = append(lines, fmt.Sprintf("#%d %s vol %d pitch %d", a.Played, s.Name, s.Volume, s.Pitch))
		}
	}
	return lines
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
