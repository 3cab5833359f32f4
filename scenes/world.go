package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/footfall/components"
	cfg "github.com/automoto/footfall/config"
	"github.com/automoto/footfall/footstep"
	"github.com/automoto/footfall/leveldata"
	"github.com/automoto/footfall/systems"
	"github.com/automoto/footfall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene is one walking session: a level, the player and a footstep engine
type WorldScene struct {
	ecs          *ecs.ECS
	engine       *footstep.Engine
	sceneChanger SceneChanger
	level        *leveldata.TerrainMap
	levelName    string
	once         sync.Once
}

func NewWorldScene(sc SceneChanger, levelName string, level *leveldata.TerrainMap) *WorldScene {
	return &WorldScene{sceneChanger: sc, level: level, levelName: levelName}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.restartRequested() {
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.levelName, ws.level))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

// Engine returns the scene's footstep engine, nil before the first Update
func (ws *WorldScene) Engine() *footstep.Engine {
	return ws.engine
}

func (ws *WorldScene) restartRequested() bool {
	entry, ok := components.Input.First(ws.ecs.World)
	if !ok {
		return false
	}
	return components.Input.Get(entry).Action(cfg.ActionRestart).JustPressed
}

func (ws *WorldScene) configure() {
	ws.ecs = NewWorldECS(ws.level, ws.levelName)
	world := ws.ecs.World

	settings := systems.NewFootstepSettings(cfg.Footstep)
	systems.PreloadSounds(settings)

	ws.engine = footstep.NewEngine(settings, footstep.Options{
		Game:  systems.NewGameState(world),
		Input: systems.NewInputState(world),
		Sink:  systems.NewAudioQueue(world),
	})
	steps := systems.NewFootstepSystem(ws.engine)

	// Audio first so last tick's sounds play before anything else changes
	ws.ecs.AddSystem(systems.UpdateAudio)
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdateDebugControls)
	ws.ecs.AddSystem(systems.UpdateJump)
	ws.ecs.AddSystem(systems.UpdateMovement)
	ws.ecs.AddSystem(steps.Update)

	ws.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ws.ecs.AddRenderer(cfg.Default, func(e *ecs.ECS, screen *ebiten.Image) {
		systems.DrawHUD(e, screen, ws.engine.Side())
	})
}

// NewWorldECS builds the world for a level without any systems: the game state (restored
// from save data when available), the level with its collision space and the player.
func NewWorldECS(level *leveldata.TerrainMap, levelName string) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	gs := systems.GetOrCreateGameState(e.World)
	saved, err := systems.LoadGameState()
	if err != nil {
		log.Printf("Warning: Could not load game state: %v", err)
	}
	systems.ApplySavedGameState(gs, saved)
	systems.GetOrCreateAudio(e)

	factory.CreateLevel(e, levelName, level)
	factory.CreatePlayer(e, cfg.Walker.StartX, cfg.Walker.StartY)

	return e
}
