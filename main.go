package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/automoto/footfall/assets"
	"github.com/automoto/footfall/config"
	"github.com/automoto/footfall/fonts"
	"github.com/automoto/footfall/scenes"
	"github.com/automoto/footfall/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// CLI is the command line. Flags win over FOOTFALL_* environment variables.
type CLI struct {
	Map       string `help:"Tiled map to walk on (default: built-in demo map)" type:"path" env:"FOOTFALL_MAP"`
	SFXDir    string `help:"Directory holding footstep sounds named <sound>.wav or <sound>.ogg" name:"sfx-dir"`
	Debug     bool   `help:"Show the footstep HUD" default:"true" negatable:""`
	NoPersist bool   `help:"Do not load or save switches and variables"`
	Scale     int    `help:"Window scale factor" default:"2"`
}

func (c *CLI) Run() error {
	if err := config.LoadEnv(&config.Footstep, &config.Audio); err != nil {
		return err
	}
	if c.SFXDir != "" {
		config.Audio.SFXDir = c.SFXDir
	}
	config.Debug.ShowHUD = c.Debug
	config.Debug.Persistence = !c.NoPersist
	if c.Scale > 0 {
		config.C.Scale = c.Scale
	}

	level, err := assets.LoadLevel(c.Map)
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	levelName := filepath.Base(assets.DemoLevel)
	if c.Map != "" {
		levelName = filepath.Base(c.Map)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load HUD font: %v", err)
	}

	if config.Debug.Persistence {
		if err := systems.InitPersistence(); err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowTitle(config.C.Title)

	g := &Game{}
	g.scene = scenes.NewWorldScene(g, levelName, level)
	return ebiten.RunGame(g)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("footfall"),
		kong.Description("Walk a tile map and hear terrain-dependent footsteps"),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
