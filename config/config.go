package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the render layer everything draws on
const Default ecs.LayerID = iota

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  int
	Title  string
}

// WalkerConfig contains the tile walker that drives step events
type WalkerConfig struct {
	TileSize      int
	FramesPerStep int // frames to cross one tile at walking speed
	DashDivisor   int // FramesPerStep is divided by this while dashing
	StartX        int
	StartY        int
	BodyInset     float64 // shrinks a character's body so it only overlaps its own cell

	// Jump arc
	JumpDuration float32 // seconds
	JumpHeight   float32 // pixels at the apex
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD     bool
	Persistence bool // load/save switches and variables with gdata
}

// Global configuration instances
var C *Config
var Walker WalkerConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Wall         = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	Player       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Shadow       = color.RGBA{R: 0, G: 0, B: 0, A: 90}
)

// TerrainColors tints each terrain code on the debug grid
var TerrainColors = map[int]color.RGBA{
	0:             {R: 120, G: 100, B: 80, A: 255},
	TerrainGrass:  {R: 60, G: 140, B: 60, A: 255},
	TerrainStone:  {R: 140, G: 140, B: 150, A: 255},
	TerrainWood:   {R: 150, G: 100, B: 50, A: 255},
	TerrainPuddle: {R: 60, G: 100, B: 180, A: 255},
	TerrainSand:   {R: 220, G: 200, B: 130, A: 255},
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  2,
		Title:  "footfall",
	}

	Walker = WalkerConfig{
		TileSize:      32,
		FramesPerStep: 16,
		DashDivisor:   2,
		StartX:        2,
		StartY:        2,
		BodyInset:     1,
		JumpDuration:  0.4,
		JumpHeight:    12,
	}

	Debug = DebugConfig{
		ShowHUD:     true,
		Persistence: true,
	}
}
