package config

// ConditionConfig is the raw play condition for a sound profile
type ConditionConfig struct {
	Enabled    bool
	VariableID int    // 0 = unset
	Operator   string // "==", "!=", ">", "<", ">=", "<="
	Value      int
}

// ProfileConfig describes a left/right footstep pair as configured
type ProfileConfig struct {
	Left      string // sound name, "" = silent
	Right     string
	Volume    int // 0-100
	Pitch     int // 50-150
	Condition ConditionConfig
}

// TerrainSoundConfig binds a Tiled terrain code to a profile
type TerrainSoundConfig struct {
	Terrain int
	Profile ProfileConfig
}

// FootstepConfig contains the footstep engine configuration
type FootstepConfig struct {
	MasterSwitchID         int // 0 = always on
	MasterVolumeVariableID int // 0 = no master volume scaling
	PitchJitter            int
	VolumeJitter           int
	JumpSymbol             string // input symbol that cancels the footstep of the same tick

	Default  ProfileConfig
	Terrains []TerrainSoundConfig
}

// Footstep is the global footstep configuration
var Footstep FootstepConfig

// Switch and variable ids used by the demo scene
const (
	SwitchFootsteps       = 1
	VariableFootVolume    = 1
	VariableWetness       = 2
	DefaultFootVolumeStep = 10
)

// Terrain codes painted in the demo map
const (
	TerrainGrass  = 1
	TerrainStone  = 2
	TerrainWood   = 3
	TerrainPuddle = 4
	TerrainSand   = 5
)

func init() {
	Footstep = FootstepConfig{
		MasterSwitchID:         SwitchFootsteps,
		MasterVolumeVariableID: VariableFootVolume,
		PitchJitter:            8,
		VolumeJitter:           5,
		JumpSymbol:             "jump",

		Default: ProfileConfig{
			Left:   "step_dirt_l",
			Right:  "step_dirt_r",
			Volume: 70,
			Pitch:  100,
		},
		Terrains: []TerrainSoundConfig{
			{Terrain: TerrainGrass, Profile: ProfileConfig{Left: "step_grass_l", Right: "step_grass_r", Volume: 80, Pitch: 100}},
			{Terrain: TerrainStone, Profile: ProfileConfig{Left: "step_stone_l", Right: "step_stone_r", Volume: 90, Pitch: 100}},
			{Terrain: TerrainWood, Profile: ProfileConfig{Left: "step_wood_l", Right: "step_wood_r", Volume: 85, Pitch: 95}},
			// Puddles only splash once the ground is wet enough
			{Terrain: TerrainPuddle, Profile: ProfileConfig{
				Left: "step_splash_l", Right: "step_splash_r", Volume: 90, Pitch: 110,
				Condition: ConditionConfig{Enabled: true, VariableID: VariableWetness, Operator: ">=", Value: 1},
			}},
			// Sand is deliberately one-footed so the gait can be heard staying in step
			{Terrain: TerrainSand, Profile: ProfileConfig{Left: "step_sand", Volume: 60, Pitch: 90}},
		},
	}
}
