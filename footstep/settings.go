package footstep

// Settings is the engine's configuration, read-only once built
type Settings struct {
	Table   TerrainTable
	Default *SoundProfile // nil = unmapped terrain is silent and does not alternate

	Mixer                  MixerConfig
	MasterSwitchID         int
	MasterVolumeVariableID int
	JumpSymbol             string
}
