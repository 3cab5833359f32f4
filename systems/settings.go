package systems

import (
	"log"

	cfg "github.com/automoto/footfall/config"
	"github.com/automoto/footfall/footstep"
)

// NewFootstepSettings converts the footstep configuration into engine settings.
// Unusable entries are dropped with a warning; it never fails.
func NewFootstepSettings(fc cfg.FootstepConfig) footstep.Settings {
	s := footstep.Settings{
		MasterSwitchID:         max(fc.MasterSwitchID, 0),
		MasterVolumeVariableID: max(fc.MasterVolumeVariableID, 0),
		JumpSymbol:             fc.JumpSymbol,
		Mixer: footstep.MixerConfig{
			PitchJitter:            max(fc.PitchJitter, 0),
			VolumeJitter:           max(fc.VolumeJitter, 0),
			MasterVolumeConfigured: fc.MasterVolumeVariableID > 0,
		},
	}

	// A default with no sound on either foot counts as no default
	if def := profileFromConfig(fc.Default); !def.Silent() {
		s.Default = &def
	}

	entries := make([]footstep.TerrainEntry, 0, len(fc.Terrains))
	for _, t := range fc.Terrains {
		e := footstep.TerrainEntry{Code: t.Terrain, Profile: profileFromConfig(t.Profile)}
		if e.Code <= 0 || e.Profile.Silent() {
			log.Printf("Warning: dropping footstep entry for terrain %d (left=%q right=%q)",
				t.Terrain, t.Profile.Left, t.Profile.Right)
			continue
		}
		if c := e.Profile.Condition; c != nil {
			if c.VariableID == 0 {
				log.Printf("Warning: footstep condition on terrain %d has no variable and will never play", t.Terrain)
			}
			if c.Operator == footstep.OpUnknown {
				log.Printf("Warning: footstep condition on terrain %d has unknown operator %q and will never play",
					t.Terrain, t.Profile.Condition.Operator)
			}
		}
		entries = append(entries, e)
	}
	s.Table = footstep.NewTerrainTable(entries)

	return s
}

func profileFromConfig(pc cfg.ProfileConfig) footstep.SoundProfile {
	p := footstep.SoundProfile{
		Left:   pc.Left,
		Right:  pc.Right,
		Volume: min(max(pc.Volume, footstep.MinVolume), footstep.MaxVolume),
		Pitch:  min(max(pc.Pitch, footstep.MinPitch), footstep.MaxPitch),
	}
	if pc.Condition.Enabled {
		p.Condition = &footstep.PlayCondition{
			Enabled:    true,
			VariableID: pc.Condition.VariableID,
			Operator:   footstep.ParseOperator(pc.Condition.Operator),
			Value:      pc.Condition.Value,
		}
	}
	return p
}
