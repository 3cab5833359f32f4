package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists the settings that can be changed without a rebuild.
// Nil fields were not set in the environment.
type envOverrides struct {
	MasterSwitchID         *int    `env:"FOOTFALL_MASTER_SWITCH"`
	MasterVolumeVariableID *int    `env:"FOOTFALL_MASTER_VOLUME_VARIABLE"`
	PitchJitter            *int    `env:"FOOTFALL_PITCH_JITTER"`
	VolumeJitter           *int    `env:"FOOTFALL_VOLUME_JITTER"`
	JumpSymbol             *string `env:"FOOTFALL_JUMP_SYMBOL"`
	SFXDir                 *string `env:"FOOTFALL_SFX_DIR"`
	SampleRate             *int    `env:"FOOTFALL_SAMPLE_RATE"`
}

// LoadEnv applies FOOTFALL_* environment variables on top of fs and ac
func LoadEnv(fs *FootstepConfig, ac *AudioConfig) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.MasterSwitchID != nil {
		fs.MasterSwitchID = max(*o.MasterSwitchID, 0)
	}
	if o.MasterVolumeVariableID != nil {
		fs.MasterVolumeVariableID = max(*o.MasterVolumeVariableID, 0)
	}
	if o.PitchJitter != nil {
		fs.PitchJitter = max(*o.PitchJitter, 0)
	}
	if o.VolumeJitter != nil {
		fs.VolumeJitter = max(*o.VolumeJitter, 0)
	}
	if o.JumpSymbol != nil {
		fs.JumpSymbol = *o.JumpSymbol
	}
	if o.SFXDir != nil && *o.SFXDir != "" {
		ac.SFXDir = *o.SFXDir
	}
	if o.SampleRate != nil && *o.SampleRate > 0 {
		ac.SampleRate = *o.SampleRate
	}
	return nil
}
