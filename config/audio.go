package config

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	SFXDir        string   // directory holding footstep sounds, named <sound>.<ext>
	Extensions    []string // tried in order
	DefaultSFXVol float64  // 0.0 - 1.0
}

var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		SFXDir:        "assets/audio/sfx",
		Extensions:    []string{".wav", ".ogg"},
		DefaultSFXVol: 1.0,
	}
}
