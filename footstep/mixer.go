package footstep

import "math"

const (
	MinPitch  = 50
	MaxPitch  = 150
	MinVolume = 0
	MaxVolume = 100
)

// Rand is the jitter source. *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type Rand interface {
	Float64() float64
}

// MixerConfig holds the jitter ranges and whether a master volume variable scales output
type MixerConfig struct {
	PitchJitter            int
	VolumeJitter           int
	MasterVolumeConfigured bool
}

// Sound is a single footstep ready for the audio sink
type Sound struct {
	Name   string
	Pitch  int // percent of original speed
	Volume int // 0-100
	Pan    int // -100 (left) to 100 (right)
}

// Compute selects the sound for side and applies jitter and master volume.
// It returns false when the profile has no sound for that foot.
func Compute(p SoundProfile, side Side, cfg MixerConfig, masterVolume int, rng Rand) (Sound, bool) {
	name := p.Left
	if side == SideRight {
		name = p.Right
	}
	if name == "" {
		return Sound{}, false
	}

	pitch := math.Round(float64(p.Pitch) + jitter(cfg.PitchJitter, rng))

	volume := float64(p.Volume) + jitter(cfg.VolumeJitter, rng)
	if cfg.MasterVolumeConfigured {
		volume *= float64(clampInt(masterVolume, MinVolume, MaxVolume)) / 100
	}
	volume = math.Round(volume)

	return Sound{
		Name:   name,
		Pitch:  clampInt(int(pitch), MinPitch, MaxPitch),
		Volume: clampInt(int(volume), MinVolume, MaxVolume),
	}, true
}

// jitter draws uniformly from [-r, r]; a non-positive range draws nothing
func jitter(r int, rng Rand) float64 {
	if r <= 0 || rng == nil {
		return 0
	}
	return float64(r) * (2*rng.Float64() - 1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
